package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/cleitonmarx/symbiont-ai-chillerplant/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-chillerplant/internal/usecases"
	"github.com/google/jsonschema-go/jsonschema"
)

const normalChillerRejection = "Cannot modify schedule for normal chillers. Only excluded chillers can be rescheduled."

// ScheduleTool returns one schedule profile.
type ScheduleTool struct {
	scheduler usecases.ChillerScheduler
}

// NewScheduleTool creates a new instance of ScheduleTool.
func NewScheduleTool(scheduler usecases.ChillerScheduler) ScheduleTool {
	return ScheduleTool{scheduler: scheduler}
}

func (ScheduleTool) StatusMessage() string {
	return "📅 Reading the schedule..."
}

func (ScheduleTool) Definition() domain.ToolDefinition {
	return domain.ToolDefinition{
		Name:        "get_schedule",
		Description: "Get the schedule for a specific profile type (weekday/weekend/holiday).",
		InputSchema: &jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"profile_type": profileTypeSchema("The type of schedule profile to retrieve"),
			},
			Required: []string{"profile_type"},
		},
	}
}

func (t ScheduleTool) Execute(ctx context.Context, args json.RawMessage) (any, error) {
	var params struct {
		ProfileType domain.ScheduleProfile `json:"profile_type"`
	}
	if err := unmarshalToolInput(args, &params); err != nil {
		return nil, err
	}

	schedule, found, err := t.scheduler.Schedule(ctx, params.ProfileType)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}

	normal := schedule.NormalChiller
	if normal == nil {
		normal = []domain.ScheduleEntry{}
	}
	excluded := schedule.ExcludedChiller
	if excluded == nil {
		excluded = map[string][]domain.ScheduleEntry{}
	}
	return struct {
		NormalChiller   []domain.ScheduleEntry            `json:"normal_chiller"`
		ExcludedChiller map[string][]domain.ScheduleEntry `json:"excluded_chiller"`
	}{normal, excluded}, nil
}

// ScheduleAvailabilityTool reports whether a chiller can be rescheduled.
type ScheduleAvailabilityTool struct {
	scheduler usecases.ChillerScheduler
}

// NewScheduleAvailabilityTool creates a new instance of ScheduleAvailabilityTool.
func NewScheduleAvailabilityTool(scheduler usecases.ChillerScheduler) ScheduleAvailabilityTool {
	return ScheduleAvailabilityTool{scheduler: scheduler}
}

func (ScheduleAvailabilityTool) StatusMessage() string {
	return "🔎 Checking schedule availability..."
}

func (ScheduleAvailabilityTool) Definition() domain.ToolDefinition {
	return domain.ToolDefinition{
		Name:        "check_schedule_availability",
		Description: "Check if a chiller can be scheduled for the given time slot. Only chillers in the excluded list can be rescheduled.",
		InputSchema: &jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"chiller_id":   chillerIDSchema("The ID of the chiller to check"),
				"profile_type": profileTypeSchema("The type of schedule profile"),
				"start_time":   scheduleTimeSchema("Start time in HH:MM format"),
				"stop_time":    scheduleTimeSchema("Stop time in HH:MM format"),
			},
			Required: []string{"chiller_id", "profile_type", "start_time", "stop_time"},
		},
	}
}

func (t ScheduleAvailabilityTool) Execute(ctx context.Context, args json.RawMessage) (any, error) {
	var params struct {
		ChillerID   string                 `json:"chiller_id"`
		ProfileType domain.ScheduleProfile `json:"profile_type"`
		StartTime   string                 `json:"start_time"`
		StopTime    string                 `json:"stop_time"`
	}
	if err := unmarshalToolInput(args, &params); err != nil {
		return nil, err
	}
	return t.scheduler.CheckAvailability(ctx, params.ProfileType, params.ChillerID)
}

// AddScheduleTool previews a schedule change. Nothing is written; the operator
// confirms the change from the UI card.
type AddScheduleTool struct {
	scheduler usecases.ChillerScheduler
}

// NewAddScheduleTool creates a new instance of AddScheduleTool.
func NewAddScheduleTool(scheduler usecases.ChillerScheduler) AddScheduleTool {
	return AddScheduleTool{scheduler: scheduler}
}

func (AddScheduleTool) StatusMessage() string {
	return "📝 Preparing schedule preview..."
}

func (AddScheduleTool) Definition() domain.ToolDefinition {
	return domain.ToolDefinition{
		Name: "add_schedule",
		Description: "Preview new schedule entries for an excluded chiller. " +
			"The change is not applied; the operator must confirm it.",
		InputSchema: &jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"profile_type":   profileTypeSchema("The type of schedule profile"),
				"chiller_type":   chillerIDSchema("The type of chiller schedule (normal or specific chiller ID)", domain.NormalChillerBucket),
				"schedule_entry": scheduleEntriesSchema("The proposed start/stop windows"),
			},
			Required: []string{"profile_type", "chiller_type", "schedule_entry"},
		},
	}
}

func (t AddScheduleTool) Execute(ctx context.Context, args json.RawMessage) (any, error) {
	var params struct {
		ProfileType   domain.ScheduleProfile `json:"profile_type"`
		ChillerType   string                 `json:"chiller_type"`
		ScheduleEntry []domain.ScheduleEntry `json:"schedule_entry"`
	}
	if err := unmarshalToolInput(args, &params); err != nil {
		return nil, err
	}
	if params.ChillerType == domain.NormalChillerBucket {
		return envelope{Message: normalChillerRejection}, nil
	}

	preview, err := t.scheduler.Preview(ctx, params.ProfileType, params.ChillerType, params.ScheduleEntry)
	if isRejection(err) {
		return envelope{Message: fmt.Sprintf("Cannot add schedule: %s", err)}, nil
	}
	if err != nil {
		return nil, err
	}

	return envelope{
		Success: true,
		Message: "Schedule preview for " + preview.ChillerID,
		Data: map[string]any{
			"chiller_id":   preview.ChillerID,
			"profile_type": preview.Profile,
			"old_schedule": scheduleEntriesView(preview.OldSchedule),
			"new_schedule": scheduleEntriesView(preview.NewSchedule),
		},
	}, nil
}

// ConfirmScheduleTool applies a schedule change. It is registered but only advertised
// to the assistant when explicitly enabled.
type ConfirmScheduleTool struct {
	scheduler usecases.ChillerScheduler
}

// NewConfirmScheduleTool creates a new instance of ConfirmScheduleTool.
func NewConfirmScheduleTool(scheduler usecases.ChillerScheduler) ConfirmScheduleTool {
	return ConfirmScheduleTool{scheduler: scheduler}
}

func (ConfirmScheduleTool) StatusMessage() string {
	return "💾 Applying the schedule..."
}

func (ConfirmScheduleTool) Definition() domain.ToolDefinition {
	return domain.ToolDefinition{
		Name:        "confirm_schedule",
		Description: "Apply schedule entries to an excluded chiller after the operator confirmed the preview.",
		InputSchema: &jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"profile_type":     profileTypeSchema("The type of schedule profile"),
				"chiller_type":     chillerIDSchema("The chiller to reschedule"),
				"schedule_entries": scheduleEntriesSchema("The confirmed start/stop windows replacing the current ones"),
			},
			Required: []string{"profile_type", "chiller_type", "schedule_entries"},
		},
	}
}

func (t ConfirmScheduleTool) Execute(ctx context.Context, args json.RawMessage) (any, error) {
	var params struct {
		ProfileType     domain.ScheduleProfile `json:"profile_type"`
		ChillerType     string                 `json:"chiller_type"`
		ScheduleEntries []domain.ScheduleEntry `json:"schedule_entries"`
	}
	if err := unmarshalToolInput(args, &params); err != nil {
		return nil, err
	}

	result, err := t.scheduler.Confirm(ctx, usecases.ScheduleChange{
		Profile:   params.ProfileType,
		ChillerID: params.ChillerType,
		Entries:   params.ScheduleEntries,
	})
	if isRejection(err) {
		return map[string]any{
			"success": false,
			"message": fmt.Sprintf("Cannot confirm schedule: %s", err),
		}, nil
	}
	if err != nil {
		return nil, err
	}

	return map[string]any{
		"success":      true,
		"message":      "Schedules updated successfully",
		"schedules":    result.Entries,
		"write_result": result.WriteResult,
	}, nil
}
