package tools

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/cleitonmarx/symbiont-ai-chillerplant/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-chillerplant/internal/usecases"
	"github.com/google/jsonschema-go/jsonschema"
)

// MaintenanceStatusTool returns whether a device is under maintenance and its newest ticket.
type MaintenanceStatusTool struct {
	desk usecases.MaintenanceDesk
}

// NewMaintenanceStatusTool creates a new instance of MaintenanceStatusTool.
func NewMaintenanceStatusTool(desk usecases.MaintenanceDesk) MaintenanceStatusTool {
	return MaintenanceStatusTool{desk: desk}
}

func (MaintenanceStatusTool) StatusMessage() string {
	return "🛠️ Checking maintenance status..."
}

func (MaintenanceStatusTool) Definition() domain.ToolDefinition {
	return domain.ToolDefinition{
		Name:        "get_maintenance_status",
		Description: "Get the maintenance status of a device and its latest maintenance ticket.",
		InputSchema: &jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"device_id": {
					Type:        "string",
					Description: "The ID of the device (e.g., chiller_1, pchp_1, ct_1)",
				},
			},
			Required: []string{"device_id"},
		},
	}
}

func (t MaintenanceStatusTool) Execute(ctx context.Context, args json.RawMessage) (any, error) {
	var params struct {
		DeviceID string `json:"device_id"`
	}
	if err := unmarshalToolInput(args, &params); err != nil {
		return nil, err
	}

	status, found, err := t.desk.Status(ctx, params.DeviceID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return status, nil
}

// MaintenanceHistoryTool lists the tickets of a device within an optional date range.
type MaintenanceHistoryTool struct {
	desk usecases.MaintenanceDesk
}

// NewMaintenanceHistoryTool creates a new instance of MaintenanceHistoryTool.
func NewMaintenanceHistoryTool(desk usecases.MaintenanceDesk) MaintenanceHistoryTool {
	return MaintenanceHistoryTool{desk: desk}
}

func (MaintenanceHistoryTool) StatusMessage() string {
	return "📜 Reading maintenance history..."
}

func (MaintenanceHistoryTool) Definition() domain.ToolDefinition {
	return domain.ToolDefinition{
		Name:        "get_maintenance_history",
		Description: "Get maintenance history for specific equipment, optionally within a date range.",
		InputSchema: &jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"equipment_id": {
					Type:        "string",
					Description: "The ID of the equipment to get maintenance history for",
				},
				"start_date": {
					Type:        "string",
					Description: "Optional: start date (YYYY-MM-DD, or expressions like 'yesterday', 'last monday')",
				},
				"end_date": {
					Type:        "string",
					Description: "Optional: end date (YYYY-MM-DD, or expressions like 'today')",
				},
			},
			Required: []string{"equipment_id"},
		},
	}
}

func (t MaintenanceHistoryTool) Execute(ctx context.Context, args json.RawMessage) (any, error) {
	var params struct {
		EquipmentID string `json:"equipment_id"`
		StartDate   string `json:"start_date"`
		EndDate     string `json:"end_date"`
	}
	if err := unmarshalToolInput(args, &params); err != nil {
		return nil, err
	}
	return t.desk.History(ctx, params.EquipmentID, params.StartDate, params.EndDate)
}

// MaintenanceRequestTool proposes a maintenance ticket. The UI shows it as a card and
// persists it through the maintenance flag endpoint once the operator confirms.
type MaintenanceRequestTool struct {
	desk usecases.MaintenanceDesk
}

// NewMaintenanceRequestTool creates a new instance of MaintenanceRequestTool.
func NewMaintenanceRequestTool(desk usecases.MaintenanceDesk) MaintenanceRequestTool {
	return MaintenanceRequestTool{desk: desk}
}

func (MaintenanceRequestTool) StatusMessage() string {
	return "📝 Preparing maintenance request..."
}

func (MaintenanceRequestTool) Definition() domain.ToolDefinition {
	return domain.ToolDefinition{
		Name:        "requests_to_set_maintenance_status",
		Description: "Request to put a device under maintenance. Returns a ticket the operator must confirm.",
		InputSchema: &jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"device_id":         {Type: "string", Description: "The ID of the device"},
				"ticket_started_by": {Type: "string", Description: "Name of the person reporting the issue"},
				"technician":        {Type: "string", Description: "Name of the technician assigned"},
				"description":       {Type: "string", Description: "Reason for the maintenance"},
			},
			Required: []string{"device_id", "ticket_started_by", "technician", "description"},
		},
	}
}

func (t MaintenanceRequestTool) Execute(ctx context.Context, args json.RawMessage) (any, error) {
	var params struct {
		DeviceID        string `json:"device_id"`
		TicketStartedBy string `json:"ticket_started_by"`
		Technician      string `json:"technician"`
		Description     string `json:"description"`
	}
	if err := unmarshalToolInput(args, &params); err != nil {
		return nil, err
	}

	proposal, err := t.desk.Propose(ctx, params.DeviceID, params.TicketStartedBy, params.Technician, params.Description)
	var notFoundErr *domain.NotFoundErr
	if errors.As(err, &notFoundErr) {
		return envelope{Message: notFoundErr.Error()}, nil
	}
	if err != nil {
		return nil, err
	}

	return envelope{
		Success: true,
		Message: "Maintenance request created for " + params.DeviceID,
		Data:    proposal,
	}, nil
}
