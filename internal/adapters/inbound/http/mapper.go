package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/cleitonmarx/symbiont-ai-chillerplant/internal/domain"
)

// ErrorCode is the machine readable code of an API error.
type ErrorCode string

const (
	ErrorCode_BadRequest    ErrorCode = "BAD_REQUEST"
	ErrorCode_NotFound      ErrorCode = "NOT_FOUND"
	ErrorCode_Conflict      ErrorCode = "CONFLICT"
	ErrorCode_Unavailable   ErrorCode = "UNAVAILABLE"
	ErrorCode_InternalError ErrorCode = "INTERNAL_ERROR"
)

// Error is the body of an API error.
type Error struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// ErrorResp wraps Error in the response envelope.
type ErrorResp struct {
	Error Error `json:"error"`
}

func toError(err error) (int, ErrorResp) {
	var (
		validationErr  *domain.ValidationErr
		invalidArgsErr *domain.InvalidArgumentsErr
		notFoundErr    *domain.NotFoundErr
		conflictErr    *domain.ConflictErr
		unavailableErr *domain.UnavailableErr
	)
	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest, newErrorResp(ErrorCode_BadRequest, validationErr.Error())
	case errors.As(err, &invalidArgsErr):
		return http.StatusBadRequest, newErrorResp(ErrorCode_BadRequest, invalidArgsErr.Error())
	case errors.As(err, &notFoundErr):
		return http.StatusNotFound, newErrorResp(ErrorCode_NotFound, notFoundErr.Error())
	case errors.As(err, &conflictErr):
		return http.StatusConflict, newErrorResp(ErrorCode_Conflict, conflictErr.Error())
	case errors.As(err, &unavailableErr):
		return http.StatusServiceUnavailable, newErrorResp(ErrorCode_Unavailable, unavailableErr.Error())
	default:
		return http.StatusInternalServerError, newErrorResp(ErrorCode_InternalError, "internal server error")
	}
}

func newErrorResp(code ErrorCode, message string) ErrorResp {
	return ErrorResp{Error: Error{Code: code, Message: message}}
}

// ClientMessage is a chat message as sent by the Vercel AI SDK.
type ClientMessage struct {
	Role            string           `json:"role"`
	Content         *string          `json:"content"`
	ToolInvocations []ToolInvocation `json:"toolInvocations,omitempty"`
}

// ToolInvocation is a tool call already resolved on a previous turn.
type ToolInvocation struct {
	ToolCallID string          `json:"toolCallId"`
	ToolName   string          `json:"toolName"`
	Args       json.RawMessage `json:"args,omitempty"`
	Result     json.RawMessage `json:"result,omitempty"`
}

// ChatRequest is the body of the chat endpoints.
type ChatRequest struct {
	Messages []ClientMessage `json:"messages"`
}

// toChatMessages converts client messages into the conversation sent to the assistant.
// A message with tool invocations expands into an assistant message carrying the tool
// calls followed by one tool message per invocation. Invocations without a result are
// dropped.
func toChatMessages(msgs []ClientMessage) []domain.ChatMessage {
	res := make([]domain.ChatMessage, 0, len(msgs))
	for _, m := range msgs {
		invocations := make([]ToolInvocation, 0, len(m.ToolInvocations))
		for _, inv := range m.ToolInvocations {
			if len(inv.Result) > 0 {
				invocations = append(invocations, inv)
			}
		}
		if len(invocations) == 0 {
			res = append(res, domain.ChatMessage{
				Role:    domain.ChatRole(m.Role),
				Content: m.Content,
			})
			continue
		}

		assistant := domain.ChatMessage{
			Role:    domain.ChatRole_Assistant,
			Content: m.Content,
		}
		for _, inv := range invocations {
			assistant.ToolCalls = append(assistant.ToolCalls, domain.ToolCall{
				ID:        inv.ToolCallID,
				Name:      inv.ToolName,
				Arguments: argsString(inv.Args),
			})
		}
		res = append(res, assistant)

		for _, inv := range invocations {
			result := string(inv.Result)
			res = append(res, domain.ChatMessage{
				Role:       domain.ChatRole_Tool,
				Content:    &result,
				ToolCallID: inv.ToolCallID,
			})
		}
	}
	return res
}

func argsString(args json.RawMessage) string {
	if len(args) == 0 || string(args) == "null" {
		return "{}"
	}
	return string(args)
}

// ScheduleTime is one start/stop window. A null pair is the "no schedule" placeholder.
type ScheduleTime struct {
	Start *string `json:"start"`
	Stop  *string `json:"stop"`
}

// ScheduleChangeReq is the body of the schedule change endpoint.
type ScheduleChangeReq struct {
	ChillerID   string         `json:"chiller_id"`
	ProfileType string         `json:"profile_type"`
	OldSchedule []ScheduleTime `json:"old_schedule"`
	NewSchedule []ScheduleTime `json:"new_schedule"`
}

// ScheduleChangeResp is the response of the schedule change endpoint.
type ScheduleChangeResp struct {
	Success bool                `json:"success"`
	Message string              `json:"message"`
	Data    *ScheduleChangeData `json:"data"`
}

// ScheduleChangeData echoes the applied schedule.
type ScheduleChangeData struct {
	ChillerID   string         `json:"chiller_id"`
	NewSchedule []ScheduleTime `json:"new_schedule"`
}

func toScheduleEntries(times []ScheduleTime) []domain.ScheduleEntry {
	res := make([]domain.ScheduleEntry, 0, len(times))
	for _, t := range times {
		var e domain.ScheduleEntry
		if t.Start != nil {
			e.Start = *t.Start
		}
		if t.Stop != nil {
			e.Stop = *t.Stop
		}
		res = append(res, e)
	}
	return res
}

func toScheduleTimes(entries []domain.ScheduleEntry) []ScheduleTime {
	res := make([]ScheduleTime, 0, len(entries))
	for _, e := range entries {
		var t ScheduleTime
		if e.Start != "" {
			t.Start = &e.Start
		}
		if e.Stop != "" {
			t.Stop = &e.Stop
		}
		res = append(res, t)
	}
	return res
}

// DeviceIDs accepts either a single device id or a list of ids.
type DeviceIDs []string

// UnmarshalJSON decodes a JSON string or an array of strings.
func (d *DeviceIDs) UnmarshalJSON(b []byte) error {
	var single string
	if err := json.Unmarshal(b, &single); err == nil {
		*d = DeviceIDs{single}
		return nil
	}
	var many []string
	if err := json.Unmarshal(b, &many); err != nil {
		return errors.New("device_id must be a string or an array of strings")
	}
	*d = many
	return nil
}

// MaintenanceFlagReq is the body of the maintenance flag endpoint.
type MaintenanceFlagReq struct {
	DeviceID        DeviceIDs `json:"device_id"`
	MaintenanceFlag bool      `json:"maintenance_flag"`
	ReporterName    string    `json:"reporter_name"`
	TechnicianName  string    `json:"technician_name"`
	Time            string    `json:"time"`
	Reason          string    `json:"reason"`
}

// MaintenanceFlagResp is the response of the maintenance flag endpoint.
type MaintenanceFlagResp struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Devices []string `json:"devices"`
}
