package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/cleitonmarx/symbiont-ai-chillerplant/internal/common"
	"github.com/cleitonmarx/symbiont-ai-chillerplant/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToError(t *testing.T) {
	tests := map[string]struct {
		err            error
		expectedStatus int
		expectedResp   ErrorResp
	}{
		"validation": {
			err:            domain.NewValidationErr("Invalid time format"),
			expectedStatus: http.StatusBadRequest,
			expectedResp:   newErrorResp(ErrorCode_BadRequest, "Invalid time format"),
		},
		"invalid-arguments": {
			err:            domain.NewInvalidArgumentsErr("invalid arguments for add_schedule"),
			expectedStatus: http.StatusBadRequest,
			expectedResp:   newErrorResp(ErrorCode_BadRequest, "invalid arguments for add_schedule"),
		},
		"not-found": {
			err:            domain.NewNotFoundErr("Device pump_9 not found"),
			expectedStatus: http.StatusNotFound,
			expectedResp:   newErrorResp(ErrorCode_NotFound, "Device pump_9 not found"),
		},
		"wrapped-conflict": {
			err:            fmt.Errorf("confirm: %w", domain.NewConflictErr("Schedule conflict detected")),
			expectedStatus: http.StatusConflict,
			expectedResp:   newErrorResp(ErrorCode_Conflict, "Schedule conflict detected"),
		},
		"unavailable": {
			err:            domain.NewUnavailableErr("schedule store unavailable", errors.New("dial tcp")),
			expectedStatus: http.StatusServiceUnavailable,
			expectedResp:   newErrorResp(ErrorCode_Unavailable, "schedule store unavailable"),
		},
		"unexpected": {
			err:            errors.New("boom"),
			expectedStatus: http.StatusInternalServerError,
			expectedResp:   newErrorResp(ErrorCode_InternalError, "internal server error"),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			status, resp := toError(tt.err)
			assert.Equal(t, tt.expectedStatus, status)
			assert.Equal(t, tt.expectedResp, resp)
		})
	}
}

func TestToChatMessages(t *testing.T) {
	tests := map[string]struct {
		body     string
		expected []domain.ChatMessage
	}{
		"plain-messages": {
			body: `{"messages":[{"role":"user","content":"hi"},{"role":"assistant","content":"hello"}]}`,
			expected: []domain.ChatMessage{
				{Role: domain.ChatRole_User, Content: common.Ptr("hi")},
				{Role: domain.ChatRole_Assistant, Content: common.Ptr("hello")},
			},
		},
		"tool-invocations": {
			body: `{"messages":[{"role":"assistant","content":"","toolInvocations":[
				{"toolCallId":"call_1","toolName":"get_schedule","args":{"profile_type":"weekday"},"result":{"normal_chiller":[]}},
				{"toolCallId":"call_2","toolName":"get_all_chillers","result":{}},
				{"toolCallId":"call_3","toolName":"get_chiller_status","args":{"chiller_id":"chiller_1"}}
			]}]}`,
			expected: []domain.ChatMessage{
				{
					Role:    domain.ChatRole_Assistant,
					Content: common.Ptr(""),
					ToolCalls: []domain.ToolCall{
						{ID: "call_1", Name: "get_schedule", Arguments: `{"profile_type":"weekday"}`},
						{ID: "call_2", Name: "get_all_chillers", Arguments: `{}`},
					},
				},
				{Role: domain.ChatRole_Tool, Content: common.Ptr(`{"normal_chiller":[]}`), ToolCallID: "call_1"},
				{Role: domain.ChatRole_Tool, Content: common.Ptr(`{}`), ToolCallID: "call_2"},
			},
		},
		"null-content": {
			body: `{"messages":[{"role":"assistant","content":null}]}`,
			expected: []domain.ChatMessage{
				{Role: domain.ChatRole_Assistant},
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var req ChatRequest
			require.NoError(t, json.Unmarshal([]byte(tt.body), &req))
			assert.Equal(t, tt.expected, toChatMessages(req.Messages))
		})
	}
}

func TestDeviceIDs_UnmarshalJSON(t *testing.T) {
	tests := map[string]struct {
		body        string
		expected    DeviceIDs
		expectedErr bool
	}{
		"single":  {body: `"chiller_1"`, expected: DeviceIDs{"chiller_1"}},
		"list":    {body: `["chiller_1","pchp_2"]`, expected: DeviceIDs{"chiller_1", "pchp_2"}},
		"invalid": {body: `42`, expectedErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var ids DeviceIDs
			err := json.Unmarshal([]byte(tt.body), &ids)
			if tt.expectedErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, ids)
		})
	}
}

func TestScheduleTimesRoundTrip(t *testing.T) {
	times := []ScheduleTime{{Start: common.Ptr("08:00"), Stop: common.Ptr("18:00")}, {}}

	entries := toScheduleEntries(times)
	assert.Equal(t, []domain.ScheduleEntry{{Start: "08:00", Stop: "18:00"}, {}}, entries)
	assert.Equal(t, times, toScheduleTimes(entries))
}
