package tools

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/cleitonmarx/symbiont-ai-chillerplant/internal/domain"
	"github.com/google/jsonschema-go/jsonschema"
)

// envelope is the success/message/data shape the UI cards understand.
type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// scheduleEntryView renders empty times as null.
type scheduleEntryView struct {
	Start *string `json:"start"`
	Stop  *string `json:"stop"`
}

// unmarshalToolInput decodes exactly one JSON object into target, rejecting unknown fields.
func unmarshalToolInput(args json.RawMessage, target any) error {
	decoder := json.NewDecoder(strings.NewReader(string(args)))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(target); err != nil {
		return domain.NewInvalidArgumentsErr(fmt.Sprintf("failed to parse tool input: %s", err))
	}

	var extra any
	if err := decoder.Decode(&extra); !errors.Is(err, io.EOF) {
		return domain.NewInvalidArgumentsErr("tool arguments must contain a single JSON object")
	}
	return nil
}

// scheduleEntriesView renders entries for the UI. An empty list becomes a single
// placeholder entry so the card always has a row to show.
func scheduleEntriesView(entries []domain.ScheduleEntry) []scheduleEntryView {
	if len(entries) == 0 {
		return []scheduleEntryView{{}}
	}
	res := make([]scheduleEntryView, 0, len(entries))
	for _, e := range entries {
		res = append(res, scheduleEntryView{Start: optional(e.Start), Stop: optional(e.Stop)})
	}
	return res
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// isRejection reports whether err is a business rule rejection the assistant should
// read as a failed outcome rather than a tool failure.
func isRejection(err error) bool {
	var (
		validationErr *domain.ValidationErr
		conflictErr   *domain.ConflictErr
		notFoundErr   *domain.NotFoundErr
	)
	return errors.As(err, &validationErr) || errors.As(err, &conflictErr) || errors.As(err, &notFoundErr)
}

func enumOf(values ...string) []any {
	res := make([]any, 0, len(values))
	for _, v := range values {
		res = append(res, v)
	}
	return res
}

func profileTypeSchema(description string) *jsonschema.Schema {
	values := make([]string, 0, len(domain.ScheduleProfiles))
	for _, p := range domain.ScheduleProfiles {
		values = append(values, string(p))
	}
	return &jsonschema.Schema{
		Type:        "string",
		Enum:        enumOf(values...),
		Description: description,
	}
}

func chillerIDSchema(description string, extra ...string) *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:        "string",
		Enum:        enumOf(append(extra, domain.ChillerIDs...)...),
		Description: description,
	}
}

func scheduleTimeSchema(description string) *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:        "string",
		Pattern:     domain.ScheduleTimePattern,
		Description: description,
	}
}

func scheduleEntriesSchema(description string) *jsonschema.Schema {
	minItems := 1
	return &jsonschema.Schema{
		Type:        "array",
		Description: description,
		MinItems:    &minItems,
		Items: &jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"start": scheduleTimeSchema("Start time in HH:MM format"),
				"stop":  scheduleTimeSchema("Stop time in HH:MM format"),
			},
			Required: []string{"start", "stop"},
		},
	}
}
