package usecases

import (
	"context"
	"embed"
	"fmt"
	"time"

	"github.com/cleitonmarx/symbiont-ai-chillerplant/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/toon-format/toon-go"
	"go.yaml.in/yaml/v3"
)

//go:embed prompts/system.yml
var systemPrompt embed.FS

// EquipmentGroup lists the devices of one equipment model.
type EquipmentGroup struct {
	Model   string   `yaml:"model" json:"model" toon:"model"`
	Devices []string `yaml:"devices" json:"devices" toon:"devices"`
}

type systemPromptFile struct {
	Site struct {
		Equipment []EquipmentGroup `yaml:"equipment"`
	} `yaml:"site"`
	Messages []domain.ChatMessage `yaml:"messages"`
}

// SystemPromptBuilder builds the instruction message prepended to every conversation.
type SystemPromptBuilder interface {
	Build(ctx context.Context) (domain.ChatMessage, error)
}

// SystemPromptBuilderImpl renders prompts/system.yml for the configured site.
type SystemPromptBuilderImpl struct {
	siteID       string
	language     string
	location     *time.Location
	timeProvider domain.CurrentTimeProvider
	equipment    string
	template     domain.ChatMessage
}

// NewSystemPromptBuilderImpl loads the embedded prompt and encodes the equipment inventory.
func NewSystemPromptBuilderImpl(
	siteID, language string,
	location *time.Location,
	timeProvider domain.CurrentTimeProvider,
) (SystemPromptBuilderImpl, error) {
	file, err := systemPrompt.Open("prompts/system.yml")
	if err != nil {
		return SystemPromptBuilderImpl{}, fmt.Errorf("failed to open system prompt: %w", err)
	}
	defer file.Close() //nolint:errcheck

	var pf systemPromptFile
	if err := yaml.NewDecoder(file).Decode(&pf); err != nil {
		return SystemPromptBuilderImpl{}, fmt.Errorf("failed to decode system prompt: %w", err)
	}
	if len(pf.Messages) != 1 || pf.Messages[0].Role != domain.ChatRole_System {
		return SystemPromptBuilderImpl{}, fmt.Errorf("system prompt must hold exactly one system message")
	}

	equipment, err := toon.MarshalString(pf.Site.Equipment, toon.WithLengthMarkers(true))
	if err != nil {
		return SystemPromptBuilderImpl{}, fmt.Errorf("failed to marshal equipment inventory: %w", err)
	}

	return SystemPromptBuilderImpl{
		siteID:       siteID,
		language:     language,
		location:     location,
		timeProvider: timeProvider,
		equipment:    equipment,
		template:     pf.Messages[0],
	}, nil
}

// Build implements SystemPromptBuilder.
func (b SystemPromptBuilderImpl) Build(_ context.Context) (domain.ChatMessage, error) {
	now := b.timeProvider.Now().In(b.location)

	content := fmt.Sprintf(b.template.Text(),
		b.siteID,
		b.location.String(),
		now.Format("2006-01-02 15:04:05 MST"),
		now.Weekday().String(),
		b.equipment,
		now.Format("15:04"),
		dayType(now),
		b.language,
	)
	return domain.ChatMessage{Role: domain.ChatRole_System, Content: &content}, nil
}

func dayType(t time.Time) string {
	switch t.Weekday() {
	case time.Saturday, time.Sunday:
		return "weekend"
	default:
		return "weekday"
	}
}

// InitSystemPromptBuilder initializes the SystemPromptBuilder.
type InitSystemPromptBuilder struct {
	TimeProvider domain.CurrentTimeProvider `resolve:""`
	Location     *time.Location             `resolve:""`
	SiteID       string                     `config:"SITE_ID" default:"CP10"`
	Language     string                     `config:"ASSISTANT_RESPONSE_LANGUAGE" default:"Thai"`
}

// Initialize registers the SystemPromptBuilder implementation.
func (i InitSystemPromptBuilder) Initialize(ctx context.Context) (context.Context, error) {
	builder, err := NewSystemPromptBuilderImpl(i.SiteID, i.Language, i.Location, i.TimeProvider)
	if err != nil {
		return ctx, err
	}
	depend.Register[SystemPromptBuilder](builder)
	return ctx, nil
}
