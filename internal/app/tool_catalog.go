package app

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/cleitonmarx/symbiont-ai-chillerplant/internal/domain"
	"github.com/google/jsonschema-go/jsonschema"
)

// ToolCatalogEntry is one tool as advertised to the model.
type ToolCatalogEntry struct {
	Name          string             `json:"name"`
	Description   string             `json:"description"`
	StatusMessage string             `json:"status_message"`
	Parameters    *jsonschema.Schema `json:"parameters,omitempty"`
}

// ToolCatalogPrinter writes the advertised tool catalog as JSON and then calls Done.
type ToolCatalogPrinter struct {
	Registry domain.ToolRegistry `resolve:""`
	Out      io.Writer
	Done     context.CancelFunc
}

// Run prints the catalog once.
func (p *ToolCatalogPrinter) Run(ctx context.Context) error {
	if p.Done != nil {
		defer p.Done()
	}
	defs := p.Registry.List()
	entries := make([]ToolCatalogEntry, 0, len(defs))
	for _, def := range defs {
		entries = append(entries, ToolCatalogEntry{
			Name:          def.Name,
			Description:   def.Description,
			StatusMessage: p.Registry.StatusMessage(def.Name),
			Parameters:    def.InputSchema,
		})
	}

	enc := json.NewEncoder(p.Out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(entries); err != nil {
		return fmt.Errorf("failed to write tool catalog: %w", err)
	}
	return nil
}

// IsReady always succeeds; the printer has nothing to wait for.
func (p *ToolCatalogPrinter) IsReady(context.Context) error {
	return nil
}
