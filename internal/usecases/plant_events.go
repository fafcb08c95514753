package usecases

import (
	"context"
	"encoding/json"

	"github.com/cleitonmarx/symbiont-ai-chillerplant/internal/domain"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// publishPlantEvent publishes a change that has already been applied to the store.
// Failures are logged and never returned to the caller.
func publishPlantEvent(
	ctx context.Context,
	publisher domain.PlantEventPublisher,
	logger zerolog.Logger,
	timeProvider domain.CurrentTimeProvider,
	eventType domain.PlantEventType,
	entityID string,
	payload any,
) {
	body, err := json.Marshal(payload)
	if err != nil {
		logger.Error().Err(err).Str("event_type", string(eventType)).Msg("failed to encode plant event")
		return
	}

	event := domain.PlantEvent{
		ID:         uuid.New(),
		Type:       eventType,
		EntityID:   entityID,
		Payload:    body,
		OccurredAt: timeProvider.Now(),
	}
	if err := publisher.Publish(ctx, event); err != nil {
		logger.Error().Err(err).
			Str("event_id", event.ID.String()).
			Str("event_type", string(eventType)).
			Str("entity_id", entityID).
			Msg("failed to publish plant event")
	}
}
