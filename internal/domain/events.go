package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// PlantEventType is the type of a plant change event.
type PlantEventType string

const (
	PlantEventType_SCHEDULE_CHANGED         PlantEventType = "SCHEDULE_CHANGED"
	PlantEventType_MAINTENANCE_FLAG_CHANGED PlantEventType = "MAINTENANCE_FLAG_CHANGED"
)

// PlantEvent describes a change applied to the plant configuration.
type PlantEvent struct {
	ID         uuid.UUID
	Type       PlantEventType
	EntityID   string
	Payload    []byte
	OccurredAt time.Time
}

// PlantEventPublisher publishes plant change events to downstream consumers.
type PlantEventPublisher interface {
	Publish(ctx context.Context, event PlantEvent) error
}
