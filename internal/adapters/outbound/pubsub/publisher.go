package pubsub

import (
	"context"

	pubsubV2 "cloud.google.com/go/pubsub/v2"
	"github.com/cleitonmarx/symbiont-ai-chillerplant/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-chillerplant/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// PubSubEventPublisher implements domain.PlantEventPublisher using Google Cloud Pub/Sub
type PubSubEventPublisher struct {
	client *pubsubV2.Client
	topic  string
}

// NewPubSubEventPublisher creates a new instance of PubSubEventPublisher
func NewPubSubEventPublisher(client *pubsubV2.Client, topic string) PubSubEventPublisher {
	return PubSubEventPublisher{client: client, topic: topic}
}

// Publish sends the event to the configured topic and waits for the server ack.
func (p PubSubEventPublisher) Publish(ctx context.Context, event domain.PlantEvent) error {
	spanCtx, span := telemetry.Start(ctx,
		trace.WithAttributes(
			attribute.String("event_id", event.ID.String()),
			attribute.String("event_type", string(event.Type)),
			attribute.String("topic", p.topic),
		),
	)
	defer span.End()

	result := p.client.Publisher(p.topic).Publish(spanCtx, &pubsubV2.Message{
		Data: event.Payload,
		Attributes: map[string]string{
			"event_id":   event.ID.String(),
			"event_type": string(event.Type),
			"entity_id":  event.EntityID,
		},
	})

	_, err := result.Get(spanCtx)
	telemetry.RecordErrorAndStatus(span, err)
	return err
}

// LogEventPublisher writes plant events to the log instead of a broker.
type LogEventPublisher struct {
	logger zerolog.Logger
}

// NewLogEventPublisher creates a LogEventPublisher.
func NewLogEventPublisher(logger zerolog.Logger) LogEventPublisher {
	return LogEventPublisher{logger: logger}
}

// Publish logs the event.
func (p LogEventPublisher) Publish(_ context.Context, event domain.PlantEvent) error {
	e := p.logger.Info().
		Str("event_id", event.ID.String()).
		Str("event_type", string(event.Type)).
		Str("entity_id", event.EntityID)
	if len(event.Payload) > 0 {
		e = e.RawJSON("payload", event.Payload)
	}
	e.Msg("plant event")
	return nil
}

// InitPublisher registers the domain.PlantEventPublisher: Pub/Sub when a client is
// available, the log publisher otherwise.
type InitPublisher struct {
	Logger    zerolog.Logger `resolve:""`
	ProjectID string         `config:"PUBSUB_PROJECT_ID" default:"-"`
	TopicID   string         `config:"PUBSUB_TOPIC_ID" default:"chiller-plant-events"`
}

// Initialize registers the publisher implementation.
func (i *InitPublisher) Initialize(ctx context.Context) (context.Context, error) {
	if i.ProjectID == disabledProjectID {
		depend.Register[domain.PlantEventPublisher](NewLogEventPublisher(i.Logger))
		return ctx, nil
	}

	client, err := depend.Resolve[*pubsubV2.Client]()
	if err != nil {
		return ctx, err
	}
	depend.Register[domain.PlantEventPublisher](NewPubSubEventPublisher(client, i.TopicID))
	return ctx, nil
}
