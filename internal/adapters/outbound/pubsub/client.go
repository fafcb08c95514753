package pubsub

import (
	"context"
	"fmt"

	pubsubV2 "cloud.google.com/go/pubsub/v2"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/rs/zerolog"
)

// disabledProjectID turns Pub/Sub off; plant events are then only logged.
const disabledProjectID = "-"

// InitClient creates the Pub/Sub client unless PUBSUB_PROJECT_ID is "-".
type InitClient struct {
	Logger    zerolog.Logger `resolve:""`
	ProjectID string         `config:"PUBSUB_PROJECT_ID" default:"-"`
	client    *pubsubV2.Client
}

func (i *InitClient) Initialize(ctx context.Context) (context.Context, error) {
	if i.client == nil {
		if i.ProjectID == disabledProjectID {
			i.Logger.Info().Msg("pubsub disabled, plant events will only be logged")
			return ctx, nil
		}
		client, err := pubsubV2.NewClient(ctx, i.ProjectID)
		if err != nil {
			return ctx, fmt.Errorf("failed to create pubsub client: %w", err)
		}
		i.client = client
	}

	depend.Register(i.client)

	return ctx, nil
}

func (i *InitClient) Close() {
	if i.client == nil {
		return
	}
	if err := i.client.Close(); err != nil {
		i.Logger.Error().Err(err).Msg("failed to close pubsub client")
	}
}
