package mongodb

import (
	"context"
	"fmt"
	"time"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
	"go.opentelemetry.io/contrib/instrumentation/go.mongodb.org/mongo-driver/v2/mongo/otelmongo"
)

const (
	connectTimeout    = 5 * time.Second
	disconnectTimeout = 5 * time.Second
)

// InitMongoClient connects to MongoDB and registers the shared *mongo.Client.
// An unreachable server does not fail startup; repository calls report it instead.
type InitMongoClient struct {
	Logger zerolog.Logger `resolve:""`
	URI    string         `config:"MONGODB_URI" default:"mongodb://localhost:27017"`
	client *mongo.Client
}

// Initialize creates the client with command tracing and pings the primary.
func (i *InitMongoClient) Initialize(ctx context.Context) (context.Context, error) {
	opts := options.Client().
		ApplyURI(i.URI).
		SetMonitor(otelmongo.NewMonitor()).
		SetServerSelectionTimeout(connectTimeout).
		SetConnectTimeout(connectTimeout)

	client, err := mongo.Connect(opts)
	if err != nil {
		return ctx, fmt.Errorf("failed to create mongo client: %w", err)
	}
	i.client = client

	pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		i.Logger.Warn().Err(err).Msg("mongodb is not reachable yet")
	} else {
		i.Logger.Info().Msg("connected to mongodb")
	}

	depend.Register(client)
	return ctx, nil
}

// Close disconnects the client.
func (i *InitMongoClient) Close() {
	if i.client == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), disconnectTimeout)
	defer cancel()
	if err := i.client.Disconnect(ctx); err != nil {
		i.Logger.Error().Err(err).Msg("failed to disconnect mongo client")
	}
}
