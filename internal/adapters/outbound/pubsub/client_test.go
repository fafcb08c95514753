package pubsub

import (
	"context"
	"testing"

	pubsubV2 "cloud.google.com/go/pubsub/v2"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestInitClient_Initialize(t *testing.T) {
	t.Cleanup(depend.ClearContainer)

	init := &InitClient{
		Logger: zerolog.Nop(),
		client: newTestClient(t),
	}

	_, err := init.Initialize(context.Background())
	assert.NoError(t, err)

	_, err = depend.Resolve[*pubsubV2.Client]()
	assert.NoError(t, err)

	init.Close()
}

func TestInitClient_Disabled(t *testing.T) {
	depend.ClearContainer()
	t.Cleanup(depend.ClearContainer)

	init := &InitClient{Logger: zerolog.Nop(), ProjectID: "-"}

	_, err := init.Initialize(context.Background())
	assert.NoError(t, err)

	_, err = depend.Resolve[*pubsubV2.Client]()
	assert.Error(t, err)

	init.Close()
}
