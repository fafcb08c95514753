package time

import (
	"context"
	"testing"
	"time"

	"github.com/cleitonmarx/symbiont-ai-chillerplant/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
)

func TestInitSiteClock_Initialize(t *testing.T) {
	tests := map[string]struct {
		timezone  string
		expectErr bool
	}{
		"bangkok":      {timezone: "Asia/Bangkok"},
		"utc":          {timezone: "UTC"},
		"invalid-zone": {timezone: "Mars/Olympus_Mons", expectErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := InitSiteClock{Timezone: tt.timezone}.Initialize(context.Background())
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)

			clock, err := depend.Resolve[domain.CurrentTimeProvider]()
			assert.NoError(t, err)
			assert.Equal(t, tt.timezone, clock.Now().Location().String())

			loc, err := depend.Resolve[*time.Location]()
			assert.NoError(t, err)
			assert.Equal(t, tt.timezone, loc.String())
		})
	}
}

func TestSiteClock_Now(t *testing.T) {
	clock := NewSiteClock(time.UTC)
	now := clock.Now()
	assert.WithinDuration(t, time.Now(), now, time.Second)
	assert.Equal(t, time.UTC, now.Location())
}
