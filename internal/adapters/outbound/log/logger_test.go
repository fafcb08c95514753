package log

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitLogger_Initialize(t *testing.T) {
	init := InitLogger{Level: "debug", Format: "json"}

	_, err := init.Initialize(context.Background())
	assert.NoError(t, err)

	logger, err := depend.Resolve[zerolog.Logger]()
	assert.NoError(t, err)
	assert.Equal(t, zerolog.DebugLevel, logger.GetLevel())
}

func TestNewLogger(t *testing.T) {
	tests := map[string]struct {
		level      string
		format     string
		expectErr  bool
		validateFn func(t *testing.T, out string)
	}{
		"json-output": {
			level:  "info",
			format: "json",
			validateFn: func(t *testing.T, out string) {
				var line map[string]any
				require.NoError(t, json.Unmarshal([]byte(out), &line))
				assert.Equal(t, "hello", line["message"])
				assert.Equal(t, "chillerplant", line["service"])
				assert.Equal(t, "info", line["level"])
			},
		},
		"console-output": {
			level:  "INFO",
			format: "console",
			validateFn: func(t *testing.T, out string) {
				assert.Contains(t, out, "hello")
				assert.Contains(t, out, "INF")
			},
		},
		"empty-level-defaults-to-info": {
			level:  "",
			format: "json",
			validateFn: func(t *testing.T, out string) {
				assert.Contains(t, out, `"level":"info"`)
			},
		},
		"invalid-level": {
			level:     "loud",
			expectErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			logger, err := NewLogger(buf, tt.level, tt.format)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)

			logger.Debug().Msg("filtered")
			logger.Info().Msg("hello")
			assert.NotContains(t, buf.String(), "filtered")
			tt.validateFn(t, buf.String())
		})
	}
}
