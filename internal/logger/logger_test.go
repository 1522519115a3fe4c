package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew_Levels(t *testing.T) {
	cases := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		"info":    zapcore.InfoLevel,
		"warn":    zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"verbose": zapcore.InfoLevel,
	}
	for name, want := range cases {
		t.Run(name, func(t *testing.T) {
			log, err := New("test", name)
			require.NoError(t, err)
			assert.True(t, log.Core().Enabled(want))
			if want > zapcore.DebugLevel {
				assert.False(t, log.Core().Enabled(want-1))
			}
		})
	}
}
