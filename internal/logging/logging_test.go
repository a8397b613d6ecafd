package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	testCases := []struct {
		name      string
		level     string
		format    string
		wantLevel zapcore.Level
		wantErr   bool
	}{
		{name: "json info", level: "info", format: FormatJSON, wantLevel: zapcore.InfoLevel},
		{name: "console debug", level: "debug", format: FormatConsole, wantLevel: zapcore.DebugLevel},
		{name: "empty format defaults to json", level: "warn", format: "", wantLevel: zapcore.WarnLevel},
		{name: "bad level", level: "loud", format: FormatJSON, wantErr: true},
		{name: "bad format", level: "info", format: "xml", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			logger, err := New(tc.level, tc.format)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, logger.Core().Enabled(tc.wantLevel))
			assert.False(t, logger.Core().Enabled(tc.wantLevel-1))
		})
	}
}
