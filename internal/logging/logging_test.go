package logging_test

import (
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smokifit/smokifit/internal/logging"
)

func TestNew_LevelParsing(t *testing.T) {
	tests := []struct {
		name  string
		level string
		want  zerolog.Level
	}{
		{name: "debug", level: "debug", want: zerolog.DebugLevel},
		{name: "warn", level: "warn", want: zerolog.WarnLevel},
		{name: "empty falls back to info", level: "", want: zerolog.InfoLevel},
		{name: "garbage falls back to info", level: "loud", want: zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := logging.New(logging.Config{Level: tt.level})
			defer func() { _ = s.Close() }()
			assert.Equal(t, tt.want, s.Logger.GetLevel())
		})
	}
}

func TestNew_FileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "smokifit.log")

	s := logging.New(logging.Config{Level: "info", File: path})
	s.Logger.Info().Msg("hello")
	require.NoError(t, s.Close())

	// Closing twice is safe.
	require.NoError(t, s.Close())

	assert.FileExists(t, path)
}

func TestComponentLogger(t *testing.T) {
	s := logging.New(logging.Config{Level: "info"})
	defer func() { _ = s.Close() }()

	child := logging.ComponentLogger(s.Logger, "session")
	// The child keeps the parent's level configuration.
	assert.Equal(t, s.Logger.GetLevel(), child.GetLevel())
}
