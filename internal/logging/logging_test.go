package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestSetupLevels(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.InfoLevel)

	var buf bytes.Buffer
	Setup(&buf, false)
	require.False(t, Enabled())
	Debugf("hidden %d", 1)
	require.Empty(t, buf.String())

	Setup(&buf, true)
	require.True(t, Enabled())
	Debugf("shown %d", 2)
	require.Contains(t, buf.String(), "shown 2")
	require.Contains(t, buf.String(), "DBG")
}
