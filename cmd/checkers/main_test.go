package main

import (
	"testing"

	"github.com/stretchr/testify/require"

	"checkers/internal/core"
)

func TestSeating(t *testing.T) {
	tests := []struct {
		flag   string
		p1, p2 core.PlayerType
	}{
		{"none", core.PlayerHuman, core.PlayerHuman},
		{"1", core.PlayerComputer, core.PlayerHuman},
		{"2", core.PlayerHuman, core.PlayerComputer},
		{"both", core.PlayerComputer, core.PlayerComputer},
	}
	for _, tt := range tests {
		t.Run(tt.flag, func(t *testing.T) {
			p1, p2, err := seating(tt.flag)
			require.NoError(t, err)
			require.Equal(t, tt.p1, p1)
			require.Equal(t, tt.p2, p2)
		})
	}

	_, _, err := seating("3")
	require.Error(t, err)
}
