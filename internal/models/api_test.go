package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCreateGameRequest_Validate(t *testing.T) {
	// Zero dimensions default to 8x8
	req := CreateGameRequest{}
	require.NoError(t, req.Validate())
	require.Equal(t, 8, req.Height)
	require.Equal(t, 8, req.Width)

	// Explicit dimensions are kept
	req = CreateGameRequest{Height: 4, Width: 6}
	require.NoError(t, req.Validate())
	require.Equal(t, 4, req.Height)
	require.Equal(t, 6, req.Width)

	// Field notation runs out of column letters beyond 26
	req = CreateGameRequest{Height: 8, Width: 28}
	require.Error(t, req.Validate())
}
