package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestListenPortValue(t *testing.T) {
	port, err := listenPortValue(9000)
	require.NoError(t, err)
	require.Equal(t, uint16(9000), port)

	port, err = listenPortValue(65535)
	require.NoError(t, err)
	require.Equal(t, uint16(65535), port)

	// Out-of-range values must error rather than wrap around (70000 would
	// otherwise truncate to 4464).
	_, err = listenPortValue(70000)
	require.Error(t, err)
	require.Contains(t, err.Error(), "70000")
}
