package ecscore_test

import (
	"testing"

	"github.com/kestrelnet/ecscore"
	"github.com/stretchr/testify/require"
)

func TestKindString(t *testing.T) {
	require.Equal(t, "Standard", ecscore.Standard.String())
	require.Equal(t, "Empty", ecscore.Empty.String())
	require.Equal(t, "Unknown", ecscore.Kind(0).String())
}
