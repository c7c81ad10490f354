package shared

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimestampID_IsDecimalMillis(t *testing.T) {
	id := TimestampID()
	ms, err := strconv.ParseInt(id, 10, 64)
	require.NoError(t, err)
	assert.Greater(t, ms, int64(0))
}

func TestTimestampID_NoUniquenessGuarantee(t *testing.T) {
	// Rapid sequential calls may return equal values; the contract only
	// promises a well-formed token, so assert nothing beyond that.
	a := TimestampID()
	b := TimestampID()
	assert.NotEmpty(t, a)
	assert.NotEmpty(t, b)
}

func TestRandomID_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := RandomID()
		require.NotEmpty(t, id)
		require.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}
