package strategy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyLabels(t *testing.T) {
	tests := []struct {
		key   HandKey
		label string
	}{
		{Hard(16), "16"},
		{Hard(5), "5"},
		{Soft(18), "S18"},
		{Pair(11), "A,A"},
		{Pair(10), "10,10"},
		{Pair(8), "8,8"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.label, tt.key.Label())
	}
}

func TestParseKeyRoundTrip(t *testing.T) {
	keys := []HandKey{Hard(5), Hard(21), Soft(13), Soft(21), Pair(2), Pair(10), Pair(11)}
	for _, key := range keys {
		parsed, err := ParseKey(key.Label())
		require.NoError(t, err, "label %s", key.Label())
		assert.Equal(t, key, parsed)
	}
}

func TestParseKeyNormalizesTenValuePairs(t *testing.T) {
	for _, label := range []string{"K,K", "Q,Q", "J,J", "10,10"} {
		key, err := ParseKey(label)
		require.NoError(t, err)
		assert.Equal(t, Pair(10), key, "label %s", label)
	}
}

func TestParseKeyRejectsBadLabels(t *testing.T) {
	for _, label := range []string{"", "S9", "S25", "1", "22", "A,K", "X,X", "A,A,A"} {
		_, err := ParseKey(label)
		assert.Error(t, err, "label %q", label)
	}
}
