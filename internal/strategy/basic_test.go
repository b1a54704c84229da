package strategy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBasicReferenceCells(t *testing.T) {
	table := Basic()

	tests := []struct {
		key    HandKey
		dealer string
		want   Action
	}{
		{Hard(16), "10", Hit},
		{Hard(12), "4", Stand},
		{Hard(12), "2", Hit},
		{Hard(11), "6", Double},
		{Hard(11), "A", Hit},
		{Hard(10), "10", Hit},
		{Hard(9), "3", Double},
		{Hard(9), "2", Hit},
		{Hard(17), "A", Stand},
		{Soft(18), "3", Double},
		{Soft(18), "2", Stand},
		{Soft(18), "9", Hit},
		{Soft(19), "6", Stand},
		{Soft(13), "5", Double},
		{Soft(13), "4", Hit},
		{Pair(11), "A", Split},
		{Pair(8), "10", Split},
		{Pair(10), "6", Stand},
		{Pair(9), "7", Stand},
		{Pair(9), "9", Split},
		{Pair(5), "9", Double},
		{Pair(5), "10", Hit},
		{Pair(4), "5", Split},
		{Pair(4), "4", Hit},
	}

	for _, tt := range tests {
		got, ok := table.Get(tt.key, tt.dealer)
		require.True(t, ok, "%s vs %s has no entry", tt.key.Label(), tt.dealer)
		assert.Equal(t, tt.want, got, "%s vs %s", tt.key.Label(), tt.dealer)
	}
}

func TestBasicCoversEveryCell(t *testing.T) {
	table := Basic()

	var keys []HandKey
	for total := 5; total <= 21; total++ {
		keys = append(keys, Hard(total))
	}
	for total := 13; total <= 21; total++ {
		keys = append(keys, Soft(total))
	}
	for value := 2; value <= 11; value++ {
		keys = append(keys, Pair(value))
	}

	for _, key := range keys {
		for _, dealer := range DealerLabels {
			_, ok := table.Get(key, dealer)
			assert.True(t, ok, "missing %s vs %s", key.Label(), dealer)
		}
	}
}
