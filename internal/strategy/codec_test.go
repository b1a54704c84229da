package strategy

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportImportRoundTrip(t *testing.T) {
	table := Basic()
	table.SetCountBased(true)
	table.SetCountAction(3, Hard(16), "10", Stand)
	table.SetCountAction(3, Pair(10), "6", Split)
	table.SetCountAction(-1, Soft(18), "2", Hit)

	restored, err := FromPayload(table.Export())
	require.NoError(t, err)
	require.True(t, restored.CountBased())

	// Every explicit base entry survives.
	for key, r := range table.base {
		for dealer, action := range r {
			got, ok := restored.Get(key, dealer)
			require.True(t, ok, "%s vs %s lost", key.Label(), dealer)
			assert.Equal(t, action, got, "%s vs %s", key.Label(), dealer)
		}
	}

	// Count-layer entries survive with their levels.
	for _, tc := range []struct {
		level  int
		key    HandKey
		dealer string
		want   Action
	}{
		{3, Hard(16), "10", Stand},
		{3, Pair(10), "6", Split},
		{-1, Soft(18), "2", Hit},
	} {
		got, ok := restored.GetCount(tc.level, tc.key, tc.dealer)
		require.True(t, ok)
		assert.Equal(t, tc.want, got)
	}
}

func TestExportThroughJSON(t *testing.T) {
	table := Basic()
	data, err := json.Marshal(table.Export())
	require.NoError(t, err)

	var p Payload
	require.NoError(t, json.Unmarshal(data, &p))

	restored, err := FromPayload(p)
	require.NoError(t, err)

	got, ok := restored.Get(Hard(16), "10")
	require.True(t, ok)
	assert.Equal(t, Hit, got)
}

func TestPayloadLabels(t *testing.T) {
	table := NewTable()
	table.SetAction(Soft(18), "6", Double)
	table.SetAction(Pair(11), "A", Split)
	table.SetAction(Hard(16), "10", Hit)

	p := table.Export()
	assert.Contains(t, p.Soft, "18", "soft rows key by bare total")
	assert.Contains(t, p.Pairs, "A,A")
	assert.Contains(t, p.Hard, "16")
	assert.Equal(t, "D", p.Soft["18"]["6"])
}

func TestImportToleratesUnknownCodes(t *testing.T) {
	p := Payload{
		Hard: map[string]map[string]string{"16": {"10": "X"}},
	}
	table, err := FromPayload(p)
	require.NoError(t, err)
	got, ok := table.Get(Hard(16), "10")
	require.True(t, ok)
	assert.Equal(t, Hit, got)
}

func TestImportRejectsBadLabels(t *testing.T) {
	for _, p := range []Payload{
		{Hard: map[string]map[string]string{"banana": {"10": "H"}}},
		{Soft: map[string]map[string]string{"25": {"10": "H"}}},
		{Pairs: map[string]map[string]string{"A,K": {"10": "P"}}},
		{HardByCount: map[string]map[string]map[string]string{"two": {"16": {"10": "H"}}}},
	} {
		_, err := FromPayload(p)
		assert.Error(t, err)
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "strategy.json")
	table := Basic()
	require.NoError(t, table.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)

	got, ok := loaded.Get(Pair(8), "10")
	require.True(t, ok)
	assert.Equal(t, Split, got)
}
