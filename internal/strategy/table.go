package strategy

// DealerLabels lists the dealer up-card columns of a strategy table in
// display order.
var DealerLabels = []string{"2", "3", "4", "5", "6", "7", "8", "9", "10", "A"}

type row map[string]Action

// Table is an action lookup keyed by (hand, dealer up-card), with an
// optional secondary layer keyed by integer count level. When count-based
// mode is enabled and the count is nonzero, the count layer is consulted
// first and falls back to the base layer.
type Table struct {
	countBased bool
	base       map[HandKey]row
	byCount    map[int]map[HandKey]row
}

// NewTable returns an empty strategy table.
func NewTable() *Table {
	return &Table{
		base:    make(map[HandKey]row),
		byCount: make(map[int]map[HandKey]row),
	}
}

// CountBased reports whether count-indexed overrides are consulted.
func (t *Table) CountBased() bool {
	return t.countBased
}

// SetCountBased toggles count-based mode.
func (t *Table) SetCountBased(enabled bool) {
	t.countBased = enabled
}

// SetAction sets the base-layer action for a cell.
func (t *Table) SetAction(key HandKey, dealer string, action Action) {
	r, ok := t.base[key]
	if !ok {
		r = make(row)
		t.base[key] = r
	}
	r[dealer] = action
}

// SetCountAction sets the action for a cell in the given count level's
// override layer.
func (t *Table) SetCountAction(level int, key HandKey, dealer string, action Action) {
	layer, ok := t.byCount[level]
	if !ok {
		layer = make(map[HandKey]row)
		t.byCount[level] = layer
	}
	r, ok := layer[key]
	if !ok {
		r = make(row)
		layer[key] = r
	}
	r[dealer] = action
}

// Get returns the base-layer action for a cell, if set.
func (t *Table) Get(key HandKey, dealer string) (Action, bool) {
	a, ok := t.base[key][dealer]
	return a, ok
}

// GetCount returns the count-layer action for a cell, if set.
func (t *Table) GetCount(level int, key HandKey, dealer string) (Action, bool) {
	a, ok := t.byCount[level][key][dealer]
	return a, ok
}

// Lookup resolves the action for a hand against a dealer up-card. When
// count-based mode is active and count is nonzero, the count layer is
// checked before the base layer. A Double found when doubling is not
// permitted downgrades to Hit, and a Split found when splitting is not
// permitted downgrades to Hit. Cells with no entry fall back to built-in
// heuristics: hard totals below 17 hit, soft totals below 19 hit, pairs
// stand.
func (t *Table) Lookup(key HandKey, dealer string, canDouble, canSplit bool, count int) Action {
	if t.countBased && count != 0 {
		if action, ok := t.byCount[count][key][dealer]; ok {
			return constrain(action, canDouble, canSplit)
		}
	}
	if action, ok := t.base[key][dealer]; ok {
		return constrain(action, canDouble, canSplit)
	}
	return defaultAction(key)
}

func constrain(action Action, canDouble, canSplit bool) Action {
	if action == Double && !canDouble {
		return Hit
	}
	if action == Split && !canSplit {
		return Hit
	}
	return action
}

func defaultAction(key HandKey) Action {
	switch key.Kind {
	case KindHard:
		if key.Total < 17 {
			return Hit
		}
		return Stand
	case KindSoft:
		if key.Total < 19 {
			return Hit
		}
		return Stand
	default:
		return Stand
	}
}

// Clone returns a deep copy of the table. Parallel simulation workers each
// receive their own clone.
func (t *Table) Clone() *Table {
	c := NewTable()
	c.countBased = t.countBased
	for key, r := range t.base {
		for dealer, action := range r {
			c.SetAction(key, dealer, action)
		}
	}
	for level, layer := range t.byCount {
		for key, r := range layer {
			for dealer, action := range r {
				c.SetCountAction(level, key, dealer, action)
			}
		}
	}
	return c
}

// CountLevels returns the count levels that carry at least one override.
func (t *Table) CountLevels() []int {
	levels := make([]int, 0, len(t.byCount))
	for level, layer := range t.byCount {
		if len(layer) > 0 {
			levels = append(levels, level)
		}
	}
	return levels
}
