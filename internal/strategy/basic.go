package strategy

import "strings"

// Basic returns the canonical multi-deck basic strategy table for a
// dealer-stands-on-17 game with double after split. Columns run dealer
// 2 through 10 then Ace.
func Basic() *Table {
	t := NewTable()

	hard := map[int]string{
		5:  "H H H H H H H H H H",
		6:  "H H H H H H H H H H",
		7:  "H H H H H H H H H H",
		8:  "H H H H H H H H H H",
		9:  "H D D D D H H H H H",
		10: "D D D D D D D D H H",
		11: "D D D D D D D D D H",
		12: "H H S S S H H H H H",
		13: "S S S S S H H H H H",
		14: "S S S S S H H H H H",
		15: "S S S S S H H H H H",
		16: "S S S S S H H H H H",
		17: "S S S S S S S S S S",
		18: "S S S S S S S S S S",
		19: "S S S S S S S S S S",
		20: "S S S S S S S S S S",
		21: "S S S S S S S S S S",
	}
	for total, codes := range hard {
		setRow(t, Hard(total), codes)
	}

	soft := map[int]string{
		13: "H H H D D H H H H H",
		14: "H H H D D H H H H H",
		15: "H H D D D H H H H H",
		16: "H H D D D H H H H H",
		17: "H D D D D H H H H H",
		18: "S D D D D S S H H H",
		19: "S S S S S S S S S S",
		20: "S S S S S S S S S S",
		21: "S S S S S S S S S S",
	}
	for total, codes := range soft {
		setRow(t, Soft(total), codes)
	}

	pairs := map[int]string{
		11: "P P P P P P P P P P",
		10: "S S S S S S S S S S",
		9:  "P P P P P S P P S S",
		8:  "P P P P P P P P P P",
		7:  "P P P P P P H H H H",
		6:  "P P P P P H H H H H",
		5:  "D D D D D D D D H H",
		4:  "H H H P P H H H H H",
		3:  "P P P P P P H H H H",
		2:  "P P P P P P H H H H",
	}
	for value, codes := range pairs {
		setRow(t, Pair(value), codes)
	}

	return t
}

func setRow(t *Table, key HandKey, codes string) {
	fields := strings.Fields(codes)
	for i, dealer := range DealerLabels {
		t.SetAction(key, dealer, ParseAction(fields[i]))
	}
}
