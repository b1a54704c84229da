package strategy

import (
	"fmt"
	"strconv"
	"strings"
)

// KeyKind discriminates the three strategy table families.
type KeyKind uint8

const (
	KindHard KeyKind = iota
	KindSoft
	KindPair
)

// HandKey identifies one row of a strategy table: a hard total (5-21), a
// soft total (13-21), or a pair by blackjack value (2-11, 11 meaning Aces).
// Using a closed key type avoids the rank-vs-value ambiguity that
// string-keyed tables suffer for ten-value pairs.
type HandKey struct {
	Kind  KeyKind
	Total int // hard or soft total; for pairs, the per-card value
}

// Hard returns the key for a hard total.
func Hard(total int) HandKey {
	return HandKey{Kind: KindHard, Total: total}
}

// Soft returns the key for a soft total.
func Soft(total int) HandKey {
	return HandKey{Kind: KindSoft, Total: total}
}

// Pair returns the key for a pair of cards with the given blackjack value.
// Ten-value pairs share one key regardless of rank; Aces are value 11.
func Pair(value int) HandKey {
	return HandKey{Kind: KindPair, Total: value}
}

// Label renders the key in the exchange-format notation: "16" for hard
// totals, "S18" for soft totals, "A,A"/"10,10"/"8,8" for pairs.
func (k HandKey) Label() string {
	switch k.Kind {
	case KindSoft:
		return "S" + strconv.Itoa(k.Total)
	case KindPair:
		sym := strconv.Itoa(k.Total)
		if k.Total == 11 {
			sym = "A"
		}
		return sym + "," + sym
	default:
		return strconv.Itoa(k.Total)
	}
}

// ParseKey parses a hand label in exchange-format notation.
func ParseKey(label string) (HandKey, error) {
	label = strings.TrimSpace(label)
	switch {
	case strings.Contains(label, ","):
		parts := strings.SplitN(label, ",", 2)
		first := strings.TrimSpace(parts[0])
		second := strings.TrimSpace(parts[1])
		if first != second {
			return HandKey{}, fmt.Errorf("invalid pair label %q", label)
		}
		value, err := pairValue(first)
		if err != nil {
			return HandKey{}, fmt.Errorf("invalid pair label %q: %w", label, err)
		}
		return Pair(value), nil
	case strings.HasPrefix(label, "S"):
		total, err := strconv.Atoi(label[1:])
		if err != nil || total < 12 || total > 21 {
			return HandKey{}, fmt.Errorf("invalid soft total label %q", label)
		}
		return Soft(total), nil
	default:
		total, err := strconv.Atoi(label)
		if err != nil || total < 2 || total > 21 {
			return HandKey{}, fmt.Errorf("invalid hard total label %q", label)
		}
		return Hard(total), nil
	}
}

func pairValue(sym string) (int, error) {
	switch sym {
	case "A":
		return 11, nil
	case "J", "Q", "K":
		return 10, nil
	default:
		v, err := strconv.Atoi(sym)
		if err != nil || v < 2 || v > 11 {
			return 0, fmt.Errorf("bad pair rank %q", sym)
		}
		return v, nil
	}
}
