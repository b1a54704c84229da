package strategy

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/wolfxxx/blackjack/internal/fileutil"
)

// Payload is the exchange format for strategy tables: nested string maps
// of total/pair label -> dealer label -> one-letter action code, plus the
// count-indexed variants keyed by integer count level. Soft totals appear
// under their plain number (the "S" prefix is implied by the table they
// sit in). Round-tripping through Payload is lossless.
type Payload struct {
	CountBased   bool                                    `json:"countBased"`
	Hard         map[string]map[string]string            `json:"hard"`
	Soft         map[string]map[string]string            `json:"soft"`
	Pairs        map[string]map[string]string            `json:"pairs"`
	HardByCount  map[string]map[string]map[string]string `json:"hardByCount,omitempty"`
	SoftByCount  map[string]map[string]map[string]string `json:"softByCount,omitempty"`
	PairsByCount map[string]map[string]map[string]string `json:"pairsByCount,omitempty"`
}

func payloadLabel(key HandKey) string {
	if key.Kind == KindSoft {
		// Soft rows key by bare total inside the soft table.
		return strconv.Itoa(key.Total)
	}
	return key.Label()
}

// Export renders the table in exchange format.
func (t *Table) Export() Payload {
	p := Payload{
		CountBased:   t.countBased,
		Hard:         make(map[string]map[string]string),
		Soft:         make(map[string]map[string]string),
		Pairs:        make(map[string]map[string]string),
		HardByCount:  make(map[string]map[string]map[string]string),
		SoftByCount:  make(map[string]map[string]map[string]string),
		PairsByCount: make(map[string]map[string]map[string]string),
	}

	exportRow := func(dst map[string]map[string]string, key HandKey, r row) {
		label := payloadLabel(key)
		out, ok := dst[label]
		if !ok {
			out = make(map[string]string, len(r))
			dst[label] = out
		}
		for dealer, action := range r {
			out[dealer] = action.Code()
		}
	}

	for key, r := range t.base {
		switch key.Kind {
		case KindHard:
			exportRow(p.Hard, key, r)
		case KindSoft:
			exportRow(p.Soft, key, r)
		case KindPair:
			exportRow(p.Pairs, key, r)
		}
	}

	for level, layer := range t.byCount {
		levelKey := strconv.Itoa(level)
		for key, r := range layer {
			var dst map[string]map[string]map[string]string
			switch key.Kind {
			case KindHard:
				dst = p.HardByCount
			case KindSoft:
				dst = p.SoftByCount
			case KindPair:
				dst = p.PairsByCount
			}
			if dst[levelKey] == nil {
				dst[levelKey] = make(map[string]map[string]string)
			}
			exportRow(dst[levelKey], key, r)
		}
	}

	return p
}

// FromPayload builds a table from its exchange format.
func FromPayload(p Payload) (*Table, error) {
	t := NewTable()
	t.countBased = p.CountBased

	if err := importLayer(p.Hard, KindHard, t.SetAction); err != nil {
		return nil, fmt.Errorf("hard table: %w", err)
	}
	if err := importLayer(p.Soft, KindSoft, t.SetAction); err != nil {
		return nil, fmt.Errorf("soft table: %w", err)
	}
	if err := importLayer(p.Pairs, KindPair, t.SetAction); err != nil {
		return nil, fmt.Errorf("pairs table: %w", err)
	}

	countLayers := []struct {
		src  map[string]map[string]map[string]string
		kind KeyKind
		name string
	}{
		{p.HardByCount, KindHard, "hardByCount"},
		{p.SoftByCount, KindSoft, "softByCount"},
		{p.PairsByCount, KindPair, "pairsByCount"},
	}
	for _, layer := range countLayers {
		for levelKey, tables := range layer.src {
			level, err := strconv.Atoi(levelKey)
			if err != nil {
				return nil, fmt.Errorf("%s: bad count level %q", layer.name, levelKey)
			}
			set := func(key HandKey, dealer string, action Action) {
				t.SetCountAction(level, key, dealer, action)
			}
			if err := importLayer(tables, layer.kind, set); err != nil {
				return nil, fmt.Errorf("%s[%s]: %w", layer.name, levelKey, err)
			}
		}
	}

	return t, nil
}

func importLayer(src map[string]map[string]string, kind KeyKind, set func(HandKey, string, Action)) error {
	for label, r := range src {
		key, err := parsePayloadLabel(label, kind)
		if err != nil {
			return err
		}
		for dealer, code := range r {
			set(key, dealer, ParseAction(code))
		}
	}
	return nil
}

func parsePayloadLabel(label string, kind KeyKind) (HandKey, error) {
	switch kind {
	case KindSoft:
		total, err := strconv.Atoi(label)
		if err != nil {
			// Tolerate an explicit "S18" style key.
			key, perr := ParseKey(label)
			if perr != nil || key.Kind != KindSoft {
				return HandKey{}, fmt.Errorf("bad soft total %q", label)
			}
			return key, nil
		}
		if total < 12 || total > 21 {
			return HandKey{}, fmt.Errorf("soft total %d out of range", total)
		}
		return Soft(total), nil
	case KindPair:
		key, err := ParseKey(label)
		if err != nil || key.Kind != KindPair {
			return HandKey{}, fmt.Errorf("bad pair label %q", label)
		}
		return key, nil
	default:
		total, err := strconv.Atoi(label)
		if err != nil || total < 2 || total > 21 {
			return HandKey{}, fmt.Errorf("bad hard total %q", label)
		}
		return Hard(total), nil
	}
}

// Save writes the table to disk in exchange format. The write is atomic so
// a concurrent reader never observes a partial file.
func (t *Table) Save(path string) error {
	data, err := json.MarshalIndent(t.Export(), "", "  ")
	if err != nil {
		return fmt.Errorf("encode strategy: %w", err)
	}
	if err := fileutil.WriteFileAtomic(path, data, 0o644); err != nil {
		return fmt.Errorf("write strategy: %w", err)
	}
	return nil
}

// Load reads a strategy table from disk.
func Load(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var p Payload
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("decode strategy: %w", err)
	}
	return FromPayload(p)
}
