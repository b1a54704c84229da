// Package strategy implements blackjack action tables: base lookups keyed
// by hand and dealer up-card, optional count-indexed override layers, the
// canonical basic-strategy preset, and a lossless JSON exchange format.
package strategy

// Action is a player decision.
type Action uint8

const (
	Hit Action = iota
	Stand
	Double
	Split
)

// String returns the full action name.
func (a Action) String() string {
	switch a {
	case Hit:
		return "Hit"
	case Stand:
		return "Stand"
	case Double:
		return "Double"
	case Split:
		return "Split"
	default:
		return "Unknown"
	}
}

// Code returns the one-letter wire code for the action.
func (a Action) Code() string {
	switch a {
	case Stand:
		return "S"
	case Double:
		return "D"
	case Split:
		return "P"
	default:
		return "H"
	}
}

// ParseAction decodes a one-letter action code. Unrecognized codes decode
// as Hit, matching the exchange format's permissive import behavior.
func ParseAction(code string) Action {
	switch code {
	case "S":
		return Stand
	case "D":
		return Double
	case "P":
		return Split
	default:
		return Hit
	}
}
