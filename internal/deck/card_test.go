package deck

import "testing"

func TestParseRank(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Rank
		wantErr  bool
	}{
		{name: "ace", input: "A", expected: Ace},
		{name: "ace lowercase", input: "a", expected: Ace},
		{name: "ten", input: "10", expected: Ten},
		{name: "king", input: "K", expected: King},
		{name: "queen with spaces", input: " Q ", expected: Queen},
		{name: "two", input: "2", expected: Two},
		{name: "nine", input: "9", expected: Nine},
		{name: "one is invalid", input: "1", wantErr: true},
		{name: "eleven is invalid", input: "11", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "garbage", input: "X", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRank(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseRank(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
				return
			}
			if !tt.wantErr && got != tt.expected {
				t.Errorf("ParseRank(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestCardValue(t *testing.T) {
	tests := []struct {
		rank  Rank
		value int
	}{
		{Ace, 11},
		{King, 10},
		{Queen, 10},
		{Jack, 10},
		{Ten, 10},
		{Nine, 9},
		{Two, 2},
	}

	for _, tt := range tests {
		if got := NewCard(tt.rank).Value(); got != tt.value {
			t.Errorf("Card(%s).Value() = %d, want %d", tt.rank, got, tt.value)
		}
	}
}

func TestCardValueLabel(t *testing.T) {
	tests := []struct {
		rank  Rank
		label string
	}{
		{Ace, "A"},
		{King, "10"},
		{Queen, "10"},
		{Jack, "10"},
		{Ten, "10"},
		{Seven, "7"},
	}

	for _, tt := range tests {
		if got := NewCard(tt.rank).ValueLabel(); got != tt.label {
			t.Errorf("Card(%s).ValueLabel() = %q, want %q", tt.rank, got, tt.label)
		}
	}
}

func TestParseCards(t *testing.T) {
	cards, err := ParseCards("A, K")
	if err != nil {
		t.Fatalf("ParseCards returned error: %v", err)
	}
	if len(cards) != 2 || cards[0].Rank != Ace || cards[1].Rank != King {
		t.Errorf("ParseCards(\"A, K\") = %v", cards)
	}

	if _, err := ParseCards("A,X"); err == nil {
		t.Error("expected error for invalid rank, got nil")
	}
}
