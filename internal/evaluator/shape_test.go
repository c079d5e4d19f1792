package evaluator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lox/handeval/internal/deck"
)

func TestHasStraight(t *testing.T) {
	tests := []struct {
		name     string
		hand     string
		expected bool
		high     int
	}{
		{"six high ascending", "2s 3d 4h 5c 6s", true, 6},
		{"unordered", "9h 7c Ts 8d Jd", true, 11},
		{"broadway", "Ts Jd Qh Kc As", true, 14},
		{"wheel", "As 2d 3h 4c 5s", true, 5},
		{"gap", "2s 3d 4h 5c 7s", false, 0},
		{"pair breaks run", "2s 3d 4h 4c 5s", false, 0},
		{"no wraparound", "Qs Kd Ah 2c 3s", false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hand := deck.MustParseCards(tt.hand)
			assert.Equal(t, tt.expected, HasStraight(hand))

			high, ok := StraightHighValue(hand)
			assert.Equal(t, tt.expected, ok)
			assert.Equal(t, tt.high, high)
		})
	}
}

func TestEveryCardIsSameSuit(t *testing.T) {
	assert.True(t, EveryCardIsSameSuit(deck.MustParseCards("2h 9h Jh 4h Ah")))
	assert.False(t, EveryCardIsSameSuit(deck.MustParseCards("2h 9h Jh 4h As")))
	assert.False(t, EveryCardIsSameSuit(nil))
}

func TestIsRoyal(t *testing.T) {
	tests := []struct {
		name     string
		hand     string
		expected bool
	}{
		{"royal flush", "As Ks Qs Js Ts", true},
		{"royal offsuit", "Ah Kd Qs Jc Ts", true},
		{"king high straight", "9s Ks Qs Js Ts", false},
		{"wheel", "As 2s 3s 4s 5s", false},
		{"broadway cards with a pair", "As Ad Qs Js Ts", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsRoyal(deck.MustParseCards(tt.hand)))
		})
	}

	assert.False(t, IsRoyal(nil))
}

func TestDetectorsAreIdempotent(t *testing.T) {
	hands := []string{
		"As Ks Qs Js Ts",
		"Js Jd Jh 3c 3s",
		"5s 5d 9h 9c Ks",
		"2s 3d 4h 5c 7s",
	}
	detectors := map[string]func([]deck.Card) bool{
		"HasStraight":         HasStraight,
		"EveryCardIsSameSuit": EveryCardIsSameSuit,
		"IsRoyal":             IsRoyal,
		"HasFourOfAKind":      HasFourOfAKind,
		"HasThreeOfAKind":     HasThreeOfAKind,
		"HasTwoPairs":         HasTwoPairs,
		"HasOnePair":          HasOnePair,
	}

	for _, h := range hands {
		hand := deck.MustParseCards(h)
		for name, detect := range detectors {
			assert.Equal(t, detect(hand), detect(hand), "%s on %s", name, h)
		}
		assert.Equal(t, Classify(hand), Classify(hand))
	}
}
