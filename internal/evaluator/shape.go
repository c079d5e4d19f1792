package evaluator

import (
	"cmp"
	"slices"

	"github.com/lox/handeval/internal/deck"
)

// wheel is A-2-3-4-5 sorted by rank, where the ace plays low
var wheel = []deck.Rank{deck.Two, deck.Three, deck.Four, deck.Five, deck.Ace}

// HasStraight reports whether the ranks of the hand, sorted ascending,
// each step up by exactly one. A-2-3-4-5 also counts.
func HasStraight(hand []deck.Card) bool {
	_, ok := StraightHighValue(hand)
	return ok
}

// StraightHighValue returns the value of the top card of a straight: 5
// for the wheel, otherwise the highest card's value.
func StraightHighValue(hand []deck.Card) (int, bool) {
	if len(hand) == 0 {
		return 0, false
	}

	sorted := sortedByRank(hand)
	if isRun(sorted) {
		return sorted[len(sorted)-1].Value(), true
	}
	if isWheel(sorted) {
		return int(deck.Five), true
	}
	return 0, false
}

// EveryCardIsSameSuit reports whether all cards share one suit
func EveryCardIsSameSuit(hand []deck.Card) bool {
	return len(GroupBySuit(hand)) == 1
}

// IsRoyal reports whether the hand is the ace high straight T-J-Q-K-A.
// Suits are not considered; a royal flush also needs EveryCardIsSameSuit.
func IsRoyal(hand []deck.Card) bool {
	if len(hand) == 0 {
		return false
	}

	sorted := sortedByRank(hand)
	if sorted[0].Rank != deck.Ten || !sorted[len(sorted)-1].IsAce() {
		return false
	}
	return isRun(sorted)
}

func sortedByRank(hand []deck.Card) []deck.Card {
	sorted := slices.Clone(hand)
	slices.SortStableFunc(sorted, func(a, b deck.Card) int {
		return cmp.Compare(a.Rank, b.Rank)
	})
	return sorted
}

// isRun expects cards sorted ascending by rank
func isRun(sorted []deck.Card) bool {
	for i := 1; i < len(sorted); i++ {
		if sorted[i-1].Rank+1 != sorted[i].Rank {
			return false
		}
	}
	return true
}

func isWheel(sorted []deck.Card) bool {
	if len(sorted) != len(wheel) {
		return false
	}
	for i, card := range sorted {
		if card.Rank != wheel[i] {
			return false
		}
	}
	return true
}
