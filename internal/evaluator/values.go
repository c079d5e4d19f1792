package evaluator

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/lox/handeval/internal/deck"
)

// PairValues holds the values of the two pairs of a two pair hand.
//
// Low is the pair whose rank appears first in the hand and High the one
// that appears second. The fields are not compared numerically; reversing
// the hand swaps them. Use Sorted for numeric order.
type PairValues struct {
	Low  int
	High int
}

// Sorted returns a copy with Low <= High
func (p PairValues) Sorted() PairValues {
	if p.Low > p.High {
		return PairValues{Low: p.High, High: p.Low}
	}
	return p
}

// GroupValue returns the value of the first rank group, in scan order,
// holding exactly groupSize cards.
//
// The hand must contain such a group; GroupValue panics otherwise. Check
// with the matching Has detector first or use LookupGroupValue.
func GroupValue(hand []deck.Card, groupSize int) int {
	value, ok := LookupGroupValue(hand, groupSize)
	if !ok {
		panic(fmt.Sprintf("evaluator: no group of %d cards in hand [%s]", groupSize, deck.FormatCards(hand)))
	}
	return value
}

// LookupGroupValue is GroupValue reporting a missing group instead of
// panicking.
func LookupGroupValue(hand []deck.Card, groupSize int) (int, bool) {
	groups := groupsOfSize(hand, groupSize)
	if len(groups) == 0 {
		return 0, false
	}
	return groups[0].Cards[0].Value(), true
}

// FourOfAKindValue returns the value of the quads. Requires HasFourOfAKind.
func FourOfAKindValue(hand []deck.Card) int {
	return GroupValue(hand, 4)
}

// ThreeOfAKindValue returns the value of the trips. Requires HasThreeOfAKind.
func ThreeOfAKindValue(hand []deck.Card) int {
	return GroupValue(hand, 3)
}

// PairValue returns the value of the first pair. Requires HasOnePair or
// HasTwoPairs.
func PairValue(hand []deck.Card) int {
	return GroupValue(hand, 2)
}

// PairsValues returns the values of the first two pairs in scan order.
// Panics unless the hand holds at least two pairs.
func PairsValues(hand []deck.Card) PairValues {
	values, ok := LookupPairsValues(hand)
	if !ok {
		panic(fmt.Sprintf("evaluator: fewer than two pairs in hand [%s]", deck.FormatCards(hand)))
	}
	return values
}

// LookupPairsValues is PairsValues reporting fewer than two pairs instead
// of panicking.
func LookupPairsValues(hand []deck.Card) (PairValues, bool) {
	pairs := groupsOfSize(hand, 2)
	if len(pairs) < 2 {
		return PairValues{}, false
	}
	return PairValues{
		Low:  pairs[0].Cards[0].Value(),
		High: pairs[1].Cards[0].Value(),
	}, true
}

// HighestCard returns the card with the highest value. Among cards of equal
// value the earliest in the hand wins. Panics on an empty hand.
func HighestCard(hand []deck.Card) deck.Card {
	sorted := slices.Clone(hand)
	slices.SortStableFunc(sorted, func(a, b deck.Card) int {
		return cmp.Compare(b.Value(), a.Value())
	})
	return sorted[0]
}
