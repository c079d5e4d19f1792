package evaluator

import "github.com/lox/handeval/internal/deck"

// HasNumberOfCardsOfAKind reports whether exactly sets rank groups of the
// hand hold exactly kindSize cards each.
//
// Groups of other sizes are ignored, so the detectors built on it overlap:
// a full house satisfies both HasThreeOfAKind and HasOnePair. Use Classify
// for a single exclusive category.
func HasNumberOfCardsOfAKind(hand []deck.Card, kindSize, sets int) bool {
	return len(groupsOfSize(hand, kindSize)) == sets
}

// HasFourOfAKind reports whether the hand holds four cards of one rank
func HasFourOfAKind(hand []deck.Card) bool {
	return HasNumberOfCardsOfAKind(hand, 4, 1)
}

// HasThreeOfAKind reports whether the hand holds exactly one group of three
func HasThreeOfAKind(hand []deck.Card) bool {
	return HasNumberOfCardsOfAKind(hand, 3, 1)
}

// HasTwoPairs reports whether the hand holds two distinct pairs
func HasTwoPairs(hand []deck.Card) bool {
	return HasNumberOfCardsOfAKind(hand, 2, 2)
}

// HasOnePair reports whether the hand holds exactly one pair
func HasOnePair(hand []deck.Card) bool {
	return HasNumberOfCardsOfAKind(hand, 2, 1)
}

// HasFullHouse reports whether the hand holds a three of a kind and a pair
func HasFullHouse(hand []deck.Card) bool {
	return HasThreeOfAKind(hand) && HasOnePair(hand)
}
