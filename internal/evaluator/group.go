// Package evaluator classifies a five-card poker hand and extracts the
// values that identify it (the rank of a pair, the top of a straight).
//
// Every function takes the caller's hand as a read-only slice, never
// modifies it and keeps no state, so all of them are safe for concurrent
// use. Detectors are total. Extractors such as GroupValue assume the
// matching detector already returned true and panic otherwise; the
// Lookup variants and Evaluate report absence instead.
package evaluator

import "github.com/lox/handeval/internal/deck"

// RankGroup holds the cards of a hand sharing one rank, in hand order.
type RankGroup struct {
	Rank  deck.Rank
	Cards []deck.Card
}

// Size returns the number of cards in the group
func (g RankGroup) Size() int {
	return len(g.Cards)
}

// SuitGroup holds the cards of a hand sharing one suit, in hand order.
type SuitGroup struct {
	Suit  deck.Suit
	Cards []deck.Card
}

// GroupByRank groups cards by rank. Groups are ordered by the first
// appearance of their rank when scanning the hand left to right.
func GroupByRank(hand []deck.Card) []RankGroup {
	groups := make([]RankGroup, 0, len(hand))
	for _, card := range hand {
		i := indexOfRank(groups, card.Rank)
		if i < 0 {
			groups = append(groups, RankGroup{Rank: card.Rank})
			i = len(groups) - 1
		}
		groups[i].Cards = append(groups[i].Cards, card)
	}
	return groups
}

// GroupBySuit groups cards by suit with the same first-seen ordering as
// GroupByRank.
func GroupBySuit(hand []deck.Card) []SuitGroup {
	groups := make([]SuitGroup, 0, 4)
	for _, card := range hand {
		i := indexOfSuit(groups, card.Suit)
		if i < 0 {
			groups = append(groups, SuitGroup{Suit: card.Suit})
			i = len(groups) - 1
		}
		groups[i].Cards = append(groups[i].Cards, card)
	}
	return groups
}

// groupsOfSize returns the rank groups holding exactly size cards, in
// scan order
func groupsOfSize(hand []deck.Card, size int) []RankGroup {
	var matched []RankGroup
	for _, g := range GroupByRank(hand) {
		if g.Size() == size {
			matched = append(matched, g)
		}
	}
	return matched
}

func indexOfRank(groups []RankGroup, rank deck.Rank) int {
	for i := range groups {
		if groups[i].Rank == rank {
			return i
		}
	}
	return -1
}

func indexOfSuit(groups []SuitGroup, suit deck.Suit) int {
	for i := range groups {
		if groups[i].Suit == suit {
			return i
		}
	}
	return -1
}
