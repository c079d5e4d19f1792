package evaluator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/handeval/internal/deck"
)

func TestGroupByRankKeepsFirstSeenOrder(t *testing.T) {
	hand := deck.MustParseCards("9s 5h 9d Kc 5c")

	groups := GroupByRank(hand)
	require.Len(t, groups, 3)

	assert.Equal(t, deck.Nine, groups[0].Rank)
	assert.Equal(t, deck.MustParseCards("9s9d"), groups[0].Cards)
	assert.Equal(t, deck.Five, groups[1].Rank)
	assert.Equal(t, deck.MustParseCards("5h5c"), groups[1].Cards)
	assert.Equal(t, deck.King, groups[2].Rank)
	assert.Equal(t, 1, groups[2].Size())
}

func TestGroupBySuitKeepsFirstSeenOrder(t *testing.T) {
	hand := deck.MustParseCards("2h 3s 4h 5d 6s")

	groups := GroupBySuit(hand)
	require.Len(t, groups, 3)

	assert.Equal(t, deck.Hearts, groups[0].Suit)
	assert.Equal(t, deck.MustParseCards("2h4h"), groups[0].Cards)
	assert.Equal(t, deck.Spades, groups[1].Suit)
	assert.Equal(t, deck.MustParseCards("3s6s"), groups[1].Cards)
	assert.Equal(t, deck.Diamonds, groups[2].Suit)
}

func TestGroupingIsTotal(t *testing.T) {
	assert.Empty(t, GroupByRank(nil))
	assert.Empty(t, GroupBySuit(nil))

	// Malformed hands still group without error
	oversized := deck.MustParseCards("AsAsAsAsAsAs")
	groups := GroupByRank(oversized)
	require.Len(t, groups, 1)
	assert.Equal(t, 6, groups[0].Size())
}

func TestGroupingDoesNotModifyHand(t *testing.T) {
	hand := deck.MustParseCards("Kd 2c Kh 2s Ah")
	original := append([]deck.Card(nil), hand...)

	GroupByRank(hand)
	GroupBySuit(hand)
	HighestCard(hand)
	HasStraight(hand)
	IsRoyal(hand)

	assert.Equal(t, original, hand)
}
