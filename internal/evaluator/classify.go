package evaluator

import (
	"errors"
	"fmt"
	"slices"

	"github.com/lox/handeval/internal/deck"
)

// HandSize is the number of cards every detector expects
const HandSize = 5

var (
	// ErrHandSize is returned by Evaluate for hands without exactly five cards
	ErrHandSize = errors.New("hand must contain exactly 5 cards")

	// ErrDuplicateCard is returned by Evaluate when a card appears twice
	ErrDuplicateCard = errors.New("duplicate card in hand")
)

// Category is the class of a five-card hand, ordered from weakest to
// strongest.
type Category int

const (
	HighCard Category = iota
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

// Categories lists every category from weakest to strongest
var Categories = []Category{
	HighCard, OnePair, TwoPair, ThreeOfAKind, Straight,
	Flush, FullHouse, FourOfAKind, StraightFlush, RoyalFlush,
}

// String returns the string representation of a category
func (c Category) String() string {
	switch c {
	case HighCard:
		return "High Card"
	case OnePair:
		return "One Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	case RoyalFlush:
		return "Royal Flush"
	default:
		return "Unknown"
	}
}

// MarshalText encodes the category by its display name
func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// Classify returns the strongest category the hand satisfies. Detectors
// are tried from strongest to weakest so overlapping ones (a full house
// is also a three of a kind) resolve to a single answer.
func Classify(hand []deck.Card) Category {
	straight := HasStraight(hand)
	flush := EveryCardIsSameSuit(hand)

	switch {
	case straight && flush && IsRoyal(hand):
		return RoyalFlush
	case straight && flush:
		return StraightFlush
	case HasFourOfAKind(hand):
		return FourOfAKind
	case HasFullHouse(hand):
		return FullHouse
	case flush:
		return Flush
	case straight:
		return Straight
	case HasThreeOfAKind(hand):
		return ThreeOfAKind
	case HasTwoPairs(hand):
		return TwoPair
	case HasOnePair(hand):
		return OnePair
	default:
		return HighCard
	}
}

// Evaluation is the classification of one hand
type Evaluation struct {
	Cards    []deck.Card
	Category Category
	// Values identify the category: the top of a straight, the trips then
	// the pair of a full house, both pairs in hand order for two pair, and
	// the high card value for flushes and high card hands.
	Values   []int
	HighCard deck.Card
}

// String returns a string representation of the evaluation
func (e Evaluation) String() string {
	return fmt.Sprintf("%s [%s]", e.Category, deck.FormatCards(e.Cards))
}

// Evaluate validates the hand and classifies it. Unlike the detectors it
// never panics: malformed hands return an error wrapping ErrHandSize or
// ErrDuplicateCard.
func Evaluate(hand []deck.Card) (Evaluation, error) {
	if err := Validate(hand); err != nil {
		return Evaluation{}, err
	}

	category := Classify(hand)
	high := HighestCard(hand)
	return Evaluation{
		Cards:    slices.Clone(hand),
		Category: category,
		Values:   categoryValues(hand, category, high),
		HighCard: high,
	}, nil
}

// Validate checks that hand holds five distinct, well-formed cards
func Validate(hand []deck.Card) error {
	if len(hand) != HandSize {
		return fmt.Errorf("%w: got %d", ErrHandSize, len(hand))
	}

	seen := make(map[deck.Card]bool, len(hand))
	for _, card := range hand {
		if !card.Rank.Valid() || !card.Suit.Valid() {
			return fmt.Errorf("%w: rank %d suit %d", deck.ErrInvalidCard, int(card.Rank), int(card.Suit))
		}
		if seen[card] {
			return fmt.Errorf("%w: %s", ErrDuplicateCard, card.Code())
		}
		seen[card] = true
	}
	return nil
}

func categoryValues(hand []deck.Card, category Category, high deck.Card) []int {
	switch category {
	case RoyalFlush, StraightFlush, Straight:
		top, _ := StraightHighValue(hand)
		return []int{top}
	case FourOfAKind:
		return []int{FourOfAKindValue(hand)}
	case FullHouse:
		return []int{ThreeOfAKindValue(hand), PairValue(hand)}
	case ThreeOfAKind:
		return []int{ThreeOfAKindValue(hand)}
	case TwoPair:
		pairs := PairsValues(hand)
		return []int{pairs.Low, pairs.High}
	case OnePair:
		return []int{PairValue(hand)}
	default:
		return []int{high.Value()}
	}
}
