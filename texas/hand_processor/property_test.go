package hand_processor

import (
	"math/rand"
	"testing"

	"github.com/paulhankin/poker"
	"github.com/stretchr/testify/assert"
	"gopkg.in/check.v1"

	"github.com/LeaguesOfHoleHoleShoes/HoleCombo/texas/cards"
)

var _ = check.Suite(&ComboSuite{})

func Test(t *testing.T) { check.TestingT(t) }

const propertyRounds = 2000

type ComboSuite struct {
	rnd *rand.Rand
}

// 每一个test case 的开始初始化，固定种子方便复现
func (s *ComboSuite) SetUpTest(c *check.C) {
	s.rnd = rand.New(rand.NewSource(20181204))
}

// randomHand deals n distinct cards.
func (s *ComboSuite) randomHand(n int) []cards.Card {
	deck := cards.DeckUnshuffled()
	s.rnd.Shuffle(len(deck), func(i, j int) { deck[i], deck[j] = deck[j], deck[i] })
	return deck[:n]
}

func (s *ComboSuite) TestComboCardsComeFromInput(c *check.C) {
	for i := 0; i < propertyRounds; i++ {
		hand := s.randomHand(5 + s.rnd.Intn(6))
		combo := DetectCombo(hand)

		assert.Len(c, combo.Cards, ComboSize)
		left := make(map[cards.Card]bool)
		for _, card := range hand {
			left[card] = true
		}
		for _, card := range combo.Cards {
			assert.True(c, left[card], "%v not in %v", card, hand)
			delete(left, card)
		}
	}
}

func (s *ComboSuite) TestDetectorsAgreeWithChain(c *check.C) {
	for i := 0; i < propertyRounds; i++ {
		hand := s.randomHand(7)
		combo := DetectCombo(hand)
		// nothing stronger matches
		for r := combo.Rank + 1; r <= RoyalFlush; r++ {
			d, _ := DetectorFor(r)
			_, ok := d(hand)
			assert.False(c, ok, "%v also matches %v", hand, r)
		}
		d, _ := DetectorFor(combo.Rank)
		again, ok := d(hand)
		assert.True(c, ok)
		assert.Equal(c, combo, again)
	}
}

func (s *ComboSuite) TestOrderIsTotal(c *check.C) {
	for i := 0; i < propertyRounds; i++ {
		a := DetectCombo(s.randomHand(5))
		b := DetectCombo(s.randomHand(5))
		d := DetectCombo(s.randomHand(5))

		assert.Equal(c, Compare(a, b), -Compare(b, a))
		assert.Equal(c, 0, Compare(a, a))
		assert.Equal(c, Compare(a, b) == 0, a.Equal(b))
		if Compare(a, b) <= 0 && Compare(b, d) <= 0 {
			assert.True(c, Compare(a, d) <= 0, "%v <= %v <= %v", a, b, d)
		}
	}
}

func (s *ComboSuite) TestOrderMatchesEval7(c *check.C) {
	for i := 0; i < propertyRounds; i++ {
		h1, h2 := s.randomHand(7), s.randomHand(7)
		want := sign(int(eval7(c, h1)) - int(eval7(c, h2)))
		got := Compare(DetectCombo(h1), DetectCombo(h2))
		assert.Equal(c, want, got, "%v vs %v", h1, h2)
	}
}

var oracleSuits = [cards.SuitCount]poker.Suit{
	cards.Spades:   poker.Spade,
	cards.Hearts:   poker.Heart,
	cards.Diamonds: poker.Diamond,
	cards.Clubs:    poker.Club,
}

// eval7 scores a hand with github.com/paulhankin/poker, higher is better.
func eval7(c *check.C, hand []cards.Card) int16 {
	var oracle [7]poker.Card
	for i, card := range hand {
		rank := poker.Rank(card.Rank() + 2)
		if card.Rank() == cards.Ace {
			rank = 1
		}
		pc, err := poker.MakeCard(oracleSuits[card.Suit()], rank)
		c.Assert(err, check.IsNil)
		oracle[i] = pc
	}
	return poker.Eval7(&oracle)
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	}
	return 0
}
