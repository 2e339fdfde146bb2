package hand_processor

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/LeaguesOfHoleHoleShoes/HoleCombo/texas/cards"
)

func mustCards(t assert.TestingT, hand string) []cards.Card {
	cs, err := cards.ParseCards(hand)
	assert.NoError(t, err)
	return cs
}

func TestSplitByRank(t *testing.T) {
	b := SplitByRank(mustCards(t, "3a 9a 3b Kc 9b 3c"))
	list := b.List()
	assert.Len(t, list, 3)
	assert.Equal(t, cards.King, list[0].Rank)
	assert.Equal(t, cards.Nine, list[1].Rank)
	assert.Equal(t, cards.Three, list[2].Rank)
	assert.Equal(t, mustCards(t, "3a 3b 3c"), list[2].Cards)
	assert.Equal(t, mustCards(t, "Kc 9a 9b 3a 3b 3c"), b.Rest())
}

func TestFindBasket(t *testing.T) {
	b := SplitByRank(mustCards(t, "3a 9a 3b Kc 9b 3c"))

	three, ok := b.FindBasket(3)
	assert.True(t, ok)
	assert.Equal(t, cards.Three, three.Rank)
	assert.Equal(t, mustCards(t, "3a 3b 3c"), three.Cards)
	assert.Equal(t, 2, b.Len())

	pair, ok := b.FindBasket(2)
	assert.True(t, ok)
	assert.Equal(t, cards.Nine, pair.Rank)
	assert.Equal(t, 1, b.Len())

	_, ok = b.FindBasket(2)
	assert.False(t, ok)
	assert.Equal(t, mustCards(t, "Kc"), b.Rest())
}

func TestFindBasketHigherRankWins(t *testing.T) {
	b := SplitByRank(mustCards(t, "5a 5b 5c Ja Jb Jc 2d"))
	three, ok := b.FindBasket(3)
	assert.True(t, ok)
	assert.Equal(t, cards.Jack, three.Rank)

	// a four card basket keeps two cards after giving a pair
	b = SplitByRank(mustCards(t, "7a 7b 7c 7d"))
	pair, ok := b.FindBasket(2)
	assert.True(t, ok)
	assert.Equal(t, mustCards(t, "7a 7b"), pair.Cards)
	assert.Equal(t, mustCards(t, "7c 7d"), b.Rest())

	_, ok = b.FindBasket(0)
	assert.False(t, ok)
}

func TestFindBasketDoesNotAlias(t *testing.T) {
	input := mustCards(t, "Aa Ab 4c")
	b := SplitByRank(input)
	pair, _ := b.FindBasket(2)
	pair.Cards[0] = cards.DeuceOfClubs
	assert.Equal(t, mustCards(t, "Aa Ab 4c"), input)
	assert.Equal(t, mustCards(t, "4c"), b.Rest())
}

func TestGetKickers(t *testing.T) {
	input := mustCards(t, "2a Ka 7b Ac")
	assert.Equal(t, mustCards(t, "Ac Ka"), GetKickers(input, 2))
	assert.Equal(t, mustCards(t, "2a Ka 7b Ac"), input)
	assert.Len(t, GetKickers(input, 0), 0)
	assert.Panics(t, func() { GetKickers(input, 5) })
}
