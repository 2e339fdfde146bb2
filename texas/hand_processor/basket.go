package hand_processor

import (
	"fmt"
	"sort"

	"github.com/LeaguesOfHoleHoleShoes/HoleCombo/texas/cards"
)

// RankBasket holds cards sharing one rank.
type RankBasket struct {
	Rank  cards.Rank
	Cards []cards.Card
}

// Baskets is the working set of one classification: rank baskets ordered by rank, highest first.
// It owns its card slices, nothing handed out by FindBasket aliases them.
type Baskets struct {
	baskets []RankBasket
}

// SplitByRank groups cs by rank. Cards keep their input order inside a basket.
func SplitByRank(cs []cards.Card) *Baskets {
	var byRank [cards.RankCount][]cards.Card
	for _, c := range cs {
		byRank[c.Rank()] = append(byRank[c.Rank()], c)
	}
	b := &Baskets{}
	for r := int(cards.Ace); r >= int(cards.Deuce); r-- {
		if len(byRank[r]) > 0 {
			b.baskets = append(b.baskets, RankBasket{Rank: cards.Rank(r), Cards: byRank[r]})
		}
	}
	return b
}

// Len is the number of non empty baskets left.
func (b *Baskets) Len() int {
	return len(b.baskets)
}

// List returns a copy of the remaining baskets.
func (b *Baskets) List() []RankBasket {
	result := make([]RankBasket, len(b.baskets))
	for i, basket := range b.baskets {
		result[i] = RankBasket{Rank: basket.Rank, Cards: append([]cards.Card{}, basket.Cards...)}
	}
	return result
}

// FindBasket takes exactly k cards out of the highest ranked basket holding at least k.
// A basket left empty is dropped. Scanning from the top is what makes the higher rank win ties.
func (b *Baskets) FindBasket(k int) (RankBasket, bool) {
	return b.take(k, func(RankBasket) bool { return true })
}

// findBasketExcept is FindBasket ignoring the basket of rank skip.
func (b *Baskets) findBasketExcept(k int, skip cards.Rank) (RankBasket, bool) {
	return b.take(k, func(basket RankBasket) bool { return basket.Rank != skip })
}

func (b *Baskets) take(k int, accept func(RankBasket) bool) (RankBasket, bool) {
	if k <= 0 {
		return RankBasket{}, false
	}
	for i := range b.baskets {
		basket := &b.baskets[i]
		if len(basket.Cards) < k || !accept(*basket) {
			continue
		}
		taken := RankBasket{Rank: basket.Rank, Cards: append([]cards.Card{}, basket.Cards[:k]...)}
		basket.Cards = basket.Cards[k:]
		if len(basket.Cards) == 0 {
			b.baskets = append(b.baskets[:i], b.baskets[i+1:]...)
		}
		return taken, true
	}
	return RankBasket{}, false
}

// Rest returns every card still in the working set, highest rank first.
func (b *Baskets) Rest() []cards.Card {
	var result []cards.Card
	for _, basket := range b.baskets {
		result = append(result, basket.Cards...)
	}
	return result
}

// GetKickers returns the n highest ranked cards of cs, highest first. cs is left untouched.
// Asking for more cards than cs holds is a bug in the caller.
func GetKickers(cs []cards.Card, n int) []cards.Card {
	if n < 0 || n > len(cs) {
		panic(fmt.Sprintf("GetKickers: want %d kickers from %d cards", n, len(cs)))
	}
	sorted := sortByRankDesc(cs)
	return sorted[:n]
}

func sortByRankDesc(cs []cards.Card) []cards.Card {
	sorted := append([]cards.Card{}, cs...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Rank() > sorted[j].Rank()
	})
	return sorted
}
