package hand_processor

import (
	"github.com/LeaguesOfHoleHoleShoes/HoleCombo/texas/cards"
)

// Detector looks for one combo rank in cs and returns the best such combo.
// Detectors are pure and may run concurrently on the same input.
// Those filling kickers expect at least five cards, see DetectCombo.
type Detector func(cs []cards.Card) (Combo, bool)

// DetectHighCard always succeeds with the five highest cards.
func DetectHighCard(cs []cards.Card) (Combo, bool) {
	return makeCombo(HighCard, GetKickers(cs, ComboSize)), true
}

func DetectPair(cs []cards.Card) (Combo, bool) {
	b := SplitByRank(cs)
	pair, ok := b.FindBasket(2)
	if !ok {
		return Combo{}, false
	}
	return makeCombo(Pair, pair.Cards, GetKickers(b.Rest(), 3)), true
}

// DetectTwoPair takes two pairs from two different baskets. Four of a rank still yields one pair,
// quads are caught earlier by DetectFourOfKind.
func DetectTwoPair(cs []cards.Card) (Combo, bool) {
	b := SplitByRank(cs)
	high, ok := b.FindBasket(2)
	if !ok {
		return Combo{}, false
	}
	low, ok := b.findBasketExcept(2, high.Rank)
	if !ok {
		return Combo{}, false
	}
	return makeCombo(TwoPair, high.Cards, low.Cards, GetKickers(b.Rest(), 1)), true
}

func DetectThreeOfKind(cs []cards.Card) (Combo, bool) {
	b := SplitByRank(cs)
	three, ok := b.FindBasket(3)
	if !ok {
		return Combo{}, false
	}
	return makeCombo(ThreeOfKind, three.Cards, GetKickers(b.Rest(), 2)), true
}

// DetectStraight finds the highest run of five ranks. A-2-3-4-5 is the lowest run and is
// stored five high: 5 4 3 2 A.
func DetectStraight(cs []cards.Card) (Combo, bool) {
	run, ok := bestRun(cs)
	if !ok {
		return Combo{}, false
	}
	return makeCombo(Straight, run), true
}

// DetectFlush takes the five highest cards of a suit holding five or more. With two such suits
// the one with the better top five wins.
func DetectFlush(cs []cards.Card) (Combo, bool) {
	var best Combo
	found := false
	for _, suited := range splitBySuit(cs) {
		if len(suited) < ComboSize {
			continue
		}
		c := makeCombo(Flush, GetKickers(suited, ComboSize))
		if !found || Compare(c, best) > 0 {
			best = c
			found = true
		}
	}
	return best, found
}

// DetectFullHouse: the highest basket with three cards is the triple, the highest remaining
// basket with two is the pair, a second triple included.
func DetectFullHouse(cs []cards.Card) (Combo, bool) {
	b := SplitByRank(cs)
	three, ok := b.FindBasket(3)
	if !ok {
		return Combo{}, false
	}
	pair, ok := b.FindBasket(2)
	if !ok {
		return Combo{}, false
	}
	return makeCombo(FullHouse, three.Cards, pair.Cards), true
}

func DetectFourOfKind(cs []cards.Card) (Combo, bool) {
	b := SplitByRank(cs)
	four, ok := b.FindBasket(4)
	if !ok {
		return Combo{}, false
	}
	return makeCombo(FourOfKind, four.Cards, GetKickers(b.Rest(), 1)), true
}

// DetectStraightFlush only reports straight flushes below the royal one.
func DetectStraightFlush(cs []cards.Card) (Combo, bool) {
	c, ok := bestStraightFlush(cs)
	if !ok || c.Rank != StraightFlush {
		return Combo{}, false
	}
	return c, true
}

func DetectRoyalFlush(cs []cards.Card) (Combo, bool) {
	c, ok := bestStraightFlush(cs)
	if !ok || c.Rank != RoyalFlush {
		return Combo{}, false
	}
	return c, true
}

// bestStraightFlush runs straight detection over each suit with five or more cards.
// An ace topped run is the royal flush.
func bestStraightFlush(cs []cards.Card) (Combo, bool) {
	var best Combo
	found := false
	for _, suited := range splitBySuit(cs) {
		if len(suited) < ComboSize {
			continue
		}
		run, ok := bestRun(suited)
		if !ok {
			continue
		}
		rank := StraightFlush
		if run[0].Rank() == cards.Ace {
			rank = RoyalFlush
		}
		c := makeCombo(rank, run)
		if !found || Compare(c, best) > 0 {
			best = c
			found = true
		}
	}
	return best, found
}

// bestRun returns the highest five consecutive ranks present in cs, top card first.
func bestRun(cs []cards.Card) ([]cards.Card, bool) {
	var byRank [cards.RankCount]*cards.Card
	for i := range cs {
		if byRank[cs[i].Rank()] == nil {
			byRank[cs[i].Rank()] = &cs[i]
		}
	}
	// top of the run from ace down to six
	for top := int(cards.Ace); top >= int(cards.Six); top-- {
		run := make([]cards.Card, 0, ComboSize)
		for r := top; r > top-ComboSize; r-- {
			if byRank[r] == nil {
				break
			}
			run = append(run, *byRank[r])
		}
		if len(run) == ComboSize {
			return run, true
		}
	}
	// the wheel, ace playing below the deuce
	wheel := []cards.Rank{cards.Five, cards.Four, cards.Three, cards.Deuce, cards.Ace}
	run := make([]cards.Card, 0, ComboSize)
	for _, r := range wheel {
		if byRank[r] == nil {
			return nil, false
		}
		run = append(run, *byRank[r])
	}
	return run, true
}

// splitBySuit groups cs by suit, each group in input order.
func splitBySuit(cs []cards.Card) [cards.SuitCount][]cards.Card {
	var result [cards.SuitCount][]cards.Card
	for _, c := range cs {
		result[c.Suit()] = append(result[c.Suit()], c)
	}
	return result
}
