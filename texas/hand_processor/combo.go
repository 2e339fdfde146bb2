package hand_processor

import (
	"fmt"
	"sort"
	"strings"

	"github.com/LeaguesOfHoleHoleShoes/HoleCombo/texas/cards"
	"github.com/LeaguesOfHoleHoleShoes/HoleCombo/util"
)

// ComboSize is the number of cards in every Combo.
const ComboSize = 5

// Combo is the best five card hand found in a set of cards.
// Cards holds the defining group first (the pair, the triple then the pair, the run...),
// kickers after it in descending rank.
type Combo struct {
	Rank  ComboRank
	Cards [ComboSize]cards.Card
}

// makeCombo concatenates the groups into the five card array, anything else is a bug.
func makeCombo(rank ComboRank, groups ...[]cards.Card) Combo {
	c := Combo{Rank: rank}
	n := 0
	for _, g := range groups {
		for _, card := range g {
			if n == ComboSize {
				panic(fmt.Sprintf("%v built from more than %d cards", rank, ComboSize))
			}
			c.Cards[n] = card
			n++
		}
	}
	if n != ComboSize {
		panic(fmt.Sprintf("%v built from %d cards", rank, n))
	}
	return c
}

// Compare orders two combos: combo rank first, then the rank of each card position by position.
// Suits never count. c1 > c2 return 1, c1 < c2 return -1, c1 == c2 return 0.
func Compare(c1, c2 Combo) int {
	if c1.Rank != c2.Rank {
		if c1.Rank > c2.Rank {
			return 1
		}
		return -1
	}
	for i := 0; i < ComboSize; i++ {
		r1, r2 := c1.Cards[i].Rank(), c2.Cards[i].Rank()
		if r1 == r2 {
			continue
		}
		if r1 > r2 {
			return 1
		}
		return -1
	}
	return 0
}

func (c Combo) Equal(other Combo) bool {
	return Compare(c, other) == 0
}

func (c Combo) Less(other Combo) bool {
	return Compare(c, other) < 0
}

// Ranks returns the five ranks in combo order.
func (c Combo) Ranks() [ComboSize]cards.Rank {
	var result [ComboSize]cards.Rank
	for i, card := range c.Cards {
		result[i] = card.Rank()
	}
	return result
}

// SortCombos orders combos strongest first, equal combos keep their order.
func SortCombos(combos []Combo) {
	sort.SliceStable(combos, func(i, j int) bool {
		return Compare(combos[i], combos[j]) > 0
	})
}

func (c Combo) render(card func(cards.Card) string) string {
	parts := make([]string, ComboSize)
	for i, cd := range c.Cards {
		parts[i] = card(cd)
	}
	return c.Rank.String() + ": " + strings.Join(parts, " ")
}

// ShortUnicode renders "flush: 🂡 🂮 🂧 🂥 🂢".
func (c Combo) ShortUnicode() string {
	return c.render(cards.Card.ShortUnicode)
}

// LongUnicode renders "flush: A♠ K♠ 7♠ 5♠ 2♠".
func (c Combo) LongUnicode() string {
	return c.render(cards.Card.LongUnicode)
}

// LongASCII renders "flush: Aa Ka 7a 5a 2a".
func (c Combo) LongASCII() string {
	return c.render(cards.Card.LongASCII)
}

func (c Combo) String() string {
	return c.LongUnicode()
}

type comboJson struct {
	Rank  string       `json:"rank"`
	Cards []cards.Card `json:"cards"`
}

func (c Combo) MarshalJSON() ([]byte, error) {
	return util.StringifyJsonToBytesWithErr(comboJson{Rank: c.Rank.String(), Cards: c.Cards[:]})
}

// UnmarshalJSON rejects a card list that is not five distinct cards. The rank label is taken
// as sent, run DetectCombo on the cards to check it.
func (c *Combo) UnmarshalJSON(b []byte) error {
	var tmp comboJson
	if err := util.ParseJsonFromBytes(b, &tmp); err != nil {
		return err
	}
	rank, ok := ParseComboRank(tmp.Rank)
	if !ok {
		return fmt.Errorf("unknown combo rank %q", tmp.Rank)
	}
	if len(tmp.Cards) != ComboSize {
		return fmt.Errorf("combo needs %d cards, got %d", ComboSize, len(tmp.Cards))
	}
	seen := make(map[cards.Card]bool, ComboSize)
	for _, cd := range tmp.Cards {
		if seen[cd] {
			return fmt.Errorf("%w: %s", cards.ErrDuplicateCard, cd.LongASCII())
		}
		seen[cd] = true
	}
	*c = makeCombo(rank, tmp.Cards)
	return nil
}
