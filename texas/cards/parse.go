package cards

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/LeaguesOfHoleHoleShoes/HoleCombo/log"
)

// ParseCard reads the long ascii form: rank text followed by a suit letter, "Aa", "tb", "9d".
func ParseCard(str string) (Card, error) {
	if len(str) != 2 {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidCard, str)
	}
	r, okR := rankFromText(str[0])
	s, okS := suitFromASCII(str[1])
	if !okR || !okS {
		log.L.Debug("parse card failed", zap.String("card", str))
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidCard, str)
	}
	return Card{rank: r, suit: s}, nil
}

// ParseCards reads a hand such as "Aa Kb Qc" or "AaKbQc". Spaces and commas are separators,
// the same card may not appear twice.
func ParseCards(str string) ([]Card, error) {
	compact := strings.Map(func(r rune) rune {
		if r == ' ' || r == ',' || r == '\t' {
			return -1
		}
		return r
	}, str)
	if len(compact)%2 != 0 {
		return nil, fmt.Errorf("%w: odd length hand %q", ErrInvalidCard, str)
	}
	result := make([]Card, 0, len(compact)/2)
	seen := make(map[Card]bool, len(compact)/2)
	for i := 0; i < len(compact); i += 2 {
		c, err := ParseCard(compact[i : i+2])
		if err != nil {
			return nil, err
		}
		if seen[c] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateCard, c.LongASCII())
		}
		seen[c] = true
		result = append(result, c)
	}
	return result, nil
}

// ParseCardList parses every string as exactly one card, see ParseCard.
func ParseCardList(strs []string) ([]Card, error) {
	result := make([]Card, 0, len(strs))
	seen := make(map[Card]bool, len(strs))
	for _, str := range strs {
		c, err := ParseCard(str)
		if err != nil {
			return nil, err
		}
		if seen[c] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateCard, c.LongASCII())
		}
		seen[c] = true
		result = append(result, c)
	}
	return result, nil
}

// CardsToASCII joins the long ascii form of every card with single spaces.
func CardsToASCII(cs []Card) string {
	parts := make([]string, len(cs))
	for i, c := range cs {
		parts[i] = c.LongASCII()
	}
	return strings.Join(parts, " ")
}
