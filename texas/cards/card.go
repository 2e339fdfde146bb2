package cards

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCard   = errors.New("invalid card")
	ErrDuplicateCard = errors.New("duplicate card")
)

// Card is an immutable rank and suit pair. Cards compare with ==.
type Card struct {
	rank Rank
	suit Suit
}

// NewCard rejects ranks and suits outside their enumerations.
func NewCard(r Rank, s Suit) (Card, error) {
	if !r.Valid() || !s.Valid() {
		return Card{}, fmt.Errorf("%w: rank %d, suit %d", ErrInvalidCard, r, s)
	}
	return Card{rank: r, suit: s}, nil
}

func (c Card) Rank() Rank {
	return c.rank
}

func (c Card) Suit() Suit {
	return c.suit
}

// ShortUnicode returns the single code point playing card glyph, e.g. 🂡 for the ace of spades.
func (c Card) ShortUnicode() string {
	if !c.rank.Valid() || !c.suit.Valid() {
		return "?"
	}
	return string(suitGlyphBase[c.suit] + rankGlyphOffset[c.rank])
}

// LongUnicode returns rank text plus suit symbol, e.g. "A♠".
func (c Card) LongUnicode() string {
	return c.rank.String() + c.suit.Unicode()
}

// LongASCII returns rank text plus suit letter, e.g. "Aa". ParseCard reads it back.
func (c Card) LongASCII() string {
	return c.rank.String() + c.suit.ASCII()
}

func (c Card) String() string {
	return c.LongUnicode()
}

func (c Card) MarshalJSON() ([]byte, error) {
	return []byte(`"` + c.LongASCII() + `"`), nil
}

func (c *Card) UnmarshalJSON(b []byte) error {
	if len(b) < 2 || b[0] != '"' || b[len(b)-1] != '"' {
		return fmt.Errorf("%w: %s", ErrInvalidCard, string(b))
	}
	parsed, err := ParseCard(string(b[1 : len(b)-1]))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// All 52 cards.
var (
	DeuceOfSpades   = Card{rank: Deuce, suit: Spades}
	DeuceOfHearts   = Card{rank: Deuce, suit: Hearts}
	DeuceOfDiamonds = Card{rank: Deuce, suit: Diamonds}
	DeuceOfClubs    = Card{rank: Deuce, suit: Clubs}

	ThreeOfSpades   = Card{rank: Three, suit: Spades}
	ThreeOfHearts   = Card{rank: Three, suit: Hearts}
	ThreeOfDiamonds = Card{rank: Three, suit: Diamonds}
	ThreeOfClubs    = Card{rank: Three, suit: Clubs}

	FourOfSpades   = Card{rank: Four, suit: Spades}
	FourOfHearts   = Card{rank: Four, suit: Hearts}
	FourOfDiamonds = Card{rank: Four, suit: Diamonds}
	FourOfClubs    = Card{rank: Four, suit: Clubs}

	FiveOfSpades   = Card{rank: Five, suit: Spades}
	FiveOfHearts   = Card{rank: Five, suit: Hearts}
	FiveOfDiamonds = Card{rank: Five, suit: Diamonds}
	FiveOfClubs    = Card{rank: Five, suit: Clubs}

	SixOfSpades   = Card{rank: Six, suit: Spades}
	SixOfHearts   = Card{rank: Six, suit: Hearts}
	SixOfDiamonds = Card{rank: Six, suit: Diamonds}
	SixOfClubs    = Card{rank: Six, suit: Clubs}

	SevenOfSpades   = Card{rank: Seven, suit: Spades}
	SevenOfHearts   = Card{rank: Seven, suit: Hearts}
	SevenOfDiamonds = Card{rank: Seven, suit: Diamonds}
	SevenOfClubs    = Card{rank: Seven, suit: Clubs}

	EightOfSpades   = Card{rank: Eight, suit: Spades}
	EightOfHearts   = Card{rank: Eight, suit: Hearts}
	EightOfDiamonds = Card{rank: Eight, suit: Diamonds}
	EightOfClubs    = Card{rank: Eight, suit: Clubs}

	NineOfSpades   = Card{rank: Nine, suit: Spades}
	NineOfHearts   = Card{rank: Nine, suit: Hearts}
	NineOfDiamonds = Card{rank: Nine, suit: Diamonds}
	NineOfClubs    = Card{rank: Nine, suit: Clubs}

	TenOfSpades   = Card{rank: Ten, suit: Spades}
	TenOfHearts   = Card{rank: Ten, suit: Hearts}
	TenOfDiamonds = Card{rank: Ten, suit: Diamonds}
	TenOfClubs    = Card{rank: Ten, suit: Clubs}

	JackOfSpades   = Card{rank: Jack, suit: Spades}
	JackOfHearts   = Card{rank: Jack, suit: Hearts}
	JackOfDiamonds = Card{rank: Jack, suit: Diamonds}
	JackOfClubs    = Card{rank: Jack, suit: Clubs}

	QueenOfSpades   = Card{rank: Queen, suit: Spades}
	QueenOfHearts   = Card{rank: Queen, suit: Hearts}
	QueenOfDiamonds = Card{rank: Queen, suit: Diamonds}
	QueenOfClubs    = Card{rank: Queen, suit: Clubs}

	KingOfSpades   = Card{rank: King, suit: Spades}
	KingOfHearts   = Card{rank: King, suit: Hearts}
	KingOfDiamonds = Card{rank: King, suit: Diamonds}
	KingOfClubs    = Card{rank: King, suit: Clubs}

	AceOfSpades   = Card{rank: Ace, suit: Spades}
	AceOfHearts   = Card{rank: Ace, suit: Hearts}
	AceOfDiamonds = Card{rank: Ace, suit: Diamonds}
	AceOfClubs    = Card{rank: Ace, suit: Clubs}
)
