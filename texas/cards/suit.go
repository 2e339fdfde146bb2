package cards

// Suit has no ordering, only identity.
type Suit uint8

const (
	Spades Suit = iota
	Hearts
	Diamonds
	Clubs
)

const SuitCount = 4

// Suits in deck order.
var Suits = [SuitCount]Suit{Spades, Hearts, Diamonds, Clubs}

var (
	suitUnicode = [SuitCount]string{"♠", "♥", "♦", "♣"}
	suitASCII   = [SuitCount]string{"a", "b", "c", "d"}
	// first code point of each suit block in the playing cards range
	suitGlyphBase = [SuitCount]rune{0x1F0A0, 0x1F0B0, 0x1F0C0, 0x1F0D0}
)

func (s Suit) Valid() bool {
	return s <= Clubs
}

func (s Suit) String() string {
	return s.Unicode()
}

// Unicode returns ♠ ♥ ♦ or ♣.
func (s Suit) Unicode() string {
	if !s.Valid() {
		return "?"
	}
	return suitUnicode[s]
}

// ASCII returns the single letter suit code: a b c d.
func (s Suit) ASCII() string {
	if !s.Valid() {
		return "?"
	}
	return suitASCII[s]
}

// Red reports hearts and diamonds.
func (s Suit) Red() bool {
	return s == Hearts || s == Diamonds
}

func suitFromASCII(b byte) (Suit, bool) {
	for i, t := range suitASCII {
		if t[0] == b {
			return Suit(i), true
		}
	}
	return 0, false
}
