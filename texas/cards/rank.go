package cards

// Rank is a card face value. The iota order is poker strength, Deuce lowest.
type Rank uint8

const (
	Deuce Rank = iota
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// RankCount is the number of distinct ranks.
const RankCount = 13

// 用于显示和解析，下标就是Rank
var rankText = [RankCount]string{"2", "3", "4", "5", "6", "7", "8", "9", "t", "J", "Q", "K", "A"}

// offsets inside a suit block of the playing cards unicode range, Queen skips the Knight
var rankGlyphOffset = [RankCount]rune{0x2, 0x3, 0x4, 0x5, 0x6, 0x7, 0x8, 0x9, 0xA, 0xB, 0xD, 0xE, 0x1}

func (r Rank) Valid() bool {
	return r <= Ace
}

func (r Rank) String() string {
	if !r.Valid() {
		return "?"
	}
	return rankText[r]
}

// rankFromText is the inverse of rankText. Upper case T is accepted too.
func rankFromText(b byte) (Rank, bool) {
	if b == 'T' {
		return Ten, true
	}
	for i, t := range rankText {
		if t[0] == b {
			return Rank(i), true
		}
	}
	return 0, false
}
