package hand_processor

// 牌型（从单张开始，到皇家同花顺），越大代表牌型越大
type ComboRank uint8

const (
	HighCard ComboRank = iota
	Pair
	TwoPair
	ThreeOfKind
	Straight
	Flush
	FullHouse
	FourOfKind
	StraightFlush
	RoyalFlush
)

var comboRankText = [...]string{
	HighCard:      "high card",
	Pair:          "pair",
	TwoPair:       "two pair",
	ThreeOfKind:   "three of kind",
	Straight:      "straight",
	Flush:         "flush",
	FullHouse:     "full house",
	FourOfKind:    "four of kind",
	StraightFlush: "straight flush",
	RoyalFlush:    "royal flush",
}

var comboRankCnText = [...]string{
	HighCard:      "单张",
	Pair:          "一对",
	TwoPair:       "两对",
	ThreeOfKind:   "三条",
	Straight:      "顺子",
	Flush:         "同花",
	FullHouse:     "葫芦",
	FourOfKind:    "四条",
	StraightFlush: "同花顺",
	RoyalFlush:    "皇家同花顺",
}

func (r ComboRank) Valid() bool {
	return r <= RoyalFlush
}

func (r ComboRank) String() string {
	if !r.Valid() {
		return "unknown"
	}
	return comboRankText[r]
}

func (r ComboRank) CnString() string {
	if !r.Valid() {
		return ""
	}
	return comboRankCnText[r]
}

// ParseComboRank is the inverse of String.
func ParseComboRank(s string) (ComboRank, bool) {
	for i, t := range comboRankText {
		if t == s {
			return ComboRank(i), true
		}
	}
	return 0, false
}
