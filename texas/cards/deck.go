package cards

import (
	"github.com/LeaguesOfHoleHoleShoes/HoleCombo/util"
)

// DeckSize is the number of cards in a full deck.
const DeckSize = SuitCount * RankCount

// deck order inside a suit: ace first, then deuce up to king
var deckRanks = [RankCount]Rank{Ace, Deuce, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King}

// DeckUnshuffled returns a fresh deck: spades, hearts, diamonds, clubs, each Ace to King.
func DeckUnshuffled() []Card {
	result := make([]Card, 0, DeckSize)
	for _, s := range Suits {
		for _, r := range deckRanks {
			result = append(result, Card{rank: r, suit: s})
		}
	}
	return result
}

// DeckShuffled returns a fresh deck in uniform random order.
func DeckShuffled() []Card {
	deck := DeckUnshuffled()
	Shuffle(deck)
	return deck
}

// Shuffle permutes cs in place (Fisher-Yates over crypto/rand).
func Shuffle(cs []Card) {
	for i := len(cs) - 1; i > 0; i-- {
		j := util.RandANum(i + 1)
		cs[i], cs[j] = cs[j], cs[i]
	}
}
