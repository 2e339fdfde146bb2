package cards

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/LeaguesOfHoleHoleShoes/HoleCombo/log"
)

var ErrHeapExhausted = errors.New("poker heap exhausted")

func NewPokerHeap() *PokerHeap {
	ph := &PokerHeap{}
	ph.onInit()
	return ph
}

// 牌堆，一个PokerHeap只属于一个调用者，不做并发保护
type PokerHeap struct {
	// 牌堆里的牌
	pokers []Card
}

func (pokerHeap *PokerHeap) onInit() {
	log.L.Debug("poker heap init")
	// 洗牌
	pokerHeap.pokers = DeckShuffled()
}

// Len is the number of cards left.
func (pokerHeap *PokerHeap) Len() int {
	return len(pokerHeap.pokers)
}

// Deal takes count cards off the top of the heap.
func (pokerHeap *PokerHeap) Deal(count int) ([]Card, error) {
	log.L.Debug("deal pokers", zap.Int("count", count), zap.Int("heap len", len(pokerHeap.pokers)))
	if count < 0 || count > len(pokerHeap.pokers) {
		return nil, fmt.Errorf("%w: want %d, have %d", ErrHeapExhausted, count, len(pokerHeap.pokers))
	}
	result := append([]Card{}, pokerHeap.pokers[:count]...)
	pokerHeap.pokers = pokerHeap.pokers[count:]
	return result, nil
}
