package hand_processor

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/LeaguesOfHoleHoleShoes/HoleCombo/texas/cards"
)

var ErrTooFewCards = errors.New("less than 5 cards")

type chainLink struct {
	rank   ComboRank
	detect Detector
}

// 策略链，从大到小排，一旦找到了大牌则立刻终止
// The order is what makes four of a kind beat the two pair hiding inside it, keep it descending.
var playChain = []chainLink{
	{RoyalFlush, DetectRoyalFlush},
	{StraightFlush, DetectStraightFlush},
	{FourOfKind, DetectFourOfKind},
	{FullHouse, DetectFullHouse},
	{Flush, DetectFlush},
	{Straight, DetectStraight},
	{ThreeOfKind, DetectThreeOfKind},
	{TwoPair, DetectTwoPair},
	{Pair, DetectPair},
	{HighCard, DetectHighCard},
}

// DetectorFor returns the detector of one combo rank.
func DetectorFor(rank ComboRank) (Detector, bool) {
	for _, link := range playChain {
		if link.rank == rank {
			return link.detect, true
		}
	}
	return nil, false
}

// DetectCombo returns the best combo that can be picked from cs.
// cs must hold at least 5 cards, callers validate the size first.
func DetectCombo(cs []cards.Card) Combo {
	if len(cs) < ComboSize {
		panic(fmt.Sprintf("%d cards passed to DetectCombo: %v", len(cs), ErrTooFewCards))
	}
	for _, link := range playChain {
		if c, ok := link.detect(cs); ok {
			return c
		}
	}
	// DetectHighCard never fails
	panic("no combo detected")
}

// CheckCards reports the error DetectCombo would panic on.
func CheckCards(cs []cards.Card) error {
	if len(cs) < ComboSize {
		return fmt.Errorf("%w: got %d", ErrTooFewCards, len(cs))
	}
	return nil
}

// HandStrToCombo parses an ascii hand ("Aa Kb Qc Jd ta") and detects its combo.
func HandStrToCombo(handStr string) (Combo, error) {
	cs, err := cards.ParseCards(handStr)
	if err != nil {
		return Combo{}, err
	}
	if err := CheckCards(cs); err != nil {
		return Combo{}, err
	}
	return DetectCombo(cs), nil
}

// 大概80为分界线，80个以下开线程去做的开销比直接算的开销更大
const syncThreshold = 80

// Analyst detects combos of many hands on several goroutines.
type Analyst struct {
	workers int
}

// NewAnalyst uses one worker per cpu when workers is not positive.
func NewAnalyst(workers int) *Analyst {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Analyst{workers: workers}
}

func (a *Analyst) Workers() int {
	return a.workers
}

// DetectAll returns the combo of every hand, in input order. Every hand is checked before any
// work starts; a short hand fails the whole batch.
func (a *Analyst) DetectAll(ctx context.Context, hands [][]cards.Card) ([]Combo, error) {
	for i, h := range hands {
		if err := CheckCards(h); err != nil {
			return nil, fmt.Errorf("hand %d: %w", i, err)
		}
	}
	result := make([]Combo, len(hands))
	if a.workers < 2 || len(hands) < syncThreshold {
		if err := detectRange(ctx, hands, result, 0, len(hands)); err != nil {
			return nil, err
		}
		return result, nil
	}

	workers := a.workers
	step := (len(hands) + workers - 1) / workers
	errC := make(chan error, workers)
	started := 0
	for from := 0; from < len(hands); from += step {
		to := from + step
		if to > len(hands) {
			to = len(hands)
		}
		started++
		go func(from, to int) {
			errC <- detectRange(ctx, hands, result, from, to)
		}(from, to)
	}
	// 将在这里阻塞
	var firstErr error
	for i := 0; i < started; i++ {
		if err := <-errC; err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if firstErr != nil {
		return nil, firstErr
	}
	return result, nil
}

// detectRange fills result[from:to], each goroutine owns its own range.
func detectRange(ctx context.Context, hands [][]cards.Card, result []Combo, from, to int) error {
	for i := from; i < to; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		result[i] = DetectCombo(hands[i])
	}
	return nil
}
