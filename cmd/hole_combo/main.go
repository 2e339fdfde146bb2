package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/urfave/cli"
	"go.uber.org/zap"

	"github.com/LeaguesOfHoleHoleShoes/HoleCombo/log"
	"github.com/LeaguesOfHoleHoleShoes/HoleCombo/metrics"
	"github.com/LeaguesOfHoleHoleShoes/HoleCombo/msg_server"
	"github.com/LeaguesOfHoleHoleShoes/HoleCombo/texas/cards"
	"github.com/LeaguesOfHoleHoleShoes/HoleCombo/texas/hand_processor"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.L.Error("hole_combo failed", zap.Error(err))
		os.Exit(1)
	}
}

// runner carries what the commands of one app share.
type runner struct {
	collector *metrics.Collector
}

func newApp() *cli.App {
	r := &runner{collector: metrics.New()}
	return r.app()
}

func (r *runner) app() *cli.App {
	app := cli.NewApp()
	app.Name = "hole_combo"
	app.Usage = "find the best poker combo in a set of cards"
	app.Flags = globalFlags
	app.Before = func(c *cli.Context) error {
		log.UseProd(c.GlobalBool(ProdFName))
		return nil
	}
	app.Commands = []cli.Command{
		{
			Name:   "deal",
			Usage:  "shuffle a deck, deal cards and show their combo",
			Flags:  []cli.Flag{cli.IntFlag{Name: CountFName, Value: 7}},
			Action: r.runDeal,
		},
		{
			Name:      "eval",
			Usage:     "show the combo of the given cards",
			ArgsUsage: "Aa Kb Qc Jd ta ...",
			Action:    r.runEval,
		},
		{
			Name:  "compare",
			Usage: "compare the combos of two hands",
			Flags: []cli.Flag{
				cli.StringFlag{Name: HandAFName, Usage: "first hand, e.g. \"Aa Ab Kc Kd 2a\""},
				cli.StringFlag{Name: HandBFName, Usage: "second hand"},
			},
			Action: r.runCompare,
		},
		{
			Name:  "batch",
			Usage: "deal many random hands and count their combos",
			Flags: []cli.Flag{
				cli.IntFlag{Name: HandsFName, Value: 100000},
				cli.IntFlag{Name: CountFName, Value: 7},
				cli.IntFlag{Name: WorkersFName, Value: 0, Usage: "0 uses one worker per cpu"},
			},
			Action: r.runBatch,
		},
		{
			Name:  "serve",
			Usage: "answer eval and compare requests over websocket",
			Flags: []cli.Flag{
				cli.IntFlag{Name: PortFName, Value: 3030},
				cli.IntFlag{Name: MetricsPortFName, Value: 9110, Usage: "0 disables /metrics"},
			},
			Action: r.runServe,
		},
	}
	return app
}

var errHandSize = errors.New("a hand needs 5 to 52 cards")

func checkCount(count int) error {
	if count < hand_processor.ComboSize || count > cards.DeckSize {
		return fmt.Errorf("%w, got %d", errHandSize, count)
	}
	return nil
}

func (r *runner) runDeal(c *cli.Context) error {
	cfg := configFrom(c)
	if err := checkCount(cfg.count); err != nil {
		return err
	}
	cs, err := cards.NewPokerHeap().Deal(cfg.count)
	if err != nil {
		return err
	}
	r.collector.ObserveDealt(len(cs))
	printHand(cfg, cs, r.detect(cs))
	return nil
}

func (r *runner) runEval(c *cli.Context) error {
	cfg := configFrom(c)
	cs, combo, err := r.detectHand(strings.Join(c.Args(), " "))
	if err != nil {
		return err
	}
	printHand(cfg, cs, combo)
	return nil
}

func (r *runner) detectHand(str string) ([]cards.Card, hand_processor.Combo, error) {
	cs, err := cards.ParseCards(str)
	if err != nil {
		return nil, hand_processor.Combo{}, err
	}
	if err := hand_processor.CheckCards(cs); err != nil {
		return nil, hand_processor.Combo{}, err
	}
	return cs, r.detect(cs), nil
}

func (r *runner) detect(cs []cards.Card) hand_processor.Combo {
	start := time.Now()
	combo := hand_processor.DetectCombo(cs)
	r.collector.ObserveCombo(combo.Rank.String(), time.Since(start))
	return combo
}

func (r *runner) runCompare(c *cli.Context) error {
	cfg := configFrom(c)
	_, a, err := r.detectHand(cfg.handA)
	if err != nil {
		return fmt.Errorf("hand a: %w", err)
	}
	_, b, err := r.detectHand(cfg.handB)
	if err != nil {
		return fmt.Errorf("hand b: %w", err)
	}
	hm := &hand_processor.HMatcher{}
	printCompare(cfg, hm.Cmp(a, b), a, b)
	return nil
}

func (r *runner) runBatch(c *cli.Context) error {
	cfg := configFrom(c)
	if err := checkCount(cfg.count); err != nil {
		return err
	}
	if cfg.hands <= 0 {
		return fmt.Errorf("hands must be positive, got %d", cfg.hands)
	}
	hands := make([][]cards.Card, cfg.hands)
	for i := range hands {
		// a fresh heap per hand, hands are independent
		cs, err := cards.NewPokerHeap().Deal(cfg.count)
		if err != nil {
			return err
		}
		hands[i] = cs
		r.collector.ObserveDealt(len(cs))
	}

	analyst := hand_processor.NewAnalyst(cfg.workers)
	start := time.Now()
	combos, err := analyst.DetectAll(context.Background(), hands)
	if err != nil {
		return err
	}
	cost := time.Since(start)
	log.L.Info("batch detected", zap.Int("hands", len(combos)), zap.Int("workers", analyst.Workers()), zap.Duration("cost", cost))

	// spread the batch cost evenly, DetectAll does not time single hands
	each := cost / time.Duration(len(combos))
	counts := make(map[hand_processor.ComboRank]int)
	for _, combo := range combos {
		counts[combo.Rank]++
		r.collector.ObserveCombo(combo.Rank.String(), each)
	}
	return printSummary(cfg, counts, len(combos))
}

func (r *runner) runServe(c *cli.Context) error {
	cfg := configFrom(c)
	collector := r.collector
	h := msg_server.NewComboHandler(collector)
	server := msg_server.NewWsServer(cfg.port, h)
	h.Bind(server)

	errC := make(chan error, 2)
	go func() { errC <- server.Run() }()
	if cfg.metricsPort > 0 {
		go func() { errC <- collector.Serve(cfg.metricsPort) }()
	}

	select {
	case err := <-errC:
		return err
	case <-signalListen():
		log.L.Info("stopping msg server")
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	return server.Stop(ctx)
}

// listen stop signal
func signalListen() <-chan os.Signal {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	return c
}
