package main

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/pterm/pterm"

	"github.com/LeaguesOfHoleHoleShoes/HoleCombo/texas/cards"
	"github.com/LeaguesOfHoleHoleShoes/HoleCombo/texas/hand_processor"
	"github.com/LeaguesOfHoleHoleShoes/HoleCombo/util"
)

func renderCard(cfg config, c cards.Card) string {
	switch {
	case cfg.ascii:
		return c.LongASCII()
	case cfg.short:
		return colorCard(c, c.ShortUnicode())
	default:
		return colorCard(c, c.LongUnicode())
	}
}

func colorCard(c cards.Card, s string) string {
	if c.Suit().Red() {
		return pterm.LightRed(s)
	}
	return pterm.LightWhite(s)
}

func renderCards(cfg config, cs []cards.Card) string {
	parts := make([]string, len(cs))
	for i, c := range cs {
		parts[i] = renderCard(cfg, c)
	}
	return strings.Join(parts, " ")
}

func renderCombo(cfg config, combo hand_processor.Combo) string {
	rank := combo.Rank.String()
	if !cfg.ascii {
		rank = pterm.LightYellow(rank)
	}
	return rank + ": " + renderCards(cfg, combo.Cards[:])
}

type handJson struct {
	Cards []cards.Card         `json:"cards"`
	Combo hand_processor.Combo `json:"combo"`
}

func printHand(cfg config, cs []cards.Card, combo hand_processor.Combo) {
	if cfg.json {
		fmt.Fprintln(cfg.out, util.StringifyJson(handJson{Cards: cs, Combo: combo}))
		return
	}
	pterm.Fprintln(cfg.out, "hand  "+renderCards(cfg, cs))
	pterm.Fprintln(cfg.out, "combo "+renderCombo(cfg, combo))
}

type compareJson struct {
	Result int                  `json:"result"`
	A      hand_processor.Combo `json:"a"`
	B      hand_processor.Combo `json:"b"`
}

func printCompare(cfg config, result int, a, b hand_processor.Combo) {
	if cfg.json {
		fmt.Fprintln(cfg.out, util.StringifyJson(compareJson{Result: result, A: a, B: b}))
		return
	}
	sign := "="
	switch result {
	case 1:
		sign = ">"
	case -1:
		sign = "<"
	}
	pterm.Fprintln(cfg.out, renderCombo(cfg, a))
	pterm.Fprintln(cfg.out, "  "+sign)
	pterm.Fprintln(cfg.out, renderCombo(cfg, b))
}

func printSummary(cfg config, counts map[hand_processor.ComboRank]int, total int) error {
	if cfg.json {
		byName := make(map[string]int, len(counts))
		for r, n := range counts {
			byName[r.String()] = n
		}
		fmt.Fprintln(cfg.out, util.StringifyJson(byName))
		return nil
	}
	ranks := make([]hand_processor.ComboRank, 0, len(counts))
	for r := range counts {
		ranks = append(ranks, r)
	}
	sort.Slice(ranks, func(i, j int) bool { return ranks[i] > ranks[j] })

	data := pterm.TableData{{"combo", "count", "share"}}
	for _, r := range ranks {
		share := float64(counts[r]) * 100 / float64(total)
		data = append(data, []string{r.String(), strconv.Itoa(counts[r]), fmt.Sprintf("%.3f%%", share)})
	}
	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return err
	}
	pterm.Fprintln(cfg.out, table)
	return nil
}
