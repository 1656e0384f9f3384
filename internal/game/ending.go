package game

import (
	"sort"

	"campuslife/internal/content"
)

// PassRatio is the share of a benchmark an attribute must reach to count
// as good.
const PassRatio = 0.5

// Tier is an ending table.
type Tier string

const (
	TierAllGood Tier = "allGood"
	TierMixed   Tier = "mixed"
	TierAllBad  Tier = "allBad"
)

// EndingOutcome explains how an ending was picked.
type EndingOutcome struct {
	Tier      Tier                `json:"tier"`
	Key       string              `json:"key"`
	GoodCount int                 `json:"goodCount"`
	Ranking   []content.Attribute `json:"ranking"`
	Fallback  bool                `json:"fallback"`
	Ending    content.Ending      `json:"ending"`
}

// GoodCount counts attributes that grew and reached half their benchmark.
func GoodCount(final, initial, benchmarks content.Stats) int {
	n := 0
	for _, a := range content.Attributes {
		f := final.Get(a)
		if f > initial.Get(a) && f >= benchmarks.Get(a)*PassRatio {
			n++
		}
	}
	return n
}

// Rank orders the attributes by final value, highest first. Equal values
// keep declared order.
func Rank(final content.Stats) []content.Attribute {
	out := make([]content.Attribute, len(content.Attributes))
	copy(out, content.Attributes[:])
	sort.SliceStable(out, func(i, j int) bool {
		return final.Get(out[i]) > final.Get(out[j])
	})
	return out
}

// SelectEnding maps final stats to an ending. The bundle is assumed
// valid, so every tier has a default entry.
func SelectEnding(final, initial content.Stats, cfg content.Config, endings content.Endings) EndingOutcome {
	good := GoodCount(final, initial, cfg.Benchmarks)
	rank := Rank(final)
	name := func(i int) string { return cfg.AttributeName(rank[i]) }

	out := EndingOutcome{GoodCount: good, Ranking: rank}
	var table map[string]content.Ending
	switch {
	case good == 4:
		out.Tier, table = TierAllGood, endings.AllGood
		out.Key = name(0) + "-" + name(1)
	case good >= 2:
		out.Tier, table = TierMixed, endings.Mixed
		out.Key = name(0) + "-" + name(3)
	default:
		out.Tier, table = TierAllBad, endings.AllBad
		out.Key = name(2) + "-" + name(3)
	}

	e, ok := table[out.Key]
	if !ok {
		e = table[content.DefaultEndingKey]
		out.Fallback = true
	}
	out.Ending = e
	return out
}
