package cli

import (
	"context"
	"fmt"
	"math/rand"
	"slices"
	"sync"

	"golang.org/x/sync/errgroup"

	"gomahjong/engines/mahjong"
	"gomahjong/engines/reference"
)

// Mismatch 搜索结果与参照实现不一致的手牌
type Mismatch struct {
	Hand      mahjong.Hand34
	Shanten   int
	Reference int
	Waits     []mahjong.TileType
	RefWaits  []mahjong.TileType
}

func (m Mismatch) String() string {
	return fmt.Sprintf("%s: shanten %d / %d, waits %v / %v", m.Hand, m.Shanten, m.Reference, m.Waits, m.RefWaits)
}

type CrosscheckReport struct {
	Hands      int
	Tenpai     int
	Mismatches []Mismatch
}

// Crosscheck 随机抽 n 手 13 张的门清手牌，与 tempai-core 比较向听数，听牌时比较待牌
func Crosscheck(ctx context.Context, s *mahjong.Searcher, n int, seed int64, workers int) (*CrosscheckReport, error) {
	rng := rand.New(rand.NewSource(seed))
	hands := make([]mahjong.Hand34, n)
	for i := range hands {
		hands[i] = randomHand(rng, 13)
	}

	var (
		mu     sync.Mutex
		report = &CrosscheckReport{Hands: n}
	)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(workers, 1))
	for _, h := range hands {
		h := h
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			m, tenpai, err := compare(s, h)
			if err != nil {
				return err
			}
			mu.Lock()
			defer mu.Unlock()
			if tenpai {
				report.Tenpai++
			}
			if m != nil {
				report.Mismatches = append(report.Mismatches, *m)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	slices.SortFunc(report.Mismatches, func(a, b Mismatch) int {
		return slices.Compare(a.Hand[:], b.Hand[:])
	})
	return report, nil
}

func compare(s *mahjong.Searcher, h mahjong.Hand34) (*Mismatch, bool, error) {
	eff, err := s.EffectiveTiles(h, 0, nil)
	if err != nil {
		return nil, false, err
	}
	ref, err := reference.Shanten(h, 0)
	if err != nil {
		return nil, false, err
	}
	m := &Mismatch{Hand: h, Shanten: eff.Shanten, Reference: ref}
	if eff.Shanten != ref {
		return m, false, nil
	}
	if eff.Shanten != 0 {
		return nil, false, nil
	}

	// 每张有效牌加入后都必须和牌
	for _, t := range eff.Types() {
		work := h
		work[t]++
		if !mahjong.IsAgari(work, 0) {
			m.Waits = eff.Types()
			return m, true, nil
		}
	}

	refWaits, err := reference.Waits(h, 0)
	if err != nil {
		return nil, true, err
	}
	// 手里已有 4 张的牌摸不到，不算有效牌
	refWaits = slices.DeleteFunc(refWaits, func(t mahjong.TileType) bool { return h[t] >= 4 })
	slices.Sort(refWaits)
	if !slices.Equal(eff.Types(), refWaits) {
		m.Waits, m.RefWaits = eff.Types(), refWaits
		return m, true, nil
	}
	return nil, true, nil
}

func randomHand(rng *rand.Rand, n int) mahjong.Hand34 {
	wall := make([]mahjong.TileType, 0, 4*mahjong.TileKinds)
	for _, k := range mahjong.AllTileTypes {
		for i := 0; i < 4; i++ {
			wall = append(wall, k)
		}
	}
	rng.Shuffle(len(wall), func(i, j int) { wall[i], wall[j] = wall[j], wall[i] })
	var h mahjong.Hand34
	for _, k := range wall[:n] {
		h[k]++
	}
	return h
}
