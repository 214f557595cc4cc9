package mahjong

import "fmt"

// WinningShape 和牌时真正接受和牌张的拆法、牌组和听牌形状，供算分使用
type WinningShape struct {
	Decomposition Decomposition
	Component     Component
	Shape         WaitShape
}

// Progress 手牌进度
type Progress struct {
	Shanten    int
	HandType   HandType
	Result     ShantenResult
	Effective  *EffectiveResult // 3n+1 张时的有效牌
	Candidates []Candidate      // 3n+2 张时的打牌候选

	Winning       bool
	WinningTile   Tile
	WinningShapes []WinningShape
}

// Analyzer 组合向听数、有效牌和和牌判断
type Analyzer struct {
	searcher *Searcher
}

func NewAnalyzer(s *Searcher) *Analyzer {
	if s == nil {
		s = NewSearcher()
	}
	return &Analyzer{searcher: s}
}

func (a *Analyzer) Searcher() *Searcher {
	return a.searcher
}

// Analyze 计算向听数，再按张数给出有效牌或打牌候选，并判断是否和牌。
// visible 为场上其他可见的牌，可以为 nil；自己的副露和弃牌会自动算入
func (a *Analyzer) Analyze(h *Hand, visible *Hand34) (*Progress, error) {
	counts, fixed := h.Counts(), h.FixedMelds()
	res, err := a.searcher.Shanten(counts, fixed)
	if err != nil {
		return nil, err
	}
	p := &Progress{Shanten: res.Shanten, HandType: res.HandType, Result: res}

	seen := h.Visible()
	if visible != nil {
		if err := visible.Validate(); err != nil {
			return nil, err
		}
		for i, c := range visible {
			seen[i] = min(seen[i]+c, 4)
		}
	}

	switch len(h.tiles) % 3 {
	case 1:
		eff, err := a.searcher.EffectiveTiles(counts, fixed, &seen)
		if err != nil {
			return nil, err
		}
		p.Effective = &eff
	case 2:
		cands, err := a.searcher.SeekCandidates(h.tiles, fixed, &seen)
		if err != nil {
			return nil, err
		}
		p.Candidates = cands

		win, shapes, err := a.Winning(h)
		if err != nil {
			return nil, err
		}
		if win {
			p.Winning = true
			p.WinningTile, _ = h.Last()
			p.WinningShapes = shapes
		}
	}
	return p, nil
}

// Winning 有最后一张牌，去掉它后听牌，并且它是听牌时的有效牌。
// 和牌时只返回接受这张牌的拆法
func (a *Analyzer) Winning(h *Hand) (bool, []WinningShape, error) {
	last, ok := h.Last()
	if !ok {
		return false, nil, nil
	}
	before := h.Counts()
	if err := before.Remove(last.Type); err != nil {
		return false, nil, fmt.Errorf("%w: last tile %s", ErrConsistency, last)
	}

	eff, err := a.searcher.EffectiveTiles(before, h.FixedMelds(), nil)
	if err != nil {
		return false, nil, err
	}
	if eff.Shanten != 0 {
		return false, nil, nil
	}
	et, ok := eff.Find(last.Type)
	if !ok {
		return false, nil, nil
	}

	shapes := make([]WinningShape, 0, len(et.Waits))
	for _, w := range et.Waits {
		shapes = append(shapes, WinningShape{
			Decomposition: eff.Decompositions[w.Decomposition],
			Component:     w.Component,
			Shape:         w.Shape,
		})
	}
	return true, shapes, nil
}
