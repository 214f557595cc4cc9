package mahjong

import "slices"

// EffectiveTile 有效牌：摸到后向听数严格下降
type EffectiveTile struct {
	Type      TileType
	HandTypes []HandType   // 因这张牌而前进的牌型
	Remaining int          // 剩余枚数（4 - 手牌 - 可见）
	Waits     []WaitDetail // 仅听牌时有值
}

// EffectiveResult 有效牌计算结果
type EffectiveResult struct {
	Shanten        int
	HandType       HandType
	Decompositions []Decomposition
	Tiles          []EffectiveTile
	Ukeire         int // 进张总数
}

func (r EffectiveResult) Types() []TileType {
	out := make([]TileType, len(r.Tiles))
	for i, t := range r.Tiles {
		out[i] = t.Type
	}
	return out
}

func (r EffectiveResult) Find(tt TileType) (EffectiveTile, bool) {
	for _, t := range r.Tiles {
		if t.Type == tt {
			return t, true
		}
	}
	return EffectiveTile{}, false
}

// EffectiveTiles 枚举有效牌并计算进张。听牌时给出每个 (拆法, 进张) 的听牌形状。
// visible 为场上可见牌（牌河、副露、宝牌指示牌），可以为 nil
func (s *Searcher) EffectiveTiles(h Hand34, fixedMelds int, visible *Hand34) (EffectiveResult, error) {
	if err := checkInput(h, fixedMelds); err != nil {
		return EffectiveResult{}, err
	}
	if visible != nil {
		if err := visible.Validate(); err != nil {
			return EffectiveResult{}, err
		}
	}
	r := s.effective(h, fixedMelds)
	return r.withVisible(h, visible), nil
}

func (s *Searcher) effective(h Hand34, fixedMelds int) EffectiveResult {
	key := "e" + h.key(fixedMelds)
	if v, ok := s.cache.Get(key); ok {
		if r, ok := v.(EffectiveResult); ok {
			return r
		}
	}

	base := s.shanten(h, fixedMelds)
	r := EffectiveResult{
		Shanten:        base.Shanten,
		HandType:       base.HandType,
		Decompositions: base.Decompositions,
	}

	// 和牌（-1）时没有有效牌
	if base.Shanten >= 0 {
		tied := base.TiedTypes()
		for _, tt := range AllTileTypes {
			if h[tt] >= 4 {
				continue
			}
			work := h
			work[tt]++

			// 只有当前最优的牌型才可能因这张牌前进
			var improved []HandType
			for _, t := range tied {
				if s.shantenOf(work, fixedMelds, t) < base.Shanten {
					improved = append(improved, t)
				}
			}
			if len(improved) == 0 {
				continue
			}

			et := EffectiveTile{Type: tt, HandTypes: improved}
			if base.Shanten == 0 {
				for i, d := range base.Decompositions {
					if slices.Contains(improved, d.handType) {
						et.Waits = append(et.Waits, d.waitsFor(i, tt)...)
					}
				}
			}
			r.Tiles = append(r.Tiles, et)
		}
	}

	s.cache.Set(key, r)
	return r
}

// withVisible 在缓存结果的副本上计算剩余枚数
func (r EffectiveResult) withVisible(h Hand34, visible *Hand34) EffectiveResult {
	out := r
	out.Decompositions = slices.Clone(r.Decompositions)
	out.Tiles = make([]EffectiveTile, len(r.Tiles))
	out.Ukeire = 0
	for i, t := range r.Tiles {
		left := 4 - int(h[t.Type])
		if visible != nil {
			left -= int(visible[t.Type])
		}
		if left < 0 {
			left = 0
		}
		t.Remaining = left
		t.HandTypes = slices.Clone(t.HandTypes)
		t.Waits = slices.Clone(t.Waits)
		out.Tiles[i] = t
		out.Ukeire += left
	}
	return out
}
