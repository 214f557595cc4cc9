package mahjong

import (
	"cmp"
	"fmt"
	"slices"
)

// Candidate 打出一种牌之后的向听数、有效牌和进张
type Candidate struct {
	DiscardType    TileType
	DiscardOptions []Tile     // 实体牌：红5/普通5供 UI 选择
	Shanten        int        // 打出后的向听数
	Waits          []TileType // 打出后的有效牌，听牌时即听哪些牌
	Ukeire         int        // 有效张数
}

func (c Candidate) IsTenpai() bool {
	return c.Shanten == 0
}

// SeekCandidates 3n+2 张时枚举每种可打的牌。按向听数、进张数、牌序排序。
// 是否允许立直由调用方根据 IsTenpai 判断
func (s *Searcher) SeekCandidates(hand []Tile, fixedMelds int, visible *Hand34) ([]Candidate, error) {
	h, discardOpts, err := Hand34FromTiles(hand)
	if err != nil {
		return nil, err
	}
	if err := checkInput(h, fixedMelds); err != nil {
		return nil, err
	}
	if h.Total()%3 != 2 {
		return nil, fmt.Errorf("%w: %d concealed tiles, need 3n+2", ErrIllegalCount, h.Total())
	}
	if visible != nil {
		if err := visible.Validate(); err != nil {
			return nil, err
		}
	}

	out := make([]Candidate, 0, len(discardOpts))
	for _, tt := range AllTileTypes {
		if h[tt] == 0 {
			continue
		}
		after := h
		after[tt]--

		eff := s.effective(after, fixedMelds).withVisible(after, visible)
		out = append(out, Candidate{
			DiscardType:    tt,
			DiscardOptions: slices.Clone(discardOpts[tt]),
			Shanten:        eff.Shanten,
			Waits:          eff.Types(),
			Ukeire:         eff.Ukeire,
		})
	}

	slices.SortStableFunc(out, func(a, b Candidate) int {
		if c := cmp.Compare(a.Shanten, b.Shanten); c != 0 {
			return c
		}
		if c := cmp.Compare(b.Ukeire, a.Ukeire); c != 0 {
			return c
		}
		return cmp.Compare(a.DiscardType, b.DiscardType)
	})
	return out, nil
}
