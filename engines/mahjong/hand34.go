package mahjong

import (
	"fmt"
	"strings"
)

// Hand34 34 种牌的计数，每种 0-4 张
type Hand34 [TileKinds]uint8

// MaxHandTiles 一手牌最多 14 张（杠按 3 张计）
const MaxHandTiles = 14

// Hand34FromTiles 实体牌转计数，同时按牌种收集实体牌供弃牌选择（红5/普通5）
func Hand34FromTiles(tiles []Tile) (Hand34, map[TileType][]Tile, error) {
	var h Hand34
	opts := make(map[TileType][]Tile, TileKinds)
	for _, t := range tiles {
		if err := t.Validate(); err != nil {
			return Hand34{}, nil, err
		}
		if err := h.Add(t.Type); err != nil {
			return Hand34{}, nil, err
		}
		opts[t.Type] = append(opts[t.Type], t)
	}
	return h, opts, nil
}

func (h Hand34) Count(tt TileType) int {
	if !tt.Valid() {
		return 0
	}
	return int(h[tt])
}

func (h *Hand34) Add(tt TileType) error {
	if !tt.Valid() {
		return fmt.Errorf("%w: index %d", ErrIllegalTile, int(tt))
	}
	if h[tt] >= 4 {
		return fmt.Errorf("%w: fifth copy of %s", ErrIllegalCount, tt)
	}
	h[tt]++
	return nil
}

func (h *Hand34) Remove(tt TileType) error {
	if !tt.Valid() {
		return fmt.Errorf("%w: index %d", ErrIllegalTile, int(tt))
	}
	if h[tt] == 0 {
		return fmt.Errorf("%w: no %s to remove", ErrIllegalCount, tt)
	}
	h[tt]--
	return nil
}

// Clone 数组是值类型，拷贝即独立
func (h Hand34) Clone() Hand34 {
	return h
}

func (h Hand34) Total() int {
	n := 0
	for _, c := range h {
		n += int(c)
	}
	return n
}

// PairCount 至少 2 张的牌种数
func (h Hand34) PairCount() int {
	return h.KindsAtLeast(2)
}

func (h Hand34) KindsAtLeast(n int) int {
	kinds := 0
	for _, c := range h {
		if int(c) >= n {
			kinds++
		}
	}
	return kinds
}

// Validate 每种不超过 4 张
func (h Hand34) Validate() error {
	for i, c := range h {
		if c > 4 {
			return fmt.Errorf("%w: %d copies of %s", ErrIllegalCount, c, TileType(i))
		}
	}
	return nil
}

// Tiles 展开为实体牌（全部非赤）
func (h Hand34) Tiles() []Tile {
	out := make([]Tile, 0, h.Total())
	for i, c := range h {
		for k := 0; k < int(c); k++ {
			out = append(out, Tile{Type: TileType(i)})
		}
	}
	return out
}

func (h Hand34) String() string {
	var b strings.Builder
	for s := SuitMan; s <= SuitHonor; s++ {
		wrote := false
		for i, c := range h {
			tt := TileType(i)
			if tt.Suit() != s {
				continue
			}
			for k := 0; k < int(c); k++ {
				fmt.Fprintf(&b, "%d", tt.Rank())
				wrote = true
			}
		}
		if wrote {
			b.WriteString(s.String())
		}
	}
	return b.String()
}

// key 缓存 key：34 个计数 + 副露数
func (h Hand34) key(fixedMelds int) string {
	var b [TileKinds + 1]byte
	for i := 0; i < TileKinds; i++ {
		b[i] = byte(h[i])
	}
	b[TileKinds] = byte(fixedMelds)
	return string(b[:])
}

// checkInput 进入搜索前的校验，避免异常计数导致的病态递归
func checkInput(h Hand34, fixedMelds int) error {
	if err := h.Validate(); err != nil {
		return err
	}
	if fixedMelds < 0 || fixedMelds > 4 {
		return fmt.Errorf("%w: %d committed melds", ErrIllegalCount, fixedMelds)
	}
	if n := h.Total() + 3*fixedMelds; n > MaxHandTiles {
		return fmt.Errorf("%w: %d tiles in hand", ErrIllegalCount, n)
	}
	return nil
}
