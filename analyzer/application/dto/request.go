package dto

import (
	"fmt"
	"slices"
	"strings"

	"gomahjong/engines/mahjong"
)

// TileDTO 牌：index 为 0..33 的规范编号，red 仅对数牌 5 有效
type TileDTO struct {
	Index int  `json:"index"`
	Red   bool `json:"red,omitempty"`
}

func (t TileDTO) ToTile() (mahjong.Tile, error) {
	return mahjong.NewTile(mahjong.TileType(t.Index), t.Red)
}

func ToTiles(ts []TileDTO) ([]mahjong.Tile, error) {
	out := make([]mahjong.Tile, 0, len(ts))
	for _, t := range ts {
		tile, err := t.ToTile()
		if err != nil {
			return nil, err
		}
		out = append(out, tile)
	}
	return out, nil
}

func FromTile(t mahjong.Tile) TileDTO {
	return TileDTO{Index: int(t.Type), Red: t.Red}
}

func FromTiles(ts []mahjong.Tile) []TileDTO {
	out := make([]TileDTO, len(ts))
	for i, t := range ts {
		out[i] = FromTile(t)
	}
	return out
}

// MeldDTO 副露。open 为 false 时是暗杠
type MeldDTO struct {
	Tiles  []TileDTO `json:"tiles"`
	Open   bool      `json:"open,omitempty"`
	From   int       `json:"from,omitempty"`   // 1 下家 2 对家 3 上家
	Called *TileDTO  `json:"called,omitempty"` // 鸣的那张牌，缺省取第一张
}

func (m MeldDTO) ToComponent() (mahjong.Component, error) {
	tiles, err := ToTiles(m.Tiles)
	if err != nil {
		return mahjong.Component{}, err
	}
	c, err := mahjong.ComponentFromTiles(tiles...)
	if err != nil {
		return mahjong.Component{}, err
	}
	if !c.Kind().IsMeld() {
		return mahjong.Component{}, fmt.Errorf("%w: %s is not a meld", mahjong.ErrIllegalComponent, c)
	}
	if !m.Open {
		return c, nil
	}
	called := tiles[0]
	if m.Called != nil {
		if called, err = m.Called.ToTile(); err != nil {
			return mahjong.Component{}, err
		}
	}
	return c.Called(m.From, called)
}

// HandRequest 一手牌：暗手牌、副露、最后摸/荣的牌，以及场上其他可见的牌
type HandRequest struct {
	Tiles   []TileDTO `json:"tiles" binding:"required"`
	Melds   []MeldDTO `json:"melds,omitempty"`
	Last    *TileDTO  `json:"last,omitempty"`
	Visible []TileDTO `json:"visible,omitempty"`
}

func (r *HandRequest) ToHand() (*mahjong.Hand, error) {
	tiles, err := ToTiles(r.Tiles)
	if err != nil {
		return nil, err
	}
	melds := make([]mahjong.Component, 0, len(r.Melds))
	for _, m := range r.Melds {
		c, err := m.ToComponent()
		if err != nil {
			return nil, err
		}
		melds = append(melds, c)
	}
	var last *mahjong.Tile
	if r.Last != nil {
		t, err := r.Last.ToTile()
		if err != nil {
			return nil, err
		}
		last = &t
	}
	return mahjong.NewHand(tiles, melds, last)
}

// VisibleCounts 没有可见牌时返回 nil
func (r *HandRequest) VisibleCounts() (*mahjong.Hand34, error) {
	if len(r.Visible) == 0 {
		return nil, nil
	}
	tiles, err := ToTiles(r.Visible)
	if err != nil {
		return nil, err
	}
	h, _, err := mahjong.Hand34FromTiles(tiles)
	if err != nil {
		return nil, err
	}
	return &h, nil
}

// Key 与牌的顺序无关的规范表示，用作快照键
func (r *HandRequest) Key() string {
	var b strings.Builder
	writeTiles := func(ts []TileDTO) {
		sorted := slices.Clone(ts)
		slices.SortFunc(sorted, func(a, b TileDTO) int {
			if a.Index != b.Index {
				return a.Index - b.Index
			}
			if a.Red == b.Red {
				return 0
			}
			if a.Red {
				return -1
			}
			return 1
		})
		for _, t := range sorted {
			fmt.Fprintf(&b, "%d", t.Index)
			if t.Red {
				b.WriteByte('r')
			}
			b.WriteByte(',')
		}
		b.WriteByte('|')
	}
	writeTiles(r.Tiles)
	for _, m := range r.Melds {
		fmt.Fprintf(&b, "m%v%d:", m.Open, m.From)
		writeTiles(m.Tiles)
	}
	if r.Last != nil {
		fmt.Fprintf(&b, "l%d%v|", r.Last.Index, r.Last.Red)
	}
	writeTiles(r.Visible)
	return b.String()
}

// ShantenRequest 只算向听数：暗手牌加已完成的副露数
type ShantenRequest struct {
	Tiles      []TileDTO `json:"tiles"`
	FixedMelds int       `json:"fixedMelds"`
}

func (r *ShantenRequest) Counts() (mahjong.Hand34, error) {
	tiles, err := ToTiles(r.Tiles)
	if err != nil {
		return mahjong.Hand34{}, err
	}
	h, _, err := mahjong.Hand34FromTiles(tiles)
	return h, err
}

type BatchRequest struct {
	Hands []HandRequest `json:"hands" binding:"required"`
}
