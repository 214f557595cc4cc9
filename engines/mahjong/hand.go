package mahjong

import (
	"fmt"
	"slices"
)

// Hand 一手牌：暗手牌、副露（含暗杠）、最后摸/荣的牌。
// Draw/Discard 原地修改，不能并发修改同一个 Hand，需要时先 Clone
type Hand struct {
	tiles       []Tile      // 手中的牌，保持有序
	melds       []Component // 碰、杠、吃的组合
	discardPile []Tile      // 弃牌堆
	newestTile  *Tile       // 最新摸的牌（用于和牌判断）
	counts      Hand34      // tiles 的计数缓存
}

// NewHand 由手牌和副露构造。last 非 nil 时必须在 tiles 中
func NewHand(tiles []Tile, melds []Component, last *Tile) (*Hand, error) {
	if len(melds) > 4 {
		return nil, fmt.Errorf("%w: %d melds", ErrIllegalCount, len(melds))
	}
	for _, m := range melds {
		if !m.kind.IsMeld() {
			return nil, fmt.Errorf("%w: %s is not a meld", ErrIllegalComponent, m)
		}
	}

	h := &Hand{
		tiles:       slices.Clone(tiles),
		melds:       slices.Clone(melds),
		discardPile: make([]Tile, 0, 18),
	}
	SortTiles(h.tiles)
	if err := h.refresh(); err != nil {
		return nil, err
	}
	if err := h.checkTotal(); err != nil {
		return nil, err
	}

	if last != nil {
		if !slices.ContainsFunc(h.tiles, last.Equal) {
			return nil, fmt.Errorf("%w: last tile %s not in hand", ErrConsistency, *last)
		}
		newest := *last
		h.newestTile = &newest
	}
	return h, nil
}

// refresh 重算计数缓存，同时校验每种牌（含副露）不超过 4 张
func (h *Hand) refresh() error {
	counts, _, err := Hand34FromTiles(h.tiles)
	if err != nil {
		return err
	}
	all := counts
	for _, m := range h.melds {
		for _, t := range m.tiles {
			if err := all.Add(t.Type); err != nil {
				return err
			}
		}
	}
	h.counts = counts
	return nil
}

func (h *Hand) checkTotal() error {
	if n := len(h.tiles) + 3*len(h.melds); n > MaxHandTiles {
		return fmt.Errorf("%w: %d tiles in hand", ErrIllegalCount, n)
	}
	return nil
}

// Draw 摸牌：加入手牌、重新排序、刷新计数并记为最新的牌
func (h *Hand) Draw(t Tile) error {
	if err := t.Validate(); err != nil {
		return err
	}
	prev := h.tiles
	h.tiles = append(slices.Clone(h.tiles), t)
	SortTiles(h.tiles)
	if err := h.refresh(); err != nil {
		h.tiles = prev
		return err
	}
	if err := h.checkTotal(); err != nil {
		h.tiles = prev
		_ = h.refresh()
		return err
	}
	newest := t
	h.newestTile = &newest
	return nil
}

// Discard 打出一张严格相等的牌；若是最新摸的牌则清掉标记
func (h *Hand) Discard(t Tile) error {
	i := slices.IndexFunc(h.tiles, t.Equal)
	if i < 0 {
		return fmt.Errorf("%w: %s not in hand", ErrIllegalCount, t)
	}
	h.tiles = slices.Delete(slices.Clone(h.tiles), i, i+1)
	_ = h.refresh()
	h.discardPile = append(h.discardPile, t)
	if h.newestTile != nil && h.newestTile.Equal(t) {
		h.newestTile = nil
	}
	return nil
}

func (h *Hand) Clone() *Hand {
	out := *h
	out.tiles = slices.Clone(h.tiles)
	out.melds = slices.Clone(h.melds)
	out.discardPile = slices.Clone(h.discardPile)
	if h.newestTile != nil {
		newest := *h.newestTile
		out.newestTile = &newest
	}
	return &out
}

func (h *Hand) Tiles() []Tile {
	return slices.Clone(h.tiles)
}

func (h *Hand) Melds() []Component {
	return slices.Clone(h.melds)
}

func (h *Hand) DiscardPile() []Tile {
	return slices.Clone(h.discardPile)
}

// Last 最后摸/荣的牌
func (h *Hand) Last() (Tile, bool) {
	if h.newestTile == nil {
		return Tile{}, false
	}
	return *h.newestTile, true
}

// Counts 暗手牌计数
func (h *Hand) Counts() Hand34 {
	return h.counts
}

func (h *Hand) FixedMelds() int {
	return len(h.melds)
}

// IsConcealed 门清：没有鸣牌（暗杠不算鸣牌）
func (h *Hand) IsConcealed() bool {
	for _, m := range h.melds {
		if m.IsOpen() {
			return false
		}
	}
	return true
}

// SpecialAllowed 七对子、国士无双只在没有任何副露（含暗杠）时成立
func (h *Hand) SpecialAllowed() bool {
	return len(h.melds) == 0
}

// Visible 自己看得见的、不在暗手里的牌：副露和弃牌
func (h *Hand) Visible() Hand34 {
	var v Hand34
	for _, m := range h.melds {
		for _, t := range m.tiles {
			if v[t.Type] < 4 {
				v[t.Type]++
			}
		}
	}
	for _, t := range h.discardPile {
		if v[t.Type] < 4 {
			v[t.Type]++
		}
	}
	return v
}
