package mahjong

import (
	"fmt"
	"slices"
	"strings"
)

type ComponentKind int

const (
	KindRun     ComponentKind = iota // 顺子
	KindTriplet                      // 刻子
	KindQuad                         // 杠子
	KindPair                         // 对子
	KindPartial                      // 搭子（两面/边张/嵌张）
	KindFloater                      // 孤张
)

func (k ComponentKind) String() string {
	switch k {
	case KindRun:
		return "run"
	case KindTriplet:
		return "triplet"
	case KindQuad:
		return "quad"
	case KindPair:
		return "pair"
	case KindPartial:
		return "partial"
	case KindFloater:
		return "floater"
	default:
		return fmt.Sprintf("ComponentKind(%d)", int(k))
	}
}

// IsMeld 面子（顺子、刻子、杠子）
func (k ComponentKind) IsMeld() bool {
	return k == KindRun || k == KindTriplet || k == KindQuad
}

// Call 鸣牌来源
type Call struct {
	From int  // 从哪个玩家那里获得
	Tile Tile // 鸣的那张牌
}

// Component 牌组。只能通过构造函数得到，构造时校验形状
type Component struct {
	kind  ComponentKind
	tiles []Tile
	call  *Call
}

// NewRun 顺子：同花色连续三张数牌
func NewRun(a, b, c Tile) (Component, error) {
	return newComponent(KindRun, a, b, c)
}

func NewTriplet(a, b, c Tile) (Component, error) {
	return newComponent(KindTriplet, a, b, c)
}

func NewQuad(a, b, c, d Tile) (Component, error) {
	return newComponent(KindQuad, a, b, c, d)
}

func NewPair(a, b Tile) (Component, error) {
	return newComponent(KindPair, a, b)
}

// NewPartial 搭子：同花色相邻或隔一张的两张数牌
func NewPartial(a, b Tile) (Component, error) {
	return newComponent(KindPartial, a, b)
}

func NewFloater(t Tile) (Component, error) {
	return newComponent(KindFloater, t)
}

// ComponentFromTiles 按张数和形状自动识别牌组类型
func ComponentFromTiles(tiles ...Tile) (Component, error) {
	switch len(tiles) {
	case 1:
		return NewFloater(tiles[0])
	case 2:
		if tiles[0].SameKind(tiles[1]) {
			return NewPair(tiles[0], tiles[1])
		}
		return NewPartial(tiles[0], tiles[1])
	case 3:
		if tiles[0].SameKind(tiles[1]) {
			return NewTriplet(tiles[0], tiles[1], tiles[2])
		}
		return NewRun(tiles[0], tiles[1], tiles[2])
	case 4:
		return NewQuad(tiles[0], tiles[1], tiles[2], tiles[3])
	default:
		return Component{}, fmt.Errorf("%w: %d tiles", ErrIllegalComponent, len(tiles))
	}
}

func newComponent(kind ComponentKind, tiles ...Tile) (Component, error) {
	for _, t := range tiles {
		if err := t.Validate(); err != nil {
			return Component{}, err
		}
	}
	sorted := slices.Clone(tiles)
	SortTiles(sorted)
	if !shapeOK(kind, sorted) {
		return Component{}, fmt.Errorf("%w: %s from %v", ErrIllegalComponent, kind, sorted)
	}
	return Component{kind: kind, tiles: sorted}, nil
}

func shapeOK(kind ComponentKind, tiles []Tile) bool {
	first := tiles[0].Type
	switch kind {
	case KindTriplet, KindQuad, KindPair:
		for _, t := range tiles[1:] {
			if t.Type != first {
				return false
			}
		}
		return true
	case KindRun:
		if !first.IsNumbered() {
			return false
		}
		for i, t := range tiles {
			next, ok := first.Offset(i)
			if !ok || t.Type != next {
				return false
			}
		}
		return true
	case KindPartial:
		second := tiles[1].Type
		if !first.IsNumbered() || first.Suit() != second.Suit() {
			return false
		}
		d := int(second - first)
		return d == 1 || d == 2
	case KindFloater:
		return true
	default:
		return false
	}
}

// mustComponent 搜索内部使用，形状由调用方保证
func mustComponent(kind ComponentKind, types ...TileType) Component {
	tiles := make([]Tile, len(types))
	for i, tt := range types {
		tiles[i] = Tile{Type: tt}
	}
	return Component{kind: kind, tiles: tiles}
}

// Called 返回带鸣牌来源的副本，只有面子可以鸣
func (c Component) Called(from int, tile Tile) (Component, error) {
	if !c.kind.IsMeld() {
		return Component{}, fmt.Errorf("%w: cannot call a %s", ErrIllegalComponent, c.kind)
	}
	if !slices.ContainsFunc(c.tiles, tile.Equal) {
		return Component{}, fmt.Errorf("%w: called tile %s not in %s", ErrIllegalComponent, tile, c)
	}
	out := c
	out.tiles = slices.Clone(c.tiles)
	out.call = &Call{From: from, Tile: tile}
	return out, nil
}

func (c Component) Kind() ComponentKind {
	return c.kind
}

func (c Component) Tiles() []Tile {
	return slices.Clone(c.tiles)
}

func (c Component) Len() int {
	return len(c.tiles)
}

// Type 最小的牌种
func (c Component) Type() TileType {
	if len(c.tiles) == 0 {
		return -1
	}
	return c.tiles[0].Type
}

func (c Component) IsOpen() bool {
	return c.call != nil
}

func (c Component) Call() (Call, bool) {
	if c.call == nil {
		return Call{}, false
	}
	return *c.call, true
}

// IsGap 嵌张搭子
func (c Component) IsGap() bool {
	return c.kind == KindPartial && c.tiles[1].Type-c.tiles[0].Type == 2
}

// Accepts 能让这个牌组升级的牌种：搭子成顺、对子成刻、孤张成对
func (c Component) Accepts() []TileType {
	switch c.kind {
	case KindPair, KindFloater:
		return []TileType{c.Type()}
	case KindPartial:
		low := c.Type()
		if c.IsGap() {
			mid, _ := low.Offset(1)
			return []TileType{mid}
		}
		var out []TileType
		if t, ok := low.Offset(-1); ok {
			out = append(out, t)
		}
		if t, ok := low.Offset(2); ok {
			out = append(out, t)
		}
		return out
	default:
		return nil
	}
}

func (c Component) accepts(tt TileType) bool {
	return slices.Contains(c.Accepts(), tt)
}

// Equal 种类 + 牌（严格相等）+ 是否副露
func (c Component) Equal(o Component) bool {
	if c.kind != o.kind || c.IsOpen() != o.IsOpen() {
		return false
	}
	return slices.EqualFunc(c.tiles, o.tiles, Tile.Equal)
}

func (c Component) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for _, t := range c.tiles {
		if t.IsRedFive() {
			b.WriteByte('0')
		} else {
			fmt.Fprintf(&b, "%d", t.Type.Rank())
		}
	}
	if len(c.tiles) > 0 {
		b.WriteString(c.tiles[0].Type.Suit().String())
	}
	b.WriteByte(']')
	if c.call != nil {
		b.WriteByte('*')
	}
	return b.String()
}

// key 按牌种比较，用于分解去重
func (c Component) key() string {
	b := make([]byte, 0, len(c.tiles)+1)
	b = append(b, byte('a'+c.kind))
	for _, t := range c.tiles {
		b = append(b, byte(t.Type))
	}
	return string(b)
}
