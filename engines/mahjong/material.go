package mahjong

import (
	"cmp"
	"fmt"
	"slices"
)

type TileType int

const (
	// 万子 (0-8)
	Man1 TileType = iota
	Man2
	Man3
	Man4
	Man5
	Man6
	Man7
	Man8
	Man9

	// 筒子 (9-17)
	Pin1
	Pin2
	Pin3
	Pin4
	Pin5
	Pin6
	Pin7
	Pin8
	Pin9

	// 索子 (18-26)
	So1
	So2
	So3
	So4
	So5
	So6
	So7
	So8
	So9

	// 字牌 (27-33)
	East
	South
	West
	North
	White
	Green
	Red
)

// TileKinds 牌种数
const TileKinds = 34

type Suit int

const (
	SuitMan Suit = iota
	SuitPin
	SuitSou
	SuitHonor
)

func (s Suit) String() string {
	switch s {
	case SuitMan:
		return "m"
	case SuitPin:
		return "p"
	case SuitSou:
		return "s"
	default:
		return "z"
	}
}

// AllTileTypes 34 种牌，按索引升序
var AllTileTypes = func() [TileKinds]TileType {
	var all [TileKinds]TileType
	for i := range all {
		all[i] = TileType(i)
	}
	return all
}()

// YaochuTypes 幺九牌（国士无双用的 13 种）
var YaochuTypes = [13]TileType{
	Man1, Man9,
	Pin1, Pin9,
	So1, So9,
	East, South, West, North,
	White, Green, Red,
}

func (t TileType) Valid() bool {
	return t >= Man1 && t <= Red
}

func (t TileType) IsNumbered() bool {
	return t >= Man1 && t <= So9
}

func (t TileType) IsHonor() bool {
	return t >= East && t <= Red
}

func (t TileType) IsFive() bool {
	return t == Man5 || t == Pin5 || t == So5
}

func (t TileType) Suit() Suit {
	if t.IsHonor() {
		return SuitHonor
	}
	return Suit(int(t) / 9)
}

// Rank 数牌 1-9，字牌 1-7（东南西北白发中）
func (t TileType) Rank() int {
	if t.IsHonor() {
		return int(t-East) + 1
	}
	return int(t)%9 + 1
}

// IsTerminal 老头牌
func (t TileType) IsTerminal() bool {
	if !t.IsNumbered() {
		return false
	}
	r := t.Rank()
	return r == 1 || r == 9
}

// IsYaochu 幺九牌
func (t TileType) IsYaochu() bool {
	return t.IsHonor() || t.IsTerminal()
}

// Offset 同花色内偏移 d 后的牌，越过花色边界返回 false
func (t TileType) Offset(d int) (TileType, bool) {
	if !t.IsNumbered() {
		return t, false
	}
	r := t.Rank() + d
	if r < 1 || r > 9 {
		return t, false
	}
	return t + TileType(d), true
}

func (t TileType) String() string {
	if !t.Valid() {
		return fmt.Sprintf("TileType(%d)", int(t))
	}
	return fmt.Sprintf("%d%s", t.Rank(), t.Suit())
}

// Tile 实体牌。Red 只允许出现在数牌 5 上
type Tile struct {
	Type TileType
	Red  bool
}

// NewTile 构造牌并校验赤宝牌合法性
func NewTile(tt TileType, red bool) (Tile, error) {
	t := Tile{Type: tt, Red: red}
	if err := t.Validate(); err != nil {
		return Tile{}, err
	}
	return t, nil
}

func (t Tile) Validate() error {
	if !t.Type.Valid() {
		return fmt.Errorf("%w: index %d", ErrIllegalTile, int(t.Type))
	}
	if t.Red && !t.Type.IsFive() {
		return fmt.Errorf("%w: red %s", ErrIllegalTile, t.Type)
	}
	return nil
}

// IsRedFive 是否赤宝牌
func (t Tile) IsRedFive() bool {
	return t.Red && t.Type.IsFive()
}

// Equal 严格相等（牌种 + 赤）
func (t Tile) Equal(o Tile) bool {
	return t.Type == o.Type && t.Red == o.Red
}

// SameKind 只比较牌种，赤五和普通五视为相同
func (t Tile) SameKind(o Tile) bool {
	return t.Type == o.Type
}

// CompareTiles 索引升序，同索引时赤牌在前
func CompareTiles(a, b Tile) int {
	if c := cmp.Compare(a.Type, b.Type); c != 0 {
		return c
	}
	switch {
	case a.Red == b.Red:
		return 0
	case a.Red:
		return -1
	default:
		return 1
	}
}

func (t Tile) Less(o Tile) bool {
	return CompareTiles(t, o) < 0
}

func SortTiles(tiles []Tile) {
	slices.SortStableFunc(tiles, CompareTiles)
}

func (t Tile) String() string {
	if t.IsRedFive() {
		return "0" + t.Type.Suit().String()
	}
	return t.Type.String()
}
