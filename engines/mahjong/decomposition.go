package mahjong

import (
	"fmt"
	"slices"
	"strings"
)

type HandType int

const (
	HandRegular HandType = iota // 一般型（4 面子 1 雀头）
	HandChiitoi                 // 七对子
	HandKokushi                 // 国士无双
)

// handTypes 展示用的并列优先级
var handTypes = [3]HandType{HandRegular, HandChiitoi, HandKokushi}

func (t HandType) String() string {
	switch t {
	case HandRegular:
		return "regular"
	case HandChiitoi:
		return "seven-pairs"
	case HandKokushi:
		return "thirteen-orphans"
	default:
		return fmt.Sprintf("HandType(%d)", int(t))
	}
}

// Decomposition 一种拆牌方式
type Decomposition struct {
	handType   HandType
	components []Component
	fixed      int // 已鸣的面子数
	shanten    int
}

func (d Decomposition) HandType() HandType {
	return d.handType
}

func (d Decomposition) Components() []Component {
	return slices.Clone(d.components)
}

func (d Decomposition) FixedMelds() int {
	return d.fixed
}

func (d Decomposition) Shanten() int {
	return d.shanten
}

// Melds 面子数，包含已鸣的
func (d Decomposition) Melds() int {
	return d.fixed + d.count(KindRun) + d.count(KindTriplet) + d.count(KindQuad)
}

func (d Decomposition) Pairs() int {
	return d.count(KindPair)
}

func (d Decomposition) Partials() int {
	return d.count(KindPartial)
}

func (d Decomposition) Floaters() int {
	return d.count(KindFloater)
}

func (d Decomposition) count(kind ComponentKind) int {
	n := 0
	for _, c := range d.components {
		if c.kind == kind {
			n++
		}
	}
	return n
}

func (d Decomposition) String() string {
	parts := make([]string, 0, len(d.components)+1)
	if d.fixed > 0 {
		parts = append(parts, fmt.Sprintf("+%d", d.fixed))
	}
	for _, c := range d.components {
		parts = append(parts, c.String())
	}
	return fmt.Sprintf("%s(%d) %s", d.handType, d.shanten, strings.Join(parts, " "))
}

// key 牌组多重集合相同即视为同一种拆法
func (d Decomposition) key() string {
	keys := make([]string, len(d.components))
	for i, c := range d.components {
		keys[i] = c.key()
	}
	slices.Sort(keys)
	return fmt.Sprintf("%d|%s", d.handType, strings.Join(keys, "|"))
}

// regularShanten 一般型向听数。
// 每个面子省 2 步；搭子和雀头以外的对子各省 1 步，最多算到还差的面子数；雀头再省 1 步
func regularShanten(melds, partials, pairs int) int {
	head := 0
	if pairs > 0 {
		head = 1
	}
	blocks := partials + pairs - head
	if limit := 4 - melds; blocks > limit {
		blocks = limit
	}
	sh := 8 - 2*melds - blocks - head
	if sh < -1 {
		sh = -1
	}
	return sh
}

// dedupe 保留首次出现的顺序
func dedupe(ds []Decomposition) []Decomposition {
	seen := make(map[string]struct{}, len(ds))
	out := make([]Decomposition, 0, len(ds))
	for _, d := range ds {
		k := d.key()
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, d)
	}
	return out
}
