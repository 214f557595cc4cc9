package mahjong

import "fmt"

type WaitShape int

const (
	WaitOpen     WaitShape = iota // 两面
	WaitEdge                      // 边张
	WaitClosed                    // 嵌张
	WaitDualPair                  // 双碰
	WaitSingle                    // 单骑
)

func (w WaitShape) String() string {
	switch w {
	case WaitOpen:
		return "open"
	case WaitEdge:
		return "edge"
	case WaitClosed:
		return "closed"
	case WaitDualPair:
		return "dual-pair"
	case WaitSingle:
		return "single"
	default:
		return fmt.Sprintf("WaitShape(%d)", int(w))
	}
}

// shapeOf 听牌时消化进张的牌组对应的听牌形状
func shapeOf(c Component) WaitShape {
	switch c.kind {
	case KindPair:
		return WaitDualPair
	case KindPartial:
		if c.IsGap() {
			return WaitClosed
		}
		// 12 只能等 3，89 只能等 7
		if r := c.Type().Rank(); r == 1 || r == 8 {
			return WaitEdge
		}
		return WaitOpen
	default:
		return WaitSingle
	}
}

// WaitDetail 某个拆法里由哪个牌组以什么形状接受这张牌
type WaitDetail struct {
	Decomposition int // 在 EffectiveResult.Decompositions 中的下标
	Component     Component
	Shape         WaitShape
}

// waitsFor 拆法 d 听 tt 的所有方式。只保留升级后确实和牌的牌组
func (d Decomposition) waitsFor(index int, tt TileType) []WaitDetail {
	var out []WaitDetail
	switch d.handType {
	case HandRegular:
		melds, partials, pairs := d.Melds(), d.Partials(), d.Pairs()
		seen := make(map[string]struct{})
		for _, c := range d.components {
			if !c.accepts(tt) {
				continue
			}
			m, pa, pr := melds, partials, pairs
			switch c.kind {
			case KindPartial:
				m, pa = m+1, pa-1
			case KindPair:
				m, pr = m+1, pr-1
			case KindFloater:
				pr++
			}
			if regularShanten(m, pa, pr) != -1 {
				continue
			}
			if _, ok := seen[c.key()]; ok {
				continue
			}
			seen[c.key()] = struct{}{}
			out = append(out, WaitDetail{Decomposition: index, Component: c, Shape: shapeOf(c)})
		}

	case HandChiitoi:
		if d.Pairs()+1 < 7 {
			return nil
		}
		for _, c := range d.components {
			if c.kind == KindPair && c.Type() == tt {
				return nil
			}
		}
		for _, c := range d.components {
			if c.kind == KindFloater && c.Type() == tt {
				return []WaitDetail{{Decomposition: index, Component: c, Shape: WaitSingle}}
			}
		}

	case HandKokushi:
		if !tt.IsYaochu() {
			return nil
		}
		for _, c := range d.components {
			if c.kind == KindFloater && c.Type() == tt {
				return []WaitDetail{{Decomposition: index, Component: c, Shape: WaitSingle}}
			}
		}
		// 已有雀头，缺的那一种：等的是一个还不在手里的孤张
		if d.Pairs() == 1 {
			return []WaitDetail{{Decomposition: index, Component: mustComponent(KindFloater, tt), Shape: WaitSingle}}
		}
	}
	return out
}
