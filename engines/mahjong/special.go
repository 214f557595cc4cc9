package mahjong

import "fmt"

// ShantenUnavailable 牌型不可用（有副露时的七对子、国士无双）
const ShantenUnavailable = 99

// ShantenChiitoi 七对子向听数，有副露时不可用
func ShantenChiitoi(h Hand34, fixedMelds int) (int, error) {
	if fixedMelds > 0 {
		return ShantenUnavailable, fmt.Errorf("%w: seven pairs with %d melds", ErrUnsupportedForOpenHand, fixedMelds)
	}
	return chiitoiShanten(h), nil
}

// ShantenKokushi 国士无双向听数，有副露时不可用
func ShantenKokushi(h Hand34, fixedMelds int) (int, error) {
	if fixedMelds > 0 {
		return ShantenUnavailable, fmt.Errorf("%w: thirteen orphans with %d melds", ErrUnsupportedForOpenHand, fixedMelds)
	}
	return kokushiShanten(h), nil
}

// chiitoiShanten 同种牌最多算一个对子；不足 7 种时每缺一种多一步。
// 3 张以上多出的牌在换牌时顺手打掉，不另算步数
func chiitoiShanten(h Hand34) int {
	pairs := h.KindsAtLeast(2)
	kinds := h.KindsAtLeast(1)
	if kinds < 7 {
		return (6 - pairs) + (7 - kinds)
	}
	return 6 - pairs
}

func kokushiShanten(h Hand34) int {
	kinds := 0
	pair := false
	for _, tt := range YaochuTypes {
		if h[tt] > 0 {
			kinds++
			if h[tt] >= 2 {
				pair = true
			}
		}
	}
	if kinds == 13 {
		if pair {
			return -1
		}
		return 0
	}
	sh := 13 - kinds
	if pair {
		sh--
	}
	return sh
}

// chiitoiDecomposition 每种牌最多一个对子，其余都是孤张
func chiitoiDecomposition(h Hand34) Decomposition {
	var comps []Component
	for i, c := range h {
		tt := TileType(i)
		n := int(c)
		if n >= 2 {
			comps = append(comps, mustComponent(KindPair, tt, tt))
			n -= 2
		}
		for ; n > 0; n-- {
			comps = append(comps, mustComponent(KindFloater, tt))
		}
	}
	return Decomposition{handType: HandChiitoi, components: comps, shanten: chiitoiShanten(h)}
}

// kokushiDecomposition 幺九牌各一张孤张，第一个重复的幺九牌作雀头，其余都是孤张
func kokushiDecomposition(h Hand34) Decomposition {
	var comps []Component
	pair := false
	for i, c := range h {
		tt := TileType(i)
		n := int(c)
		if tt.IsYaochu() && n >= 2 && !pair {
			comps = append(comps, mustComponent(KindPair, tt, tt))
			pair = true
			n -= 2
		}
		for ; n > 0; n-- {
			comps = append(comps, mustComponent(KindFloater, tt))
		}
	}
	return Decomposition{handType: HandKokushi, components: comps, shanten: kokushiShanten(h)}
}
