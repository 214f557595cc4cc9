package mahjong

import "slices"

// IsAgari 是否和牌。只看牌的组合，不判断役
func IsAgari(h Hand34, fixedMelds int) bool {
	if checkInput(h, fixedMelds) != nil || h.Total()+3*fixedMelds != MaxHandTiles {
		return false
	}
	if isAgariRegular(h, 4-fixedMelds) {
		return true
	}
	return fixedMelds == 0 && (isAgariChiitoi(h) || kokushiShanten(h) == -1)
}

// isAgariRegular 找雀头，剩下的全部组成面子
func isAgariRegular(h Hand34, need int) bool {
	for i := range h {
		if h[i] < 2 {
			continue
		}
		rest := h
		rest[i] -= 2
		if formsMelds(rest, need) {
			return true
		}
	}
	return false
}

func formsMelds(h Hand34, need int) bool {
	i := slices.IndexFunc(h[:], func(c uint8) bool { return c > 0 })
	if i < 0 {
		return need == 0
	}
	if need == 0 {
		return false
	}
	if h[i] >= 3 {
		rest := h
		rest[i] -= 3
		if formsMelds(rest, need-1) {
			return true
		}
	}
	// 最小的牌要么成刻，要么是顺子的起点
	if _, ok := TileType(i).Offset(2); ok && h[i+1] > 0 && h[i+2] > 0 {
		rest := h
		rest[i]--
		rest[i+1]--
		rest[i+2]--
		return formsMelds(rest, need-1)
	}
	return false
}

// isAgariChiitoi 七种不同的对子
func isAgariChiitoi(h Hand34) bool {
	pairs := 0
	for _, c := range h {
		switch c {
		case 0:
		case 2:
			pairs++
		default:
			return false
		}
	}
	return pairs == 7
}
