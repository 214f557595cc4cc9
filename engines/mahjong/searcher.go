package mahjong

import (
	"slices"
	"sync"
)

// ResultCache 搜索结果缓存。存进去的结果不会再被修改
type ResultCache interface {
	Get(key string) (any, bool)
	Set(key string, value any) bool
}

// mapCache 默认的进程内缓存
type mapCache struct {
	mu sync.RWMutex
	m  map[string]any
}

func newMapCache() *mapCache {
	return &mapCache{m: make(map[string]any, 4096)}
}

func (c *mapCache) Get(key string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.m[key]
	return v, ok
}

func (c *mapCache) Set(key string, value any) bool {
	c.mu.Lock()
	c.m[key] = value
	c.mu.Unlock()
	return true
}

// Searcher 向听数、有效牌搜索器，可并发使用
type Searcher struct {
	cache ResultCache
}

type SearcherOption func(*Searcher)

// WithCache 替换默认缓存，传 nil 则关闭缓存
func WithCache(c ResultCache) SearcherOption {
	return func(s *Searcher) {
		if c == nil {
			c = noCache{}
		}
		s.cache = c
	}
}

type noCache struct{}

func (noCache) Get(string) (any, bool) { return nil, false }
func (noCache) Set(string, any) bool   { return false }

func NewSearcher(opts ...SearcherOption) *Searcher {
	s := &Searcher{cache: newMapCache()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ShantenResult 三种牌型的向听数以及所有并列最优的拆法
type ShantenResult struct {
	Shanten        int
	HandType       HandType // 并列时按 一般型、七对子、国士 的顺序取
	Regular        int
	Chiitoi        int
	Kokushi        int
	Decompositions []Decomposition
}

func (r ShantenResult) value(t HandType) int {
	switch t {
	case HandChiitoi:
		return r.Chiitoi
	case HandKokushi:
		return r.Kokushi
	default:
		return r.Regular
	}
}

// ShantenOf 单个牌型的向听数
func (r ShantenResult) ShantenOf(t HandType) (int, error) {
	v := r.value(t)
	if v == ShantenUnavailable {
		return v, ErrUnsupportedForOpenHand
	}
	return v, nil
}

// TiedTypes 达到最小向听数的所有牌型
func (r ShantenResult) TiedTypes() []HandType {
	var out []HandType
	for _, t := range handTypes {
		if r.value(t) == r.Shanten {
			out = append(out, t)
		}
	}
	return out
}

func (r ShantenResult) DecompositionsOf(t HandType) []Decomposition {
	var out []Decomposition
	for _, d := range r.Decompositions {
		if d.handType == t {
			out = append(out, d)
		}
	}
	return out
}

// Shanten 向听数，带副露。副露数大于 0 时七对子、国士无双不参与
func (s *Searcher) Shanten(h Hand34, fixedMelds int) (ShantenResult, error) {
	if err := checkInput(h, fixedMelds); err != nil {
		return ShantenResult{}, err
	}
	r := s.shanten(h, fixedMelds)
	r.Decompositions = slices.Clone(r.Decompositions)
	return r, nil
}

// ShantenRegular 一般型向听数和所有并列的拆法
func (s *Searcher) ShantenRegular(h Hand34, fixedMelds int) (int, []Decomposition, error) {
	if err := checkInput(h, fixedMelds); err != nil {
		return 0, nil, err
	}
	r := s.regular(h, fixedMelds)
	return r.shanten, slices.Clone(r.decompositions), nil
}

func (s *Searcher) shanten(h Hand34, fixedMelds int) ShantenResult {
	key := "s" + h.key(fixedMelds)
	if v, ok := s.cache.Get(key); ok {
		if r, ok := v.(ShantenResult); ok {
			return r
		}
	}

	reg := s.regular(h, fixedMelds)
	r := ShantenResult{
		Shanten:  reg.shanten,
		HandType: HandRegular,
		Regular:  reg.shanten,
		Chiitoi:  ShantenUnavailable,
		Kokushi:  ShantenUnavailable,
	}
	if fixedMelds == 0 {
		r.Chiitoi = chiitoiShanten(h)
		r.Kokushi = kokushiShanten(h)
	}
	for _, t := range handTypes {
		if v := r.value(t); v < r.Shanten {
			r.Shanten, r.HandType = v, t
		}
	}

	for _, t := range r.TiedTypes() {
		switch t {
		case HandRegular:
			r.Decompositions = append(r.Decompositions, reg.decompositions...)
		case HandChiitoi:
			r.Decompositions = append(r.Decompositions, chiitoiDecomposition(h))
		case HandKokushi:
			r.Decompositions = append(r.Decompositions, kokushiDecomposition(h))
		}
	}

	s.cache.Set(key, r)
	return r
}

// shantenOf 只算一个牌型，有效牌判定用
func (s *Searcher) shantenOf(h Hand34, fixedMelds int, t HandType) int {
	switch t {
	case HandChiitoi:
		if fixedMelds > 0 {
			return ShantenUnavailable
		}
		return chiitoiShanten(h)
	case HandKokushi:
		if fixedMelds > 0 {
			return ShantenUnavailable
		}
		return kokushiShanten(h)
	default:
		return s.regular(h, fixedMelds).shanten
	}
}

type regularResult struct {
	shanten        int
	decompositions []Decomposition
}

func (s *Searcher) regular(h Hand34, fixedMelds int) regularResult {
	key := "r" + h.key(fixedMelds)
	if v, ok := s.cache.Get(key); ok {
		if r, ok := v.(regularResult); ok {
			return r
		}
	}
	r := searchRegular(h, fixedMelds)
	s.cache.Set(key, r)
	return r
}

// searchRegular 一般型拆牌搜索。在副本上回溯，不会改动调用方的计数
func searchRegular(h Hand34, fixedMelds int) regularResult {
	st := &regularSearch{h: h, fixed: fixedMelds}
	best, leaves := st.walk(0, nil)

	ds := make([]Decomposition, 0, len(leaves))
	for _, comps := range leaves {
		ds = append(ds, Decomposition{
			handType:   HandRegular,
			components: comps,
			fixed:      fixedMelds,
			shanten:    best,
		})
	}
	return regularResult{shanten: best, decompositions: dedupe(ds)}
}

type regularSearch struct {
	h      Hand34
	fixed  int
	paired [TileKinds]bool
}

// walk 逐个位置回溯：刻子、顺子（都留在当前位置继续取）、跳过。
// 返回本分支的最小向听数和所有达到它的拆法，每次调用都是新的切片
func (st *regularSearch) walk(pos int, melds []Component) (int, [][]Component) {
	for pos < TileKinds && st.h[pos] == 0 {
		pos++
	}
	if pos == TileKinds {
		return st.settle(melds)
	}

	best := ShantenUnavailable
	var leaves [][]Component
	join := func(sh int, found [][]Component) {
		switch {
		case sh < best:
			best, leaves = sh, found
		case sh == best:
			leaves = append(slices.Clip(leaves), found...)
		}
	}

	tt := TileType(pos)
	room := st.fixed+len(melds) < 4

	if room && st.h[pos] >= 3 {
		st.h[pos] -= 3
		join(st.walk(pos, append(slices.Clip(melds), mustComponent(KindTriplet, tt, tt, tt))))
		st.h[pos] += 3
	}

	if last, ok := tt.Offset(2); room && ok && st.h[pos+1] > 0 && st.h[pos+2] > 0 {
		st.h[pos]--
		st.h[pos+1]--
		st.h[pos+2]--
		join(st.walk(pos, append(slices.Clip(melds), mustComponent(KindRun, tt, tt+1, last))))
		st.h[pos]++
		st.h[pos+1]++
		st.h[pos+2]++
	}

	join(st.walk(pos+1, melds))
	return best, leaves
}

// settle 面子取完后整理剩余的牌：先定雀头（也可以不定），再把剩下的牌尽量组成对子和搭子
func (st *regularSearch) settle(melds []Component) (int, [][]Component) {
	best := ShantenUnavailable
	var leaves [][]Component
	join := func(sh int, found [][]Component) {
		switch {
		case sh < best:
			best, leaves = sh, found
		case sh == best:
			leaves = append(slices.Clip(leaves), found...)
		}
	}

	rest := st.h
	join(st.blocks(&rest, 0, melds))
	for i := range rest {
		if rest[i] < 2 {
			continue
		}
		tt := TileType(i)
		rest[i] -= 2
		st.paired[i] = true
		join(st.blocks(&rest, 0, append(slices.Clip(melds), mustComponent(KindPair, tt, tt))))
		st.paired[i] = false
		rest[i] += 2
	}
	return best, leaves
}

// blocks 最小的剩余牌能组块就必须组块：对子、两面/边张、嵌张依次尝试，都组不成才是孤张。
// 同种牌最多一个对子，两个同种对子不能同时算作有效块
func (st *regularSearch) blocks(h *Hand34, pos int, comps []Component) (int, [][]Component) {
	for pos < TileKinds && h[pos] == 0 {
		pos++
	}
	if pos == TileKinds {
		return leafShanten(st.fixed, comps), [][]Component{comps}
	}

	best := ShantenUnavailable
	var leaves [][]Component
	join := func(sh int, found [][]Component) {
		switch {
		case sh < best:
			best, leaves = sh, found
		case sh == best:
			leaves = append(slices.Clip(leaves), found...)
		}
	}

	tt := TileType(pos)
	formed := false
	if h[pos] >= 2 && !st.paired[pos] {
		formed = true
		h[pos] -= 2
		st.paired[pos] = true
		join(st.blocks(h, pos, append(slices.Clip(comps), mustComponent(KindPair, tt, tt))))
		st.paired[pos] = false
		h[pos] += 2
	}
	for _, gap := range [2]int{1, 2} {
		next, ok := tt.Offset(gap)
		if !ok || h[next] == 0 {
			continue
		}
		formed = true
		h[pos]--
		h[next]--
		join(st.blocks(h, pos, append(slices.Clip(comps), mustComponent(KindPartial, tt, next))))
		h[pos]++
		h[next]++
	}
	if !formed {
		h[pos]--
		join(st.blocks(h, pos, append(slices.Clip(comps), mustComponent(KindFloater, tt))))
		h[pos]++
	}
	return best, leaves
}

func leafShanten(fixedMelds int, comps []Component) int {
	melds, partials, pairs := fixedMelds, 0, 0
	for _, c := range comps {
		switch {
		case c.kind.IsMeld():
			melds++
		case c.kind == KindPartial:
			partials++
		case c.kind == KindPair:
			pairs++
		}
	}
	return regularShanten(melds, partials, pairs)
}
