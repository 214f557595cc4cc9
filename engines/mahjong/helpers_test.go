package mahjong_test

import (
	"math/rand"
	"slices"
	"testing"

	"gomahjong/engines/mahjong"
)

func tt(t mahjong.TileType) mahjong.Tile {
	return mahjong.Tile{Type: t}
}

func tiles(types ...mahjong.TileType) []mahjong.Tile {
	out := make([]mahjong.Tile, 0, len(types))
	for _, t := range types {
		out = append(out, tt(t))
	}
	return out
}

// parse 测试用的简写：数字在前、花色在后，0 表示赤五，例如 "123m0p11z"
func parse(t testing.TB, s string) []mahjong.Tile {
	t.Helper()
	base := map[byte]int{'m': 0, 'p': 9, 's': 18, 'z': 27}
	var out []mahjong.Tile
	var ranks []byte
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if ch >= '0' && ch <= '9' {
			ranks = append(ranks, ch)
			continue
		}
		b, ok := base[ch]
		if !ok {
			t.Fatalf("bad notation %q", s)
		}
		for _, r := range ranks {
			rank, red := int(r-'0'), r == '0'
			if red {
				rank = 5
			}
			out = append(out, mahjong.Tile{Type: mahjong.TileType(b + rank - 1), Red: red})
		}
		ranks = ranks[:0]
	}
	return out
}

func counts(t testing.TB, s string) mahjong.Hand34 {
	t.Helper()
	h, _, err := mahjong.Hand34FromTiles(parse(t, s))
	if err != nil {
		t.Fatalf("counts(%q): %v", s, err)
	}
	return h
}

func kind(t testing.TB, s string) mahjong.TileType {
	t.Helper()
	ts := parse(t, s)
	if len(ts) != 1 {
		t.Fatalf("kind(%q): want one tile", s)
	}
	return ts[0].Type
}

func kinds(t testing.TB, s string) []mahjong.TileType {
	t.Helper()
	var out []mahjong.TileType
	for _, tile := range parse(t, s) {
		out = append(out, tile.Type)
	}
	slices.Sort(out)
	return out
}

// randomHand 从一副 136 张的牌里随机抽 n 张
func randomHand(rng *rand.Rand, n int) mahjong.Hand34 {
	wall := make([]mahjong.TileType, 0, 136)
	for _, k := range mahjong.AllTileTypes {
		for i := 0; i < 4; i++ {
			wall = append(wall, k)
		}
	}
	rng.Shuffle(len(wall), func(i, j int) { wall[i], wall[j] = wall[j], wall[i] })
	var h mahjong.Hand34
	for _, k := range wall[:n] {
		h[k]++
	}
	return h
}
