package mahjong_test

import (
	"math/rand"
	"testing"

	"gomahjong/engines/mahjong"
)

func benchHands(n int) []mahjong.Hand34 {
	rng := rand.New(rand.NewSource(42))
	out := make([]mahjong.Hand34, n)
	for i := range out {
		out[i] = randomHand(rng, 13)
	}
	return out
}

func BenchmarkShanten_Cached(b *testing.B) {
	s := mahjong.NewSearcher()
	hands := benchHands(64)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = s.Shanten(hands[i%len(hands)], 0)
	}
}

func BenchmarkShanten_NoCache(b *testing.B) {
	s := mahjong.NewSearcher(mahjong.WithCache(nil))
	hands := benchHands(64)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = s.Shanten(hands[i%len(hands)], 0)
	}
}

func BenchmarkEffectiveTiles_NoCache(b *testing.B) {
	s := mahjong.NewSearcher(mahjong.WithCache(nil))
	hands := benchHands(64)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = s.EffectiveTiles(hands[i%len(hands)], 0, nil)
	}
}
