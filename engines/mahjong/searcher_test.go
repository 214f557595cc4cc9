package mahjong_test

import (
	"errors"
	"math/rand"
	"reflect"
	"testing"

	"gomahjong/engines/mahjong"
)

func hasComponent(d mahjong.Decomposition, kind mahjong.ComponentKind, first mahjong.TileType) bool {
	for _, c := range d.Components() {
		if c.Kind() == kind && c.Type() == first {
			return true
		}
	}
	return false
}

func TestSearcher_TripletsAndDualPairTenpai(t *testing.T) {
	s := mahjong.NewSearcher()
	res, err := s.Shanten(counts(t, "111222333m4455s"), 0)
	if err != nil {
		t.Fatalf("Shanten: %v", err)
	}
	if res.Shanten != 0 || res.Regular != 0 || res.HandType != mahjong.HandRegular {
		t.Fatalf("got shanten=%d regular=%d type=%v", res.Shanten, res.Regular, res.HandType)
	}
	if res.Chiitoi != 3 || res.Kokushi != 11 {
		t.Fatalf("chiitoi=%d kokushi=%d, want 3 and 11", res.Chiitoi, res.Kokushi)
	}

	var triplets, runs bool
	for _, d := range res.Decompositions {
		if d.Melds() != 3 || d.Pairs() != 2 {
			t.Fatalf("unexpected tied decomposition %v", d)
		}
		triplets = triplets || hasComponent(d, mahjong.KindTriplet, mahjong.Man1)
		runs = runs || hasComponent(d, mahjong.KindRun, mahjong.Man1)
	}
	if !triplets || !runs {
		t.Fatalf("both the triplet and the run slicing of 111222333m must be kept: %v", res.Decompositions)
	}
}

func TestSearcher_NineGatesKeepsEveryTiedSlicing(t *testing.T) {
	s := mahjong.NewSearcher()
	res, err := s.Shanten(counts(t, "1112345678999m"), 0)
	if err != nil {
		t.Fatalf("Shanten: %v", err)
	}
	if res.Shanten != 0 {
		t.Fatalf("shanten = %d, want 0", res.Shanten)
	}
	if len(res.Decompositions) < 2 {
		t.Fatalf("expected several tied decompositions, got %v", res.Decompositions)
	}
	for _, d := range res.Decompositions {
		if d.Shanten() != 0 || d.HandType() != mahjong.HandRegular {
			t.Fatalf("decomposition %v not tied at 0", d)
		}
	}
}

func TestSearcher_SevenPairsTenpai(t *testing.T) {
	s := mahjong.NewSearcher()
	res, err := s.Shanten(counts(t, "1122m3344p5566s1z"), 0)
	if err != nil {
		t.Fatalf("Shanten: %v", err)
	}
	if res.Shanten != 0 || res.HandType != mahjong.HandChiitoi {
		t.Fatalf("shanten=%d type=%v, want 0 seven-pairs", res.Shanten, res.HandType)
	}
	if res.Regular != 3 || res.Kokushi != 10 {
		t.Fatalf("regular=%d kokushi=%d, want 3 and 10", res.Regular, res.Kokushi)
	}
	if got := res.TiedTypes(); len(got) != 1 || got[0] != mahjong.HandChiitoi {
		t.Fatalf("tied types = %v", got)
	}
	if len(res.DecompositionsOf(mahjong.HandRegular)) != 0 {
		t.Fatalf("regular decompositions are not tied and must not be reported")
	}
}

func TestSearcher_ThirteenOrphansTenpai(t *testing.T) {
	s := mahjong.NewSearcher()
	h, _, _ := mahjong.Hand34FromTiles(tiles(mahjong.YaochuTypes[:]...))
	res, err := s.Shanten(h, 0)
	if err != nil {
		t.Fatalf("Shanten: %v", err)
	}
	if res.Shanten != 0 || res.HandType != mahjong.HandKokushi {
		t.Fatalf("shanten=%d type=%v, want 0 thirteen-orphans", res.Shanten, res.HandType)
	}
	if res.Chiitoi != 6 || res.Regular != 8 {
		t.Fatalf("chiitoi=%d regular=%d", res.Chiitoi, res.Regular)
	}
}

func TestSearcher_HeadPairIsNotAlsoABlock(t *testing.T) {
	s := mahjong.NewSearcher()
	sh, _, err := s.ShantenRegular(counts(t, "123456789m11p37s"), 0)
	if err != nil {
		t.Fatalf("ShantenRegular: %v", err)
	}
	if sh != 1 {
		t.Fatalf("three melds, a pair and two floaters: shanten = %d, want 1", sh)
	}
}

func TestSearcher_HeadAndFourPartials(t *testing.T) {
	s := mahjong.NewSearcher()
	sh, _, err := s.ShantenRegular(counts(t, "2335m2335p2335s1z"), 0)
	if err != nil {
		t.Fatalf("ShantenRegular: %v", err)
	}
	if sh != 3 {
		t.Fatalf("33m head plus four partials: shanten = %d, want 3", sh)
	}
}

func TestSearcher_HeadChoiceMixesWithPartials(t *testing.T) {
	s := mahjong.NewSearcher()
	// 22m 做雀头，23s 35s 做搭子
	sh, ds, err := s.ShantenRegular(counts(t, "123p456p122m2335s"), 0)
	if err != nil {
		t.Fatalf("ShantenRegular: %v", err)
	}
	if sh != 1 {
		t.Fatalf("shanten = %d, want 1", sh)
	}
	found := false
	for _, d := range ds {
		found = found || (hasComponent(d, mahjong.KindPair, mahjong.Man2) && hasComponent(d, mahjong.KindPartial, mahjong.So2))
	}
	if !found {
		t.Fatalf("missing the 22m head decomposition: %v", ds)
	}
}

func TestSearcher_GapPartialsWhenAdjacentBlocks(t *testing.T) {
	s := mahjong.NewSearcher()
	// 2457：24 57 两个嵌张比 45 一个两面多一块
	sh, _, err := s.ShantenRegular(counts(t, "2457m2457p2457s1z"), 0)
	if err != nil {
		t.Fatalf("ShantenRegular: %v", err)
	}
	if sh != 4 {
		t.Fatalf("shanten = %d, want 4", sh)
	}
}

func TestSearcher_CompleteHands(t *testing.T) {
	s := mahjong.NewSearcher()
	cases := []struct {
		notation string
		fixed    int
		typ      mahjong.HandType
	}{
		{"123m456p789s11122z", 0, mahjong.HandRegular},
		{"1133m557799p11s22z", 0, mahjong.HandChiitoi},
		{"19m19p19s12345677z", 0, mahjong.HandKokushi},
		{"234m55z", 3, mahjong.HandRegular},
	}
	for _, c := range cases {
		h := counts(t, c.notation)
		res, err := s.Shanten(h, c.fixed)
		if err != nil {
			t.Fatalf("%s: %v", c.notation, err)
		}
		if res.Shanten != -1 || res.HandType != c.typ {
			t.Fatalf("%s: shanten=%d type=%v", c.notation, res.Shanten, res.HandType)
		}
		if !mahjong.IsAgari(h, c.fixed) {
			t.Fatalf("%s: IsAgari = false", c.notation)
		}
	}
}

func TestSearcher_OpenHandDisablesSpecialTypes(t *testing.T) {
	s := mahjong.NewSearcher()
	h := counts(t, "123m456p789s1z")
	res, err := s.Shanten(h, 1)
	if err != nil {
		t.Fatalf("Shanten: %v", err)
	}
	if res.Shanten != 0 || res.Chiitoi != mahjong.ShantenUnavailable || res.Kokushi != mahjong.ShantenUnavailable {
		t.Fatalf("got %+v", res)
	}
	if _, err := res.ShantenOf(mahjong.HandChiitoi); !errors.Is(err, mahjong.ErrUnsupportedForOpenHand) {
		t.Fatalf("ShantenOf(chiitoi) expected ErrUnsupportedForOpenHand, got %v", err)
	}
	if _, err := mahjong.ShantenChiitoi(h, 1); !errors.Is(err, mahjong.ErrUnsupportedForOpenHand) {
		t.Fatalf("ShantenChiitoi expected ErrUnsupportedForOpenHand, got %v", err)
	}
	if _, err := mahjong.ShantenKokushi(h, 2); !errors.Is(err, mahjong.ErrUnsupportedForOpenHand) {
		t.Fatalf("ShantenKokushi expected ErrUnsupportedForOpenHand, got %v", err)
	}
	for _, d := range res.Decompositions {
		if d.FixedMelds() != 1 || d.Melds() != 4 {
			t.Fatalf("decomposition %v must count the committed meld", d)
		}
	}
}

func TestSearcher_RejectsBadInput(t *testing.T) {
	s := mahjong.NewSearcher()

	var five mahjong.Hand34
	five[mahjong.Man1] = 5
	if _, err := s.Shanten(five, 0); !errors.Is(err, mahjong.ErrIllegalCount) {
		t.Fatalf("five copies expected ErrIllegalCount, got %v", err)
	}
	if _, err := s.Shanten(counts(t, "123m"), 5); !errors.Is(err, mahjong.ErrIllegalCount) {
		t.Fatalf("five melds expected ErrIllegalCount, got %v", err)
	}
	if _, err := s.Shanten(counts(t, "123m456p789s11122z"), 1); !errors.Is(err, mahjong.ErrIllegalCount) {
		t.Fatalf("17 tiles expected ErrIllegalCount, got %v", err)
	}
}

func TestSearcher_EmptyHandIsHighShanten(t *testing.T) {
	s := mahjong.NewSearcher()
	res, err := s.Shanten(mahjong.Hand34{}, 0)
	if err != nil {
		t.Fatalf("Shanten: %v", err)
	}
	if res.Regular != 8 {
		t.Fatalf("empty hand regular shanten = %d, want 8", res.Regular)
	}
}

func TestSearcher_Ranges(t *testing.T) {
	s := mahjong.NewSearcher()
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 500; i++ {
		h := randomHand(rng, 13)
		res, err := s.Shanten(h, 0)
		if err != nil {
			t.Fatalf("%v: %v", h, err)
		}
		if res.Regular < -1 || res.Regular > 8 {
			t.Fatalf("%v: regular %d out of range", h, res.Regular)
		}
		if res.Chiitoi < -1 || res.Chiitoi > 6 {
			t.Fatalf("%v: chiitoi %d out of range", h, res.Chiitoi)
		}
		if res.Kokushi < -1 || res.Kokushi > 13 {
			t.Fatalf("%v: kokushi %d out of range", h, res.Kokushi)
		}
		if want := min(res.Regular, res.Chiitoi, res.Kokushi); res.Shanten != want {
			t.Fatalf("%v: shanten %d, want min %d", h, res.Shanten, want)
		}
		for _, d := range res.Decompositions {
			covered := 0
			for _, c := range d.Components() {
				covered += c.Len()
			}
			if covered != h.Total() {
				t.Fatalf("%v: decomposition %v covers %d tiles", h, d, covered)
			}
			if d.Melds() > 4 {
				t.Fatalf("%v: decomposition %v has %d melds", h, d, d.Melds())
			}
			if d.Shanten() != res.Shanten {
				t.Fatalf("%v: decomposition %v not tied", h, d)
			}
		}
	}
}

func TestSearcher_CompleteIffAgari(t *testing.T) {
	s := mahjong.NewSearcher()
	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 300; i++ {
		h := randomHand(rng, 14)
		res, err := s.Shanten(h, 0)
		if err != nil {
			t.Fatalf("%v: %v", h, err)
		}
		if (res.Shanten == -1) != mahjong.IsAgari(h, 0) {
			t.Fatalf("%v: shanten %d but IsAgari %v", h, res.Shanten, mahjong.IsAgari(h, 0))
		}
	}
}

func TestSearcher_Idempotent(t *testing.T) {
	s := mahjong.NewSearcher()
	h := counts(t, "1112345678999m")
	snapshot := h

	first, err := s.Shanten(h, 0)
	if err != nil {
		t.Fatalf("Shanten: %v", err)
	}
	second, _ := s.Shanten(h, 0)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("repeated calls differ")
	}
	if h != snapshot {
		t.Fatalf("search mutated the caller's counts")
	}

	uncached := mahjong.NewSearcher(mahjong.WithCache(nil))
	third, _ := uncached.Shanten(h, 0)
	if !reflect.DeepEqual(first, third) {
		t.Fatalf("cached and uncached results differ")
	}
}
