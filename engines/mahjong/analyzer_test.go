package mahjong_test

import (
	"testing"

	"gomahjong/engines/mahjong"
)

func newHand(t *testing.T, notation string, last *mahjong.Tile) *mahjong.Hand {
	t.Helper()
	h, err := mahjong.NewHand(parse(t, notation), nil, last)
	if err != nil {
		t.Fatalf("NewHand(%q): %v", notation, err)
	}
	return h
}

func TestAnalyzer_WinningOnOpenWait(t *testing.T) {
	a := mahjong.NewAnalyzer(nil)
	last := tt(mahjong.So5)
	p, err := a.Analyze(newHand(t, "123456m789p345s11z", &last), nil)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if p.Shanten != -1 || !p.Winning || !p.WinningTile.Equal(last) {
		t.Fatalf("progress = %+v", p)
	}
	if len(p.WinningShapes) != 1 {
		t.Fatalf("winning shapes = %+v", p.WinningShapes)
	}
	w := p.WinningShapes[0]
	if w.Shape != mahjong.WaitOpen || w.Component.Kind() != mahjong.KindPartial || w.Component.Type() != mahjong.So3 {
		t.Fatalf("winning shape = %v on %v", w.Shape, w.Component)
	}
	if len(p.Candidates) == 0 || p.Effective != nil {
		t.Fatalf("a 14-tile hand reports discard candidates only")
	}
}

func TestAnalyzer_WinningShapesAcceptTheWinningTile(t *testing.T) {
	a := mahjong.NewAnalyzer(nil)
	last := tt(mahjong.So4)
	win, shapes, err := a.Winning(newHand(t, "111222333m44455s", &last))
	if err != nil {
		t.Fatalf("Winning: %v", err)
	}
	if !win || len(shapes) < 2 {
		t.Fatalf("win=%v shapes=%+v, want the triplet and the run slicing", win, shapes)
	}
	for _, w := range shapes {
		if w.Shape != mahjong.WaitDualPair || w.Component.Type() != mahjong.So4 {
			t.Fatalf("shape %v on %v does not accept 4s", w.Shape, w.Component)
		}
		if w.Decomposition.Shanten() != 0 {
			t.Fatalf("winning shapes come from the tenpai decompositions, got %v", w.Decomposition)
		}
	}
}

func TestAnalyzer_NotWinning(t *testing.T) {
	a := mahjong.NewAnalyzer(nil)

	last := tt(mahjong.So9)
	win, _, err := a.Winning(newHand(t, "123456m789p34s9s11z", &last))
	if err != nil || win {
		t.Fatalf("9s is not a wait: win=%v err=%v", win, err)
	}

	win, _, err = a.Winning(newHand(t, "123456m789p345s11z", nil))
	if err != nil || win {
		t.Fatalf("no newest tile: win=%v err=%v", win, err)
	}
}

func TestAnalyzer_ThirteenTilesReportEffective(t *testing.T) {
	a := mahjong.NewAnalyzer(mahjong.NewSearcher())
	h := newHand(t, "123456m789p234s11z", nil)
	if err := h.Discard(tt(mahjong.So2)); err != nil {
		t.Fatalf("Discard: %v", err)
	}

	p, err := a.Analyze(h, nil)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if p.Effective == nil || p.Candidates != nil || p.Winning {
		t.Fatalf("progress = %+v", p)
	}
	// 自己打出的 2s 也算可见
	if p.Effective.Ukeire != 7 {
		t.Fatalf("ukeire = %d, want 7", p.Effective.Ukeire)
	}

	var visible mahjong.Hand34
	visible[mahjong.So5] = 4
	p, err = a.Analyze(h, &visible)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if p.Effective.Ukeire != 3 {
		t.Fatalf("ukeire with 5s gone = %d, want 3", p.Effective.Ukeire)
	}
}

func TestAnalyzer_OpenHand(t *testing.T) {
	a := mahjong.NewAnalyzer(nil)
	pon, err := meld(t, "777z").Called(3, tt(mahjong.Red))
	if err != nil {
		t.Fatalf("Called: %v", err)
	}
	h, err := mahjong.NewHand(parse(t, "123m456p789s1z"), []mahjong.Component{pon}, nil)
	if err != nil {
		t.Fatalf("NewHand: %v", err)
	}
	p, err := a.Analyze(h, nil)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if p.Shanten != 0 || p.Result.Chiitoi != mahjong.ShantenUnavailable {
		t.Fatalf("progress = %+v", p.Result)
	}
	if len(p.Effective.Tiles) != 1 || p.Effective.Tiles[0].Type != mahjong.East {
		t.Fatalf("effective = %v, want 1z", p.Effective.Types())
	}
}
