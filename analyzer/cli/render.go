package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"gomahjong/analyzer/application/dto"
	"gomahjong/engines/mahjong"
)

func tileName(t dto.TileDTO) string {
	if t.Red {
		return "0" + mahjong.TileType(t.Index).Suit().String()
	}
	return mahjong.TileType(t.Index).String()
}

func tilesText(ts []dto.TileDTO) string {
	parts := make([]string, len(ts))
	for i, t := range ts {
		parts[i] = tileName(t)
	}
	return strings.Join(parts, " ")
}

func shantenColor(sh int) *color.Color {
	switch {
	case sh < 0:
		return color.New(color.FgHiRed, color.Bold)
	case sh == 0:
		return color.New(color.FgHiGreen)
	case sh <= 2:
		return color.New(color.FgHiYellow)
	default:
		return color.New(color.FgHiWhite)
	}
}

// Render 把分析结果写成终端可读的文本
func Render(w io.Writer, req *dto.HandRequest, res *dto.AnalyzeResponse) {
	fmt.Fprintf(w, "手牌: %s\n", tilesText(req.Tiles))
	for _, m := range req.Melds {
		fmt.Fprintf(w, "副露: %s\n", tilesText(m.Tiles))
	}

	sh := res.Shanten
	c := shantenColor(sh.Shanten)
	switch {
	case res.Winning:
		c.Fprintf(w, "和了 %s (%s)\n", tileName(*res.WinningTile), sh.HandType)
	case sh.Shanten < 0:
		c.Fprintf(w, "已完成 (%s)\n", sh.HandType)
	case sh.Shanten == 0:
		c.Fprintf(w, "听牌 (%s)\n", sh.HandType)
	default:
		c.Fprintf(w, "%d 向听 (%s)\n", sh.Shanten, sh.HandType)
	}
	fmt.Fprintf(w, "一般型 %d", sh.Regular)
	if sh.SevenPairs != nil {
		fmt.Fprintf(w, "  七对子 %d", *sh.SevenPairs)
	}
	if sh.ThirteenOrphans != nil {
		fmt.Fprintf(w, "  国士无双 %d", *sh.ThirteenOrphans)
	}
	fmt.Fprintln(w)

	for _, ws := range res.WinningShapes {
		fmt.Fprintf(w, "  %s  %s %s\n", ws.Decomposition.Text, ws.Shape, tilesText(ws.Component.Tiles))
	}

	if e := res.Effective; e != nil {
		renderEffective(w, e)
	}
	for i, cand := range res.Candidates {
		if i >= 5 {
			fmt.Fprintf(w, "  ... 共 %d 种打法\n", len(res.Candidates))
			break
		}
		shantenColor(cand.Shanten).Fprintf(w, "  打 %s", cand.Name)
		fmt.Fprintf(w, " → %d 向听，进张 %d 枚 [%s]\n", cand.Shanten, cand.Ukeire, typesText(cand.Waits))
	}
}

func renderEffective(w io.Writer, e *dto.EffectiveDTO) {
	names := make([]string, len(e.Tiles))
	for i, t := range e.Tiles {
		names[i] = t.Name
	}
	color.New(color.FgHiCyan).Fprintf(w, "有效牌 %d 种 %d 枚", len(e.Tiles), e.Ukeire)
	fmt.Fprintf(w, ": %s\n", strings.Join(names, " "))
	if e.Shanten != 0 {
		return
	}
	for _, t := range e.Tiles {
		for _, wt := range t.Waits {
			fmt.Fprintf(w, "  %s  %-9s %s\n", t.Name, wt.Shape, e.Decompositions[wt.Decomposition].Text)
		}
	}
}

func typesText(ts []int) string {
	parts := make([]string, len(ts))
	for i, t := range ts {
		parts[i] = mahjong.TileType(t).String()
	}
	return strings.Join(parts, " ")
}
