package dto

import "gomahjong/engines/mahjong"

type TileInfo struct {
	Index  int    `json:"index"`
	Name   string `json:"name"`
	Suit   string `json:"suit"`
	Rank   int    `json:"rank"`
	Yaochu bool   `json:"yaochu"`
}

type ComponentDTO struct {
	Kind  string    `json:"kind"`
	Tiles []TileDTO `json:"tiles"`
	Open  bool      `json:"open,omitempty"`
}

type DecompositionDTO struct {
	HandType   string         `json:"handType"`
	Shanten    int            `json:"shanten"`
	FixedMelds int            `json:"fixedMelds,omitempty"`
	Components []ComponentDTO `json:"components"`
	Text       string         `json:"text"`
}

type ShantenResponse struct {
	Shanten         int                `json:"shanten"`
	HandType        string             `json:"handType"`
	TiedTypes       []string           `json:"tiedTypes"`
	Regular         int                `json:"regular"`
	SevenPairs      *int               `json:"sevenPairs,omitempty"` // 有副露时为空
	ThirteenOrphans *int               `json:"thirteenOrphans,omitempty"`
	Decompositions  []DecompositionDTO `json:"decompositions"`
}

type WaitDTO struct {
	Decomposition int          `json:"decomposition"` // EffectiveDTO.Decompositions 的下标
	Component     ComponentDTO `json:"component"`
	Shape         string       `json:"shape"`
}

type EffectiveTileDTO struct {
	Index     int       `json:"index"`
	Name      string    `json:"name"`
	HandTypes []string  `json:"handTypes"`
	Remaining int       `json:"remaining"`
	Waits     []WaitDTO `json:"waits,omitempty"`
}

type EffectiveDTO struct {
	Shanten        int                `json:"shanten"`
	Decompositions []DecompositionDTO `json:"decompositions"`
	Tiles          []EffectiveTileDTO `json:"tiles"`
	Ukeire         int                `json:"ukeire"`
}

type CandidateDTO struct {
	Discard int       `json:"discard"`
	Name    string    `json:"name"`
	Options []TileDTO `json:"options"`
	Shanten int       `json:"shanten"`
	Tenpai  bool      `json:"tenpai"`
	Waits   []int     `json:"waits"`
	Ukeire  int       `json:"ukeire"`
}

type WinningShapeDTO struct {
	Decomposition DecompositionDTO `json:"decomposition"`
	Component     ComponentDTO     `json:"component"`
	Shape         string           `json:"shape"`
}

type AnalyzeResponse struct {
	Shanten       ShantenResponse   `json:"shanten"`
	Effective     *EffectiveDTO     `json:"effective,omitempty"`
	Candidates    []CandidateDTO    `json:"candidates,omitempty"`
	Winning       bool              `json:"winning"`
	WinningTile   *TileDTO          `json:"winningTile,omitempty"`
	WinningShapes []WinningShapeDTO `json:"winningShapes,omitempty"`
}

type BatchItem struct {
	Index  int              `json:"index"`
	Result *AnalyzeResponse `json:"result,omitempty"`
	Error  string           `json:"error,omitempty"`
}

type BatchResponse struct {
	Results []BatchItem `json:"results"`
	Failed  int         `json:"failed"`
}

func AllTiles() []TileInfo {
	out := make([]TileInfo, 0, mahjong.TileKinds)
	for _, k := range mahjong.AllTileTypes {
		out = append(out, TileInfo{
			Index:  int(k),
			Name:   k.String(),
			Suit:   k.Suit().String(),
			Rank:   k.Rank(),
			Yaochu: k.IsYaochu(),
		})
	}
	return out
}

func FromComponent(c mahjong.Component) ComponentDTO {
	return ComponentDTO{Kind: c.Kind().String(), Tiles: FromTiles(c.Tiles()), Open: c.IsOpen()}
}

func FromDecomposition(d mahjong.Decomposition) DecompositionDTO {
	comps := d.Components()
	out := DecompositionDTO{
		HandType:   d.HandType().String(),
		Shanten:    d.Shanten(),
		FixedMelds: d.FixedMelds(),
		Components: make([]ComponentDTO, len(comps)),
		Text:       d.String(),
	}
	for i, c := range comps {
		out.Components[i] = FromComponent(c)
	}
	return out
}

func fromDecompositions(ds []mahjong.Decomposition) []DecompositionDTO {
	out := make([]DecompositionDTO, len(ds))
	for i, d := range ds {
		out[i] = FromDecomposition(d)
	}
	return out
}

func handTypeNames(ts []mahjong.HandType) []string {
	out := make([]string, len(ts))
	for i, t := range ts {
		out[i] = t.String()
	}
	return out
}

func available(v int) *int {
	if v == mahjong.ShantenUnavailable {
		return nil
	}
	return &v
}

func FromShanten(r mahjong.ShantenResult) ShantenResponse {
	return ShantenResponse{
		Shanten:         r.Shanten,
		HandType:        r.HandType.String(),
		TiedTypes:       handTypeNames(r.TiedTypes()),
		Regular:         r.Regular,
		SevenPairs:      available(r.Chiitoi),
		ThirteenOrphans: available(r.Kokushi),
		Decompositions:  fromDecompositions(r.Decompositions),
	}
}

func FromEffective(r mahjong.EffectiveResult) *EffectiveDTO {
	out := &EffectiveDTO{
		Shanten:        r.Shanten,
		Decompositions: fromDecompositions(r.Decompositions),
		Tiles:          make([]EffectiveTileDTO, 0, len(r.Tiles)),
		Ukeire:         r.Ukeire,
	}
	for _, et := range r.Tiles {
		item := EffectiveTileDTO{
			Index:     int(et.Type),
			Name:      et.Type.String(),
			HandTypes: handTypeNames(et.HandTypes),
			Remaining: et.Remaining,
		}
		for _, w := range et.Waits {
			item.Waits = append(item.Waits, WaitDTO{
				Decomposition: w.Decomposition,
				Component:     FromComponent(w.Component),
				Shape:         w.Shape.String(),
			})
		}
		out.Tiles = append(out.Tiles, item)
	}
	return out
}

func FromCandidates(cs []mahjong.Candidate) []CandidateDTO {
	out := make([]CandidateDTO, len(cs))
	for i, c := range cs {
		waits := make([]int, len(c.Waits))
		for j, w := range c.Waits {
			waits[j] = int(w)
		}
		out[i] = CandidateDTO{
			Discard: int(c.DiscardType),
			Name:    c.DiscardType.String(),
			Options: FromTiles(c.DiscardOptions),
			Shanten: c.Shanten,
			Tenpai:  c.IsTenpai(),
			Waits:   waits,
			Ukeire:  c.Ukeire,
		}
	}
	return out
}

func FromProgress(p *mahjong.Progress) *AnalyzeResponse {
	out := &AnalyzeResponse{
		Shanten:    FromShanten(p.Result),
		Candidates: FromCandidates(p.Candidates),
		Winning:    p.Winning,
	}
	if p.Effective != nil {
		out.Effective = FromEffective(*p.Effective)
	}
	if len(out.Candidates) == 0 {
		out.Candidates = nil
	}
	if p.Winning {
		t := FromTile(p.WinningTile)
		out.WinningTile = &t
		for _, w := range p.WinningShapes {
			out.WinningShapes = append(out.WinningShapes, WinningShapeDTO{
				Decomposition: FromDecomposition(w.Decomposition),
				Component:     FromComponent(w.Component),
				Shape:         w.Shape.String(),
			})
		}
	}
	return out
}
