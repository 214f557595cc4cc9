// Package reference 用 tempai-core 做对照计算，只支持门清手牌
package reference

import (
	"fmt"

	"github.com/dnovikoff/tempai-core/compact"
	"github.com/dnovikoff/tempai-core/hand/calc"
	"github.com/dnovikoff/tempai-core/hand/shanten"
	"github.com/dnovikoff/tempai-core/hand/tempai"
	"github.com/dnovikoff/tempai-core/tile"

	"gomahjong/engines/mahjong"
)

func check(h mahjong.Hand34, fixedMelds int) error {
	if err := h.Validate(); err != nil {
		return err
	}
	if fixedMelds > 0 {
		return fmt.Errorf("%w: reference only covers concealed hands", mahjong.ErrUnsupportedForOpenHand)
	}
	return nil
}

func instances(h mahjong.Hand34) compact.Instances {
	ts := make(tile.Tiles, 0, h.Total())
	for _, t := range h.Tiles() {
		ts = append(ts, tile.Tile(int(t.Type)+1))
	}
	generator := compact.NewTileGenerator()
	out := compact.NewInstances()
	out.Add(generator.Tiles(ts))
	return out
}

// Shanten 三种牌型中最小的向听数
func Shanten(h mahjong.Hand34, fixedMelds int) (int, error) {
	if err := check(h, fixedMelds); err != nil {
		return 0, err
	}
	res := shanten.Calculate(instances(h), calc.Declared(nil))
	return res.Total.Value, nil
}

// Waits 听牌时的待牌，按牌序
func Waits(h mahjong.Hand34, fixedMelds int) ([]mahjong.TileType, error) {
	if err := check(h, fixedMelds); err != nil {
		return nil, err
	}
	res := tempai.Calculate(instances(h), calc.Declared(nil))
	var out []mahjong.TileType
	for _, t := range tempai.GetWaits(res).Tiles() {
		out = append(out, mahjong.TileType(int(t)-1))
	}
	return out, nil
}
