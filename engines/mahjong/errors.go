package mahjong

import "errors"

// 输入校验错误
var (
	ErrIllegalTile      = errors.New("illegal tile")
	ErrIllegalComponent = errors.New("illegal component")
	ErrIllegalCount     = errors.New("illegal tile count")
)

// 手牌状态错误
var (
	ErrConsistency            = errors.New("inconsistent hand")
	ErrUnsupportedForOpenHand = errors.New("unsupported for open hand")
)
