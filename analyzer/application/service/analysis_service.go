package service

import (
	"context"
	"errors"

	"gomahjong/analyzer/application/dto"
)

var (
	ErrEmptyBatch    = errors.New("empty batch")
	ErrBatchTooLarge = errors.New("batch too large")
)

// AnalysisService 手牌分析服务接口
type AnalysisService interface {
	Tiles() []dto.TileInfo
	Shanten(ctx context.Context, req *dto.ShantenRequest) (*dto.ShantenResponse, error)
	Analyze(ctx context.Context, req *dto.HandRequest) (*dto.AnalyzeResponse, error)
	Batch(ctx context.Context, req *dto.BatchRequest) (*dto.BatchResponse, error)
}
