package impl

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"gomahjong/analyzer/application/dto"
	"gomahjong/analyzer/application/service"
	"gomahjong/common/database"
	"gomahjong/common/log"
	"gomahjong/engines/mahjong"
)

type Options struct {
	Workers    int // 批量分析的并发数
	BatchLimit int // 单次批量的最大手牌数
}

type AnalysisServiceImpl struct {
	analyzer  *mahjong.Analyzer
	snapshots *database.SnapshotStore // 可以为 nil
	opts      Options
}

func NewAnalysisService(analyzer *mahjong.Analyzer, snapshots *database.SnapshotStore, opts Options) service.AnalysisService {
	if opts.Workers <= 0 {
		opts.Workers = 1
	}
	if opts.BatchLimit <= 0 {
		opts.BatchLimit = 256
	}
	return &AnalysisServiceImpl{analyzer: analyzer, snapshots: snapshots, opts: opts}
}

func (s *AnalysisServiceImpl) Tiles() []dto.TileInfo {
	return dto.AllTiles()
}

func (s *AnalysisServiceImpl) Shanten(ctx context.Context, req *dto.ShantenRequest) (*dto.ShantenResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	h, err := req.Counts()
	if err != nil {
		return nil, err
	}
	res, err := s.analyzer.Searcher().Shanten(h, req.FixedMelds)
	if err != nil {
		return nil, err
	}
	out := dto.FromShanten(res)
	return &out, nil
}

// Analyze 先查快照，未命中时计算并回写。快照读写失败只记日志
func (s *AnalysisServiceImpl) Analyze(ctx context.Context, req *dto.HandRequest) (*dto.AnalyzeResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	h, err := req.ToHand()
	if err != nil {
		return nil, err
	}
	visible, err := req.VisibleCounts()
	if err != nil {
		return nil, err
	}

	var key string
	if s.snapshots != nil {
		key = database.SnapshotKey(req.Key())
		var cached dto.AnalyzeResponse
		ok, err := s.snapshots.Load(ctx, key, &cached)
		if err != nil {
			log.Warn("读取分析快照失败: %v", err)
		} else if ok {
			log.Debug("分析快照命中: %s", key)
			return &cached, nil
		}
	}

	t1 := time.Now()
	p, err := s.analyzer.Analyze(h, visible)
	if err != nil {
		return nil, err
	}
	out := dto.FromProgress(p)
	log.Debug("分析完成: %d 张，向听 %d，耗时 %v", len(req.Tiles), p.Shanten, time.Since(t1))

	if s.snapshots != nil {
		if err := s.snapshots.Save(ctx, key, out); err != nil {
			log.Warn("写入分析快照失败: %v", err)
		}
	}
	return out, nil
}

// Batch 并发分析多手牌。单手牌出错记在对应条目里，不影响其他条目；
// ctx 取消时返回 ctx 的错误
func (s *AnalysisServiceImpl) Batch(ctx context.Context, req *dto.BatchRequest) (*dto.BatchResponse, error) {
	n := len(req.Hands)
	if n == 0 {
		return nil, service.ErrEmptyBatch
	}
	if n > s.opts.BatchLimit {
		return nil, fmt.Errorf("%w: %d hands, limit %d", service.ErrBatchTooLarge, n, s.opts.BatchLimit)
	}

	out := &dto.BatchResponse{Results: make([]dto.BatchItem, n)}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.opts.Workers)
	for i := range req.Hands {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			item := dto.BatchItem{Index: i}
			res, err := s.Analyze(gctx, &req.Hands[i])
			if err != nil {
				item.Error = err.Error()
			} else {
				item.Result = res
			}
			out.Results[i] = item
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for _, item := range out.Results {
		if item.Error != "" {
			out.Failed++
		}
	}
	log.Info("批量分析完成: %d 手，失败 %d", n, out.Failed)
	return out, nil
}
