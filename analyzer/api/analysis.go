package api

import (
	"errors"

	"gomahjong/analyzer/application/dto"
	"gomahjong/analyzer/application/service"
	"gomahjong/common/http"
	"gomahjong/engines/mahjong"
)

type Handler struct {
	svc service.AnalysisService
}

// badInput 输入错误返回 400，其余交给 500
func badInput(err error) bool {
	return errors.Is(err, mahjong.ErrIllegalTile) ||
		errors.Is(err, mahjong.ErrIllegalComponent) ||
		errors.Is(err, mahjong.ErrIllegalCount) ||
		errors.Is(err, mahjong.ErrConsistency) ||
		errors.Is(err, mahjong.ErrUnsupportedForOpenHand) ||
		errors.Is(err, service.ErrEmptyBatch)
}

func respond(c *http.Context, data any, err error) error {
	switch {
	case err == nil:
		c.Success(data)
		return nil
	case errors.Is(err, service.ErrBatchTooLarge):
		c.TooLarge(err.Error())
		return nil
	case badInput(err):
		c.BadRequest(err.Error())
		return nil
	default:
		return err
	}
}

func (h *Handler) Tiles(c *http.Context) error {
	c.Success(h.svc.Tiles())
	return nil
}

func (h *Handler) Shanten(c *http.Context) error {
	var req dto.ShantenRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest(err.Error())
		return nil
	}
	res, err := h.svc.Shanten(c.Ctx(), &req)
	return respond(c, res, err)
}

func (h *Handler) Analyze(c *http.Context) error {
	var req dto.HandRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest(err.Error())
		return nil
	}
	res, err := h.svc.Analyze(c.Ctx(), &req)
	return respond(c, res, err)
}

func (h *Handler) Batch(c *http.Context) error {
	var req dto.BatchRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest(err.Error())
		return nil
	}
	res, err := h.svc.Batch(c.Ctx(), &req)
	return respond(c, res, err)
}
