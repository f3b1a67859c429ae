package httpapi

import (
	"net/http"

	"github.com/duobao-games/lottery-draw-service/internal/domain"
	"github.com/duobao-games/lottery-draw-service/internal/usecase/ledger"
	"github.com/gin-gonic/gin"
)

type participateRequest struct {
	UserID      string  `json:"user_id" binding:"required"`
	RoundID     string  `json:"round_id" binding:"required"`
	ProductID   string  `json:"product_id" binding:"required"`
	SharesCount int64   `json:"shares_count" binding:"required,min=1"`
	Numbers     []int64 `json:"numbers"`
}

func (h *LotteryHandler) Participate(c *gin.Context) {
	var req participateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var output *ledger.ParticipateOutput
	err := h.policy.Do(c.Request.Context(), func() error {
		var err error
		output, err = h.ledgerUC.Participate(&ledger.ParticipateInput{
			UserID:      req.UserID,
			RoundID:     req.RoundID,
			ProductID:   req.ProductID,
			SharesCount: req.SharesCount,
			Numbers:     req.Numbers,
		})
		return err
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"participation_id": output.ParticipationID,
		"numbers":          output.Numbers,
		"cost":             output.Cost,
		"new_balance":      output.NewBalance,
		"sold_shares":      output.SoldShares,
		"round_status":     output.RoundStatus,
		"round_full":       output.RoundFull,
	})
}

type adjustBalanceRequest struct {
	Amount    float64 `json:"amount" binding:"required,gt=0"`
	Direction string  `json:"direction" binding:"required,oneof=credit debit"`
}

func (h *LotteryHandler) AdjustBalance(c *gin.Context) {
	var req adjustBalanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var snapshot *domain.Snapshot
	err := h.policy.Do(c.Request.Context(), func() error {
		var err error
		snapshot, err = h.ledgerUC.AdjustBalance(c.Param("id"), req.Amount, domain.BalanceDirection(req.Direction))
		return err
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, snapshotResponse(snapshot))
}

type adjustSharesRequest struct {
	Delta int64 `json:"delta" binding:"required"`
}

func (h *LotteryHandler) AdjustSoldShares(c *gin.Context) {
	var req adjustSharesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var snapshot *domain.Snapshot
	err := h.policy.Do(c.Request.Context(), func() error {
		var err error
		snapshot, err = h.ledgerUC.AdjustSoldShares(c.Param("id"), req.Delta)
		return err
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, snapshotResponse(snapshot))
}

type orderStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending processing completed cancelled"`
}

func (h *LotteryHandler) TransitionOrderStatus(c *gin.Context) {
	var req orderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var snapshot *domain.Snapshot
	err := h.policy.Do(c.Request.Context(), func() error {
		var err error
		snapshot, err = h.ledgerUC.TransitionOrderStatus(c.Param("id"), domain.OrderStatus(req.Status))
		return err
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, snapshotResponse(snapshot))
}

type batchOpRequest struct {
	Kind        string              `json:"kind" binding:"required"`
	UserID      string              `json:"user_id"`
	Amount      float64             `json:"amount"`
	Direction   string              `json:"direction"`
	RoundID     string              `json:"round_id"`
	ShareDelta  int64               `json:"share_delta"`
	OrderID     string              `json:"order_id"`
	OrderStatus string              `json:"order_status"`
	Participate *participateRequest `json:"participate"`
}

func (h *LotteryHandler) Batch(c *gin.Context) {
	var reqs []batchOpRequest
	if err := c.ShouldBindJSON(&reqs); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ops := make([]ledger.BatchOp, len(reqs))
	for i, r := range reqs {
		op := ledger.BatchOp{
			Kind:        ledger.BatchOpKind(r.Kind),
			UserID:      r.UserID,
			Amount:      r.Amount,
			Direction:   domain.BalanceDirection(r.Direction),
			RoundID:     r.RoundID,
			ShareDelta:  r.ShareDelta,
			OrderID:     r.OrderID,
			OrderStatus: domain.OrderStatus(r.OrderStatus),
		}
		if r.Participate != nil {
			op.Participate = &ledger.ParticipateInput{
				UserID:      r.Participate.UserID,
				RoundID:     r.Participate.RoundID,
				ProductID:   r.Participate.ProductID,
				SharesCount: r.Participate.SharesCount,
				Numbers:     r.Participate.Numbers,
			}
		}
		ops[i] = op
	}

	results := h.ledgerUC.Batch(ops)
	out := make([]gin.H, len(results))
	for i, res := range results {
		item := gin.H{"index": res.Index, "kind": res.Kind, "ok": res.Err == nil}
		if res.Err != nil {
			item["error"] = res.Err.Error()
		}
		if res.Snapshot != nil {
			item["snapshot"] = snapshotResponse(res.Snapshot)
		}
		if res.Output != nil {
			item["participation_id"] = res.Output.ParticipationID
		}
		out[i] = item
	}
	c.JSON(http.StatusOK, gin.H{"results": out})
}

func (h *LotteryHandler) Inspect(c *gin.Context) {
	snapshot, err := h.ledgerUC.Inspect(domain.EntityRef{
		Kind: domain.EntityKind(c.Param("kind")),
		ID:   c.Param("id"),
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, snapshotResponse(snapshot))
}

func snapshotResponse(s *domain.Snapshot) gin.H {
	resp := gin.H{
		"kind":    s.Kind,
		"id":      s.ID,
		"version": s.Version,
	}
	switch s.Kind {
	case domain.EntityUser:
		resp["balance"] = s.Balance
	case domain.EntityRound:
		resp["sold_shares"] = s.SoldShares
		resp["total_shares"] = s.TotalShares
		resp["status"] = s.Status
	case domain.EntityOrder:
		resp["status"] = s.Status
	}
	return resp
}
