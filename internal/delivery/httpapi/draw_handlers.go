package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *LotteryHandler) TriggerDraw(c *gin.Context) {
	outcome, err := h.drawUC.TriggerDraw(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	resp := gin.H{
		"round_id": outcome.RoundID,
		"skipped":  outcome.Skipped,
	}
	if outcome.Skipped {
		resp["skip_reason"] = outcome.SkipReason
	}
	if outcome.WinningNumber != 0 {
		resp["winning_number"] = outcome.WinningNumber
		resp["winner_user_id"] = outcome.WinnerUserID
		resp["draw_time"] = outcome.DrawTime
	}
	c.JSON(http.StatusOK, resp)
}

func (h *LotteryHandler) VerifyDraw(c *gin.Context) {
	result, err := h.drawUC.VerifyDraw(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
