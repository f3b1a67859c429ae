// Package httpapi exposes the ledger and draw operations over a JSON API.
// Handlers own the retry policy: a version conflict inside a single request
// is retried with jitter up to the configured budget, then surfaced as 409.
package httpapi

import (
	"net/http"

	"github.com/duobao-games/lottery-draw-service/internal/retry"
	"github.com/duobao-games/lottery-draw-service/internal/usecase/draw"
	"github.com/duobao-games/lottery-draw-service/internal/usecase/ledger"
	"github.com/gin-gonic/gin"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type LotteryHandler struct {
	ledgerUC ledger.LedgerUsecase
	drawUC   draw.DrawUsecase
	policy   retry.Policy
}

func NewLotteryHandler(ledgerUC ledger.LedgerUsecase, drawUC draw.DrawUsecase, policy retry.Policy) *LotteryHandler {
	return &LotteryHandler{
		ledgerUC: ledgerUC,
		drawUC:   drawUC,
		policy:   policy,
	}
}

func (h *LotteryHandler) RegisterRoutes(router *gin.Engine) {
	router.POST("/participations", h.Participate)
	router.POST("/users/:id/balance", h.AdjustBalance)
	router.POST("/rounds/:id/shares", h.AdjustSoldShares)
	router.POST("/orders/:id/status", h.TransitionOrderStatus)
	router.POST("/ledger/batch", h.Batch)
	router.GET("/ledger/:kind/:id", h.Inspect)
	router.POST("/rounds/:id/draw", h.TriggerDraw)
	router.GET("/rounds/:id/verify", h.VerifyDraw)
}

// writeError maps domain errors through the shared gRPC status translation
// so both transports agree on the failure taxonomy.
func writeError(c *gin.Context, err error) {
	st, _ := status.FromError(ledger.StatusFromError(err))
	c.JSON(httpCode(st.Code()), gin.H{"error": st.Message()})
}

func httpCode(code codes.Code) int {
	switch code {
	case codes.Aborted, codes.AlreadyExists:
		return http.StatusConflict
	case codes.FailedPrecondition:
		return http.StatusUnprocessableEntity
	case codes.NotFound:
		return http.StatusNotFound
	case codes.InvalidArgument:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
