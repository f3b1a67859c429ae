package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// LotteryMetrics covers the two hot paths: participation writes against the
// contended ledger rows, and draw settlement.
type LotteryMetrics struct {
	ParticipationsTotal       prometheus.CounterVec
	ParticipationSharesTotal  prometheus.CounterVec
	ParticipationErrorsTotal  prometheus.CounterVec
	VersionConflictsTotal     prometheus.CounterVec

	DrawsCompletedTotal prometheus.CounterVec
	DrawsSkippedTotal   prometheus.CounterVec
	DrawFailuresTotal   prometheus.CounterVec
	DrawDuration        prometheus.HistogramVec

	RoundsFullGauge prometheus.GaugeVec
}

func NewLotteryMetrics() *LotteryMetrics {
	return &LotteryMetrics{
		ParticipationsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lottery_participations_total",
				Help: "Successful share purchases",
			},
			[]string{"product_id"},
		),

		ParticipationSharesTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lottery_participation_shares_total",
				Help: "Shares sold through successful purchases",
			},
			[]string{"product_id"},
		),

		ParticipationErrorsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lottery_participation_errors_total",
				Help: "Rejected purchases by failure kind",
			},
			[]string{"reason"},
		),

		VersionConflictsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lottery_version_conflicts_total",
				Help: "Optimistic lock conflicts by entity",
			},
			[]string{"entity"},
		),

		DrawsCompletedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lottery_draws_completed_total",
				Help: "Rounds settled with a winner",
			},
			[]string{"product_id"},
		),

		DrawsSkippedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lottery_draws_skipped_total",
				Help: "Trigger attempts that were idempotent no-ops",
			},
			[]string{"reason"},
		),

		DrawFailuresTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lottery_draw_failures_total",
				Help: "Draw attempts that failed, by reason",
			},
			[]string{"reason"},
		),

		DrawDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "lottery_draw_duration_seconds",
				Help:    "Time from trigger to committed settlement",
				Buckets: prometheus.ExponentialBuckets(0.01, 2, 10),
			},
			[]string{"product_id"},
		),

		RoundsFullGauge: *promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "lottery_rounds_full",
				Help: "Rounds currently waiting in full status",
			},
			[]string{},
		),
	}
}

func (m *LotteryMetrics) RecordParticipation(productID string, shares int64) {
	m.ParticipationsTotal.WithLabelValues(productID).Inc()
	m.ParticipationSharesTotal.WithLabelValues(productID).Add(float64(shares))
}

func (m *LotteryMetrics) RecordParticipationError(reason string) {
	m.ParticipationErrorsTotal.WithLabelValues(reason).Inc()
}

func (m *LotteryMetrics) RecordVersionConflict(entity string) {
	m.VersionConflictsTotal.WithLabelValues(entity).Inc()
}

func (m *LotteryMetrics) RecordDrawCompleted(productID string, durationSeconds float64) {
	m.DrawsCompletedTotal.WithLabelValues(productID).Inc()
	m.DrawDuration.WithLabelValues(productID).Observe(durationSeconds)
}

func (m *LotteryMetrics) RecordDrawSkipped(reason string) {
	m.DrawsSkippedTotal.WithLabelValues(reason).Inc()
}

func (m *LotteryMetrics) RecordDrawFailure(reason string) {
	m.DrawFailuresTotal.WithLabelValues(reason).Inc()
}

func (m *LotteryMetrics) SetRoundsFull(n int) {
	m.RoundsFullGauge.WithLabelValues().Set(float64(n))
}
