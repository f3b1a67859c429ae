package logger

import (
	"context"
	"time"

	"gorm.io/gorm"
)

const (
	EventDrawSettled   = "settled"
	EventDrawSkipped   = "skipped"
	EventDrawFailed    = "failed"
	EventSweepStarted  = "sweep_started"
	EventRoundStuck    = "round_stuck"
)

// DrawAuditEvent is the append-only audit trail of draw activity. Rows are
// written outside the settlement transaction and their failure never blocks
// a draw.
type DrawAuditEvent struct {
	ID            uint   `gorm:"primaryKey"`
	RoundID       string `gorm:"type:uuid;index"`
	EventType     string
	WinningNumber int64
	WinnerUserID  string `gorm:"type:uuid"`
	Detail        string
	Timestamp     time.Time
}

type DrawAuditLogger interface {
	LogDrawEvent(ctx context.Context, event DrawAuditEvent) error
}

type PGDrawAuditLogger struct {
	db *gorm.DB
}

func NewPGDrawAuditLogger(db *gorm.DB) *PGDrawAuditLogger {
	return &PGDrawAuditLogger{db: db}
}

func (l *PGDrawAuditLogger) LogDrawEvent(ctx context.Context, event DrawAuditEvent) error {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	return l.db.WithContext(ctx).Create(&event).Error
}
