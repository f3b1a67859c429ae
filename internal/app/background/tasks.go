package background

import (
	"context"
	"log"
	"time"

	"github.com/duobao-games/lottery-draw-service/internal/config"
	"github.com/duobao-games/lottery-draw-service/internal/usecase/draw"
)

type BackgroundTasks struct {
	DrawUsecase draw.DrawUsecase
	Cfg         config.DrawConfig
}

func NewBackgroundTasks(drawUC draw.DrawUsecase, cfg config.DrawConfig) *BackgroundTasks {
	return &BackgroundTasks{
		DrawUsecase: drawUC,
		Cfg:         cfg,
	}
}

func (bt *BackgroundTasks) StartAll(ctx context.Context) {
	go bt.startDrawSweep(ctx)
	go bt.startStuckRoundMonitor(ctx)
}

func (bt *BackgroundTasks) startDrawSweep(ctx context.Context) {
	ticker := time.NewTicker(bt.Cfg.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := bt.DrawUsecase.Sweep(ctx); err != nil {
				log.Printf("Draw sweep error: %v\n", err)
			}
		}
	}
}

func (bt *BackgroundTasks) startStuckRoundMonitor(ctx context.Context) {
	ticker := time.NewTicker(bt.Cfg.StuckRoundAge)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := bt.DrawUsecase.MonitorStuckRounds(ctx); err != nil {
				log.Printf("Stuck round monitor error: %v\n", err)
			}
		}
	}
}
