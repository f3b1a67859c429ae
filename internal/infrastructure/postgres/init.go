package postgres

import (
	"log"

	"github.com/duobao-games/lottery-draw-service/internal/config"
	"github.com/duobao-games/lottery-draw-service/internal/infrastructure/logger"
	"github.com/duobao-games/lottery-draw-service/internal/infrastructure/postgres/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func MustInitDB(cfg *config.LotteryConfig) *gorm.DB {
	dsn := cfg.LotteryDB.Dsn
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to init db: %v\n", err.Error())
	}

	db.AutoMigrate(
		&models.UserModel{},
		&models.ProductModel{},
		&models.RoundModel{},
		&models.ParticipationModel{},
		&models.TransactionModel{},
		&models.OrderModel{},
		&logger.DrawAuditEvent{},
	)

	return db
}
