package postgres

import (
	"log"

	"github.com/rekberinx/rekber-bot/internal/config"
	"github.com/rekberinx/rekber-bot/internal/infrastructure/postgres/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func MustInitDB(cfg *config.RekberConfig) *gorm.DB {
	dsn := cfg.RekberDB.Dsn
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to init db: %v\n", err.Error())
	}

	db.AutoMigrate(&models.UserModel{}, &models.TransactionModel{}, &models.TransactionLogModel{}, &models.PaymentMethodModel{})

	return db
}
