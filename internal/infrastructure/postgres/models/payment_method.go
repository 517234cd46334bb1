package models

import "time"

type PaymentMethodModel struct {
	ID            string `gorm:"primaryKey;type:uuid"`
	Type          string `gorm:"index:idx_pm_type"`
	Name          string
	AccountNumber string
	AccountName   string
	IsActive      bool `gorm:"index:idx_pm_active"`
	CreatedAt     time.Time
}
