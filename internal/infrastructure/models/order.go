package models

import (
	"time"
)

type Order struct {
	ID                 string `gorm:"type:varchar(64);primaryKey"`
	MerchantID         string `gorm:"type:varchar(64);not null;index"`
	CustomerName       string `gorm:"type:varchar(255)"`
	Product            string `gorm:"type:varchar(255)"`
	Total              float64
	Status             string `gorm:"type:varchar(20);not null"`
	PaymentMethod      string `gorm:"type:varchar(20);not null"`
	Commission         float64
	CreatedAt          time.Time
	PaymentProcessedAt *time.Time
}

func (Order) TableName() string { return "orders" }
