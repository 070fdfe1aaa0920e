package models

import (
	"time"
)

type Merchant struct {
	ID             string `gorm:"type:varchar(64);primaryKey"`
	Method         string `gorm:"type:varchar(20);not null"`
	Label          string `gorm:"type:varchar(255)"`
	Provider       string `gorm:"type:varchar(100)"`
	PhoneNumber    string `gorm:"type:varchar(50)"`
	CardNumber     string `gorm:"type:varchar(50)"`
	Expiry         string `gorm:"type:varchar(10)"`
	CVV            string `gorm:"type:varchar(10)"`
	AccountNumber  string `gorm:"type:varchar(50)"`
	BankName       string `gorm:"type:varchar(100)"`
	BranchCode     string `gorm:"type:varchar(50)"`
	CommissionRate float64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (Merchant) TableName() string { return "merchants" }
