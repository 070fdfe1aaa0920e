package models

type User struct {
	Username     string `gorm:"type:varchar(100);primaryKey"`
	Name         string `gorm:"type:varchar(100)"`
	Email        string `gorm:"type:varchar(255)"`
	Role         string `gorm:"type:varchar(50);not null"`
	MerchantID   string `gorm:"type:varchar(64)"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
}

func (User) TableName() string { return "users" }
