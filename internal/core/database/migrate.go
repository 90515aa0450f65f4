package database

import (
	"gorm.io/gorm"

	"seller-desk/internal/feature/sales"
)

// Migrate 仅为空库建表（department 先于 seller，外键依赖）
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&sales.DepartmentModel{}, &sales.SellerModel{})
}
