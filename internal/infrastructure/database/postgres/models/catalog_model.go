package models

import "time"

// ProductModel represents the database model for finished products
type ProductModel struct {
	ID                        int64   `gorm:"primaryKey;autoIncrement"`
	Name                      string  `gorm:"type:varchar(255);not null"`
	Description               string  `gorm:"type:text"`
	Unit                      string  `gorm:"type:varchar(32);not null"`
	SKU                       string  `gorm:"type:varchar(64);uniqueIndex;not null"`
	ProductionDurationMinutes *int64  `gorm:"type:bigint"`
	CreatedAt                 time.Time `gorm:"not null"`
	UpdatedAt                 time.Time `gorm:"not null"`
}

func (ProductModel) TableName() string {
	return "products"
}

// RawMaterialModel represents the database model for raw materials
type RawMaterialModel struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text"`
	Unit        string    `gorm:"type:varchar(32);not null"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}

func (RawMaterialModel) TableName() string {
	return "raw_materials"
}

// SupplierModel represents the database model for suppliers
type SupplierModel struct {
	ID           int64     `gorm:"primaryKey;autoIncrement"`
	SupplierName string    `gorm:"type:varchar(255);not null"`
	Email        string    `gorm:"type:varchar(255)"`
	Phone        string    `gorm:"type:varchar(32)"`
	Address      string    `gorm:"type:text"`
	City         string    `gorm:"type:varchar(128)"`
	Country      string    `gorm:"type:varchar(128)"`
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null"`
}

func (SupplierModel) TableName() string {
	return "suppliers"
}
