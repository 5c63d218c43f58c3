package models

import "time"

// ProductInventoryModel represents on-hand stock of a finished product
type ProductInventoryModel struct {
	ID               int64     `gorm:"primaryKey;autoIncrement"`
	ProductID        int64     `gorm:"not null;uniqueIndex"`
	Quantity         float64   `gorm:"type:decimal(14,3);not null;default:0"`
	ReorderThreshold float64   `gorm:"type:decimal(14,3);not null;default:0"`
	LastUpdated      time.Time `gorm:"not null"`

	Product *ProductModel `gorm:"foreignKey:ProductID"`
}

func (ProductInventoryModel) TableName() string {
	return "product_inventories"
}

// RawMaterialInventoryModel represents on-hand stock of a raw material
type RawMaterialInventoryModel struct {
	ID               int64     `gorm:"primaryKey;autoIncrement"`
	RawMaterialID    int64     `gorm:"not null;uniqueIndex"`
	Quantity         float64   `gorm:"type:decimal(14,3);not null;default:0"`
	ReorderThreshold float64   `gorm:"type:decimal(14,3);not null;default:0"`
	LastUpdated      time.Time `gorm:"not null"`

	RawMaterial *RawMaterialModel `gorm:"foreignKey:RawMaterialID"`
}

func (RawMaterialInventoryModel) TableName() string {
	return "raw_material_inventories"
}
