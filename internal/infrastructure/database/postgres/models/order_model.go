package models

import "time"

// ProductionOrderModel represents the database model for production orders
type ProductionOrderModel struct {
	ID            int64  `gorm:"primaryKey;autoIncrement"`
	ReferenceCode string `gorm:"type:varchar(32);uniqueIndex;not null"`
	Status        string `gorm:"type:varchar(16);not null;default:'PLANNED';index"`

	ProductID       int64   `gorm:"not null;index"`
	ProductQuantity float64 `gorm:"type:decimal(14,3);not null"`

	CreationDate          time.Time  `gorm:"type:date;not null"`
	StartDate             *time.Time `gorm:"type:date"`
	PlannedCompletionDate *time.Time `gorm:"type:date"`
	ActualCompletionDate  *time.Time `gorm:"type:date"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`

	// Relations
	Product   *ProductModel                 `gorm:"foreignKey:ProductID"`
	Materials []ProductionOrderMaterialModel `gorm:"foreignKey:OrderID"`
}

func (ProductionOrderModel) TableName() string {
	return "production_orders"
}

// ProductionOrderMaterialModel is one raw-material line of an order
type ProductionOrderMaterialModel struct {
	ID            int64   `gorm:"primaryKey;autoIncrement"`
	OrderID       int64   `gorm:"not null;index"`
	RawMaterialID int64   `gorm:"not null;index"`
	Quantity      float64 `gorm:"type:decimal(14,3);not null"`

	RawMaterial *RawMaterialModel `gorm:"foreignKey:RawMaterialID"`
}

func (ProductionOrderMaterialModel) TableName() string {
	return "production_order_materials"
}
