package models

import "time"

// ShipmentModel represents the database model for shipments
type ShipmentModel struct {
	ID            int64  `gorm:"primaryKey;autoIncrement"`
	ReferenceCode string `gorm:"type:varchar(32);uniqueIndex;not null"`
	Direction     string `gorm:"type:varchar(16);not null;index"`
	TransportMode string `gorm:"type:varchar(16);not null"`
	Status        string `gorm:"type:varchar(16);not null;default:'PLANNED';index"`
	Quantity      float64 `gorm:"type:decimal(14,3);not null"`

	ProductID     *int64 `gorm:"index"`
	RawMaterialID *int64 `gorm:"index"`
	SupplierID    *int64 `gorm:"index"`
	CustomerName  *string `gorm:"type:varchar(255)"`

	DepartureDate       time.Time  `gorm:"type:date;not null"`
	EstimateArrivalDate time.Time  `gorm:"type:date;not null"`
	ActualArrivalDate   *time.Time `gorm:"type:date"`

	TrackingNumber *string `gorm:"type:varchar(64)"`

	CreatedAt time.Time `gorm:"not null;index"`
	UpdatedAt time.Time `gorm:"not null"`

	// Relations
	Product     *ProductModel     `gorm:"foreignKey:ProductID"`
	RawMaterial *RawMaterialModel `gorm:"foreignKey:RawMaterialID"`
	Supplier    *SupplierModel    `gorm:"foreignKey:SupplierID"`
}

func (ShipmentModel) TableName() string {
	return "shipments"
}
