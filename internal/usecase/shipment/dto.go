package shipment

import (
	"time"

	domainShipment "logistics-inventory-api/internal/domain/shipment"
	"logistics-inventory-api/internal/lifecycle"
)

const dateLayout = "2006-01-02"

// Request DTOs. Dates cross the wire as YYYY-MM-DD strings.
type CreateShipmentRequest struct {
	Direction     string  `json:"direction" validate:"required,shipment_direction"`
	TransportMode string  `json:"transportMode" validate:"required,transport_mode"`
	Quantity      float64 `json:"quantity" validate:"required,gt=0"`

	ProductID     *int64  `json:"productId" validate:"omitempty,gt=0"`
	RawMaterialID *int64  `json:"rawMaterialId" validate:"omitempty,gt=0"`
	SupplierID    *int64  `json:"supplierId" validate:"omitempty,gt=0"`
	CustomerName  *string `json:"customerName" validate:"omitempty,min=1,max=255"`

	DepartureDate       string  `json:"departureDate" validate:"required,datetime=2006-01-02"`
	EstimateArrivalDate *string `json:"estimateArrivalDate" validate:"omitempty,datetime=2006-01-02"`
	TrackingNumber      *string `json:"trackingNumber" validate:"omitempty,max=64"`
}

// ChangeStatusRequest drives a lifecycle transition. NewEstimateArrivalDate
// is required only when a delayed shipment resumes transit.
// ExpectedStatus, when present, must match the stored status or the request
// is rejected as stale.
type ChangeStatusRequest struct {
	ShipmentID             int64   `json:"shipmentId" validate:"required,gt=0"`
	TargetStatus           string  `json:"targetStatus" validate:"required"`
	NewEstimateArrivalDate *string `json:"newEstimateArrivalDate" validate:"omitempty,datetime=2006-01-02"`
	ExpectedStatus         *string `json:"expectedStatus" validate:"omitempty"`
}

// Response DTOs
type ShipmentResponse struct {
	ID            int64   `json:"id"`
	ReferenceCode string  `json:"referenceCode"`
	Direction     string  `json:"direction"`
	TransportMode string  `json:"transportMode"`
	Status        string  `json:"status"`
	Quantity      float64 `json:"quantity"`

	ProductID       *int64  `json:"productId,omitempty"`
	ProductName     *string `json:"productName,omitempty"`
	RawMaterialID   *int64  `json:"rawMaterialId,omitempty"`
	RawMaterialName *string `json:"rawMaterialName,omitempty"`
	SupplierID      *int64  `json:"supplierId,omitempty"`
	SupplierName    *string `json:"supplierName,omitempty"`
	CustomerName    *string `json:"customerName,omitempty"`

	DepartureDate       string  `json:"departureDate"`
	EstimateArrivalDate string  `json:"estimateArrivalDate"`
	ActualArrivalDate   *string `json:"actualArrivalDate,omitempty"`

	TrackingNumber *string `json:"trackingNumber,omitempty"`

	// Statuses this shipment can transition to right now, already
	// filtered by the delivery guard.
	AllowedTransitions []string `json:"allowedTransitions"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toShipmentResponse(s *domainShipment.Shipment, today time.Time) *ShipmentResponse {
	resp := &ShipmentResponse{
		ID:                  s.ID,
		ReferenceCode:       s.ReferenceCode,
		Direction:           string(s.Direction),
		TransportMode:       string(s.TransportMode),
		Status:              string(s.Status),
		Quantity:            s.Quantity,
		ProductID:           s.ProductID,
		RawMaterialID:       s.RawMaterialID,
		SupplierID:          s.SupplierID,
		CustomerName:        s.CustomerName,
		DepartureDate:       s.DepartureDate.Format(dateLayout),
		EstimateArrivalDate: s.EstimateArrivalDate.Format(dateLayout),
		TrackingNumber:      s.TrackingNumber,
		CreatedAt:           s.CreatedAt,
		UpdatedAt:           s.UpdatedAt,
	}

	if s.ActualArrivalDate != nil {
		formatted := s.ActualArrivalDate.Format(dateLayout)
		resp.ActualArrivalDate = &formatted
	}
	if s.Product != nil {
		resp.ProductName = &s.Product.Name
	}
	if s.RawMaterial != nil {
		resp.RawMaterialName = &s.RawMaterial.Name
	}
	if s.Supplier != nil {
		resp.SupplierName = &s.Supplier.SupplierName
	}

	options := lifecycle.ShipmentTransitionOptions(s.Status, s.DepartureDate, today)
	resp.AllowedTransitions = make([]string, len(options))
	for i, status := range options {
		resp.AllowedTransitions[i] = string(status)
	}

	return resp
}
