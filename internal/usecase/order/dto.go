package order

import (
	"time"

	domainOrder "logistics-inventory-api/internal/domain/order"
	"logistics-inventory-api/internal/lifecycle"
)

const dateLayout = "2006-01-02"

type MaterialLineRequest struct {
	RawMaterialID int64   `json:"rawMaterialId" validate:"required,gt=0"`
	Quantity      float64 `json:"quantity" validate:"required,gt=0"`
}

type CreateOrderRequest struct {
	ProductID       int64                 `json:"productId" validate:"required,gt=0"`
	ProductQuantity float64               `json:"productQuantity" validate:"required,gt=0"`
	Materials       []MaterialLineRequest `json:"materials" validate:"required,min=1,dive"`
	StartDate       *string               `json:"startDate" validate:"omitempty,datetime=2006-01-02"`
}

// ChangeStatusRequest mirrors the shipment one; production orders carry no
// extra transition input.
type ChangeStatusRequest struct {
	TargetStatus   string  `json:"targetStatus" validate:"required"`
	ExpectedStatus *string `json:"expectedStatus" validate:"omitempty"`
}

type MaterialLineResponse struct {
	RawMaterialID   int64   `json:"rawMaterialId"`
	RawMaterialName *string `json:"rawMaterialName,omitempty"`
	Quantity        float64 `json:"quantity"`
}

type OrderResponse struct {
	ID              int64   `json:"id"`
	ReferenceCode   string  `json:"referenceCode"`
	Status          string  `json:"status"`
	ProductID       int64   `json:"productId"`
	ProductName     *string `json:"productName,omitempty"`
	ProductQuantity float64 `json:"productQuantity"`

	Materials []MaterialLineResponse `json:"materials"`

	CreationDate          string  `json:"creationDate"`
	StartDate             *string `json:"startDate,omitempty"`
	PlannedCompletionDate *string `json:"plannedCompletionDate,omitempty"`
	ActualCompletionDate  *string `json:"actualCompletionDate,omitempty"`

	AllowedTransitions []string `json:"allowedTransitions"`
	Reversible         bool     `json:"reversible"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.Format(dateLayout)
	return &formatted
}

func toOrderResponse(o *domainOrder.ProductionOrder) *OrderResponse {
	resp := &OrderResponse{
		ID:                    o.ID,
		ReferenceCode:         o.ReferenceCode,
		Status:                string(o.Status),
		ProductID:             o.ProductID,
		ProductQuantity:       o.ProductQuantity,
		CreationDate:          o.CreationDate.Format(dateLayout),
		StartDate:             formatDate(o.StartDate),
		PlannedCompletionDate: formatDate(o.PlannedCompletionDate),
		ActualCompletionDate:  formatDate(o.ActualCompletionDate),
		Reversible:            o.Status == lifecycle.OrderCompleted,
		CreatedAt:             o.CreatedAt,
		UpdatedAt:             o.UpdatedAt,
	}

	if o.Product != nil {
		resp.ProductName = &o.Product.Name
	}

	resp.Materials = make([]MaterialLineResponse, len(o.Materials))
	for i, line := range o.Materials {
		lineResp := MaterialLineResponse{
			RawMaterialID: line.RawMaterialID,
			Quantity:      line.Quantity,
		}
		if line.RawMaterial != nil {
			lineResp.RawMaterialName = &line.RawMaterial.Name
		}
		resp.Materials[i] = lineResp
	}

	options := lifecycle.AllowedTransitions(lifecycle.KindProductionOrder, o.Status)
	resp.AllowedTransitions = make([]string, len(options))
	for i, status := range options {
		resp.AllowedTransitions[i] = string(status)
	}

	return resp
}
