package alert

import (
	"time"

	domainAlert "logistics-inventory-api/internal/domain/alert"
)

type AlertResponse struct {
	ID         int64     `json:"id"`
	AlertType  string    `json:"alertType"`
	Severity   string    `json:"severity"`
	EntityType string    `json:"entityType"`
	EntityID   int64     `json:"entityId"`
	Message    string    `json:"message"`
	CreatedAt  time.Time `json:"createdAt"`
}

func toAlertResponse(a *domainAlert.Alert) *AlertResponse {
	return &AlertResponse{
		ID:         a.ID,
		AlertType:  string(a.AlertType),
		Severity:   string(a.Severity),
		EntityType: string(a.EntityType),
		EntityID:   a.EntityID,
		Message:    a.Message,
		CreatedAt:  a.CreatedAt,
	}
}
