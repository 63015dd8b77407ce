package dto

import "encoding/json"

// InjectRequest is the JSON body accepted by the alert injection endpoint.
type InjectRequest struct {
	Kind           string          `json:"kind"`
	VehicleID      string          `json:"vehicle_id"`
	UserID         string          `json:"user_id"`
	NotificationID string          `json:"notification_id" validate:"required"`
	Group          string          `json:"group"`
	Payload        json.RawMessage `json:"payload"`
}
