package dto

import (
	"github.com/dauletm/pickup-share/internal/domain/models"
	"github.com/dauletm/pickup-share/pkg/uuid"
	"github.com/dauletm/pickup-share/pkg/validator"
)

type ShareRequest struct {
	PassengerIDs []uuid.UUID `json:"passengerIds"`
	Destination  string      `json:"destination"`
}

func (r *ShareRequest) Validate(v *validator.Validator) {
	v.Check(len(r.PassengerIDs) > 0, "passengerIds", "must not be empty")
	v.Check(len(r.PassengerIDs) <= 100, "passengerIds", "must not exceed 100 ids")

	v.Check(r.Destination != "", "destination", "must be provided")
	v.Check(len(r.Destination) < 200, "destination", "must be less than 200 characters")
}

type ShareResponse struct {
	Code string `json:"code"`
}

type ImportRequest struct {
	Code    string `json:"code"`
	OwnerID string `json:"ownerId"`
}

func (r *ImportRequest) Validate(v *validator.Validator) {
	v.Check(r.Code != "", "code", "must be provided")
	v.Check(r.OwnerID != "", "ownerId", "must be provided")
}

type ImportResponse struct {
	Destination  string   `json:"destination"`
	PassengerIDs []string `json:"passengerIds"`
}

func ToImportResponse(result models.RedeemResult) ImportResponse {
	ids := make([]string, 0, len(result.PassengerIDs))
	for _, id := range result.PassengerIDs {
		ids = append(ids, id.String())
	}
	return ImportResponse{
		Destination:  result.Destination,
		PassengerIDs: ids,
	}
}
