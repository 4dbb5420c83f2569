package handler

import (
	"context"
	"net/http"

	"github.com/dauletm/pickup-share/internal/adapter/http/handler/dto"
	"github.com/dauletm/pickup-share/internal/domain/models"
	"github.com/dauletm/pickup-share/pkg/logger"
	wrap "github.com/dauletm/pickup-share/pkg/logger/wrapper"
	"github.com/dauletm/pickup-share/pkg/uuid"
	"github.com/dauletm/pickup-share/pkg/validator"
)

type Passenger struct {
	service PassengerService
	l       logger.Logger
}

type PassengerService interface {
	Create(ctx context.Context, ownerID, name, address string) (*models.Passenger, error)
	List(ctx context.Context, ownerID string) ([]models.Passenger, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

func NewPassenger(service PassengerService, l logger.Logger) *Passenger {
	return &Passenger{
		service: service,
		l:       l,
	}
}

// List godoc
// @Summary      List passengers
// @Description  Returns the owner's passengers, most recently created first
// @Tags         Passengers
// @Produce      json
// @Param        ownerId  query     string  true  "Owner identifier"
// @Success      200      {array}   dto.PassengerResponse
// @Failure      400      {object}  map[string]string
// @Router       /passengers [get]
func (h *Passenger) List(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "list_passengers")

	ownerID := r.URL.Query().Get("ownerId")
	if ownerID == "" {
		badRequestResponse(w, "ownerId query parameter is required")
		return
	}

	passengers, err := h.service.List(ctx, ownerID)
	if err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to list passengers", err)
		internalErrorResponse(w, "could not list passengers")
		return
	}

	if err := writeJSON(w, http.StatusOK, dto.ToPassengerListResponse(passengers), nil); err != nil {
		h.l.Error(ctx, "failed to write response", err)
	}
}

// Create godoc
// @Summary      Register passenger
// @Description  Creates a passenger; the address is geocoded, falling back to a default location when it cannot be resolved
// @Tags         Passengers
// @Accept       json
// @Produce      json
// @Param        request  body      dto.CreatePassengerRequest  true  "Passenger data"
// @Success      201      {object}  dto.PassengerResponse
// @Failure      400      {object}  map[string]string
// @Router       /passengers [post]
func (h *Passenger) Create(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "create_passenger")

	var req dto.CreatePassengerRequest
	if err := readJSON(w, r, &req); err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to read request JSON data", err)
		badRequestResponse(w, err.Error())
		return
	}

	v := validator.New()
	if req.Validate(v); !v.Valid() {
		badRequestResponse(w, v.Errors)
		return
	}

	created, err := h.service.Create(ctx, req.OwnerID, req.Name, req.Address)
	if err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to create passenger", err)
		internalErrorResponse(w, "could not create passenger")
		return
	}

	if err := writeJSON(w, http.StatusCreated, dto.ToPassengerResponse(*created), nil); err != nil {
		h.l.Error(ctx, "failed to write response", err)
	}
}

// Delete godoc
// @Summary      Delete passenger
// @Description  Removes a passenger; deleting an unknown id is not an error
// @Tags         Passengers
// @Produce      json
// @Param        id   path      string  true  "Passenger id"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Router       /passengers/{id} [delete]
func (h *Passenger) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "delete_passenger")

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		badRequestResponse(w, "invalid passenger id")
		return
	}

	if err := h.service.Delete(ctx, id); err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to delete passenger", err)
		internalErrorResponse(w, "could not delete passenger")
		return
	}

	if err := writeJSON(w, http.StatusOK, envelope{"message": "passenger deleted"}, nil); err != nil {
		h.l.Error(ctx, "failed to write response", err)
	}
}
