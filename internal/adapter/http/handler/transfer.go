package handler

import (
	"context"
	"net/http"

	"github.com/dauletm/pickup-share/internal/adapter/http/handler/dto"
	"github.com/dauletm/pickup-share/internal/domain/models"
	"github.com/dauletm/pickup-share/internal/domain/types"
	"github.com/dauletm/pickup-share/pkg/logger"
	wrap "github.com/dauletm/pickup-share/pkg/logger/wrapper"
	"github.com/dauletm/pickup-share/pkg/uuid"
	"github.com/dauletm/pickup-share/pkg/validator"
)

type Transfer struct {
	service TransferService
	l       logger.Logger
}

type TransferService interface {
	Create(ctx context.Context, passengerIDs []uuid.UUID, destination string) (string, error)
	Redeem(ctx context.Context, code, newOwner string) (*models.RedeemResult, error)
}

func NewTransfer(service TransferService, l logger.Logger) *Transfer {
	return &Transfer{
		service: service,
		l:       l,
	}
}

// Share godoc
// @Summary      Share passengers
// @Description  Issues a one-time code referencing a set of passengers and a destination
// @Tags         Transfers
// @Accept       json
// @Produce      json
// @Param        request  body      dto.ShareRequest  true  "Passenger ids and destination"
// @Success      201      {object}  dto.ShareResponse
// @Failure      400      {object}  map[string]string
// @Router       /share [post]
func (h *Transfer) Share(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "share_passengers")

	var req dto.ShareRequest
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

	code, err := h.service.Create(ctx, req.PassengerIDs, req.Destination)
	if err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to create transfer", err)
		if status := GetCode(err); status != http.StatusInternalServerError {
			errorResponse(w, status, err.Error())
			return
		}
		internalErrorResponse(w, "could not create transfer")
		return
	}

	if err := writeJSON(w, http.StatusCreated, dto.ShareResponse{Code: code}, nil); err != nil {
		h.l.Error(ctx, "failed to write response", err)
	}
}

// Import godoc
// @Summary      Import shared passengers
// @Description  Redeems a transfer code once, copying the referenced passengers to the caller's list
// @Tags         Transfers
// @Accept       json
// @Produce      json
// @Param        request  body      dto.ImportRequest  true  "Code and new owner"
// @Success      200      {object}  dto.ImportResponse
// @Failure      400      {object}  map[string]string
// @Failure      404      {object}  map[string]string
// @Router       /import [post]
func (h *Transfer) Import(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "import_passengers")

	var req dto.ImportRequest
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

	result, err := h.service.Redeem(ctx, req.Code, req.OwnerID)
	if err != nil {
		if IsOneOf(err, types.ErrTransferNotFound) {
			notFoundResponse(w, types.ErrTransferNotFound.Error())
			return
		}
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to redeem transfer", err)
		internalErrorResponse(w, "could not import passengers")
		return
	}

	if err := writeJSON(w, http.StatusOK, dto.ToImportResponse(*result), nil); err != nil {
		h.l.Error(ctx, "failed to write response", err)
	}
}
