package offer

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/de-tools/offer-atlas/pkg/adapters"
	"github.com/de-tools/offer-atlas/pkg/models/api"
	"github.com/de-tools/offer-atlas/pkg/models/domain"
	"github.com/de-tools/offer-atlas/pkg/services/forecast"
	"github.com/de-tools/offer-atlas/pkg/services/offer"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

type Handler struct {
	offers   offer.Service
	currency string
	validate *validator.Validate
}

func NewHandler(offers offer.Service, currency string) *Handler {
	return &Handler{
		offers:   offers,
		currency: currency,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Calculate runs a stateless forecast over the catalog sent with the request
func (h *Handler) Calculate(w http.ResponseWriter, r *http.Request) {
	var req api.ForecastRequest
	if err := h.read(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	breakdown := forecast.Calculate(
		adapters.MapApiOfferToDomainOffer(req.Offer),
		adapters.MapApiProductsToDomainProducts(req.Products),
		adapters.MapApiSettingsToDomainSettings(req.CategorySettings),
	)
	h.write(w, r, http.StatusOK, adapters.MapDomainBreakdownToApiBreakdown(breakdown, h.currency))
}

func (h *Handler) Preview(w http.ResponseWriter, r *http.Request) {
	var req api.Offer
	if err := h.read(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	o := adapters.MapApiOfferToDomainOffer(req)
	o.ID = chi.URLParam(r, "offer")

	breakdown, err := h.offers.Preview(r.Context(), o)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.write(w, r, http.StatusOK, adapters.MapDomainBreakdownToApiBreakdown(*breakdown, h.currency))
}

func (h *Handler) GetForecast(w http.ResponseWriter, r *http.Request) {
	breakdown, err := h.offers.Forecast(r.Context(), chi.URLParam(r, "offer"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.write(w, r, http.StatusOK, adapters.MapDomainBreakdownToApiBreakdown(*breakdown, h.currency))
}

func (h *Handler) Sign(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())
	offerID := chi.URLParam(r, "offer")

	snapshot, err := h.offers.Sign(r.Context(), offerID)
	if snapshot == nil {
		h.writeError(w, r, err)
		return
	}
	if err != nil {
		logger.Warn().Err(err).Str("offer", offerID).Msg("offer signed with publishing errors")
	}
	h.write(w, r, http.StatusOK, adapters.MapDomainSnapshotToApiSnapshot(*snapshot))
}

func (h *Handler) GetSnapshot(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.offers.GetSnapshot(r.Context(), chi.URLParam(r, "offer"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.write(w, r, http.StatusOK, adapters.MapDomainSnapshotToApiSnapshot(*snapshot))
}

func (h *Handler) read(r *http.Request, dest any) error {
	if err := json.NewDecoder(r.Body).Decode(dest); err != nil {
		return fmt.Errorf("decode request: %v: %w", err, domain.ErrInvalidInput)
	}
	if err := h.validate.StructCtx(r.Context(), dest); err != nil {
		return fmt.Errorf("%v: %w", err, domain.ErrInvalidInput)
	}
	return nil
}

func (h *Handler) write(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		zerolog.Ctx(r.Context()).Error().
			Err(err).
			Msg("failed to encode response")
	}
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrOfferNotFound), errors.Is(err, domain.ErrSnapshotNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrOfferAlreadySigned):
		status = http.StatusConflict
	}

	msg := err.Error()
	if status == http.StatusInternalServerError {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("request failed")
		msg = http.StatusText(status)
	}
	h.write(w, r, status, api.ErrorResponse{Error: msg})
}
