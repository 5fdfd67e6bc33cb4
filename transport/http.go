package transport

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	appcart "github.com/breightend/mykonos-inventory/application/cart"
	appcatalog "github.com/breightend/mykonos-inventory/application/catalog"
	appledger "github.com/breightend/mykonos-inventory/application/ledger"
	appreservation "github.com/breightend/mykonos-inventory/application/reservation"
	"github.com/breightend/mykonos-inventory/constant"
	"github.com/breightend/mykonos-inventory/model"
	"github.com/breightend/mykonos-inventory/utils/errors"
	validatorx "github.com/breightend/mykonos-inventory/utils/validator"
	httpSwagger "github.com/swaggo/http-swagger"
)

type RestHandler struct {
	ReservationApp appreservation.ReservationApp
	LedgerApp      appledger.LedgerApp
	CartApp        appcart.CartApp
	CatalogApp     appcatalog.CatalogApp
}

func NewTransport(reservationApp appreservation.ReservationApp, ledgerApp appledger.LedgerApp, cartApp appcart.CartApp, catalogApp appcatalog.CatalogApp, internalAPIKey string) http.Handler {
	router := mux.NewRouter()

	rh := &RestHandler{
		ReservationApp: reservationApp,
		LedgerApp:      ledgerApp,
		CartApp:        cartApp,
		CatalogApp:     catalogApp,
	}

	// Swagger UI
	router.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// Reservation lifecycle (called by the checkout workflow)
	router.HandleFunc("/v1/reservations", rh.Reserve).Methods(http.MethodPost)
	router.HandleFunc("/v1/reservations/{reservation_id}/commit", rh.CommitReservation).Methods(http.MethodPost)
	router.HandleFunc("/v1/reservations/{reservation_id}/release", rh.ReleaseReservation).Methods(http.MethodPost)
	router.HandleFunc("/v1/reservations/{reservation_id}/extend", rh.ExtendReservation).Methods(http.MethodPost)

	// Ledger operations (called by stock management)
	router.HandleFunc("/v1/variants/{variant_id}/assignments", rh.AssignStock).Methods(http.MethodPost)
	router.HandleFunc("/v1/variants/{variant_id}/adjustments", rh.AdjustStock).Methods(http.MethodPost)

	// Diagnostic surface (replaces the old debug SQL scripts)
	router.HandleFunc("/v1/variants/{variant_id}", rh.ResolveVariant).Methods(http.MethodGet)
	router.HandleFunc("/v1/variants/{variant_id}/branches", rh.PerBranch).Methods(http.MethodGet)
	router.HandleFunc("/v1/variants/{variant_id}/availability", rh.Availability).Methods(http.MethodGet)
	router.HandleFunc("/v1/variants/{variant_id}/stock-hint", rh.StockHint).Methods(http.MethodGet)
	router.HandleFunc("/v1/carts/{cart_id}/validate", rh.ValidateCart).Methods(http.MethodGet)

	// Internal routes, API-key gated (scheduler/consumer only)
	internal := router.PathPrefix("/internal").Subrouter()
	internal.Use(InternalMiddleware(internalAPIKey))
	internal.HandleFunc("/v1/reservations/sweep", rh.SweepExpired).Methods(http.MethodPost)

	router.Use(LoggingMiddleware())

	return router
}

// Reserve handler
// @Summary Reserve stock
// @Description Create a time-bounded stock reservation for a sale
// @Tags Reservations
// @Accept json
// @Produce json
// @Param request body model.ReserveRequest true "Reserve Request"
// @Success 200 {object} model.ReserveResponse
// @Failure 409 {object} errors.CustomError
// @Router /v1/reservations [post]
func (s *RestHandler) Reserve(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.ReserveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if req.IdempotencyKey == "" {
		req.IdempotencyKey = uuid.NewString()
	}

	// Reservations are keyed to the ledger variant: legacy ids are
	// remapped to their web counterpart, unresolvable ids refused.
	resolved, err := s.CatalogApp.Resolve(ctx, req.VariantID)
	if err != nil {
		writeError(w, err)
		return
	}
	if resolved.LedgerVariantID == 0 {
		writeError(w, errors.SetCustomError(constant.ErrOrphanedVariant))
		return
	}
	req.VariantID = resolved.LedgerVariantID

	res, err := s.ReservationApp.Reserve(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// CommitReservation handler
// @Summary Commit a reservation
// @Description Permanently decrement assigned stock for an active reservation
// @Tags Reservations
// @Produce json
// @Param reservation_id path int true "Reservation ID"
// @Success 200 {object} map[string]interface{}
// @Failure 409 {object} errors.CustomError
// @Router /v1/reservations/{reservation_id}/commit [post]
func (s *RestHandler) CommitReservation(w http.ResponseWriter, r *http.Request) {
	reservationID, ok := pathID(w, r, "reservation_id")
	if !ok {
		return
	}
	if err := s.ReservationApp.Commit(r.Context(), reservationID); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, map[string]interface{}{"reservation_id": reservationID, "status": constant.ReservationStatusCommitted})
}

// ReleaseReservation handler
// @Summary Release a reservation
// @Description Return an active hold to availability without touching the ledger
// @Tags Reservations
// @Produce json
// @Param reservation_id path int true "Reservation ID"
// @Success 200 {object} map[string]interface{}
// @Failure 409 {object} errors.CustomError
// @Router /v1/reservations/{reservation_id}/release [post]
func (s *RestHandler) ReleaseReservation(w http.ResponseWriter, r *http.Request) {
	reservationID, ok := pathID(w, r, "reservation_id")
	if !ok {
		return
	}
	if err := s.ReservationApp.Release(r.Context(), reservationID); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, map[string]interface{}{"reservation_id": reservationID, "status": constant.ReservationStatusReleased})
}

// ExtendReservation handler
// @Summary Extend a reservation
// @Description Push back the deadline of an active reservation
// @Tags Reservations
// @Accept json
// @Produce json
// @Param reservation_id path int true "Reservation ID"
// @Param request body model.ExtendRequest false "Extend Request"
// @Success 200 {object} map[string]interface{}
// @Failure 409 {object} errors.CustomError
// @Router /v1/reservations/{reservation_id}/extend [post]
func (s *RestHandler) ExtendReservation(w http.ResponseWriter, r *http.Request) {
	reservationID, ok := pathID(w, r, "reservation_id")
	if !ok {
		return
	}

	var req model.ExtendRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
			return
		}
	}

	expiresAt, err := s.ReservationApp.Extend(r.Context(), reservationID, req.TTLSeconds)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, map[string]interface{}{"reservation_id": reservationID, "expires_at": expiresAt})
}

// SweepExpired handler
// @Summary Expire stale reservations
// @Description Transition every active reservation past its expiry to expired
// @Tags Internal
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /internal/v1/reservations/sweep [post]
func (s *RestHandler) SweepExpired(w http.ResponseWriter, r *http.Request) {
	swept, err := s.ReservationApp.SweepExpired(r.Context(), time.Now())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, map[string]interface{}{"swept": swept})
}

// AssignStock handler
// @Summary Assign branch stock
// @Description Upsert the assigned quantity of a variant at a branch
// @Tags Ledger
// @Accept json
// @Produce json
// @Param variant_id path int true "Variant ID"
// @Param request body model.AssignRequest true "Assign Request"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.CustomError
// @Router /v1/variants/{variant_id}/assignments [post]
func (s *RestHandler) AssignStock(w http.ResponseWriter, r *http.Request) {
	variantID, ok := pathID(w, r, "variant_id")
	if !ok {
		return
	}

	var req model.AssignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.LedgerApp.Assign(r.Context(), variantID, req.BranchID, req.Quantity); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, map[string]interface{}{"variant_id": variantID, "branch_id": req.BranchID, "quantity": req.Quantity})
}

// AdjustStock handler
// @Summary Adjust branch stock
// @Description Atomically add a delta to the assigned quantity of a variant at a branch
// @Tags Ledger
// @Accept json
// @Produce json
// @Param variant_id path int true "Variant ID"
// @Param request body model.AdjustRequest true "Adjust Request"
// @Success 200 {object} map[string]interface{}
// @Failure 409 {object} errors.CustomError
// @Router /v1/variants/{variant_id}/adjustments [post]
func (s *RestHandler) AdjustStock(w http.ResponseWriter, r *http.Request) {
	variantID, ok := pathID(w, r, "variant_id")
	if !ok {
		return
	}

	var req model.AdjustRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.LedgerApp.Adjust(r.Context(), variantID, req.BranchID, req.Delta); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, map[string]interface{}{"variant_id": variantID, "branch_id": req.BranchID, "delta": req.Delta})
}

// ResolveVariant handler
// @Summary Resolve a variant identifier
// @Description Report which catalog table is authoritative for a variant id
// @Tags Diagnostics
// @Produce json
// @Param variant_id path int true "Variant ID"
// @Success 200 {object} model.ResolvedVariant
// @Router /v1/variants/{variant_id} [get]
func (s *RestHandler) ResolveVariant(w http.ResponseWriter, r *http.Request) {
	variantID, ok := pathID(w, r, "variant_id")
	if !ok {
		return
	}
	resolved, err := s.CatalogApp.Resolve(r.Context(), variantID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, resolved)
}

// PerBranch handler
// @Summary Per-branch stock
// @Description List assigned stock per branch for a variant, branch id ascending
// @Tags Diagnostics
// @Produce json
// @Param variant_id path int true "Variant ID"
// @Success 200 {array} model.BranchStock
// @Router /v1/variants/{variant_id}/branches [get]
func (s *RestHandler) PerBranch(w http.ResponseWriter, r *http.Request) {
	variantID, ok := pathID(w, r, "variant_id")
	if !ok {
		return
	}
	stocks, err := s.LedgerApp.PerBranch(r.Context(), variantID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, stocks)
}

// Availability handler
// @Summary Variant availability
// @Description Total assigned stock minus active reservations
// @Tags Diagnostics
// @Produce json
// @Param variant_id path int true "Variant ID"
// @Success 200 {object} map[string]interface{}
// @Router /v1/variants/{variant_id}/availability [get]
func (s *RestHandler) Availability(w http.ResponseWriter, r *http.Request) {
	variantID, ok := pathID(w, r, "variant_id")
	if !ok {
		return
	}
	available, err := s.ReservationApp.Available(r.Context(), variantID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, map[string]interface{}{"variant_id": variantID, "available": available})
}

// StockHint handler
// @Summary Displayed stock hint
// @Description Cached storefront stock figure; may lag behind availability
// @Tags Diagnostics
// @Produce json
// @Param variant_id path int true "Variant ID"
// @Success 200 {object} map[string]interface{}
// @Router /v1/variants/{variant_id}/stock-hint [get]
func (s *RestHandler) StockHint(w http.ResponseWriter, r *http.Request) {
	variantID, ok := pathID(w, r, "variant_id")
	if !ok {
		return
	}
	stock, err := s.LedgerApp.DisplayedStock(r.Context(), variantID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, map[string]interface{}{"variant_id": variantID, "displayed_stock": stock})
}

// ValidateCart handler
// @Summary Validate a cart
// @Description Per-line validation report covering resolution and availability
// @Tags Diagnostics
// @Produce json
// @Param cart_id path int true "Cart ID"
// @Success 200 {array} model.CartLineResult
// @Router /v1/carts/{cart_id}/validate [get]
func (s *RestHandler) ValidateCart(w http.ResponseWriter, r *http.Request) {
	cartID, ok := pathID(w, r, "cart_id")
	if !ok {
		return
	}
	results, err := s.CartApp.ValidateCart(r.Context(), cartID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, results)
}

func pathID(w http.ResponseWriter, r *http.Request, name string) (uint64, bool) {
	id, err := strconv.ParseUint(mux.Vars(r)[name], 10, 64)
	if err != nil || id == 0 {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return 0, false
	}
	return id, true
}
