// internal/handler/customer_handler.go
package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"customer-service/internal/domain"
	"customer-service/internal/usecase"
	"customer-service/pkg/response"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CustomerHandler struct {
	customerUC *usecase.CustomerUsecase
	logger     *zap.Logger
}

func NewCustomerHandler(customerUC *usecase.CustomerUsecase, logger *zap.Logger) *CustomerHandler {
	return &CustomerHandler{
		customerUC: customerUC,
		logger:     logger,
	}
}

// customerResponse is the wire shape of a customer. The stored access
// token never leaves the service.
type customerResponse struct {
	ID                uuid.UUID              `json:"id"`
	AppID             uuid.UUID              `json:"app_id"`
	Platform          domain.Platform        `json:"platform"`
	PlatformID        string                 `json:"platform_id"`
	FirstName         string                 `json:"first_name,omitempty"`
	LastName          string                 `json:"last_name,omitempty"`
	FullName          string                 `json:"full_name"`
	ProfilePicURL     string                 `json:"profile_pic_url,omitempty"`
	Email             string                 `json:"email,omitempty"`
	Phone             string                 `json:"phone,omitempty"`
	CustomMetadata    map[string]interface{} `json:"custom_metadata,omitempty"`
	IsActive          bool                   `json:"is_active"`
	IsBlocked         bool                   `json:"is_blocked"`
	CreatedAt         time.Time              `json:"created_at"`
	UpdatedAt         time.Time              `json:"updated_at"`
	LastInteractionAt *time.Time             `json:"last_interaction_at,omitempty"`
}

func toCustomerResponse(c *domain.Customer) customerResponse {
	return customerResponse{
		ID:                c.ID,
		AppID:             c.AppID,
		Platform:          c.Platform,
		PlatformID:        c.PlatformID,
		FirstName:         c.FirstName,
		LastName:          c.LastName,
		FullName:          c.FullName(),
		ProfilePicURL:     c.ProfilePicURL,
		Email:             c.Email,
		Phone:             c.Phone,
		CustomMetadata:    c.CustomMetadata,
		IsActive:          c.IsActive,
		IsBlocked:         c.IsBlocked,
		CreatedAt:         c.CreatedAt,
		UpdatedAt:         c.UpdatedAt,
		LastInteractionAt: c.LastInteractionAt,
	}
}

type createCustomerRequest struct {
	AppID          uuid.UUID              `json:"app_id"`
	Platform       string                 `json:"platform"`
	PlatformID     string                 `json:"platform_id"`
	FirstName      string                 `json:"first_name"`
	LastName       string                 `json:"last_name"`
	ProfilePicURL  string                 `json:"profile_pic_url"`
	Email          string                 `json:"email"`
	Phone          string                 `json:"phone"`
	CustomMetadata map[string]interface{} `json:"custom_metadata"`
	AccessToken    string                 `json:"access_token"`
}

// Create handles POST /customers.
func (h *CustomerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createCustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	platform, err := domain.ParsePlatform(req.Platform)
	if err != nil {
		h.writeError(w, err)
		return
	}

	customer, err := h.customerUC.Create(r.Context(), usecase.CreateInput{
		AppID:          req.AppID,
		Platform:       platform,
		PlatformID:     req.PlatformID,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		ProfilePicURL:  req.ProfilePicURL,
		Email:          req.Email,
		Phone:          req.Phone,
		CustomMetadata: req.CustomMetadata,
		AccessToken:    req.AccessToken,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, toCustomerResponse(customer))
}

type identifyRequest struct {
	AppID       uuid.UUID `json:"app_id"`
	Platform    string    `json:"platform"`
	PlatformID  string    `json:"platform_id"`
	AccessToken string    `json:"access_token"`
}

// Identify handles POST /customers/identify: the reconciliation entry
// point for HTTP callers, same semantics as the gRPC endpoint.
func (h *CustomerHandler) Identify(w http.ResponseWriter, r *http.Request) {
	var req identifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	platform, err := domain.ParsePlatform(req.Platform)
	if err != nil {
		h.writeError(w, err)
		return
	}

	result, err := h.customerUC.Identify(r.Context(), usecase.IdentifyInput{
		AppID:       req.AppID,
		Platform:    platform,
		PlatformID:  req.PlatformID,
		AccessToken: req.AccessToken,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}

	status := http.StatusOK
	if result.IsNew {
		status = http.StatusCreated
	}
	response.JSON(w, status, map[string]interface{}{
		"customer": toCustomerResponse(result.Customer),
		"is_new":   result.IsNew,
	})
}

type upsertRequest struct {
	AppID         uuid.UUID `json:"app_id"`
	Platform      string    `json:"platform"`
	PlatformID    string    `json:"platform_id"`
	FirstName     string    `json:"first_name"`
	LastName      string    `json:"last_name"`
	ProfilePicURL string    `json:"profile_pic_url"`
}

// Upsert handles POST /customers/upsert, the webhook-sync path.
func (h *CustomerHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	var req upsertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	platform, err := domain.ParsePlatform(req.Platform)
	if err != nil {
		h.writeError(w, err)
		return
	}

	customer, created, err := h.customerUC.Upsert(r.Context(), usecase.UpsertInput{
		AppID:         req.AppID,
		Platform:      platform,
		PlatformID:    req.PlatformID,
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		ProfilePicURL: req.ProfilePicURL,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, map[string]interface{}{
		"customer": toCustomerResponse(customer),
		"created":  created,
	})
}

// List handles GET /customers?app_id=...&page=...&size=...&platform=...&search=...
func (h *CustomerHandler) List(w http.ResponseWriter, r *http.Request) {
	appID, err := uuid.Parse(r.URL.Query().Get("app_id"))
	if err != nil {
		response.Error(w, http.StatusBadRequest, "app_id query parameter is required")
		return
	}

	platform, err := domain.ParsePlatform(r.URL.Query().Get("platform"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	// Unlike create, an absent platform filter means all platforms.
	if r.URL.Query().Get("platform") == "" {
		platform = ""
	}

	result, err := h.customerUC.List(r.Context(), usecase.ListInput{
		AppID:    appID,
		Page:     intQuery(r, "page", 1),
		Size:     intQuery(r, "size", 50),
		Platform: platform,
		Search:   r.URL.Query().Get("search"),
	})
	if err != nil {
		h.writeError(w, err)
		return
	}

	customers := make([]customerResponse, 0, len(result.Customers))
	for _, c := range result.Customers {
		customers = append(customers, toCustomerResponse(c))
	}
	response.JSON(w, http.StatusOK, map[string]interface{}{
		"customers":   customers,
		"total":       result.Total,
		"page":        result.Page,
		"size":        result.Size,
		"total_pages": result.TotalPages,
	})
}

// Get handles GET /customers/{id}.
func (h *CustomerHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.customerID(w, r)
	if !ok {
		return
	}
	customer, err := h.customerUC.GetByID(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, toCustomerResponse(customer))
}

// GetByPlatformID handles GET /customers/platform-id/{platformID}?app_id=...
// Used by the webhook service to look up a contact by sender ID.
func (h *CustomerHandler) GetByPlatformID(w http.ResponseWriter, r *http.Request) {
	appID, err := uuid.Parse(r.URL.Query().Get("app_id"))
	if err != nil {
		response.Error(w, http.StatusBadRequest, "app_id query parameter is required")
		return
	}
	platform, err := domain.ParsePlatform(r.URL.Query().Get("platform"))
	if err != nil {
		h.writeError(w, err)
		return
	}

	customer, err := h.customerUC.GetByPlatformID(r.Context(), appID, platform, chi.URLParam(r, "platformID"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, toCustomerResponse(customer))
}

type updateCustomerRequest struct {
	FirstName      *string                `json:"first_name"`
	LastName       *string                `json:"last_name"`
	ProfilePicURL  *string                `json:"profile_pic_url"`
	Email          *string                `json:"email"`
	Phone          *string                `json:"phone"`
	CustomMetadata map[string]interface{} `json:"custom_metadata"`
	AccessToken    *string                `json:"access_token"`
	IsActive       *bool                  `json:"is_active"`
	IsBlocked      *bool                  `json:"is_blocked"`
}

// Update handles PUT /customers/{id}. Absent fields are left untouched.
func (h *CustomerHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.customerID(w, r)
	if !ok {
		return
	}

	var req updateCustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	customer, err := h.customerUC.Update(r.Context(), id, &domain.CustomerPatch{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		ProfilePicURL:  req.ProfilePicURL,
		Email:          req.Email,
		Phone:          req.Phone,
		CustomMetadata: req.CustomMetadata,
		AccessToken:    req.AccessToken,
		IsActive:       req.IsActive,
		IsBlocked:      req.IsBlocked,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, toCustomerResponse(customer))
}

// Delete handles DELETE /customers/{id}.
func (h *CustomerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.customerID(w, r)
	if !ok {
		return
	}
	if err := h.customerUC.Delete(r.Context(), id); err != nil {
		h.writeError(w, err)
		return
	}
	response.NoContent(w)
}

// Block handles POST /customers/{id}/block.
func (h *CustomerHandler) Block(w http.ResponseWriter, r *http.Request) {
	h.setBlocked(w, r, true)
}

// Unblock handles POST /customers/{id}/unblock.
func (h *CustomerHandler) Unblock(w http.ResponseWriter, r *http.Request) {
	h.setBlocked(w, r, false)
}

func (h *CustomerHandler) setBlocked(w http.ResponseWriter, r *http.Request, blocked bool) {
	id, ok := h.customerID(w, r)
	if !ok {
		return
	}

	var (
		customer *domain.Customer
		err      error
	)
	if blocked {
		customer, err = h.customerUC.Block(r.Context(), id)
	} else {
		customer, err = h.customerUC.Unblock(r.Context(), id)
	}
	if err != nil {
		h.writeError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, toCustomerResponse(customer))
}

// TouchInteraction handles PATCH /customers/{id}/interaction.
func (h *CustomerHandler) TouchInteraction(w http.ResponseWriter, r *http.Request) {
	id, ok := h.customerID(w, r)
	if !ok {
		return
	}
	customer, err := h.customerUC.TouchInteraction(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	response.Message(w, http.StatusOK, "interaction updated", map[string]interface{}{
		"last_interaction_at": customer.LastInteractionAt,
	})
}

// FetchProfile handles POST /customers/{id}/fetch-profile: the explicit
// refresh from the Graph API using the stored access token.
func (h *CustomerHandler) FetchProfile(w http.ResponseWriter, r *http.Request) {
	id, ok := h.customerID(w, r)
	if !ok {
		return
	}
	customer, err := h.customerUC.RefreshProfile(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, toCustomerResponse(customer))
}

// Health handles GET /health.
func (h *CustomerHandler) Health(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "customer-service",
	})
}

func (h *CustomerHandler) customerID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, http.StatusBadRequest, "invalid customer id")
		return uuid.Nil, false
	}
	return id, true
}

// writeError maps domain errors onto HTTP statuses.
func (h *CustomerHandler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		response.Error(w, http.StatusNotFound, "Customer not found")
	case errors.Is(err, domain.ErrConflict):
		response.Error(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrInvalidPlatform):
		response.Error(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNoAccessToken):
		response.Error(w, http.StatusBadRequest, "Customer does not have an access token")
	case errors.Is(err, domain.ErrProfileUnavailable):
		response.Error(w, http.StatusBadGateway, "Failed to fetch profile from Graph API")
	default:
		h.logger.Error("request failed", zap.Error(err))
		response.Error(w, http.StatusInternalServerError, "internal server error")
	}
}

func intQuery(r *http.Request, key string, fallback int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}
