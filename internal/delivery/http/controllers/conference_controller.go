package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"conferencehub/internal/delivery/http/helpers"
	"conferencehub/internal/domain"
)

// ConferenceController serves the catalog CRUD endpoints used by the browsing
// and admin surfaces.
type ConferenceController struct {
	Logger  *slog.Logger
	Service domain.CatalogService
}

func NewConferenceController(logger *slog.Logger, svc domain.CatalogService) *ConferenceController {
	return &ConferenceController{
		Logger:  logger,
		Service: svc,
	}
}

// CreateConferenceRequest is the request body for POST /api/conferences.
// Only name is required; omitted fields receive server-side defaults.
type CreateConferenceRequest struct {
	ID               string              `json:"id"`
	Name             string              `json:"name"`
	Description      string              `json:"description"`
	Date             string              `json:"date"`
	Location         string              `json:"location"`
	Price            float64             `json:"price"`
	Category         domain.CategoryList `json:"category"`
	ImageURL         string              `json:"imageUrl"`
	MaxAttendees     int                 `json:"maxAttendees"`
	CurrentAttendees int                 `json:"currentAttendees"`
	IsFeatured       bool                `json:"isFeatured"`
	Status           domain.Status       `json:"status"`
}

// Validate implements Validator.
func (c CreateConferenceRequest) Validate() []string {
	var errs []string
	if c.Name == "" {
		errs = append(errs, "name is required")
	}
	if c.Price < 0 {
		errs = append(errs, "price must be non-negative")
	}
	if c.Status != "" && !c.Status.IsValid() {
		errs = append(errs, "status must be one of Open, Closed, Sold Out")
	}
	return errs
}

// ListConferences godoc
// @Summary List conferences
// @Description Returns the catalog, optionally narrowed by filter query parameters. All filter dimensions are combined with AND; an absent dimension matches everything.
// @Tags conferences
// @Produce json
// @Param search query string false "Case-insensitive substring match on name, description, or location"
// @Param category query []string false "Category membership (any of)"
// @Param status query []string false "Status membership (Open, Closed, Sold Out)"
// @Param date query string false "Exact calendar date (YYYY-MM-DD)"
// @Param date_from query string false "Earliest calendar date"
// @Param date_to query string false "Latest calendar date"
// @Param price_min query number false "Minimum price, inclusive"
// @Param price_max query number false "Maximum price, inclusive"
// @Success 200 {array} domain.Conference
// @Failure 500 {object} helpers.ErrorResponse
// @Router /conferences [get]
func (c *ConferenceController) ListConferences(w http.ResponseWriter, r *http.Request) {
	spec := helpers.ParseFilterSpec(r)
	confs, err := c.Service.ListConferences(r.Context(), spec)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, "failed to list conferences")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, confs)
}

// CreateConference godoc
// @Summary Create a conference
// @Description Creates a conference record. The server assigns a UUID id when the body omits one, and applies defaults: price 0, category ["General"], currentAttendees 0, isFeatured false, status "Open".
// @Tags conferences
// @Accept json
// @Produce json
// @Param conference body CreateConferenceRequest true "Conference fields"
// @Success 200 {object} domain.Conference
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /conferences [post]
func (c *ConferenceController) CreateConference(w http.ResponseWriter, r *http.Request) {
	var req CreateConferenceRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	conf := &domain.Conference{
		ID:               req.ID,
		Name:             req.Name,
		Description:      req.Description,
		Date:             req.Date,
		Location:         req.Location,
		Price:            req.Price,
		Category:         req.Category,
		ImageURL:         req.ImageURL,
		MaxAttendees:     req.MaxAttendees,
		CurrentAttendees: req.CurrentAttendees,
		IsFeatured:       req.IsFeatured,
		Status:           req.Status,
	}
	if err := c.Service.CreateConference(r.Context(), conf); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			helpers.WriteJSONError(w, http.StatusBadRequest, err.Error())
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, "failed to create conference")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, conf)
}

// ConferenceDetailResponse is the body for GET /api/conferences/{id}: the
// conference with speakers expanded, plus the derived promotional tag.
type ConferenceDetailResponse struct {
	*domain.Conference
	PromoTag string `json:"promoTag,omitempty"`
}

// GetConference godoc
// @Summary Get a conference by id
// @Description Returns the conference with its speakers expanded. December dates carry a promotional display tag in promoTag.
// @Tags conferences
// @Produce json
// @Param id path string true "Conference ID"
// @Success 200 {object} ConferenceDetailResponse
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 404 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /conferences/{id} [get]
func (c *ConferenceController) GetConference(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, "Conference ID is required.")
		return
	}
	conf, err := c.Service.GetConference(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, "conference not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, "failed to get conference")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, ConferenceDetailResponse{
		Conference: conf,
		PromoTag:   domain.PromoTag(conf.Date),
	})
}

// UpdateConferenceRequest is the request body for PUT /api/conferences/{id}.
// Every editable field overwrites the stored value.
type UpdateConferenceRequest struct {
	Name        string              `json:"name"`
	Description string              `json:"description"`
	Date        string              `json:"date"`
	Location    string              `json:"location"`
	Price       float64             `json:"price"`
	Category    domain.CategoryList `json:"category"`
	Status      domain.Status       `json:"status"`
}

// Validate implements Validator.
func (u UpdateConferenceRequest) Validate() []string {
	var errs []string
	if u.Name == "" {
		errs = append(errs, "name is required")
	}
	if u.Price < 0 {
		errs = append(errs, "price must be non-negative")
	}
	if u.Status != "" && !u.Status.IsValid() {
		errs = append(errs, "status must be one of Open, Closed, Sold Out")
	}
	return errs
}

// UpdateConference godoc
// @Summary Update a conference
// @Description Full overwrite of name, date, location, description, price, category, and status. Concurrent edits are last-write-wins; there is no conflict detection.
// @Tags conferences
// @Accept json
// @Produce json
// @Param id path string true "Conference ID"
// @Param conference body UpdateConferenceRequest true "Replacement field values"
// @Success 200 {object} domain.Conference
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 404 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /conferences/{id} [put]
func (c *ConferenceController) UpdateConference(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, "Conference ID is required.")
		return
	}
	var req UpdateConferenceRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	updated, err := c.Service.UpdateConference(r.Context(), id, domain.ConferenceUpdate{
		Name:        req.Name,
		Description: req.Description,
		Date:        req.Date,
		Location:    req.Location,
		Price:       req.Price,
		Category:    req.Category,
		Status:      req.Status,
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, "conference not found")
			return
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			helpers.WriteJSONError(w, http.StatusBadRequest, err.Error())
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, "failed to update conference")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, updated)
}

// DeleteConference godoc
// @Summary Delete a conference
// @Description Hard delete. Speakers owned by the conference are removed with it. A failed delete leaves the catalog unchanged.
// @Tags conferences
// @Produce json
// @Param id path string true "Conference ID"
// @Success 200 {object} helpers.SuccessResponse
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 404 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /conferences/{id} [delete]
func (c *ConferenceController) DeleteConference(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, "Conference ID is required.")
		return
	}
	if err := c.Service.DeleteConference(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, "conference not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, "Failed to delete conference.")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, helpers.SuccessResponse{Success: true})
}
