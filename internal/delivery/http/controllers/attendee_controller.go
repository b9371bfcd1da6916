package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"conferencehub/internal/delivery/http/helpers"
	"conferencehub/internal/domain"
)

// AttendeeController serves registration, favorites, and newsletter signup.
type AttendeeController struct {
	Logger  *slog.Logger
	Service domain.AttendeeService
}

func NewAttendeeController(logger *slog.Logger, svc domain.AttendeeService) *AttendeeController {
	return &AttendeeController{
		Logger:  logger,
		Service: svc,
	}
}

// RegisterRequest is the request body for POST /api/conferences/{id}/register.
type RegisterRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Company string `json:"company"`
}

// Validate implements Validator.
func (r RegisterRequest) Validate() []string {
	var errs []string
	if r.Name == "" {
		errs = append(errs, "name is required")
	}
	if r.Email == "" {
		errs = append(errs, "email is required")
	}
	return errs
}

// Register godoc
// @Summary Register for a conference
// @Description Records a registration and marks the conference registered in the attendee's ledger. Registration does not decrement capacity; attendee counts stay display-only.
// @Tags attendees
// @Accept json
// @Produce json
// @Param id path string true "Conference ID"
// @Param registrant body RegisterRequest true "Registrant details"
// @Success 200 {object} domain.Registration
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 404 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /conferences/{id}/register [post]
func (c *AttendeeController) Register(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, "Conference ID is required.")
		return
	}
	var req RegisterRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	reg, err := c.Service.Register(r.Context(), id, req.Name, req.Email, req.Company)
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
		helpers.WriteJSONError(w, http.StatusInternalServerError, "failed to register")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, reg)
}

// ListFavorites godoc
// @Summary List favorite conference ids
// @Tags attendees
// @Produce json
// @Success 200 {array} string
// @Router /favorites [get]
func (c *AttendeeController) ListFavorites(w http.ResponseWriter, r *http.Request) {
	favorites := c.Service.Favorites()
	if favorites == nil {
		favorites = []string{}
	}
	helpers.WriteJSON(w, http.StatusOK, favorites)
}

// ToggleFavoriteResponse is the body for POST /api/favorites/{id}.
type ToggleFavoriteResponse struct {
	Favorite bool `json:"favorite"`
}

// ToggleFavorite godoc
// @Summary Toggle a favorite
// @Description Flips membership of the conference in the favorite set and reports the resulting state. Toggling twice restores the original state.
// @Tags attendees
// @Produce json
// @Param id path string true "Conference ID"
// @Success 200 {object} ToggleFavoriteResponse
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /favorites/{id} [post]
func (c *AttendeeController) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, "Conference ID is required.")
		return
	}
	favorite, err := c.Service.ToggleFavorite(id)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			helpers.WriteJSONError(w, http.StatusBadRequest, err.Error())
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, "failed to toggle favorite")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, ToggleFavoriteResponse{Favorite: favorite})
}

// SubscribeRequest is the request body for POST /api/subscriptions.
type SubscribeRequest struct {
	Email string `json:"email"`
}

// Validate implements Validator.
func (s SubscribeRequest) Validate() []string {
	var errs []string
	if s.Email == "" {
		errs = append(errs, "email is required")
	}
	return errs
}

// SubscribeResponse is the body for POST /api/subscriptions.
type SubscribeResponse struct {
	Subscribed bool `json:"subscribed"`
}

// Subscribe godoc
// @Summary Subscribe to the newsletter
// @Description Appends the email to the subscription log (deduplicated) and sends a best-effort confirmation email.
// @Tags attendees
// @Accept json
// @Produce json
// @Param subscription body SubscribeRequest true "Email to subscribe"
// @Success 200 {object} SubscribeResponse
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /subscriptions [post]
func (c *AttendeeController) Subscribe(w http.ResponseWriter, r *http.Request) {
	var req SubscribeRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	if err := c.Service.Subscribe(r.Context(), req.Email); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			helpers.WriteJSONError(w, http.StatusBadRequest, err.Error())
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, "failed to subscribe")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, SubscribeResponse{Subscribed: true})
}
