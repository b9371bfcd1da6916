package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"conferencehub/internal/delivery/http/helpers"
	"conferencehub/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAttendeeService implements domain.AttendeeService for handler tests.
type fakeAttendeeService struct {
	registerErr         error
	registerResult      *domain.Registration
	lastRegisterConfID  string
	lastRegisterName    string
	lastRegisterEmail   string
	lastRegisterCompany string
	toggleErr           error
	toggleResult        bool
	lastToggleID        string
	favoritesResult     []string
	registered          map[string]bool
	subscribeErr        error
	lastSubscribedEmail string
}

func (f *fakeAttendeeService) Register(ctx context.Context, conferenceID, name, email, company string) (*domain.Registration, error) {
	f.lastRegisterConfID = conferenceID
	f.lastRegisterName = name
	f.lastRegisterEmail = email
	f.lastRegisterCompany = company
	if f.registerErr != nil {
		return nil, f.registerErr
	}
	return f.registerResult, nil
}

func (f *fakeAttendeeService) ToggleFavorite(id string) (bool, error) {
	f.lastToggleID = id
	if f.toggleErr != nil {
		return false, f.toggleErr
	}
	return f.toggleResult, nil
}

func (f *fakeAttendeeService) Favorites() []string {
	return f.favoritesResult
}

func (f *fakeAttendeeService) IsRegistered(id string) bool {
	return f.registered[id]
}

func (f *fakeAttendeeService) Subscribe(ctx context.Context, email string) error {
	f.lastSubscribedEmail = email
	return f.subscribeErr
}

func TestAttendeeController_Register(t *testing.T) {
	reg := domain.NewRegistration("c1", "Grace", "grace@example.com", "Systems Inc", time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	reg.ID = "reg-1"

	tests := []struct {
		name       string
		id         string
		body       string
		fake       *fakeAttendeeService
		wantStatus int
		wantErrSub string
	}{
		{
			name:       "success",
			id:         "c1",
			body:       `{"name":"Grace","email":"grace@example.com","company":"Systems Inc"}`,
			fake:       &fakeAttendeeService{registerResult: reg},
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing id",
			id:         "",
			body:       `{"name":"Grace","email":"grace@example.com"}`,
			fake:       &fakeAttendeeService{},
			wantStatus: http.StatusBadRequest,
			wantErrSub: "Conference ID is required.",
		},
		{
			name:       "invalid json",
			id:         "c1",
			body:       `{invalid`,
			fake:       &fakeAttendeeService{},
			wantStatus: http.StatusBadRequest,
			wantErrSub: "invalid",
		},
		{
			name:       "missing name and email",
			id:         "c1",
			body:       `{}`,
			fake:       &fakeAttendeeService{},
			wantStatus: http.StatusBadRequest,
			wantErrSub: "name is required; email is required",
		},
		{
			name:       "conference not found",
			id:         "nope",
			body:       `{"name":"Grace","email":"grace@example.com"}`,
			fake:       &fakeAttendeeService{registerErr: domain.ErrNotFound},
			wantStatus: http.StatusNotFound,
			wantErrSub: "conference not found",
		},
		{
			name:       "malformed email rejected by service",
			id:         "c1",
			body:       `{"name":"Grace","email":"not-an-email"}`,
			fake:       &fakeAttendeeService{registerErr: domain.ErrInvalidInput},
			wantStatus: http.StatusBadRequest,
			wantErrSub: "invalid input",
		},
		{
			name:       "service error",
			id:         "c1",
			body:       `{"name":"Grace","email":"grace@example.com"}`,
			fake:       &fakeAttendeeService{registerErr: errors.New("db down")},
			wantStatus: http.StatusInternalServerError,
			wantErrSub: "failed to register",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := NewAttendeeController(testLogger, tt.fake)
			req := httptest.NewRequest(http.MethodPost, "/api/conferences/"+tt.id+"/register", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			req.SetPathValue("id", tt.id)
			rr := httptest.NewRecorder()

			ctrl.Register(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code, "status code")
			if tt.wantStatus == http.StatusOK {
				var got domain.Registration
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
				assert.Equal(t, "reg-1", got.ID)
				assert.Equal(t, "c1", got.ConferenceID)
				assert.Equal(t, "c1", tt.fake.lastRegisterConfID)
				assert.Equal(t, "Grace", tt.fake.lastRegisterName)
			} else {
				var errResp helpers.ErrorResponse
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&errResp))
				assert.Contains(t, errResp.Error, tt.wantErrSub)
			}
		})
	}
}

func TestAttendeeController_ListFavorites(t *testing.T) {
	tests := []struct {
		name      string
		favorites []string
		wantBody  string
	}{
		{"empty set encodes as empty array", nil, "[]\n"},
		{"favorites keep toggle order", []string{"c2", "c1"}, "[\"c2\",\"c1\"]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := NewAttendeeController(testLogger, &fakeAttendeeService{favoritesResult: tt.favorites})
			req := httptest.NewRequest(http.MethodGet, "/api/favorites", nil)
			rr := httptest.NewRecorder()

			ctrl.ListFavorites(rr, req)

			require.Equal(t, http.StatusOK, rr.Code)
			assert.JSONEq(t, tt.wantBody, rr.Body.String())
		})
	}
}

func TestAttendeeController_ToggleFavorite(t *testing.T) {
	tests := []struct {
		name         string
		id           string
		fake         *fakeAttendeeService
		wantStatus   int
		wantFavorite bool
		wantErrSub   string
	}{
		{
			name:         "toggle on",
			id:           "c1",
			fake:         &fakeAttendeeService{toggleResult: true},
			wantStatus:   http.StatusOK,
			wantFavorite: true,
		},
		{
			name:         "toggle off",
			id:           "c1",
			fake:         &fakeAttendeeService{toggleResult: false},
			wantStatus:   http.StatusOK,
			wantFavorite: false,
		},
		{
			name:       "missing id",
			id:         "",
			fake:       &fakeAttendeeService{},
			wantStatus: http.StatusBadRequest,
			wantErrSub: "Conference ID is required.",
		},
		{
			name:       "service error",
			id:         "c1",
			fake:       &fakeAttendeeService{toggleErr: errors.New("disk full")},
			wantStatus: http.StatusInternalServerError,
			wantErrSub: "failed to toggle favorite",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := NewAttendeeController(testLogger, tt.fake)
			req := httptest.NewRequest(http.MethodPost, "/api/favorites/"+tt.id, nil)
			req.SetPathValue("id", tt.id)
			rr := httptest.NewRecorder()

			ctrl.ToggleFavorite(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code, "status code")
			if tt.wantStatus == http.StatusOK {
				var resp ToggleFavoriteResponse
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.wantFavorite, resp.Favorite)
				assert.Equal(t, "c1", tt.fake.lastToggleID)
			} else {
				var errResp helpers.ErrorResponse
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&errResp))
				assert.Contains(t, errResp.Error, tt.wantErrSub)
			}
		})
	}
}

func TestAttendeeController_Subscribe(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		fake       *fakeAttendeeService
		wantStatus int
		wantErrSub string
		wantEmail  string
	}{
		{
			name:       "success",
			body:       `{"email":"dev@example.com"}`,
			fake:       &fakeAttendeeService{},
			wantStatus: http.StatusOK,
			wantEmail:  "dev@example.com",
		},
		{
			name:       "missing email",
			body:       `{}`,
			fake:       &fakeAttendeeService{},
			wantStatus: http.StatusBadRequest,
			wantErrSub: "email is required",
		},
		{
			name:       "malformed email rejected by service",
			body:       `{"email":"not-an-email"}`,
			fake:       &fakeAttendeeService{subscribeErr: domain.ErrInvalidInput},
			wantStatus: http.StatusBadRequest,
			wantErrSub: "invalid input",
		},
		{
			name:       "service error",
			body:       `{"email":"dev@example.com"}`,
			fake:       &fakeAttendeeService{subscribeErr: errors.New("disk full")},
			wantStatus: http.StatusInternalServerError,
			wantErrSub: "failed to subscribe",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := NewAttendeeController(testLogger, tt.fake)
			req := httptest.NewRequest(http.MethodPost, "/api/subscriptions", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rr := httptest.NewRecorder()

			ctrl.Subscribe(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code, "status code")
			if tt.wantStatus == http.StatusOK {
				var resp SubscribeResponse
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.True(t, resp.Subscribed)
				assert.Equal(t, tt.wantEmail, tt.fake.lastSubscribedEmail)
			} else {
				var errResp helpers.ErrorResponse
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&errResp))
				assert.Contains(t, errResp.Error, tt.wantErrSub)
			}
		})
	}
}
