package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	_ "conferencehub/docs"
	"conferencehub/internal/delivery/http/controllers"
)

// NewRouter initializes the HTTP router with all application routes
func NewRouter(conferenceController *controllers.ConferenceController, attendeeController *controllers.AttendeeController) *http.ServeMux {
	mux := http.NewServeMux()

	// Catalog
	mux.HandleFunc("GET /api/conferences", conferenceController.ListConferences)
	mux.HandleFunc("POST /api/conferences", conferenceController.CreateConference)
	mux.HandleFunc("GET /api/conferences/{id}", conferenceController.GetConference)
	mux.HandleFunc("PUT /api/conferences/{id}", conferenceController.UpdateConference)
	mux.HandleFunc("DELETE /api/conferences/{id}", conferenceController.DeleteConference)

	// Attendee
	mux.HandleFunc("POST /api/conferences/{id}/register", attendeeController.Register)
	mux.HandleFunc("GET /api/favorites", attendeeController.ListFavorites)
	mux.HandleFunc("POST /api/favorites/{id}", attendeeController.ToggleFavorite)
	mux.HandleFunc("POST /api/subscriptions", attendeeController.Subscribe)

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
