package controllers

import (
	"net/http"

	"campus-events/models"
	"campus-events/stores"
	"campus-events/utils"

	"github.com/gorilla/mux"
)

// ListEvents returns the catalog filtered by the category and q query
// parameters. No category means "all".
func (ec EventController) ListEvents(catalog *stores.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		category := r.URL.Query().Get("category")
		if category == "" {
			category = models.CategoryAll
		}
		query := r.URL.Query().Get("q")

		events, err := catalog.List()
		if err != nil {
			respondStoreError(w, err)
			return
		}

		utils.ResponseJSON(w, stores.FilterAndSearch(events, category, query))
	}
}

func (ec EventController) GetEvent(catalog *stores.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := utils.StrToInt64(mux.Vars(r)["id"])
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "Invalid event id"})
			return
		}

		event, ok, err := catalog.Get(id)
		if err != nil {
			respondStoreError(w, err)
			return
		}
		if !ok {
			utils.RespondWithError(w, http.StatusNotFound, models.Error{Message: "Event not found"})
			return
		}
		utils.ResponseJSON(w, event)
	}
}

// UpcomingEvents returns the next five created events dated today or later.
func (ec EventController) UpcomingEvents(catalog *stores.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		events, err := catalog.Upcoming(5)
		if err != nil {
			respondStoreError(w, err)
			return
		}
		utils.ResponseJSON(w, events)
	}
}

// CreateEvent accepts a multipart form from a faculty account. The poster
// file is encoded into the inline payload stored with the event.
func (ec EventController) CreateEvent(catalog *stores.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, err := utils.VerifyToken(r)
		if err != nil {
			utils.RespondWithError(w, http.StatusUnauthorized, models.Error{Message: "Authentication required"})
			return
		}
		if sess.Role != models.RoleFaculty {
			utils.RespondWithError(w, http.StatusForbidden, models.Error{Message: "Only faculty accounts can create events"})
			return
		}

		if err := r.ParseMultipartForm(10 << 20); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "Invalid form data"})
			return
		}

		input := models.EventInput{
			Title:                r.FormValue("title"),
			Category:             r.FormValue("category"),
			Date:                 r.FormValue("date"),
			Time:                 r.FormValue("time"),
			Venue:                r.FormValue("venue"),
			Description:          r.FormValue("description"),
			OrganizedBy:          r.FormValue("organizedBy"),
			FacultyCoordinator:   r.FormValue("facultyCoordinator"),
			StudentCoordinator:   r.FormValue("studentCoordinator"),
			RegistrationDeadline: r.FormValue("registrationDeadline"),
		}

		if raw := r.FormValue("maxParticipants"); raw != "" {
			n, err := utils.StrToInt64(raw)
			if err != nil {
				utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "Invalid maxParticipants format"})
				return
			}
			input.MaxParticipants = int(n)
		}

		file, header, err := r.FormFile("poster")
		if err == nil {
			defer file.Close()
			poster, encErr := utils.EncodePoster(file, header)
			if encErr != nil {
				utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: encErr.Error()})
				return
			}
			input.Poster = poster
		}

		event, err := catalog.Create(input, sess.CollegeID)
		if err != nil {
			respondStoreError(w, err)
			return
		}

		utils.ResponseJSON(w, event)
	}
}

// DeleteEvent removes an event the requesting faculty account created,
// cascading deletion of its registrations.
func (ec EventController) DeleteEvent(catalog *stores.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, err := utils.VerifyToken(r)
		if err != nil {
			utils.RespondWithError(w, http.StatusUnauthorized, models.Error{Message: "Authentication required"})
			return
		}

		id, err := utils.StrToInt64(mux.Vars(r)["id"])
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "Invalid event id"})
			return
		}

		if err := catalog.Delete(id, sess.CollegeID); err != nil {
			respondStoreError(w, err)
			return
		}
		utils.ResponseJSON(w, map[string]string{"message": "The event and all its registrations have been removed."})
	}
}
