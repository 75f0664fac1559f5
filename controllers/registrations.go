package controllers

import (
	"encoding/json"
	"net/http"

	"campus-events/models"
	"campus-events/stores"
	"campus-events/utils"

	"github.com/gorilla/mux"
)

// RegisterForEvent signs the logged-in student up for an event.
func (rc RegistrationController) RegisterForEvent(ledger *stores.Ledger, catalog *stores.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, err := utils.VerifyToken(r)
		if err != nil {
			utils.RespondWithError(w, http.StatusUnauthorized, models.Error{Message: "Please login to register for events."})
			return
		}

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

		var input models.RegistrationInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "Invalid request body."})
			return
		}

		reg, err := ledger.Register(sess, event, input)
		if err != nil {
			respondStoreError(w, err)
			return
		}

		utils.ResponseJSON(w, map[string]interface{}{
			"message":      "You have been registered for the event.",
			"registration": reg,
		})
	}
}

// ListEventRegistrations returns the sign-ups for one event. Restricted to
// the faculty account that created the event.
func (rc RegistrationController) ListEventRegistrations(ledger *stores.Ledger, catalog *stores.Catalog) http.HandlerFunc {
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

		event, ok, err := catalog.Get(id)
		if err != nil {
			respondStoreError(w, err)
			return
		}
		if !ok {
			utils.RespondWithError(w, http.StatusNotFound, models.Error{Message: "Event not found"})
			return
		}
		if event.CreatedBy != sess.CollegeID {
			utils.RespondWithError(w, http.StatusForbidden, models.Error{Message: "Only the creating faculty account can view registrations"})
			return
		}

		regs, err := ledger.ListForEvent(id)
		if err != nil {
			respondStoreError(w, err)
			return
		}
		utils.ResponseJSON(w, regs)
	}
}

// MyRegistrations returns the caller's own sign-ups.
func (rc RegistrationController) MyRegistrations(ledger *stores.Ledger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, err := utils.VerifyToken(r)
		if err != nil {
			utils.RespondWithError(w, http.StatusUnauthorized, models.Error{Message: "Authentication required"})
			return
		}

		regs, err := ledger.ListForAccount(sess.CollegeID)
		if err != nil {
			respondStoreError(w, err)
			return
		}
		utils.ResponseJSON(w, regs)
	}
}
