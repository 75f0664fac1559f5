package controllers

import (
	"encoding/json"
	"net/http"
	"time"

	"campus-events/models"
	"campus-events/stores"
	"campus-events/utils"
)

// Signup registers a new account.
func (c Controller) Signup(identity *stores.Identity) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input models.SignupInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "Invalid request body."})
			return
		}

		user, err := identity.Register(input)
		if err != nil {
			respondStoreError(w, err)
			return
		}

		user.Password = ""
		utils.ResponseJSON(w, map[string]interface{}{
			"message": "Your account has been created. Please login to continue.",
			"user":    user,
		})
	}
}

// Login checks the credential triple and issues a bearer token. The session
// marker is set as a side effect of the store call.
func (c Controller) Login(identity *stores.Identity) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input struct {
			CollegeID string `json:"collegeId"`
			Password  string `json:"password"`
			Role      string `json:"role"`
		}
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "Invalid request body."})
			return
		}

		sess, err := identity.Login(input.CollegeID, input.Password, input.Role)
		if err != nil {
			respondStoreError(w, err)
			return
		}

		token, err := utils.GenerateToken(sess, 24*time.Hour)
		if err != nil {
			respondStoreError(w, err)
			return
		}

		utils.ResponseJSON(w, map[string]interface{}{
			"token":   token,
			"session": sess,
		})
	}
}

// Logout clears the session marker unconditionally.
func (c Controller) Logout(identity *stores.Identity) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := identity.Logout(); err != nil {
			respondStoreError(w, err)
			return
		}
		utils.ResponseJSON(w, map[string]string{"message": "Logged out successfully."})
	}
}

// Me returns the account behind the bearer token, with the caller's own
// registrations, for the profile view.
func (c Controller) Me(identity *stores.Identity, ledger *stores.Ledger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, err := utils.VerifyToken(r)
		if err != nil {
			utils.RespondWithError(w, http.StatusUnauthorized, models.Error{Message: "Authentication required"})
			return
		}

		user, ok, err := identity.Lookup(sess.CollegeID)
		if err != nil {
			respondStoreError(w, err)
			return
		}
		if !ok {
			utils.RespondWithError(w, http.StatusNotFound, models.Error{Message: "Account not found"})
			return
		}

		regs, err := ledger.ListForAccount(sess.CollegeID)
		if err != nil {
			respondStoreError(w, err)
			return
		}

		user.Password = ""
		utils.ResponseJSON(w, map[string]interface{}{
			"user":          user,
			"registrations": regs,
		})
	}
}
