package controllers

import (
	"net/http"
	"time"

	"campus-events/models"
	"campus-events/stores"
	"campus-events/utils"

	"github.com/gorilla/mux"
)

// ListNotifications returns the persisted notifications the caller has not
// dismissed yet.
func (nc NotificationController) ListNotifications(notifications *stores.Notifications) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, err := utils.VerifyToken(r)
		if err != nil {
			utils.RespondWithError(w, http.StatusUnauthorized, models.Error{Message: "Authentication required"})
			return
		}

		unread, err := notifications.UnreadFor(sess.CollegeID)
		if err != nil {
			respondStoreError(w, err)
			return
		}
		utils.ResponseJSON(w, unread)
	}
}

// MarkNotificationRead dismisses one notification for the caller only.
func (nc NotificationController) MarkNotificationRead(notifications *stores.Notifications) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, err := utils.VerifyToken(r)
		if err != nil {
			utils.RespondWithError(w, http.StatusUnauthorized, models.Error{Message: "Authentication required"})
			return
		}

		id, err := utils.StrToInt64(mux.Vars(r)["id"])
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "Invalid notification id"})
			return
		}

		if err := notifications.MarkRead(id, sess.CollegeID); err != nil {
			respondStoreError(w, err)
			return
		}
		utils.ResponseJSON(w, map[string]string{"message": "Notification marked as read."})
	}
}

// RecentNotifications returns the derived feed of events added in the last
// three days. Open to everyone; nothing here is persisted.
func (nc NotificationController) RecentNotifications(catalog *stores.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		created, err := catalog.Created()
		if err != nil {
			respondStoreError(w, err)
			return
		}
		utils.ResponseJSON(w, stores.DeriveRecent(created, 3, time.Now()))
	}
}
