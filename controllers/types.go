package controllers

import (
	"errors"
	"net/http"

	"campus-events/models"
	"campus-events/utils"

	"github.com/sirupsen/logrus"
)

type Controller struct{}

type EventController struct{}

type RegistrationController struct{}

type NotificationController struct{}

// respondStoreError maps domain errors from the stores onto HTTP statuses.
func respondStoreError(w http.ResponseWriter, err error) {
	var verr *models.ValidationError
	var derr *models.DuplicateIDError
	var aerr *models.AuthorizationError

	switch {
	case errors.As(err, &verr):
		utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: verr.Error()})
	case errors.As(err, &derr):
		utils.RespondWithError(w, http.StatusConflict, models.Error{Message: derr.Error()})
	case errors.As(err, &aerr):
		utils.RespondWithError(w, http.StatusForbidden, models.Error{Message: aerr.Error()})
	case errors.Is(err, models.ErrInvalidCredentials):
		utils.RespondWithError(w, http.StatusUnauthorized, models.Error{Message: "Invalid credentials. Please try again."})
	case errors.Is(err, models.ErrAlreadyRegistered):
		utils.RespondWithError(w, http.StatusConflict, models.Error{Message: err.Error()})
	case errors.Is(err, models.ErrEventNotFound), errors.Is(err, models.ErrNotificationNotFound):
		utils.RespondWithError(w, http.StatusNotFound, models.Error{Message: err.Error()})
	default:
		logrus.WithError(err).Error("Store operation failed")
		utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: "Server error."})
	}
}
