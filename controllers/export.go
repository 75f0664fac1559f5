package controllers

import (
	"encoding/csv"
	"fmt"
	"io"
	"net/http"

	"campus-events/models"
	"campus-events/stores"
	"campus-events/utils"

	"github.com/gorilla/mux"
)

// exportHeader is the fixed first row of the registration export.
var exportHeader = []string{"Name", "College ID", "Branch", "Year", "Section", "Email", "Phone", "Registration Date"}

// WriteRegistrationsCSV renders registrations as delimited text: the fixed
// header row, then one row per registration with the registration date as a
// short locale date. encoding/csv quotes fields containing delimiters, so
// free-text fields cannot corrupt the rows.
func WriteRegistrationsCSV(w io.Writer, regs []models.Registration) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(exportHeader); err != nil {
		return err
	}
	for _, reg := range regs {
		row := []string{
			reg.Name,
			reg.CollegeID,
			reg.Branch,
			reg.Year,
			reg.Section,
			reg.Email,
			reg.Phone,
			models.LocaleDate(reg.RegistrationDate),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// DownloadRegistrations streams the CSV export for one event. Restricted to
// the faculty account that created the event.
func (rc RegistrationController) DownloadRegistrations(ledger *stores.Ledger, catalog *stores.Catalog) http.HandlerFunc {
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
			utils.RespondWithError(w, http.StatusForbidden, models.Error{Message: "Only the creating faculty account can export registrations"})
			return
		}

		regs, err := ledger.ListForEvent(id)
		if err != nil {
			respondStoreError(w, err)
			return
		}

		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s_registrations.csv", event.Title))
		if err := WriteRegistrationsCSV(w, regs); err != nil {
			respondStoreError(w, err)
		}
	}
}
