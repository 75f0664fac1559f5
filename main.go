package main

import (
	"net/http"
	"os"

	"campus-events/controllers"
	"campus-events/driver"
	"campus-events/storage"
	"campus-events/stores"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Warn("No .env file found, relying on environment")
	}
	if os.Getenv("SECRET") == "" {
		logrus.Fatal("SECRET variable is not set")
	}

	db, driverName := driver.ConnectDB()
	defer db.Close()

	kv, err := storage.NewSQLKV(db, driverName)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to initialize storage")
	}

	identity := stores.NewIdentity(kv)
	ledger := stores.NewLedger(kv)
	notifications := stores.NewNotifications(kv)
	catalog := stores.NewCatalog(kv, ledger, notifications)

	controller := controllers.Controller{}
	eventController := controllers.EventController{}
	registrationController := controllers.RegistrationController{}
	notificationController := controllers.NotificationController{}

	router := mux.NewRouter()

	router.HandleFunc("/signup", controller.Signup(identity)).Methods("POST")
	router.HandleFunc("/login", controller.Login(identity)).Methods("POST")
	router.HandleFunc("/logout", controller.Logout(identity)).Methods("POST")
	router.HandleFunc("/me", controller.Me(identity, ledger)).Methods("GET")

	router.HandleFunc("/events", eventController.ListEvents(catalog)).Methods("GET")
	router.HandleFunc("/events/upcoming", eventController.UpcomingEvents(catalog)).Methods("GET")
	router.HandleFunc("/events/create", eventController.CreateEvent(catalog)).Methods("POST")
	router.HandleFunc("/events/{id}", eventController.GetEvent(catalog)).Methods("GET")
	router.HandleFunc("/events/{id}", eventController.DeleteEvent(catalog)).Methods("DELETE")

	router.HandleFunc("/events/{id}/register", registrationController.RegisterForEvent(ledger, catalog)).Methods("POST")
	router.HandleFunc("/events/{id}/registrations", registrationController.ListEventRegistrations(ledger, catalog)).Methods("GET")
	router.HandleFunc("/events/{id}/registrations/export", registrationController.DownloadRegistrations(ledger, catalog)).Methods("GET")
	router.HandleFunc("/registrations/my", registrationController.MyRegistrations(ledger)).Methods("GET")

	router.HandleFunc("/notifications", notificationController.ListNotifications(notifications)).Methods("GET")
	router.HandleFunc("/notifications/recent", notificationController.RecentNotifications(catalog)).Methods("GET")
	router.HandleFunc("/notifications/{id}/read", notificationController.MarkNotificationRead(notifications)).Methods("POST")

	handler := controllers.Logging(controllers.Recovery(router))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	logrus.WithField("port", port).Info("Server started")
	logrus.Fatal(http.ListenAndServe(":"+port, handler))
}
