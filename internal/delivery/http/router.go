package http

import (
	"net/http"

	"doctor-registration/internal/delivery/http/handler"
	"doctor-registration/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router              *mux.Router
	registrationHandler *handler.RegistrationHandler
	submissionHandler   *handler.SubmissionHandler
	auditLogHandler     *handler.AuditLogHandler
	corsMiddleware      *middleware.CORSMiddleware
	loggingMiddleware   *middleware.LoggingMiddleware
}

// NewRouter wires the HTTP surface. submissionHandler and auditLogHandler may
// be nil when submissions are not stored in postgres.
func NewRouter(
	registrationHandler *handler.RegistrationHandler,
	submissionHandler *handler.SubmissionHandler,
	auditLogHandler *handler.AuditLogHandler,
	corsMiddleware *middleware.CORSMiddleware,
	loggingMiddleware *middleware.LoggingMiddleware,
) *Router {
	return &Router{
		router:              mux.NewRouter(),
		registrationHandler: registrationHandler,
		submissionHandler:   submissionHandler,
		auditLogHandler:     auditLogHandler,
		corsMiddleware:      corsMiddleware,
		loggingMiddleware:   loggingMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	api.HandleFunc("/catalog", r.registrationHandler.GetCatalog).Methods(http.MethodGet)

	// Registration wizard
	api.HandleFunc("/registrations", r.registrationHandler.CreateRegistration).Methods(http.MethodPost)
	reg := api.PathPrefix("/registrations/{id}").Subrouter()
	reg.HandleFunc("", r.registrationHandler.GetRegistration).Methods(http.MethodGet)
	reg.HandleFunc("/sections/{section}", r.registrationHandler.UpdateSection).Methods(http.MethodPatch)
	reg.HandleFunc("/attachments/{field}", r.registrationHandler.SetAttachment).Methods(http.MethodPut)
	reg.HandleFunc("/attachments/{field}", r.registrationHandler.DeleteAttachment).Methods(http.MethodDelete)

	// Clinics
	reg.HandleFunc("/clinics", r.registrationHandler.AddClinic).Methods(http.MethodPost)
	reg.HandleFunc("/clinics/{clinicId}", r.registrationHandler.UpdateClinic).Methods(http.MethodPut)
	reg.HandleFunc("/clinics/{clinicId}", r.registrationHandler.RemoveClinic).Methods(http.MethodDelete)
	reg.HandleFunc("/clinics/{clinicId}/primary", r.registrationHandler.SetPrimaryClinic).Methods(http.MethodPost)
	reg.HandleFunc("/clinics/{clinicId}/resolve-address", r.registrationHandler.ResolveClinicAddress).Methods(http.MethodPost)

	// Specialization and charges
	reg.HandleFunc("/services/toggle", r.registrationHandler.ToggleService).Methods(http.MethodPost)
	reg.HandleFunc("/services/custom", r.registrationHandler.AddCustomService).Methods(http.MethodPost)
	reg.HandleFunc("/payment-methods/{method}/toggle", r.registrationHandler.TogglePaymentMethod).Methods(http.MethodPost)

	// Schedule
	reg.HandleFunc("/schedule/copy", r.registrationHandler.CopySchedule).Methods(http.MethodPost)
	reg.HandleFunc("/schedule/{day}/working", r.registrationHandler.SetWorkingDay).Methods(http.MethodPut)
	reg.HandleFunc("/schedule/{day}/hours", r.registrationHandler.SetWorkHours).Methods(http.MethodPut)
	reg.HandleFunc("/schedule/{day}/breaks", r.registrationHandler.AddBreak).Methods(http.MethodPost)
	reg.HandleFunc("/schedule/{day}/breaks/{index}", r.registrationHandler.UpdateBreak).Methods(http.MethodPut)
	reg.HandleFunc("/schedule/{day}/breaks/{index}", r.registrationHandler.RemoveBreak).Methods(http.MethodDelete)
	reg.HandleFunc("/schedule/{day}/online-slots", r.registrationHandler.AddOnlineSlot).Methods(http.MethodPost)
	reg.HandleFunc("/schedule/{day}/online-slots/{index}", r.registrationHandler.UpdateOnlineSlot).Methods(http.MethodPut)
	reg.HandleFunc("/schedule/{day}/online-slots/{index}", r.registrationHandler.RemoveOnlineSlot).Methods(http.MethodDelete)

	// Mobile verification
	reg.HandleFunc("/mobile/send-code", r.registrationHandler.SendMobileCode).Methods(http.MethodPost)
	reg.HandleFunc("/mobile/verify", r.registrationHandler.VerifyMobileCode).Methods(http.MethodPost)

	// Navigation and submission
	reg.HandleFunc("/next", r.registrationHandler.NextStep).Methods(http.MethodPost)
	reg.HandleFunc("/previous", r.registrationHandler.PreviousStep).Methods(http.MethodPost)
	reg.HandleFunc("/steps/{step}", r.registrationHandler.GoToStep).Methods(http.MethodPost)
	reg.HandleFunc("/submit", r.registrationHandler.Submit).Methods(http.MethodPost)

	// Stored submissions (postgres transport only)
	if r.submissionHandler != nil {
		api.HandleFunc("/submissions", r.submissionHandler.GetAllSubmissions).Methods(http.MethodGet)
		api.HandleFunc("/submissions/{id}", r.submissionHandler.GetSubmission).Methods(http.MethodGet)
	}
	if r.auditLogHandler != nil {
		api.HandleFunc("/submissions/{id}/audit-logs", r.auditLogHandler.GetSubmissionAuditLogs).Methods(http.MethodGet)
		api.HandleFunc("/audit-logs", r.auditLogHandler.GetAllAuditLogs).Methods(http.MethodGet)
		api.HandleFunc("/audit-logs/{id}", r.auditLogHandler.GetAuditLog).Methods(http.MethodGet)
	}

	r.router.Use(r.loggingMiddleware.Handle)
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
