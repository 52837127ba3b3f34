package http

import (
	"net/http"

	"orthocare-api/internal/delivery/http/handler"
	"orthocare-api/internal/delivery/http/middleware"
	"orthocare-api/internal/domain/entity"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

type Router struct {
	router              *mux.Router
	log                 *logrus.Logger
	authHandler         *handler.AuthHandler
	doctorHandler       *handler.DoctorHandler
	profileHandler      *handler.ProfileHandler
	patientHandler      *handler.PatientHandler
	supplierHandler     *handler.SupplierHandler
	stockHandler        *handler.StockHandler
	schedulingHandler   *handler.SchedulingHandler
	consultationHandler *handler.ConsultationHandler
	auditLogHandler     *handler.AuditLogHandler
	authMiddleware      *middleware.AuthMiddleware
	corsMiddleware      *middleware.CORSMiddleware
	rateLimitMiddleware *middleware.RateLimitMiddleware
	permissions         middleware.PermissionLookup
}

// Handlers groups the HTTP handlers mounted by the router.
type Handlers struct {
	Auth         *handler.AuthHandler
	Doctor       *handler.DoctorHandler
	Profile      *handler.ProfileHandler
	Patient      *handler.PatientHandler
	Supplier     *handler.SupplierHandler
	Stock        *handler.StockHandler
	Scheduling   *handler.SchedulingHandler
	Consultation *handler.ConsultationHandler
	AuditLog     *handler.AuditLogHandler
}

// NewRouter builds the API router. rateLimitMiddleware may be nil when
// rate limiting is disabled.
func NewRouter(
	log *logrus.Logger,
	handlers Handlers,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
	rateLimitMiddleware *middleware.RateLimitMiddleware,
	permissions middleware.PermissionLookup,
) *Router {
	return &Router{
		router:              mux.NewRouter(),
		log:                 log,
		authHandler:         handlers.Auth,
		doctorHandler:       handlers.Doctor,
		profileHandler:      handlers.Profile,
		patientHandler:      handlers.Patient,
		supplierHandler:     handlers.Supplier,
		stockHandler:        handlers.Stock,
		schedulingHandler:   handlers.Scheduling,
		consultationHandler: handlers.Consultation,
		auditLogHandler:     handlers.AuditLog,
		authMiddleware:      authMiddleware,
		corsMiddleware:      corsMiddleware,
		rateLimitMiddleware: rateLimitMiddleware,
		permissions:         permissions,
	}
}

// crud is the route set shared by the soft-deletable resources.
type crud struct {
	Create, GetAll, GetSimple, GetByID, Update, Remove http.HandlerFunc
}

func mountCRUD(r *mux.Router, prefix string, h crud, restore bool) {
	sub := r.PathPrefix(prefix).Subrouter()
	sub.HandleFunc("", h.Create).Methods(http.MethodPost)
	sub.HandleFunc("", h.GetAll).Methods(http.MethodGet)
	if h.GetSimple != nil {
		sub.HandleFunc("/simple", h.GetSimple).Methods(http.MethodGet)
	}
	sub.HandleFunc("/{id}", h.GetByID).Methods(http.MethodGet)
	sub.HandleFunc("/{id}", h.Update).Methods(http.MethodPatch, http.MethodPut)
	sub.HandleFunc("/{id}", h.Remove).Methods(http.MethodDelete)
	if restore {
		sub.HandleFunc("/{id}/restore", handler.Restore).Methods(http.MethodPatch)
	}
}

// Setup registers every route and returns the root handler. CORS, request
// logging and rate limiting wrap the router so they also see unmatched
// routes and preflight requests.
func (r *Router) Setup() http.Handler {
	api := r.router.PathPrefix("/api").Subrouter()

	// Public
	api.HandleFunc("/health", handler.Health).Methods(http.MethodGet)
	api.HandleFunc("/auth/login", r.authHandler.Login).Methods(http.MethodPost)

	// Everything else requires a session
	protected := api.NewRoute().Subrouter()
	protected.Use(r.authMiddleware.Authenticate)

	protected.HandleFunc("/auth/current-user", r.authHandler.CurrentUser).Methods(http.MethodGet)
	protected.HandleFunc("/auth/logout", r.authHandler.Logout).Methods(http.MethodPost)

	mountCRUD(protected, "/doctors", crud{
		Create:    r.doctorHandler.Create,
		GetAll:    r.doctorHandler.GetAll,
		GetSimple: r.doctorHandler.GetSimple,
		GetByID:   r.doctorHandler.GetByID,
		Update:    r.doctorHandler.Update,
		Remove:    r.doctorHandler.Remove,
	}, true)

	mountCRUD(protected, "/patients", crud{
		Create:    r.patientHandler.Create,
		GetAll:    r.patientHandler.GetAll,
		GetSimple: r.patientHandler.GetSimple,
		GetByID:   r.patientHandler.GetByID,
		Update:    r.patientHandler.Update,
		Remove:    r.patientHandler.Remove,
	}, true)

	mountCRUD(protected, "/suppliers", crud{
		Create:    r.supplierHandler.Create,
		GetAll:    r.supplierHandler.GetAll,
		GetSimple: r.supplierHandler.GetSimple,
		GetByID:   r.supplierHandler.GetByID,
		Update:    r.supplierHandler.Update,
		Remove:    r.supplierHandler.Remove,
	}, true)

	mountCRUD(protected, "/stocks", crud{
		Create:    r.stockHandler.Create,
		GetAll:    r.stockHandler.GetAll,
		GetSimple: r.stockHandler.GetSimple,
		GetByID:   r.stockHandler.GetByID,
		Update:    r.stockHandler.Update,
		Remove:    r.stockHandler.Remove,
	}, true)

	mountCRUD(protected, "/scheduling", crud{
		Create:    r.schedulingHandler.Create,
		GetAll:    r.schedulingHandler.GetAll,
		GetSimple: r.schedulingHandler.GetSimple,
		GetByID:   r.schedulingHandler.GetByID,
		Update:    r.schedulingHandler.Update,
		Remove:    r.schedulingHandler.Remove,
	}, false)

	mountCRUD(protected, "/consultations", crud{
		Create:  r.consultationHandler.Create,
		GetAll:  r.consultationHandler.GetAll,
		GetByID: r.consultationHandler.GetByID,
		Update:  r.consultationHandler.Update,
		Remove:  r.consultationHandler.Remove,
	}, false)

	// Categories
	protected.HandleFunc("/categories", r.stockHandler.GetCategories).Methods(http.MethodGet)
	protected.HandleFunc("/categories/simple", r.stockHandler.GetCategories).Methods(http.MethodGet)

	// Profiles and permissions
	protected.HandleFunc("/profiles", r.profileHandler.GetAll).Methods(http.MethodGet)
	protected.HandleFunc("/profiles/simple", r.profileHandler.GetSimple).Methods(http.MethodGet)
	protected.HandleFunc("/profiles/{id}", r.profileHandler.GetByID).Methods(http.MethodGet)
	protected.HandleFunc("/permissions", r.profileHandler.GetPermissions).Methods(http.MethodGet)

	// Audit logs
	audit := protected.PathPrefix("/audit-logs").Subrouter()
	audit.Use(middleware.RequirePermission(r.permissions, r.log, entity.PermissionAuditLogsView))
	audit.HandleFunc("", r.auditLogHandler.GetAll).Methods(http.MethodGet)
	audit.HandleFunc("/{id:[0-9]+}", r.auditLogHandler.GetByID).Methods(http.MethodGet)

	var h http.Handler = r.router
	if r.rateLimitMiddleware != nil {
		h = r.rateLimitMiddleware.Limit(h)
	}
	h = middleware.RequestLogger(r.log)(h)
	return r.corsMiddleware.Handle(h)
}
