package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/chaitanyakumarcodes/urs-web/docs"
	analyticshandlers "github.com/chaitanyakumarcodes/urs-web/internal/handlers/analytics"
	authhandlers "github.com/chaitanyakumarcodes/urs-web/internal/handlers/auth"
	settlementhandlers "github.com/chaitanyakumarcodes/urs-web/internal/handlers/settlement"
	"github.com/chaitanyakumarcodes/urs-web/internal/service"
	"github.com/chaitanyakumarcodes/urs-web/pkg/auth"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type SettlementHandler interface {
	Settle(w http.ResponseWriter, r *http.Request)
	LookupCustomer(w http.ResponseWriter, r *http.Request)
}

type AnalyticsHandler interface {
	GetAnalytics(w http.ResponseWriter, r *http.Request)
	GetDashboard(w http.ResponseWriter, r *http.Request)
	GetTransactions(w http.ResponseWriter, r *http.Request)
	Export(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler       AuthHandler
	SettlementHandler SettlementHandler
	AnalyticsHandler  AnalyticsHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:       authhandlers.New(s.AuthService),
		SettlementHandler: settlementhandlers.New(s.SettlementService),
		AnalyticsHandler:  analyticshandlers.New(s.AnalyticsService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Route("/vendor", func(r chi.Router) {
			r.Post("/register", h.AuthHandler.Register)
			r.Post("/login", h.AuthHandler.Login)
		})

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)
			r.Get("/customers", h.SettlementHandler.LookupCustomer)
			r.Post("/settlement", h.SettlementHandler.Settle)
			r.Get("/dashboard", h.AnalyticsHandler.GetDashboard)
			r.Get("/transactions", h.AnalyticsHandler.GetTransactions)
			r.Get("/analytics", h.AnalyticsHandler.GetAnalytics)
			r.Get("/export", h.AnalyticsHandler.Export)
		})
	})

	return r
}
