package api

import (
	"net/http"
	"time"

	"tracker/src/api/handlers"
	"tracker/src/config"

	"github.com/go-chi/chi/v5"
	"github.com/rs/cors"
)

type Server struct {
	Router  *chi.Mux
	Handler *handlers.Handler
}

func NewServer(cfg *config.Config) (*Server, error) {
	handler, err := handlers.NewHandler(cfg)
	if err != nil {
		return nil, err
	}
	server := &Server{
		Router:  chi.NewRouter(),
		Handler: handler,
	}
	server.InitRoutes()
	return server, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}

func (s *Server) InitRoutes() {
	s.Router.Get("/alive", handlers.Healthcheck)
	s.Router.Post("/api/token", s.Handler.PostToken)

	s.Router.Route("/api/holdings", func(r chi.Router) {
		r.Use(s.Handler.RequireAuth)
		r.Get("/", s.Handler.GetHoldings)
		r.Post("/", s.Handler.CreateHolding)
		r.Get("/{id}", s.Handler.GetHoldingByID)
		r.Put("/{id}", s.Handler.UpdateHolding)
		r.Delete("/{id}", s.Handler.DeleteHolding)
		r.Get("/{id}/transactions", s.Handler.GetTransactions)
		r.Post("/{id}/transactions", s.Handler.CreateTransaction)
	})

	s.Router.Route("/api/portfolios", func(r chi.Router) {
		r.Use(s.Handler.RequireAuth)
		r.Get("/", s.Handler.GetPortfolios)
		r.Post("/", s.Handler.CreatePortfolio)
		r.Delete("/{id}", s.Handler.DeletePortfolio)
	})

	s.Router.Route("/api/dashboard", func(r chi.Router) {
		r.Use(s.Handler.RequireAuth)
		r.Get("/summary", s.Handler.GetDashboardSummary)
		r.Get("/performance", s.Handler.GetPerformanceChart)
		r.Get("/allocation", s.Handler.GetAllocation)
	})

	s.Router.Route("/api/reports", func(r chi.Router) {
		r.Use(s.Handler.RequireAuth)
		r.Get("/periods", s.Handler.GetPeriodReport)
		r.Get("/rankings", s.Handler.GetRankings)
		r.Get("/categories", s.Handler.GetCategoryPerformance)
		r.Get("/distribution", s.Handler.GetDistribution)
		r.Get("/size-distribution", s.Handler.GetSizeDistribution)
		r.Get("/file", s.Handler.GetReportFile)
	})

	s.Router.Route("/api/schedules", func(r chi.Router) {
		r.Use(s.Handler.RequireAuth)
		r.Get("/", s.Handler.GetAllReportSchedules)
		r.Get("/{id}", s.Handler.GetReportScheduleByID)
		r.Post("/", s.Handler.CreateReportSchedule)
		r.Put("/{id}", s.Handler.UpdateReportSchedule)
		r.Delete("/{id}", s.Handler.DeleteReportSchedule)
	})
}

func NewHTTPServer(server *Server, port string) *http.Server {
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	return &http.Server{
		Addr:         ":" + port,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		Handler:      corsHandler.Handler(server),
	}
}
