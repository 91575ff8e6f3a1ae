package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"tracker/src/config"
	"tracker/src/database"
	"tracker/src/models"
	"tracker/src/repositories"
	"tracker/src/services"
	"tracker/src/utils"
	redis_utils "tracker/src/utils/redis"

	"github.com/go-chi/jwtauth"
	gocache "github.com/patrickmn/go-cache"
	"github.com/sirupsen/logrus"
)

type contextKey string

const userIDKey = contextKey("userID")

type Handler struct {
	Logger    *logrus.Logger
	TokenAuth *jwtauth.JWTAuth
	TokenTTL  time.Duration

	HoldingRepo     repositories.HoldingRepository
	TransactionRepo repositories.TransactionRepository
	PortfolioRepo   repositories.PortfolioRepository
	ActivityRepo    repositories.ActivityLogRepository
	ScheduleRepo    repositories.ReportScheduleRepository
	UserRepo        repositories.UserRepository

	Holdings     *services.HoldingService
	Valuation    *services.ValuationService
	Periods      *services.PeriodService
	Performance  *services.PerformanceService
	Distribution *services.DistributionService
	Summary      *services.SummaryService
	Export       *services.ExportService

	Redis      *redis_utils.RedisHandler
	LocalCache *gocache.Cache
}

func NewHandler(cfg *config.Config) (*Handler, error) {
	logLevel, err := logrus.ParseLevel(cfg.Service.LogLevel)
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger := utils.NewLogger(logLevel, false, "")

	pool, err := database.SetupDB(cfg)
	if err != nil {
		return nil, err
	}
	gormDB, err := database.SetupGormDB(cfg)
	if err != nil {
		return nil, err
	}

	holdingRepo := repositories.NewHoldingRepository(pool)
	transactionRepo := repositories.NewTransactionRepository(pool)
	portfolioRepo := repositories.NewPortfolioRepository(pool)
	activityRepo := repositories.NewActivityLogRepository(pool)
	scheduleRepo := repositories.NewReportScheduleRepository(gormDB)
	userRepo := repositories.NewUserRepository(gormDB)

	valuation := services.NewValuationService()
	periods := services.NewPeriodService(valuation)
	performance := services.NewPerformanceService()
	distribution := services.NewDistributionService()
	summary := services.NewSummaryService(valuation, periods, performance, distribution)
	holdings := services.NewHoldingService(holdingRepo, transactionRepo, activityRepo, valuation)

	var redisHandler *redis_utils.RedisHandler
	if cfg.Databases.Redis.Enabled {
		redisHandler, err = redis_utils.NewRedisHandler(cfg)
		if err != nil {
			// Redis is a cache, not a dependency: fall through to the
			// in-process cache when unavailable.
			logger.Warn("redis unavailable, falling back to local cache: ", err)
			redisHandler = nil
		}
	}

	tokenTTL := time.Duration(cfg.Auth.TokenTTLMin) * time.Minute
	if tokenTTL <= 0 {
		tokenTTL = time.Hour
	}

	return &Handler{
		Logger:          logger,
		TokenAuth:       jwtauth.New("HS256", []byte(cfg.Auth.JWTSecret), nil),
		TokenTTL:        tokenTTL,
		HoldingRepo:     holdingRepo,
		TransactionRepo: transactionRepo,
		PortfolioRepo:   portfolioRepo,
		ActivityRepo:    activityRepo,
		ScheduleRepo:    scheduleRepo,
		UserRepo:        userRepo,
		Holdings:        holdings,
		Valuation:       valuation,
		Periods:         periods,
		Performance:     performance,
		Distribution:    distribution,
		Summary:         summary,
		Export:          services.NewExportService(),
		Redis:           redisHandler,
		LocalCache:      gocache.New(5*time.Minute, 10*time.Minute),
	}, nil
}

func (h *Handler) respond(w http.ResponseWriter, _ *http.Request, data interface{}, status int) {
	res, err := json.Marshal(data)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	_, _ = w.Write(res)
}

func (h *Handler) HandleErrors(w http.ResponseWriter, err error) {
	h.Logger.Warning(err)
	utils.WriteError(w, err)
}

// RequireAuth verifies the bearer token and stores the subject user id in the
// request context.
func (h *Handler) RequireAuth(next http.Handler) http.Handler {
	return jwtauth.Verifier(h.TokenAuth)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, claims, err := jwtauth.FromContext(r.Context())
		if err != nil || token == nil {
			utils.WriteError(w, utils.Unauthorized("invalid or missing token"))
			return
		}
		userID, _ := claims["sub"].(string)
		if userID == "" {
			utils.WriteError(w, utils.Unauthorized("token missing subject"))
			return
		}
		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	}))
}

func (h *Handler) userID(r *http.Request) string {
	userID, _ := r.Context().Value(userIDKey).(string)
	return userID
}

// ownerLedger loads a user's holdings and their full transaction ledgers.
func (h *Handler) ownerLedger(ctx context.Context, userID string) ([]models.Holding, map[string][]models.Transaction, error) {
	holdings, err := h.HoldingRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	txsByHolding, err := h.TransactionRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	return holdings, txsByHolding, nil
}

func Healthcheck(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
