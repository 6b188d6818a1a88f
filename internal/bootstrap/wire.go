package bootstrap

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/prepview/interview-backend/internal/application/auth"
	"github.com/prepview/interview-backend/internal/application/catalog"
	"github.com/prepview/interview-backend/internal/config"
	"github.com/prepview/interview-backend/internal/infrastructure/db/postgres"
	"github.com/prepview/interview-backend/internal/infrastructure/memory"
	"github.com/prepview/interview-backend/internal/infrastructure/messaging/rabbitmq"
	"github.com/prepview/interview-backend/internal/infrastructure/redis"
	"github.com/prepview/interview-backend/internal/infrastructure/security"
	"github.com/prepview/interview-backend/internal/logger"
	"github.com/prepview/interview-backend/internal/transport/http/handlers"
	"github.com/prepview/interview-backend/internal/transport/http/middleware"
	"github.com/prepview/interview-backend/internal/transport/http/response"
	"github.com/prepview/interview-backend/internal/transport/http/router"
)

/*
========================
 Public entry (prod)
========================
*/

func NewServer() (*http.Server, func(), error) {
	return newServer(defaultDeps())
}

// NewServerWithDeps allows injecting dependencies for testing.
func NewServerWithDeps(deps Deps) (*http.Server, func(), error) {
	return newServer(deps)
}

/*
========================
 Dependency injection
========================
*/

type Deps struct {
	LoadConfig   func() (*config.Config, error)
	NewDB        func(dsn string) (*sql.DB, error)
	NewRedis     func(addr, password string, db int) *redis.Client
	NewPublisher func(url, exchange string) (auth.EventPublisher, error)
	NewRouter    func(router.Deps) (http.Handler, error)
}

func defaultDeps() Deps {
	return Deps{
		LoadConfig: config.Load,
		NewDB:      postgres.NewDB,
		NewRedis:   redis.New,
		NewPublisher: func(url, exchange string) (auth.EventPublisher, error) {
			return rabbitmq.NewPublisher(url, exchange)
		},
		NewRouter: router.New,
	}
}

/*
========================
 Core bootstrap logic
========================
*/

func newServer(deps Deps) (*http.Server, func(), error) {
	cfg, err := deps.LoadConfig()
	if err != nil {
		return nil, nil, err
	}
	dev := cfg.Env == "dev"

	var cleanupFns []func()
	cleanup := func() {
		for i := len(cleanupFns) - 1; i >= 0; i-- {
			cleanupFns[i]()
		}
	}

	// Persistence. Dev runs on in-memory stores when DB_ADDR is unset, so the
	// whole service works with nothing but a JWT secret.
	var (
		userRepo   auth.UserRepo
		tokenRepo  auth.TokenRepo
		courseRepo catalog.CourseRepo
		sqlDB      *sql.DB
	)
	if cfg.DBAddr != "" {
		db, err := deps.NewDB(cfg.DBAddr)
		if err != nil {
			return nil, nil, err
		}
		cleanupFns = append(cleanupFns, func() { _ = db.Close() })

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := postgres.Migrate(ctx, db); err != nil {
			cleanup()
			return nil, nil, err
		}

		sqlDB = db
		userRepo = postgres.NewUserRepo(db)
		tokenRepo = postgres.NewTokenRepo(db)
		courseRepo = postgres.NewCourseRepo(db)
		logger.Logger.Info().Msg("postgres connected")
	} else {
		userRepo = memory.NewUserRepo()
		tokenRepo = memory.NewTokenRepo()
		courseRepo = memory.NewSeededCourseRepo()
		logger.Logger.Warn().Msg("DB_ADDR unset; using in-memory stores")
	}

	// Redis (best-effort; rate limiting is disabled without it).
	var redisCli *redis.Client
	if cfg.RedisAddr != "" {
		c := deps.NewRedis(cfg.RedisAddr, "", 0)
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := c.Ping(ctx); err != nil {
			logger.Logger.Warn().Err(err).Msg("redis unavailable; rate limiting disabled")
			_ = c.Close()
		} else {
			logger.Logger.Info().Msg("redis connected")
			redisCli = c
			cleanupFns = append(cleanupFns, func() { _ = c.Close() })
		}
	}

	// Publisher. Dev degrades to a noop publisher that logs the links.
	var pub auth.EventPublisher
	if cfg.RabbitURL != "" {
		p, err := deps.NewPublisher(cfg.RabbitURL, cfg.RabbitExchange)
		if err != nil {
			if !dev {
				cleanup()
				return nil, nil, err
			}
			logger.Logger.Warn().Err(err).Msg("rabbitmq unavailable; using noop publisher")
			pub = memory.NewNoopPublisher()
		} else {
			pub = p
			if c, ok := p.(interface{ Close() error }); ok {
				cleanupFns = append(cleanupFns, func() { _ = c.Close() })
			}
			logger.Logger.Info().Str("exchange", cfg.RabbitExchange).Msg("rabbitmq connected")
		}
	} else {
		pub = memory.NewNoopPublisher()
		logger.Logger.Warn().Msg("RABBIT_URL unset; using noop publisher")
	}

	pub = mailMetricsPublisher{next: pub}

	hasher := security.NewBcryptHasher(cfg.BcryptCost)
	signer := security.NewJWTSigner(cfg.JWTSecret, cfg.JWTIssuer)

	authSvc := auth.NewService(userRepo, tokenRepo, hasher, signer, pub, auth.Config{
		AccessTokenTTL:       cfg.AccessTokenTTL,
		ActionTokenTTL:       cfg.ActionTokenTTL,
		VerifyEmailBaseURL:   cfg.VerifyEmailBaseURL,
		PasswordResetBaseURL: cfg.PasswordResetBaseURL,
	})
	catalogSvc := catalog.NewService(courseRepo)

	// Rate limiters (nil disables the middleware).
	var loginLimitMW, resetLimitMW func(http.Handler) http.Handler
	if redisCli != nil {
		loginLimiter := redis.NewFixedWindowLimiter(redisCli, "login", cfg.LoginRateLimit, cfg.RateLimitWindow)
		resetLimiter := redis.NewFixedWindowLimiter(redisCli, "reset", cfg.ResetRateLimit, cfg.RateLimitWindow)
		loginLimitMW = middleware.RateLimit(loginLimiter, "login", response.WriteError)
		resetLimitMW = middleware.RateLimit(resetLimiter, "reset", response.WriteError)
	}

	mux, err := deps.NewRouter(router.Deps{
		Health:  handlers.NewHealthHandler(sqlDB),
		Auth:    handlers.NewAuthHandler(authSvc),
		Catalog: handlers.NewCatalogHandler(catalogSvc),

		AuthMW:       middleware.Auth(signer, response.WriteError),
		LoginLimitMW: loginLimitMW,
		ResetLimitMW: resetLimitMW,

		Global: []func(http.Handler) http.Handler{
			middleware.RequestID,
			middleware.Metrics,
			middleware.SecurityHeaders(!dev),
			middleware.CORS(cfg.CORSAllowedOrigins),
			middleware.BodyLimit(0),
		},

		Metrics: promhttp.Handler(),
	})
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      mux,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	return srv, cleanup, nil
}
