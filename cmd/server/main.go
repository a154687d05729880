// @title         TalentPro PH API
// @version       1.0
// @description   Recruiting platform connecting Philippine remote talent with employers.
// @BasePath      /api/v1
// @schemes       http
// @host          localhost:8080
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Authorization token: "Bearer <JWT>" or the bare "<JWT>".
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberrecover "github.com/gofiber/fiber/v2/middleware/recover"
	swagger "github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/talentproph/talentpro/api/http"
	"github.com/talentproph/talentpro/api/http/handlers"
	"github.com/talentproph/talentpro/api/http/middleware"
	_ "github.com/talentproph/talentpro/docs"
	"github.com/talentproph/talentpro/pkg/application"
	"github.com/talentproph/talentpro/pkg/auth"
	"github.com/talentproph/talentpro/pkg/billing"
	"github.com/talentproph/talentpro/pkg/config"
	"github.com/talentproph/talentpro/pkg/dashboard"
	"github.com/talentproph/talentpro/pkg/health"
	healthcheck "github.com/talentproph/talentpro/pkg/health/checkers"
	"github.com/talentproph/talentpro/pkg/interview"
	"github.com/talentproph/talentpro/pkg/job"
	"github.com/talentproph/talentpro/pkg/logger"
	"github.com/talentproph/talentpro/pkg/messaging"
	"github.com/talentproph/talentpro/pkg/metrics"
	"github.com/talentproph/talentpro/pkg/profile"
	"github.com/talentproph/talentpro/pkg/realtime"
	pgrepo "github.com/talentproph/talentpro/pkg/repository/postgres"
	"github.com/talentproph/talentpro/pkg/review"
	"github.com/talentproph/talentpro/pkg/security/jwt"
	"github.com/talentproph/talentpro/pkg/storage/postgres"
	redisstore "github.com/talentproph/talentpro/pkg/storage/redis"
	"github.com/talentproph/talentpro/pkg/support"
)

const (
	maxBodySize     = 6 << 20
	shutdownTimeout = 10 * time.Second
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	// Load configuration from file, .env and environment
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	lg, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer func() { _ = lg.Sync() }()
	zap.ReplaceGlobals(lg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, lg); err != nil {
		lg.Fatal("server stopped", zap.Error(err))
	}
	lg.Info("server stopped")
}

func run(ctx context.Context, cfg config.Config, lg *zap.Logger) error {
	pool, err := postgres.Connect(ctx, cfg.DatabaseURL, int32(cfg.DBMaxConns))
	if err != nil {
		return err
	}
	defer pool.Close()
	if err := postgres.Migrate(ctx, pool); err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	// Fan-out: redis pub/sub across instances, in-process otherwise
	checkers := []health.Checker{healthcheck.NewPostgresChecker(pool)}
	var broker realtime.Broker
	if cfg.RedisURL != "" {
		client, err := redisstore.Connect(ctx, cfg.RedisURL)
		if err != nil {
			return err
		}
		defer client.Close()
		broker = realtime.NewRedisBroker(client, cfg.StreamBuffer, m, lg)
		checkers = append(checkers, healthcheck.NewRedisChecker(client))
	} else {
		lg.Info("REDIS_URL not set, conversation events stay in this process")
		broker = realtime.NewMemoryBroker(cfg.StreamBuffer, m, lg)
	}
	defer broker.Close()

	// Repositories
	userRepo := pgrepo.NewUserRepository(pool)
	profileRepo := pgrepo.NewProfileRepository(pool)
	jobRepo := pgrepo.NewJobRepository(pool)
	applicationRepo := pgrepo.NewApplicationRepository(pool)
	interviewRepo := pgrepo.NewInterviewRepository(pool)
	reviewRepo := pgrepo.NewReviewRepository(pool)
	conversationRepo := pgrepo.NewConversationRepository(pool)
	billingRepo := pgrepo.NewBillingRepository(pool)
	supportRepo := pgrepo.NewSupportRepository(pool)

	// Use cases
	jwtGen := jwt.NewGenerator(cfg.JWTSecret, cfg.JWTIssuer, time.Duration(cfg.JWTTTLMinutes)*time.Minute)
	authUC := auth.NewAuthService(userRepo, jwtGen)
	profileUC := profile.NewService(profileRepo)
	billingUC := billing.NewService(billingRepo)
	jobUC := job.NewService(jobRepo, billingUC)
	applicationUC := application.NewService(applicationRepo, jobRepo, profileRepo)
	interviewUC := interview.NewService(interviewRepo, applicationRepo)
	reviewUC := review.NewService(reviewRepo)
	messagingUC := messaging.NewService(conversationRepo, profileRepo, broker, m, lg, cfg.StreamReplayLimit)
	supportUC := support.NewService(supportRepo)
	dashboardUC := dashboard.NewService(profileUC, supportUC, billingUC)

	app := fiber.New(fiber.Config{
		AppName:               "talentpro",
		BodyLimit:             maxBodySize,
		DisableStartupMessage: true,
	})
	app.Use(fiberrecover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(middleware.RequestLogger(lg))
	app.Use(middleware.Metrics(m))

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))
	// Swagger UI
	app.Get("/swagger/*", swagger.HandlerDefault)

	// JWT auth middleware for protected routes
	authMW := jwt.NewAuthMiddleware(cfg.JWTSecret, cfg.JWTIssuer)

	http.Register(app, http.Handlers{
		Auth:         handlers.NewAuthHandler(authUC),
		Health:       handlers.NewHealthHandler(health.NewService(checkers...)),
		Profile:      handlers.NewProfileHandler(profileUC),
		Job:          handlers.NewJobHandler(jobUC),
		Application:  handlers.NewApplicationHandler(applicationUC),
		Interview:    handlers.NewInterviewHandler(interviewUC),
		Review:       handlers.NewReviewHandler(reviewUC),
		Conversation: handlers.NewConversationHandler(messagingUC),
		Billing:      handlers.NewBillingHandler(billingUC),
		Support:      handlers.NewSupportHandler(supportUC),
		Admin:        handlers.NewAdminHandler(dashboardUC),
	}, authMW)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		lg.Info("HTTP server listening", zap.String("port", cfg.Port))
		return app.Listen(":" + cfg.Port)
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return app.ShutdownWithContext(shutdownCtx)
	})
	return g.Wait()
}
