package cli

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"robot-race-service/internal/actuator"
	"robot-race-service/internal/app"
	"robot-race-service/internal/bank"
	"robot-race-service/internal/config"
	"robot-race-service/internal/engine"
	"robot-race-service/internal/infra/memory"
	pgloader "robot-race-service/internal/infra/postgres"
	redisinfra "robot-race-service/internal/infra/redis"
	transport "robot-race-service/internal/transport/http"
)

// NewStartCmd builds the CLI subcommand to start the server.
func NewStartCmd(configPath, port *string) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start the race quiz server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context(), *configPath, *port)
		},
	}
}

func runServer(ctx context.Context, configPath, portFlag string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	if cfg.Postgres.URL != "" {
		if err := runMigrationsWithConfig(ctx, cfg); err != nil {
			return err
		}
	}

	finalPort := portFlag
	if finalPort == "" {
		finalPort = cfg.Server.Port
	}
	if finalPort == "" {
		finalPort = "8080"
	}

	var redisClient *redis.Client
	if cfg.Redis.Addr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
	}
	redisTTL := config.TTLDuration(cfg.Redis.TTL, 10*time.Minute)

	var pool *pgxpool.Pool
	if cfg.Postgres.URL != "" {
		pool, err = pgxpool.Connect(ctx, cfg.Postgres.URL)
		if err != nil {
			return err
		}
	}

	var loader memory.CatalogLoader = memory.NewStaticCatalogLoader(bank.DefaultRecords())
	if pool != nil {
		loader = pgloader.NewCatalogLoader(pool)
	}

	catalogTTL := config.TTLDuration(cfg.Catalog.TTL, 10*time.Minute)
	var catalogs app.CatalogRepository
	if redisClient != nil {
		catalogs = redisinfra.NewCatalogRepository(redisClient, loader, catalogTTL)
	} else {
		catalogs = memory.NewCatalogRepository(loader, catalogTTL)
	}

	var store app.MatchStore
	if redisClient != nil {
		store = redisinfra.NewMatchStore(redisClient, redisTTL)
	} else {
		store = memory.NewMatchStore()
	}

	var port actuator.Port = actuator.Simulated{}
	if redisClient != nil {
		port = redisinfra.NewActuatorPublisher(redisClient)
	}

	rules := buildRules(cfg.Rules)
	tick := config.TTLDuration(cfg.Rules.TickInterval, 50*time.Millisecond)
	service := app.NewMatchService(store, catalogs, rules, tick, port)
	wsHandler := transport.NewWSHandler(service)

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	mux.HandleFunc("/ws", wsHandler.ServeWS)

	server := &http.Server{
		Addr:         ":" + finalPort,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		log.Printf("starting race quiz service on :%s", finalPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("failed to start server: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
		log.Println("shutting down server...")
	case <-ctx.Done():
		log.Println("context canceled, shutting down server...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

// buildRules maps the YAML rules onto engine timings, falling back to the
// stock values field by field.
func buildRules(raw config.Rules) engine.Rules {
	rules := engine.DefaultRules()
	rules.ReadingTime = config.TTLDuration(raw.ReadingTime, rules.ReadingTime)
	rules.AnswerTime = config.TTLDuration(raw.AnswerTime, rules.AnswerTime)
	rules.BuzzerPause = config.TTLDuration(raw.BuzzerPause, rules.BuzzerPause)
	rules.ResultPause = config.TTLDuration(raw.ResultPause, rules.ResultPause)
	rules.CountdownTime = config.TTLDuration(raw.CountdownTime, rules.CountdownTime)
	rules.QuestionTime = config.TTLDuration(raw.QuestionTime, rules.QuestionTime)
	if raw.AdvanceStep > 0 {
		rules.AdvanceStep = raw.AdvanceStep
	}
	return rules
}
