// Command server runs the custodia service: the administrative API for the
// pending-deletion workflow and the cascade consumer for upstream participant
// deletions.
package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"golang.org/x/sync/errgroup"

	"custodia/internal/account"
	"custodia/internal/audit"
	"custodia/internal/deletion"
	deletionconsumer "custodia/internal/deletion/consumer"
	"custodia/internal/deletion/handler"
	"custodia/internal/deletion/service"
	"custodia/internal/deletion/store"
	"custodia/internal/deletion/store/pendingdeletion"
	"custodia/internal/deletion/store/personaldata"
	"custodia/internal/directory"
	"custodia/internal/jwtactor"
	"custodia/internal/notify"
	"custodia/internal/platform/config"
	"custodia/internal/platform/httpserver"
	"custodia/internal/platform/kafka/consumer"
	"custodia/internal/platform/logger"
	"custodia/internal/platform/metrics"
	"custodia/internal/platform/redis"
	transport "custodia/internal/transport/http"
)

const shutdownGrace = 10 * time.Second

func main() {
	if err := run(); err != nil {
		slog.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.FromEnv()
	log := logger.New()
	m := metrics.New()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Storage. No database URL selects the in-memory stores for development.
	var (
		stores deletion.Stores
		tx     deletion.TxRunner
		checks = map[string]transport.HealthChecker{}
	)
	if cfg.DatabaseURL != "" {
		db, err := sql.Open("postgres", cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer db.Close()
		if err := db.PingContext(ctx); err != nil {
			return fmt.Errorf("ping database: %w", err)
		}
		stores = deletion.Stores{
			Pending: pendingdeletion.NewPostgres(db),
			Data:    personaldata.NewPostgres(db),
		}
		tx = store.NewPostgresRunner(db)
		checks["database"] = dbChecker{db}
		log.Info("using postgres stores")
	} else {
		stores = deletion.Stores{
			Pending: pendingdeletion.NewMemory(),
			Data:    personaldata.NewMemory(),
		}
		tx = store.NewMemoryRunner(stores)
		log.Warn("no database configured, using in-memory stores")
	}

	// Policy source, optionally cached in Redis.
	rdb, err := redis.New(cfg.RedisURL)
	if err != nil {
		return fmt.Errorf("connect redis: %w", err)
	}
	var policies service.PolicyDirectory = directory.NewPolicyClient(cfg.PolicyDirectoryURL, cfg.CollaboratorTimeout)
	if rdb != nil {
		defer rdb.Close()
		policies = directory.NewCachedPolicySource(
			directory.NewPolicyClient(cfg.PolicyDirectoryURL, cfg.CollaboratorTimeout),
			rdb.Client, cfg.PolicyCacheTTL, log,
		)
		checks["redis"] = rdb
		log.Info("policy cache enabled")
	}

	// Audit sink. Without brokers deletion events only reach the process log.
	var auditLog service.AuditLog
	if len(cfg.KafkaBrokers) > 0 {
		publisher, err := audit.NewPublisher(cfg.KafkaBrokers, cfg.AuditTopic, log)
		if err != nil {
			return fmt.Errorf("create audit publisher: %w", err)
		}
		defer publisher.Close()
		auditLog = publisher
	} else {
		auditLog = audit.NewLogRecorder(log)
		log.Warn("no kafka brokers configured, audit events go to the process log")
	}

	svc := service.New(
		stores,
		tx,
		policies,
		directory.NewSubjectClient(cfg.SubjectDirectoryURL, cfg.CollaboratorTimeout),
		account.NewClient(cfg.AccountServiceURL, cfg.CollaboratorTimeout),
		auditLog,
		notify.NewClient(cfg.MailRelayURL, cfg.CollaboratorTimeout),
		log,
		m,
	)

	router := transport.New(transport.Deps{
		Deletions: handler.New(svc, log),
		Validator: jwtactor.NewService(cfg.JWTSigningKey, "custodia", "custodia-admin"),
		Logger:    log,
		Checks:    checks,
	})
	srv := httpserver.New(cfg.Addr, router)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("http server listening", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if len(cfg.KafkaBrokers) > 0 {
		cascade, err := consumer.New(consumer.Config{
			Brokers: cfg.KafkaBrokers,
			Group:   cfg.ConsumerGroup,
			Topics:  []string{cfg.ParticipantDeletedTopic},
		}, deletionconsumer.NewParticipantDeletedHandler(svc, log), log)
		if err != nil {
			return fmt.Errorf("create cascade consumer: %w", err)
		}
		g.Go(func() error {
			defer cascade.Close()
			log.Info("cascade consumer running", "topic", cfg.ParticipantDeletedTopic)
			return cascade.Run(ctx)
		})
	} else {
		log.Warn("no kafka brokers configured, cascade consumer disabled")
	}

	return g.Wait()
}

type dbChecker struct {
	db *sql.DB
}

func (c dbChecker) Health(ctx context.Context) error {
	return c.db.PingContext(ctx)
}
