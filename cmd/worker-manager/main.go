// cmd/worker-manager/main.go
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/camunda/zeebe/clients/go/v8/pkg/zbc"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"agreement-workers/internal/agreement/wizard"
	awsclient "agreement-workers/internal/common/aws"
	"agreement-workers/internal/common/camunda"
	"agreement-workers/internal/common/config"
	"agreement-workers/internal/common/database"
	"agreement-workers/internal/common/logger"
	"agreement-workers/internal/common/observability"
	"agreement-workers/pkg/registry"

	// Agreement Workers (4)
	aw "agreement-workers/internal/workers/agreement/advance-wizard"
	ed "agreement-workers/internal/workers/agreement/export-document"
	ra "agreement-workers/internal/workers/agreement/render-agreement"
	sw "agreement-workers/internal/workers/agreement/start-wizard"

	// Data Access Workers (1)
	fp "agreement-workers/internal/workers/data-access/fetch-property"

	// Communication Workers (1)
	da "agreement-workers/internal/workers/communication/deliver-agreement"
)

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2 // Exponential backoff
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	zapLog := logger.New("info", "console")
	defer zapLog.Sync()

	// Wrap zap logger with our logger interface
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting worker manager...")

	cfg, err := config.Load()
	if err != nil {
		zapLog.Fatal("config load failed", zap.Error(err))
	}

	obs := observability.New("worker-manager")
	defer obs.Shutdown()

	ctx := context.Background()

	// --- Init Zeebe Client with retry ---
	var camundaClient *camunda.Client
	err = retryWithBackoff(func() error {
		var err error
		camundaClient, err = camunda.NewClient(cfg.Camunda.BrokerAddress)
		return err
	}, 10, 2*time.Second, zapLog, "Zeebe client initialization")

	if err != nil {
		zapLog.Fatal("zeebe client failed after retries", zap.Error(err))
	}
	zeebeClient := camundaClient.GetClient()
	zapLog.Info("Zeebe client connected successfully")

	// --- Init PostgreSQL with retry ---
	var pg *database.PostgresClient
	err = retryWithBackoff(func() error {
		var err error
		pg, err = database.NewPostgres(cfg.Database.Postgres)
		if err != nil {
			return err
		}
		// Test the connection with context
		return pg.Ping(ctx)
	}, 15, 2*time.Second, zapLog, "PostgreSQL connection")

	if err != nil {
		zapLog.Fatal("postgres failed after retries", zap.Error(err))
	}
	defer pg.Close()
	zapLog.Info("PostgreSQL connected successfully")

	// --- Init Redis with retry ---
	var redis *database.RedisClient
	err = retryWithBackoff(func() error {
		var err error
		redis, err = database.NewRedis(cfg.Database.Redis)
		if err != nil {
			return err
		}
		// Test the connection with context
		return redis.Ping(ctx)
	}, 10, 2*time.Second, zapLog, "Redis connection")

	if err != nil {
		zapLog.Fatal("redis failed after retries", zap.Error(err))
	}
	defer redis.Close()
	zapLog.Info("Redis connected successfully")

	// --- Init Shared Domain Components ---
	sessionTTL := time.Duration(cfg.Wizard.SessionTTL) * time.Second
	sessionStore := wizard.NewStore(redis.Client, sessionTTL)

	cat, err := registry.LoadCatalog(cfg.Catalog.RegistryPath)
	if err != nil {
		zapLog.Fatal("catalog registry load failed",
			zap.String("path", cfg.Catalog.RegistryPath),
			zap.Error(err),
		)
	}
	zapLog.Info("Template catalog loaded",
		zap.Int("rentalTemplates", len(cat.RentalTemplates)),
		zap.Int("purchaseTemplates", len(cat.PurchaseTemplates)),
	)

	// --- Init Delivery Clients (only when a channel is enabled) ---
	var emailSender da.EmailSender
	var smsPublisher da.SMSPublisher
	if cfg.Delivery.Email.Enabled {
		sesClient, err := awsclient.NewSESClient(ctx, cfg.Delivery.AWS.Region)
		if err != nil {
			zapLog.Fatal("ses client failed", zap.Error(err))
		}
		emailSender = da.NewSESEmailSender(sesClient, cfg.Delivery.Email.FromEmail)
		zapLog.Info("SES email sender initialized", zap.String("from", cfg.Delivery.Email.FromEmail))
	}
	if cfg.Delivery.SMS.Enabled {
		snsClient, err := awsclient.NewSNSClient(ctx, cfg.Delivery.AWS.Region)
		if err != nil {
			zapLog.Fatal("sns client failed", zap.Error(err))
		}
		smsPublisher = da.NewSNSSMSPublisher(snsClient, cfg.Delivery.SMS.SenderID)
		zapLog.Info("SNS sms publisher initialized", zap.String("senderId", cfg.Delivery.SMS.SenderID))
	}

	// --- START: Register ALL 6 Workers ---

	// --- 1. Data Access Workers (1) ---
	if cfg.Workers[fp.TaskType].Enabled {
		handler := fp.NewHandler(
			&fp.Config{
				Timeout:  time.Duration(cfg.Workers[fp.TaskType].Timeout) * time.Millisecond,
				CacheTTL: 5 * time.Minute,
			},
			pg.DB, redis.Client, log,
		)
		startWorker(zeebeClient, fp.TaskType, cfg.Workers[fp.TaskType], handler.Handle, zapLog)
	}

	// --- 2. Agreement Workers (4) ---
	if cfg.Workers[sw.TaskType].Enabled {
		handler := sw.NewHandler(
			&sw.Config{
				Timeout:    time.Duration(cfg.Workers[sw.TaskType].Timeout) * time.Millisecond,
				SessionTTL: sessionTTL,
			},
			sessionStore, log,
		)
		startWorker(zeebeClient, sw.TaskType, cfg.Workers[sw.TaskType], handler.Handle, zapLog)
	}

	if cfg.Workers[aw.TaskType].Enabled {
		handler := aw.NewHandler(
			&aw.Config{
				Timeout: time.Duration(cfg.Workers[aw.TaskType].Timeout) * time.Millisecond,
			},
			sessionStore, cat, log,
		)
		startWorker(zeebeClient, aw.TaskType, cfg.Workers[aw.TaskType], handler.Handle, zapLog)
	}

	if cfg.Workers[ra.TaskType].Enabled {
		handler := ra.NewHandler(
			&ra.Config{
				Timeout: time.Duration(cfg.Workers[ra.TaskType].Timeout) * time.Millisecond,
			},
			cat, log,
		)
		startWorker(zeebeClient, ra.TaskType, cfg.Workers[ra.TaskType], handler.Handle, zapLog)
	}

	if cfg.Workers[ed.TaskType].Enabled {
		handler := ed.NewHandler(
			&ed.Config{
				Timeout: time.Duration(cfg.Workers[ed.TaskType].Timeout) * time.Millisecond,
			},
			log,
		)
		startWorker(zeebeClient, ed.TaskType, cfg.Workers[ed.TaskType], handler.Handle, zapLog)
	}

	// --- 3. Communication Workers (1) ---
	if cfg.Workers[da.TaskType].Enabled {
		handler := da.NewHandler(
			&da.Config{
				Timeout:      time.Duration(cfg.Workers[da.TaskType].Timeout) * time.Millisecond,
				EmailEnabled: cfg.Delivery.Email.Enabled,
				SMSEnabled:   cfg.Delivery.SMS.Enabled,
				FromEmail:    cfg.Delivery.Email.FromEmail,
				SenderID:     cfg.Delivery.SMS.SenderID,
			},
			emailSender, smsPublisher, log,
		)
		startWorker(zeebeClient, da.TaskType, cfg.Workers[da.TaskType], handler.Handle, zapLog)
	}
	zapLog.Info("All 6 workers registered successfully")

	// --- Health & Metrics Server ---
	go func() {
		http.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode(map[string]string{
				"status": "healthy",
				"time":   time.Now().Format(time.RFC3339),
			})
		})
		http.HandleFunc("/ready", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode(map[string]string{
				"status": "ready",
				"time":   time.Now().Format(time.RFC3339),
			})
		})
		http.Handle("/metrics", promhttp.Handler())
		zapLog.Info("Health/Metrics server listening on :8080")
		if err := http.ListenAndServe(":8080", nil); err != nil {
			zapLog.Error("Health/Metrics server failed", zap.Error(err))
		}
	}()

	// --- Graceful Shutdown ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	zapLog.Info("Shutdown signal received, stopping workers...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	_ = shutdownCtx

	if err := camundaClient.Close(); err != nil {
		zapLog.Error("Error closing Zeebe client", zap.Error(err))
	}

	zapLog.Info("Worker manager stopped gracefully")
}

func startWorker(client zbc.Client, taskType string, wcfg config.WorkerConfig, handlerFunc func(worker.JobClient, entities.Job), log *zap.Logger) {
	if !wcfg.Enabled {
		log.Info("worker disabled", zap.String("taskType", taskType))
		return
	}

	client.NewJobWorker().
		JobType(taskType).
		Handler(handlerFunc).
		MaxJobsActive(wcfg.MaxJobsActive).
		Timeout(time.Duration(wcfg.Timeout) * time.Millisecond).
		Open()

	log.Info("worker started",
		zap.String("taskType", taskType),
		zap.Int("maxJobsActive", wcfg.MaxJobsActive),
		zap.Int("timeout_ms", wcfg.Timeout),
	)
}
