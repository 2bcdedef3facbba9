package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	server "github.com/firedeskhq/firedesk/internal"
	"github.com/firedeskhq/firedesk/internal/budget"
	"github.com/firedeskhq/firedesk/internal/config"
	documentrepo "github.com/firedeskhq/firedesk/internal/document/repositoryimpl"
	"github.com/firedeskhq/firedesk/internal/eventbus"
	metricrepo "github.com/firedeskhq/firedesk/internal/metric/repositoryimpl"
	"github.com/firedeskhq/firedesk/internal/notification"
	"github.com/firedeskhq/firedesk/internal/planning"
	"github.com/firedeskhq/firedesk/internal/pricing"
	predictionrepo "github.com/firedeskhq/firedesk/internal/prediction/repositoryimpl"
	"github.com/firedeskhq/firedesk/internal/prioritizer"
	"github.com/firedeskhq/firedesk/internal/project"
	projectrepo "github.com/firedeskhq/firedesk/internal/project/repositoryimpl"
	"github.com/firedeskhq/firedesk/internal/pushsubscription"
	pushsubrepo "github.com/firedeskhq/firedesk/internal/pushsubscription/repositoryimpl"
	"github.com/firedeskhq/firedesk/internal/task"
	taskrepo "github.com/firedeskhq/firedesk/internal/task/repositoryimpl"
	"github.com/firedeskhq/firedesk/internal/team"
	teamrepo "github.com/firedeskhq/firedesk/internal/team/repositoryimpl"
	"github.com/firedeskhq/firedesk/internal/template"
	"github.com/firedeskhq/firedesk/internal/timeline"
	"github.com/firedeskhq/firedesk/internal/timelog"
	timelogrepo "github.com/firedeskhq/firedesk/internal/timelog/repositoryimpl"
	"github.com/firedeskhq/firedesk/internal/workday"
	"github.com/firedeskhq/firedesk/pkg/clog"
	"github.com/firedeskhq/firedesk/pkg/panicerr"
	"github.com/firedeskhq/firedesk/pkg/storage"
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "sentinel" {
		runSentinel()
		return
	}
	runServer()
}

func runServer() {
	env, err := config.LoadEnv()
	if err != nil {
		slog.Error("failed to load env", "error", err)
		os.Exit(1)
	}

	// Setup logger
	level := env.SlogLevel()
	var handler slog.Handler
	if env.Env == "local" {
		handler = clog.NewHTTPTextHandler(os.Stderr, clog.WithLevel(level))
	} else {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	}
	slog.SetDefault(slog.New(clog.NewAttributesHandler(handler)))

	// Setup storage
	var store storage.Storage
	switch env.StorageEnv.Type {
	case "s3":
		store, err = storage.NewS3Storage(context.Background(), env.StorageEnv.S3Bucket, env.StorageEnv.S3Prefix, env.StorageEnv.S3Region)
		if err != nil {
			slog.Error("failed to create S3 storage", "error", err)
			os.Exit(1)
		}
	default:
		store, err = storage.NewLocalStorage(env.StorageEnv.BaseDir)
		if err != nil {
			slog.Error("failed to create local storage", "error", err)
			os.Exit(1)
		}
	}

	// Setup event bus
	bus := eventbus.New()

	// Setup repositories
	projectRepo := projectrepo.NewYAMLRepository(store)
	taskRepo := taskrepo.NewYAMLRepository(store)
	timeLogRepo := timelogrepo.NewYAMLRepository(store)
	teamRepo := teamrepo.NewYAMLRepository(store)
	metricRepo := metricrepo.NewYAMLRepository(store)
	predictionRepo := predictionrepo.NewYAMLRepository(store)
	documentRepo := documentrepo.NewYAMLRepository(store)
	pushSubRepo := pushsubrepo.NewYAMLRepository(store)

	// Setup domain services
	budgetEngine := budget.NewEngine(taskRepo, timeLogRepo)
	planner := planning.NewPlanner(projectRepo)
	taskPrioritizer := prioritizer.New(taskRepo, teamRepo, metricRepo, predictionRepo)
	deriver := workday.NewDeriver(projectRepo, taskRepo, documentRepo)

	// Setup servers
	projectServer := project.NewServer(projectRepo, bus)
	taskServer := task.NewServer(taskRepo, bus)
	timeLogServer := timelog.NewServer(timeLogRepo)
	teamServer := team.NewServer(teamRepo)
	templateServer := template.NewServer(projectRepo, taskRepo, bus)
	pricingServer := pricing.NewServer()
	timelineServer := timeline.NewServer()
	budgetServer := budget.NewServer(budgetEngine, projectRepo, bus)
	planningServer := planning.NewServer(planner)
	prioritizerServer := prioritizer.NewServer(taskPrioritizer)
	workdayServer := workday.NewServer(deriver)

	// Setup push notification
	vapidEnv := config.VAPIDEnvFromEnv(env)
	pushSender := notification.NewSender(vapidEnv, pushSubRepo)
	pushSubscriptionServer := pushsubscription.NewServer(pushSubRepo, vapidEnv)
	pushDispatcher := notification.NewDispatcher(bus, taskRepo, projectRepo, pushSender)

	srv := server.NewServer(
		env,
		projectServer,
		taskServer,
		timeLogServer,
		teamServer,
		templateServer,
		pricingServer,
		timelineServer,
		budgetServer,
		planningServer,
		prioritizerServer,
		workdayServer,
		pushSubscriptionServer,
	)

	// Graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer cancel()

	go func() {
		safeStart := panicerr.SafeContext(func(ctx context.Context) error {
			pushDispatcher.Start(ctx)
			return nil
		})
		if err := safeStart(ctx); err != nil {
			slog.Error("push dispatcher crashed", "error", err)
		}
	}()

	go func() {
		if err := srv.ListenAndServe(ctx); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			cancel()
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
}
