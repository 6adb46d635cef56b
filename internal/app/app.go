package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/exp/slog"
	"golang.org/x/sync/errgroup"

	"commandcenter/internal/config"
	"commandcenter/internal/domain/affirmation"
	"commandcenter/internal/domain/contact"
	"commandcenter/internal/domain/dashboard"
	"commandcenter/internal/domain/decision"
	"commandcenter/internal/domain/finance"
	"commandcenter/internal/domain/journal"
	"commandcenter/internal/domain/note"
	"commandcenter/internal/domain/project"
	"commandcenter/internal/domain/task"
	"commandcenter/internal/handler"
	mwlogger "commandcenter/internal/handler/middleware/logger"
	"commandcenter/internal/infrastructure/statecache"
	"commandcenter/internal/infrastructure/storage/postgres"
)

const shutdownTimeout = 10 * time.Second

// Run wires storage, services and the HTTP API together and serves until
// the context is cancelled or a shutdown signal arrives.
func Run(ctx context.Context, cfg *config.Config, log *slog.Logger) error {
	store, err := postgres.New(cfg)
	if err != nil {
		return fmt.Errorf("init storage: %w", err)
	}
	defer store.Close()

	state, err := statecache.New(cfg.State.Path)
	if err != nil {
		return fmt.Errorf("init state cache: %w", err)
	}
	defer state.Close()

	pool := store.Pool()

	contactSvc := contact.NewService(postgres.NewContactRepository(pool, log), log)
	decisionSvc := decision.NewService(postgres.NewDecisionRepository(pool, log), log)
	tacheSvc := task.NewTacheService(postgres.NewTacheRepository(pool, log), log)
	captureSvc := task.NewCaptureService(postgres.NewCaptureRepository(pool, log), log)
	noteSvc := note.NewService(postgres.NewNoteRepository(pool, log), log)
	financeSvc := finance.NewService(postgres.NewFinanceRepository(pool, log), log)
	journalSvc := journal.NewService(postgres.NewJournalRepository(pool, log), log)
	projectSvc := project.NewService(postgres.NewProjectRepository(pool, log), log)
	affirmationSvc := affirmation.NewService(postgres.NewAffirmationRepository(pool, log), state, log)
	conversationRepo := postgres.NewConversationRepository(pool, log)

	dashboardSvc := dashboard.NewService(
		financeSvc,
		captureSvc,
		tacheSvc,
		noteSvc,
		decisionSvc,
		conversationRepo,
		contactSvc,
		journalSvc,
		affirmationSvc,
		log,
	)

	mux := handler.NewAPI(
		handler.Handler{
			Dashboard:   dashboard.NewHandler(dashboardSvc, log),
			Contact:     contact.NewHandler(contactSvc, log),
			Decision:    decision.NewHandler(decisionSvc, log),
			Task:        task.NewHandler(tacheSvc, captureSvc, log),
			Note:        note.NewHandler(noteSvc, log),
			Finance:     finance.NewHandler(financeSvc, log),
			Journal:     journal.NewHandler(journalSvc, log),
			Project:     project.NewHandler(projectSvc, log),
			Affirmation: affirmation.NewHandler(affirmationSvc, log),
		},
		handler.Middleware{Logger: mwlogger.New(log)},
	)

	httpServer := &http.Server{
		Addr:    cfg.Server.RunAddress,
		Handler: mux,
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("starting HTTP server", "address", cfg.Server.RunAddress)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

		select {
		case sig := <-quit:
			log.Info("received shutdown signal", "signal", sig.String())
		case <-gCtx.Done():
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Error("http server shutdown", "error", err)
		}

		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	log.Info("server stopped")
	return nil
}
