package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/RyanHagen77/dwella-app-sub003/internal/auth"
	"github.com/RyanHagen77/dwella-app-sub003/internal/config"
	"github.com/RyanHagen77/dwella-app-sub003/internal/database"
	"github.com/RyanHagen77/dwella-app-sub003/internal/home"
	homeStore "github.com/RyanHagen77/dwella-app-sub003/internal/home/store"
	dwellaHttp "github.com/RyanHagen77/dwella-app-sub003/internal/http"
	authnHandler "github.com/RyanHagen77/dwella-app-sub003/internal/http/authn"
	homeHandler "github.com/RyanHagen77/dwella-app-sub003/internal/http/home"
	recordHandler "github.com/RyanHagen77/dwella-app-sub003/internal/http/record"
	submissionHandler "github.com/RyanHagen77/dwella-app-sub003/internal/http/submission"
	verificationHandler "github.com/RyanHagen77/dwella-app-sub003/internal/http/verification"
	"github.com/RyanHagen77/dwella-app-sub003/internal/notify"
	"github.com/RyanHagen77/dwella-app-sub003/internal/postcard"
	"github.com/RyanHagen77/dwella-app-sub003/internal/record"
	recordStore "github.com/RyanHagen77/dwella-app-sub003/internal/record/store"
	"github.com/RyanHagen77/dwella-app-sub003/internal/submission"
	submissionStore "github.com/RyanHagen77/dwella-app-sub003/internal/submission/store"
	"github.com/RyanHagen77/dwella-app-sub003/internal/user"
	userStore "github.com/RyanHagen77/dwella-app-sub003/internal/user/store"
	"github.com/RyanHagen77/dwella-app-sub003/internal/verification"
	verificationStore "github.com/RyanHagen77/dwella-app-sub003/internal/verification/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	var (
		sessions = auth.NewSessions(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
		notifier = notify.NewClient(cfg.Notify.BaseURL, cfg.Notify.Token)
		mailer   = postcard.NewClient(cfg.Postcard.BaseURL, cfg.Postcard.Token)
	)

	var (
		userService = user.NewService(userStore.New(db))
		homeService = home.NewService(homeStore.New(db))

		verificationService = verification.NewService(
			verificationStore.New(db),
			homeService,
			mailer,
			notifier,
			verification.NewHasher(cfg.Verification.CodeSecret),
			verification.Config{
				CodeLength:  cfg.Verification.CodeLength,
				MaxAttempts: cfg.Verification.MaxAttempts,
				Throttle:    cfg.Verification.Throttle,
				TTL:         cfg.Verification.TTL,
			},
		)

		recordService     = record.NewService(recordStore.New(db), homeService)
		submissionService = submission.NewService(submissionStore.New(db), homeService, userService, notifier)
	)

	var (
		authnH        = authnHandler.NewHandler(userService, sessions)
		homeH         = homeHandler.NewHandler(homeService)
		verificationH = verificationHandler.NewHandler(verificationService)
		submissionH   = submissionHandler.NewHandler(submissionService)
		recordH       = recordHandler.NewHandler(recordService)
	)

	router := dwellaHttp.New(sessions, authnH, homeH, verificationH, submissionH, recordH)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "app", cfg.App.Name, "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
