package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	_ "time/tzdata"

	"team-backoffice/internal/http/handlers"
	authh "team-backoffice/internal/http/handlers/auth"
	calculatorh "team-backoffice/internal/http/handlers/calculator"
	employeeh "team-backoffice/internal/http/handlers/employee"
	invoiceh "team-backoffice/internal/http/handlers/invoice"
	linkh "team-backoffice/internal/http/handlers/link"
	teamh "team-backoffice/internal/http/handlers/team"
	mw "team-backoffice/internal/http/middleware"
	"team-backoffice/internal/lib/config"
	"team-backoffice/internal/lib/sl"
	"team-backoffice/internal/lib/token"
	repo "team-backoffice/internal/repository"
	"team-backoffice/internal/service/auth"
	"team-backoffice/internal/service/calculator"
	"team-backoffice/internal/service/employee"
	"team-backoffice/internal/service/invoice"
	"team-backoffice/internal/service/link"
	"team-backoffice/internal/service/team"
	"team-backoffice/migrations"

	trmsqlx "github.com/avito-tech/go-transaction-manager/drivers/sqlx/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

const (
	envDev  = "dev"
	envProd = "prod"
)

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)
	log.Info("starting team back-office", slog.String("env", cfg.Env))

	db, err := sqlx.Connect("postgres", cfg.Database.URL)
	if err != nil {
		log.Error("failed to establish connection with database", sl.Err(err))
		os.Exit(1)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	if cfg.Database.Migrate {
		if err := migrations.Up(db); err != nil {
			log.Error("failed to apply migrations", sl.Err(err))
			os.Exit(1)
		}
		log.Info("migrations applied")
	}

	// initialization of go-transaction-manager
	trManager := manager.Must(trmsqlx.NewDefaultFactory(db))

	userRepo := repo.NewUserRepo(db, trmsqlx.DefaultCtxGetter)
	teamRepo := repo.NewTeamRepo(db, trmsqlx.DefaultCtxGetter)
	memberRepo := repo.NewMemberRepo(db, trmsqlx.DefaultCtxGetter)
	invitationRepo := repo.NewInvitationRepo(db, trmsqlx.DefaultCtxGetter)
	activityRepo := repo.NewActivityRepo(db, trmsqlx.DefaultCtxGetter)
	settingsRepo := repo.NewSettingsRepo(db, trmsqlx.DefaultCtxGetter)
	projectRepo := repo.NewProjectRepo(db, trmsqlx.DefaultCtxGetter)
	invoiceRepo := repo.NewInvoiceRepo(db, trmsqlx.DefaultCtxGetter)
	linkRepo := repo.NewLinkRepo(db, trmsqlx.DefaultCtxGetter)

	tokens := token.NewManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	authService := auth.NewAuthService(trManager, userRepo, teamRepo, memberRepo, invitationRepo, activityRepo, tokens)
	teamService := team.NewTeamService(trManager, teamRepo, memberRepo, invitationRepo, activityRepo)
	employeeService := employee.NewEmployeeService(trManager, userRepo, memberRepo, activityRepo)
	calculatorService := calculator.NewCalculatorService(trManager, settingsRepo, projectRepo)
	invoiceService := invoice.NewInvoiceService(trManager, invoiceRepo, memberRepo)
	linkService := link.NewLinkService(linkRepo)

	authHandler := authh.NewAuthHandler(log, authService)
	teamHandler := teamh.NewTeamHandler(log, teamService)
	employeeHandler := employeeh.NewEmployeeHandler(log, employeeService)
	calculatorHandler := calculatorh.NewCalculatorHandler(log, calculatorService)
	invoiceHandler := invoiceh.NewInvoiceHandler(log, invoiceService)
	linkHandler := linkh.NewLinkHandler(log, linkService)

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(mw.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)

	// public methods
	router.Get("/health", handlers.Healthcheck(db))
	router.Post("/api/auth/sign-up", authHandler.SignUp)
	router.Post("/api/auth/sign-in", authHandler.SignIn)

	router.Group(func(r chi.Router) {
		r.Use(mw.Auth(tokens))
		r.Use(mw.TeamScope(log, teamRepo))

		// available without a team
		r.Get("/api/user", authHandler.Me)
		r.Get("/api/team/activity", teamHandler.Activity)
		r.Get("/api/team/employees", employeeHandler.List)
		r.Get("/api/team/settings", calculatorHandler.Settings)
		r.Post("/api/team/calculator", calculatorHandler.Calculate)
		r.Post("/api/team/calculator/report", calculatorHandler.Report)
		r.Get("/api/team/projects", calculatorHandler.Projects)
		r.Get("/api/team/invoices", invoiceHandler.List)
		r.Get("/api/team/links", linkHandler.List)

		// team members
		r.Group(func(r chi.Router) {
			r.Use(mw.RequireTeam)

			r.Get("/api/team", teamHandler.Get)

			r.Post("/api/team/employees", employeeHandler.Create)
			r.Get("/api/team/employees/{id}", employeeHandler.Get)
			r.Put("/api/team/employees/{id}", employeeHandler.Update)
			r.Delete("/api/team/employees/{id}", employeeHandler.Delete)

			r.Post("/api/team/settings", calculatorHandler.SaveSettings)
			r.Post("/api/team/projects", calculatorHandler.CreateProject)
			r.Delete("/api/team/projects/{id}", calculatorHandler.DeleteProject)
			r.Get("/api/team/projects/{id}/report", calculatorHandler.ProjectReport)

			r.Post("/api/team/invoices", invoiceHandler.Create)
			r.Get("/api/team/invoices/{id}", invoiceHandler.Get)
			r.Put("/api/team/invoices/{id}", invoiceHandler.Update)
			r.Delete("/api/team/invoices/{id}", invoiceHandler.Delete)
			r.Patch("/api/team/invoices/{id}/status", invoiceHandler.SetStatus)
			r.Patch("/api/team/invoices/{id}/assign", invoiceHandler.Assign)
			r.Get("/api/team/invoices/{id}/pdf", invoiceHandler.PDF)

			r.Post("/api/team/links", linkHandler.Create)
			r.Delete("/api/team/links", linkHandler.Delete)
		})

		// team owners
		r.Group(func(r chi.Router) {
			r.Use(mw.OwnerOnly)

			r.Put("/api/team/company", teamHandler.UpdateCompany)
			r.Post("/api/team/invitations", teamHandler.Invite)
			r.Get("/api/team/invitations", teamHandler.Invitations)
		})
	})

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.ReadTimeout,
		WriteTimeout: cfg.HTTPServer.WriteTimeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info("starting http server", slog.String("address", cfg.HTTPServer.Address))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start http server", sl.Err(err))
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("stopping http server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPServer.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("failed to stop http server", sl.Err(err))
		return
	}

	log.Info("http server stopped")
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger
	switch env {
	case envDev, envProd:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)
	default:
		log = slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	}
	return log
}
