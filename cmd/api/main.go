package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/cooltechhq/hvac-ops-api/internal/application/auth"
	"github.com/cooltechhq/hvac-ops-api/internal/application/billing"
	"github.com/cooltechhq/hvac-ops-api/internal/application/usecase"
	infraai "github.com/cooltechhq/hvac-ops-api/internal/infrastructure/ai"
	infraemail "github.com/cooltechhq/hvac-ops-api/internal/infrastructure/email"
	infrapdf "github.com/cooltechhq/hvac-ops-api/internal/infrastructure/pdf"
	"github.com/cooltechhq/hvac-ops-api/internal/infrastructure/postgres"
	infrasms "github.com/cooltechhq/hvac-ops-api/internal/infrastructure/sms"
	infrastorage "github.com/cooltechhq/hvac-ops-api/internal/infrastructure/storage"
	httpRouter "github.com/cooltechhq/hvac-ops-api/internal/interfaces/http"
	"github.com/cooltechhq/hvac-ops-api/pkg/config"
	"github.com/cooltechhq/hvac-ops-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("PostgreSQL connection")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	clientRepo := postgres.NewClientRepository(pool)
	projectRepo := postgres.NewProjectRepository(pool)
	taskRepo := postgres.NewTaskRepository(pool)
	estimateRepo := postgres.NewEstimateRepository(pool)
	invoiceRepo := postgres.NewInvoiceRepository(pool)
	seqRepo := postgres.NewSequenceRepository(pool)
	expenseRepo := postgres.NewExpenseRepository(pool)
	documentRepo := postgres.NewDocumentRepository(pool)
	appointmentRepo := postgres.NewAppointmentRepository(pool)
	dashboardRepo := postgres.NewDashboardRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Adopt numbers issued before the counter table existed.
	if err := billing.SeedSequences(estimateRepo, invoiceRepo, seqRepo, time.Now().Year()); err != nil {
		log.Fatal().Err(err).Msg("seed document sequences")
	}

	emailSender := infraemail.NewSMTPSender(cfg.SMTP, cfg.App.FromEmail)
	smsSender := infrasms.NewTwilioSender(cfg.SMS)
	fileStorage, err := infrastorage.NewLocalStorage(cfg.Storage)
	if err != nil {
		log.Fatal().Err(err).Msg("upload directory")
	}
	anthropicSvc := infraai.NewAnthropicService(cfg.AI.AnthropicAPIKey, cfg.AI.AnthropicModel)
	pdfGenerator := infrapdf.NewMarotoPDFGenerator(cfg.App.CompanyName)

	links := billing.LinkConfig{
		Secret:        cfg.JWT.Secret,
		Issuer:        cfg.JWT.Issuer,
		ExpDays:       cfg.JWT.ActionExpDays,
		PublicBaseURL: cfg.App.PublicBaseURL,
		CompanyName:   cfg.App.CompanyName,
	}

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	clientUC := usecase.NewClientUseCase(clientRepo)
	projectUC := usecase.NewProjectUseCase(projectRepo, clientRepo)
	taskUC := usecase.NewTaskUseCase(taskRepo, projectRepo)
	estimateUC := billing.NewEstimateUseCase(
		estimateRepo, invoiceRepo, clientRepo, projectRepo, seqRepo,
		txRunner, emailSender, smsSender, links,
	)
	invoiceUC := billing.NewInvoiceUseCase(
		invoiceRepo, clientRepo, projectRepo, seqRepo,
		emailSender, smsSender, links,
	)
	pdfUC := billing.NewPDFUseCase(
		estimateRepo, invoiceRepo, clientRepo, projectRepo,
		pdfGenerator, pdfGenerator,
	)
	expenseUC := usecase.NewExpenseUseCase(expenseRepo)
	documentUC := usecase.NewDocumentUseCase(documentRepo, fileStorage)
	appointmentUC := usecase.NewAppointmentUseCase(appointmentRepo)
	dashboardUC := usecase.NewDashboardUseCase(dashboardRepo)
	messageUC := usecase.NewMessageUseCase(clientRepo, emailSender, smsSender, cfg.App.CompanyName)
	aiUC := usecase.NewAIUseCase(anthropicSvc, projectRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    25 * 1024 * 1024, // uploaded site photos and manuals
	})
	app.Use(recover.New())

	// Swagger UI: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    cfg.App.Name,
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	// Uploaded documents are served from the local upload dir.
	app.Static(cfg.Storage.BaseURL, cfg.Storage.UploadDir)

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		ClientUC:      clientUC,
		ProjectUC:     projectUC,
		TaskUC:        taskUC,
		EstimateUC:    estimateUC,
		InvoiceUC:     invoiceUC,
		PDFUC:         pdfUC,
		ExpenseUC:     expenseUC,
		DocumentUC:    documentUC,
		AppointmentUC: appointmentUC,
		DashboardUC:   dashboardUC,
		MessageUC:     messageUC,
		AIUC:          aiUC,
		JWTSecret:     cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, closing server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
