package app

import (
	"server/config"
	"server/internal/database"
	"server/internal/events"
	"server/internal/handlers/middleware"
	"server/internal/logger"
	"server/internal/repositories"
	"server/internal/services"
	"server/internal/storage"
	"server/internal/websockets"
	"server/internal/wizard"

	applicationController "server/internal/controllers/application"
	authController "server/internal/controllers/auth"
	documentController "server/internal/controllers/documents"
	journeyController "server/internal/controllers/journey"
)

type App struct {
	Database   database.DB
	Middleware middleware.Middleware
	Websocket  *websockets.Manager
	EventBus   *events.EventBus
	Config     config.Config
	Storage    storage.Store

	// Services
	TransactionService *services.TransactionService

	// Repositories
	UserRepo        repositories.UserRepository
	SessionRepo     repositories.SessionRepository
	OnboardingRepo  repositories.OnboardingRepository
	ApplicationRepo repositories.ApplicationRepository
	DocumentRepo    repositories.DocumentRepository
	JournalRepo     repositories.JournalRepository

	// Controllers
	AuthController        *authController.AuthController
	WizardController      *wizard.Controller
	DocumentController    *documentController.DocumentController
	ApplicationController *applicationController.ApplicationController
	JourneyController     *journeyController.JourneyController
}

func New() (*App, error) {
	log := logger.New("app").Function("New")

	config, err := config.InitConfig()
	if err != nil {
		return &App{}, log.Err("failed to initialize config", err)
	}

	db, err := database.New(config)
	if err != nil {
		return &App{}, log.Err("failed to create database", err)
	}

	eventBus := events.New(db.Cache.Events, config)

	store, err := storage.NewLocalStore(config.UploadDir)
	if err != nil {
		return &App{}, log.Err("failed to create file store", err)
	}

	// Initialize services
	transactionService := services.NewTransactionService(db)

	// Initialize repositories
	userRepo := repositories.NewUser(db)
	sessionRepo := repositories.NewSession(db)
	onboardingRepo := repositories.NewOnboarding(db)
	applicationRepo := repositories.NewApplication(db)
	documentRepo := repositories.NewDocument(db)
	journalRepo := repositories.NewJournal(db)

	// Initialize controllers with repositories and services
	middleware := middleware.New(db, config, userRepo, sessionRepo)
	auth := authController.New(userRepo, sessionRepo, config)
	wizardController := wizard.NewController(applicationRepo, onboardingRepo, documentRepo, transactionService)
	documents := documentController.New(documentRepo, store)
	applications := applicationController.New(applicationRepo, eventBus)
	journey := journeyController.New(onboardingRepo, journalRepo, store)

	websocket, err := websockets.New(db, eventBus, config)
	if err != nil {
		return &App{}, log.Err("failed to create websocket manager", err)
	}

	app := &App{
		Database:              db,
		Config:                config,
		Middleware:            middleware,
		Storage:               store,
		TransactionService:    transactionService,
		UserRepo:              userRepo,
		SessionRepo:           sessionRepo,
		OnboardingRepo:        onboardingRepo,
		ApplicationRepo:       applicationRepo,
		DocumentRepo:          documentRepo,
		JournalRepo:           journalRepo,
		AuthController:        auth,
		WizardController:      wizardController,
		DocumentController:    documents,
		ApplicationController: applications,
		JourneyController:     journey,
		Websocket:             websocket,
		EventBus:              eventBus,
	}

	if err := app.validate(); err != nil {
		return &App{}, log.Err("failed to validate app", err)
	}

	return app, nil
}

func (a *App) validate() error {
	log := logger.New("app").Function("validate")
	if a.Database.SQL == nil {
		return log.ErrMsg("database is nil")
	}

	if a.Config == (config.Config{}) {
		return log.ErrMsg("config is nil")
	}

	nilChecks := []any{
		a.Websocket,
		a.EventBus,
		a.Storage,
		a.TransactionService,
		a.UserRepo,
		a.SessionRepo,
		a.OnboardingRepo,
		a.ApplicationRepo,
		a.DocumentRepo,
		a.JournalRepo,
		a.AuthController,
		a.WizardController,
		a.DocumentController,
		a.ApplicationController,
		a.JourneyController,
	}

	for _, check := range nilChecks {
		if check == nil {
			return log.ErrMsg("nil check failed")
		}
	}

	return nil
}

func (a *App) Close() (err error) {
	if a.EventBus != nil {
		if closeErr := a.EventBus.Close(); closeErr != nil {
			err = closeErr
		}
	}

	if dbErr := a.Database.Close(); dbErr != nil {
		err = dbErr
	}

	return err
}
