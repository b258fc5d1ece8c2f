package main

import (
	"net/http"
	"os"
	"time"

	"athletehub/api/handler"
	apiMiddleware "athletehub/api/middleware"
	"athletehub/api/routes"
	"athletehub/config"
	"athletehub/internal/repository"
	"athletehub/internal/service"
	"athletehub/internal/utils"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
)

func main() {
	db := config.ConnectionDb()
	validate := validator.New()

	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)

	accessSecret := []byte(os.Getenv("JWT_SECRET"))
	issuer := os.Getenv("JWT_ISSUER")
	if len(accessSecret) == 0 {
		logger.Fatal("JWT_SECRET is required")
	}

	accessManager := utils.JWTManager{
		Secret:         accessSecret,
		Issuer:         issuer,
		AccessTokenTTL: 15 * time.Minute,
	}
	accessIssuer := service.JWTAccessIssuer{Manager: &accessManager}

	storage, err := service.NewMinIOStorage(
		os.Getenv("MINIO_ENDPOINT"),
		os.Getenv("MINIO_ACCESS_KEY"),
		os.Getenv("MINIO_SECRET_KEY"),
		os.Getenv("MINIO_USE_SSL") == "true",
	)
	if err != nil {
		logger.WithError(err).Fatal("object storage init failed")
	}

	emailSender := service.NewResendEmailSender(
		os.Getenv("RESEND_API_KEY"),
		os.Getenv("EMAIL_FROM"),
		os.Getenv("APP_BASE_URL"),
	)

	userRepo := repository.NewUserRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	verificationRepo := repository.NewVerificationCodeRepository(db)
	folderRepo := repository.NewFolderRepository(db)
	studentFolderRepo := repository.NewStudentFolderRepository(db)
	fileRepo := repository.NewFileRepository(db)
	announcementRepo := repository.NewAnnouncementRepository(db)
	securityRepo := repository.NewSecurityLogRepository(db)

	passwordHasher := service.BcryptPasswordHasher{}
	clock := service.RealClock{}

	authService := service.NewAuthService(
		userRepo,
		sessionRepo,
		verificationRepo,
		securityRepo,
		emailSender,
		passwordHasher,
		accessIssuer,
		service.HOTPChallengeIssuer{},
		storage,
		clock,
		logger,
		service.AuthConfig{
			AccessTokenTTL:  15 * time.Minute,
			RefreshTokenTTL: 30 * 24 * time.Hour,
			ShortSessionTTL: 12 * time.Hour,
			SignupCodeTTL:   24 * time.Hour,
			RecoveryCodeTTL: 30 * time.Minute,
		},
	)
	folderService := service.NewFolderService(folderRepo, studentFolderRepo, fileRepo, userRepo, storage, logger)
	fileService := service.NewFileService(fileRepo, folderRepo, studentFolderRepo, userRepo, storage, logger)
	announcementService := service.NewAnnouncementService(announcementRepo)
	userService := service.NewUserService(userRepo, securityRepo)
	reportService := service.NewReportService(userRepo, clock)

	authHandler := handler.NewAuthHandler(authService, validate)
	authHandler.CookieDomain = os.Getenv("COOKIE_DOMAIN")
	authHandler.SecureCookies = os.Getenv("COOKIE_SECURE") != "false"

	folderHandler := handler.NewFolderHandler(folderService, validate)
	fileHandler := handler.NewFileHandler(fileService)
	announcementHandler := handler.NewAnnouncementHandler(announcementService, validate)
	userHandler := handler.NewUserHandler(userService, authService)
	reportHandler := handler.NewReportHandler(reportService)

	app := echo.New()
	app.HideBanner = true
	app.HidePort = true
	app.Use(echoMiddleware.Recover())
	app.Use(echoMiddleware.RequestLoggerWithConfig(echoMiddleware.RequestLoggerConfig{
		LogStatus:   true,
		LogMethod:   true,
		LogURI:      true,
		LogRemoteIP: true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v echoMiddleware.RequestLoggerValues) error {
			entry := logger.WithFields(logrus.Fields{
				"status": v.Status,
				"method": v.Method,
				"uri":    v.URI,
				"ip":     v.RemoteIP,
			})
			if v.Error != nil {
				entry.WithError(v.Error).Error("request")
				return nil
			}
			entry.Info("request")
			return nil
		},
	}))

	authMiddleware := apiMiddleware.AuthMiddleware{JWT: &accessManager}
	router := routes.NewRouter(
		app,
		authHandler,
		folderHandler,
		fileHandler,
		announcementHandler,
		userHandler,
		reportHandler,
		authMiddleware,
	)
	router.RegisterRoutes()

	addr := os.Getenv("HTTP_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	server := &http.Server{
		Addr:              addr,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.WithField("addr", addr).Info("server started")
	if err := app.StartServer(server); err != nil {
		logger.WithError(err).Fatal("server stopped")
	}
}
