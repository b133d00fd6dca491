package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/groomday/groomday-backend-go/internal/config"
	appHTTP "github.com/groomday/groomday-backend-go/internal/handler/http"
	"github.com/groomday/groomday-backend-go/internal/pkg/database"
	"github.com/groomday/groomday-backend-go/internal/pkg/email"
	"github.com/groomday/groomday-backend-go/internal/pkg/jwt"
	"github.com/groomday/groomday-backend-go/internal/pkg/oauth"
	"github.com/groomday/groomday-backend-go/internal/pkg/storage"
	"github.com/groomday/groomday-backend-go/internal/repository/postgresql"
	appointmentService "github.com/groomday/groomday-backend-go/internal/service/appointment"
	authService "github.com/groomday/groomday-backend-go/internal/service/auth"
	customerService "github.com/groomday/groomday-backend-go/internal/service/customer"
	"github.com/groomday/groomday-backend-go/internal/service/file"
	groomingService "github.com/groomday/groomday-backend-go/internal/service/grooming"
	invitationService "github.com/groomday/groomday-backend-go/internal/service/invitation"
	revenueService "github.com/groomday/groomday-backend-go/internal/service/revenue"
	shopService "github.com/groomday/groomday-backend-go/internal/service/shop"
	staffService "github.com/groomday/groomday-backend-go/internal/service/staff"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	txManager := postgresql.NewTxManager(db)

	userRepo := postgresql.NewUserRepository(db)
	refreshTokenRepo := postgresql.NewRefreshTokenRepository(db)
	shopRepo := postgresql.NewShopRepository(db)
	memberRepo := postgresql.NewMemberRepository(db)
	invitationRepo := postgresql.NewInvitationRepository(db)
	customerRepo := postgresql.NewCustomerRepository(db)
	dogRepo := postgresql.NewDogRepository(db)
	serviceTypeRepo := postgresql.NewServiceTypeRepository(db)
	appointmentRepo := postgresql.NewAppointmentRepository(db)
	serviceLineRepo := postgresql.NewServiceLineRepository(db)
	revenueRepo := postgresql.NewRevenueRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	googleClient := oauth.NewGoogleClient(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL)

	var fileStorage storage.FileStorage
	switch cfg.Storage.Type {
	case "local":
		fileStorage, err = storage.NewLocalStorage(cfg.Storage.BasePath, cfg.Storage.BaseURL)
		if err != nil {
			log.Fatal("Failed to initialize local storage:", err)
		}
	default:
		log.Fatal("Unsupported storage type: ", cfg.Storage.Type)
	}

	fileService := file.NewFileService(fileStorage)
	emailService, err := email.NewEmailService(cfg.SMTP)
	if err != nil {
		log.Fatal("Failed to initialize email service:", err)
	}

	authSvc := authService.NewAuthService(txManager, userRepo, jwtService, refreshTokenRepo)
	shopSvc := shopService.NewShopService(txManager, shopRepo, memberRepo, userRepo, fileService)
	staffSvc := staffService.NewStaffService(memberRepo, userRepo)
	invitationSvc := invitationService.NewInvitationService(
		txManager,
		cfg.Invitation.Expiry,
		cfg.App.FrontendURL,
		invitationRepo,
		memberRepo,
		userRepo,
		shopRepo,
		emailService,
	)
	customerSvc := customerService.NewCustomerService(customerRepo, dogRepo, fileService)
	groomingSvc := groomingService.NewGroomingService(serviceTypeRepo)
	appointmentSvc := appointmentService.NewAppointmentService(
		txManager,
		appointmentRepo,
		serviceLineRepo,
		serviceTypeRepo,
		dogRepo,
		memberRepo,
	)
	revenueSvc := revenueService.NewRevenueService(revenueRepo)

	router := appHTTP.NewRouter(jwtService, cfg.App.FrontendURL, appHTTP.Handlers{
		Auth:        appHTTP.NewAuthHandler(jwtService, authSvc, googleClient, cfg.App.FrontendURL),
		Shop:        appHTTP.NewShopHandler(shopSvc),
		Staff:       appHTTP.NewStaffHandler(staffSvc),
		Invitation:  appHTTP.NewInvitationHandler(invitationSvc),
		Customer:    appHTTP.NewCustomerHandler(customerSvc),
		Grooming:    appHTTP.NewGroomingHandler(groomingSvc),
		Appointment: appHTTP.NewAppointmentHandler(appointmentSvc),
		Revenue:     appHTTP.NewRevenueHandler(revenueSvc),
	})

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
