package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/groomday/groomday-backend-go/internal/handler/http/middleware"
	"github.com/groomday/groomday-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type Handlers struct {
	Auth        AuthHandler
	Shop        ShopHandler
	Staff       StaffHandler
	Invitation  InvitationHandler
	Customer    CustomerHandler
	Grooming    GroomingHandler
	Appointment AppointmentHandler
	Revenue     RevenueHandler
}

func NewRouter(jwtService jwt.Service, frontendURL string, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "groomday"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{frontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.Auth.Register)
			r.Post("/refresh", h.Auth.RefreshToken)
			r.Post("/logout", h.Auth.Logout)
			r.Route("/oauth/callback", func(r chi.Router) {
				r.Get("/google", h.Auth.OAuthCallbackGoogle)
			})
			r.Route("/login", func(r chi.Router) {
				r.Post("/", h.Auth.Login)
				r.Route("/oauth", func(r chi.Router) {
					r.Get("/google", h.Auth.LoginWithGoogle)
				})
			})
		})

		// Public: the invitation token is the credential
		r.Get("/invitations/token/{token}", h.Invitation.GetByToken)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Post("/shops", h.Shop.Create)
			r.Post("/invitations/token/{token}/accept", h.Invitation.Accept)

			// Requires shop membership
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireShop)

				r.Route("/shops/my", func(r chi.Router) {
					r.Get("/", h.Shop.GetMy)
					r.Group(func(r chi.Router) {
						r.Use(middleware.RequireOwner)
						r.Put("/", h.Shop.UpdateMy)
						r.Post("/logo", h.Shop.UploadLogo)
					})
				})

				r.Route("/staff", func(r chi.Router) {
					r.Get("/", h.Staff.List)
					r.Group(func(r chi.Router) {
						r.Use(middleware.RequireManager)
						r.Put("/{memberID}", h.Staff.Update)
						r.Delete("/{memberID}", h.Staff.Remove)
					})
				})

				r.Route("/invitations", func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Get("/", h.Invitation.List)
					r.Post("/", h.Invitation.Create)
					r.Delete("/{invitationID}", h.Invitation.Cancel)
					r.Post("/{invitationID}/resend", h.Invitation.Resend)
				})

				r.Route("/customers", func(r chi.Router) {
					r.Get("/", h.Customer.List)
					r.Post("/", h.Customer.Create)
					r.Get("/{customerID}", h.Customer.Get)
					r.Put("/{customerID}", h.Customer.Update)
					r.Delete("/{customerID}", h.Customer.Delete)
					r.Post("/{customerID}/dogs", h.Customer.AddDog)
				})

				r.Route("/dogs", func(r chi.Router) {
					r.Put("/{dogID}", h.Customer.UpdateDog)
					r.Delete("/{dogID}", h.Customer.DeleteDog)
					r.Post("/{dogID}/photo", h.Customer.UploadDogPhoto)
				})

				r.Route("/grooming-types", func(r chi.Router) {
					r.Get("/", h.Grooming.List)
					r.Get("/{typeID}", h.Grooming.Get)
					r.Group(func(r chi.Router) {
						r.Use(middleware.RequireManager)
						r.Post("/", h.Grooming.Create)
						r.Put("/{typeID}", h.Grooming.Update)
						r.Delete("/{typeID}", h.Grooming.Deactivate)
					})
				})

				r.Route("/appointments", func(r chi.Router) {
					r.Get("/", h.Appointment.List)
					r.Post("/", h.Appointment.Create)
					r.Get("/{appointmentID}", h.Appointment.Get)
					r.Put("/{appointmentID}", h.Appointment.Update)
					r.Patch("/{appointmentID}/status", h.Appointment.UpdateStatus)
					r.Delete("/{appointmentID}", h.Appointment.Cancel)
				})

				r.Route("/reports", func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Get("/revenue", h.Revenue.Summary)
				})
			})
		})
	})

	// Locally stored uploads
	r.Handle("/uploads/*", http.StripPrefix("/uploads/", http.FileServer(http.Dir("uploads"))))

	return r
}
