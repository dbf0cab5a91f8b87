package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	_ "github.com/lib/pq"
	httpSwagger "github.com/swaggo/http-swagger"

	"multipoles-backend/config"
	_ "multipoles-backend/docs"
	"multipoles-backend/internal/handler"
	"multipoles-backend/internal/mail"
	"multipoles-backend/internal/model"
	"multipoles-backend/internal/repository"
	"multipoles-backend/internal/security"
	"multipoles-backend/internal/service"
)

// @title Multipoles backend
// @version 1.0
// @description REST API for the Multipoles marketing site and its admin dashboard

// @host localhost:8080

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.LoadConfig("config.yaml")
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	db, err := config.SetupDatabase(cfg.DatabaseConfig.DSN)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("error closing database: %v", err)
		}
	}()

	redisClient, err := config.SetupRedis(&cfg.RedisConfig)
	if err != nil {
		log.Fatalf("failed to connect to redis: %v", err)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Printf("error closing redis: %v", err)
		}
	}()

	srv, router := config.SetupServer(cfg.ServerAddr)

	userRepo := repository.NewUserRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	blogRepo := repository.NewBlogRepository(db)
	carouselRepo := repository.NewCarouselRepository(db)
	teamRepo := repository.NewTeamRepository(db)
	solutionRepo := repository.NewSolutionRepository(db)
	realisationRepo := repository.NewRealisationRepository(db)
	modelRepo := repository.NewModel3DRepository(db)
	contactRepo := repository.NewContactFormRepository(db)
	devisRepo := repository.NewDevisFormRepository(db)

	cacheTTL := time.Duration(cfg.Cache.ContentTTLSeconds) * time.Second
	if cacheTTL <= 0 {
		cacheTTL = 5 * time.Minute
	}
	cacheRepo := repository.NewCacheRepository(redisClient, cacheTTL)

	s3Service, err := service.NewS3Service(ctx, &cfg.S3Config)
	if err != nil {
		log.Fatalf("failed to create S3 service: %v", err)
	}

	jwtService := security.NewJWTService(&cfg.JWT)
	mailer := mail.NewSMTPMailer(&cfg.SMTP)

	authService := service.NewAuthenticationService(userRepo, sessionRepo, jwtService)
	userService := service.NewUserService(userRepo)
	blogService := service.NewBlogService(blogRepo, s3Service)
	carouselService := service.NewCarouselService(carouselRepo, cacheRepo)
	teamService := service.NewTeamService(teamRepo, cacheRepo)
	solutionService := service.NewSolutionService(solutionRepo, cacheRepo)
	realisationService := service.NewRealisationService(realisationRepo, s3Service)
	modelService := service.NewModel3DService(modelRepo, s3Service)
	formsService := service.NewFormsService(contactRepo, devisRepo, mailer)

	authHandler := handler.NewAuthenticationHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	blogHandler := handler.NewBlogHandler(blogService)
	carouselHandler := handler.NewCarouselHandler(carouselService)
	teamHandler := handler.NewTeamHandler(teamService)
	solutionHandler := handler.NewSolutionHandler(solutionService)
	realisationHandler := handler.NewRealisationHandler(realisationService)
	modelHandler := handler.NewModel3DHandler(modelService)
	formsHandler := handler.NewFormsHandler(formsService)

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.CORS.FrontendURL, cfg.CORS.DashboardURL},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Accept-Language", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	router.Get("/swagger/*", httpSwagger.WrapHandler)

	setupAuthRoutes(router, authHandler, jwtService)
	setupContentRoutes(router, blogHandler, carouselHandler, teamHandler, solutionHandler, realisationHandler, modelHandler, formsHandler)
	setupAdminRoutes(router, jwtService, userHandler, blogHandler, carouselHandler, teamHandler, solutionHandler, realisationHandler, modelHandler, formsHandler)

	go service.RunSessionCleanup(ctx, authService, cleanupInterval(cfg.Sessions.CleanupInterval))

	runServer(ctx, srv)
}

func cleanupInterval(raw string) time.Duration {
	interval, err := time.ParseDuration(raw)
	if err != nil || interval <= 0 {
		return time.Hour
	}
	return interval
}

func setupAuthRoutes(r chi.Router, h *handler.AuthenticationHandler, jwtService *security.JWTService) {
	r.Route("/api/v1/auth", func(r chi.Router) {
		r.Post("/login", h.Login)
		r.Post("/refresh", h.Refresh)
		r.Post("/logout", h.Logout)

		r.Group(func(r chi.Router) {
			r.Use(security.Authenticate(jwtService))
			r.Use(security.RequireRoles(model.RoleSuperAdmin, model.RoleAdmin))
			r.Get("/me", h.Me)
		})
	})
}

// setupContentRoutes exposes the read-only public surface plus the two
// form submission endpoints. No authentication here.
func setupContentRoutes(
	r chi.Router,
	blog *handler.BlogHandler,
	carousel *handler.CarouselHandler,
	team *handler.TeamHandler,
	solutions *handler.SolutionHandler,
	realisations *handler.RealisationHandler,
	models *handler.Model3DHandler,
	forms *handler.FormsHandler,
) {
	r.Route("/api/v1/content", func(r chi.Router) {
		r.Get("/blog", blog.ListPublic)
		r.Get("/blog/{slug}", blog.GetBySlug)
		r.Get("/carousel", carousel.ListPublic)
		r.Get("/team", team.ListPublic)
		r.Get("/solutions", solutions.ListPublic)
		r.Get("/realisations", realisations.ListPublic)
		r.Get("/realisations/{id}", realisations.GetPublic)
		r.Get("/models-3d", models.ListPublic)
		r.Get("/models-3d/{id}", models.GetPublic)
		r.Post("/contact", forms.SubmitContact)
		r.Post("/devis", forms.SubmitDevis)
	})
}

// setupAdminRoutes gates everything behind a valid access token. User
// management additionally requires the super_admin role; the rest is
// open to both roles.
func setupAdminRoutes(
	r chi.Router,
	jwtService *security.JWTService,
	users *handler.UserHandler,
	blog *handler.BlogHandler,
	carousel *handler.CarouselHandler,
	team *handler.TeamHandler,
	solutions *handler.SolutionHandler,
	realisations *handler.RealisationHandler,
	models *handler.Model3DHandler,
	forms *handler.FormsHandler,
) {
	r.Route("/api/v1/admin", func(r chi.Router) {
		r.Use(security.Authenticate(jwtService))

		r.Group(func(r chi.Router) {
			r.Use(security.RequireRoles(model.RoleSuperAdmin))
			r.Post("/users", users.Create)
			r.Get("/users", users.List)
			r.Get("/users/{id}", users.Get)
			r.Put("/users/{id}", users.Update)
			r.Delete("/users/{id}", users.Delete)
		})

		r.Group(func(r chi.Router) {
			r.Use(security.RequireRoles(model.RoleSuperAdmin, model.RoleAdmin))

			r.Route("/blog", func(r chi.Router) {
				r.Get("/", blog.ListAdmin)
				r.Post("/", blog.Create)
				r.Post("/upload-url", blog.UploadURL)
				r.Get("/{id}", blog.Get)
				r.Put("/{id}", blog.Update)
				r.Delete("/{id}", blog.Delete)
				r.Post("/{id}/publish", blog.Publish)
				r.Post("/{id}/schedule", blog.Schedule)
			})

			r.Route("/carousel", func(r chi.Router) {
				r.Get("/", carousel.ListAdmin)
				r.Post("/", carousel.Create)
				r.Put("/{id}", carousel.Update)
				r.Delete("/{id}", carousel.Delete)
			})

			r.Route("/team", func(r chi.Router) {
				r.Get("/", team.ListAdmin)
				r.Post("/", team.Create)
				r.Put("/{id}", team.Update)
				r.Delete("/{id}", team.Delete)
			})

			r.Route("/solutions", func(r chi.Router) {
				r.Get("/", solutions.ListAdmin)
				r.Post("/", solutions.Create)
				r.Put("/{id}", solutions.Update)
				r.Delete("/{id}", solutions.Delete)
			})

			r.Route("/realisations", func(r chi.Router) {
				r.Get("/", realisations.ListAdmin)
				r.Post("/", realisations.Create)
				r.Post("/upload-url", realisations.UploadURL)
				r.Put("/{id}", realisations.Update)
				r.Delete("/{id}", realisations.Delete)
			})

			r.Route("/models-3d", func(r chi.Router) {
				r.Get("/", models.ListAdmin)
				r.Post("/", models.Create)
				r.Post("/upload-url", models.UploadURL)
				r.Put("/{id}", models.Update)
				r.Delete("/{id}", models.Delete)
			})

			r.Route("/forms", func(r chi.Router) {
				r.Get("/contact", forms.ListContact)
				r.Patch("/contact/{id}/status", forms.UpdateContactStatus)
				r.Get("/devis", forms.ListDevis)
				r.Patch("/devis/{id}/status", forms.UpdateDevisStatus)
			})
		})
	})
}

func runServer(ctx context.Context, server *http.Server) {
	serverErrors := make(chan error, 1)
	go func() {
		log.Println("server listening on " + server.Addr)
		serverErrors <- server.ListenAndServe()
	}()

	signalChannel := make(chan os.Signal, 1)
	signal.Notify(signalChannel, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil {
			log.Fatalf("server error: %v", err)
		}
	case sig := <-signalChannel:
		log.Printf("received signal %v, shutting down", sig)
	}

	shutDownCtx, shutDownCancel := context.WithTimeout(ctx, 5*time.Second)
	defer shutDownCancel()

	if err := server.Shutdown(shutDownCtx); err != nil {
		log.Printf("error during shutdown: %v", err)
	} else {
		log.Println("server stopped")
	}
}
