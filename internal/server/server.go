package server

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"academicworld/internal/cache"
	"academicworld/internal/config"
	"academicworld/internal/database"
	"academicworld/internal/middleware"
	"academicworld/internal/models"
	"academicworld/internal/repository"
	"academicworld/internal/service"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Server holds all dependencies and provides handlers
type Server struct {
	config         *config.Config
	db             *gorm.DB
	redis          *redis.Client
	app            *fiber.App
	promMiddleware *fiberprometheus.FiberPrometheus

	userService      *service.UserService
	catalogService   *service.CatalogService
	academicsService *service.AcademicsService

	courseEngagement  *service.EngagementService[models.Course, models.CoursePost, models.CourseBookmark, models.CourseLike]
	collegeEngagement *service.EngagementService[models.College, models.CollegePost, models.CollegeBookmark, models.CollegeLike]
	examEngagement    *service.EngagementService[models.Exam, models.ExamPost, models.ExamBookmark, models.ExamLike]
}

// NewServer creates a server instance, establishing the database and Redis
// connections itself.
func NewServer(cfg *config.Config) (*Server, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	cache.InitRedis(cfg.RedisURL)
	return NewServerWithDeps(cfg, db, cache.GetClient())
}

// NewServerWithDeps creates a Server using already-initialized dependencies.
// Use this in tests or when a bootstrap layer establishes DB/Redis and
// performs explicit seeding.
func NewServerWithDeps(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*Server, error) {
	userRepo := repository.NewUserRepository(db)
	courseRepo := repository.NewCatalogRepository[models.Course](db, models.CourseKind)
	collegeRepo := repository.NewCatalogRepository[models.College](db, models.CollegeKind)
	examRepo := repository.NewCatalogRepository[models.Exam](db, models.ExamKind)
	academicsRepo := repository.NewAcademicsRepository(db)

	server := &Server{
		config:         cfg,
		db:             db,
		redis:          redisClient,
		promMiddleware: middleware.InitMetrics("academicworld-api"),

		userService:      service.NewUserService(userRepo),
		catalogService:   service.NewCatalogService(courseRepo, collegeRepo, examRepo),
		academicsService: service.NewAcademicsService(academicsRepo),

		courseEngagement: service.NewEngagementService(
			models.CourseKind,
			courseRepo,
			repository.NewThreadRepository[models.CoursePost](db, models.CourseKind),
			repository.NewBookmarkRepository[models.CourseBookmark](db, models.CourseKind),
			repository.NewLikeRepository[models.Course, models.CourseLike](db, models.CourseKind),
			models.NewCoursePost,
			models.NewCourseBookmark,
			models.NewCourseLike,
		),
		collegeEngagement: service.NewEngagementService(
			models.CollegeKind,
			collegeRepo,
			repository.NewThreadRepository[models.CollegePost](db, models.CollegeKind),
			repository.NewBookmarkRepository[models.CollegeBookmark](db, models.CollegeKind),
			repository.NewLikeRepository[models.College, models.CollegeLike](db, models.CollegeKind),
			models.NewCollegePost,
			models.NewCollegeBookmark,
			models.NewCollegeLike,
		),
		examEngagement: service.NewEngagementService(
			models.ExamKind,
			examRepo,
			repository.NewThreadRepository[models.ExamPost](db, models.ExamKind),
			repository.NewBookmarkRepository[models.ExamBookmark](db, models.ExamKind),
			repository.NewLikeRepository[models.Exam, models.ExamLike](db, models.ExamKind),
			models.NewExamPost,
			models.NewExamBookmark,
			models.NewExamLike,
		),
	}

	return server, nil
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(middleware.ContextMiddleware())

	if s.promMiddleware != nil {
		app.Use(middleware.MetricsMiddleware(s.promMiddleware))
	}

	app.Use(helmet.New())

	// Structured logging after requestid and context middleware so the
	// request ID reaches the log records.
	app.Use(middleware.StructuredLogger())

	// CORS must run before middlewares that can short-circuit (e.g. limiter)
	// so browser clients still receive CORS headers on error responses.
	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "http://localhost:5173,http://localhost:3000"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           86400,
	}))

	// Global rate limiting (100 requests per minute per IP)
	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 1 * time.Minute,
		Next: func(c *fiber.Ctx) bool {
			return c.Method() == fiber.MethodOptions
		},
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests, please try again later.",
			})
		},
	}))
}

// SetupRoutes configures all routes for the application
func (s *Server) SetupRoutes(app *fiber.App) {
	api := app.Group("/api")

	// Health checks
	app.Get("/health/live", s.LivenessCheck)
	app.Get("/health/ready", s.ReadinessCheck)
	app.Get("/health", s.ReadinessCheck)
	api.Get("/", s.HealthCheck)

	// Metrics endpoint for Prometheus
	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/metrics")
	}
	api.Get("/metrics/dashboard", monitor.New(monitor.Config{
		Title: "Academic World Metrics Dashboard",
	}))

	auth := s.AuthRequired()
	admin := s.AdminRequired()

	// Auth routes
	authGroup := api.Group("/auth")
	authGroup.Post("/register", middleware.RateLimit(
		s.redis, 3, 10*time.Minute, "register"), s.Register)
	authGroup.Post("/login", middleware.RateLimit(
		s.redis, 10, 5*time.Minute, "login"), s.Login)

	// User routes
	users := api.Group("/users")
	users.Get("/me", auth, s.GetMyProfile)
	users.Get("/", auth, admin, s.GetAllUsers)
	users.Delete("/:identifier", auth, admin, s.DeleteUser)

	// Catalog entity groups. Engagement routes carry literal segments
	// (/ranking, /bookmarks) and specific /:id/:resource routes, so they are
	// mounted before the generic /:id routes.
	courses := api.Group("/courses")
	mountEngagementRoutes(s, courses, s.courseEngagement)
	courses.Get("/", s.GetCourses)
	courses.Post("/", auth, admin, s.CreateCourse)
	courses.Get("/:id", s.GetCourse)
	courses.Patch("/:id", auth, admin, s.UpdateCourse)
	courses.Delete("/:id", auth, admin, s.DeleteCourse)

	colleges := api.Group("/colleges")
	mountEngagementRoutes(s, colleges, s.collegeEngagement)
	colleges.Get("/", s.GetColleges)
	colleges.Post("/", auth, admin, s.CreateCollege)
	colleges.Get("/:id", s.GetCollege)
	colleges.Patch("/:id", auth, admin, s.UpdateCollege)
	colleges.Delete("/:id", auth, admin, s.DeleteCollege)

	exams := api.Group("/exams")
	mountEngagementRoutes(s, exams, s.examEngagement)
	exams.Get("/", s.GetExams)
	exams.Post("/", auth, admin, s.CreateExam)
	exams.Get("/:id", s.GetExam)
	exams.Patch("/:id", auth, admin, s.UpdateExam)
	exams.Delete("/:id", auth, admin, s.DeleteExam)

	// Admission record routes
	academics := api.Group("/academics")
	academics.Get("/", s.GetAcademics)
	academics.Get("/colleges-offering", s.GetCollegesOffering)
	academics.Get("/accepting", s.GetAccepting)
	academics.Post("/", auth, admin, s.CreateAcademics)
	academics.Delete("/:id", auth, admin, s.DeleteAcademics)
}

// HealthCheck is a legacy/simple alias for ReadinessCheck
func (s *Server) HealthCheck(c *fiber.Ctx) error {
	return s.ReadinessCheck(c)
}

// LivenessCheck handles liveness probe requests
func (s *Server) LivenessCheck(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "up",
		"time":   time.Now(),
	})
}

// ReadinessCheck handles readiness probe requests
func (s *Server) ReadinessCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	dbStatus := "healthy"
	sqlDB, err := s.db.DB()
	if err != nil {
		dbStatus = "unhealthy"
	} else if err := sqlDB.PingContext(ctx); err != nil {
		dbStatus = "unhealthy"
	}

	// The app degrades without Redis, so its state is reported but only the
	// database gates readiness.
	redisStatus := "healthy"
	if s.redis != nil {
		if err := s.redis.Ping(ctx).Err(); err != nil {
			redisStatus = "unhealthy"
		}
	} else {
		redisStatus = "unavailable"
	}

	status := fiber.StatusOK
	overallStatus := "healthy"
	if dbStatus == "unhealthy" {
		status = fiber.StatusServiceUnavailable
		overallStatus = "unhealthy"
	}

	return c.Status(status).JSON(fiber.Map{
		"status": overallStatus,
		"checks": fiber.Map{
			"database": dbStatus,
			"redis":    redisStatus,
		},
		"time": time.Now(),
	})
}

// AuthRequired returns the authentication middleware. It validates the JWT
// and stores userID and the token's admin flag in fiber locals.
func (s *Server) AuthRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		tokenString := ""
		if authHeader != "" {
			parts := strings.Split(authHeader, " ")
			if len(parts) == 2 && parts[0] == "Bearer" {
				tokenString = parts[1]
			}
		}
		if tokenString == "" {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Authorization required"))
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
			}
			return []byte(s.config.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Invalid or expired token"))
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Invalid token claims"))
		}

		if issuer, issuerOk := claims["iss"].(string); !issuerOk || issuer != tokenIssuer {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Invalid token issuer"))
		}
		if audience, audienceOk := claims["aud"].(string); !audienceOk || audience != tokenAudience {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Invalid token audience"))
		}

		sub, ok := claims["sub"].(string)
		if !ok {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Invalid subject claim"))
		}
		userID, err := strconv.ParseUint(sub, 10, 32)
		if err != nil {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Invalid user ID in token"))
		}

		isAdmin, _ := claims["admin"].(bool)

		c.Locals("userID", uint(userID))
		c.Locals("isAdmin", isAdmin)
		// Sync to UserContext for logging and downstream services
		ctx := context.WithValue(c.UserContext(), middleware.UserIDKey, uint(userID))
		c.SetUserContext(ctx)

		return c.Next()
	}
}

// AdminRequired returns middleware that rejects non-admin users with 403.
// Must be placed after AuthRequired so the admin flag is in locals.
func (s *Server) AdminRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !currentIsAdmin(c) {
			return models.RespondWithError(c, fiber.StatusForbidden,
				models.NewForbiddenError("Admin access required"))
		}
		return c.Next()
	}
}

// Start starts the server
func (s *Server) Start() error {
	app := fiber.New(fiber.Config{
		AppName: "Academic World API",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			log.Printf("Error: %v", err)
			return models.RespondWithError(c, fiber.StatusInternalServerError,
				models.NewInternalError(err))
		},
	})
	s.app = app

	s.SetupMiddleware(app)
	s.SetupRoutes(app)

	log.Printf("Server starting on port %s...", s.config.Port)
	return app.Listen(":" + s.config.Port)
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.app != nil {
		if err := s.app.ShutdownWithContext(ctx); err != nil {
			log.Printf("error shutting down HTTP server: %v", err)
		}
	}

	if sqlDB, err := s.db.DB(); err == nil {
		if cerr := sqlDB.Close(); cerr != nil {
			log.Printf("error closing sql DB: %v", cerr)
		}
	}

	if s.redis != nil {
		if rerr := s.redis.Close(); rerr != nil {
			log.Printf("error closing redis: %v", rerr)
		}
	}

	log.Println("Server shutdown complete")
	return nil
}
