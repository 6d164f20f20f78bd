package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"schulhof.app/gradebook/internal/config"
	"schulhof.app/gradebook/internal/handler"
	"schulhof.app/gradebook/internal/middleware"
	"schulhof.app/gradebook/internal/repository"
	"schulhof.app/gradebook/internal/service"
	"schulhof.app/gradebook/internal/token"
)

type Server struct {
	engine      *gin.Engine
	db          *gorm.DB
	redisClient *redis.Client

	Users service.UserService
}

func NewServer(db *gorm.DB, redisClient *redis.Client, cfg *config.Config) *Server {
	userRepo := repository.NewUserRepository(db)
	subjectRepo := repository.NewSubjectRepository(db)
	semesterRepo := repository.NewSemesterRepository(db)
	semesterSubjectRepo := repository.NewSemesterSubjectRepository(db)
	classRepo := repository.NewSchoolClassRepository(db)
	testRepo := repository.NewTestRepository(db)
	studentRepo := repository.NewStudentRepository(db)
	gradeRepo := repository.NewGradeRepository(db)

	tokens := token.NewProvider(cfg.JWTSecret, cfg.JWTTTL)

	var throttle service.LoginThrottle
	if redisClient != nil {
		throttle = service.NewLoginThrottle(redisClient, cfg.LoginMaxAttempts, cfg.LoginLockout)
	}

	userSvc := service.NewUserService(userRepo)
	authSvc := service.NewAuthService(userRepo, userSvc, tokens, throttle)
	subjectSvc := service.NewSubjectService(subjectRepo)
	semesterSvc := service.NewSemesterService(semesterRepo)
	semesterSubjectSvc := service.NewSemesterSubjectService(semesterSubjectRepo, semesterRepo, subjectRepo)
	classSvc := service.NewSchoolClassService(classRepo, semesterSubjectRepo)
	testSvc := service.NewTestService(testRepo, semesterSubjectRepo, semesterRepo, classRepo)
	studentSvc := service.NewStudentService(studentRepo)
	gradeSvc := service.NewGradeService(gradeRepo, userRepo, testRepo)

	authHandler := handler.NewAuthHandler(authSvc)
	userHandler := handler.NewUserHandler(userSvc)
	subjectHandler := handler.NewSubjectHandler(subjectSvc)
	semesterHandler := handler.NewSemesterHandler(semesterSvc)
	semesterSubjectHandler := handler.NewSemesterSubjectHandler(semesterSubjectSvc)
	classHandler := handler.NewSchoolClassHandler(classSvc)
	testHandler := handler.NewTestHandler(testSvc)
	studentHandler := handler.NewStudentHandler(studentSvc)
	gradeHandler := handler.NewGradeHandler(gradeSvc)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(gin.Logger())

	setupCORS(router, cfg.AllowedOrigins)

	authMiddleware := middleware.NewAuthMiddleware(tokens)

	// Public routes (no auth required)
	public := router.Group("/public")
	{
		public.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "UP"})
		})
		public.POST("/auth/login", authHandler.Login)
		public.POST("/auth/register", authHandler.Register)
	}

	// Protected routes (apply auth middleware explicitly)
	protected := router.Group("")
	protected.Use(authMiddleware.RequireAuth())

	admin := router.Group("")
	admin.Use(authMiddleware.RequireAuth(), authMiddleware.RequireAdmin())
	{
		admin.GET("/admin/users", userHandler.GetAllUsers)
		admin.GET("/admin/users/active", userHandler.GetActiveUsers)
		admin.POST("/admin/users", userHandler.CreateUser)
		admin.PUT("/admin/users/:username/password", userHandler.ChangePassword)
		admin.PUT("/admin/users/:username/active", userHandler.SetActive)
		admin.POST("/admin/users/:username/roles", userHandler.GrantRole)
		admin.DELETE("/admin/users/:username/roles", userHandler.RevokeRole)
		admin.DELETE("/admin/users/:username", userHandler.DeleteUser)
	}

	{
		protected.GET("/subjects", subjectHandler.GetAll)
		protected.GET("/subjects/:id", subjectHandler.GetByID)
		admin.POST("/subjects", subjectHandler.Create)
		admin.PUT("/subjects/:id", subjectHandler.Update)
		admin.DELETE("/subjects/:id", subjectHandler.Delete)

		protected.GET("/semesters", semesterHandler.GetAll)
		protected.GET("/semesters/:id", semesterHandler.GetByID)
		admin.POST("/semesters", semesterHandler.Create)
		admin.PUT("/semesters/:id", semesterHandler.Update)
		admin.DELETE("/semesters/:id", semesterHandler.Delete)

		protected.GET("/semester-subjects", semesterSubjectHandler.GetAll)
		protected.GET("/semester-subjects/:id", semesterSubjectHandler.GetByID)
		admin.POST("/semester-subjects", semesterSubjectHandler.Create)
		admin.PUT("/semester-subjects/:id", semesterSubjectHandler.Update)
		admin.DELETE("/semester-subjects/:id", semesterSubjectHandler.Delete)

		protected.GET("/classes", classHandler.GetAll)
		protected.GET("/classes/:id", classHandler.GetByID)
		admin.POST("/classes", classHandler.Create)
		admin.PUT("/classes/:id", classHandler.Update)
		admin.DELETE("/classes/:id", classHandler.Delete)

		protected.GET("/tests", testHandler.GetAll)
		protected.GET("/tests/:id", testHandler.GetByID)
		admin.POST("/tests", testHandler.Create)
		admin.PUT("/tests/:id", testHandler.Update)
		admin.DELETE("/tests/:id", testHandler.Delete)

		protected.GET("/students", studentHandler.GetAll)
		protected.GET("/students/active", studentHandler.GetActive)
		protected.GET("/students/:id", studentHandler.GetByID)
		admin.POST("/students", studentHandler.Create)
		admin.PUT("/students/:id", studentHandler.Update)
		admin.DELETE("/students/:id", studentHandler.Delete)

		protected.GET("/grades", gradeHandler.Find)
		protected.GET("/grades/:id", gradeHandler.GetByID)
		protected.GET("/grades/semester/:semesterId", gradeHandler.SemesterResults)
		admin.POST("/grades", gradeHandler.Create)
		admin.PUT("/grades/:id", gradeHandler.Update)
		admin.DELETE("/grades/:id", gradeHandler.Delete)
	}

	return &Server{
		engine:      router,
		db:          db,
		redisClient: redisClient,
		Users:       userSvc,
	}
}

func (s *Server) Run(addr string) error {
	return s.engine.Run(addr)
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func setupCORS(router *gin.Engine, allowedOrigins string) {
	origins := []string{"http://localhost:3000"}
	if allowedOrigins != "" {
		origins = strings.Split(allowedOrigins, ",")
	}

	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
}
