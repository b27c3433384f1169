package app

import (
	httpserver "student-coin/internal/app/http-server"
	"student-coin/internal/handlers"
	"student-coin/internal/lib/jwt"
	"student-coin/internal/middlewares"
	"student-coin/internal/repository/postgres"
	"student-coin/internal/repository/redis"
	"student-coin/internal/routes"
	"student-coin/internal/services"
	"context"
	"log/slog"
	"os"
	"time"
)

type App struct {
	HTTPServer *httpserver.Server
}

func New(log *slog.Logger, serverPort, storagePath, secret string, accessTTL, refreshTTL int) *App {
	storage, err := postgres.NewPostgres(context.Background(), storagePath)
	if err != nil {
		panic(err)
	}

	refreshDuration := 24 * time.Hour * time.Duration(refreshTTL)

	jwtGen := jwt.NewGenerator(secret, time.Minute*time.Duration(accessTTL), refreshDuration)

	redisDB, err := redis.InitRedis(os.Getenv("REDIS_STORAGE_PATH"), os.Getenv("redis_password"), os.Getenv("DB_NUMBER"), refreshDuration)
	if err != nil {
		panic(err)
	}

	authService := services.NewAuthService(log, storage, redisDB, jwtGen)
	studentService := services.NewStudentService(log, storage)
	companyService := services.NewCompanyService(log, storage)
	professorService := services.NewProfessorService(log, storage)
	advantageService := services.NewAdvantageService(log, storage)
	transactionService := services.NewTransactionService(log, storage)
	couponService := services.NewCouponService(log, storage)

	authHandler := handlers.NewAuthHandler(log, authService)
	studentHandler := handlers.NewStudentHandler(log, studentService)
	companyHandler := handlers.NewCompanyHandler(log, companyService)
	professorHandler := handlers.NewProfessorHandler(log, professorService)
	advantageHandler := handlers.NewAdvantageHandler(log, advantageService)
	transactionHandler := handlers.NewTransactionHandler(log, transactionService)
	couponHandler := handlers.NewCouponHandler(log, couponService)

	authMiddleware := middlewares.NewAuthMiddleware(jwtGen)

	r := routes.InitRoutes(
		authHandler,
		studentHandler,
		companyHandler,
		professorHandler,
		advantageHandler,
		transactionHandler,
		couponHandler,
		authMiddleware,
	)

	server := httpserver.NewServer(log, serverPort, r)

	return &App{
		HTTPServer: server,
	}
}
