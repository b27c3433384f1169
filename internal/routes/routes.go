package routes

import (
	"student-coin/internal/handlers"
	"student-coin/internal/middlewares"

	"github.com/go-openapi/runtime/middleware"

	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func InitRoutes(
	authHandler *handlers.AuthHandler,
	studentHandler *handlers.StudentHandler,
	companyHandler *handlers.CompanyHandler,
	professorHandler *handlers.ProfessorHandler,
	advantageHandler *handlers.AdvantageHandler,
	transactionHandler *handlers.TransactionHandler,
	couponHandler *handlers.CouponHandler,
	authMiddleware *middlewares.AuthMiddleware,
) *gin.Engine {
	router := gin.Default()

	_ = router.SetTrustedProxies(nil)

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:8080"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.StaticFile("/swagger.yaml", "./swagger.yaml")

	opts := middleware.SwaggerUIOpts{SpecURL: "/swagger.yaml"}
	sh := middleware.SwaggerUI(opts, nil)

	router.GET("/swagger/*any", func(c *gin.Context) {
		sh.ServeHTTP(c.Writer, c.Request)
	})

	api := router.Group("/api")

	// public routes
	api.POST("/auth/login", authHandler.Login)
	api.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	api.POST("/alunos", studentHandler.Create)
	api.GET("/alunos", studentHandler.List)
	api.GET("/alunos/:id", studentHandler.Get)

	api.POST("/empresas", companyHandler.Create)
	api.GET("/empresas", companyHandler.List)
	api.GET("/empresas/:id", companyHandler.Get)
	api.GET("/empresas/:id/vantagens", advantageHandler.ListByCompany)

	api.POST("/professores", professorHandler.Create)
	api.GET("/professores/:id", professorHandler.Get)

	api.GET("/vantagens", advantageHandler.List)
	api.GET("/vantagens/:id", advantageHandler.Get)

	// protected routes
	api.Use(authMiddleware.Handle())
	{
		api.PUT("/alunos/:id", studentHandler.Update)
		api.DELETE("/alunos/:id", studentHandler.Delete)
		api.PATCH("/alunos/:id/adicionar-moedas", studentHandler.AddCoins)
		api.PATCH("/alunos/:id/debitar-moedas", studentHandler.DebitCoins)

		api.PUT("/empresas/:id", companyHandler.Update)
		api.DELETE("/empresas/:id", companyHandler.Delete)
		api.POST("/empresas/:id/vantagens", advantageHandler.Create)
		api.PUT("/empresas/:id/vantagens/:vid", advantageHandler.Update)
		api.DELETE("/empresas/:id/vantagens/:vid", advantageHandler.Delete)

		api.POST("/professores/:id/enviar-moedas", professorHandler.SendCoins)

		api.POST("/vantagens/:id/resgatar", advantageHandler.Redeem)

		api.POST("/cupoms/:codigo/usar", couponHandler.Use)

		api.GET("/transacoes", transactionHandler.List)
		api.GET("/transacoes/aluno/:id", transactionHandler.ByStudent)
		api.GET("/transacoes/professor/:id", transactionHandler.ByProfessor)
		api.GET("/transacoes/tipo/:tipo", transactionHandler.ByKind)
		api.GET("/transacoes/detalhe/:id", transactionHandler.Get)
	}

	return router
}
