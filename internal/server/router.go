// Package server assembles the HTTP router of the catalog.
package server

import (
	"net/http"
	"time"

	_ "github.com/franciscosanchezn/pizzeria-catalog/docs" // registers the swagger spec
	"github.com/franciscosanchezn/pizzeria-catalog/internal/auth"
	"github.com/franciscosanchezn/pizzeria-catalog/internal/config"
	"github.com/franciscosanchezn/pizzeria-catalog/internal/controllers"
	"github.com/franciscosanchezn/pizzeria-catalog/internal/middleware"
	"github.com/franciscosanchezn/pizzeria-catalog/internal/services"
	"github.com/franciscosanchezn/pizzeria-catalog/internal/views"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// NewRouter builds the services on top of db and wires every route
func NewRouter(db *gorm.DB, conf *config.Config) (*gin.Engine, error) {
	templates, err := views.Templates()
	if err != nil {
		return nil, err
	}

	pizzaService := services.NewPizzaService(db)
	ingredientService := services.NewIngredientService(db)
	offerService := services.NewOfferService(db)
	userService := services.NewUserService(db)
	sessionService := services.NewSessionService(db, conf.SessionTTL)
	clientService := services.NewClientService(db)
	oauthService := auth.NewOAuthService(db, conf.JWTSecret)

	pizzaController := controllers.NewPizzaController(pizzaService, ingredientService)
	offerController := controllers.NewOfferController(pizzaService, offerService)
	authController := controllers.NewAuthController(userService, sessionService, conf.JWTSecret)
	accountController := controllers.NewAccountController(userService)
	apiController := controllers.NewCatalogAPIController(pizzaService, ingredientService)
	clientController := controllers.NewClientController(clientService)

	router := gin.Default()
	router.SetHTMLTemplate(templates)

	// Health check and OAuth2 endpoints do not depend on the caller identity
	router.GET("/health", healthCheckHandler)
	router.POST("/oauth/token", oauthService.HandleToken)
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	site := router.Group("/")
	site.Use(
		middleware.ErrorHandler(),
		middleware.Authenticate([]byte(conf.JWTSecret), sessionService),
		middleware.Authorize(middleware.DefaultRules()),
	)
	{
		site.GET("/", pizzaController.Home)
		site.GET("/login", authController.LoginForm)
		site.POST("/login", authController.Login)
		site.GET("/logout", authController.Logout)
		site.POST("/logout", authController.Logout)

		pizze := site.Group("/pizze")
		{
			pizze.GET("", pizzaController.Index)
			pizze.POST("/nome", pizzaController.SearchByName)
			pizze.GET("/create", pizzaController.Create)
			pizze.POST("/store", pizzaController.Store)
			pizze.GET("/edit/:id", pizzaController.Edit)
			pizze.POST("/update/:id", pizzaController.Update)
			pizze.GET("/delete/:id", pizzaController.Delete)
			pizze.GET("/:id", pizzaController.Show)

			pizze.GET("/:id/offerte/new", offerController.New)
			pizze.POST("/:id/offerte/new", offerController.Create)
			pizze.GET("/:id/offerte/:offertaId/edit", offerController.Edit)
			pizze.POST("/:id/offerte/:offertaId/edit", offerController.Update)
		}

		site.GET("/users/me", accountController.Profile)
		site.GET("/admin/users", accountController.Users)

		publicAPI := site.Group("/api/v1")
		{
			publicAPI.GET("/pizzas", apiController.ListPizzas)
			publicAPI.GET("/pizzas/:id", apiController.GetPizza)
			publicAPI.GET("/pizzas/:id/offers", apiController.ListOffers)
		}

		adminAPI := site.Group("/admin/api/v1")
		{
			adminAPI.POST("/pizzas", apiController.CreatePizza)
			adminAPI.PUT("/pizzas/:id", apiController.UpdatePizza)
			adminAPI.DELETE("/pizzas/:id", apiController.DeletePizza)

			adminAPI.POST("/clients", clientController.CreateClient)
			adminAPI.GET("/clients", clientController.ListClients)
			adminAPI.DELETE("/clients/:id", clientController.DeleteClient)
		}
	}

	return router, nil
}

// healthCheckHandler handles the health check endpoint
// @Summary Health check
// @Description Check if the service is running
// @Tags health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   "pizzeria-catalog",
	})
}
