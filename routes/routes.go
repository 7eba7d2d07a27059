package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/VaniNagpal/Restaurant-Backend/configs"
	"github.com/VaniNagpal/Restaurant-Backend/controllers"
	"github.com/VaniNagpal/Restaurant-Backend/middlewares"
	"github.com/VaniNagpal/Restaurant-Backend/pkg/cache"
	"github.com/VaniNagpal/Restaurant-Backend/repository"
	"github.com/VaniNagpal/Restaurant-Backend/services"
	"github.com/VaniNagpal/Restaurant-Backend/ws"
)

func RegisterRoutes(r *gin.Engine, cfg *configs.Config) {
	r.Use(middlewares.CORSMiddleware(cfg.CORSOrigin))
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	db := configs.DB()
	catalogCache := cache.New(cfg.RedisAddr, cfg.RedisPassword)

	// Repositories
	userRepo := repository.NewUserRepository(db)
	restRepo := repository.NewRestaurantRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Order event hub
	hub := ws.NewOrderHub()
	go hub.Run()

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	restSvc := services.NewRestaurantService(restRepo, catalogCache)
	cartSvc := services.NewCartService(db, cartRepo, userRepo, restRepo)
	orderSvc := services.NewOrderService(db, orderRepo, cartRepo, userRepo, hub)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	restCtrl := controllers.NewRestaurantController(restSvc)
	cartCtrl := controllers.NewCartController(cartSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)

	auth := middlewares.AuthMiddleware(cfg.JWTSecret)

	// Auth (public)
	u := r.Group("/user")
	{
		u.POST("/register", authCtrl.Register)
		u.POST("/login", authCtrl.Login)
	}
	r.GET("/getuser", auth, authCtrl.Me)

	// Catalog
	rest := r.Group("/restaurant", auth)
	{
		rest.GET("/all", restCtrl.List)
		rest.GET("/:restaurantId", restCtrl.Detail)
		rest.GET("/:restaurantId/get-all-cusines", restCtrl.Cuisines)
		rest.GET("/:restaurantId/get-food-items", restCtrl.FoodItems)
		rest.GET("/get-food-item/:id", restCtrl.FoodItem)

		rest.POST("/register", restCtrl.Register)
		rest.POST("/add-cusine-category", restCtrl.AddCuisine)
		rest.POST("/:restaurantId/delete-cusine-category/:id", restCtrl.DeleteCuisine)
		rest.POST("/add-food-item", restCtrl.AddFoodItem)
		rest.POST("/update-food-item/:id", restCtrl.UpdateFoodItem)
		rest.GET("/:restaurantId/delete-food-item/:id", restCtrl.DeleteFoodItem)
	}

	// Cart
	cart := r.Group("/cart", auth)
	{
		cart.GET("", cartCtrl.Get)
		cart.GET("/add/:foodId", cartCtrl.Add)
		cart.POST("/add/:foodId", cartCtrl.Add)
		cart.GET("/increase/:id", cartCtrl.Increase)
		cart.GET("/decrease/:id", cartCtrl.Decrease)
		cart.GET("/delete/:id", cartCtrl.Delete)
		cart.POST("/checkout", orderCtrl.Checkout)
	}

	// Order history
	orders := r.Group("/orders", auth)
	{
		orders.GET("", orderCtrl.List)
		orders.GET("/:id", orderCtrl.Detail)
	}

	// Order events (server push)
	r.GET("/ws/orders", auth, hub.HandleWebSocket)
}
