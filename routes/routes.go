package routes

import (
	"github.com/asher5712/LittleLemonAPI/configs"
	"github.com/asher5712/LittleLemonAPI/controllers"
	"github.com/asher5712/LittleLemonAPI/entity"
	"github.com/asher5712/LittleLemonAPI/middlewares"
	"github.com/asher5712/LittleLemonAPI/repository"
	"github.com/asher5712/LittleLemonAPI/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterRoutes is the authorization table: every path and verb pairs with
// its gate right here, evaluated before the handler runs.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	categorySvc := services.NewCategoryService(categoryRepo)
	menuSvc := services.NewMenuService(menuRepo, categoryRepo)
	groupSvc := services.NewGroupService(userRepo)
	cartSvc := services.NewCartService(db, cartRepo, menuRepo)
	orderSvc := services.NewOrderService(db, orderRepo, cartRepo, userRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	categoryCtrl := controllers.NewCategoryController(categorySvc)
	menuCtrl := controllers.NewMenuController(menuSvc)
	groupCtrl := controllers.NewGroupController(groupSvc)
	cartCtrl := controllers.NewCartController(cartSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)

	authRequired := middlewares.AuthRequired(db, cfg.JWTSecret)
	authOptional := middlewares.AuthOptional(db, cfg.JWTSecret)
	manager := middlewares.Require(middlewares.ManagerOnly)

	// Auth
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
		a.GET("/me", authRequired, authCtrl.Me)
	}

	// Categories: open reads, manager writes
	cat := r.Group("/categories")
	{
		cat.GET("", authOptional, categoryCtrl.List)
		cat.GET("/:id", authOptional, categoryCtrl.Get)
		cat.POST("", authRequired, manager, categoryCtrl.Create)
		cat.PUT("/:id", authRequired, manager, categoryCtrl.Update)
		cat.PATCH("/:id", authRequired, manager, categoryCtrl.Update)
		cat.DELETE("/:id", authRequired, manager, categoryCtrl.Delete)
	}

	// Menu items: open reads, manager writes
	menu := r.Group("/menu-items")
	{
		menu.GET("", authOptional, menuCtrl.List)
		menu.GET("/:id", authOptional, menuCtrl.Get)
		menu.POST("", authRequired, manager, menuCtrl.Create)
		menu.PUT("/:id", authRequired, manager, menuCtrl.Update)
		menu.PATCH("/:id", authRequired, manager, menuCtrl.Update)
		menu.DELETE("/:id", authRequired, manager, menuCtrl.Delete)
	}

	// Staff groups: manager only, both groups
	groups := r.Group("/groups", authRequired, manager)
	{
		groups.GET("/manager/users", groupCtrl.List(entity.RoleManager))
		groups.POST("/manager/users", groupCtrl.Add(entity.RoleManager))
		groups.DELETE("/manager/users/:id", groupCtrl.Remove(entity.RoleManager))

		groups.GET("/delivery-crew/users", groupCtrl.List(entity.RoleDeliveryCrew))
		groups.POST("/delivery-crew/users", groupCtrl.Add(entity.RoleDeliveryCrew))
		groups.DELETE("/delivery-crew/users/:id", groupCtrl.Remove(entity.RoleDeliveryCrew))
	}

	// Cart: any authenticated user, always scoped to self
	cart := r.Group("/cart", authRequired)
	{
		cart.GET("/menu-items", cartCtrl.List)
		cart.POST("/menu-items", cartCtrl.Add)
		cart.DELETE("/menu-items", cartCtrl.Flush)
	}

	// Orders: reads for any authenticated role, checkout for customers,
	// updates for staff
	orders := r.Group("/orders", authRequired)
	{
		orders.GET("", orderCtrl.List)
		orders.POST("", middlewares.Require(middlewares.CustomerOnly), orderCtrl.Checkout)
		orders.GET("/:id", orderCtrl.Get)
		orders.PATCH("/:id", middlewares.Require(middlewares.ManagerOrCrew), orderCtrl.Update)
		orders.PUT("/:id", middlewares.Require(middlewares.ManagerOrCrew), orderCtrl.Update)
		orders.DELETE("/:id", manager, orderCtrl.Delete)
	}
}
