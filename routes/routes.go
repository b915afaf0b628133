package routes

import (
	"github.com/hectorDev2/macao-comanda/configs"
	"github.com/hectorDev2/macao-comanda/controllers"
	"github.com/hectorDev2/macao-comanda/entity"
	"github.com/hectorDev2/macao-comanda/middlewares"
	"github.com/hectorDev2/macao-comanda/repository"
	"github.com/hectorDev2/macao-comanda/services"
	"github.com/hectorDev2/macao-comanda/ws"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, hub *ws.BoardHub) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	tillRepo := repository.NewTillRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	menuSvc := services.NewMenuService(menuRepo)
	cartSvc := services.NewCartService(db, cartRepo, menuRepo)
	orderSvc := services.NewOrderService(db, orderRepo, cartRepo, menuRepo, hub)
	paymentSvc := services.NewPaymentService(db, paymentRepo, orderRepo, hub)
	tillSvc := services.NewTillService(db, tillRepo, paymentRepo, orderRepo, hub)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	menuCtrl := controllers.NewMenuController(menuSvc)
	cartCtrl := controllers.NewCartController(cartSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	kitchenCtrl := controllers.NewKitchenController(orderSvc)
	paymentCtrl := controllers.NewPaymentController(paymentSvc)
	tillCtrl := controllers.NewTillController(tillSvc)
	reportCtrl := controllers.NewReportController(tillSvc)

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/login", authCtrl.Login)
	}
	a.GET("/me", middlewares.AuthMiddleware(cfg.JWTSecret), authCtrl.Me)

	// Any authenticated staff
	staff := r.Group("/", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		staff.GET("/menu", menuCtrl.List)
		staff.GET("/orders", orderCtrl.List)
		staff.GET("/orders/table/:table", orderCtrl.ListForTable)
		staff.GET("/orders/:id", orderCtrl.Detail)
	}

	// Waiter
	waiter := r.Group("/", middlewares.AuthMiddleware(cfg.JWTSecret, entity.RoleWaiter))
	{
		waiter.GET("/cart", cartCtrl.Get)
		waiter.POST("/cart/items", cartCtrl.AddItem)
		waiter.PATCH("/cart/items/:id", cartCtrl.UpdateQty)
		waiter.DELETE("/cart/items/:id", cartCtrl.RemoveItem)
		waiter.DELETE("/cart", cartCtrl.Clear)
		waiter.POST("/orders", orderCtrl.Submit)
		waiter.POST("/orders/checkout", orderCtrl.Checkout)
	}

	// Kitchen board and pipeline; waiters may cancel their own pending lines
	kitchen := r.Group("/", middlewares.AuthMiddleware(cfg.JWTSecret, entity.RoleKitchen, entity.RoleWaiter))
	{
		kitchen.GET("/kitchen/board", kitchenCtrl.Board)
		kitchen.PATCH("/orders/:id/items/:itemId/status", orderCtrl.UpdateItemStatus)
		kitchen.DELETE("/orders/:id/items/:itemId", orderCtrl.CancelItem)
	}

	// Cashier
	cashier := r.Group("/", middlewares.AuthMiddleware(cfg.JWTSecret, entity.RoleCashier))
	{
		cashier.GET("/tables/:table/bill", paymentCtrl.Bill)
		cashier.POST("/payments", paymentCtrl.Settle)
		cashier.GET("/payments", paymentCtrl.List)
		cashier.POST("/till/close", tillCtrl.Close)
		cashier.GET("/till/sessions", tillCtrl.Sessions)
		cashier.GET("/reports/sales/daily", reportCtrl.DailySales)
		cashier.GET("/reports/sales/monthly", reportCtrl.MonthlySales)
	}

	// Admin
	admin := r.Group("/admin", middlewares.AuthMiddleware(cfg.JWTSecret, entity.RoleAdmin))
	{
		admin.POST("/users", authCtrl.CreateStaff)
	}

	// Ledger change feed
	r.GET("/ws/board", middlewares.WSAuthMiddleware(cfg.JWTSecret), hub.HandleWebSocket)
}
