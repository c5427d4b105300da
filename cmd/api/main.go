package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"go-printpos-ws/internal/config"
	"go-printpos-ws/internal/handler"
	"go-printpos-ws/internal/middleware"
	"go-printpos-ws/internal/model"
	"go-printpos-ws/internal/repository"
	"go-printpos-ws/internal/service"
	"go-printpos-ws/internal/ws"
	"go-printpos-ws/pkg/database"
	"go-printpos-ws/pkg/logger"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	zlog, err := logger.New(cfg.Log.Level)
	if err != nil {
		log.Fatal("Failed to init logger:", err)
	}
	defer zlog.Sync()

	// 2. Setup Database
	db, err := database.ConnectDB(cfg.Database)
	if err != nil {
		zlog.Fatal("failed to connect database", zap.Error(err))
	}
	// Auto Migrate (for production prefer a dedicated migration tool)
	db.AutoMigrate(
		&model.Privilege{}, &model.Role{}, &model.User{},
		&model.Product{}, &model.Customer{},
		&model.Order{}, &model.OrderItem{}, &model.PaymentRecord{},
		&model.Expense{}, &model.StoreSettings{},
	)

	// 3. Seed default privileges, roles, and the owner account
	seedPrivilegesRolesAndOwner(db, zlog)

	// 4. Setup WebSocket Hub
	wsHub := ws.NewHub(zlog)
	go wsHub.Run()

	// 5. Dependency Injection (Wiring Layers)
	userRepo := repository.NewUserRepo(db)
	privilegeRepo := repository.NewPrivilegeRepo(db)
	roleRepo := repository.NewRoleRepo(db)
	productRepo := repository.NewProductRepo(db)
	customerRepo := repository.NewCustomerRepo(db)
	orderRepo := repository.NewOrderRepo(db)
	expenseRepo := repository.NewExpenseRepo(db)
	storeRepo := repository.NewStoreSettingsRepo(db)

	appID := cfg.App.ID

	authService := service.NewAuthService(userRepo, wsHub, appID)
	userService := service.NewUserService(userRepo, roleRepo, privilegeRepo, wsHub, appID)
	productService := service.NewProductService(productRepo, wsHub, appID)
	orderService := service.NewOrderService(orderRepo, productRepo, customerRepo, storeRepo, db, wsHub, appID)
	paymentService := service.NewPaymentService(orderRepo, db, wsHub, appID)
	customerService := service.NewCustomerService(customerRepo, orderRepo)
	expenseService := service.NewExpenseService(expenseRepo, wsHub, appID)
	reportService := service.NewReportService(orderRepo, expenseRepo, productRepo)
	dashboardService := service.NewDashboardService(orderRepo, productRepo)
	storeService := service.NewStoreService(storeRepo, wsHub, appID)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	roleHandler := handler.NewRoleHandler(roleRepo, privilegeRepo)
	productHandler := handler.NewProductHandler(productService)
	orderHandler := handler.NewOrderHandler(orderService)
	paymentHandler := handler.NewPaymentHandler(paymentService)
	customerHandler := handler.NewCustomerHandler(customerService)
	expenseHandler := handler.NewExpenseHandler(expenseService)
	reportHandler := handler.NewReportHandler(reportService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)
	storeHandler := handler.NewStoreHandler(storeService)

	// 6. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "PrintPOS v1.0",
	})

	// Middleware
	app.Use(fiberlogger.New()) // Request logging
	app.Use(recover.New())     // Panic recovery
	app.Use(cors.New())        // CORS

	// 7. Routes
	api := app.Group("/api/v1")

	// ============ PUBLIC ROUTES ============
	auth := api.Group("/auth")
	auth.Post("/login", authHandler.Login)
	auth.Post("/reset-password", authHandler.ResetPassword)
	auth.Post("/validate-token", authHandler.ValidateToken)
	auth.Post("/heartbeat", middleware.RequireAuth(userRepo), authHandler.Heartbeat)
	auth.Post("/logout", middleware.RequireAuth(userRepo), authHandler.Logout)

	// ============ PROTECTED ROUTES ============
	protected := api.Group("", middleware.RequireAuth(userRepo))

	// Dashboard
	protected.Get("/dashboard/stats", middleware.RequirePrivilege("dashboard:view"), dashboardHandler.GetStats)

	// Orders
	protected.Get("/orders", middleware.RequirePrivilege("order:view"), orderHandler.GetOrders)
	protected.Get("/orders/:id", middleware.RequirePrivilege("order:view"), orderHandler.GetOrder)
	protected.Get("/orders/:id/receipt", middleware.RequirePrivilege("order:view"), orderHandler.GetReceipt)
	protected.Post("/orders", middleware.RequirePrivilege("order:create"), orderHandler.CreateOrder)
	protected.Put("/orders/:id", middleware.RequirePrivilege("order:update"), orderHandler.UpdateOrder)
	protected.Delete("/orders/:id", middleware.RequirePrivilege("order:delete"), orderHandler.DeleteOrder)
	protected.Patch("/orders/:id/status", middleware.RequirePrivilege("order:set_status"), orderHandler.SetProductionStatus)

	// Payments
	protected.Get("/payments/search", middleware.RequirePrivilege("payment:view"), paymentHandler.Search)
	protected.Get("/payments/unpaid", middleware.RequirePrivilege("payment:view"), paymentHandler.RecentUnpaid)
	protected.Post("/payments/:orderId/settle", middleware.RequirePrivilege("payment:settle"), paymentHandler.Settle)

	// Products (catalog reads are open to any authenticated user, the
	// order form needs them)
	protected.Get("/products", productHandler.GetProducts)
	protected.Get("/products/:id", productHandler.GetProduct)
	protected.Post("/products", middleware.RequirePrivilege("product:manage"), productHandler.CreateProduct)
	protected.Put("/products/:id", middleware.RequirePrivilege("product:manage"), productHandler.UpdateProduct)
	protected.Delete("/products/:id", middleware.RequirePrivilege("product:manage"), productHandler.DeleteProduct)

	// Customers
	protected.Get("/customers", middleware.RequirePrivilege("customer:view"), customerHandler.GetCustomers)
	protected.Get("/customers/:phone/history", middleware.RequirePrivilege("customer:view"), customerHandler.GetHistory)

	// Expenses
	protected.Get("/expenses", middleware.RequirePrivilege("expense:view"), expenseHandler.GetExpenses)
	protected.Post("/expenses", middleware.RequirePrivilege("expense:create"), expenseHandler.CreateExpense)
	protected.Delete("/expenses/:id", middleware.RequirePrivilege("expense:delete"), expenseHandler.DeleteExpense)

	// Reports
	protected.Get("/reports/financial", middleware.RequirePrivilege("report:view"), reportHandler.GetFinancial)
	protected.Get("/reports/financial/export", middleware.RequirePrivilege("report:export"), reportHandler.ExportFinancial)
	protected.Get("/reports/item-sales", middleware.RequirePrivilege("report:view"), reportHandler.GetItemSales)
	protected.Get("/reports/item-sales/export", middleware.RequirePrivilege("report:export"), reportHandler.ExportItemSales)

	// Store settings (reads open, receipts need the header)
	protected.Get("/store", storeHandler.GetSettings)
	protected.Put("/store", middleware.RequirePrivilege("store:manage"), storeHandler.UpdateSettings)

	// Account management
	protected.Get("/users", middleware.RequirePrivilege("account:manage"), userHandler.GetUsers)
	protected.Get("/users/:id", middleware.RequirePrivilege("account:manage"), userHandler.GetUser)
	protected.Post("/users", middleware.RequirePrivilege("account:manage"), userHandler.CreateUser)
	protected.Put("/users/:id", middleware.RequirePrivilege("account:manage"), userHandler.UpdateUser)
	protected.Delete("/users/:id", middleware.RequirePrivilege("account:manage"), userHandler.DeleteUser)
	protected.Put("/users/:id/privileges", middleware.RequirePrivilege("account:manage"), userHandler.UpdateUserPrivileges)

	// Roles and privileges
	protected.Get("/roles", roleHandler.GetRoles)
	protected.Get("/privileges", roleHandler.GetPrivileges)

	// WebSocket Route
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 8. Graceful Shutdown
	go func() {
		if err := app.Listen(":" + cfg.Server.Port); err != nil {
			zlog.Fatal("server stopped", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zlog.Info("shutting down server")
	if err := app.Shutdown(); err != nil {
		zlog.Fatal("server forced to shutdown", zap.Error(err))
	}

	zlog.Info("server exited")
}

// seedPrivilegesRolesAndOwner creates default privileges, roles, and the
// owner account if they don't exist
func seedPrivilegesRolesAndOwner(db *gorm.DB, zlog *zap.Logger) {
	privilegeRepo := repository.NewPrivilegeRepo(db)
	userRepo := repository.NewUserRepo(db)
	roleRepo := repository.NewRoleRepo(db)

	// 1. Seed privileges first
	if err := privilegeRepo.SeedDefaults(); err != nil {
		zlog.Warn("failed to seed privileges", zap.Error(err))
	}

	// 2. Seed roles
	if err := roleRepo.SeedDefaults(); err != nil {
		zlog.Warn("failed to seed roles", zap.Error(err))
	}

	// 3. Assign the capability table to each role
	for roleCode, codes := range model.RolePrivileges {
		role, err := roleRepo.FindByCode(roleCode)
		if err != nil {
			zlog.Warn("role not found during seeding", zap.String("role", roleCode), zap.Error(err))
			continue
		}
		if len(role.Privileges) > 0 {
			continue
		}
		privileges, err := privilegeRepo.FindByCodes(codes)
		if err != nil {
			zlog.Warn("failed to resolve role privileges", zap.String("role", roleCode), zap.Error(err))
			continue
		}
		if err := roleRepo.ReplacePrivileges(role, privileges); err != nil {
			zlog.Warn("failed to assign role privileges", zap.String("role", roleCode), zap.Error(err))
			continue
		}
		zlog.Info("role privileges assigned", zap.String("role", roleCode), zap.Int("count", len(privileges)))
	}

	// 4. Create the default owner account
	if _, err := userRepo.FindByUsername("owner"); err != nil {
		ownerRole, err := roleRepo.FindByCode(model.RoleOwner)
		if err != nil {
			zlog.Warn("owner role missing, skipping owner account seed", zap.Error(err))
			return
		}

		owner := &model.User{
			Username:   "owner",
			FullName:   "Store Owner",
			RoleID:     &ownerRole.ID,
			IsActive:   true,
			Privileges: ownerRole.Privileges,
		}
		owner.CreatedBy = "system"
		owner.UpdatedBy = "system"

		if err := owner.SetPassword("owner123"); err != nil {
			zlog.Warn("failed to hash owner password", zap.Error(err))
			return
		}

		if err := userRepo.Create(owner); err != nil {
			zlog.Warn("failed to create owner account", zap.Error(err))
		} else {
			zlog.Info("owner account created", zap.String("username", "owner"))
		}
	}
}
