package api

import (
	"database/sql"
	"log"
	stdhttp "net/http"

	intconfig "restaurant/internal/config"
	"restaurant/internal/domain"
	h "restaurant/internal/http/handlers"
	"restaurant/internal/http/middleware"
	"restaurant/internal/repositories"
	"restaurant/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func NewRouter(env intconfig.Env, db *sql.DB) *gin.Engine {
	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Logger(),
		gin.CustomRecovery(func(c *gin.Context, _ any) {
			c.AbortWithStatusJSON(stdhttp.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}),
		middleware.CORS(env.CORSOrigins),
	)

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{"error": "route not found"})
	})

	secret := []byte(env.JWTSecret)

	menuRepo := repositories.MenuRepository{DB: db}
	offerRepo := repositories.OfferRepository{DB: db}
	orderRepo := repositories.OrderRepository{DB: db}
	invoiceRepo := repositories.InvoiceRepository{DB: db}
	userRepo := repositories.UserRepository{DB: db}

	authH := h.AuthHandler{Svc: services.AuthService{Users: userRepo, Secret: secret}}
	menuH := h.MenuHandler{Svc: services.MenuService{Repo: menuRepo, OrderRepo: orderRepo}}
	offersH := h.OffersHandler{
		Svc:          services.OffersService{Repo: offerRepo},
		NewSessionID: uuid.NewString,
	}
	ordersH := h.OrdersHandler{Svc: services.OrderService{
		Repo:        orderRepo,
		MenuRepo:    menuRepo,
		OfferRepo:   offerRepo,
		InvoiceRepo: invoiceRepo,
		UserRepo:    userRepo,
	}}
	adminH := h.AdminHandler{
		Svc:   services.AdminService{OrderRepo: orderRepo, UserRepo: userRepo},
		Users: services.UserService{Repo: userRepo},
	}
	invoicesH := h.InvoicesHandler{Svc: services.InvoiceService{Repo: invoiceRepo, OrderRepo: orderRepo}}
	usersH := h.UsersHandler{Svc: services.UserService{Repo: userRepo}}
	protectedH := h.ProtectedHandler{}

	requireAuth := middleware.RequireAuth(secret)
	adminOnly := middleware.RequireRoles(domain.RoleAdmin)

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)

		auth := api.Group("/auth")
		auth.POST("/register", authH.Register)
		auth.POST("/login", authH.Login)

		menu := api.Group("/menu")
		menu.GET("/categories", menuH.Categories)
		menu.GET("/items/:id", menuH.ItemByID)
		menu.GET("/search", menuH.Search)

		offers := api.Group("/offers")
		offers.POST("/apply", offersH.Apply)
		offers.GET("/popup", middleware.OptionalAuth(secret), offersH.Popup)

		orders := api.Group("/orders", requireAuth)
		orders.POST("", ordersH.Create)
		orders.GET("", ordersH.ListMine)
		orders.GET("/:id", ordersH.Get)

		admin := api.Group("/admin", requireAuth)
		admin.GET("/stats", adminOnly, adminH.Stats)
		admin.GET("/analytics", adminH.Analytics)
		admin.GET("/analytics/customers", adminH.CustomerAnalytics)
		admin.GET("/menu/statistics", menuH.Statistics)
		admin.GET("/invoices/stats", invoicesH.Stats)
		admin.GET("/invoices/:id/pdf", adminOnly, invoicesH.PDF)
		admin.GET("/orders", adminOnly, ordersH.AdminList)
		admin.PUT("/orders/:id/status", adminOnly, ordersH.UpdateStatus)
		admin.GET("/users/:id", adminH.UserByID)

		protected := api.Group("/protected", requireAuth)
		protected.GET("", protectedH.Get)
		protected.POST("", protectedH.Post)

		api.GET("/user/sync", requireAuth, usersH.Sync)
	}

	return r
}
