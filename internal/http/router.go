package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/designerprogramming-cyber/Designs4U/internal/http/handlers"
	"github.com/designerprogramming-cyber/Designs4U/internal/http/middleware"
	"github.com/designerprogramming-cyber/Designs4U/internal/modules/catalog"
	"github.com/designerprogramming-cyber/Designs4U/internal/modules/chat"
	"github.com/designerprogramming-cyber/Designs4U/internal/modules/flow"
	"github.com/designerprogramming-cyber/Designs4U/internal/modules/orders"
	"github.com/designerprogramming-cyber/Designs4U/internal/modules/users"
	"github.com/designerprogramming-cyber/Designs4U/internal/storage"
)

// Deps is everything the router wires together.
type Deps struct {
	Catalog *catalog.Service
	Orders  *orders.Service
	Users   *users.Service
	Chat    *chat.Service
	Flows   *flow.Store
	Store   storage.Storage
	JWT     middleware.SessionCfg
	Log     *slog.Logger
}

// NewRouter assembles the gin engine: ambient middleware first, then
// the public surface, then the authenticated and admin groups.
func NewRouter(d Deps) *gin.Engine {
	r := gin.New()

	r.Use(middleware.RequestID())
	r.Use(middleware.ClientSession())
	r.Use(middleware.Recovery(d.Log))
	r.Use(middleware.Logger(d.Log))
	r.Use(middleware.Metrics())
	r.Use(middleware.ErrorHandler(d.Log))
	r.Use(middleware.Session(d.JWT))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	authH := handlers.NewAuthHandler(d.Users, d.Orders, d.Flows, d.JWT, d.Log)
	sessH := handlers.NewSessionHandler(d.Flows)
	prodH := handlers.NewProductHandler(d.Catalog, d.Flows)
	orderH := handlers.NewOrderHandler(d.Orders, d.Flows, d.Log)
	adminH := handlers.NewAdminHandler(d.Catalog, d.Orders, d.Flows, d.Store)
	chatH := handlers.NewChatHandler(d.Chat)
	filesH := handlers.NewUploadsHandler(d.Store)

	api := r.Group("/api/v1")
	{
		// anonymous surface
		api.GET("/session", sessH.Snapshot)
		api.POST("/session/goto", sessH.GoTo)
		api.GET("/countries", sessH.Countries)

		api.POST("/auth/login", authH.Login)
		api.POST("/auth/register", authH.Register)
		api.POST("/auth/verify", authH.Verify)
		api.POST("/auth/forgot-password", authH.Forgot)
		api.POST("/auth/reset-password", authH.Reset)
		api.POST("/auth/logout", authH.Logout)

		api.GET("/products", prodH.List)
		api.GET("/products/:id", prodH.Get)

		api.GET("/chat/messages", chatH.Messages)
		api.POST("/chat/messages", chatH.Send)
		api.DELETE("/chat/messages", chatH.Reset)

		api.GET("/uploads/:key", filesH.Serve)
	}

	authed := api.Group("", middleware.RequireAuth())
	{
		authed.POST("/products/:id/select", prodH.Select)
		authed.POST("/session/back", prodH.Back)

		authed.POST("/checkout", orderH.Checkout)
		authed.POST("/orders", orderH.Place)
		authed.GET("/orders/:id", orderH.Get)
		authed.POST("/orders/:id/bank-confirm", orderH.ConfirmBank)
		authed.POST("/orders/:id/wallet-proof", orderH.WalletProof)
		authed.POST("/orders/:id/discard", orderH.Discard)
		authed.POST("/orders/:id/finish", orderH.Finish)
		authed.GET("/orders/:id/download", orderH.Download)
	}

	admin := api.Group("/admin", middleware.RequireAuth(), middleware.RequireAdmin())
	{
		admin.POST("/enter", adminH.Enter)
		admin.GET("/categories", adminH.ListCategories)
		admin.POST("/categories", adminH.AddCategory)
		admin.DELETE("/categories/:id", adminH.DeleteCategory)
		admin.POST("/products", adminH.AddProduct)
		admin.PUT("/products/:id", adminH.UpdateProduct)
		admin.DELETE("/products/:id", adminH.DeleteProduct)
		admin.POST("/uploads", adminH.Upload)
		admin.GET("/orders/:id/proof", adminH.OrderProof)
		admin.POST("/orders/:id/reject", adminH.RejectOrder)
	}

	return r
}
