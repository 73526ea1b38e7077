// Package server is the rendering-layer adapter: a gin REST surface that
// reads derived state from the store and forwards user intents into its
// operations. Form validation and the confirmation gates for destructive
// operations live here, at the input boundary, never in the store.
package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/yaralane/storefront/internal/catalog"
	"github.com/yaralane/storefront/internal/copywriter"
	"github.com/yaralane/storefront/internal/store"
)

type Server struct {
	router   *gin.Engine
	store    *store.Store
	writer   *copywriter.Service
	validate *validator.Validate
}

// NewServer creates a new server instance around the session store and the
// description service.
func NewServer(st *store.Store, writer *copywriter.Service) *Server {
	router := gin.Default()

	server := &Server{
		router:   router,
		store:    st,
		writer:   writer,
		validate: validator.New(),
	}

	server.setupRoutes()
	return server
}

// setupRoutes configures all API routes
func (s *Server) setupRoutes() {
	api := s.router.Group("/api")
	{
		api.GET("/health", s.healthCheck)
		api.GET("/state", s.getState)

		api.GET("/products", s.listProducts)
		api.GET("/products/:id", s.getProduct)
		api.GET("/products/:id/description", s.describeProduct)
		api.GET("/categories", s.listCategories)
		api.GET("/journal", s.listJournal)

		api.GET("/cart", s.getCart)
		api.POST("/cart/items", s.addToCart)
		api.PATCH("/cart/items/:id", s.updateQuantity)
		api.DELETE("/cart/items/:id", s.removeItem)
		api.POST("/cart/open", s.openCart)
		api.POST("/cart/close", s.closeCart)

		api.GET("/wishlist", s.getWishlist)
		api.POST("/wishlist/toggle", s.toggleWishlist)

		api.GET("/addresses", s.listAddresses)
		api.POST("/addresses", s.saveAddress)
		api.DELETE("/addresses/:id", s.removeAddress)

		api.GET("/payments", s.listPayments)
		api.POST("/payments", s.savePayment)
		api.DELETE("/payments/:id", s.removePayment)

		api.POST("/navigate", s.navigate)
		api.POST("/search", s.setSearch)
		api.POST("/category", s.setCategory)
		api.POST("/checkout", s.checkout)

		api.POST("/session/login", s.login)
		api.POST("/session/signup", s.signup)
		api.POST("/session/logout", s.logout)
		api.DELETE("/session/account", s.deleteAccount)
		api.GET("/account", s.getAccount)
		api.GET("/orders", s.listOrders)
	}
}

// healthCheck endpoint for monitoring
func (s *Server) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "yaralane-storefront",
		"version": "0.1.0",
	})
}

// getState summarizes the session for the rendering layer: active view,
// filters, counts and totals, all recomputed from current store state.
func (s *Server) getState(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"view":           s.store.View(),
		"logged_in":      s.store.IsLoggedIn(),
		"category":       s.store.Category(),
		"search":         s.store.Search(),
		"cart_count":     s.store.CartCount(),
		"cart_total":     s.store.CartTotal(),
		"cart_open":      s.store.CartOpen(),
		"wishlist_count": s.store.WishlistCount(),
		"toast":          s.store.Toast(),
	})
}

func (s *Server) listProducts(c *gin.Context) {
	products := s.store.VisibleProducts()
	if products == nil {
		products = []catalog.Product{}
	}
	c.JSON(http.StatusOK, gin.H{"products": products})
}

func (s *Server) getProduct(c *gin.Context) {
	p, ok := s.store.Catalog().ByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}
	c.JSON(http.StatusOK, p)
}

// describeProduct asks the copywriter for brand-voice copy. The call can
// take a while but never fails: missing configuration or provider errors
// resolve to fallback copy.
func (s *Server) describeProduct(c *gin.Context) {
	p, ok := s.store.Catalog().ByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}
	description := s.writer.Describe(c.Request.Context(), p)
	c.JSON(http.StatusOK, gin.H{
		"product_id":  p.ID,
		"description": description,
	})
}

func (s *Server) listCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": catalog.Categories()})
}

func (s *Server) listJournal(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"posts": catalog.JournalPosts()})
}

// Start starts the HTTP server
func (s *Server) Start(addr string) error {
	return s.router.Run(addr)
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}
