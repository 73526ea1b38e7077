package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yaralane/storefront/internal/catalog"
	"github.com/yaralane/storefront/internal/store"
)

// deleteConfirmationPhrase must be re-typed by the user before account
// deletion is forwarded to the store.
const deleteConfirmationPhrase = "DELETE"

// --- Cart ---

type cartItemInput struct {
	ProductID string `json:"product_id" validate:"required"`
}

// quantityInput carries a caller-supplied delta; any integer is accepted,
// the store floors the result at zero.
type quantityInput struct {
	Delta int `json:"delta"`
}

func (s *Server) getCart(c *gin.Context) {
	items := s.store.CartItems()
	if items == nil {
		items = []store.CartItem{}
	}
	c.JSON(http.StatusOK, gin.H{
		"items": items,
		"count": s.store.CartCount(),
		"total": s.store.CartTotal(),
	})
}

func (s *Server) addToCart(c *gin.Context) {
	var input cartItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := s.validate.Struct(input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	p, ok := s.store.Catalog().ByID(input.ProductID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}
	s.store.AddToCart(p)
	c.JSON(http.StatusCreated, gin.H{
		"count": s.store.CartCount(),
		"total": s.store.CartTotal(),
		"toast": s.store.Toast(),
	})
}

func (s *Server) updateQuantity(c *gin.Context) {
	var input quantityInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	s.store.UpdateQuantity(c.Param("id"), input.Delta)
	c.JSON(http.StatusOK, gin.H{
		"count": s.store.CartCount(),
		"total": s.store.CartTotal(),
	})
}

func (s *Server) removeItem(c *gin.Context) {
	s.store.RemoveItem(c.Param("id"))
	c.Status(http.StatusNoContent)
}

func (s *Server) openCart(c *gin.Context) {
	s.store.OpenCart()
	c.JSON(http.StatusOK, gin.H{"cart_open": true})
}

func (s *Server) closeCart(c *gin.Context) {
	s.store.CloseCart()
	c.JSON(http.StatusOK, gin.H{"cart_open": false})
}

// --- Wishlist ---

func (s *Server) getWishlist(c *gin.Context) {
	products := s.store.WishlistProducts()
	if products == nil {
		products = []catalog.Product{}
	}
	c.JSON(http.StatusOK, gin.H{
		"products": products,
		"count":    s.store.WishlistCount(),
	})
}

func (s *Server) toggleWishlist(c *gin.Context) {
	var input cartItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := s.validate.Struct(input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if _, ok := s.store.Catalog().ByID(input.ProductID); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}
	s.store.ToggleWishlist(input.ProductID)
	c.JSON(http.StatusOK, gin.H{
		"product_id": input.ProductID,
		"wishlisted": s.store.IsWishlisted(input.ProductID),
		"count":      s.store.WishlistCount(),
	})
}

// --- Address book ---

type addressInput struct {
	ID         string `json:"id"`
	Type       string `json:"type" validate:"required,oneof=Shipping Billing"`
	FirstName  string `json:"first_name" validate:"required"`
	LastName   string `json:"last_name" validate:"required"`
	Line1      string `json:"line1" validate:"required"`
	Line2      string `json:"line2"`
	City       string `json:"city" validate:"required"`
	PostalCode string `json:"postal_code" validate:"required"`
	Country    string `json:"country" validate:"required"`
	IsDefault  bool   `json:"is_default"`
}

func (s *Server) listAddresses(c *gin.Context) {
	addrs := s.store.Addresses()
	if addrs == nil {
		addrs = []store.Address{}
	}
	c.JSON(http.StatusOK, gin.H{"addresses": addrs})
}

func (s *Server) saveAddress(c *gin.Context) {
	var input addressInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := s.validate.Struct(input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	saved := s.store.SaveAddress(store.Address{
		ID:         input.ID,
		Type:       input.Type,
		FirstName:  input.FirstName,
		LastName:   input.LastName,
		Line1:      input.Line1,
		Line2:      input.Line2,
		City:       input.City,
		PostalCode: input.PostalCode,
		Country:    input.Country,
		IsDefault:  input.IsDefault,
	})
	status := http.StatusOK
	if input.ID == "" {
		status = http.StatusCreated
	}
	c.JSON(status, saved)
}

// removeAddress requires the explicit confirm flag the UI sets after the
// user answers the removal prompt.
func (s *Server) removeAddress(c *gin.Context) {
	if c.Query("confirm") != "true" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "confirmation required"})
		return
	}
	s.store.RemoveAddress(c.Param("id"))
	c.Status(http.StatusNoContent)
}

// --- Payment book ---

type paymentInput struct {
	ID         string `json:"id"`
	CardNumber string `json:"card_number"`
	Expiry     string `json:"expiry" validate:"required,len=5"`
	IsDefault  bool   `json:"is_default"`
}

func (s *Server) listPayments(c *gin.Context) {
	payments := s.store.Payments()
	if payments == nil {
		payments = []store.PaymentMethod{}
	}
	c.JSON(http.StatusOK, gin.H{"payments": payments})
}

func (s *Server) savePayment(c *gin.Context) {
	var input paymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := s.validate.Struct(input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.ID == "" && input.CardNumber == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "card_number is required"})
		return
	}
	saved := s.store.SavePayment(store.PaymentInput{
		ID:         input.ID,
		CardNumber: input.CardNumber,
		Expiry:     input.Expiry,
		IsDefault:  input.IsDefault,
	})
	status := http.StatusOK
	if input.ID == "" {
		status = http.StatusCreated
	}
	c.JSON(status, saved)
}

func (s *Server) removePayment(c *gin.Context) {
	if c.Query("confirm") != "true" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "confirmation required"})
		return
	}
	s.store.RemovePayment(c.Param("id"))
	c.Status(http.StatusNoContent)
}

// --- Navigation and filters ---

type navigateInput struct {
	View string `json:"view" validate:"required"`
}

type searchInput struct {
	Query string `json:"query"`
}

type categoryInput struct {
	Category string `json:"category" validate:"required"`
}

func (s *Server) navigate(c *gin.Context) {
	var input navigateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := s.validate.Struct(input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	v := store.View(input.View)
	if !v.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown view"})
		return
	}
	landed := s.store.NavigateTo(v)
	c.JSON(http.StatusOK, gin.H{"view": landed})
}

func (s *Server) setSearch(c *gin.Context) {
	var input searchInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	s.store.SetSearch(input.Query)
	c.JSON(http.StatusOK, gin.H{
		"view":   s.store.View(),
		"search": s.store.Search(),
	})
}

func (s *Server) setCategory(c *gin.Context) {
	var input categoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := s.validate.Struct(input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	s.store.SetCategory(input.Category)
	c.JSON(http.StatusOK, gin.H{"category": s.store.Category()})
}

func (s *Server) checkout(c *gin.Context) {
	s.store.Checkout()
	c.JSON(http.StatusOK, gin.H{
		"view":      s.store.View(),
		"cart_open": s.store.CartOpen(),
		"total":     s.store.CartTotal(),
	})
}

// --- Session ---

type loginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type signupInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type deleteAccountInput struct {
	Confirm string `json:"confirm" validate:"required"`
}

func (s *Server) login(c *gin.Context) {
	var input loginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := s.validate.Struct(input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	// No real authentication in this session model; any well-formed
	// credentials sign in the demo profile.
	s.store.Login(store.UserProfile{
		Name:        "Isabella V",
		Email:       input.Email,
		MemberSince: "September 2024",
	})
	profile, _ := s.store.Profile()
	c.JSON(http.StatusOK, gin.H{"view": s.store.View(), "profile": profile})
}

func (s *Server) signup(c *gin.Context) {
	var input signupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := s.validate.Struct(input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	s.store.Login(store.UserProfile{
		Name:        input.Name,
		Email:       input.Email,
		MemberSince: time.Now().Format("January 2006"),
	})
	profile, _ := s.store.Profile()
	c.JSON(http.StatusCreated, gin.H{"view": s.store.View(), "profile": profile})
}

func (s *Server) logout(c *gin.Context) {
	s.store.Logout()
	c.JSON(http.StatusOK, gin.H{"view": s.store.View()})
}

// deleteAccount only reaches the store when the user re-typed the literal
// confirmation phrase.
func (s *Server) deleteAccount(c *gin.Context) {
	var input deleteAccountInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if input.Confirm != deleteConfirmationPhrase {
		c.JSON(http.StatusBadRequest, gin.H{"error": "confirmation phrase mismatch"})
		return
	}
	if !s.store.IsLoggedIn() {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not logged in"})
		return
	}
	s.store.DeleteAccount()
	c.JSON(http.StatusOK, gin.H{"view": s.store.View()})
}

func (s *Server) getAccount(c *gin.Context) {
	profile, ok := s.store.Profile()
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not logged in"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"profile":   profile,
		"orders":    catalog.SeedOrders(),
		"addresses": s.store.Addresses(),
		"payments":  s.store.Payments(),
		"wishlist":  s.store.WishlistProducts(),
	})
}

func (s *Server) listOrders(c *gin.Context) {
	if !s.store.IsLoggedIn() {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not logged in"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": catalog.SeedOrders()})
}
