// Package store implements the in-memory commerce state engine for one
// storefront session: cart, wishlist, address and payment books, view
// navigation and the toast notification layer. All mutation is funneled
// through the Store container so the pieces stay mutually consistent; there
// are no ambient globals.
package store

import (
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/yaralane/storefront/internal/catalog"
)

// Store is the owned state container for a single session. Mutations are
// serialized through its mutex; derived values are recomputed from current
// state on every query, never cached.
type Store struct {
	mu sync.Mutex

	catalog  *catalog.Catalog
	cart     *Cart
	wishlist *Wishlist
	addrs    *AddressBook
	payments *PaymentBook
	session  *Session
	toaster  *Toaster

	category string
	search   string
}

// Option adjusts a Store at construction time.
type Option func(*Store)

// WithToastDuration overrides the toast auto-dismiss delay, mainly for tests.
func WithToastDuration(d time.Duration) Option {
	return func(s *Store) {
		s.toaster = NewToaster(d)
	}
}

// New wires an empty session state around the given catalog: shop view,
// logged out, "All" category, empty cart, wishlist and books.
func New(c *catalog.Catalog, opts ...Option) *Store {
	s := &Store{
		catalog:  c,
		cart:     NewCart(),
		wishlist: NewWishlist(),
		addrs:    NewAddressBook(),
		payments: NewPaymentBook(),
		session:  NewSession(),
		toaster:  NewToaster(DefaultToastDuration),
		category: catalog.CategoryAll,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Catalog exposes the immutable product catalog.
func (s *Store) Catalog() *catalog.Catalog {
	return s.catalog
}

// --- Cart operations ---

// AddToCart merges the product into the cart and emits a toast carrying the
// product name.
func (s *Store) AddToCart(p catalog.Product) {
	s.mu.Lock()
	s.cart.Add(p)
	s.mu.Unlock()
	s.toaster.Show("Added " + p.Name + " to your bag")
}

// UpdateQuantity applies a delta to a cart line, removing it at zero.
func (s *Store) UpdateQuantity(id string, delta int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.UpdateQuantity(id, delta)
}

// RemoveItem deletes a cart line unconditionally.
func (s *Store) RemoveItem(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Remove(id)
}

// CartItems returns the current cart lines.
func (s *Store) CartItems() []CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Items()
}

// CartCount is the sum of cart quantities.
func (s *Store) CartCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Count()
}

// CartTotal is the recomputed sum of price times quantity.
func (s *Store) CartTotal() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Total()
}

// --- Wishlist operations ---

// ToggleWishlist flips membership for the product id.
func (s *Store) ToggleWishlist(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.wishlist.Toggle(id)
}

// IsWishlisted reports membership.
func (s *Store) IsWishlisted(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.wishlist.Contains(id)
}

// WishlistCount is the number of wishlisted products.
func (s *Store) WishlistCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.wishlist.Count()
}

// WishlistProducts lists the wishlisted products in catalog order.
func (s *Store) WishlistProducts() []catalog.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.wishlist.Products(s.catalog)
}

// --- Filters ---

// SetCategory selects the active category filter for the shop view.
func (s *Store) SetCategory(category string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.category = category
}

// Category returns the active category filter.
func (s *Store) Category() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.category
}

// SetSearch records the search query. Beginning a non-empty search outside
// the shop and wishlist views switches to the shop so the results have a
// grid to land on. The query stays active until explicitly cleared.
func (s *Store) SetSearch(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.search = query
	if strings.TrimSpace(query) == "" {
		return
	}
	if v := s.session.View(); v != ViewShop && v != ViewWishlist {
		s.session.NavigateTo(ViewShop)
	}
}

// Search returns the active search query.
func (s *Store) Search() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.search
}

// VisibleProducts derives the product grid from catalog, view, category,
// search and wishlist membership.
func (s *Store) VisibleProducts() []catalog.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return VisibleProducts(s.catalog.Products(), s.session.View(), s.category, s.search, s.wishlist.Contains)
}

// --- Books ---

// SaveAddress creates or replaces an address and enforces the per-type
// single-default invariant.
func (s *Store) SaveAddress(a Address) Address {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addrs.Save(a)
}

// RemoveAddress deletes a saved address. Confirmation happens at the caller.
func (s *Store) RemoveAddress(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.addrs.Remove(id)
}

// Addresses lists the saved addresses.
func (s *Store) Addresses() []Address {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addrs.List()
}

// SavePayment creates or edits a payment method and enforces the global
// single-default invariant.
func (s *Store) SavePayment(in PaymentInput) PaymentMethod {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.payments.Save(in)
}

// RemovePayment deletes a saved payment method. Confirmation happens at the
// caller.
func (s *Store) RemovePayment(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.payments.Remove(id)
}

// Payments lists the saved payment methods.
func (s *Store) Payments() []PaymentMethod {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.payments.List()
}

// --- Session ---

// NavigateTo moves between views, applying the account auth guard.
func (s *Store) NavigateTo(v View) View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session.NavigateTo(v)
}

// Login installs the profile and lands on the account view.
func (s *Store) Login(p UserProfile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session.Login(p)
}

// Logout returns to the shop. Cart and wishlist persist across logout.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session.Logout()
}

// DeleteAccount discards the profile and returns to the shop. The
// confirmation phrase is collected before this call.
func (s *Store) DeleteAccount() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session.DeleteAccount()
}

// Checkout enters checkout and closes the cart overlay.
func (s *Store) Checkout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session.Checkout()
}

// OpenCart shows the cart overlay.
func (s *Store) OpenCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session.OpenCart()
}

// CloseCart hides the cart overlay.
func (s *Store) CloseCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session.CloseCart()
}

// CartOpen reports whether the cart overlay is showing.
func (s *Store) CartOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session.CartOpen()
}

// View returns the active view.
func (s *Store) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session.View()
}

// IsLoggedIn reports the login state.
func (s *Store) IsLoggedIn() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session.IsLoggedIn()
}

// Profile returns the active user profile while logged in.
func (s *Store) Profile() (UserProfile, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session.Profile()
}

// Toast returns the tracked notification.
func (s *Store) Toast() Toast {
	return s.toaster.Current()
}
