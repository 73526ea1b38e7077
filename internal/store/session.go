package store

// View identifies the top-level screen currently rendered.
type View string

// All navigable views.
const (
	ViewShop     View = "shop"
	ViewWishlist View = "wishlist"
	ViewAbout    View = "about"
	ViewJournal  View = "journal"
	ViewCheckout View = "checkout"
	ViewLogin    View = "login"
	ViewAccount  View = "account"
)

// Valid reports whether v names a known view.
func (v View) Valid() bool {
	switch v {
	case ViewShop, ViewWishlist, ViewAbout, ViewJournal, ViewCheckout, ViewLogin, ViewAccount:
		return true
	}
	return false
}

// UserProfile describes the signed-in user. It exists only while the session
// is logged in and is replaced wholesale on login or signup.
type UserProfile struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	MemberSince string `json:"member_since"`
}

// Session holds the view state machine and the login state. The machine has
// no terminal state; it runs for the life of the session.
type Session struct {
	view     View
	loggedIn bool
	profile  UserProfile
	cartOpen bool
}

// NewSession starts on the shop view, logged out.
func NewSession() *Session {
	return &Session{view: ViewShop}
}

// NavigateTo moves to the requested view. Navigating to the account view
// while logged out redirects to login instead.
func (s *Session) NavigateTo(v View) View {
	if v == ViewAccount && !s.loggedIn {
		s.view = ViewLogin
	} else {
		s.view = v
	}
	return s.view
}

// Login records the profile, marks the session logged in and lands on the
// account view. Signup follows the same transition.
func (s *Session) Login(p UserProfile) {
	s.profile = p
	s.loggedIn = true
	s.view = ViewAccount
}

// Logout clears the logged-in flag and returns to the shop. Cart and
// wishlist are untouched.
func (s *Session) Logout() {
	s.loggedIn = false
	s.profile = UserProfile{}
	s.view = ViewShop
}

// DeleteAccount discards the profile and returns to the shop. The caller
// must have collected the re-typed confirmation phrase before invoking this.
func (s *Session) DeleteAccount() {
	s.loggedIn = false
	s.profile = UserProfile{}
	s.view = ViewShop
}

// Checkout enters the checkout view, closing any open cart overlay.
func (s *Session) Checkout() {
	s.cartOpen = false
	s.view = ViewCheckout
}

// View returns the active view.
func (s *Session) View() View {
	return s.view
}

// IsLoggedIn reports the login state.
func (s *Session) IsLoggedIn() bool {
	return s.loggedIn
}

// Profile returns the active profile while logged in.
func (s *Session) Profile() (UserProfile, bool) {
	if !s.loggedIn {
		return UserProfile{}, false
	}
	return s.profile, true
}

// OpenCart shows the cart overlay.
func (s *Session) OpenCart() {
	s.cartOpen = true
}

// CloseCart hides the cart overlay.
func (s *Session) CloseCart() {
	s.cartOpen = false
}

// CartOpen reports whether the cart overlay is showing.
func (s *Session) CartOpen() bool {
	return s.cartOpen
}
