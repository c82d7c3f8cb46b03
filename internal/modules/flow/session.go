package flow

import (
	"sync"

	"github.com/designerprogramming-cyber/Designs4U/internal/modules/catalog"
	"github.com/designerprogramming-cyber/Designs4U/internal/modules/orders"
	"github.com/designerprogramming-cyber/Designs4U/internal/modules/users"
	"github.com/designerprogramming-cyber/Designs4U/internal/shared/apperr"
)

// Session is the navigation/session controller: the current screen
// plus the pieces of state each screen needs. Events move it through
// the transition table; guard failures leave the screen unchanged.
type Session struct {
	mu sync.Mutex

	screen          Screen
	user            *users.User
	selectedProduct *catalog.Product
	selectedVariant *catalog.Variant
	currentOrder    *orders.Order
	resetPhone      string
	loginNotice     string
}

// NewSession starts on the register screen, as the original build
// does. See DESIGN.md for the open question around this choice.
func NewSession() *Session {
	return &Session{screen: ScreenRegister}
}

func (s *Session) Screen() Screen {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.screen
}

// Snapshot returns the screen and context for rendering.
type Snapshot struct {
	Screen          Screen
	User            *users.User
	SelectedProduct *catalog.Product
	SelectedVariant *catalog.Variant
	CurrentOrder    *orders.Order
	ResetPhone      string
	LoginNotice     string
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		Screen:          s.screen,
		User:            s.user,
		SelectedProduct: s.selectedProduct,
		SelectedVariant: s.selectedVariant,
		CurrentOrder:    s.currentOrder,
		ResetPhone:      s.resetPhone,
		LoginNotice:     s.loginNotice,
	}
}

// --- auth screens ---

func (s *Session) GoToLogin() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.screen = ScreenLogin
}

func (s *Session) GoToRegister() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.screen = ScreenRegister
}

func (s *Session) GoToForgotPassword() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.screen = ScreenForgotPassword
}

// LoginSucceeded installs the authenticated user and lands on the
// product listing. The one-shot login notice is consumed.
func (s *Session) LoginSucceeded(u users.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = &u
	s.loginNotice = ""
	s.screen = ScreenProducts
}

// RegisterSucceeded holds the new customer and moves to verification.
func (s *Session) RegisterSucceeded(u users.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = &u
	s.screen = ScreenVerify
}

func (s *Session) VerifySucceeded() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return apperr.UnauthorizedErr("Sign in to continue.")
	}
	s.screen = ScreenProducts
	return nil
}

// ResetCodeSent remembers the phone the code went to.
func (s *Session) ResetCodeSent(phone string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resetPhone = phone
	s.screen = ScreenResetPassword
}

// ResetSucceeded returns to login carrying a success notice.
func (s *Session) ResetSucceeded(notice string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loginNotice = notice
	s.resetPhone = ""
	s.screen = ScreenLogin
}

func (s *Session) ResetPhone() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.resetPhone
}

// Logout clears the user, selection and in-flight order.
func (s *Session) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
	s.selectedProduct = nil
	s.selectedVariant = nil
	s.currentOrder = nil
	s.screen = ScreenLogin
}

// --- shop screens ---

func (s *Session) User() (users.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return users.User{}, false
	}
	return *s.user, true
}

func (s *Session) SelectProduct(p catalog.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return apperr.UnauthorizedErr("Sign in to continue.")
	}
	cp := p.Clone()
	s.selectedProduct = &cp
	s.selectedVariant = nil
	s.screen = ScreenProductDetails
	return nil
}

// BackToProducts returns to the listing from details or admin.
func (s *Session) BackToProducts() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.screen = ScreenProducts
}

// ChooseVariant proceeds to checkout. Blocked unless a product is in
// context and the variant belongs to it.
func (s *Session) ChooseVariant(variantID string) (catalog.Variant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selectedProduct == nil {
		return catalog.Variant{}, apperr.NotFoundErr("Product not found.")
	}
	for _, v := range s.selectedProduct.Variants {
		if v.ID == variantID {
			chosen := v
			s.selectedVariant = &chosen
			s.screen = ScreenCheckout
			return chosen, nil
		}
	}
	return catalog.Variant{}, apperr.NotFoundErr("Variant not found.")
}

// CheckoutContext returns the product/variant pair checkout needs.
func (s *Session) CheckoutContext() (catalog.Product, catalog.Variant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selectedProduct == nil || s.selectedVariant == nil {
		return catalog.Product{}, catalog.Variant{}, apperr.NotFoundErr("Product not found.")
	}
	return *s.selectedProduct, *s.selectedVariant, nil
}

// OrderPlaced routes to the chosen payment screen.
func (s *Session) OrderPlaced(o orders.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentOrder = &o
	if o.PaymentMethod == orders.MethodBank {
		s.screen = ScreenBankPayment
	} else {
		s.screen = ScreenWalletPayment
	}
}

func (s *Session) CurrentOrder() (orders.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.currentOrder == nil {
		return orders.Order{}, apperr.NotFoundErr("Order not found.")
	}
	return *s.currentOrder, nil
}

// PaymentConcluded lands on the confirmation screen with the updated
// order (completed for bank, pending_approval for wallet).
func (s *Session) PaymentConcluded(o orders.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.currentOrder == nil || s.currentOrder.ID != o.ID {
		return apperr.NotFoundErr("Order not found.")
	}
	s.currentOrder = &o
	s.screen = ScreenOrderConfirmation
	return nil
}

// RefreshOrder updates the held order after an async status change.
func (s *Session) RefreshOrder(o orders.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.currentOrder != nil && s.currentOrder.ID == o.ID {
		s.currentOrder = &o
	}
}

// FinishOrder clears the order and selection and returns to products.
// The caller is responsible for discarding the order service side.
func (s *Session) FinishOrder() (orderID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.currentOrder != nil {
		orderID = s.currentOrder.ID
	}
	s.currentOrder = nil
	s.selectedProduct = nil
	s.selectedVariant = nil
	s.screen = ScreenProducts
	return orderID
}

// --- admin ---

func (s *Session) GoToAdmin() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return apperr.UnauthorizedErr("Sign in to continue.")
	}
	if s.user.Role != users.RoleAdmin {
		return apperr.ForbiddenErr("Admin access required.")
	}
	s.screen = ScreenAdminPanel
	return nil
}
