package flow

// Screen is one full-page state of the navigation machine. The
// original drove this with string literals and a switch; a typed enum
// keeps the transition set checkable.
type Screen int

const (
	ScreenLogin Screen = iota
	ScreenRegister
	ScreenVerify
	ScreenForgotPassword
	ScreenResetPassword
	ScreenProducts
	ScreenProductDetails
	ScreenCheckout
	ScreenBankPayment
	ScreenWalletPayment
	ScreenOrderConfirmation
	ScreenAdminPanel
)

func (s Screen) String() string {
	switch s {
	case ScreenLogin:
		return "login"
	case ScreenRegister:
		return "register"
	case ScreenVerify:
		return "verify"
	case ScreenForgotPassword:
		return "forgot_password"
	case ScreenResetPassword:
		return "reset_password"
	case ScreenProducts:
		return "products"
	case ScreenProductDetails:
		return "product_details"
	case ScreenCheckout:
		return "checkout"
	case ScreenBankPayment:
		return "bank_payment"
	case ScreenWalletPayment:
		return "wallet_payment"
	case ScreenOrderConfirmation:
		return "order_confirmation"
	case ScreenAdminPanel:
		return "admin_panel"
	}
	return "unknown"
}

func (s Screen) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}
