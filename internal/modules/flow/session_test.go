package flow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/designerprogramming-cyber/Designs4U/internal/modules/catalog"
	"github.com/designerprogramming-cyber/Designs4U/internal/modules/orders"
	"github.com/designerprogramming-cyber/Designs4U/internal/modules/users"
	"github.com/designerprogramming-cyber/Designs4U/internal/shared/apperr"
)

func customer() users.User {
	return users.User{ID: "u1", Email: "user", Role: users.RoleCustomer}
}

func admin() users.User {
	return users.User{ID: "a1", Email: "admin", Role: users.RoleAdmin}
}

func TestInitialScreenIsRegister(t *testing.T) {
	s := NewSession()
	assert.Equal(t, ScreenRegister, s.Screen())
}

func TestAuthNavigation(t *testing.T) {
	s := NewSession()

	s.GoToLogin()
	assert.Equal(t, ScreenLogin, s.Screen())

	s.GoToForgotPassword()
	assert.Equal(t, ScreenForgotPassword, s.Screen())

	s.ResetCodeSent("+90555000")
	assert.Equal(t, ScreenResetPassword, s.Screen())
	assert.Equal(t, "+90555000", s.ResetPhone())

	s.ResetSucceeded("Password reset successfully.")
	assert.Equal(t, ScreenLogin, s.Screen())
	assert.Equal(t, "", s.ResetPhone())
	assert.Equal(t, "Password reset successfully.", s.Snapshot().LoginNotice)

	// logging in consumes the notice
	s.LoginSucceeded(customer())
	assert.Equal(t, ScreenProducts, s.Screen())
	assert.Equal(t, "", s.Snapshot().LoginNotice)
}

func TestRegisterThenVerifyScenario(t *testing.T) {
	s := NewSession()

	s.RegisterSucceeded(users.User{Email: "jo@example.com", Role: users.RoleCustomer})
	assert.Equal(t, ScreenVerify, s.Screen())
	u, ok := s.User()
	require.True(t, ok)
	assert.Equal(t, "jo@example.com", u.Email)

	require.NoError(t, s.VerifySucceeded())
	assert.Equal(t, ScreenProducts, s.Screen())
}

func TestVerifyWithoutUserBlocked(t *testing.T) {
	s := NewSession()
	err := s.VerifySucceeded()
	require.Error(t, err)
	assert.Equal(t, ScreenRegister, s.Screen())
}

func TestShoppingPath(t *testing.T) {
	s := NewSession()
	s.LoginSucceeded(customer())

	p := catalog.SeedProducts()[0]
	require.NoError(t, s.SelectProduct(p))
	assert.Equal(t, ScreenProductDetails, s.Screen())

	// variant of a different product is blocked
	_, err := s.ChooseVariant("v2_1")
	require.Error(t, err)
	assert.Equal(t, ScreenProductDetails, s.Screen())

	v, err := s.ChooseVariant("v1_1")
	require.NoError(t, err)
	assert.Equal(t, ScreenCheckout, s.Screen())
	assert.Equal(t, int64(15000), v.PriceCents)

	gotP, gotV, err := s.CheckoutContext()
	require.NoError(t, err)
	assert.Equal(t, p.ID, gotP.ID)
	assert.Equal(t, "v1_1", gotV.ID)
}

func TestCheckoutWithoutSelectionBlocked(t *testing.T) {
	s := NewSession()
	s.LoginSucceeded(customer())

	_, err := s.ChooseVariant("v1_1")
	require.Error(t, err)
	ae, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, apperr.NotFound, ae.Kind)

	_, _, err = s.CheckoutContext()
	require.Error(t, err)
}

func TestPaymentRouting(t *testing.T) {
	t.Run("bank", func(t *testing.T) {
		s := NewSession()
		s.LoginSucceeded(customer())
		s.OrderPlaced(orders.Order{ID: "o1", PaymentMethod: orders.MethodBank, Status: orders.StatusPendingPayment})
		assert.Equal(t, ScreenBankPayment, s.Screen())

		require.NoError(t, s.PaymentConcluded(orders.Order{ID: "o1", Status: orders.StatusCompleted}))
		assert.Equal(t, ScreenOrderConfirmation, s.Screen())
	})

	t.Run("wallet", func(t *testing.T) {
		s := NewSession()
		s.LoginSucceeded(customer())
		s.OrderPlaced(orders.Order{ID: "o2", PaymentMethod: orders.MethodWallet, Status: orders.StatusPendingPayment})
		assert.Equal(t, ScreenWalletPayment, s.Screen())

		require.NoError(t, s.PaymentConcluded(orders.Order{ID: "o2", Status: orders.StatusPendingApproval}))
		assert.Equal(t, ScreenOrderConfirmation, s.Screen())

		// async approval refreshes the held order in place
		s.RefreshOrder(orders.Order{ID: "o2", Status: orders.StatusCompleted})
		cur, err := s.CurrentOrder()
		require.NoError(t, err)
		assert.Equal(t, orders.StatusCompleted, cur.Status)
	})

	t.Run("mismatched order id rejected", func(t *testing.T) {
		s := NewSession()
		s.LoginSucceeded(customer())
		s.OrderPlaced(orders.Order{ID: "o3", PaymentMethod: orders.MethodBank})
		err := s.PaymentConcluded(orders.Order{ID: "other"})
		require.Error(t, err)
	})
}

func TestFinishOrderClearsContext(t *testing.T) {
	s := NewSession()
	s.LoginSucceeded(customer())
	p := catalog.SeedProducts()[0]
	require.NoError(t, s.SelectProduct(p))
	_, err := s.ChooseVariant("v1_1")
	require.NoError(t, err)
	s.OrderPlaced(orders.Order{ID: "o1", PaymentMethod: orders.MethodBank})

	id := s.FinishOrder()
	assert.Equal(t, "o1", id)
	assert.Equal(t, ScreenProducts, s.Screen())
	_, err = s.CurrentOrder()
	require.Error(t, err)
	_, _, err = s.CheckoutContext()
	require.Error(t, err)
}

func TestLogoutClearsEverything(t *testing.T) {
	s := NewSession()
	s.LoginSucceeded(customer())
	require.NoError(t, s.SelectProduct(catalog.SeedProducts()[0]))
	s.OrderPlaced(orders.Order{ID: "o1", PaymentMethod: orders.MethodWallet})

	s.Logout()
	assert.Equal(t, ScreenLogin, s.Screen())
	_, ok := s.User()
	assert.False(t, ok)
	_, err := s.CurrentOrder()
	require.Error(t, err)
}

func TestAdminGuard(t *testing.T) {
	t.Run("customer forbidden", func(t *testing.T) {
		s := NewSession()
		s.LoginSucceeded(customer())
		err := s.GoToAdmin()
		require.Error(t, err)
		ae, ok := apperr.As(err)
		require.True(t, ok)
		assert.Equal(t, apperr.Forbidden, ae.Kind)
		assert.Equal(t, ScreenProducts, s.Screen())
	})

	t.Run("admin allowed, back returns to products", func(t *testing.T) {
		s := NewSession()
		s.LoginSucceeded(admin())
		require.NoError(t, s.GoToAdmin())
		assert.Equal(t, ScreenAdminPanel, s.Screen())
		s.BackToProducts()
		assert.Equal(t, ScreenProducts, s.Screen())
	})
}

func TestStorePerToken(t *testing.T) {
	st := NewStore()
	a := st.GetOrCreate("tok-a")
	b := st.GetOrCreate("tok-b")
	assert.NotSame(t, a, b)
	assert.Same(t, a, st.GetOrCreate("tok-a"))

	a.LoginSucceeded(customer())
	st.Delete("tok-a")
	assert.Equal(t, ScreenRegister, st.GetOrCreate("tok-a").Screen())
}
