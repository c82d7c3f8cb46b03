package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/designerprogramming-cyber/Designs4U/internal/http/middleware"
	"github.com/designerprogramming-cyber/Designs4U/internal/http/validation"
	"github.com/designerprogramming-cyber/Designs4U/internal/modules/flow"
	"github.com/designerprogramming-cyber/Designs4U/internal/modules/orders"
	"github.com/designerprogramming-cyber/Designs4U/internal/shared/apperr"
	"github.com/designerprogramming-cyber/Designs4U/pkg/view"
)

// OrderHandler walks an order through checkout, payment and download.
type OrderHandler struct {
	orders *orders.Service
	flows  *flow.Store
	log    *slog.Logger
}

func NewOrderHandler(os *orders.Service, flows *flow.Store, log *slog.Logger) *OrderHandler {
	return &OrderHandler{orders: os, flows: flows, log: log}
}

type checkoutRequest struct {
	VariantID string `json:"variant_id" binding:"required"`
}

// Checkout picks a variant of the selected product and moves to the
// checkout screen.
func (h *OrderHandler) Checkout(c *gin.Context) {
	var req checkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Please choose a package.", validation.FromBindError(err, &req)))
		return
	}

	sess := h.flows.GetOrCreate(middleware.ClientID(c))
	v, err := sess.ChooseVariant(req.VariantID)
	if err != nil {
		middleware.Fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"screen": sess.Screen(),
		"variant": gin.H{
			"id":    v.ID,
			"name":  v.Name,
			"price": view.MoneyFromCents(v.PriceCents, "USD"),
		},
	})
}

type placeOrderRequest struct {
	PaymentMethod string `json:"payment_method" binding:"required,oneof=bank wallet"`
}

// Place creates the order from the checkout context and routes to the
// chosen payment screen.
func (h *OrderHandler) Place(c *gin.Context) {
	var req placeOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Please choose a payment method.", validation.FromBindError(err, &req)))
		return
	}

	sess := h.flows.GetOrCreate(middleware.ClientID(c))
	product, variant, err := sess.CheckoutContext()
	if err != nil {
		middleware.Fail(c, err)
		return
	}

	o, err := h.orders.PlaceOrder(c.Request.Context(), product, variant, orders.PaymentMethod(req.PaymentMethod))
	if err != nil {
		middleware.Fail(c, orderErr(err))
		return
	}
	sess.OrderPlaced(o)

	c.JSON(http.StatusCreated, gin.H{
		"screen": sess.Screen(),
		"order":  view.OrderView(o),
	})
}

// Get refreshes the order status; the SPA polls this while a wallet
// order waits for approval.
func (h *OrderHandler) Get(c *gin.Context) {
	o, err := h.orders.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		middleware.Fail(c, orderErr(err))
		return
	}

	sess := h.flows.GetOrCreate(middleware.ClientID(c))
	sess.RefreshOrder(o)

	c.JSON(http.StatusOK, gin.H{"order": view.OrderView(o)})
}

// ConfirmBank marks the bank transfer done; the demo treats this as
// instantly settled.
func (h *OrderHandler) ConfirmBank(c *gin.Context) {
	o, err := h.orders.CompleteBankPayment(c.Request.Context(), c.Param("id"))
	if err != nil {
		middleware.Fail(c, orderErr(err))
		return
	}

	sess := h.flows.GetOrCreate(middleware.ClientID(c))
	if err := sess.PaymentConcluded(o); err != nil {
		middleware.Fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"screen": sess.Screen(),
		"order":  view.OrderView(o),
	})
}

// WalletProof takes the payment screenshot upload and parks the order
// in pending_approval until the simulated reviewer signs off.
func (h *OrderHandler) WalletProof(c *gin.Context) {
	file, err := c.FormFile("screenshot")
	if err != nil {
		middleware.Fail(c, apperr.InvalidErr("Please attach the payment screenshot.", map[string]string{"screenshot": "required"}))
		return
	}
	src, err := file.Open()
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	defer src.Close()

	o, err := h.orders.SubmitWalletProof(c.Request.Context(), c.Param("id"), src, file.Filename, file.Header.Get("Content-Type"))
	if err != nil {
		middleware.Fail(c, orderErr(err))
		return
	}

	sess := h.flows.GetOrCreate(middleware.ClientID(c))
	if err := sess.PaymentConcluded(o); err != nil {
		middleware.Fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"screen": sess.Screen(),
		"order":  view.OrderView(o),
	})
}

// Discard abandons a checkout in progress. The order is gone for good
// and any pending approval timer dies with it.
func (h *OrderHandler) Discard(c *gin.Context) {
	id := c.Param("id")
	h.orders.Discard(c.Request.Context(), id)

	sess := h.flows.GetOrCreate(middleware.ClientID(c))
	sess.FinishOrder()

	c.JSON(http.StatusOK, gin.H{"screen": sess.Screen()})
}

// Finish is the "Done" button on the confirmation screen: back to the
// listing, order record dropped.
func (h *OrderHandler) Finish(c *gin.Context) {
	sess := h.flows.GetOrCreate(middleware.ClientID(c))
	if id := sess.FinishOrder(); id != "" {
		h.orders.Discard(c.Request.Context(), id)
	}
	c.JSON(http.StatusOK, gin.H{"screen": sess.Screen()})
}

// Download hands out the purchased file once the order is completed.
func (h *OrderHandler) Download(c *gin.Context) {
	o, err := h.orders.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		middleware.Fail(c, orderErr(err))
		return
	}
	if !o.Downloadable() {
		middleware.Fail(c, apperr.ForbiddenErr("This order is not ready for download."))
		return
	}

	h.log.Info("design_downloaded",
		slog.String("order_id", o.ID),
		slog.String("variant_id", o.Variant.ID))
	c.Redirect(http.StatusFound, o.Variant.DownloadURL)
}

// orderErr maps the order service sentinels to transport errors.
func orderErr(err error) error {
	switch err {
	case nil:
		return nil
	case orders.ErrNotFound:
		return apperr.NotFoundErr("Order not found.")
	case orders.ErrInvalidTransition:
		return apperr.ConflictErr("This order cannot change to that status.")
	case orders.ErrMissingProof:
		return apperr.InvalidErr("Please attach the payment screenshot.", map[string]string{"screenshot": "required"})
	default:
		return apperr.Wrap(err)
	}
}
