package orders

import (
	"time"

	"github.com/designerprogramming-cyber/Designs4U/internal/modules/catalog"
)

type PaymentMethod string

const (
	MethodBank   PaymentMethod = "bank"
	MethodWallet PaymentMethod = "wallet"
)

type Status string

const (
	StatusPendingPayment  Status = "pending_payment"
	StatusPendingApproval Status = "pending_approval"
	StatusCompleted       Status = "completed"
	StatusFailed          Status = "failed"
)

// CanTransition reports whether moving from s to next follows the
// lifecycle graph. The graph only moves forward; completed and failed
// are terminal.
func (s Status) CanTransition(next Status) bool {
	switch s {
	case StatusPendingPayment:
		return next == StatusCompleted || next == StatusPendingApproval
	case StatusPendingApproval:
		return next == StatusCompleted || next == StatusFailed
	default:
		return false
	}
}

// Order snapshots the product and variant at creation time. Catalog
// edits after checkout never reach an existing order.
type Order struct {
	ID            string          `json:"id"`
	Product       catalog.Product `json:"product"`
	Variant       catalog.Variant `json:"variant"`
	PaymentMethod PaymentMethod   `json:"payment_method"`
	Status        Status          `json:"status"`
	ScreenshotKey string          `json:"screenshot_key,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

// Downloadable reports whether the purchased file may be handed out.
func (o Order) Downloadable() bool {
	return o.Status == StatusCompleted && o.Variant.DownloadURL != ""
}
