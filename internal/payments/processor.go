package payments

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Processor abstracts the payment gateway. The booking flow does not charge
// anything yet, so the default implementation approves every charge with a
// zero amount.
type Processor interface {
	Charge(ctx context.Context, payment *Payment) error
}

type mockProcessor struct{}

// NewMockProcessor returns a processor that immediately completes every
// payment. Swap this for a real gateway integration when billing lands.
func NewMockProcessor() Processor {
	return mockProcessor{}
}

func (mockProcessor) Charge(ctx context.Context, payment *Payment) error {
	now := time.Now().UTC()
	payment.Status = StatusCompleted
	payment.TransactionID = generateTransactionID()
	payment.ProcessedAt = &now
	return nil
}

func generateTransactionID() string {
	short := strings.Split(uuid.New().String(), "-")[0]
	return fmt.Sprintf("TXN_%d_%s", time.Now().Unix(), short)
}
