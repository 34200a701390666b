package email

import (
	"context"
	"log"

	"github.com/avialab/flightorders/internal/kafka"
)

// Sender is a notification stub: it logs instead of talking to a mail
// provider. Swapped out per deployment.
type Sender struct{}

func NewSender() *Sender {
	return &Sender{}
}

func (s *Sender) Send(ctx context.Context, event kafka.OrderEvent) error {
	log.Printf("notify user %d: order %s (%s) with %d tickets", event.UserID, event.Reference, event.Type, len(event.Tickets))
	return nil
}
