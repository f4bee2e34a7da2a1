package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/lusakaeats/restaurant-ordering-platform/internal/models"
	"github.com/lusakaeats/restaurant-ordering-platform/pkg/sendgrid"
)

// NotificationService sends customer-facing emails. Delivery is best effort;
// callers log failures and carry on.
type NotificationService struct {
	email sendgrid.EmailService
}

func NewNotificationService(email sendgrid.EmailService) *NotificationService {
	return &NotificationService{email: email}
}

func (s *NotificationService) SendOrderConfirmation(ctx context.Context, order *models.Order) error {
	var lines strings.Builder

	for _, item := range order.Items {
		if item.PricingType == models.PricingPerGram {
			fmt.Fprintf(&lines, "%d x %s (%dg) - K%s\n", item.Quantity, item.Name, item.Grams, item.LineTotal.StringFixed(0))
		} else {
			fmt.Fprintf(&lines, "%d x %s - K%s\n", item.Quantity, item.Name, item.LineTotal.StringFixed(0))
		}
	}

	content := fmt.Sprintf("Thank you for your order!\n\n%s\nSubtotal: K%s\nDiscount: K%s\nTotal: K%s\n\nTrack your order: /orders/track/%s\n",
		lines.String(), order.Subtotal.StringFixed(0), order.Discount.StringFixed(0), order.Total.StringFixed(0), order.Token)

	req := &models.EmailNotificationRequest{
		To:      order.CustomerEmail,
		Subject: "Your order is in the kitchen",
		Content: content,
	}

	return s.email.Send(ctx, req)
}
