package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"aahar-telegram/models"

	"github.com/google/uuid"
)

var (
	ErrEmptyBasket       = errors.New("basket is empty")
	ErrIncompleteDetails = errors.New("name, address and phone are all required")
)

// ValidateDelivery checks the checkout form: every field is required.
func ValidateDelivery(d models.DeliveryDetails) error {
	if strings.TrimSpace(d.Name) == "" ||
		strings.TrimSpace(d.Address) == "" ||
		strings.TrimSpace(d.Phone) == "" {
		return ErrIncompleteDetails
	}
	return nil
}

// PlaceOrder turns the basket into an order: validates the delivery
// details, rejects an empty basket, freezes the lines and total, assigns
// an order reference and clears the basket. The total is the basket total
// at the moment of checkout; there are no fees on top.
func PlaceOrder(b *Basket, d models.DeliveryDetails) (*models.Order, error) {
	if err := ValidateDelivery(d); err != nil {
		return nil, err
	}
	if b.Len() == 0 {
		return nil, ErrEmptyBasket
	}
	order := &models.Order{
		Ref:      uuid.NewString(),
		Lines:    b.Entries(),
		Total:    b.TotalPrice(),
		Delivery: d,
		PlacedAt: time.Now().UTC(),
	}
	b.Clear()
	return order, nil
}

// OrderReceiptMessage formats the confirmation sent to the customer after
// checkout.
func OrderReceiptMessage(o *models.Order) string {
	var sb strings.Builder
	sb.WriteString("✅ *Order placed!*\n\n")
	for _, line := range o.Lines {
		label := line.Name
		if line.Portion == models.PortionHalf {
			label += " (half)"
		}
		fmt.Fprintf(&sb, "• %s × %d — %s\n", label, line.Quantity, models.FormatPrice(line.LineTotal()))
	}
	fmt.Fprintf(&sb, "\n*Total: %s*\n\n", models.FormatPrice(o.Total))
	fmt.Fprintf(&sb, "Deliver to: %s, %s (📞 %s)\n", o.Delivery.Name, o.Delivery.Address, o.Delivery.Phone)
	fmt.Fprintf(&sb, "Order ref: `%s`", o.Ref)
	return sb.String()
}
