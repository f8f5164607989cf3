package services

import (
	"errors"
	"strings"
	"testing"

	"aahar-telegram/models"
)

var testDelivery = models.DeliveryDetails{
	Name:    "Ravi",
	Address: "12 MG Road",
	Phone:   "9999999999",
}

func TestValidateDelivery(t *testing.T) {
	tests := []struct {
		name    string
		details models.DeliveryDetails
		wantErr bool
	}{
		{"complete", testDelivery, false},
		{"missing name", models.DeliveryDetails{Address: "a", Phone: "p"}, true},
		{"missing address", models.DeliveryDetails{Name: "n", Phone: "p"}, true},
		{"missing phone", models.DeliveryDetails{Name: "n", Address: "a"}, true},
		{"whitespace only", models.DeliveryDetails{Name: "  ", Address: "a", Phone: "p"}, true},
	}
	for _, tt := range tests {
		err := ValidateDelivery(tt.details)
		if (err != nil) != tt.wantErr {
			t.Errorf("%s: ValidateDelivery() err = %v, wantErr %v", tt.name, err, tt.wantErr)
		}
	}
}

func TestPlaceOrderEmptyBasket(t *testing.T) {
	_, err := PlaceOrder(NewBasket(), testDelivery)
	if !errors.Is(err, ErrEmptyBasket) {
		t.Errorf("PlaceOrder on empty basket: err = %v, want ErrEmptyBasket", err)
	}
}

func TestPlaceOrderIncompleteDetails(t *testing.T) {
	b := NewBasket()
	b.Add(chickenBiryani, models.PortionFull, 1)
	_, err := PlaceOrder(b, models.DeliveryDetails{Name: "Ravi"})
	if !errors.Is(err, ErrIncompleteDetails) {
		t.Errorf("err = %v, want ErrIncompleteDetails", err)
	}
	if b.Len() != 1 {
		t.Error("basket must stay intact when checkout fails")
	}
}

func TestPlaceOrderFreezesBasketAndClears(t *testing.T) {
	b := NewBasket()
	b.Add(chickenBiryani, models.PortionFull, 1)
	b.Add(chickenBiryani, models.PortionHalf, 2)

	order, err := PlaceOrder(b, testDelivery)
	if err != nil {
		t.Fatalf("PlaceOrder: %v", err)
	}
	if order.Ref == "" {
		t.Error("order has no reference")
	}
	if order.Total != 46000 {
		t.Errorf("Total = %d, want 46000", order.Total)
	}
	if len(order.Lines) != 2 {
		t.Errorf("lines = %d, want 2", len(order.Lines))
	}
	if order.PlacedAt.IsZero() {
		t.Error("PlacedAt not set")
	}

	if b.Len() != 0 || b.TotalPrice() != 0 {
		t.Errorf("basket not cleared: len = %d, total = %d", b.Len(), b.TotalPrice())
	}
}

func TestOrderReceiptMessage(t *testing.T) {
	b := NewBasket()
	b.Add(chickenBiryani, models.PortionHalf, 2)
	order, err := PlaceOrder(b, testDelivery)
	if err != nil {
		t.Fatalf("PlaceOrder: %v", err)
	}

	msg := OrderReceiptMessage(order)
	for _, want := range []string{"Chicken Biryani", "(half)", "× 2", "₹240", order.Ref, "12 MG Road"} {
		if !strings.Contains(msg, want) {
			t.Errorf("receipt missing %q:\n%s", want, msg)
		}
	}
}
