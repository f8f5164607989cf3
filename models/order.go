package models

import "time"

// DeliveryDetails is what the customer fills in at checkout.
// All three fields are required.
type DeliveryDetails struct {
	Name    string
	Address string
	Phone   string
}

// Order is a placed order: the basket lines frozen at checkout time plus
// the delivery details. Orders are not dispatched anywhere; the reference
// and receipt sent back to the customer are the whole record.
type Order struct {
	Ref      string
	Lines    []BasketEntry
	Total    int64
	Delivery DeliveryDetails
	PlacedAt time.Time
}
