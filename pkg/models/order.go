package models

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"storefront-api/pkg/money"
)

// Order statuses. PENDING is the only state orders are created in; PAID and
// CANCELLED are terminal.
const (
	StatusPending   = "PENDING"
	StatusPaid      = "PAID"
	StatusCancelled = "CANCELLED"
)

var (
	ErrItemsRequired       = errors.New("items required")
	ErrInvalidItem         = errors.New("invalid item payload")
	ErrInvalidShippingInfo = errors.New("invalid shipping info")
)

// IsTerminalStatus reports whether no further transition is permitted.
func IsTerminalStatus(status string) bool {
	return status == StatusPaid || status == StatusCancelled
}

// CanTransition reports whether an order may move from one status to another.
// Only PENDING -> PAID and PENDING -> CANCELLED are allowed.
func CanTransition(from, to string) bool {
	return from == StatusPending && IsTerminalStatus(to)
}

// OrderItem is a point-in-time snapshot of a purchased catalog item. Prices
// are captured at creation so the order stays a stable financial record even
// if the catalog changes later.
type OrderItem struct {
	ProductID int     `json:"productId" bson:"productId"`
	Title     string  `json:"title" bson:"title"`
	Price     float64 `json:"price" bson:"price"`
	Image     string  `json:"image" bson:"image"`
	Qty       int     `json:"qty" bson:"qty"`
	LineTotal float64 `json:"lineTotal" bson:"lineTotal"`
}

// ShippingInfo is the delivery address attached to an order. Phone is the
// only optional field.
type ShippingInfo struct {
	FullName string `json:"fullName" bson:"fullName"`
	Address1 string `json:"address1" bson:"address1"`
	City     string `json:"city" bson:"city"`
	Country  string `json:"country" bson:"country"`
	Zip      string `json:"zip" bson:"zip"`
	Phone    string `json:"phone" bson:"phone"`
}

// Order is a stored purchase order. Everything except Status (and the
// CancelledAt stamp) is immutable once inserted.
type Order struct {
	ID           bson.ObjectID `json:"_id" bson:"_id,omitempty"`
	UserUID      string        `json:"userUid" bson:"userUid"`
	Items        []OrderItem   `json:"items" bson:"items"`
	Subtotal     float64       `json:"subtotal" bson:"subtotal"`
	Shipping     float64       `json:"shipping" bson:"shipping"`
	Total        float64       `json:"total" bson:"total"`
	Status       string        `json:"status" bson:"status"`
	ShippingInfo ShippingInfo  `json:"shippingInfo" bson:"shippingInfo"`
	CreatedAt    time.Time     `json:"createdAt" bson:"createdAt"`
	CancelledAt  *time.Time    `json:"cancelledAt,omitempty" bson:"cancelledAt,omitempty"`
}

// OrderItemIn is one item of an order-creation request. Pointer fields
// distinguish "absent" from zero values so presence can be validated.
type OrderItemIn struct {
	ID    *int     `json:"id"`
	Title *string  `json:"title"`
	Price *float64 `json:"price"`
	Image *string  `json:"image"`
	Qty   *int     `json:"qty"`
}

type CreateOrderRequest struct {
	Items        []OrderItemIn `json:"items"`
	ShippingInfo *ShippingInfo `json:"shippingInfo"`
}

// Validate checks the request against the order-creation constraints. Nothing
// may be persisted when it returns an error.
func (r *CreateOrderRequest) Validate() error {
	if len(r.Items) == 0 {
		return ErrItemsRequired
	}
	for _, item := range r.Items {
		if item.ID == nil || item.Title == nil || item.Price == nil || item.Qty == nil {
			return ErrInvalidItem
		}
		if *item.Title == "" || *item.Price < 0 || *item.Qty < 1 {
			return ErrInvalidItem
		}
	}
	s := r.ShippingInfo
	if s == nil || s.FullName == "" || s.Address1 == "" || s.City == "" || s.Country == "" || s.Zip == "" {
		return ErrInvalidShippingInfo
	}
	return nil
}

// ToOrder builds the order snapshot for uid. All monetary figures are
// computed in cents and converted back exactly once per field.
func (r *CreateOrderRequest) ToOrder(uid string, shippingFeeCents int64) *Order {
	items := make([]OrderItem, len(r.Items))
	var subtotalCents int64
	for i, in := range r.Items {
		lineCents := money.ToCents(*in.Price) * int64(*in.Qty)
		subtotalCents += lineCents

		image := ""
		if in.Image != nil {
			image = *in.Image
		}
		items[i] = OrderItem{
			ProductID: *in.ID,
			Title:     *in.Title,
			Price:     *in.Price,
			Image:     image,
			Qty:       *in.Qty,
			LineTotal: money.FromCents(lineCents),
		}
	}

	totalCents := subtotalCents + shippingFeeCents

	return &Order{
		UserUID:      uid,
		Items:        items,
		Subtotal:     money.FromCents(subtotalCents),
		Shipping:     money.FromCents(shippingFeeCents),
		Total:        money.FromCents(totalCents),
		Status:       StatusPending,
		ShippingInfo: *r.ShippingInfo,
		CreatedAt:    time.Now().UTC(),
	}
}
