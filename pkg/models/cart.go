package models

// CartItem mirrors the client-side cart line. Quantities below 1 are never
// stored; at most one line exists per product id.
type CartItem struct {
	ID    int     `json:"id" bson:"id"`
	Title string  `json:"title" bson:"title"`
	Price float64 `json:"price" bson:"price"`
	Image string  `json:"image" bson:"image"`
	Qty   int     `json:"qty" bson:"qty"`
}

// Cart holds a user's cart document. It is created empty on the first auth
// sync and emptied (not deleted) when an order is placed from it.
type Cart struct {
	UID   string     `json:"uid" bson:"uid"`
	Items []CartItem `json:"items" bson:"items"`
}
