package models

// WishlistItem is a saved catalog item. Product ids are unique within a
// wishlist.
type WishlistItem struct {
	ID    int     `json:"id" bson:"id"`
	Title string  `json:"title" bson:"title"`
	Price float64 `json:"price" bson:"price"`
	Image string  `json:"image" bson:"image"`
}

// Wishlist holds a user's wishlist document.
type Wishlist struct {
	UID   string         `json:"uid" bson:"uid"`
	Items []WishlistItem `json:"items" bson:"items"`
}

// WishlistItemRequest validates an add-to-wishlist payload. Pointer fields
// with binding:"required" accept present-but-zero values while rejecting
// missing ones.
type WishlistItemRequest struct {
	ID    *int     `json:"id" binding:"required"`
	Title *string  `json:"title" binding:"required"`
	Price *float64 `json:"price" binding:"required"`
	Image *string  `json:"image" binding:"required"`
}

func (r *WishlistItemRequest) ToItem() WishlistItem {
	return WishlistItem{ID: *r.ID, Title: *r.Title, Price: *r.Price, Image: *r.Image}
}

// AddWishlistItem appends item unless an entry with the same product id
// already exists, making repeated adds idempotent.
func AddWishlistItem(items []WishlistItem, item WishlistItem) []WishlistItem {
	for _, existing := range items {
		if existing.ID == item.ID {
			return items
		}
	}
	return append(items, item)
}

// RemoveWishlistItem drops every entry with the given product id.
func RemoveWishlistItem(items []WishlistItem, id int) []WishlistItem {
	result := make([]WishlistItem, 0, len(items))
	for _, item := range items {
		if item.ID != id {
			result = append(result, item)
		}
	}
	return result
}
