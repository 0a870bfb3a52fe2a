package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"storefront-api/pkg/models"
)

// GetWishlistItems returns the user's wishlist entries, empty when the
// document does not exist yet.
func GetWishlistItems(ctx context.Context, uid string) ([]models.WishlistItem, error) {
	collection := GetCollection("wishlists")

	var wishlist models.Wishlist
	err := collection.FindOne(ctx, bson.D{{Key: "uid", Value: uid}}).Decode(&wishlist)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return []models.WishlistItem{}, nil
		}
		return nil, err
	}
	if wishlist.Items == nil {
		wishlist.Items = []models.WishlistItem{}
	}
	return wishlist.Items, nil
}

// SetWishlistItems replaces the whole item list. Wishlist writes are
// read-modify-write without a revision guard; two concurrent mutations on the
// same list can lose one update.
func SetWishlistItems(ctx context.Context, uid string, items []models.WishlistItem) error {
	collection := GetCollection("wishlists")

	filter := bson.D{{Key: "uid", Value: uid}}
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "uid", Value: uid},
		{Key: "items", Value: items},
	}}}

	_, err := collection.UpdateOne(ctx, filter, update, options.UpdateOne().SetUpsert(true))
	return err
}
