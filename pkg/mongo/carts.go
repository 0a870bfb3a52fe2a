package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"storefront-api/pkg/models"
)

// EnsureCart creates an empty cart for the user if none exists yet.
func EnsureCart(ctx context.Context, uid string) error {
	collection := GetCollection("carts")

	filter := bson.D{{Key: "uid", Value: uid}}
	update := bson.D{{Key: "$setOnInsert", Value: models.Cart{
		UID:   uid,
		Items: []models.CartItem{},
	}}}

	_, err := collection.UpdateOne(ctx, filter, update, options.UpdateOne().SetUpsert(true))
	return err
}

// GetCart returns the user's cart, an empty one if the document is missing.
func GetCart(ctx context.Context, uid string) (*models.Cart, error) {
	collection := GetCollection("carts")

	var cart models.Cart
	err := collection.FindOne(ctx, bson.D{{Key: "uid", Value: uid}}).Decode(&cart)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return &models.Cart{UID: uid, Items: []models.CartItem{}}, nil
		}
		return nil, err
	}
	return &cart, nil
}

// ClearCart empties the cart, creating the document if absent. Called after
// an order insert succeeds; the order is durable by then, so callers treat a
// failure here as cosmetic.
func ClearCart(ctx context.Context, uid string) error {
	collection := GetCollection("carts")

	filter := bson.D{{Key: "uid", Value: uid}}
	update := bson.D{{Key: "$set", Value: bson.D{{Key: "items", Value: []models.CartItem{}}}}}

	_, err := collection.UpdateOne(ctx, filter, update, options.UpdateOne().SetUpsert(true))
	return err
}
