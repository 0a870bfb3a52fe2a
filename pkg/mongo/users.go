package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"storefront-api/pkg/auth"
	"storefront-api/pkg/models"
)

// SyncUser makes sure an identity record exists for the claims. $setOnInsert
// keeps the first-login snapshot intact on later syncs.
func SyncUser(ctx context.Context, claims *auth.Claims) error {
	collection := GetCollection("users")

	filter := bson.D{{Key: "uid", Value: claims.UID}}
	update := bson.D{{Key: "$setOnInsert", Value: models.User{
		UID:         claims.UID,
		Email:       claims.Email,
		DisplayName: claims.DisplayName,
		PhotoURL:    claims.PhotoURL,
		CreatedAt:   time.Now().UTC(),
	}}}

	_, err := collection.UpdateOne(ctx, filter, update, options.UpdateOne().SetUpsert(true))
	return err
}

// GetUser returns the identity record, or mongo.ErrNoDocuments.
func GetUser(ctx context.Context, uid string) (*models.User, error) {
	collection := GetCollection("users")

	var user models.User
	if err := collection.FindOne(ctx, bson.D{{Key: "uid", Value: uid}}).Decode(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateUser merges fields into the user document. uid and email always come
// from the verified claims, never from the request body.
func UpdateUser(ctx context.Context, claims *auth.Claims, fields map[string]interface{}) error {
	collection := GetCollection("users")

	set := bson.M{}
	for k, v := range fields {
		set[k] = v
	}
	set["uid"] = claims.UID
	set["email"] = claims.Email

	filter := bson.D{{Key: "uid", Value: claims.UID}}
	update := bson.D{{Key: "$set", Value: set}}

	_, err := collection.UpdateOne(ctx, filter, update, options.UpdateOne().SetUpsert(true))
	return err
}

// GetProfile returns the editable profile document, or mongo.ErrNoDocuments.
func GetProfile(ctx context.Context, uid string) (*models.Profile, error) {
	collection := GetCollection("profiles")

	var profile models.Profile
	if err := collection.FindOne(ctx, bson.D{{Key: "userId", Value: uid}}).Decode(&profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// UpsertProfile creates or replaces the name/photo fields of the profile.
func UpsertProfile(ctx context.Context, uid string, req *models.UpdateProfileRequest) error {
	collection := GetCollection("profiles")

	filter := bson.D{{Key: "userId", Value: uid}}
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "userId", Value: uid},
		{Key: "name", Value: req.Name},
		{Key: "photo", Value: req.Photo},
	}}}

	_, err := collection.UpdateOne(ctx, filter, update, options.UpdateOne().SetUpsert(true))
	return err
}
