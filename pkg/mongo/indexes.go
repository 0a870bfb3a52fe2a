package mongo

import (
	"log"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"storefront-api/pkg/global"
)

type IndexConfig struct {
	CollectionName string
	IndexModel     mongo.IndexModel
}

var requiredIndexes = []IndexConfig{
	// One identity record per uid.
	{
		CollectionName: "users",
		IndexModel: mongo.IndexModel{
			Keys:    bson.D{{Key: "uid", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("idx_user_uid_unique"),
		},
	},
	// One cart document per uid.
	{
		CollectionName: "carts",
		IndexModel: mongo.IndexModel{
			Keys:    bson.D{{Key: "uid", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("idx_cart_uid_unique"),
		},
	},
	// One wishlist document per uid.
	{
		CollectionName: "wishlists",
		IndexModel: mongo.IndexModel{
			Keys:    bson.D{{Key: "uid", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("idx_wishlist_uid_unique"),
		},
	},
	// One editable profile per user.
	{
		CollectionName: "profiles",
		IndexModel: mongo.IndexModel{
			Keys:    bson.D{{Key: "userId", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("idx_profile_userid_unique"),
		},
	},
	// Order history: newest-first listing per user.
	{
		CollectionName: "orders",
		IndexModel: mongo.IndexModel{
			Keys: bson.D{
				{Key: "userUid", Value: 1},
				{Key: "createdAt", Value: -1},
			},
			Options: options.Index().SetName("idx_user_orders"),
		},
	},
}

func EnsureIndexes() error {
	log.Println("Starting index creation...")

	for _, idxConfig := range requiredIndexes {
		collection := GetCollection(idxConfig.CollectionName)
		ctx, cancel := global.GetDefaultTimer()

		indexName, err := collection.Indexes().CreateOne(ctx, idxConfig.IndexModel)
		cancel()
		if err != nil {
			log.Printf("Error creating index on collection %s: %v",
				idxConfig.CollectionName, err)
			return err
		}

		log.Printf("✓ Created index '%s' on collection '%s'", indexName, idxConfig.CollectionName)
	}

	log.Println("All indexes created successfully!")
	return nil
}

func EnsureIndexesOnStartup() {
	if err := EnsureIndexes(); err != nil {
		log.Fatalf("Failed to ensure indexes: %v", err)
	}
}
