package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"storefront-service/internal/model"
)

type MongoWishlistRepository struct {
	col *mongo.Collection
}

func NewMongoWishlistRepository(db *mongo.Database) *MongoWishlistRepository {
	return &MongoWishlistRepository{col: db.Collection("wishlists")}
}

func (m *MongoWishlistRepository) Save(ctx context.Context, w *model.Wishlist) error {
	if w.ID.IsZero() {
		w.ID = primitive.NewObjectID()
	}

	filter := bson.M{"user_id": w.UserID}
	update := bson.M{"$set": bson.M{
		"product_ids": w.ProductIDs,
	}, "$setOnInsert": bson.M{
		"_id":     w.ID,
		"user_id": w.UserID,
	}}
	opts := options.Update().SetUpsert(true)
	_, err := m.col.UpdateOne(ctx, filter, update, opts)
	return err
}

func (m *MongoWishlistRepository) FindByUserID(ctx context.Context, userID primitive.ObjectID) (*model.Wishlist, error) {
	var res model.Wishlist
	err := m.col.FindOne(ctx, bson.M{"user_id": userID}).Decode(&res)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	return &res, err
}
