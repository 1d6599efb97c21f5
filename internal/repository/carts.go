package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"storefront-service/internal/model"
)

type MongoCartRepository struct {
	col *mongo.Collection
}

func NewMongoCartRepository(db *mongo.Database) *MongoCartRepository {
	return &MongoCartRepository{col: db.Collection("carts")}
}

// Save upserts the user's single cart document.
func (m *MongoCartRepository) Save(ctx context.Context, cart *model.Cart) error {
	cart.UpdatedAt = time.Now().UTC()
	if cart.ID.IsZero() {
		cart.ID = primitive.NewObjectID()
	}

	filter := bson.M{"user_id": cart.UserID}
	update := bson.M{"$set": bson.M{
		"items":      cart.Items,
		"updated_at": cart.UpdatedAt,
	}, "$setOnInsert": bson.M{
		"_id":     cart.ID,
		"user_id": cart.UserID,
	}}
	opts := options.Update().SetUpsert(true)
	_, err := m.col.UpdateOne(ctx, filter, update, opts)
	return err
}

func (m *MongoCartRepository) FindByUserID(ctx context.Context, userID primitive.ObjectID) (*model.Cart, error) {
	var res model.Cart
	err := m.col.FindOne(ctx, bson.M{"user_id": userID}).Decode(&res)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	return &res, err
}

func (m *MongoCartRepository) DeleteByUserID(ctx context.Context, userID primitive.ObjectID) error {
	_, err := m.col.DeleteOne(ctx, bson.M{"user_id": userID})
	return err
}
