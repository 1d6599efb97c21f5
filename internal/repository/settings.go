package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"storefront-service/internal/model"
)

// The settings collection holds a single document keyed by a fixed name.
const settingsKey = "store"

type MongoSettingsRepository struct {
	col *mongo.Collection
}

func NewMongoSettingsRepository(db *mongo.Database) *MongoSettingsRepository {
	return &MongoSettingsRepository{col: db.Collection("settings")}
}

func (m *MongoSettingsRepository) Get(ctx context.Context) (*model.Settings, error) {
	var res model.Settings
	err := m.col.FindOne(ctx, bson.M{"key": settingsKey}).Decode(&res)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	return &res, err
}

func (m *MongoSettingsRepository) Save(ctx context.Context, s *model.Settings) error {
	s.UpdatedAt = time.Now().UTC()

	filter := bson.M{"key": settingsKey}
	update := bson.M{"$set": bson.M{
		"store_name":         s.StoreName,
		"currency":           s.Currency,
		"shipping_fee_cents": s.ShippingFeeCents,
		"tax_rate_bps":       s.TaxRateBps,
		"support_email":      s.SupportEmail,
		"updated_at":         s.UpdatedAt,
	}, "$setOnInsert": bson.M{
		"key": settingsKey,
	}}
	opts := options.Update().SetUpsert(true)
	_, err := m.col.UpdateOne(ctx, filter, update, opts)
	return err
}
