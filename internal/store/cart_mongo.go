package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/nhasan/building-api/internal/models"
)

type cartMongo struct {
	col *mongo.Collection
}

func (s *cartMongo) Insert(ctx context.Context, item models.CartItem) (primitive.ObjectID, error) {
	item.ID = primitive.NewObjectID()
	if _, err := s.col.InsertOne(ctx, item); err != nil {
		return primitive.NilObjectID, fmt.Errorf("insert cart item: %w", err)
	}
	return item.ID, nil
}

func (s *cartMongo) FindByEmail(ctx context.Context, email string) ([]models.CartItem, error) {
	return s.find(ctx, bson.M{"email": email})
}

func (s *cartMongo) ListAll(ctx context.Context) ([]models.CartItem, error) {
	return s.find(ctx, bson.M{})
}

func (s *cartMongo) find(ctx context.Context, filter bson.M) ([]models.CartItem, error) {
	cursor, err := s.col.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find cart items: %w", err)
	}
	defer cursor.Close(ctx)

	items := make([]models.CartItem, 0)
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("decode cart items: %w", err)
	}
	return items, nil
}

func (s *cartMongo) SetStatusChecked(ctx context.Context, id primitive.ObjectID) (*mongo.UpdateResult, error) {
	return s.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"status": models.StatusChecked}})
}

func (s *cartMongo) DeleteByID(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	return s.col.DeleteOne(ctx, bson.M{"_id": id})
}
