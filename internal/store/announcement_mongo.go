package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/nhasan/building-api/internal/models"
)

type announcementMongo struct {
	col *mongo.Collection
}

func (s *announcementMongo) Insert(ctx context.Context, item models.Announcement) (primitive.ObjectID, error) {
	item.ID = primitive.NewObjectID()
	if _, err := s.col.InsertOne(ctx, item); err != nil {
		return primitive.NilObjectID, fmt.Errorf("insert announcement: %w", err)
	}
	return item.ID, nil
}

func (s *announcementMongo) ListAll(ctx context.Context) ([]models.Announcement, error) {
	cursor, err := s.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list announcements: %w", err)
	}
	defer cursor.Close(ctx)

	items := make([]models.Announcement, 0)
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("decode announcements: %w", err)
	}
	return items, nil
}

func (s *announcementMongo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Announcement, error) {
	var item models.Announcement
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find announcement: %w", err)
	}
	return &item, nil
}

func (s *announcementMongo) MergeByID(ctx context.Context, id primitive.ObjectID, fields bson.M) (*mongo.UpdateResult, error) {
	return s.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
}

func (s *announcementMongo) DeleteByID(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	return s.col.DeleteOne(ctx, bson.M{"_id": id})
}
