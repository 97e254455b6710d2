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

type userMongo struct {
	col *mongo.Collection
}

func (s *userMongo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.col.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return &user, nil
}

func (s *userMongo) Insert(ctx context.Context, user models.User) (primitive.ObjectID, error) {
	user.ID = primitive.NewObjectID()
	if _, err := s.col.InsertOne(ctx, user); err != nil {
		return primitive.NilObjectID, fmt.Errorf("insert user: %w", err)
	}
	return user.ID, nil
}

func (s *userMongo) List(ctx context.Context) ([]models.User, error) {
	cursor, err := s.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer cursor.Close(ctx)

	users := make([]models.User, 0)
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}
	return users, nil
}

func (s *userMongo) SetRoleByID(ctx context.Context, id primitive.ObjectID, role string) (*mongo.UpdateResult, error) {
	return s.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"role": role}})
}

func (s *userMongo) SetRoleByEmail(ctx context.Context, email, role string) (*mongo.UpdateResult, error) {
	return s.col.UpdateOne(ctx, bson.M{"email": email}, bson.M{"$set": bson.M{"role": role}})
}

func (s *userMongo) DeleteByID(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	return s.col.DeleteOne(ctx, bson.M{"_id": id})
}
