package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/nhasan/building-api/internal/models"
)

// Apartments and FAQs are read-only catalogs seeded outside this service.

type apartmentMongo struct {
	col *mongo.Collection
}

func (s *apartmentMongo) ListAll(ctx context.Context) ([]models.Apartment, error) {
	cursor, err := s.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list apartments: %w", err)
	}
	defer cursor.Close(ctx)

	items := make([]models.Apartment, 0)
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("decode apartments: %w", err)
	}
	return items, nil
}

type faqMongo struct {
	col *mongo.Collection
}

func (s *faqMongo) ListAll(ctx context.Context) ([]models.FAQ, error) {
	cursor, err := s.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list faqs: %w", err)
	}
	defer cursor.Close(ctx)

	items := make([]models.FAQ, 0)
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("decode faqs: %w", err)
	}
	return items, nil
}
