// Package store holds the per-collection repositories. Handlers and
// middleware depend on the interfaces; the Mongo implementations live in the
// *_mongo.go files.
package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/nhasan/building-api/internal/models"
)

// UserStore persists user documents. Find methods return nil without an
// error when no document matches.
type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Insert(ctx context.Context, user models.User) (primitive.ObjectID, error)
	List(ctx context.Context) ([]models.User, error)
	SetRoleByID(ctx context.Context, id primitive.ObjectID, role string) (*mongo.UpdateResult, error)
	SetRoleByEmail(ctx context.Context, email, role string) (*mongo.UpdateResult, error)
	DeleteByID(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error)
}

// CartStore persists rental agreement requests.
type CartStore interface {
	Insert(ctx context.Context, item models.CartItem) (primitive.ObjectID, error)
	FindByEmail(ctx context.Context, email string) ([]models.CartItem, error)
	ListAll(ctx context.Context) ([]models.CartItem, error)
	SetStatusChecked(ctx context.Context, id primitive.ObjectID) (*mongo.UpdateResult, error)
	DeleteByID(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error)
}

// AnnouncementStore persists announcements.
type AnnouncementStore interface {
	Insert(ctx context.Context, item models.Announcement) (primitive.ObjectID, error)
	ListAll(ctx context.Context) ([]models.Announcement, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Announcement, error)
	MergeByID(ctx context.Context, id primitive.ObjectID, fields bson.M) (*mongo.UpdateResult, error)
	DeleteByID(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error)
}

// ApartmentStore reads apartment listings.
type ApartmentStore interface {
	ListAll(ctx context.Context) ([]models.Apartment, error)
}

// FAQStore reads FAQ records.
type FAQStore interface {
	ListAll(ctx context.Context) ([]models.FAQ, error)
}

// Stores bundles the repositories backed by one database.
type Stores struct {
	Users         UserStore
	Apartments    ApartmentStore
	Carts         CartStore
	Announcements AnnouncementStore
	FAQs          FAQStore
}

// NewMongoStores wires every repository onto its collection.
func NewMongoStores(db *mongo.Database) Stores {
	return Stores{
		Users:         &userMongo{col: db.Collection("users")},
		Apartments:    &apartmentMongo{col: db.Collection("apartments")},
		Carts:         &cartMongo{col: db.Collection("carts")},
		Announcements: &announcementMongo{col: db.Collection("announcements")},
		FAQs:          &faqMongo{col: db.Collection("faqs")},
	}
}
