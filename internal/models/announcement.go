package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Announcement struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Date        string             `bson:"date,omitempty" json:"date,omitempty"`
}
