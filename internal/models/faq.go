package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// FAQ is a read-only reference record.
type FAQ struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Question string             `bson:"question" json:"question"`
	Answer   string             `bson:"answer" json:"answer"`
}
