package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Apartment is a listing record. This API only reads apartments; the
// collection is seeded out of band.
type Apartment struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Image       string             `bson:"apartmentImage,omitempty" json:"apartmentImage,omitempty"`
	FloorNo     int                `bson:"floorNo,omitempty" json:"floorNo,omitempty"`
	BlockName   string             `bson:"blockName,omitempty" json:"blockName,omitempty"`
	ApartmentNo string             `bson:"apartmentNo,omitempty" json:"apartmentNo,omitempty"`
	Rent        int                `bson:"rent,omitempty" json:"rent,omitempty"`
}
