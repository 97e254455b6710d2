package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Agreement status values. A cart item without a status is pending.
const StatusChecked = "checked"

// CartItem is a rental agreement request. It is created by a renter and
// approved (status set to "checked") or removed by an admin.
type CartItem struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email       string             `bson:"email" json:"email"`
	UserName    string             `bson:"userName,omitempty" json:"userName,omitempty"`
	FloorNo     int                `bson:"floorNo,omitempty" json:"floorNo,omitempty"`
	BlockName   string             `bson:"blockName,omitempty" json:"blockName,omitempty"`
	ApartmentNo string             `bson:"apartmentNo,omitempty" json:"apartmentNo,omitempty"`
	Rent        int                `bson:"rent,omitempty" json:"rent,omitempty"`
	Status      string             `bson:"status,omitempty" json:"status,omitempty"`
}
