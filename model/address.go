package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Address struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	OwnerUserID string             `bson:"ownerUserId" json:"owner_user_id"`
	Street      string             `bson:"street" json:"street"`
	Number      string             `bson:"number" json:"number"`
	City        string             `bson:"city" json:"city"`
	State       string             `bson:"state" json:"state"`
	PostalCode  string             `bson:"postalCode" json:"postal_code"`
	CreatedAt   time.Time          `bson:"createdAt" json:"created_at"`
}
