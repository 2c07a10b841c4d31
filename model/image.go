package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Image metadata; the bytes live in GridFS under FileID.
type Image struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	OwnerUserID string             `bson:"ownerUserId" json:"owner_user_id"`
	FileID      primitive.ObjectID `bson:"fileId" json:"-"`
	ContentType string             `bson:"contentType" json:"content_type"`
	CreatedAt   time.Time          `bson:"createdAt" json:"created_at"`
}
