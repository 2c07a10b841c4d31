package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name               string             `bson:"name" json:"name"`
	Email              string             `bson:"email" json:"email"`
	PasswordHash       string             `bson:"passwordHash" json:"-"`
	UserImageID        *string            `bson:"userImageId,omitempty" json:"user_image_id,omitempty"`
	TokenVersion       int                `bson:"tokenVersion" json:"-"`
	RecoveryToken      *string            `bson:"recoveryToken,omitempty" json:"-"`
	RecoveryExpiration *time.Time         `bson:"recoveryExpiration,omitempty" json:"-"`
	BookIDs            []string           `bson:"bookIds" json:"book_ids"`
	AddressIDs         []string           `bson:"addressIds" json:"address_ids"`
	CreatedAt          time.Time          `bson:"createdAt" json:"created_at"`
}

// RegisterReq represents user registration payload
// swagger:model RegisterReq
type RegisterReq struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginReq represents login payload
// swagger:model LoginReq
type LoginReq struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RecoveryReq finishes a password recovery started via /recovery/:email.
type RecoveryReq struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=6"`
}
