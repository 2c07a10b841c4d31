package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Announcement is a book listing. The rent/sale/trade flags mark which
// transaction types the owner offers; IsAvailable flips to false while a
// non-cancelled transaction holds the listing.
type Announcement struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	BookID      string             `bson:"bookId" json:"book_id"`
	OwnerUserID string             `bson:"ownerUserId" json:"owner_user_id"`
	ImageIDs    []string           `bson:"imageIds" json:"image_ids"`
	Description string             `bson:"description" json:"description"`
	IsAvailable bool               `bson:"isAvailable" json:"is_available"`
	Rent        bool               `bson:"rent" json:"rent"`
	Sale        bool               `bson:"sale" json:"sale"`
	Trade       bool               `bson:"trade" json:"trade"`
	DailyValue  *int64             `bson:"dailyValue,omitempty" json:"daily_value,omitempty"`
	SaleValue   *int64             `bson:"saleValue,omitempty" json:"sale_value,omitempty"`
	LocationID  *string            `bson:"locationId,omitempty" json:"location_id,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt" json:"created_at"`
}

// Announcement type tags accepted in forms.
const (
	AnnouncementRent  = "RENT"
	AnnouncementSale  = "SALE"
	AnnouncementTrade = "TRADE"
)
