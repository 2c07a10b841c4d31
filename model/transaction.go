package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Rent, Sale and Trade each represent one transaction against exactly one
// announcement. Lifecycle is two booleans: created → accepted, and cancelled
// as the only terminal state. Cancelling restores the announcement's
// availability.

type Rent struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	AnnouncementID string             `bson:"announcementId" json:"announcement_id"`
	OwnerUserID    string             `bson:"ownerUserId" json:"owner_user_id"`
	LeadUserID     string             `bson:"leadUserId" json:"lead_user_id"`
	ChatID         string             `bson:"chatId" json:"chat_id"`
	Value          int64              `bson:"value" json:"value"`
	StartDate      time.Time          `bson:"startDate" json:"start_date"`
	EndDate        *time.Time         `bson:"endDate,omitempty" json:"end_date,omitempty"`
	Accepted       bool               `bson:"accepted" json:"accepted"`
	Cancelled      bool               `bson:"cancelled" json:"cancelled"`
	CreatedAt      time.Time          `bson:"createdAt" json:"created_at"`
}

type Sale struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	AnnouncementID string             `bson:"announcementId" json:"announcement_id"`
	OwnerUserID    string             `bson:"ownerUserId" json:"owner_user_id"`
	BuyerUserID    string             `bson:"buyerUserId" json:"buyer_user_id"`
	Value          int64              `bson:"value" json:"value"`
	AddressID      *string            `bson:"addressId,omitempty" json:"address_id,omitempty"`
	Accepted       bool               `bson:"accepted" json:"accepted"`
	Cancelled      bool               `bson:"cancelled" json:"cancelled"`
	CreatedAt      time.Time          `bson:"createdAt" json:"created_at"`
}

type Trade struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	AnnouncementID string             `bson:"announcementId" json:"announcement_id"`
	OwnerUserID    string             `bson:"ownerUserId" json:"owner_user_id"`
	TradeUserID    string             `bson:"tradeUserId" json:"trade_user_id"`
	OfferedBookID  string             `bson:"offeredBookId" json:"offered_book_id"`
	ChatID         string             `bson:"chatId" json:"chat_id"`
	Accepted       bool               `bson:"accepted" json:"accepted"`
	Cancelled      bool               `bson:"cancelled" json:"cancelled"`
	CreatedAt      time.Time          `bson:"createdAt" json:"created_at"`
}
