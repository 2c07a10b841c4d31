package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Chat ties the announcement owner and the counterpart user of a rent or
// trade. Sales don't get a chat.
type Chat struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	OwnerUserID    string             `bson:"ownerUserId" json:"owner_user_id"`
	LeadUserID     string             `bson:"leadUserId" json:"lead_user_id"`
	AnnouncementID string             `bson:"announcementId" json:"announcement_id"`
	CreatedAt      time.Time          `bson:"createdAt" json:"created_at"`
}

type ChatMessage struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ChatID    string             `bson:"chatId" json:"chat_id"`
	SenderID  string             `bson:"senderId" json:"sender_id"`
	Content   string             `bson:"content" json:"content"`
	CreatedAt time.Time          `bson:"createdAt" json:"created_at"`
}
