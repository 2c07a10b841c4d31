package mapper

import "time"

// Outbound payload shapes. Mappers are pure: services fetch every referenced
// entity first and hand the lot in; nothing here touches a repository.

type PublicUserView struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	UserImageID *string `json:"user_image_id,omitempty"`
}

type BookRef struct {
	ID string `json:"id"`
}

type AnnouncementView struct {
	ID          string          `json:"id"`
	Book        BookRef         `json:"book"`
	OwnerUser   *PublicUserView `json:"owner_user,omitempty"`
	Images      []string        `json:"images"`
	Description string          `json:"description"`
	IsAvailable bool            `json:"is_available"`
	Rent        bool            `json:"rent"`
	Sale        bool            `json:"sale"`
	Trade       bool            `json:"trade"`
	DailyValue  *int64          `json:"daily_value,omitempty"`
	SaleValue   *int64          `json:"sale_value,omitempty"`
	Location    *AddressView    `json:"location,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

type ChatView struct {
	ID        string         `json:"id"`
	OwnerUser PublicUserView `json:"owner_user"`
	LeadUser  PublicUserView `json:"lead_user"`
	CreatedAt time.Time      `json:"created_at"`
}

type ChatMessageView struct {
	ID        string    `json:"id"`
	ChatID    string    `json:"chat_id"`
	SenderID  string    `json:"sender_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type RentView struct {
	ID           string           `json:"id"`
	Announcement AnnouncementView `json:"announcement"`
	OwnerUser    PublicUserView   `json:"owner_user"`
	Lead         PublicUserView   `json:"lead"`
	Chat         *ChatView        `json:"chat,omitempty"`
	Value        int64            `json:"value"`
	StartDate    time.Time        `json:"start_date"`
	EndDate      *time.Time       `json:"end_date,omitempty"`
	Accepted     bool             `json:"accepted"`
	Cancelled    bool             `json:"cancelled"`
	CreatedAt    time.Time        `json:"created_at"`
}

type SaleView struct {
	ID           string           `json:"id"`
	Announcement AnnouncementView `json:"announcement"`
	OwnerUser    PublicUserView   `json:"owner_user"`
	Buyer        PublicUserView   `json:"buyer"`
	Value        int64            `json:"value"`
	Accepted     bool             `json:"accepted"`
	Cancelled    bool             `json:"cancelled"`
	CreatedAt    time.Time        `json:"created_at"`
}

type TradeView struct {
	ID           string           `json:"id"`
	Announcement AnnouncementView `json:"announcement"`
	OwnerUser    PublicUserView   `json:"owner_user"`
	TradeUser    PublicUserView   `json:"trade_user"`
	OfferedBook  BookRef          `json:"offered_book"`
	Chat         *ChatView        `json:"chat,omitempty"`
	Accepted     bool             `json:"accepted"`
	Cancelled    bool             `json:"cancelled"`
	CreatedAt    time.Time        `json:"created_at"`
}

type AddressView struct {
	ID         string `json:"id"`
	Street     string `json:"street"`
	Number     string `json:"number"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
}
