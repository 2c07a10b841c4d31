package announcement

type CreateAnnouncementReq struct {
	BookID           string   `json:"bookId" validate:"required"`
	Description      string   `json:"description"`
	Images           []string `json:"images"`
	LocationID       string   `json:"locationId"`
	AnnouncementType []string `json:"announcementType" validate:"omitempty,dive,oneof=RENT SALE TRADE"`
	DailyValue       *int64   `json:"dailyValue" validate:"omitempty,gte=0"`
	SaleValue        *int64   `json:"saleValue" validate:"omitempty,gte=0"`
}
