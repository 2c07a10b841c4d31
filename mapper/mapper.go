package mapper

import "rentabook/model"

func ToPublicUserView(u *model.User) PublicUserView {
	return PublicUserView{
		ID:          u.ID.Hex(),
		Name:        u.Name,
		UserImageID: u.UserImageID,
	}
}

func ToAddressView(a *model.Address) AddressView {
	return AddressView{
		ID:         a.ID.Hex(),
		Street:     a.Street,
		Number:     a.Number,
		City:       a.City,
		State:      a.State,
		PostalCode: a.PostalCode,
	}
}

// ToAnnouncementView flattens an announcement; owner and location are
// optional because public listings omit them.
func ToAnnouncementView(an *model.Announcement, owner *model.User, location *model.Address) AnnouncementView {
	v := AnnouncementView{
		ID:          an.ID.Hex(),
		Book:        BookRef{ID: an.BookID},
		Images:      imageList(an.ImageIDs),
		Description: an.Description,
		IsAvailable: an.IsAvailable,
		Rent:        an.Rent,
		Sale:        an.Sale,
		Trade:       an.Trade,
		DailyValue:  an.DailyValue,
		SaleValue:   an.SaleValue,
		CreatedAt:   an.CreatedAt,
	}
	if owner != nil {
		ov := ToPublicUserView(owner)
		v.OwnerUser = &ov
	}
	if location != nil {
		lv := ToAddressView(location)
		v.Location = &lv
	}
	return v
}

func ToChatView(c *model.Chat, owner, lead *model.User) ChatView {
	return ChatView{
		ID:        c.ID.Hex(),
		OwnerUser: ToPublicUserView(owner),
		LeadUser:  ToPublicUserView(lead),
		CreatedAt: c.CreatedAt,
	}
}

func ToChatMessageView(m *model.ChatMessage) ChatMessageView {
	return ChatMessageView{
		ID:        m.ID.Hex(),
		ChatID:    m.ChatID,
		SenderID:  m.SenderID,
		Content:   m.Content,
		CreatedAt: m.CreatedAt,
	}
}

func ToRentView(r *model.Rent, ann AnnouncementView, owner, lead *model.User, chat *ChatView) RentView {
	return RentView{
		ID:           r.ID.Hex(),
		Announcement: ann,
		OwnerUser:    ToPublicUserView(owner),
		Lead:         ToPublicUserView(lead),
		Chat:         chat,
		Value:        r.Value,
		StartDate:    r.StartDate,
		EndDate:      r.EndDate,
		Accepted:     r.Accepted,
		Cancelled:    r.Cancelled,
		CreatedAt:    r.CreatedAt,
	}
}

func ToSaleView(s *model.Sale, ann AnnouncementView, owner, buyer *model.User) SaleView {
	return SaleView{
		ID:           s.ID.Hex(),
		Announcement: ann,
		OwnerUser:    ToPublicUserView(owner),
		Buyer:        ToPublicUserView(buyer),
		Value:        s.Value,
		Accepted:     s.Accepted,
		Cancelled:    s.Cancelled,
		CreatedAt:    s.CreatedAt,
	}
}

func ToTradeView(t *model.Trade, ann AnnouncementView, owner, tradeUser *model.User, chat *ChatView) TradeView {
	return TradeView{
		ID:           t.ID.Hex(),
		Announcement: ann,
		OwnerUser:    ToPublicUserView(owner),
		TradeUser:    ToPublicUserView(tradeUser),
		OfferedBook:  BookRef{ID: t.OfferedBookID},
		Chat:         chat,
		Accepted:     t.Accepted,
		Cancelled:    t.Cancelled,
		CreatedAt:    t.CreatedAt,
	}
}

func imageList(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	return ids
}
