package tradesvc

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/mongo"

	"rentabook/mapper"
	"rentabook/model"
	"rentabook/util/apperr"
)

type CreateForm struct {
	AnnouncementID string
	OfferedBookID  string
}

type AnnRepo interface {
	ByID(ctx context.Context, id string) (*model.Announcement, error)
	Consume(ctx context.Context, id string) error
	Release(ctx context.Context, id string) error
}

type TradeRepo interface {
	Insert(ctx context.Context, t *model.Trade) error
	ByID(ctx context.Context, id string) (*model.Trade, error)
	SetAccepted(ctx context.Context, id string) error
	SetCancelled(ctx context.Context, id string) error
	ByUser(ctx context.Context, userID string) ([]model.Trade, error)
}

type UserRepo interface {
	ByID(ctx context.Context, id string) (*model.User, error)
}

type AddressRepo interface {
	ByID(ctx context.Context, id string) (*model.Address, error)
}

type ChatRepo interface {
	Insert(ctx context.Context, c *model.Chat) error
	ByID(ctx context.Context, id string) (*model.Chat, error)
}

type Service interface {
	Create(ctx context.Context, userID string, form CreateForm) (*mapper.TradeView, error)
	Accept(ctx context.Context, userID, tradeID string) (*mapper.TradeView, error)
	Cancel(ctx context.Context, userID, tradeID string) (*mapper.TradeView, error)
	My(ctx context.Context, userID string) ([]mapper.TradeView, error)
}

type service struct {
	ar AnnRepo
	tr TradeRepo
	ur UserRepo
	dr AddressRepo
	cr ChatRepo
}

func New(ar AnnRepo, tr TradeRepo, ur UserRepo, dr AddressRepo, cr ChatRepo) Service {
	return &service{ar: ar, tr: tr, ur: ur, dr: dr, cr: cr}
}

func (s *service) Create(ctx context.Context, userID string, form CreateForm) (*mapper.TradeView, error) {
	ann, err := s.ar.ByID(ctx, form.AnnouncementID)
	if err != nil {
		return nil, notFound(err, "announcement not found")
	}
	if !ann.Trade {
		return nil, apperr.New(apperr.ErrBadInput, "announcement is not offered for trade")
	}
	if ann.OwnerUserID == userID {
		return nil, apperr.New(apperr.ErrOwnAnnouncement, "cannot trade with your own announcement")
	}

	owner, err := s.ur.ByID(ctx, ann.OwnerUserID)
	if err != nil {
		return nil, notFound(err, "owner user not found")
	}
	tradeUser, err := s.ur.ByID(ctx, userID)
	if err != nil {
		return nil, notFound(err, "trade user not found")
	}

	if err := s.ar.Consume(ctx, ann.ID.Hex()); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperr.New(apperr.ErrNotAvailable, "announcement is no longer available")
		}
		return nil, err
	}

	chat := &model.Chat{
		OwnerUserID:    ann.OwnerUserID,
		LeadUserID:     userID,
		AnnouncementID: ann.ID.Hex(),
	}
	if err := s.cr.Insert(ctx, chat); err != nil {
		return nil, err
	}

	trade := &model.Trade{
		AnnouncementID: ann.ID.Hex(),
		OwnerUserID:    ann.OwnerUserID,
		TradeUserID:    userID,
		OfferedBookID:  form.OfferedBookID,
		ChatID:         chat.ID.Hex(),
	}
	if err := s.tr.Insert(ctx, trade); err != nil {
		return nil, err
	}

	v, err := s.view(ctx, trade, ann, owner, tradeUser, chat)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (s *service) Accept(ctx context.Context, userID, tradeID string) (*mapper.TradeView, error) {
	trade, err := s.tr.ByID(ctx, tradeID)
	if err != nil {
		return nil, notFound(err, "trade not found")
	}
	if trade.OwnerUserID != userID {
		return nil, apperr.New(apperr.ErrNotOwner, "only the announcement owner can accept")
	}
	if trade.Cancelled {
		return nil, apperr.New(apperr.ErrAlreadyCancelled, "trade was cancelled")
	}
	if err := s.tr.SetAccepted(ctx, tradeID); err != nil {
		return nil, err
	}
	trade.Accepted = true
	return s.assemble(ctx, trade)
}

func (s *service) Cancel(ctx context.Context, userID, tradeID string) (*mapper.TradeView, error) {
	trade, err := s.tr.ByID(ctx, tradeID)
	if err != nil {
		return nil, notFound(err, "trade not found")
	}
	if trade.OwnerUserID != userID && trade.TradeUserID != userID {
		return nil, apperr.New(apperr.ErrNotParticipant, "not a party to this trade")
	}
	if trade.Cancelled {
		return nil, apperr.New(apperr.ErrAlreadyCancelled, "trade already cancelled")
	}

	if err := s.tr.SetCancelled(ctx, tradeID); err != nil {
		return nil, err
	}
	if err := s.ar.Release(ctx, trade.AnnouncementID); err != nil {
		return nil, err
	}
	trade.Cancelled = true
	return s.assemble(ctx, trade)
}

func (s *service) My(ctx context.Context, userID string) ([]mapper.TradeView, error) {
	rows, err := s.tr.ByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]mapper.TradeView, 0, len(rows))
	for i := range rows {
		v, err := s.assemble(ctx, &rows[i])
		if err != nil {
			return nil, err
		}
		out = append(out, *v)
	}
	return out, nil
}

func (s *service) assemble(ctx context.Context, trade *model.Trade) (*mapper.TradeView, error) {
	ann, err := s.ar.ByID(ctx, trade.AnnouncementID)
	if err != nil {
		return nil, notFound(err, "announcement not found")
	}
	owner, err := s.ur.ByID(ctx, trade.OwnerUserID)
	if err != nil {
		return nil, notFound(err, "owner user not found")
	}
	tradeUser, err := s.ur.ByID(ctx, trade.TradeUserID)
	if err != nil {
		return nil, notFound(err, "trade user not found")
	}
	chat, err := s.cr.ByID(ctx, trade.ChatID)
	if err != nil {
		return nil, notFound(err, "chat not found")
	}
	v, err := s.view(ctx, trade, ann, owner, tradeUser, chat)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (s *service) view(ctx context.Context, trade *model.Trade, ann *model.Announcement, owner, tradeUser *model.User, chat *model.Chat) (mapper.TradeView, error) {
	var location *model.Address
	if ann.LocationID != nil {
		var err error
		location, err = s.dr.ByID(ctx, *ann.LocationID)
		if err != nil {
			return mapper.TradeView{}, notFound(err, "address not found")
		}
	}
	annView := mapper.ToAnnouncementView(ann, owner, location)
	chatView := mapper.ToChatView(chat, owner, tradeUser)
	return mapper.ToTradeView(trade, annView, owner, tradeUser, &chatView), nil
}

func notFound(err error, msg string) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return apperr.New(apperr.ErrNotFound, msg)
	}
	return err
}
