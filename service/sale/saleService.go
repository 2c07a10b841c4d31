package salesvc

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
	AddressID      string
}

type AnnRepo interface {
	ByID(ctx context.Context, id string) (*model.Announcement, error)
	Consume(ctx context.Context, id string) error
	Release(ctx context.Context, id string) error
}

type SaleRepo interface {
	Insert(ctx context.Context, s *model.Sale) error
	ByID(ctx context.Context, id string) (*model.Sale, error)
	SetAccepted(ctx context.Context, id string) error
	SetCancelled(ctx context.Context, id string) error
	ByUser(ctx context.Context, userID string) ([]model.Sale, error)
}

type UserRepo interface {
	ByID(ctx context.Context, id string) (*model.User, error)
}

type AddressRepo interface {
	ByID(ctx context.Context, id string) (*model.Address, error)
}

type Service interface {
	Create(ctx context.Context, userID string, form CreateForm) (*mapper.SaleView, error)
	Accept(ctx context.Context, userID, saleID string) (*mapper.SaleView, error)
	Cancel(ctx context.Context, userID, saleID string) (*mapper.SaleView, error)
	My(ctx context.Context, userID string) ([]mapper.SaleView, error)
}

type service struct {
	ar AnnRepo
	sr SaleRepo
	ur UserRepo
	dr AddressRepo
}

func New(ar AnnRepo, sr SaleRepo, ur UserRepo, dr AddressRepo) Service {
	return &service{ar: ar, sr: sr, ur: ur, dr: dr}
}

func (s *service) Create(ctx context.Context, userID string, form CreateForm) (*mapper.SaleView, error) {
	ann, err := s.ar.ByID(ctx, form.AnnouncementID)
	if err != nil {
		return nil, notFound(err, "announcement not found")
	}
	if !ann.Sale {
		return nil, apperr.New(apperr.ErrBadInput, "announcement is not offered for sale")
	}
	if ann.OwnerUserID == userID {
		return nil, apperr.New(apperr.ErrOwnAnnouncement, "cannot buy your own announcement")
	}

	owner, err := s.ur.ByID(ctx, ann.OwnerUserID)
	if err != nil {
		return nil, notFound(err, "owner user not found")
	}
	buyer, err := s.ur.ByID(ctx, userID)
	if err != nil {
		return nil, notFound(err, "buyer user not found")
	}

	var addressID *string
	if form.AddressID != "" {
		addr, err := s.dr.ByID(ctx, form.AddressID)
		if err != nil {
			return nil, notFound(err, "address not found")
		}
		if addr.OwnerUserID != userID {
			return nil, apperr.New(apperr.ErrNotOwner, "address belongs to another user")
		}
		id := addr.ID.Hex()
		addressID = &id
	}

	if err := s.ar.Consume(ctx, ann.ID.Hex()); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperr.New(apperr.ErrNotAvailable, "announcement is no longer available")
		}
		return nil, err
	}

	var value int64
	if ann.SaleValue != nil {
		value = *ann.SaleValue
	}
	sale := &model.Sale{
		AnnouncementID: ann.ID.Hex(),
		OwnerUserID:    ann.OwnerUserID,
		BuyerUserID:    userID,
		Value:          value,
		AddressID:      addressID,
	}
	if err := s.sr.Insert(ctx, sale); err != nil {
		return nil, err
	}

	v, err := s.view(ctx, sale, ann, owner, buyer)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (s *service) Accept(ctx context.Context, userID, saleID string) (*mapper.SaleView, error) {
	sale, err := s.sr.ByID(ctx, saleID)
	if err != nil {
		return nil, notFound(err, "sale not found")
	}
	if sale.OwnerUserID != userID {
		return nil, apperr.New(apperr.ErrNotOwner, "only the announcement owner can accept")
	}
	if sale.Cancelled {
		return nil, apperr.New(apperr.ErrAlreadyCancelled, "sale was cancelled")
	}
	if err := s.sr.SetAccepted(ctx, saleID); err != nil {
		return nil, err
	}
	sale.Accepted = true
	return s.assemble(ctx, sale)
}

func (s *service) Cancel(ctx context.Context, userID, saleID string) (*mapper.SaleView, error) {
	sale, err := s.sr.ByID(ctx, saleID)
	if err != nil {
		return nil, notFound(err, "sale not found")
	}
	if sale.OwnerUserID != userID && sale.BuyerUserID != userID {
		return nil, apperr.New(apperr.ErrNotParticipant, "not a party to this sale")
	}
	if sale.Cancelled {
		return nil, apperr.New(apperr.ErrAlreadyCancelled, "sale already cancelled")
	}

	if err := s.sr.SetCancelled(ctx, saleID); err != nil {
		return nil, err
	}
	if err := s.ar.Release(ctx, sale.AnnouncementID); err != nil {
		return nil, err
	}
	sale.Cancelled = true
	return s.assemble(ctx, sale)
}

func (s *service) My(ctx context.Context, userID string) ([]mapper.SaleView, error) {
	rows, err := s.sr.ByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]mapper.SaleView, 0, len(rows))
	for i := range rows {
		v, err := s.assemble(ctx, &rows[i])
		if err != nil {
			return nil, err
		}
		out = append(out, *v)
	}
	return out, nil
}

func (s *service) assemble(ctx context.Context, sale *model.Sale) (*mapper.SaleView, error) {
	ann, err := s.ar.ByID(ctx, sale.AnnouncementID)
	if err != nil {
		return nil, notFound(err, "announcement not found")
	}
	owner, err := s.ur.ByID(ctx, sale.OwnerUserID)
	if err != nil {
		return nil, notFound(err, "owner user not found")
	}
	buyer, err := s.ur.ByID(ctx, sale.BuyerUserID)
	if err != nil {
		return nil, notFound(err, "buyer user not found")
	}
	v, err := s.view(ctx, sale, ann, owner, buyer)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (s *service) view(ctx context.Context, sale *model.Sale, ann *model.Announcement, owner, buyer *model.User) (mapper.SaleView, error) {
	var location *model.Address
	if ann.LocationID != nil {
		var err error
		location, err = s.dr.ByID(ctx, *ann.LocationID)
		if err != nil {
			return mapper.SaleView{}, notFound(err, "address not found")
		}
	}
	annView := mapper.ToAnnouncementView(ann, owner, location)
	return mapper.ToSaleView(sale, annView, owner, buyer), nil
}

func notFound(err error, msg string) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return apperr.New(apperr.ErrNotFound, msg)
	}
	return err
}
