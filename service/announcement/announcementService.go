package announcementsvc

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/mongo"

	"rentabook/mapper"
	"rentabook/model"
	announcementrepo "rentabook/repository/announcement"
	"rentabook/util/apperr"
)

// Forms are assembled into entities here, not in mappers: every referenced
// entity is fetched first, then the pure mapper shapes the response.

type CreateForm struct {
	BookID           string
	Description      string
	ImageIDs         []string
	LocationID       string
	AnnouncementType []string
	DailyValue       *int64
	SaleValue        *int64
}

type Filter = announcementrepo.Filter

type AnnRepo interface {
	Insert(ctx context.Context, a *model.Announcement) error
	ByID(ctx context.Context, id string) (*model.Announcement, error)
	ByOwner(ctx context.Context, ownerUserID string) ([]model.Announcement, error)
	Find(ctx context.Context, f Filter) ([]model.Announcement, error)
}

type UserRepo interface {
	ByID(ctx context.Context, id string) (*model.User, error)
	AddBookID(ctx context.Context, userID, bookID string) error
}

type AddressRepo interface {
	ByID(ctx context.Context, id string) (*model.Address, error)
}

type ImageRepo interface {
	ByID(ctx context.Context, id string) (*model.Image, error)
}

type Service interface {
	Create(ctx context.Context, userID string, form CreateForm) (*mapper.AnnouncementView, error)
	ByID(ctx context.Context, id string) (*mapper.AnnouncementView, error)
	Find(ctx context.Context, f Filter) ([]mapper.AnnouncementView, error)
	My(ctx context.Context, userID string) ([]mapper.AnnouncementView, error)
}

type service struct {
	ar AnnRepo
	ur UserRepo
	dr AddressRepo
	ir ImageRepo
}

func New(ar AnnRepo, ur UserRepo, dr AddressRepo, ir ImageRepo) Service {
	return &service{ar: ar, ur: ur, dr: dr, ir: ir}
}

func (s *service) Create(ctx context.Context, userID string, form CreateForm) (*mapper.AnnouncementView, error) {
	owner, err := s.ur.ByID(ctx, userID)
	if err != nil {
		return nil, notFound(err, "owner user not found")
	}

	rent, sale, trade := typeFlags(form.AnnouncementType)
	if !rent && !sale && !trade {
		// No explicit types: infer them from the values supplied, so a
		// payload carrying just dailyValue reads as a rent offer.
		rent = form.DailyValue != nil
		sale = form.SaleValue != nil
	}
	if !rent && !sale && !trade {
		return nil, apperr.New(apperr.ErrBadInput, "announcement offers no transaction type")
	}
	if rent && form.DailyValue == nil {
		return nil, apperr.New(apperr.ErrBadInput, "rent announcement needs daily_value")
	}
	if sale && form.SaleValue == nil {
		return nil, apperr.New(apperr.ErrBadInput, "sale announcement needs sale_value")
	}

	for _, imgID := range form.ImageIDs {
		if _, err := s.ir.ByID(ctx, imgID); err != nil {
			return nil, notFound(err, "image not found: "+imgID)
		}
	}

	var location *model.Address
	var locationID *string
	if form.LocationID != "" {
		location, err = s.dr.ByID(ctx, form.LocationID)
		if err != nil {
			return nil, notFound(err, "address not found")
		}
		if location.OwnerUserID != userID {
			return nil, apperr.New(apperr.ErrNotOwner, "address belongs to another user")
		}
		id := location.ID.Hex()
		locationID = &id
	}

	a := &model.Announcement{
		BookID:      form.BookID,
		OwnerUserID: userID,
		ImageIDs:    form.ImageIDs,
		Description: form.Description,
		Rent:        rent,
		Sale:        sale,
		Trade:       trade,
		DailyValue:  form.DailyValue,
		SaleValue:   form.SaleValue,
		LocationID:  locationID,
	}
	if err := s.ar.Insert(ctx, a); err != nil {
		return nil, err
	}
	if err := s.ur.AddBookID(ctx, userID, form.BookID); err != nil {
		return nil, err
	}

	v := mapper.ToAnnouncementView(a, owner, location)
	return &v, nil
}

func (s *service) ByID(ctx context.Context, id string) (*mapper.AnnouncementView, error) {
	a, err := s.ar.ByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "announcement not found")
	}
	v, err := s.assemble(ctx, a)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (s *service) Find(ctx context.Context, f Filter) ([]mapper.AnnouncementView, error) {
	rows, err := s.ar.Find(ctx, f)
	if err != nil {
		return nil, err
	}
	return s.assembleAll(ctx, rows)
}

func (s *service) My(ctx context.Context, userID string) ([]mapper.AnnouncementView, error) {
	rows, err := s.ar.ByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.assembleAll(ctx, rows)
}

func (s *service) assemble(ctx context.Context, a *model.Announcement) (mapper.AnnouncementView, error) {
	owner, err := s.ur.ByID(ctx, a.OwnerUserID)
	if err != nil {
		return mapper.AnnouncementView{}, notFound(err, "owner user not found")
	}
	var location *model.Address
	if a.LocationID != nil {
		location, err = s.dr.ByID(ctx, *a.LocationID)
		if err != nil {
			return mapper.AnnouncementView{}, notFound(err, "address not found")
		}
	}
	return mapper.ToAnnouncementView(a, owner, location), nil
}

func (s *service) assembleAll(ctx context.Context, rows []model.Announcement) ([]mapper.AnnouncementView, error) {
	out := make([]mapper.AnnouncementView, 0, len(rows))
	for i := range rows {
		v, err := s.assemble(ctx, &rows[i])
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func typeFlags(types []string) (rent, sale, trade bool) {
	for _, t := range types {
		switch t {
		case model.AnnouncementRent:
			rent = true
		case model.AnnouncementSale:
			sale = true
		case model.AnnouncementTrade:
			trade = true
		}
	}
	return
}

// notFound maps a missing-document error to the coded kind; anything else
// passes through untouched.
func notFound(err error, msg string) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return apperr.New(apperr.ErrNotFound, msg)
	}
	return err
}
