package rentsvc

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"rentabook/mapper"
	"rentabook/model"
	"rentabook/util/apperr"
)

type CreateForm struct {
	AnnouncementID string
	StartDate      time.Time
	EndDate        *time.Time
}

type AnnRepo interface {
	ByID(ctx context.Context, id string) (*model.Announcement, error)
	Consume(ctx context.Context, id string) error
	Release(ctx context.Context, id string) error
}

type RentRepo interface {
	Insert(ctx context.Context, r *model.Rent) error
	ByID(ctx context.Context, id string) (*model.Rent, error)
	SetAccepted(ctx context.Context, id string) error
	SetCancelled(ctx context.Context, id string) error
	ByUser(ctx context.Context, userID string) ([]model.Rent, error)
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
	// Create consumes the announcement's availability, opens a chat between
	// owner and renter and persists the rent.
	Create(ctx context.Context, userID string, form CreateForm) (*mapper.RentView, error)

	// Accept is owner-only; accepting a cancelled rent is a conflict.
	Accept(ctx context.Context, userID, rentID string) (*mapper.RentView, error)

	// Cancel is allowed for either party, exactly once; it restores the
	// announcement's availability.
	Cancel(ctx context.Context, userID, rentID string) (*mapper.RentView, error)

	My(ctx context.Context, userID string) ([]mapper.RentView, error)
}

type service struct {
	ar AnnRepo
	rr RentRepo
	ur UserRepo
	dr AddressRepo
	cr ChatRepo
}

func New(ar AnnRepo, rr RentRepo, ur UserRepo, dr AddressRepo, cr ChatRepo) Service {
	return &service{ar: ar, rr: rr, ur: ur, dr: dr, cr: cr}
}

func (s *service) Create(ctx context.Context, userID string, form CreateForm) (*mapper.RentView, error) {
	ann, err := s.ar.ByID(ctx, form.AnnouncementID)
	if err != nil {
		return nil, notFound(err, "announcement not found")
	}
	if !ann.Rent {
		return nil, apperr.New(apperr.ErrBadInput, "announcement is not offered for rent")
	}
	if ann.OwnerUserID == userID {
		return nil, apperr.New(apperr.ErrOwnAnnouncement, "cannot rent your own announcement")
	}

	owner, err := s.ur.ByID(ctx, ann.OwnerUserID)
	if err != nil {
		return nil, notFound(err, "owner user not found")
	}
	lead, err := s.ur.ByID(ctx, userID)
	if err != nil {
		return nil, notFound(err, "lead user not found")
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

	var value int64
	if ann.DailyValue != nil {
		value = *ann.DailyValue
	}
	rent := &model.Rent{
		AnnouncementID: ann.ID.Hex(),
		OwnerUserID:    ann.OwnerUserID,
		LeadUserID:     userID,
		ChatID:         chat.ID.Hex(),
		Value:          value,
		StartDate:      form.StartDate,
		EndDate:        form.EndDate,
	}
	if err := s.rr.Insert(ctx, rent); err != nil {
		return nil, err
	}

	v, err := s.view(ctx, rent, ann, owner, lead, chat)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (s *service) Accept(ctx context.Context, userID, rentID string) (*mapper.RentView, error) {
	rent, err := s.rr.ByID(ctx, rentID)
	if err != nil {
		return nil, notFound(err, "rent not found")
	}
	if rent.OwnerUserID != userID {
		return nil, apperr.New(apperr.ErrNotOwner, "only the announcement owner can accept")
	}
	if rent.Cancelled {
		return nil, apperr.New(apperr.ErrAlreadyCancelled, "rent was cancelled")
	}
	if err := s.rr.SetAccepted(ctx, rentID); err != nil {
		return nil, err
	}
	rent.Accepted = true
	return s.assemble(ctx, rent)
}

func (s *service) Cancel(ctx context.Context, userID, rentID string) (*mapper.RentView, error) {
	rent, err := s.rr.ByID(ctx, rentID)
	if err != nil {
		return nil, notFound(err, "rent not found")
	}
	if rent.OwnerUserID != userID && rent.LeadUserID != userID {
		return nil, apperr.New(apperr.ErrNotParticipant, "not a party to this rent")
	}
	if rent.Cancelled {
		return nil, apperr.New(apperr.ErrAlreadyCancelled, "rent already cancelled")
	}

	if err := s.rr.SetCancelled(ctx, rentID); err != nil {
		return nil, err
	}
	if err := s.ar.Release(ctx, rent.AnnouncementID); err != nil {
		return nil, err
	}
	rent.Cancelled = true
	return s.assemble(ctx, rent)
}

func (s *service) My(ctx context.Context, userID string) ([]mapper.RentView, error) {
	rows, err := s.rr.ByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]mapper.RentView, 0, len(rows))
	for i := range rows {
		v, err := s.assemble(ctx, &rows[i])
		if err != nil {
			return nil, err
		}
		out = append(out, *v)
	}
	return out, nil
}

func (s *service) assemble(ctx context.Context, rent *model.Rent) (*mapper.RentView, error) {
	ann, err := s.ar.ByID(ctx, rent.AnnouncementID)
	if err != nil {
		return nil, notFound(err, "announcement not found")
	}
	owner, err := s.ur.ByID(ctx, rent.OwnerUserID)
	if err != nil {
		return nil, notFound(err, "owner user not found")
	}
	lead, err := s.ur.ByID(ctx, rent.LeadUserID)
	if err != nil {
		return nil, notFound(err, "lead user not found")
	}
	chat, err := s.cr.ByID(ctx, rent.ChatID)
	if err != nil {
		return nil, notFound(err, "chat not found")
	}
	v, err := s.view(ctx, rent, ann, owner, lead, chat)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (s *service) view(ctx context.Context, rent *model.Rent, ann *model.Announcement, owner, lead *model.User, chat *model.Chat) (mapper.RentView, error) {
	var location *model.Address
	if ann.LocationID != nil {
		var err error
		location, err = s.dr.ByID(ctx, *ann.LocationID)
		if err != nil {
			return mapper.RentView{}, notFound(err, "address not found")
		}
	}
	annView := mapper.ToAnnouncementView(ann, owner, location)
	chatView := mapper.ToChatView(chat, owner, lead)
	return mapper.ToRentView(rent, annView, owner, lead, &chatView), nil
}

func notFound(err error, msg string) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return apperr.New(apperr.ErrNotFound, msg)
	}
	return err
}
