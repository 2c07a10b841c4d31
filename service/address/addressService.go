package addresssvc

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/mongo"

	"rentabook/mapper"
	"rentabook/model"
	"rentabook/util/apperr"
)

type CreateForm struct {
	Street     string
	Number     string
	City       string
	State      string
	PostalCode string
}

type Repo interface {
	Insert(ctx context.Context, a *model.Address) error
	ByID(ctx context.Context, id string) (*model.Address, error)
}

type UserRepo interface {
	AddAddressID(ctx context.Context, userID, addressID string) error
}

type Service interface {
	Create(ctx context.Context, userID string, form CreateForm) (*mapper.AddressView, error)
	Public(ctx context.Context, id string) (*mapper.AddressView, error)
}

type service struct {
	r  Repo
	ur UserRepo
}

func New(r Repo, ur UserRepo) Service { return &service{r: r, ur: ur} }

func (s *service) Create(ctx context.Context, userID string, form CreateForm) (*mapper.AddressView, error) {
	a := &model.Address{
		OwnerUserID: userID,
		Street:      form.Street,
		Number:      form.Number,
		City:        form.City,
		State:       form.State,
		PostalCode:  form.PostalCode,
	}
	if err := s.r.Insert(ctx, a); err != nil {
		return nil, err
	}
	if err := s.ur.AddAddressID(ctx, userID, a.ID.Hex()); err != nil {
		return nil, err
	}
	v := mapper.ToAddressView(a)
	return &v, nil
}

func (s *service) Public(ctx context.Context, id string) (*mapper.AddressView, error) {
	a, err := s.r.ByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperr.New(apperr.ErrNotFound, "address not found")
		}
		return nil, err
	}
	v := mapper.ToAddressView(a)
	return &v, nil
}
