package usersvc

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/mongo"

	"rentabook/mapper"
	"rentabook/model"
	"rentabook/util/apperr"
)

type Repo interface {
	ByID(ctx context.Context, id string) (*model.User, error)
	SetUserImage(ctx context.Context, userID, imageID string) error
}

type ImageRepo interface {
	ByID(ctx context.Context, id string) (*model.Image, error)
}

type Service interface {
	// Me returns the caller's own record, credentials stripped by the
	// model's json tags.
	Me(ctx context.Context, userID string) (*model.User, error)
	Public(ctx context.Context, id string) (*mapper.PublicUserView, error)
	SetUserImage(ctx context.Context, userID, imageID string) error
}

type service struct {
	ur Repo
	ir ImageRepo
}

func New(ur Repo, ir ImageRepo) Service { return &service{ur: ur, ir: ir} }

func (s *service) Me(ctx context.Context, userID string) (*model.User, error) {
	u, err := s.ur.ByID(ctx, userID)
	if err != nil {
		return nil, notFound(err, "user not found")
	}
	return u, nil
}

func (s *service) Public(ctx context.Context, id string) (*mapper.PublicUserView, error) {
	u, err := s.ur.ByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "user not found")
	}
	v := mapper.ToPublicUserView(u)
	return &v, nil
}

func (s *service) SetUserImage(ctx context.Context, userID, imageID string) error {
	if _, err := s.ir.ByID(ctx, imageID); err != nil {
		return notFound(err, "image not found")
	}
	return s.ur.SetUserImage(ctx, userID, imageID)
}

func notFound(err error, msg string) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return apperr.New(apperr.ErrNotFound, msg)
	}
	return err
}
