package imagesvc

import (
	"context"
	"errors"
	"io"

	"go.mongodb.org/mongo-driver/mongo"

	"rentabook/model"
	"rentabook/util/apperr"
)

var allowedTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

type Repo interface {
	Upload(ctx context.Context, ownerUserID, contentType, filename string, data io.Reader) (*model.Image, error)
	ByID(ctx context.Context, id string) (*model.Image, error)
	Download(ctx context.Context, img *model.Image) ([]byte, error)
}

type Service interface {
	Upload(ctx context.Context, userID, contentType, filename string, data io.Reader) (*model.Image, error)
	// Get returns the image metadata and its bytes.
	Get(ctx context.Context, id string) (*model.Image, []byte, error)
}

type service struct{ r Repo }

func New(r Repo) Service { return &service{r: r} }

func (s *service) Upload(ctx context.Context, userID, contentType, filename string, data io.Reader) (*model.Image, error) {
	if !allowedTypes[contentType] {
		return nil, apperr.New(apperr.ErrImageType, "unsupported image type: "+contentType)
	}
	return s.r.Upload(ctx, userID, contentType, filename, data)
}

func (s *service) Get(ctx context.Context, id string) (*model.Image, []byte, error) {
	img, err := s.r.ByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil, apperr.New(apperr.ErrNotFound, "image not found")
		}
		return nil, nil, err
	}
	data, err := s.r.Download(ctx, img)
	if err != nil {
		return nil, nil, err
	}
	return img, data, nil
}
