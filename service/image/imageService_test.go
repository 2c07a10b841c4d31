package imagesvc

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"rentabook/model"
	"rentabook/util/apperr"
)

type mockRepo struct {
	uploadFn   func(ctx context.Context, ownerUserID, contentType, filename string, data io.Reader) (*model.Image, error)
	byIDFn     func(ctx context.Context, id string) (*model.Image, error)
	downloadFn func(ctx context.Context, img *model.Image) ([]byte, error)
}

var _ Repo = (*mockRepo)(nil)

func (m *mockRepo) Upload(ctx context.Context, ownerUserID, contentType, filename string, data io.Reader) (*model.Image, error) {
	return m.uploadFn(ctx, ownerUserID, contentType, filename, data)
}

func (m *mockRepo) ByID(ctx context.Context, id string) (*model.Image, error) {
	return m.byIDFn(ctx, id)
}

func (m *mockRepo) Download(ctx context.Context, img *model.Image) ([]byte, error) {
	return m.downloadFn(ctx, img)
}

func TestUpload_AllowedTypes(t *testing.T) {
	ctx := context.Background()
	var gotType string
	m := &mockRepo{
		uploadFn: func(ctx context.Context, ownerUserID, contentType, filename string, data io.Reader) (*model.Image, error) {
			gotType = contentType
			return &model.Image{ID: primitive.NewObjectID(), ContentType: contentType}, nil
		},
	}
	svc := New(m)

	for _, ct := range []string{"image/jpeg", "image/png", "image/webp"} {
		img, err := svc.Upload(ctx, "u1", ct, "cover.img", bytes.NewReader([]byte("data")))
		require.NoError(t, err)
		require.Equal(t, ct, gotType)
		require.Equal(t, ct, img.ContentType)
	}
}

func TestUpload_RejectsOtherTypes(t *testing.T) {
	ctx := context.Background()
	svc := New(&mockRepo{})

	for _, ct := range []string{"image/gif", "application/pdf", "text/html", ""} {
		_, err := svc.Upload(ctx, "u1", ct, "f", bytes.NewReader(nil))
		require.Error(t, err)
		require.Equal(t, apperr.ErrImageType, apperr.Code(err))
	}
}

func TestGet_NotFound(t *testing.T) {
	ctx := context.Background()
	m := &mockRepo{
		byIDFn: func(ctx context.Context, id string) (*model.Image, error) {
			return nil, mongo.ErrNoDocuments
		},
	}
	svc := New(m)

	_, _, err := svc.Get(ctx, primitive.NewObjectID().Hex())
	require.Error(t, err)
	require.Equal(t, apperr.ErrNotFound, apperr.Code(err))
}

func TestGet_ReturnsMetadataAndBytes(t *testing.T) {
	ctx := context.Background()
	img := &model.Image{ID: primitive.NewObjectID(), ContentType: "image/png"}
	m := &mockRepo{
		byIDFn: func(ctx context.Context, id string) (*model.Image, error) {
			return img, nil
		},
		downloadFn: func(ctx context.Context, got *model.Image) ([]byte, error) {
			require.Equal(t, img, got)
			return []byte{0x89, 'P', 'N', 'G'}, nil
		},
	}
	svc := New(m)

	got, data, err := svc.Get(ctx, img.ID.Hex())
	require.NoError(t, err)
	require.Equal(t, img, got)
	require.Equal(t, []byte{0x89, 'P', 'N', 'G'}, data)
}
