package imagerepo

import (
	"bytes"
	"context"
	"io"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/gridfs"

	"rentabook/model"
	"rentabook/util/database"
)

type Repo interface {
	// Upload streams the bytes into GridFS and records metadata.
	Upload(ctx context.Context, ownerUserID, contentType, filename string, data io.Reader) (*model.Image, error)
	ByID(ctx context.Context, id string) (*model.Image, error)
	// Download returns the raw image bytes for an image document.
	Download(ctx context.Context, img *model.Image) ([]byte, error)
}

type repo struct {
	db     *database.DB
	bucket *gridfs.Bucket
}

func New(db *database.DB) (Repo, error) {
	bucket, err := gridfs.NewBucket(db.DB)
	if err != nil {
		return nil, err
	}
	return &repo{db: db, bucket: bucket}, nil
}

func (r *repo) Upload(ctx context.Context, ownerUserID, contentType, filename string, data io.Reader) (*model.Image, error) {
	fileID, err := r.bucket.UploadFromStream(filename, data)
	if err != nil {
		return nil, err
	}

	img := &model.Image{
		OwnerUserID: ownerUserID,
		FileID:      fileID,
		ContentType: contentType,
		CreatedAt:   time.Now().UTC(),
	}
	res, err := r.db.Images().InsertOne(ctx, img)
	if err != nil {
		return nil, err
	}
	img.ID = res.InsertedID.(primitive.ObjectID)
	return img, nil
}

func (r *repo) ByID(ctx context.Context, id string) (*model.Image, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}
	img := &model.Image{}
	if err := r.db.Images().FindOne(ctx, bson.M{"_id": oid}).Decode(img); err != nil {
		return nil, err
	}
	return img, nil
}

func (r *repo) Download(ctx context.Context, img *model.Image) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := r.bucket.DownloadToStream(img.FileID, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
