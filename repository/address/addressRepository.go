package addressrepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"rentabook/model"
	"rentabook/util/database"
)

type Repo interface {
	Insert(ctx context.Context, a *model.Address) error
	ByID(ctx context.Context, id string) (*model.Address, error)
}

type repo struct{ db *database.DB }

func New(db *database.DB) Repo { return &repo{db} }

func (r *repo) Insert(ctx context.Context, a *model.Address) error {
	a.CreatedAt = time.Now().UTC()
	res, err := r.db.Addresses().InsertOne(ctx, a)
	if err != nil {
		return err
	}
	a.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *repo) ByID(ctx context.Context, id string) (*model.Address, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}
	a := &model.Address{}
	if err := r.db.Addresses().FindOne(ctx, bson.M{"_id": oid}).Decode(a); err != nil {
		return nil, err
	}
	return a, nil
}
