package salerepo

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
	Insert(ctx context.Context, s *model.Sale) error
	ByID(ctx context.Context, id string) (*model.Sale, error)
	SetAccepted(ctx context.Context, id string) error
	SetCancelled(ctx context.Context, id string) error
	ByUser(ctx context.Context, userID string) ([]model.Sale, error)
}

type repo struct{ db *database.DB }

func New(db *database.DB) Repo { return &repo{db} }

func (r *repo) Insert(ctx context.Context, s *model.Sale) error {
	s.CreatedAt = time.Now().UTC()
	res, err := r.db.Sales().InsertOne(ctx, s)
	if err != nil {
		return err
	}
	s.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *repo) ByID(ctx context.Context, id string) (*model.Sale, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}
	s := &model.Sale{}
	if err := r.db.Sales().FindOne(ctx, bson.M{"_id": oid}).Decode(s); err != nil {
		return nil, err
	}
	return s, nil
}

func (r *repo) SetAccepted(ctx context.Context, id string) error {
	return r.setFlag(ctx, id, "accepted")
}

func (r *repo) SetCancelled(ctx context.Context, id string) error {
	return r.setFlag(ctx, id, "cancelled")
}

func (r *repo) ByUser(ctx context.Context, userID string) ([]model.Sale, error) {
	cur, err := r.db.Sales().Find(ctx, bson.M{
		"$or": bson.A{bson.M{"ownerUserId": userID}, bson.M{"buyerUserId": userID}},
	})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var out []model.Sale
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *repo) setFlag(ctx context.Context, id, field string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return mongo.ErrNoDocuments
	}
	res, err := r.db.Sales().UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{field: true}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
