package rentrepo

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
	Insert(ctx context.Context, rent *model.Rent) error
	ByID(ctx context.Context, id string) (*model.Rent, error)
	SetAccepted(ctx context.Context, id string) error
	SetCancelled(ctx context.Context, id string) error
	ByUser(ctx context.Context, userID string) ([]model.Rent, error)
}

type repo struct{ db *database.DB }

func New(db *database.DB) Repo { return &repo{db} }

func (r *repo) Insert(ctx context.Context, rent *model.Rent) error {
	rent.CreatedAt = time.Now().UTC()
	res, err := r.db.Rents().InsertOne(ctx, rent)
	if err != nil {
		return err
	}
	rent.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *repo) ByID(ctx context.Context, id string) (*model.Rent, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}
	rent := &model.Rent{}
	if err := r.db.Rents().FindOne(ctx, bson.M{"_id": oid}).Decode(rent); err != nil {
		return nil, err
	}
	return rent, nil
}

func (r *repo) SetAccepted(ctx context.Context, id string) error {
	return r.setFlag(ctx, id, "accepted")
}

func (r *repo) SetCancelled(ctx context.Context, id string) error {
	return r.setFlag(ctx, id, "cancelled")
}

func (r *repo) ByUser(ctx context.Context, userID string) ([]model.Rent, error) {
	cur, err := r.db.Rents().Find(ctx, bson.M{
		"$or": bson.A{bson.M{"ownerUserId": userID}, bson.M{"leadUserId": userID}},
	})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var out []model.Rent
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
	res, err := r.db.Rents().UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{field: true}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
