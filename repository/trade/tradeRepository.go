package traderepo

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
	Insert(ctx context.Context, t *model.Trade) error
	ByID(ctx context.Context, id string) (*model.Trade, error)
	SetAccepted(ctx context.Context, id string) error
	SetCancelled(ctx context.Context, id string) error
	ByUser(ctx context.Context, userID string) ([]model.Trade, error)
}

type repo struct{ db *database.DB }

func New(db *database.DB) Repo { return &repo{db} }

func (r *repo) Insert(ctx context.Context, t *model.Trade) error {
	t.CreatedAt = time.Now().UTC()
	res, err := r.db.Trades().InsertOne(ctx, t)
	if err != nil {
		return err
	}
	t.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *repo) ByID(ctx context.Context, id string) (*model.Trade, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}
	t := &model.Trade{}
	if err := r.db.Trades().FindOne(ctx, bson.M{"_id": oid}).Decode(t); err != nil {
		return nil, err
	}
	return t, nil
}

func (r *repo) SetAccepted(ctx context.Context, id string) error {
	return r.setFlag(ctx, id, "accepted")
}

func (r *repo) SetCancelled(ctx context.Context, id string) error {
	return r.setFlag(ctx, id, "cancelled")
}

func (r *repo) ByUser(ctx context.Context, userID string) ([]model.Trade, error) {
	cur, err := r.db.Trades().Find(ctx, bson.M{
		"$or": bson.A{bson.M{"ownerUserId": userID}, bson.M{"tradeUserId": userID}},
	})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var out []model.Trade
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
	res, err := r.db.Trades().UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{field: true}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
