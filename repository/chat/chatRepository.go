package chatrepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"rentabook/model"
	"rentabook/util/database"
)

type Repo interface {
	Insert(ctx context.Context, c *model.Chat) error
	ByID(ctx context.Context, id string) (*model.Chat, error)
	ByUser(ctx context.Context, userID string) ([]model.Chat, error)
	InsertMessage(ctx context.Context, m *model.ChatMessage) error
	Messages(ctx context.Context, chatID string) ([]model.ChatMessage, error)
}

type repo struct{ db *database.DB }

func New(db *database.DB) Repo { return &repo{db} }

func (r *repo) Insert(ctx context.Context, c *model.Chat) error {
	c.CreatedAt = time.Now().UTC()
	res, err := r.db.Chats().InsertOne(ctx, c)
	if err != nil {
		return err
	}
	c.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *repo) ByID(ctx context.Context, id string) (*model.Chat, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}
	c := &model.Chat{}
	if err := r.db.Chats().FindOne(ctx, bson.M{"_id": oid}).Decode(c); err != nil {
		return nil, err
	}
	return c, nil
}

func (r *repo) ByUser(ctx context.Context, userID string) ([]model.Chat, error) {
	cur, err := r.db.Chats().Find(ctx, bson.M{
		"$or": bson.A{bson.M{"ownerUserId": userID}, bson.M{"leadUserId": userID}},
	}, options.Find().SetSort(bson.M{"createdAt": -1}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var out []model.Chat
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *repo) InsertMessage(ctx context.Context, m *model.ChatMessage) error {
	m.CreatedAt = time.Now().UTC()
	res, err := r.db.ChatMessages().InsertOne(ctx, m)
	if err != nil {
		return err
	}
	m.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *repo) Messages(ctx context.Context, chatID string) ([]model.ChatMessage, error) {
	cur, err := r.db.ChatMessages().Find(ctx,
		bson.M{"chatId": chatID},
		options.Find().SetSort(bson.M{"createdAt": 1}),
	)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var out []model.ChatMessage
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
