package announcementrepo

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

// Filter narrows announcement search; zero values mean "any".
type Filter struct {
	BookID    string
	Rent      bool
	Sale      bool
	Trade     bool
	Page      int64
	PageSize  int64
	Available bool
}

type Repo interface {
	Insert(ctx context.Context, a *model.Announcement) error
	ByID(ctx context.Context, id string) (*model.Announcement, error)
	ByOwner(ctx context.Context, ownerUserID string) ([]model.Announcement, error)
	Find(ctx context.Context, f Filter) ([]model.Announcement, error)

	// Consume atomically flips isAvailable true→false. Returns
	// mongo.ErrNoDocuments when the listing is already taken, which is what
	// keeps two concurrent transactions from both winning one announcement.
	Consume(ctx context.Context, id string) error

	// Release restores availability after a cancel.
	Release(ctx context.Context, id string) error
}

type repo struct{ db *database.DB }

func New(db *database.DB) Repo { return &repo{db} }

func (r *repo) Insert(ctx context.Context, a *model.Announcement) error {
	a.CreatedAt = time.Now().UTC()
	a.IsAvailable = true
	if a.ImageIDs == nil {
		a.ImageIDs = []string{}
	}
	res, err := r.db.Announcements().InsertOne(ctx, a)
	if err != nil {
		return err
	}
	a.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *repo) ByID(ctx context.Context, id string) (*model.Announcement, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}
	a := &model.Announcement{}
	if err := r.db.Announcements().FindOne(ctx, bson.M{"_id": oid}).Decode(a); err != nil {
		return nil, err
	}
	return a, nil
}

func (r *repo) ByOwner(ctx context.Context, ownerUserID string) ([]model.Announcement, error) {
	return r.list(ctx, bson.M{"ownerUserId": ownerUserID}, 0, 0)
}

func (r *repo) Find(ctx context.Context, f Filter) ([]model.Announcement, error) {
	q := bson.M{}
	if f.Available {
		q["isAvailable"] = true
	}
	if f.BookID != "" {
		q["bookId"] = f.BookID
	}
	if f.Rent {
		q["rent"] = true
	}
	if f.Sale {
		q["sale"] = true
	}
	if f.Trade {
		q["trade"] = true
	}

	skip := int64(0)
	limit := f.PageSize
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if f.Page > 0 {
		skip = f.Page * limit
	}
	return r.list(ctx, q, skip, limit)
}

func (r *repo) Consume(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return mongo.ErrNoDocuments
	}
	res := r.db.Announcements().FindOneAndUpdate(ctx,
		bson.M{"_id": oid, "isAvailable": true},
		bson.M{"$set": bson.M{"isAvailable": false}},
	)
	return res.Err()
}

func (r *repo) Release(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return mongo.ErrNoDocuments
	}
	_, err = r.db.Announcements().UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"isAvailable": true}},
	)
	return err
}

func (r *repo) list(ctx context.Context, q bson.M, skip, limit int64) ([]model.Announcement, error) {
	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	if skip > 0 {
		opts.SetSkip(skip)
	}
	if limit > 0 {
		opts.SetLimit(limit)
	}
	cur, err := r.db.Announcements().Find(ctx, q, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []model.Announcement
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
