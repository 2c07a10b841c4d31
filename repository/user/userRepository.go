package userrepo

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
	Create(ctx context.Context, u *model.User) error
	ByEmail(ctx context.Context, email string) (*model.User, error)
	ByID(ctx context.Context, id string) (*model.User, error)
	SetRecovery(ctx context.Context, userID, token string, expires time.Time) error
	ByRecoveryToken(ctx context.Context, token string) (*model.User, error)
	ResetPassword(ctx context.Context, userID, passwordHash string) error
	AddAddressID(ctx context.Context, userID, addressID string) error
	AddBookID(ctx context.Context, userID, bookID string) error
	SetUserImage(ctx context.Context, userID, imageID string) error
}

type repo struct{ db *database.DB }

func New(db *database.DB) Repo { return &repo{db} }

func (r *repo) Create(ctx context.Context, u *model.User) error {
	u.CreatedAt = time.Now().UTC()
	if u.BookIDs == nil {
		u.BookIDs = []string{}
	}
	if u.AddressIDs == nil {
		u.AddressIDs = []string{}
	}
	res, err := r.db.Users().InsertOne(ctx, u)
	if err != nil {
		return err
	}
	u.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *repo) ByEmail(ctx context.Context, email string) (*model.User, error) {
	u := &model.User{}
	err := r.db.Users().FindOne(ctx, bson.M{"email": email}).Decode(u)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *repo) ByID(ctx context.Context, id string) (*model.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}
	u := &model.User{}
	if err := r.db.Users().FindOne(ctx, bson.M{"_id": oid}).Decode(u); err != nil {
		return nil, err
	}
	return u, nil
}

func (r *repo) SetRecovery(ctx context.Context, userID, token string, expires time.Time) error {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return mongo.ErrNoDocuments
	}
	_, err = r.db.Users().UpdateOne(ctx, bson.M{"_id": oid}, bson.M{
		"$set": bson.M{"recoveryToken": token, "recoveryExpiration": expires},
	})
	return err
}

func (r *repo) ByRecoveryToken(ctx context.Context, token string) (*model.User, error) {
	u := &model.User{}
	err := r.db.Users().FindOne(ctx, bson.M{"recoveryToken": token}).Decode(u)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

// ResetPassword swaps the hash, clears any recovery token and bumps
// tokenVersion so outstanding JWTs die.
func (r *repo) ResetPassword(ctx context.Context, userID, passwordHash string) error {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return mongo.ErrNoDocuments
	}
	_, err = r.db.Users().UpdateOne(ctx, bson.M{"_id": oid}, bson.M{
		"$set":   bson.M{"passwordHash": passwordHash},
		"$unset": bson.M{"recoveryToken": "", "recoveryExpiration": ""},
		"$inc":   bson.M{"tokenVersion": 1},
	})
	return err
}

func (r *repo) AddAddressID(ctx context.Context, userID, addressID string) error {
	return r.push(ctx, userID, "addressIds", addressID)
}

func (r *repo) AddBookID(ctx context.Context, userID, bookID string) error {
	return r.push(ctx, userID, "bookIds", bookID)
}

func (r *repo) SetUserImage(ctx context.Context, userID, imageID string) error {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return mongo.ErrNoDocuments
	}
	_, err = r.db.Users().UpdateOne(ctx, bson.M{"_id": oid}, bson.M{
		"$set": bson.M{"userImageId": imageID},
	})
	return err
}

func (r *repo) push(ctx context.Context, userID, field, value string) error {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return mongo.ErrNoDocuments
	}
	_, err = r.db.Users().UpdateOne(ctx, bson.M{"_id": oid}, bson.M{
		"$push": bson.M{field: value},
	})
	return err
}
