package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type DB struct {
	Client *mongo.Client
	DB     *mongo.Database
}

func New(ctx context.Context, uri, name string) (*DB, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}
	return &DB{Client: client, DB: client.Database(name)}, nil
}

func (d *DB) Close(ctx context.Context) error {
	return d.Client.Disconnect(ctx)
}

// Collection names, one place so repositories don't drift.
const (
	ColUsers         = "users"
	ColAnnouncements = "announcements"
	ColRents         = "rents"
	ColSales         = "sales"
	ColTrades        = "trades"
	ColChats         = "chats"
	ColChatMessages  = "chat_messages"
	ColImages        = "images"
	ColAddresses     = "addresses"
)

func (d *DB) Users() *mongo.Collection         { return d.DB.Collection(ColUsers) }
func (d *DB) Announcements() *mongo.Collection { return d.DB.Collection(ColAnnouncements) }
func (d *DB) Rents() *mongo.Collection         { return d.DB.Collection(ColRents) }
func (d *DB) Sales() *mongo.Collection         { return d.DB.Collection(ColSales) }
func (d *DB) Trades() *mongo.Collection        { return d.DB.Collection(ColTrades) }
func (d *DB) Chats() *mongo.Collection         { return d.DB.Collection(ColChats) }
func (d *DB) ChatMessages() *mongo.Collection  { return d.DB.Collection(ColChatMessages) }
func (d *DB) Images() *mongo.Collection        { return d.DB.Collection(ColImages) }
func (d *DB) Addresses() *mongo.Collection     { return d.DB.Collection(ColAddresses) }
