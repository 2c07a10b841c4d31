package mapper

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"rentabook/model"
)

func TestToAnnouncementView_EmptyImagesMarshalAsList(t *testing.T) {
	an := &model.Announcement{
		ID:          primitive.NewObjectID(),
		BookID:      "f1u-swEACAAJ",
		IsAvailable: true,
	}
	v := ToAnnouncementView(an, nil, nil)

	require.NotNil(t, v.Images)
	require.Empty(t, v.Images)

	b, err := json.Marshal(v)
	require.NoError(t, err)
	require.Contains(t, string(b), `"images":[]`)
	require.Contains(t, string(b), `"book":{"id":"f1u-swEACAAJ"}`)
}

func TestToAnnouncementView_OptionalOwnerAndLocation(t *testing.T) {
	an := &model.Announcement{ID: primitive.NewObjectID(), BookID: "x"}

	v := ToAnnouncementView(an, nil, nil)
	require.Nil(t, v.OwnerUser)
	require.Nil(t, v.Location)

	owner := &model.User{ID: primitive.NewObjectID(), Name: "owner"}
	addr := &model.Address{ID: primitive.NewObjectID(), City: "Recife"}
	v = ToAnnouncementView(an, owner, addr)
	require.NotNil(t, v.OwnerUser)
	require.Equal(t, "owner", v.OwnerUser.Name)
	require.NotNil(t, v.Location)
	require.Equal(t, "Recife", v.Location.City)
}

func TestToPublicUserView_HidesSensitiveFields(t *testing.T) {
	u := &model.User{
		ID:           primitive.NewObjectID(),
		Name:         "someone",
		Email:        "someone@example.com",
		PasswordHash: "hash",
		TokenVersion: 4,
	}
	v := ToPublicUserView(u)

	b, err := json.Marshal(v)
	require.NoError(t, err)
	s := string(b)
	require.NotContains(t, s, "someone@example.com")
	require.NotContains(t, s, "hash")
	require.Contains(t, s, u.ID.Hex())
}

func TestToRentView_CarriesParties(t *testing.T) {
	owner := &model.User{ID: primitive.NewObjectID(), Name: "owner"}
	lead := &model.User{ID: primitive.NewObjectID(), Name: "lead"}
	rent := &model.Rent{
		ID:        primitive.NewObjectID(),
		Value:     10,
		Accepted:  true,
		Cancelled: false,
	}
	ann := AnnouncementView{ID: primitive.NewObjectID().Hex()}

	v := ToRentView(rent, ann, owner, lead, nil)
	require.Equal(t, rent.ID.Hex(), v.ID)
	require.Equal(t, owner.ID.Hex(), v.OwnerUser.ID)
	require.Equal(t, lead.ID.Hex(), v.Lead.ID)
	require.Nil(t, v.Chat)
	require.True(t, v.Accepted)
}

func TestToTradeView_OfferedBook(t *testing.T) {
	owner := &model.User{ID: primitive.NewObjectID()}
	trader := &model.User{ID: primitive.NewObjectID()}
	trade := &model.Trade{
		ID:            primitive.NewObjectID(),
		OfferedBookID: "zyTCAlFPjgYC",
	}

	v := ToTradeView(trade, AnnouncementView{}, owner, trader, nil)
	require.Equal(t, "zyTCAlFPjgYC", v.OfferedBook.ID)
	require.Equal(t, trader.ID.Hex(), v.TradeUser.ID)
}
