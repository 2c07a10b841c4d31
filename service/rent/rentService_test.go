package rentsvc

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"rentabook/model"
	"rentabook/util/apperr"
)

type mockAnnRepo struct {
	byIDFn    func(ctx context.Context, id string) (*model.Announcement, error)
	consumeFn func(ctx context.Context, id string) error
	releaseFn func(ctx context.Context, id string) error
}

var _ AnnRepo = (*mockAnnRepo)(nil)

func (m *mockAnnRepo) ByID(ctx context.Context, id string) (*model.Announcement, error) {
	return m.byIDFn(ctx, id)
}

func (m *mockAnnRepo) Consume(ctx context.Context, id string) error {
	if m.consumeFn == nil {
		return nil
	}
	return m.consumeFn(ctx, id)
}

func (m *mockAnnRepo) Release(ctx context.Context, id string) error {
	if m.releaseFn == nil {
		return nil
	}
	return m.releaseFn(ctx, id)
}

type mockRentRepo struct {
	insertFn       func(ctx context.Context, r *model.Rent) error
	byIDFn         func(ctx context.Context, id string) (*model.Rent, error)
	setAcceptedFn  func(ctx context.Context, id string) error
	setCancelledFn func(ctx context.Context, id string) error
	byUserFn       func(ctx context.Context, userID string) ([]model.Rent, error)
}

var _ RentRepo = (*mockRentRepo)(nil)

func (m *mockRentRepo) Insert(ctx context.Context, r *model.Rent) error {
	if m.insertFn == nil {
		r.ID = primitive.NewObjectID()
		return nil
	}
	return m.insertFn(ctx, r)
}

func (m *mockRentRepo) ByID(ctx context.Context, id string) (*model.Rent, error) {
	return m.byIDFn(ctx, id)
}

func (m *mockRentRepo) SetAccepted(ctx context.Context, id string) error {
	if m.setAcceptedFn == nil {
		return nil
	}
	return m.setAcceptedFn(ctx, id)
}

func (m *mockRentRepo) SetCancelled(ctx context.Context, id string) error {
	if m.setCancelledFn == nil {
		return nil
	}
	return m.setCancelledFn(ctx, id)
}

func (m *mockRentRepo) ByUser(ctx context.Context, userID string) ([]model.Rent, error) {
	return m.byUserFn(ctx, userID)
}

type mockUserRepo struct {
	users map[string]*model.User
}

var _ UserRepo = (*mockUserRepo)(nil)

func (m *mockUserRepo) ByID(ctx context.Context, id string) (*model.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return u, nil
}

type mockAddressRepo struct {
	byIDFn func(ctx context.Context, id string) (*model.Address, error)
}

var _ AddressRepo = (*mockAddressRepo)(nil)

func (m *mockAddressRepo) ByID(ctx context.Context, id string) (*model.Address, error) {
	if m.byIDFn == nil {
		return nil, mongo.ErrNoDocuments
	}
	return m.byIDFn(ctx, id)
}

type mockChatRepo struct {
	insertFn func(ctx context.Context, c *model.Chat) error
	byIDFn   func(ctx context.Context, id string) (*model.Chat, error)
}

var _ ChatRepo = (*mockChatRepo)(nil)

func (m *mockChatRepo) Insert(ctx context.Context, c *model.Chat) error {
	if m.insertFn == nil {
		c.ID = primitive.NewObjectID()
		return nil
	}
	return m.insertFn(ctx, c)
}

func (m *mockChatRepo) ByID(ctx context.Context, id string) (*model.Chat, error) {
	return m.byIDFn(ctx, id)
}

// fixture wires two users, one rentable announcement, and recording mocks.
type fixture struct {
	ownerID, leadID string
	ann             *model.Announcement
	ar              *mockAnnRepo
	rr              *mockRentRepo
	ur              *mockUserRepo
	dr              *mockAddressRepo
	cr              *mockChatRepo

	consumed, released bool
}

func newFixture() *fixture {
	owner := &model.User{ID: primitive.NewObjectID(), Name: "owner"}
	lead := &model.User{ID: primitive.NewObjectID(), Name: "lead"}

	daily := int64(10)
	ann := &model.Announcement{
		ID:          primitive.NewObjectID(),
		BookID:      "f1u-swEACAAJ",
		OwnerUserID: owner.ID.Hex(),
		IsAvailable: true,
		Rent:        true,
		DailyValue:  &daily,
	}

	f := &fixture{
		ownerID: owner.ID.Hex(),
		leadID:  lead.ID.Hex(),
		ann:     ann,
		ur: &mockUserRepo{users: map[string]*model.User{
			owner.ID.Hex(): owner,
			lead.ID.Hex():  lead,
		}},
		dr: &mockAddressRepo{},
		rr: &mockRentRepo{},
	}
	f.ar = &mockAnnRepo{
		byIDFn: func(ctx context.Context, id string) (*model.Announcement, error) {
			if id != ann.ID.Hex() {
				return nil, mongo.ErrNoDocuments
			}
			return ann, nil
		},
		consumeFn: func(ctx context.Context, id string) error {
			if !ann.IsAvailable {
				return mongo.ErrNoDocuments
			}
			ann.IsAvailable = false
			f.consumed = true
			return nil
		},
		releaseFn: func(ctx context.Context, id string) error {
			ann.IsAvailable = true
			f.released = true
			return nil
		},
	}
	f.cr = &mockChatRepo{}
	return f
}

func (f *fixture) service() Service {
	return New(f.ar, f.rr, f.ur, f.dr, f.cr)
}

func TestCreate_Success(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	var chat model.Chat
	f.cr.insertFn = func(ctx context.Context, c *model.Chat) error {
		c.ID = primitive.NewObjectID()
		chat = *c
		return nil
	}

	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	v, err := f.service().Create(ctx, f.leadID, CreateForm{
		AnnouncementID: f.ann.ID.Hex(),
		StartDate:      start,
	})
	require.NoError(t, err)

	require.True(t, f.consumed, "availability must be consumed")
	require.False(t, f.ann.IsAvailable)

	require.Equal(t, f.ann.ID.Hex(), chat.AnnouncementID)
	require.Equal(t, f.ownerID, chat.OwnerUserID)
	require.Equal(t, f.leadID, chat.LeadUserID)

	require.Equal(t, int64(10), v.Value)
	require.Equal(t, start, v.StartDate)
	require.Equal(t, "f1u-swEACAAJ", v.Announcement.Book.ID)
	require.Equal(t, f.ownerID, v.OwnerUser.ID)
	require.Equal(t, f.leadID, v.Lead.ID)
	require.NotNil(t, v.Chat)
	require.Equal(t, chat.ID.Hex(), v.Chat.ID)
	require.False(t, v.Accepted)
	require.False(t, v.Cancelled)
}

func TestCreate_OwnAnnouncement(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	_, err := f.service().Create(ctx, f.ownerID, CreateForm{AnnouncementID: f.ann.ID.Hex()})
	require.Error(t, err)
	require.Equal(t, apperr.ErrOwnAnnouncement, apperr.Code(err))
	require.False(t, f.consumed)
}

func TestCreate_NotOfferedForRent(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	f.ann.Rent = false
	f.ann.Sale = true

	_, err := f.service().Create(ctx, f.leadID, CreateForm{AnnouncementID: f.ann.ID.Hex()})
	require.Error(t, err)
	require.Equal(t, apperr.ErrBadInput, apperr.Code(err))
}

func TestCreate_NotAvailable(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	f.ann.IsAvailable = false

	_, err := f.service().Create(ctx, f.leadID, CreateForm{AnnouncementID: f.ann.ID.Hex()})
	require.Error(t, err)
	require.Equal(t, apperr.ErrNotAvailable, apperr.Code(err))
}

func TestCreate_AnnouncementNotFound(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	_, err := f.service().Create(ctx, f.leadID, CreateForm{
		AnnouncementID: primitive.NewObjectID().Hex(),
	})
	require.Error(t, err)
	require.Equal(t, apperr.ErrNotFound, apperr.Code(err))
}

func (f *fixture) seedRent(t *testing.T, cancelled bool) *model.Rent {
	t.Helper()
	chatID := primitive.NewObjectID()
	rent := &model.Rent{
		ID:             primitive.NewObjectID(),
		AnnouncementID: f.ann.ID.Hex(),
		OwnerUserID:    f.ownerID,
		LeadUserID:     f.leadID,
		ChatID:         chatID.Hex(),
		Value:          10,
		StartDate:      time.Now().UTC(),
		Cancelled:      cancelled,
	}
	f.rr.byIDFn = func(ctx context.Context, id string) (*model.Rent, error) {
		if id != rent.ID.Hex() {
			return nil, mongo.ErrNoDocuments
		}
		cp := *rent
		return &cp, nil
	}
	f.cr.byIDFn = func(ctx context.Context, id string) (*model.Chat, error) {
		return &model.Chat{
			ID:             chatID,
			OwnerUserID:    f.ownerID,
			LeadUserID:     f.leadID,
			AnnouncementID: f.ann.ID.Hex(),
		}, nil
	}
	return rent
}

func TestAccept_OwnerOnly(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	rent := f.seedRent(t, false)

	_, err := f.service().Accept(ctx, f.leadID, rent.ID.Hex())
	require.Error(t, err)
	require.Equal(t, apperr.ErrNotOwner, apperr.Code(err))

	v, err := f.service().Accept(ctx, f.ownerID, rent.ID.Hex())
	require.NoError(t, err)
	require.True(t, v.Accepted)
}

func TestAccept_CancelledIsConflict(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	rent := f.seedRent(t, true)

	_, err := f.service().Accept(ctx, f.ownerID, rent.ID.Hex())
	require.Error(t, err)
	require.Equal(t, apperr.ErrAlreadyCancelled, apperr.Code(err))
}

func TestCancel_RestoresAvailability(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	f.ann.IsAvailable = false
	rent := f.seedRent(t, false)

	v, err := f.service().Cancel(ctx, f.leadID, rent.ID.Hex())
	require.NoError(t, err)
	require.True(t, v.Cancelled)
	require.True(t, f.released)
	require.True(t, f.ann.IsAvailable)
}

func TestCancel_SecondCancelIsConflict(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	rent := f.seedRent(t, true)

	_, err := f.service().Cancel(ctx, f.ownerID, rent.ID.Hex())
	require.Error(t, err)
	require.Equal(t, apperr.ErrAlreadyCancelled, apperr.Code(err))
	require.False(t, f.released)
}

func TestCancel_ThirdPartyRejected(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	rent := f.seedRent(t, false)

	stranger := primitive.NewObjectID().Hex()
	_, err := f.service().Cancel(ctx, stranger, rent.ID.Hex())
	require.Error(t, err)
	require.Equal(t, apperr.ErrNotParticipant, apperr.Code(err))
}

func TestMy_AssemblesViews(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	rent := f.seedRent(t, false)
	f.rr.byUserFn = func(ctx context.Context, userID string) ([]model.Rent, error) {
		return []model.Rent{*rent}, nil
	}

	views, err := f.service().My(ctx, f.leadID)
	require.NoError(t, err)
	require.Len(t, views, 1)
	require.Equal(t, rent.ID.Hex(), views[0].ID)
	require.Equal(t, f.ann.ID.Hex(), views[0].Announcement.ID)
	require.NotNil(t, views[0].Chat)
}
