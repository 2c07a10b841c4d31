package salesvc

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"rentabook/model"
	"rentabook/util/apperr"
)

type mockAnnRepo struct {
	ann      *model.Announcement
	released bool
}

var _ AnnRepo = (*mockAnnRepo)(nil)

func (m *mockAnnRepo) ByID(ctx context.Context, id string) (*model.Announcement, error) {
	if m.ann == nil || id != m.ann.ID.Hex() {
		return nil, mongo.ErrNoDocuments
	}
	return m.ann, nil
}

func (m *mockAnnRepo) Consume(ctx context.Context, id string) error {
	if !m.ann.IsAvailable {
		return mongo.ErrNoDocuments
	}
	m.ann.IsAvailable = false
	return nil
}

func (m *mockAnnRepo) Release(ctx context.Context, id string) error {
	m.ann.IsAvailable = true
	m.released = true
	return nil
}

type mockSaleRepo struct {
	insertFn func(ctx context.Context, s *model.Sale) error
	byIDFn   func(ctx context.Context, id string) (*model.Sale, error)
	byUserFn func(ctx context.Context, userID string) ([]model.Sale, error)
}

var _ SaleRepo = (*mockSaleRepo)(nil)

func (m *mockSaleRepo) Insert(ctx context.Context, s *model.Sale) error {
	if m.insertFn == nil {
		s.ID = primitive.NewObjectID()
		return nil
	}
	return m.insertFn(ctx, s)
}

func (m *mockSaleRepo) ByID(ctx context.Context, id string) (*model.Sale, error) {
	return m.byIDFn(ctx, id)
}

func (m *mockSaleRepo) SetAccepted(ctx context.Context, id string) error  { return nil }
func (m *mockSaleRepo) SetCancelled(ctx context.Context, id string) error { return nil }

func (m *mockSaleRepo) ByUser(ctx context.Context, userID string) ([]model.Sale, error) {
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
	addr *model.Address
}

var _ AddressRepo = (*mockAddressRepo)(nil)

func (m *mockAddressRepo) ByID(ctx context.Context, id string) (*model.Address, error) {
	if m.addr == nil || id != m.addr.ID.Hex() {
		return nil, mongo.ErrNoDocuments
	}
	return m.addr, nil
}

type fixture struct {
	ownerID, buyerID string
	ar               *mockAnnRepo
	sr               *mockSaleRepo
	ur               *mockUserRepo
	dr               *mockAddressRepo
}

func newFixture() *fixture {
	owner := &model.User{ID: primitive.NewObjectID(), Name: "owner"}
	buyer := &model.User{ID: primitive.NewObjectID(), Name: "buyer"}

	price := int64(2500)
	ann := &model.Announcement{
		ID:          primitive.NewObjectID(),
		BookID:      "zyTCAlFPjgYC",
		OwnerUserID: owner.ID.Hex(),
		IsAvailable: true,
		Sale:        true,
		SaleValue:   &price,
	}

	return &fixture{
		ownerID: owner.ID.Hex(),
		buyerID: buyer.ID.Hex(),
		ar:      &mockAnnRepo{ann: ann},
		sr:      &mockSaleRepo{},
		ur: &mockUserRepo{users: map[string]*model.User{
			owner.ID.Hex(): owner,
			buyer.ID.Hex(): buyer,
		}},
		dr: &mockAddressRepo{},
	}
}

func (f *fixture) service() Service {
	return New(f.ar, f.sr, f.ur, f.dr)
}

func TestCreate_Success(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	v, err := f.service().Create(ctx, f.buyerID, CreateForm{
		AnnouncementID: f.ar.ann.ID.Hex(),
	})
	require.NoError(t, err)
	require.False(t, f.ar.ann.IsAvailable)
	require.Equal(t, int64(2500), v.Value)
	require.Equal(t, f.ownerID, v.OwnerUser.ID)
	require.Equal(t, f.buyerID, v.Buyer.ID)
	require.Equal(t, "zyTCAlFPjgYC", v.Announcement.Book.ID)
}

func TestCreate_WithDeliveryAddress(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	f.dr.addr = &model.Address{
		ID:          primitive.NewObjectID(),
		OwnerUserID: f.buyerID,
		Street:      "Rua A",
	}

	var sale model.Sale
	f.sr.insertFn = func(ctx context.Context, s *model.Sale) error {
		s.ID = primitive.NewObjectID()
		sale = *s
		return nil
	}

	_, err := f.service().Create(ctx, f.buyerID, CreateForm{
		AnnouncementID: f.ar.ann.ID.Hex(),
		AddressID:      f.dr.addr.ID.Hex(),
	})
	require.NoError(t, err)
	require.NotNil(t, sale.AddressID)
	require.Equal(t, f.dr.addr.ID.Hex(), *sale.AddressID)
}

func TestCreate_ForeignAddressRejected(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	f.dr.addr = &model.Address{
		ID:          primitive.NewObjectID(),
		OwnerUserID: primitive.NewObjectID().Hex(),
	}

	_, err := f.service().Create(ctx, f.buyerID, CreateForm{
		AnnouncementID: f.ar.ann.ID.Hex(),
		AddressID:      f.dr.addr.ID.Hex(),
	})
	require.Error(t, err)
	require.Equal(t, apperr.ErrNotOwner, apperr.Code(err))
	require.True(t, f.ar.ann.IsAvailable, "availability must not be consumed")
}

func TestCreate_NotOfferedForSale(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	f.ar.ann.Sale = false
	f.ar.ann.Rent = true

	_, err := f.service().Create(ctx, f.buyerID, CreateForm{AnnouncementID: f.ar.ann.ID.Hex()})
	require.Error(t, err)
	require.Equal(t, apperr.ErrBadInput, apperr.Code(err))
}

func TestCreate_OwnAnnouncement(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	_, err := f.service().Create(ctx, f.ownerID, CreateForm{AnnouncementID: f.ar.ann.ID.Hex()})
	require.Error(t, err)
	require.Equal(t, apperr.ErrOwnAnnouncement, apperr.Code(err))
}

func (f *fixture) seedSale(cancelled bool) *model.Sale {
	sale := &model.Sale{
		ID:             primitive.NewObjectID(),
		AnnouncementID: f.ar.ann.ID.Hex(),
		OwnerUserID:    f.ownerID,
		BuyerUserID:    f.buyerID,
		Value:          2500,
		Cancelled:      cancelled,
	}
	f.sr.byIDFn = func(ctx context.Context, id string) (*model.Sale, error) {
		if id != sale.ID.Hex() {
			return nil, mongo.ErrNoDocuments
		}
		cp := *sale
		return &cp, nil
	}
	return sale
}

func TestAccept_OwnerOnly(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	sale := f.seedSale(false)

	_, err := f.service().Accept(ctx, f.buyerID, sale.ID.Hex())
	require.Error(t, err)
	require.Equal(t, apperr.ErrNotOwner, apperr.Code(err))

	v, err := f.service().Accept(ctx, f.ownerID, sale.ID.Hex())
	require.NoError(t, err)
	require.True(t, v.Accepted)
}

func TestCancel_RestoresAvailability(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	f.ar.ann.IsAvailable = false
	sale := f.seedSale(false)

	v, err := f.service().Cancel(ctx, f.buyerID, sale.ID.Hex())
	require.NoError(t, err)
	require.True(t, v.Cancelled)
	require.True(t, f.ar.released)
	require.True(t, f.ar.ann.IsAvailable)
}

func TestCancel_SecondCancelIsConflict(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	sale := f.seedSale(true)

	_, err := f.service().Cancel(ctx, f.ownerID, sale.ID.Hex())
	require.Error(t, err)
	require.Equal(t, apperr.ErrAlreadyCancelled, apperr.Code(err))
	require.False(t, f.ar.released)
}
