package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/nhasan/building-api/internal/auth"
	"github.com/nhasan/building-api/internal/middleware"
	"github.com/nhasan/building-api/internal/models"
	"github.com/nhasan/building-api/internal/store"
)

type mockUserStore struct {
	mock.Mock
}

func (m *mockUserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *mockUserStore) Insert(ctx context.Context, user models.User) (primitive.ObjectID, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}

func (m *mockUserStore) List(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *mockUserStore) SetRoleByID(ctx context.Context, id primitive.ObjectID, role string) (*mongo.UpdateResult, error) {
	args := m.Called(ctx, id, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mongo.UpdateResult), args.Error(1)
}

func (m *mockUserStore) SetRoleByEmail(ctx context.Context, email, role string) (*mongo.UpdateResult, error) {
	args := m.Called(ctx, email, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mongo.UpdateResult), args.Error(1)
}

func (m *mockUserStore) DeleteByID(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mongo.DeleteResult), args.Error(1)
}

type mockCartStore struct {
	mock.Mock
}

func (m *mockCartStore) Insert(ctx context.Context, item models.CartItem) (primitive.ObjectID, error) {
	args := m.Called(ctx, item)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}

func (m *mockCartStore) FindByEmail(ctx context.Context, email string) ([]models.CartItem, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.CartItem), args.Error(1)
}

func (m *mockCartStore) ListAll(ctx context.Context) ([]models.CartItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.CartItem), args.Error(1)
}

func (m *mockCartStore) SetStatusChecked(ctx context.Context, id primitive.ObjectID) (*mongo.UpdateResult, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mongo.UpdateResult), args.Error(1)
}

func (m *mockCartStore) DeleteByID(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mongo.DeleteResult), args.Error(1)
}

type mockAnnouncementStore struct {
	mock.Mock
}

func (m *mockAnnouncementStore) Insert(ctx context.Context, item models.Announcement) (primitive.ObjectID, error) {
	args := m.Called(ctx, item)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}

func (m *mockAnnouncementStore) ListAll(ctx context.Context) ([]models.Announcement, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Announcement), args.Error(1)
}

func (m *mockAnnouncementStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Announcement, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Announcement), args.Error(1)
}

func (m *mockAnnouncementStore) MergeByID(ctx context.Context, id primitive.ObjectID, fields bson.M) (*mongo.UpdateResult, error) {
	args := m.Called(ctx, id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mongo.UpdateResult), args.Error(1)
}

func (m *mockAnnouncementStore) DeleteByID(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mongo.DeleteResult), args.Error(1)
}

type mockApartmentStore struct {
	mock.Mock
}

func (m *mockApartmentStore) ListAll(ctx context.Context) ([]models.Apartment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Apartment), args.Error(1)
}

type mockFAQStore struct {
	mock.Mock
}

func (m *mockFAQStore) ListAll(ctx context.Context) ([]models.FAQ, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.FAQ), args.Error(1)
}

// testEnv runs the real route table and gate chain against mocked stores.
type testEnv struct {
	router        *gin.Engine
	tokens        *auth.TokenService
	users         *mockUserStore
	carts         *mockCartStore
	announcements *mockAnnouncementStore
	apartments    *mockApartmentStore
	faqs          *mockFAQStore
}

func newTestEnv() *testEnv {
	gin.SetMode(gin.TestMode)

	env := &testEnv{
		tokens:        auth.NewTokenService([]byte("test-secret")),
		users:         new(mockUserStore),
		carts:         new(mockCartStore),
		announcements: new(mockAnnouncementStore),
		apartments:    new(mockApartmentStore),
		faqs:          new(mockFAQStore),
	}

	h := NewHandler(store.Stores{
		Users:         env.users,
		Carts:         env.carts,
		Announcements: env.announcements,
		Apartments:    env.apartments,
		FAQs:          env.faqs,
	}, env.tokens, zap.NewNop())

	r := gin.New()
	h.Register(r,
		middleware.RequireAuth(env.tokens),
		middleware.RequireAdmin(env.users, zap.NewNop()),
	)
	env.router = r
	return env
}

// bearer mints a real token for the given email.
func (e *testEnv) bearer(t *testing.T, email string) string {
	t.Helper()
	token, err := e.tokens.Issue(email)
	require.NoError(t, err)
	return "Bearer " + token
}

func (e *testEnv) do(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

// asAdmin primes the user store so the admin gate passes for email.
func (e *testEnv) asAdmin(email string) {
	e.users.On("FindByEmail", mock.Anything, email).
		Return(&models.User{Email: email, Role: models.RoleAdmin}, nil)
}

// asMember primes the user store with a non-admin record for email.
func (e *testEnv) asMember(email string) {
	e.users.On("FindByEmail", mock.Anything, email).
		Return(&models.User{Email: email, Role: models.RoleMember}, nil)
}
