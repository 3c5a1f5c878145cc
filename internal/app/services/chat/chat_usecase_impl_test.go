package chat

import (
	"context"
	"sync"
	"testing"
	"time"

	"doorspital-service/internal/app/models"
	"doorspital-service/internal/pkg/constvars"
	"doorspital-service/internal/pkg/dto/requests"
	"doorspital-service/internal/pkg/dto/responses"
	"doorspital-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type mockChatBackendClient struct {
	mock.Mock
}

func (m *mockChatBackendClient) FindRooms(ctx context.Context, token string) ([]responses.ChatRoom, error) {
	args := m.Called(ctx, token)
	rooms, _ := args.Get(0).([]responses.ChatRoom)
	return rooms, args.Error(1)
}

func (m *mockChatBackendClient) FindMessages(ctx context.Context, token, roomID string) ([]responses.ChatMessage, error) {
	args := m.Called(ctx, token, roomID)
	messages, _ := args.Get(0).([]responses.ChatMessage)
	return messages, args.Error(1)
}

func (m *mockChatBackendClient) SendMessage(ctx context.Context, token, roomID, body string) (*responses.ChatMessage, error) {
	args := m.Called(ctx, token, roomID, body)
	message, _ := args.Get(0).(*responses.ChatMessage)
	return message, args.Error(1)
}

func (m *mockChatBackendClient) MarkRead(ctx context.Context, token, roomID string) error {
	args := m.Called(ctx, token, roomID)
	return args.Error(0)
}

type fakeRedisRepository struct {
	mu   sync.Mutex
	data map[string]string
}

func newFakeRedisRepository() *fakeRedisRepository {
	return &fakeRedisRepository{data: make(map[string]string)}
}

func (f *fakeRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	jsonValue, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.data[key] = string(jsonValue)
	return nil
}

func (f *fakeRedisRepository) Get(ctx context.Context, key string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.data[key], nil
}

func (f *fakeRedisRepository) Delete(ctx context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.data, key)
	return nil
}

func chatSession() *models.Session {
	return &models.Session{
		Token: "upstream-token",
		User:  &models.User{ID: "doc-1", Role: constvars.RoleDoctor},
	}
}

func newChatUsecaseUnderTest(client *mockChatBackendClient, redisRepo *fakeRedisRepository) *chatUsecase {
	return &chatUsecase{
		ChatClient: client,
		RedisRepo:  redisRepo,
		Poller:     NewPoller(client, redisRepo, 10*time.Second, 5, zap.NewNop()),
		CacheExp:   time.Minute,
		Log:        zap.NewNop(),
	}
}

func TestChatUsecaseFindMessages(t *testing.T) {
	ctx := context.Background()

	t.Run("a successful fetch is served and cached", func(t *testing.T) {
		client := new(mockChatBackendClient)
		redisRepo := newFakeRedisRepository()
		usecase := newChatUsecaseUnderTest(client, redisRepo)

		fetched := []responses.ChatMessage{
			{ID: "m1", RoomID: "room-1", Body: "hello"},
			{ID: "m2", RoomID: "room-1", Body: "how are you"},
		}
		client.On("FindMessages", mock.Anything, "upstream-token", "room-1").Return(fetched, nil)

		messages, err := usecase.FindMessages(ctx, chatSession(), "room-1")
		assert.NoError(t, err)
		assert.Equal(t, fetched, messages)

		cachedData, _ := redisRepo.Get(ctx, messagesCacheKey("room-1"))
		assert.Equal(t, fetched, decodeCachedMessages(cachedData))
	})

	t.Run("a fetch failure falls back to the cached copy", func(t *testing.T) {
		client := new(mockChatBackendClient)
		redisRepo := newFakeRedisRepository()
		usecase := newChatUsecaseUnderTest(client, redisRepo)

		cached := []responses.ChatMessage{{ID: "m1", RoomID: "room-1", Body: "hello"}}
		assert.NoError(t, redisRepo.Set(ctx, messagesCacheKey("room-1"), cached, time.Minute))

		upstreamErr := exceptions.ErrBackendRejected(constvars.StatusBadGateway, "upstream unavailable")
		client.On("FindMessages", mock.Anything, "upstream-token", "room-1").Return(nil, upstreamErr)

		messages, err := usecase.FindMessages(ctx, chatSession(), "room-1")
		assert.NoError(t, err)
		assert.Equal(t, cached, messages)
	})

	t.Run("a fetch failure with no cache surfaces the error", func(t *testing.T) {
		client := new(mockChatBackendClient)
		usecase := newChatUsecaseUnderTest(client, newFakeRedisRepository())

		upstreamErr := exceptions.ErrBackendRejected(constvars.StatusBadGateway, "upstream unavailable")
		client.On("FindMessages", mock.Anything, "upstream-token", "room-1").Return(nil, upstreamErr)

		_, err := usecase.FindMessages(ctx, chatSession(), "room-1")
		assert.Error(t, err)
	})
}

func TestChatUsecaseSendMessage(t *testing.T) {
	ctx := context.Background()

	t.Run("an acknowledged send lands in the cache immediately", func(t *testing.T) {
		client := new(mockChatBackendClient)
		redisRepo := newFakeRedisRepository()
		usecase := newChatUsecaseUnderTest(client, redisRepo)

		existing := []responses.ChatMessage{{ID: "m1", RoomID: "room-1", Body: "hello"}}
		assert.NoError(t, redisRepo.Set(ctx, messagesCacheKey("room-1"), existing, time.Minute))

		acknowledged := &responses.ChatMessage{ID: "m2", RoomID: "room-1", Body: "on my way", Mine: true}
		client.On("SendMessage", mock.Anything, "upstream-token", "room-1", "on my way").Return(acknowledged, nil)

		message, err := usecase.SendMessage(ctx, chatSession(), "room-1", &requests.SendMessage{Body: "on my way"})
		assert.NoError(t, err)
		assert.Equal(t, acknowledged, message)

		cachedData, _ := redisRepo.Get(ctx, messagesCacheKey("room-1"))
		cached := decodeCachedMessages(cachedData)
		assert.Len(t, cached, 2)
		assert.Equal(t, "on my way", cached[1].Body)
	})

	t.Run("a rejected send leaves the cache untouched", func(t *testing.T) {
		client := new(mockChatBackendClient)
		redisRepo := newFakeRedisRepository()
		usecase := newChatUsecaseUnderTest(client, redisRepo)

		existing := []responses.ChatMessage{{ID: "m1", RoomID: "room-1", Body: "hello"}}
		assert.NoError(t, redisRepo.Set(ctx, messagesCacheKey("room-1"), existing, time.Minute))

		upstreamErr := exceptions.ErrBackendRejected(constvars.StatusBadRequest, "room closed")
		client.On("SendMessage", mock.Anything, "upstream-token", "room-1", "on my way").Return(nil, upstreamErr)

		_, err := usecase.SendMessage(ctx, chatSession(), "room-1", &requests.SendMessage{Body: "on my way"})
		assert.Error(t, err)

		cachedData, _ := redisRepo.Get(ctx, messagesCacheKey("room-1"))
		assert.Equal(t, existing, decodeCachedMessages(cachedData))
	})

	t.Run("an empty body never reaches the backend", func(t *testing.T) {
		client := new(mockChatBackendClient)
		usecase := newChatUsecaseUnderTest(client, newFakeRedisRepository())

		_, err := usecase.SendMessage(ctx, chatSession(), "room-1", &requests.SendMessage{})
		assert.Error(t, err)
		client.AssertNotCalled(t, "SendMessage", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestPoller(t *testing.T) {
	ctx := context.Background()

	t.Run("a watched room is refreshed into the cache", func(t *testing.T) {
		client := new(mockChatBackendClient)
		redisRepo := newFakeRedisRepository()
		poller := NewPoller(client, redisRepo, 10*time.Second, 5, zap.NewNop())

		fetched := []responses.ChatMessage{{ID: "m1", RoomID: "room-1", Body: "hello"}}
		client.On("FindMessages", mock.Anything, "upstream-token", "room-1").Return(fetched, nil)

		poller.Watch("room-1", "upstream-token")
		poller.pollOnce(ctx)

		cachedData, _ := redisRepo.Get(ctx, messagesCacheKey("room-1"))
		assert.Equal(t, fetched, decodeCachedMessages(cachedData))
	})

	t.Run("an unwatched room is not polled", func(t *testing.T) {
		client := new(mockChatBackendClient)
		redisRepo := newFakeRedisRepository()
		poller := NewPoller(client, redisRepo, 10*time.Second, 5, zap.NewNop())

		poller.Watch("room-1", "upstream-token")
		poller.Unwatch("room-1")
		poller.pollOnce(ctx)

		client.AssertNotCalled(t, "FindMessages", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("a stale watch is dropped", func(t *testing.T) {
		client := new(mockChatBackendClient)
		redisRepo := newFakeRedisRepository()
		poller := NewPoller(client, redisRepo, 10*time.Second, 5, zap.NewNop())

		poller.mu.Lock()
		poller.watches["room-1"] = roomWatch{token: "upstream-token", lastOpened: time.Now().Add(-watchTTL - time.Minute)}
		poller.mu.Unlock()

		poller.pollOnce(ctx)

		client.AssertNotCalled(t, "FindMessages", mock.Anything, mock.Anything, mock.Anything)
		poller.mu.Lock()
		_, stillWatched := poller.watches["room-1"]
		poller.mu.Unlock()
		assert.False(t, stillWatched)
	})
}
