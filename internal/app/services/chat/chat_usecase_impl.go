package chat

import (
	"context"
	"sync"
	"time"

	"doorspital-service/internal/app/contracts"
	"doorspital-service/internal/app/models"
	"doorspital-service/internal/pkg/constvars"
	"doorspital-service/internal/pkg/dto/requests"
	"doorspital-service/internal/pkg/dto/responses"
	"doorspital-service/internal/pkg/exceptions"
	"doorspital-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type chatUsecase struct {
	ChatClient contracts.ChatBackendClient
	RedisRepo  contracts.RedisRepository
	Poller     *Poller
	CacheExp   time.Duration
	Log        *zap.Logger
}

var (
	chatUsecaseInstance *chatUsecase
	onceChatUsecase     sync.Once
)

func NewChatUsecase(chatClient contracts.ChatBackendClient, redisRepo contracts.RedisRepository, poller *Poller, cacheExp time.Duration, logger *zap.Logger) contracts.ChatUsecase {
	onceChatUsecase.Do(func() {
		chatUsecaseInstance = &chatUsecase{
			ChatClient: chatClient,
			RedisRepo:  redisRepo,
			Poller:     poller,
			CacheExp:   cacheExp,
			Log:        logger,
		}
	})
	return chatUsecaseInstance
}

func sessionToken(session *models.Session) (string, error) {
	if session == nil || session.Token == "" {
		return "", exceptions.ErrSessionNotFound(nil)
	}
	return session.Token, nil
}

func (uc *chatUsecase) FindRooms(ctx context.Context, session *models.Session) ([]responses.ChatRoom, error) {
	token, err := sessionToken(session)
	if err != nil {
		return nil, err
	}
	return uc.ChatClient.FindRooms(ctx, token)
}

// FindMessages serves the freshest known view of a room and registers it with
// the poller so subsequent reads stay warm. A fetch failure falls back to the
// cached copy when one exists, matching how a chat window keeps its last
// rendered state when a poll cycle fails.
func (uc *chatUsecase) FindMessages(ctx context.Context, session *models.Session, roomID string) ([]responses.ChatMessage, error) {
	token, err := sessionToken(session)
	if err != nil {
		return nil, err
	}

	uc.Poller.Watch(roomID, token)

	messages, err := uc.ChatClient.FindMessages(ctx, token, roomID)
	if err != nil {
		cachedData, cacheErr := uc.RedisRepo.Get(ctx, messagesCacheKey(roomID))
		if cacheErr == nil {
			if cached := decodeCachedMessages(cachedData); cached != nil {
				requestID, _ := ctx.Value(constvars.ContextRequestID).(string)
				uc.Log.Warn("Serving cached messages after fetch failure",
					zap.String(constvars.LoggingRequestIDKey, requestID),
					zap.String(constvars.LoggingRoomIDKey, roomID),
				)
				return cached, nil
			}
		}
		return nil, err
	}

	if cacheErr := uc.RedisRepo.Set(ctx, messagesCacheKey(roomID), messages, uc.CacheExp); cacheErr != nil {
		uc.Log.Warn("Chat cache write failed", zap.Error(cacheErr))
	}
	return messages, nil
}

// SendMessage forwards the message and appends the acknowledged copy to the
// cache so the sender sees it immediately, before the next poll cycle.
func (uc *chatUsecase) SendMessage(ctx context.Context, session *models.Session, roomID string, request *requests.SendMessage) (*responses.ChatMessage, error) {
	token, err := sessionToken(session)
	if err != nil {
		return nil, err
	}
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	message, err := uc.ChatClient.SendMessage(ctx, token, roomID, request.Body)
	if err != nil {
		return nil, err
	}

	cachedData, cacheErr := uc.RedisRepo.Get(ctx, messagesCacheKey(roomID))
	if cacheErr == nil {
		cached := decodeCachedMessages(cachedData)
		cached = append(cached, *message)
		if setErr := uc.RedisRepo.Set(ctx, messagesCacheKey(roomID), cached, uc.CacheExp); setErr != nil {
			uc.Log.Warn("Chat cache write failed", zap.Error(setErr))
		}
	}

	return message, nil
}

func (uc *chatUsecase) MarkRead(ctx context.Context, session *models.Session, roomID string) error {
	token, err := sessionToken(session)
	if err != nil {
		return err
	}
	return uc.ChatClient.MarkRead(ctx, token, roomID)
}
