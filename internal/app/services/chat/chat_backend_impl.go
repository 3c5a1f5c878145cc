package chat

import (
	"context"
	"fmt"

	"doorspital-service/internal/app/contracts"
	"doorspital-service/internal/pkg/constvars"
	"doorspital-service/internal/pkg/dto/responses"
	"doorspital-service/internal/pkg/utils"
)

type chatBackendClient struct {
	BackendClient contracts.BackendClient
}

func NewChatBackendClient(backendClient contracts.BackendClient) contracts.ChatBackendClient {
	return &chatBackendClient{
		BackendClient: backendClient,
	}
}

func (c *chatBackendClient) FindRooms(ctx context.Context, token string) ([]responses.ChatRoom, error) {
	payload, err := c.BackendClient.Do(ctx, constvars.MethodGet, constvars.BackendPathChatRooms, nil, &contracts.BackendOptions{Token: token})
	if err != nil {
		return nil, err
	}

	items := utils.NormalizeList(utils.UnwrapData(payload), "rooms")
	rooms := make([]responses.ChatRoom, 0, len(items))
	seen := map[string]bool{}
	for _, item := range items {
		room := mapRoom(item)
		// The backend occasionally returns the same room twice when both
		// participants match the query.
		if room.ID == "" || seen[room.ID] {
			continue
		}
		seen[room.ID] = true
		rooms = append(rooms, room)
	}
	return rooms, nil
}

func (c *chatBackendClient) FindMessages(ctx context.Context, token, roomID string) ([]responses.ChatMessage, error) {
	path := fmt.Sprintf("%s/%s/messages", constvars.BackendPathChatRooms, roomID)
	payload, err := c.BackendClient.Do(ctx, constvars.MethodGet, path, nil, &contracts.BackendOptions{Token: token})
	if err != nil {
		return nil, err
	}

	items := utils.NormalizeList(utils.UnwrapData(payload), "messages")
	messages := make([]responses.ChatMessage, 0, len(items))
	for _, item := range items {
		messages = append(messages, mapMessage(roomID, item))
	}

	// The backend sends newest first; conversations read oldest first.
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
	return messages, nil
}

func (c *chatBackendClient) SendMessage(ctx context.Context, token, roomID, body string) (*responses.ChatMessage, error) {
	path := fmt.Sprintf("%s/%s/messages", constvars.BackendPathChatRooms, roomID)
	payload, err := c.BackendClient.Do(ctx, constvars.MethodPost, path, map[string]string{"body": body}, &contracts.BackendOptions{Token: token})
	if err != nil {
		return nil, err
	}

	data, _ := utils.UnwrapData(payload).(map[string]interface{})
	if data == nil || utils.PickString(data, "_id", "id") == "" {
		// Some deployments acknowledge sends with an empty body.
		return &responses.ChatMessage{RoomID: roomID, Body: body, Mine: true, Pending: true}, nil
	}

	message := mapMessage(roomID, data)
	message.Mine = true
	return &message, nil
}

func (c *chatBackendClient) MarkRead(ctx context.Context, token, roomID string) error {
	path := fmt.Sprintf("%s/%s/read", constvars.BackendPathChatRooms, roomID)
	_, err := c.BackendClient.Do(ctx, constvars.MethodPost, path, nil, &contracts.BackendOptions{Token: token})
	return err
}

func mapRoom(item map[string]interface{}) responses.ChatRoom {
	peerName := utils.PickString(item, "peerName", "name")
	if peerName == "" {
		if peer := utils.PickMap(item, "peer", "participant", "patient"); peer != nil {
			peerName = utils.PickString(peer, "name", "fullName", "userName")
		}
	}

	lastMessage := utils.PickString(item, "lastMessage")
	if lastMessage == "" {
		if last := utils.PickMap(item, "lastMessage"); last != nil {
			lastMessage = utils.PickString(last, "body", "text")
		}
	}

	return responses.ChatRoom{
		ID:          utils.PickString(item, "_id", "id"),
		PeerName:    peerName,
		LastMessage: lastMessage,
		UnreadCount: utils.PickInt(item, "unreadCount", "unread"),
		UpdatedAt:   utils.PickString(item, "updatedAt", "lastMessageAt"),
	}
}

func mapMessage(roomID string, item map[string]interface{}) responses.ChatMessage {
	return responses.ChatMessage{
		ID:        utils.PickString(item, "_id", "id"),
		RoomID:    roomID,
		SenderID:  utils.PickString(item, "senderId", "sender", "from"),
		Body:      utils.PickString(item, "body", "text", "message"),
		Mine:      utils.PickBool(item, "mine", "isMine"),
		CreatedAt: utils.PickString(item, "createdAt", "sentAt"),
	}
}
