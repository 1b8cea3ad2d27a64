package controllers

import (
	"context"
	"encoding/json"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
	"github.com/meinhoongagan/service-marketplace/realtime"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/meinhoongagan/service-marketplace/models"
)

const chatChannelPrefix = "chat:"

type ChatHandler struct {
	DB  *gorm.DB
	Hub *realtime.Hub
	RDB *redis.Client
}

func NewChatHandler(db *gorm.DB, hub *realtime.Hub, rdb *redis.Client) *ChatHandler {
	return &ChatHandler{DB: db, Hub: hub, RDB: rdb}
}

// GetMessages returns the history of the conversation between the logged-in
// user and the peer, oldest first.
func (h *ChatHandler) GetMessages(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	peerID, err := c.ParamsInt("peerId")
	if err != nil || peerID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid peer ID",
		})
	}

	key := models.ConversationKey(userID, uint(peerID))

	var messages []models.ChatMessage
	if err := h.DB.
		Where("conversation_key = ?", key).
		Order("created_at asc").
		Find(&messages).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch messages",
		})
	}

	return c.JSON(fiber.Map{
		"conversation_key": key,
		"messages":         messages,
	})
}

// SendMessage persists a message and publishes it for push delivery.
func (h *ChatHandler) SendMessage(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}
	role, _ := c.Locals("role").(string)

	peerID, err := c.ParamsInt("peerId")
	if err != nil || peerID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid peer ID",
		})
	}

	var input struct {
		Text string `json:"text"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}
	if input.Text == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Message text is required",
		})
	}

	message := models.ChatMessage{
		ConversationKey: models.ConversationKey(userID, uint(peerID)),
		SenderID:        userID,
		SenderRole:      models.Role(role),
		Text:            input.Text,
	}

	if err := h.DB.Create(&message).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to send message",
		})
	}

	// Publish after the write succeeds; subscribers on any instance pick it
	// up via Redis and fan it out to their websocket clients.
	payload, _ := json.Marshal(message)
	if err := h.RDB.Publish(context.Background(), chatChannelPrefix+message.ConversationKey, payload).Err(); err != nil {
		log.Printf("Failed to publish chat message: %v", err)
	}

	return c.Status(fiber.StatusCreated).JSON(message)
}

// Websocket upgrades the connection and streams new messages for one
// conversation until the client goes away.
func (h *ChatHandler) Websocket() fiber.Handler {
	return websocket.New(func(conn *websocket.Conn) {
		userID, ok := conn.Locals("userID").(uint)
		if !ok {
			conn.Close()
			return
		}

		key := conn.Params("conversationKey")
		if key == "" {
			conn.Close()
			return
		}

		client := &realtime.Client{
			ID:              uuid.NewString(),
			UserID:          userID,
			ConversationKey: key,
			Send:            make(chan []byte, 64),
		}
		h.Hub.RegisterClient(client)
		defer h.Hub.UnregisterClient(client)

		// Writer: push hub payloads down the socket. Unregistering closes
		// client.Send, which ends this goroutine.
		go func() {
			for payload := range client.Send {
				if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
					return
				}
			}
		}()

		// Reader: only used to detect disconnect
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				break
			}
		}
	})
}

// SubscribeAndForward bridges Redis pub/sub into the hub. It runs for the
// life of the process; cancel ctx to stop it.
func (h *ChatHandler) SubscribeAndForward(ctx context.Context) {
	pubsub := h.RDB.PSubscribe(ctx, chatChannelPrefix+"*")
	defer pubsub.Close()

	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-pubsub.Channel():
			if !ok {
				return
			}
			var message models.ChatMessage
			if err := json.Unmarshal([]byte(msg.Payload), &message); err != nil {
				log.Printf("Failed to decode chat payload: %v", err)
				continue
			}
			h.Hub.SendToConversation(message.ConversationKey, message)
		}
	}
}
