package controller

import (
	"encoding/json"
	"fmt"

	"github.com/fourchess/fourchess-backend/internal/model"
	"github.com/fourchess/fourchess-backend/internal/service"
	"github.com/fourchess/fourchess-backend/internal/ws"
	"github.com/gofiber/websocket/v2"
	"github.com/rs/zerolog"
)

type WebSocketController struct {
	gameService *service.GameService
	log         zerolog.Logger
}

func NewWebSocketController(gameService *service.GameService, log zerolog.Logger) *WebSocketController {
	return &WebSocketController{
		gameService: gameService,
		log:         log,
	}
}

// HandleConnection is called when a new WebSocket connection is established.
func (wsc *WebSocketController) HandleConnection(c *websocket.Conn) {
	gameID := c.Params("gameId")
	playerID := c.Locals("playerID").(string)

	if err := wsc.gameService.RegisterConnection(gameID, playerID, c); err != nil {
		wsc.log.Warn().Err(err).Str("game", gameID).Str("player", playerID).Msg("register connection")
		c.Close()
		return
	}

	for {
		messageType, message, err := c.ReadMessage()
		if err != nil {
			wsc.log.Debug().Err(err).Str("player", playerID).Msg("read message")
			break
		}
		if messageType != websocket.TextMessage {
			continue
		}

		var msg ws.Message
		if err := json.Unmarshal(message, &msg); err != nil {
			wsc.log.Warn().Err(err).Msg("parse message")
			continue
		}

		if err := wsc.handleMessage(gameID, playerID, msg); err != nil {
			wsc.sendError(c, err.Error())
		}
	}

	wsc.gameService.UnregisterConnection(gameID, playerID)
}

func (wsc *WebSocketController) handleMessage(gameID, playerID string, msg ws.Message) error {
	switch msg.Type {
	case ws.MessageTypeMove:
		var move model.WSMove
		if err := json.Unmarshal(msg.Payload, &move); err != nil {
			return err
		}
		return wsc.gameService.HandleMove(gameID, playerID, move)

	case ws.MessageTypeNavigate:
		var nav model.WSNavigate
		if err := json.Unmarshal(msg.Payload, &nav); err != nil {
			return err
		}
		return wsc.gameService.HandleNavigate(gameID, nav)

	case ws.MessageTypeReset:
		return wsc.gameService.ResetGame(gameID)

	default:
		return fmt.Errorf("unknown message type: %s", msg.Type)
	}
}

func (wsc *WebSocketController) sendError(c *websocket.Conn, errorMsg string) {
	payload, _ := json.Marshal(fiberErrorPayload{Error: errorMsg})
	c.WriteJSON(ws.Message{
		Type:    ws.MessageTypeError,
		Payload: json.RawMessage(payload),
	})
}

type fiberErrorPayload struct {
	Error string `json:"error"`
}
