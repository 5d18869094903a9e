package service

import (
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/fourchess/fourchess-backend/internal/engine"
	"github.com/fourchess/fourchess-backend/internal/model"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// GameManager owns the live games and the matchmaking queue. Each game
// serializes its own writes; the manager only guards its maps.
type GameManager struct {
	games            map[string]*model.Game
	queue            *model.Queue
	matchingChannels map[string]chan string
	mu               sync.RWMutex
	log              zerolog.Logger
}

func NewGameManager(log zerolog.Logger) *GameManager {
	gm := &GameManager{
		games:            make(map[string]*model.Game),
		queue:            model.NewQueue(),
		matchingChannels: make(map[string]chan string),
		log:              log,
	}

	go gm.processMatchmaking()

	return gm
}

// processMatchmaking seats four queued players into a fresh game and notifies
// each through their registered channel.
func (gm *GameManager) processMatchmaking() {
	ticker := time.NewTicker(1 * time.Second)
	defer ticker.Stop()

	for range ticker.C {
		if gm.queue.Size() < model.MatchSize {
			continue
		}
		players := gm.queue.GetNextMatch()
		if players == nil {
			continue
		}

		gm.mu.Lock()
		gameID := uuid.New().String()
		game := model.NewGame(gameID, gm.log)
		gm.games[gameID] = game

		for _, player := range players {
			color, err := game.AddPlayer(player.ID)
			if err != nil {
				gm.log.Error().Err(err).Str("player", player.ID).Msg("seat matchmade player")
				continue
			}
			event := model.MatchFoundEvent{GameID: gameID, Color: color}
			if ch, ok := gm.matchingChannels[player.ID]; ok {
				select {
				case ch <- mustJSON(event):
					delete(gm.matchingChannels, player.ID)
					close(ch)
				default:
					gm.log.Warn().Str("player", player.ID).Msg("match notification not delivered")
				}
			}
		}
		gm.mu.Unlock()
	}
}

func (gm *GameManager) RegisterMatchmakingChannel(playerID string, ch chan string) error {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	if existing, exists := gm.matchingChannels[playerID]; exists {
		delete(gm.matchingChannels, playerID)
		close(existing)
	}
	gm.matchingChannels[playerID] = ch
	return nil
}

func (gm *GameManager) UnregisterMatchmakingChannel(playerID string) {
	gm.mu.Lock()
	defer gm.mu.Unlock()
	delete(gm.matchingChannels, playerID)
}

func mustJSON(v interface{}) string {
	bytes, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return string(bytes)
}

func (gm *GameManager) CreateGame(gameID string) error {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	if _, exists := gm.games[gameID]; exists {
		return errors.New("game already exists")
	}

	gm.games[gameID] = model.NewGame(gameID, gm.log)
	return nil
}

func (gm *GameManager) GetGame(gameID string) (*model.Game, error) {
	gm.mu.RLock()
	defer gm.mu.RUnlock()

	game, exists := gm.games[gameID]
	if !exists {
		return nil, errors.New("game not found")
	}
	return game, nil
}

func (gm *GameManager) AddPlayerToGame(gameID string, playerID string) (engine.Color, error) {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return "", err
	}
	return game.AddPlayer(playerID)
}

func (gm *GameManager) JoinMatchmaking(playerID string) error {
	return gm.queue.AddPlayer(model.Player{ID: playerID})
}

func (gm *GameManager) GetGameState(gameID string) (model.GameState, error) {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return model.GameState{}, err
	}
	return game.GetState(), nil
}

func (gm *GameManager) MakeMove(gameID string, playerID string, move model.WSMove) error {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return err
	}
	return game.MakeMove(playerID, move)
}

func (gm *GameManager) Navigate(gameID string, nav model.WSNavigate) error {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return err
	}
	return game.Navigate(nav)
}

func (gm *GameManager) ResetGame(gameID string) error {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return err
	}
	game.Reset()
	return nil
}

func (gm *GameManager) LegalMoves(gameID string, pos engine.Position) ([]engine.MoveOption, error) {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return nil, err
	}
	return game.LegalMovesAt(pos)
}

func (gm *GameManager) RestrictedSquares(gameID string, color engine.Color) (engine.RestrictedSet, error) {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return engine.RestrictedSet{}, err
	}
	return game.RestrictedFor(color), nil
}

func (gm *GameManager) RegisterConnection(gameID string, playerID string, conn *websocket.Conn) error {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return err
	}
	return game.RegisterConnection(playerID, conn)
}

func (gm *GameManager) UnregisterConnection(gameID string, playerID string) {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return
	}
	game.UnregisterConnection(playerID)
}
