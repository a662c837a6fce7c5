package socket

import (
	"encoding/json"
	"net/http"
	"strconv"
	"sync"

	socketio "github.com/googollee/go-socket.io"
	"github.com/rs/cors"

	"github.com/DedS3t/monopoly-engine/platform/engine"
	"github.com/DedS3t/monopoly-engine/platform/logging"
	"github.com/DedS3t/monopoly-engine/platform/registry"
)

// CreateSocketIOServer runs the realtime side of matches: clients join
// a room per match id and drive their turns through events. All rules
// live in the engine; this layer only relays calls and broadcasts the
// engine's own events back to the room.
func CreateSocketIOServer(reg *registry.Registry) {
	server, err := socketio.NewServer(nil)
	if err != nil {
		panic(err)
	}
	log := logging.Get()

	// One broadcaster subscription per match.
	var wiredMu sync.Mutex
	wired := make(map[string]bool)
	wireMatch := func(matchID string, g *engine.Game) {
		wiredMu.Lock()
		defer wiredMu.Unlock()
		if wired[matchID] {
			return
		}
		wired[matchID] = true
		g.Subscribe(func(e engine.Event) {
			payload, err := json.Marshal(eventPayload(e))
			if err != nil {
				return
			}
			server.BroadcastToRoom("/", matchID, "game-event", string(payload))
		})
	}

	// withTurn runs fn only when the request comes from the seat that
	// holds the dice.
	withTurn := func(s socketio.Conn, jsonStr string, fn func(g *engine.Game, payload map[string]string)) {
		var payload map[string]string
		if err := json.Unmarshal([]byte(jsonStr), &payload); err != nil {
			s.Emit("error-message", "Malformed payload")
			return
		}
		g, err := reg.Get(payload["match_id"])
		if err != nil {
			s.Emit("error-message", "Invalid match")
			return
		}
		seat, err := strconv.Atoi(payload["seat"])
		if err != nil || seat != g.CurrentPlayer() {
			s.Emit("error-message", "Not your turn")
			return
		}
		fn(g, payload)
	}

	server.OnConnect("/", func(s socketio.Conn) error {
		s.SetContext("")
		return nil
	})

	server.OnEvent("/", "join-match", func(s socketio.Conn, jsonStr string) {
		var payload map[string]string
		if err := json.Unmarshal([]byte(jsonStr), &payload); err != nil {
			s.Emit("error-message", "Malformed payload")
			return
		}
		matchID := payload["match_id"]
		g, err := reg.Get(matchID)
		if err != nil {
			s.Emit("error-message", "Invalid match")
			s.Emit("failed")
			return
		}
		wireMatch(matchID, g)
		s.Join(matchID)
		server.BroadcastToRoom("/", matchID, "player-join")
		s.Emit("joined-match", strconv.Itoa(server.RoomLen("/", matchID)))
	})

	server.OnEvent("/", "roll-dice", func(s socketio.Conn, jsonStr string) {
		withTurn(s, jsonStr, func(g *engine.Game, payload map[string]string) {
			var err error
			var d1, d2 int
			if payload["d1"] != "" {
				// forced dice, used by clients replaying a match
				if d1, err = strconv.Atoi(payload["d1"]); err == nil {
					if d2, err = strconv.Atoi(payload["d2"]); err == nil {
						err = g.RollDice(d1, d2)
					}
				}
			} else {
				d1, d2, err = g.Roll()
			}
			if err != nil {
				s.Emit("error-message", err.Error())
				return
			}
			server.BroadcastToRoom("/", payload["match_id"], "dice-rolled",
				strconv.Itoa(d1)+","+strconv.Itoa(d2))
		})
	})

	server.OnEvent("/", "move", func(s socketio.Conn, jsonStr string) {
		withTurn(s, jsonStr, func(g *engine.Game, payload map[string]string) {
			res, err := g.MoveAndResolve()
			if err != nil {
				s.Emit("error-message", err.Error())
				return
			}
			if card := g.TakeDrawnCard(); card != -1 {
				server.BroadcastToRoom("/", payload["match_id"], "chance-card", strconv.Itoa(card))
			}
			out, err := json.Marshal(res)
			if err != nil {
				return
			}
			server.BroadcastToRoom("/", payload["match_id"], "moved", string(out))
		})
	})

	server.OnEvent("/", "request-buy", func(s socketio.Conn, jsonStr string) {
		withTurn(s, jsonStr, func(g *engine.Game, payload map[string]string) {
			if err := g.Buy(); err != nil {
				s.Emit("error-message", err.Error())
			}
		})
	})

	server.OnEvent("/", "buy-house", func(s socketio.Conn, jsonStr string) {
		withTurn(s, jsonStr, func(g *engine.Game, payload map[string]string) {
			if err := g.BuildHouse(); err != nil {
				s.Emit("error-message", err.Error())
			}
		})
	})

	server.OnEvent("/", "buy-hotel", func(s socketio.Conn, jsonStr string) {
		withTurn(s, jsonStr, func(g *engine.Game, payload map[string]string) {
			if err := g.BuildHotel(); err != nil {
				s.Emit("error-message", err.Error())
			}
		})
	})

	server.OnEvent("/", "use-jail-card", func(s socketio.Conn, jsonStr string) {
		withTurn(s, jsonStr, func(g *engine.Game, payload map[string]string) {
			if err := g.UseJailCard(); err != nil {
				s.Emit("error-message", err.Error())
			}
		})
	})

	server.OnEvent("/", "end-turn", func(s socketio.Conn, jsonStr string) {
		withTurn(s, jsonStr, func(g *engine.Game, payload map[string]string) {
			if err := g.EndTurn(); err != nil {
				s.Emit("error-message", err.Error())
			}
		})
	})

	server.OnError("/", func(s socketio.Conn, e error) {
		log.WithError(e).Warn("socket error")
	})

	server.OnDisconnect("/", func(s socketio.Conn, reason string) {
		for _, room := range s.Rooms() {
			server.BroadcastToRoom("/", room, "player-left")
		}
		s.LeaveAll()
	})

	go server.Serve()
	defer server.Close()

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
	})

	mux := http.NewServeMux()
	mux.Handle("/socket.io/", server)
	http.ListenAndServe(":8000", c.Handler(mux))
}

// eventPayload flattens an engine event for the wire.
func eventPayload(e engine.Event) map[string]interface{} {
	return map[string]interface{}{
		"kind":   string(e.Kind),
		"player": e.Player,
		"pos":    e.Pos,
		"amount": e.Amount,
		"card":   e.Card,
	}
}
