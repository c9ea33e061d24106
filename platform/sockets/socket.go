package socket

import (
	"encoding/json"
	"net/http"

	socketio "github.com/googollee/go-socket.io"
	"github.com/rs/cors"
	uuid "github.com/satori/go.uuid"
	log "github.com/sirupsen/logrus"

	"github.com/veldkamp/boardwalk-backend/app/models"
	"github.com/veldkamp/boardwalk-backend/pkg/config"
	"github.com/veldkamp/boardwalk-backend/platform/game"
)

// session is the per-connection context. Once joined, a connection is bound
// to one room and one player index for its lifetime.
type session struct {
	ID          string
	RoomID      string
	PlayerIndex int
}

type Server struct {
	io       *socketio.Server
	registry *game.Registry
}

// NewServer builds the socket.io server and the room registry it feeds.
// The server itself is the registry's emitter.
func NewServer(cfg config.Config) *Server {
	io, err := socketio.NewServer(nil)
	if err != nil {
		panic(err)
	}
	s := &Server{io: io}
	s.registry = game.NewRegistry(game.Settings{
		MaxPlayers:     cfg.MaxPlayers,
		StartMoney:     cfg.StartMoney,
		PassGoBonus:    cfg.PassGoBonus,
		LuxuryTax:      cfg.LuxuryTax,
		IncomeTaxPct:   cfg.IncomeTaxPct,
		AuctionTimeout: cfg.AuctionTimeout,
	}, s)
	s.bind()
	return s
}

func (s *Server) Registry() *game.Registry { return s.registry }

// ToRoom implements game.Emitter. Payloads go out as JSON strings, one
// multicast per room event.
func (s *Server) ToRoom(roomID string, event string, data interface{}) {
	s.io.BroadcastToRoom("/", roomID, event, toJSON(data))
}

// Run serves the socket.io endpoint until the process exits.
func (s *Server) Run(cfg config.Config) {
	go s.io.Serve()
	defer s.io.Close()

	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowCredentials: true,
	})
	mux := http.NewServeMux()
	mux.Handle("/socket.io/", s.io)

	log.WithField("addr", cfg.SocketAddr).Info("socket.io listening")
	if err := http.ListenAndServe(cfg.SocketAddr, c.Handler(mux)); err != nil {
		log.WithError(err).Fatal("socket server stopped")
	}
}

func (s *Server) bind() {
	s.io.OnConnect("/", func(c socketio.Conn) error {
		c.SetContext(&session{ID: uuid.NewV4().String()})
		log.WithField("socket", c.ID()).Debug("socket connected")
		return nil
	})

	// create_room and join_room are the same operation: the room is created
	// lazily on first reference.
	s.io.OnEvent("/", "create_room", s.handleJoin)
	s.io.OnEvent("/", "join_room", s.handleJoin)

	s.io.OnEvent("/", "roll", func(c socketio.Conn) {
		sess, room, ok := s.roomOf(c)
		if !ok {
			return
		}
		res, err := room.Roll(sess.PlayerIndex)
		if err != nil {
			s.sendError(c, err)
			return
		}
		c.Emit("rolled", toJSON(res))
	})

	s.io.OnEvent("/", "buy", func(c socketio.Conn) {
		sess, room, ok := s.roomOf(c)
		if !ok {
			return
		}
		if err := room.Buy(sess.PlayerIndex); err != nil {
			s.sendError(c, err)
		}
	})

	s.io.OnEvent("/", "build_house", func(c socketio.Conn) {
		sess, room, ok := s.roomOf(c)
		if !ok {
			return
		}
		if err := room.BuildHouse(sess.PlayerIndex); err != nil {
			s.sendError(c, err)
		}
	})

	s.io.OnEvent("/", "start_auction", func(c socketio.Conn, jsonStr string) string {
		sess, room, ok := s.roomOf(c)
		if !ok {
			return ackErr(game.ErrMissingContext)
		}
		var req struct {
			PropertyID int `json:"propertyId"`
		}
		json.Unmarshal([]byte(jsonStr), &req)
		if err := room.StartAuction(sess.PlayerIndex, req.PropertyID); err != nil {
			return ackErr(err)
		}
		return ackOK(nil)
	})

	s.io.OnEvent("/", "auction_bid", func(c socketio.Conn, jsonStr string) string {
		sess, room, ok := s.roomOf(c)
		if !ok {
			return ackErr(game.ErrMissingContext)
		}
		var req struct {
			Amount int `json:"amount"`
		}
		json.Unmarshal([]byte(jsonStr), &req)
		if err := room.Bid(sess.PlayerIndex, req.Amount); err != nil {
			return ackErr(err)
		}
		return ackOK(nil)
	})

	s.io.OnEvent("/", "auction_pass", func(c socketio.Conn) string {
		sess, room, ok := s.roomOf(c)
		if !ok {
			return ackErr(game.ErrMissingContext)
		}
		if err := room.Pass(sess.PlayerIndex); err != nil {
			return ackErr(err)
		}
		return ackOK(nil)
	})

	s.io.OnEvent("/", "end_turn", func(c socketio.Conn) {
		sess, room, ok := s.roomOf(c)
		if !ok {
			return
		}
		if err := room.EndTurn(sess.PlayerIndex); err != nil {
			s.sendError(c, err)
		}
	})

	s.io.OnEvent("/", "get_state", func(c socketio.Conn) {
		_, room, ok := s.roomOf(c)
		if !ok {
			return
		}
		room.BroadcastState()
	})

	s.io.OnError("/", func(c socketio.Conn, e error) {
		log.WithError(e).Error("socket error")
	})

	s.io.OnDisconnect("/", func(c socketio.Conn, reason string) {
		sess := ctx(c)
		if sess == nil || sess.RoomID == "" {
			return
		}
		if room, ok := s.registry.Get(sess.RoomID); ok {
			room.MarkDisconnected(sess.ID)
		}
		log.WithFields(log.Fields{"room": sess.RoomID, "player": sess.PlayerIndex, "reason": reason}).Info("player disconnected")
		c.LeaveAll()
	})
}

func (s *Server) handleJoin(c socketio.Conn, jsonStr string) string {
	var req struct {
		RoomID string `json:"roomId"`
		Name   string `json:"name"`
	}
	json.Unmarshal([]byte(jsonStr), &req)

	sess := ctx(c)
	if sess == nil {
		return ackErr(game.ErrMissingContext)
	}
	room, idx, err := s.registry.Join(req.RoomID, req.Name, sess.ID)
	if err != nil {
		return ackErr(err)
	}
	sess.RoomID = req.RoomID
	sess.PlayerIndex = idx
	c.Join(req.RoomID)
	room.BroadcastState()

	log.WithFields(log.Fields{"room": req.RoomID, "player": idx, "name": req.Name}).Info("player joined")
	return ackOK(&idx)
}

// roomOf resolves the connection's bound room. Commands arriving before a
// join are dropped; ack-bearing handlers report missing context themselves.
func (s *Server) roomOf(c socketio.Conn) (*session, *game.Room, bool) {
	sess := ctx(c)
	if sess == nil || sess.RoomID == "" {
		return nil, nil, false
	}
	room, ok := s.registry.Get(sess.RoomID)
	if !ok {
		return nil, nil, false
	}
	return sess, room, true
}

func ctx(c socketio.Conn) *session {
	if sess, ok := c.Context().(*session); ok {
		return sess
	}
	return nil
}

func (s *Server) sendError(c socketio.Conn, err error) {
	c.Emit(game.EventActionError, toJSON(models.Notice{Message: err.Error()}))
}

func toJSON(v interface{}) string {
	b, err := json.Marshal(v)
	if err != nil {
		log.WithError(err).Error("failed to marshal payload")
		return "{}"
	}
	return string(b)
}

type ackPayload struct {
	OK          bool   `json:"ok,omitempty"`
	PlayerIndex *int   `json:"playerIndex,omitempty"`
	Error       string `json:"error,omitempty"`
}

func ackOK(playerIndex *int) string {
	return toJSON(ackPayload{OK: true, PlayerIndex: playerIndex})
}

func ackErr(err error) string {
	return toJSON(ackPayload{Error: err.Error()})
}
