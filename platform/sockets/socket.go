package socket

import (
	"net/http"
	"os"
	"strconv"

	socketio "github.com/googollee/go-socket.io"
	"github.com/rs/cors"
	log "github.com/sirupsen/logrus"
)

// Spectator feed. Browsers join a chat's room with "watch" and receive
// the engine's events (game-start, change-turn, purchase, bid,
// game-over) as the chat plays. Nothing is ever read back from here;
// the chat transport is the only way to act on a game.

type Broadcaster struct {
	server *socketio.Server
}

// CreateSpectatorServer builds the socket.io server and its room
// handlers.
func CreateSpectatorServer() (*Broadcaster, error) {
	server, err := socketio.NewServer(nil)
	if err != nil {
		return nil, err
	}

	server.OnConnect("/", func(s socketio.Conn) error {
		s.SetContext("")
		return nil
	})

	server.OnEvent("/", "watch", func(s socketio.Conn, chatId string) {
		s.Join(chatId)
		s.Emit("watching", chatId)
	})

	server.OnEvent("/", "unwatch", func(s socketio.Conn, chatId string) {
		s.Leave(chatId)
	})

	server.OnError("/", func(s socketio.Conn, e error) {
		log.WithError(e).Warn("spectator socket error")
	})

	server.OnDisconnect("/", func(s socketio.Conn, reason string) {
		s.LeaveAll()
	})

	return &Broadcaster{server: server}, nil
}

// Publish sends an event to everyone watching the chat.
func (b *Broadcaster) Publish(chatId int64, event string, payload string) {
	b.server.BroadcastToRoom("/", strconv.FormatInt(chatId, 10), event, payload)
}

// Serve runs the spectator HTTP endpoint. Blocks; meant for its own
// goroutine.
func (b *Broadcaster) Serve() {
	go b.server.Serve()
	defer b.server.Close()

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{os.Getenv("SPECTATOR_ORIGIN")},
		AllowCredentials: true,
	})

	addr := os.Getenv("SPECTATOR_ADDR")
	if addr == "" {
		addr = ":8000"
	}
	mux := http.NewServeMux()
	mux.Handle("/socket.io/", b.server)
	if err := http.ListenAndServe(addr, c.Handler(mux)); err != nil {
		log.WithError(err).Error("spectator server stopped")
	}
}
