package socket

import (
	"log"

	"hackmate_server/services"

	socketio "github.com/googollee/go-socket.io"
)

// NewSocketServer initializes the Socket.IO server that pushes invitation
// change signals to browsers. Clients join a room named after their user
// id and receive payload-free "invitationsChanged" events; they are
// expected to re-fetch through the HTTP API.
func NewSocketServer(feed *services.ChangeFeed) *socketio.Server {
	server := socketio.NewServer(nil)

	server.OnConnect("/", func(c socketio.Conn) error {
		log.Println("✅ Socket connected:", c.ID())
		return nil
	})

	server.OnEvent("/", "join", func(c socketio.Conn, userID string) {
		if userID == "" {
			log.Println("❌ Invalid userId in join request")
			return
		}
		c.Join(userID)

		cancel := feed.Subscribe(userID, func() {
			server.BroadcastToRoom("/", userID, "invitationsChanged")
		})
		c.SetContext(cancel)
		log.Printf("👥 Socket %s listening for invitation changes of user %s\n", c.ID(), userID)
	})

	server.OnError("/", func(c socketio.Conn, err error) {
		log.Println("Socket error:", err)
	})

	server.OnDisconnect("/", func(c socketio.Conn, reason string) {
		if cancel, ok := c.Context().(func()); ok {
			cancel()
		}
		log.Println("❌ Socket disconnected:", c.ID())
	})

	return server
}
