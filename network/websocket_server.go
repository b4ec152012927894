package network

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/ftsell/colourizr/logging"
	"github.com/ftsell/colourizr/protocol"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	Subprotocols: []string{"colourizr"},
	CheckOrigin: func(_ *http.Request) bool {
		return true
	},
}

func handleWsConnection(ctx context.Context, conn *websocket.Conn, palette *protocol.Palette) {
	log := logging.Logger().With("transport", "ws", "remote", conn.RemoteAddr().String())
	log.Info("new connection")
	defer log.Info("connection closed")

	stop := context.AfterFunc(ctx, func() { _ = conn.Close() })
	defer stop()
	defer conn.Close()

	for {
		messageType, messageBytes, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() == nil && !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Warn("error receiving message", "err", err)
			}
			return
		}

		if messageType != websocket.TextMessage {
			_ = conn.WriteMessage(websocket.TextMessage, []byte("ERR invalid message received. send a text message\n"))
			continue
		}

		response := protocol.ParseAndHandleInput(strings.TrimRight(string(messageBytes), "\r\n"), palette)
		if err := conn.WriteMessage(websocket.TextMessage, []byte(response)); err != nil {
			log.Warn("error sending message", "err", err)
			return
		}
	}
}

// NewWebsocketHandler upgrades every request to a websocket speaking the
// line protocol, one command per text message.
func NewWebsocketHandler(palette *protocol.Palette) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if !websocket.IsWebSocketUpgrade(request) {
			writer.WriteHeader(http.StatusUpgradeRequired)
			_, _ = writer.Write([]byte("upgrade to websocket required"))
			return
		}

		conn, err := upgrader.Upgrade(writer, request, nil)
		if err != nil {
			logging.Logger().Warn("error upgrading http connection to websocket", "transport", "ws", "err", err)
			return
		}
		handleWsConnection(request.Context(), conn, palette)
	})
}

func StartWebsocketServer(ctx context.Context, port string, palette *protocol.Palette) error {
	server := &http.Server{
		Addr:              net.JoinHostPort("", port),
		Handler:           NewWebsocketHandler(palette),
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}
	stop := context.AfterFunc(ctx, func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	})
	defer stop()

	logging.Logger().Info("starting websocket (http) server", "transport", "ws", "port", port)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("cannot start http server: %w", err)
	}
	return nil
}
