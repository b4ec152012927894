package network

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ftsell/colourizr/colour"
	"github.com/ftsell/colourizr/protocol"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWebsocketHandler(t *testing.T) {
	palette := protocol.NewPalette(1, colour.Default)
	server := httptest.NewServer(NewWebsocketHandler(palette))
	defer server.Close()

	url := "ws" + strings.TrimPrefix(server.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("CONVERT rgba hsla(120,100%,50%,0.2)\n")))
	messageType, message, err := conn.ReadMessage()
	require.NoError(t, err)
	assert.Equal(t, websocket.TextMessage, messageType)
	assert.Equal(t, "rgba rgb(0,255,0,0.2)\n", string(message))

	require.NoError(t, conn.WriteMessage(websocket.BinaryMessage, []byte{1, 2, 3}))
	_, message, err = conn.ReadMessage()
	require.NoError(t, err)
	assert.Contains(t, string(message), "ERR invalid message received")
}

func TestWebsocketHandlerRequiresUpgrade(t *testing.T) {
	server := httptest.NewServer(NewWebsocketHandler(protocol.NewPalette(1, colour.Default)))
	defer server.Close()

	response, err := http.Get(server.URL)
	require.NoError(t, err)
	defer response.Body.Close()
	assert.Equal(t, http.StatusUpgradeRequired, response.StatusCode)
}
