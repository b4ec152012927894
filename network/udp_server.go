package network

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/ftsell/colourizr/logging"
	"github.com/ftsell/colourizr/protocol"
	"github.com/ftsell/colourizr/util"
)

// maxDatagramSize is the largest UDP payload over IPv4.
const maxDatagramSize = 65507

// ServeUdp answers every command in a datagram with one reply datagram to
// the sender.
func ServeUdp(ctx context.Context, conn net.PacketConn, palette *protocol.Palette) error {
	log := logging.Logger().With("transport", "udp")
	stop := context.AfterFunc(ctx, func() { _ = conn.Close() })
	defer stop()
	defer conn.Close()

	log.Info("listening for datagram packets", "addr", conn.LocalAddr().String())
	buffer := make([]byte, maxDatagramSize)
	for {
		n, addr, err := conn.ReadFrom(buffer)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, net.ErrClosed) {
				return nil
			}
			log.Warn("could not receive packet", "err", err)
			continue
		}

		var response strings.Builder
		for _, line := range util.Lines(buffer[:n]) {
			response.WriteString(protocol.ParseAndHandleInput(line, palette))
		}
		if response.Len() == 0 {
			continue
		}
		if _, err := conn.WriteTo([]byte(response.String()), addr); err != nil {
			log.Warn("could not send reply", "remote", addr.String(), "err", err)
		}
	}
}

func StartUdpServer(ctx context.Context, port string, palette *protocol.Palette) error {
	var lc net.ListenConfig
	conn, err := lc.ListenPacket(ctx, "udp", net.JoinHostPort("", port))
	if err != nil {
		return fmt.Errorf("could not start udp listener on port %v: %w", port, err)
	}
	return ServeUdp(ctx, conn, palette)
}
