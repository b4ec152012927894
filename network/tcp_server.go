package network

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"

	"github.com/ftsell/colourizr/logging"
	"github.com/ftsell/colourizr/protocol"
	"github.com/ftsell/colourizr/util"
)

func handleTcpConnection(ctx context.Context, connection net.Conn, palette *protocol.Palette) {
	log := logging.Logger().With("transport", "tcp", "remote", connection.RemoteAddr().String())
	log.Info("new connection")
	defer log.Info("connection closed")

	stop := context.AfterFunc(ctx, func() { _ = connection.Close() })
	defer stop()
	defer connection.Close()

	reader := util.NewLineReader(connection)
	for {
		input, err := reader.ReadLine()
		if errors.Is(err, util.ErrLineTooLong) {
			log.Warn("dropping oversized line")
			continue
		}
		if err != nil {
			if !errors.Is(err, io.EOF) && !errors.Is(err, net.ErrClosed) {
				log.Warn("error reading", "err", err)
			}
			return
		}

		response := protocol.ParseAndHandleInput(input, palette)
		log.Debug("handled command", "input", input)
		if _, err := io.WriteString(connection, response); err != nil {
			log.Warn("error writing", "err", err)
			return
		}
	}
}

// ServeTcp accepts connections on ln until ctx is cancelled.
func ServeTcp(ctx context.Context, ln net.Listener, palette *protocol.Palette) error {
	log := logging.Logger().With("transport", "tcp")
	stop := context.AfterFunc(ctx, func() { _ = ln.Close() })
	defer stop()
	defer ln.Close()

	log.Info("accepting connections", "addr", ln.Addr().String())
	for {
		conn, err := ln.Accept()
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, net.ErrClosed) {
				return nil
			}
			log.Warn("could not accept new connection", "err", err)
			continue
		}
		go handleTcpConnection(ctx, conn, palette)
	}
}

func StartTcpServer(ctx context.Context, port string, palette *protocol.Palette) error {
	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", net.JoinHostPort("", port))
	if err != nil {
		return fmt.Errorf("could not start tcp listener on port %v: %w", port, err)
	}
	return ServeTcp(ctx, ln, palette)
}
