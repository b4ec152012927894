package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/akamensky/argparse"
	"github.com/ftsell/colourizr/colour"
	"github.com/ftsell/colourizr/logging"
	"github.com/ftsell/colourizr/network"
	"github.com/ftsell/colourizr/protocol"
	"golang.org/x/sync/errgroup"
)

const (
	stateInterval    = 100 * time.Millisecond
	snapshotInterval = 10 * time.Second
)

type config struct {
	tcpPort       string
	websocketPort string
	udpPort       string
	snapshotFile  *os.File
	newPalette    bool
	paletteSize   uint
	background    colour.Value
	verbose       bool
}

func main() {
	cfg, err := parseArguments(os.Args)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	level := slog.LevelInfo
	if cfg.verbose {
		level = slog.LevelDebug
	}
	logging.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		logging.Logger().Error("server stopped", "err", err)
		os.Exit(1)
	}
}

func parseArguments(args []string) (*config, error) {
	parser := argparse.NewParser("colourizr", "a colour conversion service (server)")

	tcpPort := parser.String("t", "tcp", &argparse.Options{
		Help: "Listen for TCP connections on the specified port",
	})
	websocketPort := parser.String("w", "websocket", &argparse.Options{
		Help: "Listen for Websocket connections on the specified port",
	})
	udpPort := parser.String("u", "udp", &argparse.Options{
		Help: "Listen for UDP messages on the specified port",
	})
	snapshotFile := parser.File("f", "file", os.O_RDWR|os.O_CREATE, 0640, &argparse.Options{
		Help: "Use this file to periodically save the palette and load from this file at startup if it contains valid data",
	})
	newPalette := parser.Flag("n", "new", &argparse.Options{
		Help: "Create a new palette even if --file parameter is given as well. " +
			"Creating a new palette is the default when no --file argument is given.",
	})
	size := parser.Int("s", "size", &argparse.Options{
		Help:    "Number of swatches in the palette",
		Default: 256,
	})
	background := parser.String("c", "colour", &argparse.Options{
		Help:    "Initial colour of every swatch in a new palette",
		Default: "black",
	})
	verbose := parser.Flag("v", "verbose", &argparse.Options{
		Help: "Log every handled command",
	})

	if err := parser.Parse(args); err != nil {
		return nil, errors.New(parser.Usage(err))
	}

	if *size < 0 || *size > protocol.MaxPaletteSize {
		return nil, errors.New(parser.Usage(fmt.Sprintf("Palette size must be between 0 and %d", protocol.MaxPaletteSize)))
	}

	backgroundColour, err := protocol.ColorFromString(*background)
	if err != nil {
		return nil, errors.New(parser.Usage(fmt.Sprintf("Invalid palette colour: %v", err)))
	}

	cfg := &config{
		tcpPort:       *tcpPort,
		websocketPort: *websocketPort,
		udpPort:       *udpPort,
		newPalette:    *newPalette,
		paletteSize:   uint(*size),
		background:    backgroundColour,
		verbose:       *verbose,
	}
	if *snapshotFile != (os.File{}) {
		cfg.snapshotFile = snapshotFile
	}
	return cfg, nil
}

func run(ctx context.Context, cfg *config) error {
	palette := initPalette(cfg)
	palette.CalculateStates()

	group, ctx := errgroup.WithContext(ctx)

	if cfg.tcpPort != "" {
		group.Go(func() error { return network.StartTcpServer(ctx, cfg.tcpPort, palette) })
	}
	if cfg.websocketPort != "" {
		group.Go(func() error { return network.StartWebsocketServer(ctx, cfg.websocketPort, palette) })
	}
	if cfg.udpPort != "" {
		group.Go(func() error { return network.StartUdpServer(ctx, cfg.udpPort, palette) })
	}

	group.Go(func() error {
		paletteStateWorker(ctx, time.NewTicker(stateInterval), palette)
		return nil
	})

	if cfg.snapshotFile != nil {
		group.Go(func() error {
			paletteFileSnapshotWorker(ctx, time.NewTicker(snapshotInterval), palette, cfg.snapshotFile)
			return nil
		})
	}

	return group.Wait()
}

func initPalette(cfg *config) *protocol.Palette {
	log := logging.Logger()
	if cfg.snapshotFile != nil && !cfg.newPalette {
		palette, err := protocol.NewPaletteFromSnapshot(cfg.snapshotFile, cfg.paletteSize)
		if err == nil {
			log.Info("loaded palette from snapshot", "file", cfg.snapshotFile.Name(), "size", cfg.paletteSize)
			return palette
		}
		log.Warn("could not read palette snapshot, initializing new palette instead", "err", err)
	}

	log.Info("initialized new palette", "size", cfg.paletteSize, "colour", cfg.background.String())
	return protocol.NewPalette(cfg.paletteSize, cfg.background)
}

func paletteStateWorker(ctx context.Context, ticker *time.Ticker, palette *protocol.Palette) {
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			palette.CalculateStates()
		}
	}
}

func paletteFileSnapshotWorker(ctx context.Context, ticker *time.Ticker, palette *protocol.Palette, file *os.File) {
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			writeSnapshot(palette, file)
			return
		case <-ticker.C:
			writeSnapshot(palette, file)
		}
	}
}

func writeSnapshot(palette *protocol.Palette, file *os.File) {
	if err := palette.WriteToFile(file); err != nil {
		logging.Logger().Warn("could not write snapshot to file", "file", file.Name(), "err", err)
	}
}
