// Command server runs the redstone circuit engine behind a websocket
// driver: it loads the block catalog and tuning config, constructs an
// engine.Engine, and serves it at /v1/ws until interrupted.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dustin/go-humanize"

	"redstonesim.dev/internal/catalog"
	"redstonesim.dev/internal/engine"
	"redstonesim.dev/internal/transport/ws"
)

func main() {
	var (
		addr       = flag.String("addr", ":8080", "http listen address")
		configDir  = flag.String("configs", "./configs", "config directory (blocks.json, tuning.yaml)")
		schemaDir  = flag.String("schemas", "./schemas", "json schema directory")
		tickHz     = flag.Int("tick-hz", 0, "override tuning.yaml tick_rate_hz (0: use config)")
		gridWidth  = flag.Int("grid-width", 0, "override tuning.yaml grid_width (0: use config)")
		gridHeight = flag.Int("grid-height", 0, "override tuning.yaml grid_height (0: use config)")
	)
	flag.Parse()

	logger := log.New(os.Stdout, "[server] ", log.LstdFlags|log.Lmicroseconds)

	cat, err := catalog.LoadCatalog(*configDir, *schemaDir)
	if err != nil {
		logger.Fatalf("load catalog: %v", err)
	}
	tune, err := catalog.LoadTuning(tuningPath(*configDir))
	if err != nil {
		logger.Fatalf("load tuning: %v", err)
	}
	if *tickHz > 0 {
		tune.TickRateHz = *tickHz
	}
	if *gridWidth > 0 {
		tune.GridWidth = *gridWidth
	}
	if *gridHeight > 0 {
		tune.GridHeight = *gridHeight
	}
	logger.Printf("loaded catalog: %d block ids (digest %s), grid %dx%d at %d Hz",
		len(cat.Palette), cat.Digest, tune.GridWidth, tune.GridHeight, tune.TickRateHz)

	eng := engine.New(tune.GridWidth, tune.GridHeight)
	server := ws.NewServer(eng, cat, tune.TickRateHz, logger)

	ctx, cancel := signalContext()
	defer cancel()
	go server.Run(ctx)

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(rw http.ResponseWriter, r *http.Request) {
		rw.WriteHeader(http.StatusOK)
		_, _ = rw.Write([]byte("ok"))
	})
	mux.HandleFunc("/v1/ws", server.Handler())

	srv := &http.Server{
		Addr:              *addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	start := time.Now()
	go func() {
		<-ctx.Done()
		logger.Printf("shutting down after %s uptime", humanize.Time(start))
		ctx2, cancel2 := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel2()
		_ = srv.Shutdown(ctx2)
	}()

	logger.Printf("listening on %s (tick period %s)", *addr, tickPeriod(tune.TickRateHz))
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatalf("ListenAndServe: %v", err)
	}
}

func tuningPath(configDir string) string {
	return fmt.Sprintf("%s/tuning.yaml", configDir)
}

func tickPeriod(hz int) time.Duration {
	if hz <= 0 {
		hz = 20
	}
	return time.Second / time.Duration(hz)
}

func signalContext() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())
	ch := make(chan os.Signal, 2)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-ch
		cancel()
	}()
	return ctx, cancel
}
