package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/vuongmanhnghia/video-player/internal/catalog"
	"github.com/vuongmanhnghia/video-player/internal/commands"
	"github.com/vuongmanhnghia/video-player/internal/config"
	"github.com/vuongmanhnghia/video-player/internal/console"
	"github.com/vuongmanhnghia/video-player/internal/services"
	"github.com/vuongmanhnghia/video-player/pkg/logger"
)

const (
	greeting      = "Hello and welcome to YouTube, what would you like to do?"
	greetingHint  = "Enter HELP for list of available commands or EXIT to terminate."
	goodbye       = "YouTube has now terminated its execution. Thank you and goodbye!"
	shutdownGrace = 5 * time.Second
)

// Player wires the catalog, the session services and the console front end
type Player struct {
	config          *config.Config
	logger          *logger.Logger
	catalog         catalog.Catalog
	playbackService *services.PlaybackService
	playlistService *services.PlaylistService
	searchService   *services.SearchService
	metricsServer   *http.Server
}

// New creates a new Player instance
func New(cfg *config.Config, log *logger.Logger) (*Player, error) {
	c, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	log.WithFields(map[string]interface{}{
		"videos": c.Len(),
		"path":   cfg.CatalogPath,
	}).Info("Catalog loaded")

	seed := cfg.RandomSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Player{
		config:          cfg,
		logger:          log,
		catalog:         c,
		playbackService: services.NewPlaybackService(c, seed, log),
		playlistService: services.NewPlaylistService(c, log),
		searchService:   services.NewSearchService(c, cfg.SearchCacheSize, log),
	}, nil
}

// Start starts the optional metrics listener
func (p *Player) Start(ctx context.Context) error {
	if p.config.MetricsAddr == "" {
		return nil
	}

	p.metricsServer = &http.Server{
		Addr:         p.config.MetricsAddr,
		Handler:      p.router(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
		BaseContext:  func(_ net.Listener) context.Context { return ctx },
	}

	go func() {
		p.logger.WithField("addr", p.config.MetricsAddr).Info("Serving metrics")
		if err := p.metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			p.logger.WithError(err).Error("Metrics server failed")
		}
	}()

	return nil
}

// Run reads commands from in until EXIT, end of input or ctx is done.
// Responses go to out.
func (p *Player) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	con := console.New(in, out)
	defer con.Close()

	handler := commands.NewHandler(
		p.catalog,
		p.playbackService,
		p.playlistService,
		p.searchService,
		con,
		out,
		p.logger,
	)

	p.logger.WithFields(map[string]interface{}{
		"session":     handler.SessionID(),
		"interactive": con.Interactive(),
	}).Info("Session started")

	if p.config.ShowBanner {
		fmt.Fprintln(out, greeting)
		fmt.Fprintln(out, greetingHint)
	}

	err := p.loop(ctx, con, handler)

	if p.config.ShowBanner {
		fmt.Fprintln(out, goodbye)
	}

	p.logger.WithField("session", handler.SessionID()).Info("Session ended")
	return err
}

func (p *Player) loop(ctx context.Context, con *console.Console, handler *commands.Handler) error {
	for {
		if ctx.Err() != nil {
			return nil
		}

		con.Prompt()
		line, err := con.ReadLine(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) || ctx.Err() != nil {
				return nil
			}
			return err
		}

		if err := handler.Handle(ctx, line); err != nil {
			if errors.Is(err, commands.ErrExit) {
				return nil
			}
			return fmt.Errorf("failed to write response: %w", err)
		}
	}
}

// Stop shuts the metrics listener down
func (p *Player) Stop() {
	if p.metricsServer == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()

	p.logger.Info("Shutting down metrics server...")
	if err := p.metricsServer.Shutdown(ctx); err != nil {
		p.logger.WithError(err).Warn("Metrics server shutdown error")
	}
}
