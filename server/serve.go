//go:build !js
// +build !js

package main

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/simukka/brewfx/palette"
	"github.com/spf13/cobra"
)

//go:embed index.html
var indexHTML []byte

// LiquidView is a liquid profile with CSS colors.
type LiquidView struct {
	BaseColor      string  `json:"baseColor"`
	SecondaryColor string  `json:"secondaryColor"`
	Viscosity      float64 `json:"viscosity"`
	FlowSpeed      float64 `json:"flowSpeed"`
	FillLevel      float64 `json:"fillLevel"`
	FoamHeight     float64 `json:"foamHeight"`
	HasSwirl       bool    `json:"hasSwirl"`
}

// PaletteView is the resolved styling of one drink.
type PaletteView struct {
	Requested   string     `json:"requested"`
	ID          string     `json:"id"`
	Particles   []string   `json:"particles"`
	AccentLight string     `json:"accentLight"`
	AccentDark  string     `json:"accentDark"`
	Ramp        [5]string  `json:"ramp"`
	Liquid      LiquidView `json:"liquid"`
}

// NewPaletteView resolves id against model. Unknown ids get the default
// styling and report it in ID.
func NewPaletteView(model *palette.Model, id string) PaletteView {
	resolved := model.Resolve(id)
	colors := model.ParticleColors(resolved)
	hex := make([]string, len(colors))
	for i, c := range colors {
		hex[i] = c.Hex()
	}

	// liquid colors are on the 0-1 scale
	lp := model.LiquidProfile(resolved)
	accent := model.Accent(resolved)
	return PaletteView{
		Requested:   id,
		ID:          resolved,
		Particles:   hex,
		AccentLight: accent.Light,
		AccentDark:  accent.Dark,
		Ramp:        accent.Ramp,
		Liquid: LiquidView{
			BaseColor:      lp.BaseColor.Scale(255).Hex(),
			SecondaryColor: lp.SecondaryColor.Scale(255).Hex(),
			Viscosity:      lp.Viscosity,
			FlowSpeed:      lp.FlowSpeed,
			FillLevel:      lp.FillLevel,
			FoamHeight:     lp.FoamHeight,
			HasSwirl:       lp.HasSwirl,
		},
	}
}

// Server serves the site and its drink API.
type Server struct {
	logger  zerolog.Logger
	model   *palette.Model
	catalog *Catalog
	static  string
}

// NewServer creates a server. A nil catalog serves an empty menu.
func NewServer(logger zerolog.Logger, model *palette.Model, catalog *Catalog, static string) *Server {
	if catalog == nil {
		catalog = &Catalog{}
	}
	return &Server{logger: logger, model: model, catalog: catalog, static: static}
}

// Handler returns the routed, logged handler.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	files := http.FileServer(http.Dir(s.static))

	// Serve embedded index.html at root path
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/" || r.URL.Path == "/index.html" {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			w.Write(indexHTML)
			return
		}
		files.ServeHTTP(w, r)
	})

	mux.HandleFunc("GET /api/menu", s.handleMenu)
	mux.HandleFunc("GET /api/palette/{id}", s.handlePalette)
	mux.HandleFunc("GET /api/health", func(w http.ResponseWriter, r *http.Request) {
		s.writeJSON(w, map[string]string{"status": "healthy"})
	})

	return s.logRequests(mux)
}

func (s *Server) handleMenu(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]interface{}{
		"drinks": s.catalog.Menu(s.model),
	})
}

func (s *Server) handlePalette(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, NewPaletteView(s.model, r.PathValue("id")))
}

func (s *Server) writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error().Err(err).Msg("encode response")
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.logger.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", rec.status).
			Dur("took", time.Since(start)).
			Msg("request")
	})
}

// Run serves until ctx is cancelled, then drains open requests.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		errc <- srv.ListenAndServe()
	}()
	s.logger.Info().Str("addr", "http://localhost"+addr).Msg("brewfx server starting")

	select {
	case err := <-errc:
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("shutdown: %w", err)
	}
	s.logger.Info().Msg("brewfx server stopped")
	return nil
}

func newServeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the site, its assets and the drink API",
		RunE: func(cmd *cobra.Command, args []string) error {
			menu := a.v.GetString(keyMenu)
			catalog, err := LoadCatalog(menu)
			if err != nil {
				// The page still works without a menu
				a.logger.Warn().Err(err).Str("menu", menu).Msg("serving without catalog")
				catalog = nil
			} else if unthemed := catalog.Unthemed(palette.NewModel()); len(unthemed) > 0 {
				a.logger.Info().Strs("unthemed", unthemed).Msg("catalog drinks using default palette")
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			s := NewServer(a.logger, palette.NewModel(), catalog, a.v.GetString(keyStatic))
			return s.Run(ctx, fmt.Sprintf(":%d", a.v.GetInt(keyPort)))
		},
	}

	flags := cmd.Flags()
	flags.Int(keyPort, 8080, "HTTP server port")
	flags.String(keyStatic, ".", "directory to serve static files from")
	_ = a.v.BindPFlag(keyPort, flags.Lookup(keyPort))
	_ = a.v.BindPFlag(keyStatic, flags.Lookup(keyStatic))
	return cmd
}
