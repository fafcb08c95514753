package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/cleitonmarx/symbiont-ai-chillerplant/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-chillerplant/internal/telemetry"
	"github.com/cleitonmarx/symbiont-ai-chillerplant/internal/usecases"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
)

// ChillerPlantServer is the HTTP API consumed by the chat UI.
type ChillerPlantServer struct {
	Port                         int                            `config:"HTTP_PORT" default:"8080"`
	MCPEnabled                   bool                           `config:"MCP_ENABLED" default:"false"`
	Logger                       zerolog.Logger                 `resolve:""`
	StreamChatUseCase            usecases.StreamChat            `resolve:""`
	ChangeChillerScheduleUseCase usecases.ChangeChillerSchedule `resolve:""`
	SetMaintenanceFlagUseCase    usecases.SetMaintenanceFlag    `resolve:""`
	ToolRegistry                 domain.ToolRegistry            `resolve:""`
}

// Routes builds the router with every endpoint and the middleware chain.
func (api ChillerPlantServer) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(api.Logger))
	r.Use(telemetry.RouteNamer)

	// Register introspection endpoint for debugging and testing purposes
	r.Get("/introspect", IntrospectHandler)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/chat_streaming", api.StreamChat)
		r.Post("/chat", api.Chat)
		r.Route("/chiller_plant", func(r chi.Router) {
			r.Post("/chiller_sequence_schedule_change", api.ChangeChillerSchedule)
			r.Post("/device_maintenance_flag", api.SetDeviceMaintenanceFlag)
		})
	})

	if api.MCPEnabled {
		r.Handle("/mcp", newMCPHandler(api.ToolRegistry, api.Logger))
	}

	h := telemetry.Middleware("chillerplant-api")(r)

	// Apply CORS at the top-level so preflight requests hit it, too.
	return cors.AllowAll().Handler(h)
}

// Run starts the HTTP server and stops it when ctx is cancelled.
func (api ChillerPlantServer) Run(ctx context.Context) error {
	s := &http.Server{
		Handler:           api.Routes(),
		Addr:              fmt.Sprintf(":%d", api.Port),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		api.Logger.Info().Int("port", api.Port).Bool("mcp", api.MCPEnabled).Msg("ChillerPlantServer: listening")
		errCh <- s.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err := s.Shutdown(shutdownCtx)
		if err != nil {
			api.Logger.Error().Err(err).Msg("ChillerPlantServer: error during shutdown")
		} else {
			api.Logger.Info().Msg("ChillerPlantServer: stopped")
		}
		return err
	case err := <-errCh:
		return err
	}
}

// IsReady checks if the ChillerPlantServer is ready by performing a health check.
func (api ChillerPlantServer) IsReady(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("http://localhost:%d/healthz", api.Port), nil)
	if err != nil {
		return err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	return nil
}
