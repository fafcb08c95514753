package app

import (
	"github.com/cleitonmarx/symbiont"
	"github.com/cleitonmarx/symbiont-ai-chillerplant/internal/adapters/inbound/http"
	"github.com/cleitonmarx/symbiont-ai-chillerplant/internal/adapters/outbound/azureopenai"
	"github.com/cleitonmarx/symbiont-ai-chillerplant/internal/adapters/outbound/config"
	"github.com/cleitonmarx/symbiont-ai-chillerplant/internal/adapters/outbound/log"
	"github.com/cleitonmarx/symbiont-ai-chillerplant/internal/adapters/outbound/modelrunner"
	"github.com/cleitonmarx/symbiont-ai-chillerplant/internal/adapters/outbound/mongodb"
	"github.com/cleitonmarx/symbiont-ai-chillerplant/internal/adapters/outbound/openmeteo"
	"github.com/cleitonmarx/symbiont-ai-chillerplant/internal/adapters/outbound/pubsub"
	"github.com/cleitonmarx/symbiont-ai-chillerplant/internal/adapters/outbound/time"
	"github.com/cleitonmarx/symbiont-ai-chillerplant/internal/assistant"
	"github.com/cleitonmarx/symbiont-ai-chillerplant/internal/telemetry"
	"github.com/cleitonmarx/symbiont-ai-chillerplant/internal/usecases"
)

// NewChillerPlantApp creates the application with every component wired, hosting the HTTP API.
func NewChillerPlantApp(initializers ...symbiont.Initializer) *symbiont.App {
	return symbiont.NewApp().
		Initialize(initializers...).
		Initialize(
			&log.InitLogger{},
			&config.InitConfigProvider{},
			&telemetry.InitOpenTelemetry{},
			&telemetry.InitHttpClient{},
			&time.InitSiteClock{},
			&mongodb.InitMongoClient{},
			&mongodb.InitScheduleRepository{},
			&mongodb.InitTelemetryRepository{},
			&mongodb.InitMaintenanceRepository{},
			&pubsub.InitClient{},
			&pubsub.InitPublisher{},
			&openmeteo.InitClient{},
			&azureopenai.InitAssistantClient{},
			&modelrunner.InitAssistantClient{},

			&usecases.InitChillerScheduler{},
			&usecases.InitMaintenanceDesk{},
			&usecases.InitSystemPromptBuilder{},
			&assistant.InitToolRegistry{},

			&usecases.InitStreamChat{},
			&usecases.InitChangeChillerSchedule{},
			&usecases.InitSetMaintenanceFlag{},
		).
		Host(
			&http.ChillerPlantServer{},
		).
		Introspect(&MermaidGraphIntrospector{})
}

// NewToolCatalogApp wires only what the tool registry needs so the catalog can be
// listed without a model provider.
func NewToolCatalogApp(initializers ...symbiont.Initializer) *symbiont.App {
	return symbiont.NewApp().
		Initialize(initializers...).
		Initialize(
			&log.InitLogger{},
			&config.InitConfigProvider{},
			&telemetry.InitHttpClient{},
			&time.InitSiteClock{},
			&mongodb.InitMongoClient{},
			&mongodb.InitScheduleRepository{},
			&mongodb.InitTelemetryRepository{},
			&mongodb.InitMaintenanceRepository{},
			&pubsub.InitPublisher{},
			&openmeteo.InitClient{},
			&usecases.InitChillerScheduler{},
			&usecases.InitMaintenanceDesk{},
			&assistant.InitToolRegistry{},
		)
}
