package app

import (
	"bytes"
	"context"
	"testing"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/cleitonmarx/symbiont/introspection"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestMermaidGraphIntrospector_Introspect(t *testing.T) {
	introspector := MermaidGraphIntrospector{}

	report := introspection.Report{
		Configs: []introspection.ConfigAccess{
			{
				Key:         "KEY1",
				UsedDefault: true,
			},
		},
	}
	ctx := context.Background()

	err := introspector.Introspect(ctx, report)
	require.NoError(t, err)
	mermaidGraph, err := depend.ResolveNamed[string]("introspection-graph-mermaid")
	require.NoError(t, err)
	require.NotEmpty(t, mermaidGraph, "Mermaid graph should be registered as a named dependency")
}

func TestReportLoggerIntrospector_Introspect(t *testing.T) {
	t.Cleanup(depend.ClearContainer)

	var buf bytes.Buffer
	depend.Register(zerolog.New(&buf).Level(zerolog.DebugLevel))

	err := ReportLoggerIntrospector{}.Introspect(context.Background(), introspection.Report{
		Configs: []introspection.ConfigAccess{{Key: "HTTP_PORT", UsedDefault: true}},
	})
	require.NoError(t, err)
	require.Contains(t, buf.String(), `"key":"HTTP_PORT"`)
	require.Contains(t, buf.String(), `"configs":1`)
}

func TestReportLoggerIntrospector_Introspect_NoLogger(t *testing.T) {
	t.Cleanup(depend.ClearContainer)
	depend.ClearContainer()

	err := ReportLoggerIntrospector{}.Introspect(context.Background(), introspection.Report{})
	require.Error(t, err)
}
