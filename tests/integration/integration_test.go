//go:build integration

package integration

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/cleitonmarx/symbiont-ai-chillerplant/internal/app"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const baseURL = "http://localhost:8080"

func TestMain(m *testing.M) {
	chillerApp := app.NewChillerPlantApp(
		&initEnvVars{
			envVars: map[string]string{
				"VAULT_ADDR":                  "http://localhost:8200",
				"VAULT_TOKEN":                 "root-token",
				"VAULT_MOUNT_PATH":            "secret",
				"VAULT_SECRET_PATH":           "chillerplant",
				"OTEL_EXPORTER_OTLP_TRACES_ENDPOINT": "-",
				"MONGODB_URI":                 "mongodb://localhost:27017",
				"PUBSUB_PROJECT_ID":           "-",
				"LLM_PROVIDER":                "modelrunner",
				"LLM_MODEL":                   "scripted",
				"OPEN_METEO_BASE_URL":         "http://localhost:1",
				"MCP_ENABLED":                 "true",
				"LOG_FORMAT":                  "console",
			},
		},
		&InitDockerCompose{},
		&InitFakeLLM{},
		&InitSeedData{},
	)

	cancelCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	shutdownCh := chillerApp.RunAsync(cancelCtx)

	err := chillerApp.WaitForReadiness(cancelCtx, 10*time.Minute)
	if err != nil {
		cancel()
		log.Fatalf("ChillerPlant app failed to become ready: %v", err)
	}

	code := m.Run()

	cancel()

	select {
	case <-time.After(1 * time.Minute):
		log.Fatalf("ChillerPlant app did not shut down in time")
	case err = <-shutdownCh:
		if err != nil {
			log.Fatalf("ChillerPlant app shutdown with error: %v", err)
		} else {
			log.Printf("ChillerPlant app shut down gracefully")
		}
	}

	os.Exit(code)
}

func post(t *testing.T, path, body string) (*http.Response, []byte) {
	t.Helper()
	resp, err := http.Post(baseURL+path, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close() //nolint:errcheck
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, b
}

func TestChatStreaming_ToolCall(t *testing.T) {
	resp, body := post(t, "/api/chat_streaming?protocol=data",
		`{"messages":[{"role":"user","content":"What is the weekday schedule?"}]}`)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "v1", resp.Header.Get("x-vercel-ai-data-stream"))

	var prefixes []string
	var result struct {
		ToolName string `json:"toolName"`
		Result   struct {
			NormalChiller   []map[string]*string `json:"normal_chiller"`
			ExcludedChiller map[string]any       `json:"excluded_chiller"`
		} `json:"result"`
	}
	sc := bufio.NewScanner(strings.NewReader(string(body)))
	for sc.Scan() {
		line := sc.Text()
		prefix, payload, ok := strings.Cut(line, ":")
		require.True(t, ok, "malformed line %q", line)
		prefixes = append(prefixes, prefix)
		if prefix == "a" {
			require.NoError(t, json.Unmarshal([]byte(payload), &result))
		}
		if prefix == "e" {
			assert.JSONEq(t,
				`{"finishReason":"tool-calls","usage":{"promptTokens":120,"completionTokens":18},"isContinued":false}`,
				payload)
		}
	}

	assert.Equal(t, []string{"9", "a", "e"}, prefixes)
	assert.Equal(t, "get_schedule", result.ToolName)
	require.Len(t, result.Result.NormalChiller, 1)
	assert.Equal(t, "07:00", *result.Result.NormalChiller[0]["start"])
	assert.Contains(t, result.Result.ExcludedChiller, "chiller_3")
}

func TestChatStreaming_AnswerAfterToolResult(t *testing.T) {
	resp, body := post(t, "/api/chat_streaming?protocol=text", `{"messages":[
		{"role":"user","content":"What is the weekday schedule?"},
		{"role":"assistant","content":"","toolInvocations":[
			{"toolCallId":"call_1","toolName":"get_schedule","args":{"profile_type":"weekday"},"result":{"normal_chiller":[]}}
		]}
	]}`)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "The weekday schedule is loaded.", string(body))
}

func TestScheduleChange(t *testing.T) {
	change := `{"chiller_id":"chiller_3","profile_type":"weekday",
		"old_schedule":[{"start":null,"stop":null}],
		"new_schedule":[{"start":"08:00","stop":"18:00"}]}`

	resp, body := post(t, "/api/chiller_plant/chiller_sequence_schedule_change", change)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	assert.JSONEq(t, `{"success":true,"message":"Successfully updated schedule for CH-3",
		"data":{"chiller_id":"chiller_3","new_schedule":[{"start":"08:00","stop":"18:00"}]}}`, string(body))

	// the stored schedule no longer matches old_schedule
	resp, body = post(t, "/api/chiller_plant/chiller_sequence_schedule_change", change)
	assert.Equal(t, http.StatusConflict, resp.StatusCode, string(body))

	resp, body = post(t, "/api/chiller_plant/chiller_sequence_schedule_change", `{"chiller_id":"chiller_1",
		"profile_type":"weekday","old_schedule":[],"new_schedule":[{"start":"08:00","stop":"18:00"}]}`)
	assert.Equal(t, http.StatusConflict, resp.StatusCode, string(body))

	resp, body = post(t, "/api/chiller_plant/chiller_sequence_schedule_change", `{"chiller_id":"chiller_3",
		"profile_type":"weekday","old_schedule":[],"new_schedule":[{"start":"24:00","stop":"18:00"}]}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode, string(body))
	assert.Contains(t, string(body), "Invalid time format")
}

func TestMaintenanceFlag_BlocksScheduleChange(t *testing.T) {
	resp, body := post(t, "/api/chiller_plant/device_maintenance_flag",
		`{"device_id":"chiller_6","maintenance_flag":true,"reporter_name":"Somchai","technician_name":"Niran","reason":"Vibration"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

	resp, body = post(t, "/api/chiller_plant/chiller_sequence_schedule_change", `{"chiller_id":"chiller_6",
		"profile_type":"weekday","old_schedule":[{"start":"09:00","stop":"17:00"}],"new_schedule":[{"start":"10:00","stop":"16:00"}]}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, string(body), "Chiller is currently in maintenance mode")

	resp, body = post(t, "/api/chiller_plant/device_maintenance_flag",
		`{"device_id":["chiller_6"],"maintenance_flag":false,"reporter_name":"Somchai"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

	resp, body = post(t, "/api/chiller_plant/device_maintenance_flag",
		`{"device_id":"pump_9","maintenance_flag":true,"reporter_name":"Somchai"}`)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode, string(body))
}
