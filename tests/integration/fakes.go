//go:build integration

package integration

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// InitFakeLLM serves a scripted OpenAI-compatible SSE endpoint and points the
// model runner provider at it. A conversation whose last message is a tool result
// gets a text answer; anything else gets a get_schedule tool call.
type InitFakeLLM struct {
	server *httptest.Server
}

func (i *InitFakeLLM) Initialize(ctx context.Context) (context.Context, error) {
	i.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Messages []struct {
				Role string `json:"role"`
			} `json:"messages"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		var chunks []string
		if n := len(req.Messages); n > 0 && req.Messages[n-1].Role == "tool" {
			chunks = []string{
				`{"choices":[{"index":0,"delta":{"role":"assistant","content":"The weekday schedule is loaded."}}]}`,
				`{"choices":[{"index":0,"delta":{},"finish_reason":"stop"}]}`,
			}
		} else {
			chunks = []string{
				`{"choices":[{"index":0,"delta":{"role":"assistant","content":null,"tool_calls":[{"index":0,"id":"call_1","type":"function","function":{"name":"get_schedule","arguments":""}}]}}]}`,
				`{"choices":[{"index":0,"delta":{"content":null,"tool_calls":[{"index":0,"function":{"arguments":"{\"profile_type\":"}}]}}]}`,
				`{"choices":[{"index":0,"delta":{"content":null,"tool_calls":[{"index":0,"function":{"arguments":"\"weekday\"}"}}]}}]}`,
				`{"choices":[{"index":0,"delta":{},"finish_reason":"tool_calls"}]}`,
			}
		}
		chunks = append(chunks, `{"choices":[],"usage":{"prompt_tokens":120,"completion_tokens":18,"total_tokens":138}}`)

		w.Header().Set("Content-Type", "text/event-stream")
		for _, c := range chunks {
			_, _ = fmt.Fprintf(w, "data: %s\n\n", c)
		}
		_, _ = fmt.Fprint(w, "data: [DONE]\n\n")
	}))

	if err := os.Setenv("LLM_MODEL_HOST", i.server.URL); err != nil {
		return ctx, err
	}
	return ctx, nil
}

func (i *InitFakeLLM) Close() {
	if i.server != nil {
		i.server.Close()
	}
}

// InitSeedData writes the schedule settings, a telemetry snapshot and the
// maintenance documents the scenarios rely on.
type InitSeedData struct {
	URI string `config:"MONGODB_URI"`
}

func (i *InitSeedData) Initialize(ctx context.Context) (context.Context, error) {
	client, err := mongo.Connect(options.Client().ApplyURI(i.URI))
	if err != nil {
		return ctx, err
	}
	defer client.Disconnect(context.Background()) //nolint:errcheck

	seedCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	schedule := client.Database("automation_settings").Collection("chiller_plant_schedule_setting")
	_, err = schedule.ReplaceOne(seedCtx,
		bson.D{{Key: "_id", Value: "chiller_plant_schedule_setting"}},
		bson.M{
			"_id":     "chiller_plant_schedule_setting",
			"version": 1,
			"profile": bson.M{
				"weekday": bson.M{
					"normal_chiller": bson.A{bson.M{"start": "07:00", "stop": "19:00"}},
					"excluded_chiller": bson.M{
						"chiller_3": bson.A{bson.M{"start": nil, "stop": nil}},
						"chiller_6": bson.A{bson.M{"start": "09:00", "stop": "17:00"}},
					},
				},
			},
		},
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return ctx, fmt.Errorf("seed schedule: %w", err)
	}

	realtime := client.Database("realtime_data").Collection("cp10")
	_, err = realtime.InsertOne(seedCtx, bson.M{
		"timestamp": time.Now().UTC(),
		"raw_data": bson.M{
			"chiller_1": bson.M{"status_read": 1, "chilled_water_supply_temperature": 6.8},
			"chiller_3": bson.M{"status_read": 0},
		},
	})
	if err != nil {
		return ctx, fmt.Errorf("seed telemetry: %w", err)
	}

	maintenance := client.Database("maintenance").Collection("equipment_maintenance")
	for _, id := range []string{"chiller_1", "chiller_6"} {
		_, err = maintenance.ReplaceOne(seedCtx,
			bson.D{{Key: "device_id", Value: id}},
			bson.M{
				"device_id":           id,
				"status":              bson.M{"under_maintenance": false},
				"maintenance_history": bson.A{},
			},
			options.Replace().SetUpsert(true),
		)
		if err != nil {
			return ctx, fmt.Errorf("seed maintenance %s: %w", id, err)
		}
	}
	return ctx, nil
}
