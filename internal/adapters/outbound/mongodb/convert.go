package mongodb

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// plain turns decoded BSON values into JSON friendly Go values.
func plain(v any) any {
	switch val := v.(type) {
	case bson.D:
		m := make(map[string]any, len(val))
		for _, e := range val {
			m[e.Key] = plain(e.Value)
		}
		return m
	case bson.M:
		m := make(map[string]any, len(val))
		for k, e := range val {
			m[k] = plain(e)
		}
		return m
	case map[string]any:
		m := make(map[string]any, len(val))
		for k, e := range val {
			m[k] = plain(e)
		}
		return m
	case bson.A:
		s := make([]any, len(val))
		for i, e := range val {
			s[i] = plain(e)
		}
		return s
	case []any:
		s := make([]any, len(val))
		for i, e := range val {
			s[i] = plain(e)
		}
		return s
	case bson.ObjectID:
		return val.Hex()
	case bson.DateTime:
		return val.Time().UTC()
	case bson.Decimal128:
		return val.String()
	default:
		return v
	}
}

// toTime accepts the timestamp representations found in maintenance documents.
func toTime(v any, parse func(string) (time.Time, bool)) *time.Time {
	switch val := v.(type) {
	case bson.DateTime:
		t := val.Time().UTC()
		return &t
	case time.Time:
		return &val
	case string:
		if val == "" {
			return nil
		}
		t, ok := parse(val)
		if !ok {
			return nil
		}
		return &t
	default:
		return nil
	}
}
