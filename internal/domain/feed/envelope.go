package feed

import (
	sonic "github.com/bytedance/sonic"
)

type Record = map[string]any

// Decode parses a JSON object body. Anything else yields ok=false.
func Decode(body []byte) (Record, bool) {
	if len(body) == 0 {
		return nil, false
	}
	var out Record
	if err := sonic.Unmarshal(body, &out); err != nil || out == nil {
		return nil, false
	}
	return out, true
}

// Sniff returns the event collection of an untagged body: a "response"
// array wins, then "matches", then "data", otherwise nothing.
func Sniff(body []byte) []Record {
	root, ok := Decode(body)
	if !ok {
		return nil
	}
	if items, ok := root["response"].([]any); ok {
		return records(items)
	}
	for _, key := range []string{"matches", "data"} {
		if items, ok := root[key].([]any); ok {
			return records(items)
		}
	}
	return nil
}

// Records returns the event collection of p using its shape tag. An
// untagged payload falls back to Sniff. A tagged payload whose envelope is
// missing yields an empty list instead of being parsed as another shape.
func Records(p Payload) []Record {
	root, ok := Decode(p.Body)
	if !ok {
		return nil
	}
	switch p.Shape {
	case ShapeBasketball:
		items, _ := root["response"].([]any)
		return records(items)
	case ShapeFootball, ShapeCricket:
		items, _ := root["matches"].([]any)
		return records(items)
	case ShapeMessage:
		return nil
	default:
		return Sniff(p.Body)
	}
}

// Message extracts the informational text of a message payload.
func Message(p Payload) string {
	root, ok := Decode(p.Body)
	if !ok {
		return ""
	}
	msg, _ := root["message"].(string)
	return msg
}

func records(items []any) []Record {
	out := make([]Record, 0, len(items))
	for _, item := range items {
		if rec, ok := item.(map[string]any); ok {
			out = append(out, rec)
		}
	}
	return out
}
