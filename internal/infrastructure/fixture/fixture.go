// Package fixture holds the static payloads served in mock mode and when an
// upstream provider fails. Every payload mirrors its provider's schema so the
// same normalizers apply to live and substituted data.
package fixture

import (
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/match-tracker/internal/domain/feed"
)

const (
	FootballHeadToHeadMock        = "Head-to-head mock data"
	FootballHeadToHeadUnavailable = "No head-to-head data available"
	CommentaryMock                = "No commentary available in mock data"
	CommentaryUnavailable         = "No commentary available"

	placeholderImage = "https://via.placeholder.com/150"
	day              = 24 * time.Hour
)

type Option func(*clock)

type clock struct {
	now func() time.Time
}

// WithClock pins the timestamps embedded in the fixtures.
func WithClock(now func() time.Time) Option {
	return func(c *clock) {
		if now != nil {
			c.now = now
		}
	}
}

func newClock(opts []Option) clock {
	c := clock{now: time.Now}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

func (c clock) at(offset time.Duration) string {
	return c.now().Add(offset).UTC().Format(time.RFC3339)
}

// Message builds an informational {"message": text} payload.
func Message(text string) feed.Payload {
	body, _ := encode(map[string]any{"message": text})
	return feed.NewPayload(feed.ShapeMessage, body)
}

// encode uses the std-compatible config so fixture bodies are byte-stable.
func encode(v any) ([]byte, error) {
	return sonic.ConfigStd.Marshal(v)
}

type object = map[string]any

func clone(in object) object {
	out := make(object, len(in))
	for key, value := range in {
		if nested, ok := value.(object); ok {
			out[key] = clone(nested)
			continue
		}
		out[key] = value
	}
	return out
}
