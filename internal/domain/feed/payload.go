package feed

import "github.com/riskibarqy/match-tracker/internal/domain/sport"

// Shape tags a payload with the provider schema that produced it. It is set
// by the code path that fetched or substituted the payload, never inferred.
type Shape string

const (
	ShapeUnknown    Shape = ""
	ShapeFootball   Shape = "football"
	ShapeBasketball Shape = "basketball"
	ShapeCricket    Shape = "cricket"
	// ShapeMessage is an informational {"message": "..."} body.
	ShapeMessage Shape = "message"
)

func ShapeOf(s sport.Sport) Shape {
	switch s {
	case sport.Football:
		return ShapeFootball
	case sport.Basketball:
		return ShapeBasketball
	case sport.Cricket:
		return ShapeCricket
	default:
		return ShapeUnknown
	}
}

// Provenance tells callers where a payload came from.
type Provenance string

const (
	ProvenanceLive     Provenance = "live"
	ProvenanceMock     Provenance = "mock"
	ProvenanceFallback Provenance = "fallback"
)

// Payload is a provider response body kept verbatim alongside its shape.
type Payload struct {
	Shape Shape  `json:"shape"`
	Body  []byte `json:"body"`
}

func NewPayload(shape Shape, body []byte) Payload {
	return Payload{Shape: shape, Body: body}
}

type Result struct {
	Payload    Payload    `json:"payload"`
	Provenance Provenance `json:"provenance"`
}

func (r Result) IsFallback() bool {
	return r.Provenance == ProvenanceFallback
}
