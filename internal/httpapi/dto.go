package httpapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"

	"github.com/buger/jsonparser"

	"github.com/katalvlaran/mapcolor/coloring"
	"github.com/katalvlaran/mapcolor/core"
)

// Wire field names of the coloring endpoint.
const (
	fieldMap       = "mapa_regiones"
	fieldNumColors = "num_colores"

	messageDone = "Proceso completado"
	healthOK    = "Servicio de coloreo operativo"

	// The unprefixed routes answer with the texts of the first backend.
	legacyMessageDone = "Proceso de coloreo ejecutado."
	legacyHealthOK    = "Servicio de Backtracking operativo y listo."

	// maxExactInt bounds integral num_colores values sent as JSON floats.
	maxExactInt = 1 << 53
)

// solveRequest is the decoded body of POST /api/resolver_coloreo.
type solveRequest struct {
	Map       *core.Map
	NumColors int
}

// decodeSolveRequest extracts the map in document key order. The body must
// already have passed schema validation.
func decodeSolveRequest(body []byte) (solveRequest, error) {
	raw, _, _, err := jsonparser.Get(body, fieldMap)
	if err != nil {
		return solveRequest{}, fmt.Errorf("%s: %w", fieldMap, err)
	}
	m, err := core.ParseJSON(raw)
	if err != nil {
		return solveRequest{}, fmt.Errorf("%s: %w", fieldMap, err)
	}
	// 2 and 2.0 are both accepted; 2.5 is not.
	f, err := jsonparser.GetFloat(body, fieldNumColors)
	if err != nil {
		return solveRequest{}, fmt.Errorf("%s: %w", fieldNumColors, err)
	}
	if f != math.Trunc(f) || math.Abs(f) > maxExactInt {
		return solveRequest{}, fmt.Errorf("%s: %v is not a whole number", fieldNumColors, f)
	}
	k := int64(f)

	return solveRequest{Map: m, NumColors: int(k)}, nil
}

// stepDTO is one animacion_pasos entry. ColorAttempt is null on undo entries.
type stepDTO struct {
	Region       string `json:"region"`
	ColorAttempt *int   `json:"color_intento"`
	Valid        bool   `json:"valido"`
	Backtrack    bool   `json:"retroceso"`
}

type solveResponse struct {
	Message    string            `json:"mensaje"`
	Solved     bool              `json:"solucion_encontrada"`
	Assignment orderedAssignment `json:"asignacion_final"`
	Steps      []stepDTO         `json:"animacion_pasos"`
}

type healthResponse struct {
	Status string `json:"estado"`
}

type errorResponse struct {
	Detail string `json:"detail"`
}

// orderedAssignment encodes an assignment with keys in region order rather
// than the sorted order encoding/json uses for maps. A nil assignment is null.
type orderedAssignment struct {
	order []string
	a     coloring.Assignment
}

// MarshalJSON implements json.Marshaler.
func (o orderedAssignment) MarshalJSON() ([]byte, error) {
	if o.a == nil {
		return []byte("null"), nil
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true
	for _, id := range o.order {
		c, ok := o.a[id]
		if !ok {
			continue
		}
		if !first {
			buf.WriteByte(',')
		}
		first = false
		key, err := json.Marshal(id)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		fmt.Fprintf(&buf, ":%d", int(c))
	}
	buf.WriteByte('}')

	return buf.Bytes(), nil
}

func newSolveResponse(message string, order []string, res *coloring.Result) solveResponse {
	steps := make([]stepDTO, len(res.Trace))
	for i, s := range res.Trace {
		steps[i] = stepDTO{Region: s.Region, Valid: s.Accepted, Backtrack: s.Undo}
		if !s.Undo {
			c := int(s.Color)
			steps[i].ColorAttempt = &c
		}
	}

	return solveResponse{
		Message:    message,
		Solved:     res.Solved,
		Assignment: orderedAssignment{order: order, a: res.Assignment},
		Steps:      steps,
	}
}
