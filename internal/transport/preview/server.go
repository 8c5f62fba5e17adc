// Package preview serves computed sample tiles to external viewers over a
// websocket. The server is read-only glue: it owns a seed and a river
// sampler and answers tile requests, nothing else.
package preview

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/lebowski36/Voxel-Castle-sub002/internal/worldgen/hydrology"
	"github.com/lebowski36/Voxel-Castle-sub002/internal/worldgen/terrain"
)

const (
	maxTileSamples = 1 << 20
	writeTimeout   = 10 * time.Second
	readTimeout    = 120 * time.Second
)

// TileRequest is the single client message.
type TileRequest struct {
	Type   string  `json:"type"` // "TILE"
	Kind   string  `json:"kind"` // "height", "temperature", "humidity", "precipitation", "rivers"
	X0     float64 `json:"x0"`
	Z0     float64 `json:"z0"`
	Width  int     `json:"width"`
	Height int     `json:"height"`
	Step   float64 `json:"step"`
}

// TileResponse carries the computed grid back.
type TileResponse struct {
	Type    string    `json:"type"` // "TILE"
	Kind    string    `json:"kind"`
	X0      float64   `json:"x0"`
	Z0      float64   `json:"z0"`
	Width   int       `json:"width"`
	Height  int       `json:"height"`
	Step    float64   `json:"step"`
	Seed    uint64    `json:"seed"`
	Samples []float64 `json:"samples"`
}

// ErrorResponse reports a rejected request; the connection stays open.
type ErrorResponse struct {
	Type    string `json:"type"` // "ERROR"
	Message string `json:"message"`
}

// Server answers tile requests for one world seed.
type Server struct {
	seed    uint64
	workers int
	rivers  *hydrology.Rivers
	log     *log.Logger

	upgrader websocket.Upgrader
}

// NewServer builds a preview server. rivers may be shared with other
// consumers; its cache handles concurrent access.
func NewServer(seed uint64, workers int, rivers *hydrology.Rivers, logger *log.Logger) *Server {
	return &Server{
		seed:    seed,
		workers: workers,
		rivers:  rivers,
		log:     logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  64 * 1024,
			WriteBufferSize: 64 * 1024,
			CheckOrigin:     func(r *http.Request) bool { return true }, // dev default
		},
	}
}

// Handler upgrades and serves tile requests until the client goes away.
func (s *Server) Handler() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		conn, err := s.upgrader.Upgrade(rw, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		for {
			_ = conn.SetReadDeadline(time.Now().Add(readTimeout))
			_, msg, err := conn.ReadMessage()
			if err != nil {
				return
			}

			var req TileRequest
			if err := json.Unmarshal(msg, &req); err != nil || req.Type != "TILE" {
				s.reply(conn, ErrorResponse{Type: "ERROR", Message: "expected a TILE request"})
				continue
			}
			resp, errMsg := s.computeTile(req)
			if errMsg != "" {
				s.reply(conn, ErrorResponse{Type: "ERROR", Message: errMsg})
				continue
			}
			s.reply(conn, resp)
		}
	}
}

func (s *Server) reply(conn *websocket.Conn, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		s.log.Printf("marshal reply: %v", err)
		return
	}
	_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	if err := conn.WriteMessage(websocket.TextMessage, b); err != nil {
		s.log.Printf("write reply: %v", err)
	}
}

func (s *Server) computeTile(req TileRequest) (TileResponse, string) {
	if req.Width <= 0 || req.Height <= 0 || req.Step <= 0 {
		return TileResponse{}, "width, height and step must be positive"
	}
	if req.Width*req.Height > maxTileSamples {
		return TileResponse{}, "tile too large"
	}

	spec := terrain.TileSpec{X0: req.X0, Z0: req.Z0, Width: req.Width, Height: req.Height, Step: req.Step}
	var samples []float64
	switch req.Kind {
	case "height":
		samples = terrain.HeightTile(spec, s.seed, s.workers)
	case "temperature":
		samples, _, _ = terrain.ClimateTile(spec, s.seed, s.workers)
	case "humidity":
		_, samples, _ = terrain.ClimateTile(spec, s.seed, s.workers)
	case "precipitation":
		_, _, samples = terrain.ClimateTile(spec, s.seed, s.workers)
	case "rivers":
		samples = s.riverTile(spec)
	default:
		return TileResponse{}, "unknown tile kind " + req.Kind
	}

	return TileResponse{
		Type: "TILE", Kind: req.Kind,
		X0: req.X0, Z0: req.Z0,
		Width: req.Width, Height: req.Height, Step: req.Step,
		Seed:    s.seed,
		Samples: samples,
	}, ""
}

// riverTile renders carved elevation so valleys read directly in previews.
func (s *Server) riverTile(spec terrain.TileSpec) []float64 {
	out := make([]float64, spec.Width*spec.Height)
	for j := 0; j < spec.Height; j++ {
		for i := 0; i < spec.Width; i++ {
			x := spec.X0 + float64(i)*spec.Step
			z := spec.Z0 + float64(j)*spec.Step
			base := terrain.Elevation(x, z, s.seed)
			out[i+j*spec.Width] = s.rivers.Carve(base, x, z)
		}
	}
	return out
}
