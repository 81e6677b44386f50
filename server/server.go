// Package server exposes the Gauss sum computation over socket.io.
//
// A client emits "compute" with {"q": <prime>} and receives "result" with the
// ordered row groups, optionally the LaTeX of every cell.
package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/ethereum/go-ethereum/log"
	socketio "github.com/googollee/go-socket.io"
	"github.com/googollee/go-socket.io/engineio"

	"github.com/jamwevan/MATH-440/pipeline"
	"github.com/jamwevan/MATH-440/utils"
)

// DefaultMaxQ bounds requests; the computation is O(q^4).
const DefaultMaxQ = 31

// Request is the payload of a "compute" event.
type Request struct {
	Q            int  `json:"q"`
	IncludeTable bool `json:"include_table"`
}

// Response is the payload of a "result" event.
type Response struct {
	Q         int        `json:"q"`
	Rows      int        `json:"rows,omitempty"`
	Cols      int        `json:"cols,omitempty"`
	Groups    [][]int    `json:"groups,omitempty"`
	Table     [][]string `json:"table,omitempty"`
	ElapsedMs int64      `json:"elapsed_ms"`
	Error     string     `json:"error,omitempty"`
}

// Config holds the computation settings shared by every request.
type Config struct {
	Workers  int
	TableDir string
	MaxQ     int
}

// Server answers compute requests. Requests are computed one at a time.
type Server struct {
	cfg  Config
	io   *socketio.Server
	busy chan struct{}
}

// New registers the handlers on a fresh socket.io server.
func New(cfg Config) *Server {
	if cfg.MaxQ <= 0 {
		cfg.MaxQ = DefaultMaxQ
	}
	var socketConfig = &engineio.Options{
		PingTimeout: 60 * 20 * time.Second,
	}
	s := &Server{
		cfg:  cfg,
		io:   socketio.NewServer(socketConfig),
		busy: make(chan struct{}, 1),
	}

	s.io.OnConnect("/", func(c socketio.Conn) error {
		c.SetContext("")
		log.Info("Client connected", "id", c.ID(), "remote", c.RemoteAddr())
		return nil
	})
	s.io.OnEvent("/", "compute", func(c socketio.Conn, val any) {
		var req Request
		if err := utils.ParseMessage(val, &req); err != nil {
			c.Emit("result", Response{Error: err.Error()})
			return
		}
		c.Emit("result", s.Handle(req))
	})
	s.io.OnError("/", func(c socketio.Conn, e error) {
		log.Warn("Socket error", "err", e)
	})
	s.io.OnDisconnect("/", func(c socketio.Conn, reason string) {
		log.Info("Client disconnected", "id", c.ID(), "reason", reason)
	})
	return s
}

// Handle runs one request through the pipeline.
func (s *Server) Handle(req Request) Response {
	resp := Response{Q: req.Q}
	if req.Q > s.cfg.MaxQ {
		resp.Error = fmt.Sprintf("q = %d exceeds the limit %d", req.Q, s.cfg.MaxQ)
		return resp
	}

	s.busy <- struct{}{}
	defer func() { <-s.busy }()

	res, err := pipeline.Run(pipeline.Config{Q: req.Q, Workers: s.cfg.Workers, TableDir: s.cfg.TableDir})
	if err != nil {
		log.Debug("Rejected compute request", "q", req.Q, "err", err)
		resp.Error = err.Error()
		return resp
	}
	resp.Rows, resp.Cols = res.Table.Rows(), res.Table.Cols()
	resp.ElapsedMs = res.Elapsed.Milliseconds()
	resp.Groups = make([][]int, len(res.Groups))
	for i, g := range res.Groups {
		resp.Groups[i] = append([]int(nil), g...)
	}
	if req.IncludeTable {
		resp.Table = make([][]string, res.Table.Rows())
		for theta := range resp.Table {
			for _, x := range res.Table.Row(theta) {
				resp.Table[theta] = append(resp.Table[theta], x.LaTeX())
			}
		}
	}
	return resp
}

// ListenAndServe serves socket.io on addr until the listener fails.
func (s *Server) ListenAndServe(addr string) error {
	go func() {
		if err := s.io.Serve(); err != nil {
			log.Error("Socket server stopped", "err", err)
		}
	}()
	defer s.Close()

	mux := http.NewServeMux()
	mux.Handle("/socket.io/", s.io)
	log.Info("Serving Gauss sum requests", "addr", addr)
	return http.ListenAndServe(addr, mux)
}

// Close shuts the socket.io server down.
func (s *Server) Close() error {
	return s.io.Close()
}
