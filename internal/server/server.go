package server

import (
	"context"
	"log"
	"net/http"

	"github.com/thejpster/sixaxis/internal/hub"
	"github.com/thejpster/sixaxis/internal/webui"
)

type Server struct {
	hub         *hub.Hub
	broadcaster *hub.Broadcaster
	addr        string
	httpServer  *http.Server
}

func New(h *hub.Hub, b *hub.Broadcaster, addr string) *Server {
	return &Server{
		hub:         h,
		broadcaster: b,
		addr:        addr,
	}
}

func (s *Server) ListenAndServe() error {
	mux := http.NewServeMux()

	// WebSocket endpoint
	mux.HandleFunc("/ws", handleWebSocket(s.hub, s.broadcaster))

	// Static files (frontend), minified on the way out
	mux.Handle("/", webui.Handler())

	s.httpServer = &http.Server{
		Addr:    s.addr,
		Handler: mux,
	}

	log.Printf("HTTP server listening on %s", s.addr)
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		log.Println("Shutting down HTTP server...")
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}
