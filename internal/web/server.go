// Package web serves a loaded model over HTTP for browser preview:
// mesh JSON, a binary glTF download and a websocket that notifies
// clients when the model is reloaded.
package web

import (
	"log"
	"net/http"
	"os"
	"sync"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"go3dview/internal/controller"
	"go3dview/pkg/obj"
)

// Server implements controller.View: it keeps the latest displayed
// mesh snapshot and broadcasts a reload event to connected websocket
// clients whenever a new snapshot arrives. The serve front end emits
// no interaction events, so the subscribed listener is never called.
type Server struct {
	mu       sync.RWMutex
	mesh     *obj.Mesh
	listener controller.Listener
	hub      *hub
}

// NewServer creates a server with no model loaded yet
func NewServer() *Server {
	return &Server{hub: newHub()}
}

// Subscribe stores the controller's listener
func (s *Server) Subscribe(l controller.Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listener = l
}

// ShowModel stores the new geometry snapshot and notifies websocket
// clients that the model changed
func (s *Server) ShowModel(mesh *obj.Mesh) {
	s.mu.Lock()
	s.mesh = mesh
	s.mu.Unlock()

	s.hub.broadcast([]byte(`{"event":"reload"}`))
}

// snapshot returns the current mesh, which may be nil before a load
func (s *Server) snapshot() *obj.Mesh {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mesh
}

// ListenAndServe blocks serving the preview endpoints on addr
func (s *Server) ListenAndServe(addr string) error {
	r := mux.NewRouter()
	r.HandleFunc("/json/model", s.handleModel)
	r.HandleFunc("/json/bbox", s.handleBBox)
	r.HandleFunc("/gltf/model.glb", s.handleGLTF)
	r.HandleFunc("/live", s.handleLive)
	r.HandleFunc("/", s.handleIndex)

	h := handlers.RecoveryHandler()(r)
	h = handlers.LoggingHandler(os.Stdout, h)

	log.Printf("[web] Starting server %v", addr)

	return http.ListenAndServe(addr, h)
}
