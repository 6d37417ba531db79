// Package simulator serves an in-memory stand-in for the demo users API.
// It accepts writes and echoes plausible records but never persists them,
// the same way the public demo backend behaves.
package simulator

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/shuvava/go-users-client/gateway"
)

// Server is an http.Handler serving /users.
type Server struct {
	router *mux.Router
	users  []gateway.User
	log    *zap.Logger
}

// Option configures a Server.
type Option func(*Server)

// WithUsers replaces the seed collection.
func WithUsers(users []gateway.User) Option {
	return func(s *Server) {
		s.users = append([]gateway.User(nil), users...)
	}
}

// WithLogger sets the request logger.
func WithLogger(log *zap.Logger) Option {
	return func(s *Server) {
		s.log = log
	}
}

// New creates a Server seeded with SeedUsers unless WithUsers is given.
func New(opts ...Option) *Server {
	s := &Server{
		router: mux.NewRouter(),
		users:  SeedUsers(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.log == nil {
		s.log = zap.NewNop()
	}

	s.router.HandleFunc("/users", s.listUsers).Methods(http.MethodGet)
	s.router.HandleFunc("/users", s.createUser).Methods(http.MethodPost)
	s.router.HandleFunc("/users/{id:[0-9]+}", s.getUser).Methods(http.MethodGet)
	s.router.HandleFunc("/users/{id:[0-9]+}", s.updateUser).Methods(http.MethodPut)
	s.router.HandleFunc("/users/{id:[0-9]+}", s.deleteUser).Methods(http.MethodDelete)
	s.router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, struct{}{})
	})
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.log.Debug("request", zap.String("method", r.Method), zap.String("path", r.URL.Path))
	s.router.ServeHTTP(w, r)
}

func (s *Server) listUsers(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.users)
}

func (s *Server) getUser(w http.ResponseWriter, r *http.Request) {
	u, ok := s.find(r)
	if !ok {
		writeJSON(w, http.StatusNotFound, struct{}{})
		return
	}
	writeJSON(w, http.StatusOK, u)
}

// createUser echoes the body with the next free id; the seed is left as is.
func (s *Server) createUser(w http.ResponseWriter, r *http.Request) {
	var u gateway.User
	if err := json.NewDecoder(r.Body).Decode(&u); err != nil {
		s.log.Debug("bad create body", zap.Error(err))
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}
	u.ID = len(s.users) + 1
	writeJSON(w, http.StatusCreated, u)
}

// updateUser echoes the body with the path id. Unknown ids are 404.
func (s *Server) updateUser(w http.ResponseWriter, r *http.Request) {
	existing, ok := s.find(r)
	if !ok {
		writeJSON(w, http.StatusNotFound, struct{}{})
		return
	}
	var u gateway.User
	if err := json.NewDecoder(r.Body).Decode(&u); err != nil {
		s.log.Debug("bad update body", zap.Error(err))
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}
	u.ID = existing.ID
	writeJSON(w, http.StatusOK, u)
}

// deleteUser acknowledges any id.
func (s *Server) deleteUser(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, struct{}{})
}

func (s *Server) find(r *http.Request) (gateway.User, bool) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		return gateway.User{}, false
	}
	for _, u := range s.users {
		if u.ID == id {
			return u, true
		}
	}
	return gateway.User{}, false
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
