package httpapi

import (
	"net/http"

	"github.com/dmitrijs2005/userlist/internal/wire"
)

func (s *Server) handleListUsers(w http.ResponseWriter, r *http.Request) {
	list, err := s.users.List(r.Context())
	if err != nil {
		s.logger.Error(r.Context(), "list users failed", "error", err, "request_id", requestIDFromContext(r.Context()))
		writeError(w, http.StatusInternalServerError, codeInternal, "Failed to fetch users")
		return
	}

	writeJSON(w, http.StatusOK, wire.UsersResponse{Users: usersToDTO(list)})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := s.users.Ping(r.Context()); err != nil {
		s.logger.Warn(r.Context(), "health check failed", "error", err)
		writeError(w, http.StatusServiceUnavailable, codeUnavailable, "Storage unavailable")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleDocs(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, OpenAPIDocument())
}
