package aclserver

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/credvault/credvault-acl/pkg/acl"
	"github.com/credvault/credvault-acl/pkg/aclcache"
)

// evaluateRequest is the body of POST /api/v1/acl
type evaluateRequest struct {
	Action  string      `json:"action"`
	Actor   acl.Actor   `json:"actor"`
	Account acl.Account `json:"account"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	var req evaluateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	action, err := acl.ParseAction(req.Action)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := s.service.GetACL(action, req.Actor, req.Account)
	if err != nil {
		// ErrUnknownAction is the only error the service surfaces; an
		// unparseable action was already rejected above, so anything
		// here is a programming error.
		if errors.Is(err, acl.ErrUnknownAction) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "evaluation failed")
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleActions(w http.ResponseWriter, r *http.Request) {
	actions := acl.Actions()
	names := make([]string, 0, len(actions))
	for _, a := range actions {
		names = append(names, a.String())
	}
	writeJSON(w, http.StatusOK, map[string][]string{"actions": names})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	health := struct {
		Status string          `json:"status"`
		Cache  *aclcache.Stats `json:"cache,omitempty"`
	}{Status: "ok"}

	if s.stats != nil {
		stats := s.stats.Stats()
		health.Cache = &stats
	}
	writeJSON(w, http.StatusOK, health)
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}
