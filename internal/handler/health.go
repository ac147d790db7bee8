package handler

import "net/http"

// healthResponse is the body of the health check endpoint.
type healthResponse struct {
	Status string `json:"status"`
}

// getHealth handles GET /healthz.
// It returns HTTP 200 with {"status":"ok"} when the server is running.
func (s *Server) getHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok"})
}
