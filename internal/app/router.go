package app

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// HealthResponse is served on /healthz
type HealthResponse struct {
	Status    string `json:"status"`
	Videos    int    `json:"videos"`
	Playlists int    `json:"playlists"`
}

func (p *Player) router() *mux.Router {
	r := mux.NewRouter()

	r.Handle("/metrics", promhttp.Handler()).Methods("GET")
	r.HandleFunc("/healthz", p.healthCheck).Methods("GET")

	return r
}

func (p *Player) healthCheck(w http.ResponseWriter, _ *http.Request) {
	response := HealthResponse{
		Status:    "ok",
		Videos:    p.catalog.Len(),
		Playlists: len(p.playlistService.ListPlaylists()),
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		p.logger.WithError(err).Warn("Failed to encode health response")
	}
}
