package remote

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/shadow-strike/internal/difficulty"
)

// Handler serves suggestions from s using the same wire format Client
// speaks. A nil logger discards output.
func Handler(s difficulty.Suggester, logger *log.Logger) http.Handler {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.Header().Set("Allow", http.MethodPost)
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		var req Request
		if err := json.NewDecoder(io.LimitReader(r.Body, maxBody)).Decode(&req); err != nil {
			logger.Debug("bad suggestion request", "remote", r.RemoteAddr, "error", err)
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}

		suggestion, err := s.Suggest(r.Context(), req.PlayerScore)
		if err != nil {
			logger.Warn("suggestion failed", "score", req.PlayerScore, "error", err)
			http.Error(w, "suggestion unavailable", http.StatusServiceUnavailable)
			return
		}

		logger.Info("suggestion served", "score", req.PlayerScore, "remote", r.RemoteAddr)
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(suggestion); err != nil {
			logger.Warn("write suggestion", "error", err)
		}
	})
}
