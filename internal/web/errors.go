package web

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// Every failure leaves this handler as a JSON error envelope. The taxonomy:
//
//	400 — input error (no images uploaded), user retries with a file
//	503 — upstream unavailable (the disabled claude provider path)
//	500 — configuration error (missing credential), extraction failure
//	      (envelope also carries the raw model text), or anything else
//
// Nothing here crashes the process and nothing is retried.
func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("write response failed", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
