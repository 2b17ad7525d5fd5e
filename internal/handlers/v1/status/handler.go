package status

import (
	"context"
	"errors"
	"net/http"

	"github.com/carson-networks/finance-tracker/internal/logging"
)

// Pinger reports whether the database is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type Handler struct {
	DB Pinger
}

func NewHandler(db Pinger) Handler {
	return Handler{DB: db}
}

// Handler answers 200 while the database is reachable and 503 otherwise.
func (h *Handler) Handler(w http.ResponseWriter, req *http.Request, logData *logging.LogData) error {
	if req.Method != http.MethodGet {
		w.WriteHeader(http.StatusBadRequest)
		return errors.New("status: method not GET")
	}

	stopTimer := logData.AddTiming("pingMs")
	err := h.DB.PingContext(req.Context())
	stopTimer()
	if err != nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		return err
	}

	w.WriteHeader(http.StatusOK)
	return nil
}
