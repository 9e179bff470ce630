package serve

import (
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"tableflip.dev/flashq/pkg/app"
	"tableflip.dev/flashq/pkg/manifest"
)

// NewRouter wires the flashq routes onto a gorilla/mux router.
func NewRouter(svc *app.Service, logger *log.Logger) *mux.Router {
	h := &handlers{svc: svc}
	r := mux.NewRouter()
	r.Use(requestLogger(logger))
	r.HandleFunc("/health", h.health).Methods(http.MethodGet)
	r.HandleFunc("/"+manifest.FileName, h.list).Methods(http.MethodGet)
	r.HandleFunc("/data/{filename}", h.raw).Methods(http.MethodGet)
	r.HandleFunc("/api/datasets", h.list).Methods(http.MethodGet)
	r.HandleFunc("/api/datasets/{filename}", h.dataset).Methods(http.MethodGet)
	return r
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

// requestLogger tags every request with an id and logs its outcome.
func requestLogger(logger *log.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get("X-Request-ID")
			if id == "" {
				id = uuid.New().String()
			}
			w.Header().Set("X-Request-ID", id)
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			start := time.Now()
			next.ServeHTTP(rec, r)
			if logger != nil {
				logger.Printf("%s %s %s %d %s", id, r.Method, r.URL.Path, rec.status, time.Since(start).Round(time.Microsecond))
			}
		})
	}
}
