package serve

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"tableflip.dev/flashq/pkg/app"
	"tableflip.dev/flashq/pkg/dataset"
	"tableflip.dev/flashq/pkg/manifest"
)

type handlers struct {
	svc *app.Service
}

type datasetResponse struct {
	Key         string     `json:"key"`
	DisplayName string     `json:"displayName"`
	Headers     []string   `json:"headers"`
	Rows        [][]string `json:"rows"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *handlers) health(w http.ResponseWriter, _ *http.Request) {
	_, _ = fmt.Fprintln(w, "OK")
}

func (h *handlers) list(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.Descriptors(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

// lookup resolves the {filename} route variable against the catalog. Only
// listed files are served.
func (h *handlers) lookup(w http.ResponseWriter, r *http.Request) (app.Topic, bool) {
	name := mux.Vars(r)["filename"]
	topics, err := h.svc.Topics(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return app.Topic{}, false
	}
	for _, t := range topics {
		if t.Key == name {
			return t, true
		}
	}
	writeError(w, http.StatusNotFound, &manifest.UnknownError{Query: name})
	return app.Topic{}, false
}

func (h *handlers) raw(w http.ResponseWriter, r *http.Request) {
	t, ok := h.lookup(w, r)
	if !ok {
		return
	}
	if h.svc.Loader == nil || h.svc.Loader.Source == nil {
		writeError(w, http.StatusInternalServerError, errors.New("no data source configured"))
		return
	}
	rc, err := h.svc.Loader.Source.Open(r.Context(), t.Key)
	if err != nil {
		writeError(w, http.StatusBadGateway, err)
		return
	}
	defer rc.Close()
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	_, _ = io.Copy(w, rc)
}

func (h *handlers) dataset(w http.ResponseWriter, r *http.Request) {
	t, ok := h.lookup(w, r)
	if !ok {
		return
	}
	d, err := h.svc.Loader.Load(r.Context(), t.Key)
	if err != nil {
		status := http.StatusBadGateway
		if errors.Is(err, dataset.ErrEmpty) {
			status = http.StatusUnprocessableEntity
		}
		writeError(w, status, err)
		return
	}
	writeJSON(w, http.StatusOK, datasetResponse{
		Key:         d.Key,
		DisplayName: t.DisplayName,
		Headers:     d.Headers,
		Rows:        d.Rows,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "    ")
	_ = enc.Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error()})
}
