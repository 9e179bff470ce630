package serve

import (
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"tableflip.dev/flashq/pkg/app"
	"tableflip.dev/flashq/pkg/dataset"
	"tableflip.dev/flashq/pkg/manifest"
	"tableflip.dev/flashq/pkg/store"
)

func newTestService(t *testing.T) *app.Service {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"math.csv":    "Q,A\n1+1,2\n2+2\n",
		"empty.csv":   "\n",
		"private.txt": "secret",
	}
	for name, body := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	prefs, err := store.Open(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if err := prefs.SetDisplayName("math.csv", "Sums"); err != nil {
		t.Fatal(err)
	}
	return &app.Service{
		Catalog:     &manifest.DirCatalog{Dir: dir},
		Loader:      &dataset.Loader{Source: &dataset.DirSource{Dir: dir}},
		Preferences: prefs,
		WatchDir:    dir,
	}
}

func get(t *testing.T, srv *httptest.Server, path string) (*http.Response, []byte) {
	t.Helper()
	resp, err := http.Get(srv.URL + path)
	if err != nil {
		t.Fatalf("GET %s: %v", path, err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	return resp, body
}

func TestRouterManifest(t *testing.T) {
	srv := httptest.NewServer(NewRouter(newTestService(t), nil))
	defer srv.Close()

	resp, body := get(t, srv, "/file-list.json")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if resp.Header.Get("X-Request-ID") == "" {
		t.Fatalf("expected a request id header")
	}
	var list []manifest.Descriptor
	if err := json.Unmarshal(body, &list); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 datasets, got %+v", list)
	}
	if list[1] != (manifest.Descriptor{Filename: "math.csv", DisplayName: "Sums"}) {
		t.Fatalf("expected renamed math, got %+v", list[1])
	}
}

func TestRouterRawAndParsed(t *testing.T) {
	srv := httptest.NewServer(NewRouter(newTestService(t), nil))
	defer srv.Close()

	resp, body := get(t, srv, "/data/math.csv")
	if resp.StatusCode != http.StatusOK || !strings.HasPrefix(string(body), "Q,A\n") {
		t.Fatalf("raw = %d %q", resp.StatusCode, body)
	}

	resp, body = get(t, srv, "/api/datasets/math.csv")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d body=%s", resp.StatusCode, body)
	}
	var d datasetResponse
	if err := json.Unmarshal(body, &d); err != nil {
		t.Fatal(err)
	}
	if d.DisplayName != "Sums" || len(d.Rows) != 2 || d.Rows[1][1] != "" {
		t.Fatalf("unexpected dataset %+v", d)
	}

	resp, _ = get(t, srv, "/api/datasets/empty.csv")
	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("empty dataset status = %d", resp.StatusCode)
	}
}

func TestRouterRejectsUnlisted(t *testing.T) {
	srv := httptest.NewServer(NewRouter(newTestService(t), nil))
	defer srv.Close()

	for _, path := range []string{"/data/private.txt", "/api/datasets/nope.csv", "/data/..%2Fmath.csv"} {
		resp, _ := get(t, srv, path)
		if resp.StatusCode != http.StatusNotFound {
			t.Fatalf("GET %s = %d, want 404", path, resp.StatusCode)
		}
	}

	req, _ := http.NewRequest(http.MethodPost, srv.URL+"/file-list.json", nil)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Fatalf("POST status = %d", resp.StatusCode)
	}
}

func TestRunnerServesUntilCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	addrCh := make(chan net.Addr, 1)
	errCh := make(chan error, 1)
	r := Runner{
		Service:     newTestService(t),
		ListenAddr:  "127.0.0.1:0",
		OnListening: func(a net.Addr) { addrCh <- a },
	}
	go func() { errCh <- r.Do(ctx) }()

	var addr net.Addr
	select {
	case addr = <-addrCh:
	case err := <-errCh:
		t.Fatalf("runner exited early: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatalf("runner did not start")
	}

	resp, err := http.Get("http://" + addr.String() + "/health")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("health status = %d", resp.StatusCode)
	}

	cancel()
	select {
	case err := <-errCh:
		if err != nil {
			t.Fatalf("expected clean shutdown, got %v", err)
		}
	case <-time.After(10 * time.Second):
		t.Fatalf("runner did not stop")
	}
}

func TestRunnerRequiresService(t *testing.T) {
	if err := (Runner{}).Do(context.Background()); err == nil {
		t.Fatalf("expected error without service")
	}
}
