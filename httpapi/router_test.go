package httpapi

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/duskforge/dungeonturn/component"
	"github.com/duskforge/dungeonturn/core"
)

type fakeSource struct {
	snap GameSnapshot
}

func (f fakeSource) Snapshot() GameSnapshot { return f.snap }

func TestHealthzReturnsOK(t *testing.T) {
	r := NewRouter(RouterConfig{Source: fakeSource{}, DisableLogging: true})
	ts := httptest.NewServer(r)
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/healthz")
	if err != nil {
		t.Fatalf("GET /healthz: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
}

func TestStateReturnsJSONSnapshot(t *testing.T) {
	src := fakeSource{snap: GameSnapshot{TurnCount: 5, State: component.GameStatePlaying}}
	r := NewRouter(RouterConfig{Source: src, DisableLogging: true})
	ts := httptest.NewServer(r)
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/state")
	if err != nil {
		t.Fatalf("GET /state: %v", err)
	}
	defer resp.Body.Close()
	if ct := resp.Header.Get("Content-Type"); ct != "application/json" {
		t.Fatalf("Content-Type = %q, want application/json", ct)
	}
}

func TestLogRendersHTMLTable(t *testing.T) {
	src := fakeSource{snap: GameSnapshot{
		TurnCount: 2,
		Messages:  []component.Msg{{Kind: component.MsgMoved, Entity: 1, Pos: core.Point{X: 3, Y: 4}}},
	}}
	r := NewRouter(RouterConfig{Source: src, DisableLogging: true})
	ts := httptest.NewServer(r)
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/log")
	if err != nil {
		t.Fatalf("GET /log: %v", err)
	}
	defer resp.Body.Close()
	body := new(strings.Builder)
	if _, err := body.ReadFrom(resp.Body); err != nil {
		t.Fatalf("read body: %v", err)
	}
	if !strings.Contains(body.String(), "Turn 2") {
		t.Fatalf("body = %q, want it to contain \"Turn 2\"", body.String())
	}
}

func TestMetricsEndpointServesPrometheusFormat(t *testing.T) {
	r := NewRouter(RouterConfig{Source: fakeSource{}, DisableLogging: true})
	ts := httptest.NewServer(r)
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/metrics")
	if err != nil {
		t.Fatalf("GET /metrics: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
}

func TestCORSOriginsDefaultWhenUnset(t *testing.T) {
	r := NewRouter(RouterConfig{Source: fakeSource{}, DisableLogging: true})
	ts := httptest.NewServer(r)
	defer ts.Close()

	req, _ := http.NewRequest(http.MethodGet, ts.URL+"/healthz", nil)
	req.Header.Set("Origin", "http://localhost:1234")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("GET /healthz with Origin: %v", err)
	}
	defer resp.Body.Close()
	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "http://localhost:1234" {
		t.Fatalf("Access-Control-Allow-Origin = %q, want echoed localhost origin", got)
	}
}
