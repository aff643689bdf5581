package overpass_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/iron-24/ripper-report/internal/adapters/overpass"
)

func TestSkiAreas_QueryAndMapping(t *testing.T) {
	var gotQuery string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			t.Errorf("parse form: %v", err)
		}
		gotQuery = r.PostFormValue("data")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"elements":[
			{"type":"node","id":1,"lat":38.935,"lon":-119.940,
			 "tags":{"name":"Heavenly","website":"https://www.skiheavenly.com"}},
			{"type":"way","id":2,"center":{"lat":38.685,"lon":-120.066},
			 "tags":{"name":"Kirkwood","phone":"+1 209 258 6000"}},
			{"type":"way","id":3,"tags":{"name":"No Coordinates"}}
		]}`))
	}))
	defer ts.Close()

	cl := overpass.New(ts.URL, "test-agent/1.0")
	got, err := cl.SkiAreas(context.Background(), 39.0, -120.0, 32186)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if !strings.Contains(gotQuery, `["landuse"="winter_sports"]`) {
		t.Fatalf("query missing winter_sports clause: %s", gotQuery)
	}
	if !strings.Contains(gotQuery, `["sport"="skiing"]`) {
		t.Fatalf("query missing skiing clause: %s", gotQuery)
	}
	if !strings.Contains(gotQuery, "around:32186,39.000000,-120.000000") {
		t.Fatalf("query missing around clause: %s", gotQuery)
	}
	if !strings.Contains(gotQuery, "out center tags") {
		t.Fatalf("query missing out statement: %s", gotQuery)
	}

	// the zero-coordinate element is dropped
	if len(got) != 2 {
		t.Fatalf("expected 2 elements, got %d", len(got))
	}

	// node coordinates pass through
	if got[0]["lat"] != 38.935 || got[0]["lon"] != -119.940 {
		t.Fatalf("unexpected node coords: %+v", got[0])
	}
	// way coordinates resolve from center
	if got[1]["lat"] != 38.685 || got[1]["lon"] != -120.066 {
		t.Fatalf("center not resolved: %+v", got[1])
	}
	tags, ok := got[1]["tags"].(map[string]any)
	if !ok || tags["name"] != "Kirkwood" {
		t.Fatalf("tags not mapped: %+v", got[1])
	}
}

func TestSkiAreas_UpstreamFailure(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer ts.Close()

	cl := overpass.New(ts.URL, "test-agent/1.0")
	if _, err := cl.SkiAreas(context.Background(), 39.0, -120.0, 1000); err == nil {
		t.Fatalf("expected error for 502")
	}
}
