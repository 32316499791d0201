package net

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ua := r.Header.Get("User-Agent"); !strings.HasPrefix(ua, "dockui/") {
			t.Errorf("User-Agent = %q", ua)
		}
		switch r.URL.Path {
		case "/scene.toml":
			w.Header().Set("Content-Type", "application/toml")
			w.Write([]byte("width = 10\n"))
		case "/big":
			w.Write(make([]byte, MaxBodySize+1))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	body, ct, err := Fetch(context.Background(), srv.URL+"/scene.toml")
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if string(body) != "width = 10\n" || ct != "application/toml" {
		t.Errorf("got %q (%s)", body, ct)
	}

	if _, _, err := Fetch(context.Background(), srv.URL+"/missing"); err == nil {
		t.Error("expected an error for 404")
	}
	if _, _, err := Fetch(context.Background(), srv.URL+"/big"); err == nil {
		t.Error("expected an error for an oversized body")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, _, err := Fetch(ctx, srv.URL+"/scene.toml"); err == nil {
		t.Error("expected an error for a cancelled context")
	}
}

func TestResolveURL(t *testing.T) {
	tests := []struct{ base, ref, want string }{
		{"http://example.com/scenes/a.toml", "b.yaml", "http://example.com/scenes/b.yaml"},
		{"http://example.com/scenes/a.toml", "/c.js", "http://example.com/c.js"},
		{"http://example.com/", "https://other.org/x.toml", "https://other.org/x.toml"},
	}
	for _, tt := range tests {
		if got := ResolveURL(tt.base, tt.ref); got != tt.want {
			t.Errorf("ResolveURL(%q, %q) = %q, want %q", tt.base, tt.ref, got, tt.want)
		}
	}
}

func TestPathOf(t *testing.T) {
	if got := PathOf("https://example.com/s/form.yaml?v=2"); got != "/s/form.yaml" {
		t.Errorf("PathOf = %q", got)
	}
	if !IsNetworkURL("https://x") || IsNetworkURL("scenes/a.toml") {
		t.Error("IsNetworkURL misclassified")
	}
}
