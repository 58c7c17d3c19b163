package scramble

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/watchfire-io/cubetimer/internal/models"
)

func TestVisualCubeURL(t *testing.T) {
	v := NewVisualCube(models.NewSettings().VisualCube, nil)

	got := v.URL("R U' F2")
	want := "https://visualcube.online/visualcube.php?fmt=svg&size=150&bg=transparent&stage=full&view=plan&flag=showall&case=R%20U%27%20F2"
	if got != want {
		t.Errorf("URL() =\n  %s\nwant\n  %s", got, want)
	}
}

func TestVisualCubeURLEscapesCase(t *testing.T) {
	v := NewVisualCube(models.NewSettings().VisualCube, nil)

	tests := []struct {
		name     string
		scramble string
		wantCase string
	}{
		{name: "prime", scramble: "R U'", wantCase: "R%20U%27"},
		{name: "plus", scramble: "Rw+ U", wantCase: "Rw%2B%20U"},
		{name: "ampersand and equals", scramble: "R & U=2", wantCase: "R%20%26%20U%3D2"},
		{name: "empty", scramble: "", wantCase: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := v.URL(tt.scramble)
			if !strings.HasSuffix(raw, "&case="+tt.wantCase) {
				t.Errorf("URL() = %s, want case=%s", raw, tt.wantCase)
			}

			u, err := url.Parse(raw)
			if err != nil {
				t.Fatalf("url.Parse() error: %v", err)
			}
			q := u.Query()
			if got := q.Get("case"); got != tt.scramble {
				t.Errorf("case = %q, want %q", got, tt.scramble)
			}
			if got := q.Get("flag"); got != "showall" {
				t.Errorf("flag = %q, scramble leaked into other parameters", got)
			}
		})
	}
}

func TestVisualCubeRenderWithoutFetch(t *testing.T) {
	cfg := models.NewSettings().VisualCube
	cfg.Fetch = false
	v := NewVisualCube(cfg, nil)

	img, err := v.Render(context.Background(), "R U")
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if !img.Loaded || img.Data != nil {
		t.Errorf("Render() = %+v, want loaded URL-only image", img)
	}
	if img.Alt != "Scramble: R U" {
		t.Errorf("Alt = %q", img.Alt)
	}
}

func TestVisualCubeRenderFetch(t *testing.T) {
	var gotCase string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotCase = r.URL.Query().Get("case")
		w.Header().Set("Content-Type", "image/svg+xml")
		w.Write([]byte("<svg></svg>"))
	}))
	defer srv.Close()

	cfg := models.NewSettings().VisualCube
	cfg.BaseURL = srv.URL
	v := NewVisualCube(cfg, srv.Client())

	img, err := v.Render(context.Background(), "R U' F2")
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if !img.Loaded {
		t.Error("image should be loaded")
	}
	if string(img.Data) != "<svg></svg>" {
		t.Errorf("Data = %q", img.Data)
	}
	if img.ContentType != "image/svg+xml" {
		t.Errorf("ContentType = %q", img.ContentType)
	}
	if gotCase != "R U' F2" {
		t.Errorf("server saw case=%q, want the raw scramble", gotCase)
	}
}

func TestVisualCubeRenderFailureFallsBackToAlt(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{name: "server error", handler: func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}},
		{name: "empty body", handler: func(w http.ResponseWriter, r *http.Request) {}},
		{name: "timeout", handler: func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-r.Context().Done():
			case <-time.After(2 * time.Second):
			}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			cfg := models.NewSettings().VisualCube
			cfg.BaseURL = srv.URL
			cfg.Timeout = 50 * time.Millisecond
			v := NewVisualCube(cfg, srv.Client())

			img, err := v.Render(context.Background(), "D2 B")
			if err == nil {
				t.Fatal("Render() should fail")
			}
			if img.Loaded {
				t.Error("failed image must not be marked loaded")
			}
			if img.Alt != "Scramble: D2 B" {
				t.Errorf("Alt = %q, want textual fallback", img.Alt)
			}
			if img.URL == "" {
				t.Error("URL should still be reported")
			}
		})
	}
}

func TestNetRendererPlain(t *testing.T) {
	img, err := NetRenderer{Plain: true}.Render(context.Background(), "R")
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if !img.Loaded || img.ContentType != "text/plain" {
		t.Errorf("Render() = %+v", img)
	}

	lines := strings.Split(string(img.Data), "\n")
	if len(lines) != 9 {
		t.Fatalf("net has %d lines, want 9:\n%s", len(lines), img.Data)
	}
	if strings.TrimSpace(lines[0]) != "U U F" {
		t.Errorf("top U row = %q, want %q", lines[0], "U U F")
	}
	if strings.TrimSpace(lines[3]) != "L L L  F F D  R R R  U B B" {
		t.Errorf("middle row = %q", lines[3])
	}
	if strings.TrimSpace(lines[8]) != "D D B" {
		t.Errorf("bottom D row = %q", lines[8])
	}
}

func TestNetRendererInvalidScramble(t *testing.T) {
	img, err := NetRenderer{}.Render(context.Background(), "R Q")
	if !errors.Is(err, ErrInvalidMove) {
		t.Fatalf("Render() error = %v, want ErrInvalidMove", err)
	}
	if img.Loaded {
		t.Error("image should not be loaded")
	}
	if img.Alt != "Scramble: R Q" {
		t.Errorf("Alt = %q", img.Alt)
	}
}
