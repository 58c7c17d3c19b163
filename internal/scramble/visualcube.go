package scramble

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/watchfire-io/cubetimer/internal/buildinfo"
	"github.com/watchfire-io/cubetimer/internal/models"
)

// maxImageBytes caps the body read from the image service.
const maxImageBytes = 1 << 20

// VisualCube renders scrambles through the VisualCube image service.
type VisualCube struct {
	cfg    models.VisualCubeConfig
	client *http.Client
}

// NewVisualCube creates a renderer for the given request parameters.
// A nil client uses http.DefaultClient.
func NewVisualCube(cfg models.VisualCubeConfig, client *http.Client) *VisualCube {
	if client == nil {
		client = http.DefaultClient
	}
	return &VisualCube{cfg: cfg, client: client}
}

// URL builds the image request for a scramble. Parameter order follows the
// service's documented form; the scramble is escaped with spaces as %20.
func (v *VisualCube) URL(scramble string) string {
	var sb strings.Builder
	sb.WriteString(v.cfg.BaseURL)
	sb.WriteString("?fmt=")
	sb.WriteString(url.QueryEscape(v.cfg.Format))
	sb.WriteString("&size=")
	sb.WriteString(strconv.Itoa(v.cfg.Size))
	sb.WriteString("&bg=")
	sb.WriteString(url.QueryEscape(v.cfg.Background))
	sb.WriteString("&stage=")
	sb.WriteString(url.QueryEscape(v.cfg.Stage))
	sb.WriteString("&view=")
	sb.WriteString(url.QueryEscape(v.cfg.View))
	sb.WriteString("&flag=")
	sb.WriteString(url.QueryEscape(v.cfg.Flag))
	sb.WriteString("&case=")
	// The scramble is opaque text: escape every query delimiter, then
	// spell spaces as %20 rather than +.
	sb.WriteString(strings.ReplaceAll(url.QueryEscape(scramble), "+", "%20"))
	return sb.String()
}

// Render builds the request URL and, when fetching is enabled, downloads
// the image. A failed download returns the image unloaded together with
// the error; Alt is always usable.
func (v *VisualCube) Render(ctx context.Context, scramble string) (Image, error) {
	img := Image{
		Scramble:    scramble,
		URL:         v.URL(scramble),
		ContentType: contentTypeFor(v.cfg.Format),
		Alt:         AltText(scramble),
	}
	if !v.cfg.Fetch {
		img.Loaded = true
		return img, nil
	}

	timeout := v.cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, img.URL, nil)
	if err != nil {
		return img, fmt.Errorf("create image request: %w", err)
	}
	req.Header.Set("User-Agent", "cubetimer/"+buildinfo.Version)

	resp, err := v.client.Do(req)
	if err != nil {
		return img, fmt.Errorf("fetch scramble image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return img, fmt.Errorf("scramble image service returned %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxImageBytes))
	if err != nil {
		return img, fmt.Errorf("read scramble image: %w", err)
	}
	if len(data) == 0 {
		return img, fmt.Errorf("scramble image service returned an empty body")
	}
	if ct := resp.Header.Get("Content-Type"); ct != "" {
		img.ContentType = ct
	}
	img.Data = data
	img.Loaded = true
	return img, nil
}

func contentTypeFor(format string) string {
	switch format {
	case "svg":
		return "image/svg+xml"
	case "png":
		return "image/png"
	case "jpg", "jpeg":
		return "image/jpeg"
	case "gif":
		return "image/gif"
	default:
		return "application/octet-stream"
	}
}
