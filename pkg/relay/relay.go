package relay

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"net/url"

	"github.com/openauthenticator/site/internal"
)

// DefaultCallbackURL is where successful logins are forwarded when no
// callback is configured. It matches the desktop app's local listener.
const DefaultCallbackURL = "http://localhost:5000/apple/"

// maxBodySize caps the accepted request body.
const maxBodySize = 64 << 10

// ErrInvalidCallbackURL is returned when the configured callback is not an absolute URL.
var ErrInvalidCallbackURL = errors.New("relay: invalid callback url")

// Config configures the relay.
type Config struct {
	CallbackURL string `env:"APPLE_CALLBACK_URL" envDefault:"http://localhost:5000/apple/"`
}

// Handler forwards Sign in with Apple form posts to the app callback.
type Handler struct {
	callback *url.URL
}

// NewHandler validates cfg and returns a relay handler.
func NewHandler(cfg Config) (*Handler, error) {
	raw := cfg.CallbackURL
	if raw == "" {
		raw = DefaultCallbackURL
	}
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCallbackURL, err)
	}
	if !u.IsAbs() || u.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidCallbackURL, raw)
	}
	return &Handler{callback: u}, nil
}

// Routes registers POST /appleLogin.
func (h *Handler) Routes(r internal.Router) {
	r.POST("/appleLogin", h.appleLogin)
}

// payload is the subset of Apple's authorization response the app needs.
type payload struct {
	Code    string `json:"code"`
	IDToken string `json:"id_token"`
	State   string `json:"state"`
}

func (p payload) complete() bool {
	return p.Code != "" && p.IDToken != "" && p.State != ""
}

func (h *Handler) appleLogin(c internal.Context) error {
	p, err := readPayload(c)
	if err != nil {
		c.LogWarn("unreadable login payload", "error", err)
	}
	if err != nil || !p.complete() {
		return c.Redirect(http.StatusFound, "/")
	}

	target := *h.callback
	q := target.Query()
	q.Set("code", p.Code)
	q.Set("id_token", p.IDToken)
	q.Set("state", p.State)
	target.RawQuery = q.Encode()

	return c.Redirect(http.StatusFound, target.String())
}

func readPayload(c internal.Context) (payload, error) {
	r := c.Request()
	r.Body = http.MaxBytesReader(c.Response(), r.Body, maxBodySize)

	mt, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mt == "application/json" {
		var p payload
		if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
			return payload{}, err
		}
		return p, nil
	}

	if err := r.ParseForm(); err != nil {
		return payload{}, err
	}
	return payload{
		Code:    r.PostForm.Get("code"),
		IDToken: r.PostForm.Get("id_token"),
		State:   r.PostForm.Get("state"),
	}, nil
}
