package counter

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
)

// Firestore document event types delivered by Eventarc.
const (
	EventCreated = "google.cloud.firestore.document.v1.created"
	EventDeleted = "google.cloud.firestore.document.v1.deleted"
)

const (
	structuredContentType = "application/cloudevents+json"
	maxEventSize          = 1 << 20
)

var (
	// ErrInvalidEvent is returned when a request does not carry a CloudEvent.
	ErrInvalidEvent = errors.New("counter: invalid event")

	// ErrInvalidDocumentPath is returned when the event's document is not a
	// {userId}/userData/totps/{documentId} path.
	ErrInvalidDocumentPath = errors.New("counter: invalid document path")
)

// Event holds the CloudEvent attributes the triggers use.
type Event struct {
	ID       string `json:"id"`
	Type     string `json:"type"`
	Source   string `json:"source"`
	Subject  string `json:"subject"`
	Document string `json:"document"`
}

// DocumentPath is a parsed {userId}/userData/totps/{documentId} path.
type DocumentPath struct {
	UserID     string
	DocumentID string
}

// ParseEvent reads a CloudEvent from r in binary mode (Ce-* headers) or
// structured mode (application/cloudevents+json body).
func ParseEvent(r *http.Request) (*Event, error) {
	mt, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mt == structuredContentType {
		var ev Event
		if err := json.NewDecoder(io.LimitReader(r.Body, maxEventSize)).Decode(&ev); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidEvent, err)
		}
		return checkEvent(&ev)
	}

	return checkEvent(&Event{
		ID:       r.Header.Get("Ce-Id"),
		Type:     r.Header.Get("Ce-Type"),
		Source:   r.Header.Get("Ce-Source"),
		Subject:  r.Header.Get("Ce-Subject"),
		Document: r.Header.Get("Ce-Document"),
	})
}

func checkEvent(ev *Event) (*Event, error) {
	if ev.Type == "" {
		return nil, fmt.Errorf("%w: missing type", ErrInvalidEvent)
	}
	if ev.Document == "" && ev.Subject == "" {
		return nil, fmt.Errorf("%w: missing document", ErrInvalidEvent)
	}
	return ev, nil
}

// Path returns the parsed document path. The document attribute is
// preferred; the subject ("documents/<path>") is the fallback.
func (e *Event) Path() (DocumentPath, error) {
	p := e.Document
	if p == "" {
		p = strings.TrimPrefix(e.Subject, "documents/")
	}
	return ParseDocumentPath(p)
}

// ParseDocumentPath parses {userId}/userData/totps/{documentId}.
// A single leading slash is accepted.
func ParseDocumentPath(p string) (DocumentPath, error) {
	parts := strings.Split(strings.TrimPrefix(p, "/"), "/")
	if len(parts) != 4 || parts[1] != UserDataDoc || parts[2] != "totps" || parts[0] == "" || parts[3] == "" {
		return DocumentPath{}, fmt.Errorf("%w: %q", ErrInvalidDocumentPath, p)
	}
	return DocumentPath{UserID: parts[0], DocumentID: parts[3]}, nil
}
