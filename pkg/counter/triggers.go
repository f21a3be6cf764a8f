package counter

import (
	"errors"
	"net/http"

	"github.com/openauthenticator/site/internal"
)

// Triggers exposes the counter maintenance endpoints that Eventarc calls
// when a TOTP document is created or deleted.
type Triggers struct {
	store Store
}

// NewTriggers returns the trigger handlers backed by store.
func NewTriggers(store Store) *Triggers {
	return &Triggers{store: store}
}

// Routes registers POST /incrementCounter and POST /decrementCounter.
func (t *Triggers) Routes(r internal.Router) {
	r.POST("/incrementCounter", t.handle(EventCreated, 1))
	r.POST("/decrementCounter", t.handle(EventDeleted, -1))
}

// handle applies delta for events of eventType. Client errors answer 4xx so
// the delivery is dropped; store failures answer 500 so it is retried.
func (t *Triggers) handle(eventType string, delta int64) internal.HandlerFunc {
	return func(c internal.Context) error {
		ev, err := ParseEvent(c.Request())
		if err != nil {
			return internal.ErrBadRequest(err.Error(), internal.WithError(err))
		}
		if ev.Type != eventType {
			c.LogWarn("unexpected event type", "type", ev.Type, "want", eventType, "id", ev.ID)
			return internal.ErrBadRequest("unexpected event type")
		}

		doc, err := ev.Path()
		if err != nil {
			return internal.ErrBadRequest(err.Error(), internal.WithError(err))
		}

		if err := t.store.IncrementBy(c.Context(), doc.UserID, delta); err != nil {
			if errors.Is(err, ErrUserDataNotFound) {
				c.LogWarn("counter document missing", "user_id", doc.UserID, "error", err)
				return internal.ErrNotFound("user data not found", internal.WithError(err))
			}
			return internal.ErrInternal("failed to update counter", internal.WithError(err))
		}

		c.LogInfo("counter updated", "user_id", doc.UserID, "document_id", doc.DocumentID, "delta", delta, "event_id", ev.ID)
		return c.NoContent(http.StatusNoContent)
	}
}
