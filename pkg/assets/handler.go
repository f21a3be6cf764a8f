package assets

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/openauthenticator/site/internal"
	"github.com/openauthenticator/site/pkg/storage"
)

// DefaultNamespace is the storage namespace and URL directory the build
// artifacts are served from.
const DefaultNamespace = "get-info-from-parent"

// Handler serves build artifacts out of a named storage namespace.
type Handler struct {
	dir       string
	namespace string
}

// NewHandler creates a handler serving /<dir>/... from the storage mounted
// under namespace. Empty arguments fall back to DefaultNamespace.
func NewHandler(dir, namespace string) *Handler {
	dir = strings.Trim(dir, "/")
	if dir == "" {
		dir = DefaultNamespace
	}
	if namespace == "" {
		namespace = DefaultNamespace
	}
	return &Handler{dir: dir, namespace: namespace}
}

// Routes registers the artifact routes:
//
//	GET /<dir>/
//	GET /<dir>/{file}
//	GET /<dir>/{directory}/{file}
func (h *Handler) Routes(r internal.Router) {
	r.Route("/"+h.dir, func(r internal.Router) {
		r.GET("/", h.serve)
		r.GET("/{file}", h.serve)
		r.GET("/{directory}/{file}", h.serve)
	})
}

func (h *Handler) serve(c internal.Context) error {
	file := c.Param("file")
	if file == "" {
		return internal.ErrNotFound("not found")
	}

	key := file
	if dir := c.Param("directory"); dir != "" {
		key = dir + "/" + file
	}

	store, err := c.Storage(h.namespace)
	if err != nil {
		return internal.ErrInternal("storage unavailable", internal.WithError(err))
	}

	rc, err := store.Get(c.Context(), key)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) || errors.Is(err, storage.ErrInvalidKey) {
			return internal.ErrNotFound("not found", internal.WithError(err))
		}
		return internal.ErrInternal("failed to read asset", internal.WithError(err))
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return internal.ErrInternal("failed to read asset", internal.WithError(err))
	}
	if len(data) == 0 {
		return internal.ErrNotFound("not found")
	}

	return c.Blob(http.StatusOK, storage.ContentTypeByName(key), data)
}
