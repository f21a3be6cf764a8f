// Package site is the HTTP layer of the Open Authenticator website backend.
//
// It wraps a chi router in a small application type: handlers declare routes
// on a [Router], receive a [Context], and return errors that the app renders.
// Build artifacts from pkg/appinfo are served through a storage namespace,
// and static pages through public assets with fallthrough.
//
// # Quick Start
//
//	app := site.New(
//	    site.WithLogger("site", middlewares.RequestIDExtractor()),
//	    site.WithMiddleware(
//	        middlewares.RequestID(),
//	        middlewares.Recover(),
//	        middlewares.TrailingSlash(),
//	    ),
//	    site.WithPublicAssets("/", os.DirFS("public"), true),
//	    site.WithStorageNamespace(assets.DefaultNamespace, storage.NewDir("public/get-info-from-parent")),
//	    site.WithHandlers(assets.NewHandler("", "")),
//	    site.WithHealthChecks(),
//	)
//
//	if err := app.Run(":8080", site.Logger(log)); err != nil {
//	    log.Error("server stopped", "error", err)
//	}
//
// # Handlers
//
// Handlers implement [Handler]:
//
//	type VersionHandler struct{}
//
//	func (h *VersionHandler) Routes(r site.Router) {
//	    r.GET("/version", h.show)
//	}
//
//	func (h *VersionHandler) show(c site.Context) error {
//	    return c.JSON(http.StatusOK, map[string]string{"version": "1.0.0"})
//	}
//
// # Errors
//
// Returning an [HTTPError] renders its status. Any other error becomes a 500
// unless [WithErrorHandler] says otherwise.
package site
