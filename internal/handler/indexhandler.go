package handler

import (
	"net/http"
	"path/filepath"

	"lessonapi/internal/svc"
)

// IndexHandler serves the front-end entry file. Not part of the core; the
// remaining static assets go through the rest server's file server.
func IndexHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, filepath.Join(svcCtx.Config.StaticDir, "index.html"))
	}
}
