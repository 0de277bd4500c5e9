package handler

import (
	"net/http"

	"github.com/zeromicro/go-zero/rest"

	"lessonapi/internal/svc"
)

func RegisterHandlers(server *rest.Server, serverCtx *svc.ServiceContext) {
	server.AddRoutes(
		[]rest.Route{
			{
				Method:  http.MethodGet,
				Path:    "/",
				Handler: IndexHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/healthz",
				Handler: HealthHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/generate-content",
				Handler: GenerateContentHandler(serverCtx),
			},
		},
	)
}
