package handler

import (
	"net/http"

	"github.com/zeromicro/go-zero/rest/httpx"

	"lessonapi/internal/logic"
	"lessonapi/internal/svc"
)

func HealthHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l := logic.NewHealthLogic(r.Context(), svcCtx)
		httpx.OkJsonCtx(r.Context(), w, l.Health())
	}
}
