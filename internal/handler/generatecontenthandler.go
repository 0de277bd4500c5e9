package handler

import (
	"net/http"

	"github.com/zeromicro/go-zero/rest/httpx"

	"lessonapi/internal/logic"
	"lessonapi/internal/svc"
	"lessonapi/internal/types"
)

// GenerateContentHandler handles POST /generate-content. A payload whose day
// entries cannot be enumerated fails the whole batch with a 500 and an error
// body; everything else answers 200 with one record per day.
func GenerateContentHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.GenerateContentRequest
		if err := httpx.Parse(r, &req); err != nil {
			httpx.WriteJsonCtx(r.Context(), w, http.StatusInternalServerError, types.ErrorResponse{Error: err.Error()})
			return
		}

		l := logic.NewGenerateContentLogic(r.Context(), svcCtx)
		resp, err := l.GenerateContent(&req)
		if err != nil {
			httpx.WriteJsonCtx(r.Context(), w, http.StatusInternalServerError, types.ErrorResponse{Error: err.Error()})
			return
		}
		httpx.OkJsonCtx(r.Context(), w, resp)
	}
}
