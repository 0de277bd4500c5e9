package logic

import (
	"context"

	"github.com/zeromicro/go-zero/core/logx"

	"lessonapi/internal/svc"
	"lessonapi/internal/types"
	"lessonapi/pkg/planner"
)

type GenerateContentLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewGenerateContentLogic(ctx context.Context, svcCtx *svc.ServiceContext) *GenerateContentLogic {
	return &GenerateContentLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// GenerateContent builds one lesson record per submitted day. Per-day
// failures are absorbed by the planner; the only error this returns is a
// batch-level one (a payload whose days cannot be enumerated).
func (l *GenerateContentLogic) GenerateContent(req *types.GenerateContentRequest) (*types.GenerateContentResponse, error) {
	days := make([]planner.DayInput, 0, len(req.Days))
	for _, day := range req.Days {
		days = append(days, planner.DayInput{
			Topic:     day.Topic,
			Knowledge: day.Knowledge,
			Skill:     day.Skill,
		})
	}

	l.Infof("generate content for %d day(s)", len(days))
	results := l.svcCtx.Planner.BuildPlans(l.ctx, days)

	return &types.GenerateContentResponse{Results: results}, nil
}
