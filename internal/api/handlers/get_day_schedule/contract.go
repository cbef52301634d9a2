package get_day_schedule

import (
	"context"

	scheduleUC "github.com/m04kA/RBM-ScheduleService/internal/usecase/get_day_schedule"
)

type ScheduleUseCase interface {
	Execute(ctx context.Context, req *scheduleUC.Request) (*scheduleUC.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
