package schedule

import (
	"context"
	"time"
)

// Noop заглушка кэша для конфигурации без Redis.
// Всегда промахивается на чтении и молча проглатывает записи.
type Noop struct{}

// NewNoop создает заглушку кэша
func NewNoop() *Noop {
	return &Noop{}
}

func (*Noop) Get(_ context.Context, _ int64, _ time.Time, _ interface{}) error {
	return ErrCacheMiss
}

func (*Noop) Set(_ context.Context, _ int64, _ time.Time, _ interface{}) error {
	return nil
}

func (*Noop) Invalidate(_ context.Context, _ int64, _ time.Time) error {
	return nil
}
