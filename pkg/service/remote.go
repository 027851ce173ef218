package service

import (
	"context"

	"github.com/timekeep/timekeep-go/pkg/client"
	"github.com/timekeep/timekeep-go/pkg/timer"
)

// Remote defines the timer API operations used by Timers. It is satisfied by
// *client.Client.
type Remote interface {
	ListTimers(ctx context.Context) ([]timer.Timer, error)
	ListCurrentTimers(ctx context.Context) ([]timer.Timer, error)
	CreateTimer(ctx context.Context, t timer.Timer) (timer.Timer, error)
	CreateCurrentTimer(ctx context.Context, t timer.Timer) (timer.Timer, error)
	DeleteCurrentTimer(ctx context.Context, id any) error
	ReplaceCurrentTimer(ctx context.Context, id any, t timer.Timer) error
}

// Compile-time check: *client.Client implements Remote.
var _ Remote = (*client.Client)(nil)
