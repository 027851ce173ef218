// Package service ties the timer store to the remote timer API.
//
// Timers exposes the operations a front end invokes. Each remote operation
// issues exactly one request and, only when it succeeds, applies the matching
// store mutation:
//
//	FetchTimers         GET    /timers               -> SetTimers(response)
//	FetchCurrentTimers  GET    /currentTimers        -> SetCurrentTimers(response)
//	AddTimer            POST   /timers               -> AddTimer(request payload)
//	AddCurrentTimer     POST   /currentTimers        -> AddCurrentTimer(response)
//	RemoveCurrentTimer  DELETE /currentTimers/{id}   -> RemoveCurrentTimer(id)
//	UpdateCurrentTimer  (no request)                 -> UpdateCurrentTimer(timer)
//	PersistCurrentTimer PUT    /currentTimers/{id}   -> (no mutation)
//
// # Error Handling
//
// Fetch, add and remove operations return request failures to the caller and
// leave the store untouched. PersistCurrentTimer is the autosave path: it logs
// failures and never returns them.
//
// Example usage:
//
//	c, _ := client.New(client.Config{})
//	st := store.New(cfg.DefaultTimeout)
//	svc := service.New(st, c, service.Config{Logger: slog.Default()})
//
//	if err := svc.Refresh(ctx); err != nil {
//	    return err
//	}
//	_ = svc.AddCurrentTimer(ctx, timer.Timer{"start": time.Now().UnixMilli()})
package service
