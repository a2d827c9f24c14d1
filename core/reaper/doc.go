// Package reaper runs the background sweep that evicts TTL-expired entries
// from storage backends without native expiry.
//
//	r := reaper.New(cfg.Interval, []reaper.Target{
//		{Name: "sessions", Sweeper: registry},
//		{Name: "usercache", Sweeper: userCache},
//	}, reaper.WithLogger(log))
//
//	go r.Run(ctx)
//
// Sweep failures are logged and retried on the next tick; the loop only
// ends when its context is canceled. The sweep only removes entries already
// past expiry at sweep time; entries written concurrently are untouched,
// because each backend's ClearExpired compares against its own clock at
// execution.
package reaper
