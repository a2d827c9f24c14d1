// Package logger provides slog attribute helpers shared by the auth
// service and the expiry reaper.
//
// Helpers follow the empty-Attr pattern: nil or empty inputs produce an
// attribute slog drops, so call sites stay free of nil checks:
//
//	log.Error("sweep failed",
//		logger.Component("reaper"),
//		logger.Namespace("sessions"),
//		logger.Error(err),
//	)
package logger
