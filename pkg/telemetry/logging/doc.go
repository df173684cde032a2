// Package logging constructs the process logger for tracegen and the
// examples.
//
// The package is a thin layer over log/slog: it parses the configured
// level and format, picks the matching handler (JSON by default), and
// returns a *slog.Logger ready for injection. Components throughout the
// repository accept *slog.Logger directly and fall back to
// slog.Default() when given nil, so this package is only involved at
// process startup:
//
//	logger, err := logging.New(cfg.Telemetry.Logging, nil)
//	if err != nil {
//	    return err
//	}
//	slog.SetDefault(logger)
package logging
