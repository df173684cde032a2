// Package health provides the liveness and readiness probes served by
// the operational HTTP server.
//
// # Liveness vs Readiness
//
// The liveness probe (/healthz) only reports that the process is
// running. It never runs component checks, so orchestrators can poll
// it aggressively without load.
//
// The readiness probe (/readyz) runs every registered component check
// concurrently and responds 503 when any component is unhealthy. Each
// check runs under a timeout so a stuck component cannot stall the
// probe.
//
// # Usage
//
//	checker := health.New(5 * time.Second)
//	checker.RegisterCheck("scheduler", func(ctx context.Context) error {
//	    if !sched.IsRunning() {
//	        return errors.New("scheduler not running")
//	    }
//	    return nil
//	})
//
//	mux.Handle("/healthz", checker.LivenessHandler())
//	mux.Handle("/readyz", checker.ReadinessHandler())
package health
