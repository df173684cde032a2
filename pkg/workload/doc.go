// Package workload generates synthetic trace trees for exercising the
// Cloud Trace exporter end to end.
//
// A Generator emits batches of traces shaped by config.WorkloadConfig:
// a server root span per trace, internal spans at intermediate depths,
// and client leaf spans, with uuid request ids, events, links between
// consecutive traces, slice-valued attributes, and a configurable
// fraction of failing leaves. A Scheduler drives the generator on a
// cron schedule.
//
// # Usage
//
//	gen := workload.NewGenerator(tracer, cfg.Workload, logger)
//	sched := workload.NewScheduler(gen, logger)
//	if err := sched.Start(ctx); err != nil {
//	    log.Fatal(err)
//	}
//	defer sched.Stop()
//
// One-shot generation without a schedule:
//
//	stats := gen.Run(ctx)
//	fmt.Printf("emitted %d traces (%d spans)\n", stats.Traces, stats.Spans)
package workload
