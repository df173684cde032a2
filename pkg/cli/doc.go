/*
Package cli provides command-line utilities for the tracegen command.

Output Formatting:

Command results can be rendered as plain text or JSON:

	formatter := cli.NewFormatter(cli.FormatJSON)
	if err := formatter.FormatTo(os.Stdout, result); err != nil {
		return err
	}

Signal Handling:

For graceful shutdown on SIGINT/SIGTERM:

	ctx := cli.SetupSignalHandler()
	// Use ctx for operations that should be cancelled on shutdown

Errors:

ConfigError and CommandError wrap failures so the command entry point
can report them uniformly and callers can unwrap the cause.
*/
package cli
