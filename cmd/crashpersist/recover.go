// cmd/crashpersist/recover.go
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tamzrod/crash-persist/internal/persist"
	"github.com/tamzrod/crash-persist/internal/sink"
)

func newRecoverCmd(opts *rootOptions) *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "recover",
		Short: "Take the previous boot's crash report and deliver it",
		Long: `Reads the region once. A recovered report is printed to stdout and
handed to every configured sink; the region is cleared either way, so a
second run in the same boot finds nothing.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRecover(cmd, opts, quiet)
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Do not print the report to stdout")

	return cmd
}

func runRecover(cmd *cobra.Command, opts *rootOptions, quiet bool) error {
	logger := opts.logger(cmd)

	sess, err := opts.openSession(false)
	if err != nil {
		return err
	}
	defer sess.Close()

	sinks, closeSinks, err := sink.Build(sess.cfg.CrashPersist.Sinks)
	if err != nil {
		return err
	}
	defer closeSinks()

	rec := sess.store.Peek()
	logger.Debug("region inspected",
		"state", rec.State,
		"length", rec.Length,
		"capacity", rec.Capacity,
	)

	msg, ok := sess.store.Take()
	if !ok {
		if rec.State == persist.StateCorrupt {
			logger.Warn("discarded corrupt crash record", "length", rec.Length, "capacity", rec.Capacity)
		} else {
			logger.Info("no crash report from previous boot")
		}
		return sink.ClearAll(sinks)
	}

	logger.Warn("crash report recovered", "bytes", len(msg), "sinks", len(sinks))

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "%s", msg)
		if len(msg) > 0 && msg[len(msg)-1] != '\n' {
			fmt.Fprintln(cmd.OutOrStdout())
		}
	}

	if err := sink.DeliverAll(sinks, msg); err != nil {
		return err
	}

	logger.Debug("crash report delivered")
	return nil
}
