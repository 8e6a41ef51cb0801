// cmd/crashpersist/report.go
package main

import (
	"strings"

	"github.com/spf13/cobra"
)

func newReportCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "report <text...>",
		Short: "Persist a preformatted crash report",
		Long: `Writes the text into the region, replacing any report already there.
Text beyond the region capacity is dropped. Does not reset the machine.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := opts.logger(cmd)

			sess, err := opts.openSession(false)
			if err != nil {
				return err
			}
			defer sess.Close()

			text := strings.Join(args, " ")
			sess.store.Report(text)

			rec := sess.store.Peek()
			logger.Info("crash report stored",
				"bytes", rec.Length,
				"truncated", int(rec.Length) < len(text),
			)
			return nil
		},
	}
}
