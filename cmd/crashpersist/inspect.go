// cmd/crashpersist/inspect.go
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tamzrod/crash-persist/internal/persist"
)

func newInspectCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect",
		Short: "Show the region state without consuming the report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sess, err := opts.openSession(false)
			if err != nil {
				return err
			}
			defer sess.Close()

			r := sess.store.Region()
			rec := sess.store.Peek()

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "state:     %s\n", rec.State)
			fmt.Fprintf(out, "framing:   %s\n", framingName(sess.store.Config().Framing))
			fmt.Fprintf(out, "size:      %d\n", r.Size())
			fmt.Fprintf(out, "word_size: %d\n", r.WordSize())
			fmt.Fprintf(out, "capacity:  %d\n", rec.Capacity)
			if rec.State != persist.StateAbsent {
				fmt.Fprintf(out, "length:    %d\n", rec.Length)
			}
			return nil
		},
	}
}

func framingName(f persist.Framing) string {
	if f == persist.FramingRaw {
		return "raw"
	}
	return "header"
}
