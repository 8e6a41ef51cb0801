// cmd/crashpersist/crash.go
package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/tamzrod/crash-persist/internal/persist"
)

func newCrashCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "crash <text...>",
		Short: "Panic through the capture path",
		Long: `Installs the configured store and panics with the given text. The
panic is written into the region and the configured platform then resets
or halts. With platform "host" this reboots the machine.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := opts.logger(cmd)

			sess, err := opts.openSession(true)
			if err != nil {
				return err
			}
			// no Close: the mapping must stay live until the platform terminates

			persist.Install(sess.store)
			logger.Warn("crashing on request", "platform", sess.cfg.CrashPersist.Platform)

			defer persist.Recover()
			panic(strings.Join(args, " "))
		},
	}
}
