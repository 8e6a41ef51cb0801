// cmd/crashpersist/root.go
package main

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/tamzrod/crash-persist/internal/config"
	"github.com/tamzrod/crash-persist/internal/persist"
	"github.com/tamzrod/crash-persist/internal/platform"
	"github.com/tamzrod/crash-persist/internal/region"
)

const rootLongDesc string = `crashpersist carries one crash report across a warm reset.

A reserved RAM region (or any backing file) holds the message written by
the failure handler; on the next boot it is recovered exactly once:
  crashpersist recover      Take the report and deliver it to the sinks
  crashpersist report       Persist a preformatted report
  crashpersist inspect      Show the region state without consuming it
  crashpersist crash        Panic through the capture path (reset/halt)`

type rootOptions struct {
	configPath string
	debug      bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "crashpersist",
		Short:         "Persist crash reports across warm resets",
		Long:          rootLongDesc,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "/etc/crashpersist.yaml", "Path to config file")
	cmd.PersistentFlags().BoolVarP(&opts.debug, "debug", "d", false, "Enable debug logging")

	cmd.AddCommand(
		newRecoverCmd(opts),
		newReportCmd(opts),
		newInspectCmd(opts),
		newCrashCmd(opts),
	)

	return cmd
}

// ---- shared wiring ----

func newLogger(w io.Writer, debug bool) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "crashpersist",
	})
	if debug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

func (o *rootOptions) logger(cmd *cobra.Command) *log.Logger {
	return newLogger(cmd.ErrOrStderr(), o.debug)
}

// session is everything a command needs once the config is applied.
type session struct {
	cfg   *config.Config
	store *persist.Store
	unmap func() error
}

func (s *session) Close() error {
	if s.unmap == nil {
		return nil
	}
	return s.unmap()
}

// openSession loads the config and maps the region.
// withPlatform attaches the configured reset primitive (capture paths only).
func (o *rootOptions) openSession(withPlatform bool) (*session, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, err
	}
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	config.Normalize(cfg)

	pc, err := cfg.PersistConfig()
	if err != nil {
		return nil, err
	}

	var p persist.Platform
	if withPlatform {
		kind, err := platform.ParseKind(cfg.CrashPersist.Platform)
		if err != nil {
			return nil, err
		}
		if p, err = platform.New(kind); err != nil {
			return nil, err
		}
	}

	rc := cfg.CrashPersist.Region
	r, unmap, err := region.Map(rc.Path, rc.Offset, rc.Size, rc.WordSize)
	if err != nil {
		return nil, err
	}

	return &session{
		cfg:   cfg,
		store: persist.NewStore(r, pc, p),
		unmap: unmap,
	}, nil
}
