// Command curvefit fits Hermite and NURBS curves to timed 3D samples.
package main

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	cmd := newRootCommand(logger, os.Stdin, os.Stdout)
	if err := cmd.Execute(); err != nil {
		logger.WithError(err).Error("curvefit failed")
		os.Exit(1)
	}
}

func newRootCommand(logger *logrus.Logger, in io.Reader, out io.Writer) *cobra.Command {
	var level string
	cmd := &cobra.Command{
		Use:           "curvefit",
		Short:         "Fit smooth curves to timed 3D samples",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			lvl, err := logrus.ParseLevel(level)
			if err != nil {
				return err
			}
			logger.SetLevel(lvl)
			return nil
		},
	}
	cmd.SetIn(in)
	cmd.SetOut(out)
	cmd.PersistentFlags().StringVar(&level, "log-level", "info", "Log level (panic, fatal, error, warn, info, debug, trace)")

	cmd.AddCommand(
		newFitCommand(logger),
		newGenerateCommand(logger),
	)
	return cmd
}
