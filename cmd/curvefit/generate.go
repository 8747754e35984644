package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"honnef.co/go/curvefit"
	"honnef.co/go/curvefit/internal/pipeline"
)

type generateOptions struct {
	Count    int
	Distance float64
	Time     float64
}

func (o *generateOptions) AddFlags(fs *pflag.FlagSet) {
	fs.IntVarP(&o.Count, "count", "n", 10, "Number of samples")
	fs.Float64Var(&o.Distance, "distance", 1, "Distance covered along the x axis")
	fs.Float64Var(&o.Time, "time", 1, "Time taken to cover the distance")
}

func newGenerateCommand(logger *logrus.Logger) *cobra.Command {
	o := &generateOptions{}
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a CSV of evenly spaced samples of straight motion",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var f curvefit.Fitter
			if err := f.GenerateEven(o.Count, o.Distance, o.Time); err != nil {
				return err
			}
			logger.WithFields(logrus.Fields{
				"count":    o.Count,
				"distance": o.Distance,
				"time":     o.Time,
			}).Debug("generated samples")
			return pipeline.WriteSamples(cmd.OutOrStdout(), &f)
		},
	}
	o.AddFlags(cmd.Flags())
	return cmd
}
