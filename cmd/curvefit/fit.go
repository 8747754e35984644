package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"honnef.co/go/curvefit"
	"honnef.co/go/curvefit/internal/pipeline"
)

var fitExample = `  # print the samples after sorting and computing tangents
  curvefit fit --input samples.csv --config pipeline.yaml

  # emit a NURBS curve, reading samples from standard input
  curvefit generate --count 10 | curvefit fit --config pipeline.toml --output nurbs`

type fitOptions struct {
	Input  string
	Config string
	Output outputFormat

	In     io.Reader
	Out    io.Writer
	Logger *logrus.Logger
}

func (o *fitOptions) AddFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&o.Input, "input", "i", "-", "Sample CSV file (t,x,y,z); - reads standard input")
	fs.StringVarP(&o.Config, "config", "c", "", "Pipeline file (.yaml or .toml); empty runs no steps")
	fs.VarP(&o.Output, "output", "o", "Output: samples, csv, hermite or nurbs")
}

func newFitCommand(logger *logrus.Logger) *cobra.Command {
	o := &fitOptions{Output: outputSamples, Logger: logger}
	cmd := &cobra.Command{
		Use:     "fit",
		Short:   "Run a pipeline over samples and print the result",
		Example: fitExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			o.In = cmd.InOrStdin()
			o.Out = cmd.OutOrStdout()
			return o.Run()
		},
	}
	o.AddFlags(cmd.Flags())
	return cmd
}

func (o *fitOptions) Run() error {
	log := o.Logger.WithField("input", o.Input)

	cfg := &pipeline.Config{}
	if o.Config != "" {
		var err error
		cfg, err = pipeline.Load(o.Config)
		if err != nil {
			return err
		}
		log = log.WithField("config", o.Config)
	}

	f := curvefit.NewFitter(cfg.Options())
	n, err := o.readSamples(f)
	if err != nil {
		return fmt.Errorf("reading samples: %w", err)
	}
	log.WithField("samples", n).Info("loaded samples")

	if err := pipeline.Run(f, cfg, log); err != nil {
		return err
	}
	log.WithField("samples", f.Len()).Info("pipeline finished")

	return o.write(f)
}

func (o *fitOptions) readSamples(f *curvefit.Fitter) (int, error) {
	if o.Input == "-" {
		return pipeline.ReadSamples(o.In, f)
	}
	fp, err := os.Open(o.Input)
	if err != nil {
		return 0, err
	}
	defer fp.Close()
	return pipeline.ReadSamples(fp, f)
}

func (o *fitOptions) write(f *curvefit.Fitter) error {
	switch o.Output {
	case outputCSV:
		return pipeline.WriteSamples(o.Out, f)
	case outputHermite:
		h, err := f.MakeHermite()
		if err != nil {
			return err
		}
		_, err = h.WriteTo(o.Out)
		return err
	case outputNurbs:
		nc, err := f.MakeNurbs()
		if err != nil {
			return err
		}
		_, err = nc.WriteTo(o.Out)
		return err
	default:
		_, err := f.WriteTo(o.Out)
		return err
	}
}
