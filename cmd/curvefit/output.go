package main

import (
	"fmt"
	"strings"
)

// outputFormat selects what the fit command prints.
type outputFormat string

const (
	outputSamples outputFormat = "samples"
	outputCSV     outputFormat = "csv"
	outputHermite outputFormat = "hermite"
	outputNurbs   outputFormat = "nurbs"
)

var outputFormats = []outputFormat{outputSamples, outputCSV, outputHermite, outputNurbs}

func (o *outputFormat) String() string {
	return string(*o)
}

// Set implements pflag.Value.
func (o *outputFormat) Set(value string) error {
	for _, f := range outputFormats {
		if string(f) == value {
			*o = f
			return nil
		}
	}
	names := make([]string, len(outputFormats))
	for i, f := range outputFormats {
		names[i] = string(f)
	}
	return fmt.Errorf("must be one of %s", strings.Join(names, ", "))
}

func (o *outputFormat) Type() string {
	return "format"
}
