package pipeline

import (
	"bytes"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"honnef.co/go/curvefit"
)

func TestReadSamples(t *testing.T) {
	const doc = `t,x,y,z
# recorded at 2 Hz
0, 1, 2, 3
0.5, 4, 5, 6
1,-1e3,0,7.25
`
	var f curvefit.Fitter
	n, err := ReadSamples(strings.NewReader(doc), &f)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	require.Equal(t, 3, f.Len())
	assert.Equal(t, 0.5, f.At(1).T)
	assert.Equal(t, curvefit.Vec(4, 5, 6), f.At(1).Point)
	assert.Equal(t, curvefit.Vec(-1000, 0, 7.25), f.At(2).Point)
}

func TestReadSamplesNoHeader(t *testing.T) {
	f := curvefit.NewFitter(curvefit.DefaultOptions)
	f.AddPoint(-1, curvefit.Vec(0, 0, 0))
	n, err := ReadSamples(strings.NewReader("2,1,1,1\n3,2,2,2\n"), f)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, 3, f.Len(), "samples are appended")
	assert.Equal(t, 2.0, f.At(1).T)
}

func TestReadSamplesErrors(t *testing.T) {
	var f curvefit.Fitter
	_, err := ReadSamples(strings.NewReader("0,1,2\n"), &f)
	assert.Error(t, err)

	n, err := ReadSamples(strings.NewReader("t,x,y,z\n0,1,2,3\n1,1,two,3\n"), &f)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "column y")
	assert.ErrorIs(t, err, strconv.ErrSyntax)
	assert.Equal(t, 1, n)
}

func TestWriteSamples(t *testing.T) {
	var f curvefit.Fitter
	f.AddPoint(0, curvefit.Vec(0, 0, 0))
	f.AddPoint(0.25, curvefit.Vec(1.5, -2, 1e-9))

	var buf bytes.Buffer
	require.NoError(t, WriteSamples(&buf, &f))
	assert.Equal(t, "t,x,y,z\n0,0,0,0\n0.25,1.5,-2,1e-09\n", buf.String())

	var g curvefit.Fitter
	n, err := ReadSamples(&buf, &g)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, f.Samples(), g.Samples())
}
