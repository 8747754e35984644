package curvefit_test

import (
	"fmt"

	"honnef.co/go/curvefit"
)

func ExampleFitter() {
	f := curvefit.NewFitter(curvefit.DefaultOptions)
	f.AddPoint(2, curvefit.Vec(4, 2, 0))
	f.AddPoint(0, curvefit.Vec(0, 0, 0))
	f.AddPoint(1, curvefit.Vec(2, 1, 0))
	f.SortPoints()
	if err := f.ComputeTangents(1); err != nil {
		panic(err)
	}
	f.Print()

	h, err := f.MakeHermite()
	if err != nil {
		panic(err)
	}
	p := h.Eval(0.5)
	fmt.Printf("halfway: %.3f, %.3f, %.3f\n", p.X, p.Y, p.Z)

	// Output:
	// Time 0 point 0, 0, 0 tan 2, 1, 0
	// Time 1 point 2, 1, 0 tan 2, 1, 0
	// Time 2 point 4, 2, 0 tan 2, 1, 0
	// halfway: 1.000, 0.500, 0.000
}

func ExampleFitter_WrapHPR() {
	var f curvefit.Fitter
	f.AddPoint(0, curvefit.Vec(170, 0, 350))
	f.AddPoint(1, curvefit.Vec(-170, 0, 10))
	f.WrapHPR()
	fmt.Println(f.At(1).Point.X, f.At(1).Point.Z)

	// Output:
	// 190 370
}

func ExampleFitter_Desample() {
	var f curvefit.Fitter
	for i := range 5 {
		f.AddPoint(float64(i), curvefit.Vec(float64(i), 0, 0))
	}
	if err := f.ComputeTangents(1); err != nil {
		panic(err)
	}
	fmt.Println("removed:", f.Desample(1e-9))
	fmt.Println("kept:", f.Len())

	// Output:
	// removed: 3
	// kept: 2
}
