package analysis

import (
	"math"
	"math/cmplx"
)

func fft(data []complex128) []complex128 {
	n := len(data)
	if n <= 1 {
		return data
	}

	even := make([]complex128, n/2)
	odd := make([]complex128, n/2)
	for i := 0; i < n/2; i++ {
		even[i] = data[2*i]
		odd[i] = data[2*i+1]
	}

	feven := fft(even)
	fodd := fft(odd)

	result := make([]complex128, n)
	for k := 0; k < n/2; k++ {
		w := cmplx.Exp(complex(0, -2*math.Pi*float64(k)/float64(n)))
		result[k] = feven[k] + w*fodd[k]
		result[k+n/2] = feven[k] - w*fodd[k]
	}
	return result
}

// PowerSpectrum returns the magnitude spectrum of the mean-subtracted trace.
// The trace is truncated to the largest power-of-two length.
func PowerSpectrum(trace []float64) []float64 {
	n := 1
	for n*2 <= len(trace) {
		n *= 2
	}
	if n < 2 {
		return nil
	}

	mean := 0.0
	for _, v := range trace[:n] {
		mean += v
	}
	mean /= float64(n)

	data := make([]complex128, n)
	for i := 0; i < n; i++ {
		data[i] = complex(trace[i]-mean, 0)
	}

	out := fft(data)
	ps := make([]float64, n/2)
	for i := range ps {
		ps[i] = cmplx.Abs(out[i])
	}
	return ps
}
