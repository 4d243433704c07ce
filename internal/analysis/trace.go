package analysis

import "math"

// Stats summarizes a scalar trace.
type Stats struct {
	Samples int
	Mean    float64
	StdDev  float64
	Min     float64
	Max     float64
}

func TraceStats(trace []float64) Stats {
	n := len(trace)
	if n == 0 {
		return Stats{}
	}

	s := Stats{Samples: n, Min: trace[0], Max: trace[0]}
	for _, v := range trace {
		s.Mean += v
		if v < s.Min {
			s.Min = v
		}
		if v > s.Max {
			s.Max = v
		}
	}
	s.Mean /= float64(n)

	if n > 1 {
		var ss float64
		for _, v := range trace {
			d := v - s.Mean
			ss += d * d
		}
		s.StdDev = math.Sqrt(ss / float64(n-1))
	}
	return s
}

// Autocorrelation returns the normalized autocorrelation function up to
// maxLag. Lag 0 is always 1 for a trace with nonzero variance.
func Autocorrelation(trace []float64, maxLag int) []float64 {
	n := len(trace)
	if n == 0 || maxLag < 0 {
		return nil
	}
	if maxLag >= n {
		maxLag = n - 1
	}

	mean := 0.0
	for _, v := range trace {
		mean += v
	}
	mean /= float64(n)

	var c0 float64
	for _, v := range trace {
		d := v - mean
		c0 += d * d
	}

	acf := make([]float64, maxLag+1)
	if c0 == 0 {
		return acf
	}
	for lag := 0; lag <= maxLag; lag++ {
		var c float64
		for i := 0; i+lag < n; i++ {
			c += (trace[i] - mean) * (trace[i+lag] - mean)
		}
		acf[lag] = c / c0
	}
	return acf
}

// IntegratedCorrelationTime estimates the decorrelation time in ticks by
// summing the autocorrelation function until it first drops below zero.
func IntegratedCorrelationTime(trace []float64) float64 {
	acf := Autocorrelation(trace, len(trace)/2)
	if len(acf) == 0 {
		return 0
	}
	tau := 0.5
	for _, c := range acf[1:] {
		if c <= 0 {
			break
		}
		tau += c
	}
	return tau
}

// BlockStandardError estimates the standard error of the trace mean by
// averaging over nonoverlapping blocks, which absorbs serial correlation
// when the block size exceeds the correlation time.
func BlockStandardError(trace []float64, blockSize int) float64 {
	if blockSize < 1 || len(trace) < 2*blockSize {
		return 0
	}
	nBlocks := len(trace) / blockSize
	means := make([]float64, nBlocks)
	for b := 0; b < nBlocks; b++ {
		var sum float64
		for i := b * blockSize; i < (b+1)*blockSize; i++ {
			sum += trace[i]
		}
		means[b] = sum / float64(blockSize)
	}
	s := TraceStats(means)
	return s.StdDev / math.Sqrt(float64(nBlocks))
}
