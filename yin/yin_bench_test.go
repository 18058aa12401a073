package yin

import (
	"fmt"
	"testing"

	"github.com/cwbudde/algo-pitch/internal/testutil"
)

func BenchmarkDetector_Detect(b *testing.B) {
	sizes := []int{512, 1024, 4096}

	methods := map[string]DifferenceMethod{
		"direct": DifferenceDirect,
		"fft":    DifferenceFFT,
	}

	for name, method := range methods {
		for _, size := range sizes {
			b.Run(fmt.Sprintf("%s/%d", name, size), func(b *testing.B) {
				det, err := New(Config{SampleRate: 44100, Difference: method})
				if err != nil {
					b.Fatalf("New: %v", err)
				}

				sig := testutil.DeterministicSine(220, 44100, 1.0, size)

				b.SetBytes(int64(size * 8))
				b.ResetTimer()

				for range b.N {
					if _, err := det.Detect(sig); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}

func BenchmarkEstimate(b *testing.B) {
	sig := testutil.DeterministicSine(220, 44100, 1.0, 1000)

	b.SetBytes(int64(len(sig) * 8))

	for range b.N {
		if _, err := Estimate(sig, 44100); err != nil {
			b.Fatal(err)
		}
	}
}
