package yin_test

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-pitch/signal"
	"github.com/cwbudde/algo-pitch/yin"
)

func ExampleEstimate() {
	// Silence carries no periodicity; the sentinel 0 means "no pitch".
	freq, _ := yin.Estimate(make([]float64, 1024), 44100)
	fmt.Println(freq)
	// Output:
	// 0
}

func ExampleDetector_Detect() {
	gen := signal.NewGenerator(signal.WithSampleRate(44100))
	frame, _ := gen.Sine(220, 1.0, 2048)

	det, _ := yin.New(yin.Config{SampleRate: 44100})
	res, _ := det.Detect(frame)

	fmt.Printf("detected=%t within 1%%=%t confident=%t\n",
		res.Detected(),
		math.Abs(res.Frequency-220) < 2.2,
		res.Confidence > 0.85)
	// Output:
	// detected=true within 1%=true confident=true
}

func ExampleDetector_DetectFrames() {
	gen := signal.NewGenerator(signal.WithSampleRate(44100))
	low, _ := gen.Sine(220, 1.0, 2048)
	high, _ := gen.Sine(440, 1.0, 2048)

	det, _ := yin.New(yin.Config{SampleRate: 44100})
	results, _ := det.DetectFrames(append(low, high...), 2048, 2048)

	for _, res := range results {
		fmt.Printf("%.0f\n", math.Round(res.Frequency/10)*10)
	}
	// Output:
	// 220
	// 440
}
