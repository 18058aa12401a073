// Package yin provides monophonic fundamental-frequency estimation for short
// audio frames using the YIN algorithm.
//
// The estimator is a pure computation over an in-memory buffer: it computes a
// lag-domain difference curve, normalizes it by the cumulative mean, picks the
// first lag whose normalized difference dips below an absolute threshold,
// refines that lag with parabolic interpolation, and converts the refined lag
// to a frequency in Hz.
//
// A frequency of 0 is the sentinel for "no pitch found" and is never produced
// by a genuine detection (lag >= 1 always maps to a finite positive
// frequency). Absence of periodicity is a normal outcome, not an error.
//
// # Usage
//
// One-shot estimation with default parameters:
//
//	freq, err := yin.Estimate(frame, 44100)
//
// Reusable detector with tuned parameters:
//
//	det, err := yin.New(yin.Config{
//	    SampleRate: 48000,
//	    MinFreq:    80,
//	    Threshold:  0.1,
//	})
//	res, err := det.Detect(frame)
//	if res.Detected() {
//	    // res.Frequency, res.Confidence, res.Lag
//	}
//
// A Detector holds no mutable state after construction, so independent frames
// may be analyzed concurrently without synchronization.
package yin
