package yin

import (
	"errors"
	"fmt"
	"math"
)

const (
	// DefaultThreshold is the absolute threshold under which a normalized
	// difference value counts as a genuine periodicity dip.
	DefaultThreshold = 0.15

	// DefaultMinFreq is the lowest fundamental frequency considered, in Hz.
	// It bounds the largest lag the detector evaluates.
	DefaultMinFreq = 100.0
)

// Errors returned by the detector for degenerate input.
var (
	ErrEmptyFrame    = errors.New("yin: empty frame")
	ErrFrameTooShort = errors.New("yin: frame too short to test any lag")
)

// Config holds pitch detection parameters.
//
// Zero values take documented defaults; SampleRate is required.
type Config struct {
	// SampleRate is the frame sample rate in Hz. Required.
	SampleRate float64

	// MinFreq is the lowest detectable frequency in Hz. It determines the
	// maximum evaluated lag, floor(SampleRate/MinFreq). Defaults to
	// DefaultMinFreq.
	MinFreq float64

	// Threshold is the absolute threshold on the normalized difference
	// curve, in (0, 1). Defaults to DefaultThreshold.
	Threshold float64

	// Difference selects how the lag-domain difference curve is computed.
	// Defaults to DifferenceAuto.
	Difference DifferenceMethod
}

// Result holds the outcome of a single frame analysis.
//
// A zero Result (Frequency == 0) means no periodicity crossed the threshold.
type Result struct {
	// Frequency is the estimated fundamental in Hz, or 0 when no pitch
	// was found.
	Frequency float64

	// Confidence is 1 minus the normalized difference at the chosen lag.
	// Values approach 1 for clean periodic input and are 0 when no pitch
	// was found.
	Confidence float64

	// Lag is the refined pitch period in samples, or 0 when no pitch was
	// found.
	Lag float64
}

// Detected reports whether the frame contained a detectable pitch.
func (r Result) Detected() bool { return r.Frequency > 0 }

// Detector estimates the fundamental frequency of audio frames.
//
// A Detector is immutable after construction and safe for concurrent use on
// independent frames.
type Detector struct {
	cfg    Config
	maxLag int
}

// New creates a detector, validating the configuration and applying defaults.
func New(cfg Config) (*Detector, error) {
	cfg, err := normalizeConfig(cfg)
	if err != nil {
		return nil, err
	}

	return &Detector{
		cfg:    cfg,
		maxLag: int(cfg.SampleRate / cfg.MinFreq),
	}, nil
}

// Config returns the effective configuration after defaulting.
func (d *Detector) Config() Config { return d.cfg }

// MaxLag returns the largest lag evaluated for a sufficiently long frame,
// floor(SampleRate/MinFreq). Shorter frames clamp it to the frame length.
func (d *Detector) MaxLag() int { return d.maxLag }

// Estimate returns the fundamental frequency of frame in Hz using default
// parameters, or 0 when no pitch is found.
func Estimate(frame []float64, sampleRate float64) (float64, error) {
	det, err := New(Config{SampleRate: sampleRate})
	if err != nil {
		return 0, err
	}

	res, err := det.Detect(frame)
	if err != nil {
		return 0, err
	}

	return res.Frequency, nil
}

// Detect estimates the fundamental frequency of a single frame.
//
// The frame must contain at least two samples. Frames shorter than the
// configured maximum lag clamp the lag range to the frame length. A frame
// without periodicity above the threshold yields a zero Result and nil error.
func (d *Detector) Detect(frame []float64) (Result, error) {
	if len(frame) == 0 {
		return Result{}, ErrEmptyFrame
	}

	maxLag := d.maxLag
	if maxLag > len(frame) {
		maxLag = len(frame)
	}

	if maxLag < 2 {
		return Result{}, fmt.Errorf("%w: %d samples, need at least 2", ErrFrameTooShort, len(frame))
	}

	curve := d.difference(frame, maxLag)

	// A difference curve that sums to zero (silence, DC) carries no
	// periodicity information; the unnormalized zeros would otherwise sit
	// below any threshold.
	if cumulativeMeanNormalize(curve) == 0 {
		return Result{}, nil
	}

	betterTau := absoluteThreshold(curve, d.cfg.Threshold)
	if betterTau < 0 {
		return Result{}, nil
	}

	lag := refineLag(curve, betterTau)

	return Result{
		Frequency:  d.cfg.SampleRate / lag,
		Confidence: 1 - curve[betterTau],
		Lag:        lag,
	}, nil
}

// DetectFrames runs Detect over consecutive frames of frameSize samples,
// advancing by hop samples between frames. Each frame is analyzed
// independently; no state is shared between calls.
func (d *Detector) DetectFrames(samples []float64, frameSize, hop int) ([]Result, error) {
	if frameSize <= 0 {
		return nil, fmt.Errorf("yin: frame size must be > 0: %d", frameSize)
	}

	if hop <= 0 {
		return nil, fmt.Errorf("yin: hop must be > 0: %d", hop)
	}

	if len(samples) < frameSize {
		return nil, fmt.Errorf("%w: %d samples, frame size %d", ErrFrameTooShort, len(samples), frameSize)
	}

	results := make([]Result, 0, 1+(len(samples)-frameSize)/hop)

	for start := 0; start+frameSize <= len(samples); start += hop {
		res, err := d.Detect(samples[start : start+frameSize])
		if err != nil {
			return nil, err
		}

		results = append(results, res)
	}

	return results, nil
}

// cumulativeMeanNormalize rescales the difference curve in place so that a
// fixed absolute threshold is meaningful regardless of signal amplitude.
// Index 0 is set to 1 by convention and is never selected. Returns the final
// running sum; zero means the curve carried no information.
func cumulativeMeanNormalize(curve []float64) float64 {
	curve[0] = 1

	runningSum := 0.0
	for tau := 1; tau < len(curve); tau++ {
		runningSum += curve[tau]
		// A zero running sum means every difference so far was zero;
		// leave the raw value unscaled rather than divide by zero.
		if runningSum > 0 {
			curve[tau] *= float64(tau) / runningSum
		}
	}

	return runningSum
}

// absoluteThreshold returns the lag of the local minimum inside the first dip
// of the normalized curve under threshold, or -1 when no value crosses it.
func absoluteThreshold(curve []float64, threshold float64) int {
	for tau := 1; tau < len(curve); tau++ {
		if curve[tau] >= threshold {
			continue
		}

		// Walk downhill to the trough of the dip so the estimate does
		// not lock onto its leading edge.
		for tau+1 < len(curve) && curve[tau+1] < curve[tau] {
			tau++
		}

		return tau
	}

	return -1
}

// refineLag improves the integer lag estimate with parabolic interpolation
// through its two neighbors. Lags at either end of the curve are returned
// unrefined.
func refineLag(curve []float64, tau int) float64 {
	if tau <= 0 || tau >= len(curve)-1 {
		return float64(tau)
	}

	s0 := curve[tau-1]
	s1 := curve[tau]
	s2 := curve[tau+1]

	divisor := 2*s1 - s2 - s0
	if divisor == 0 {
		return float64(tau)
	}

	return float64(tau) + (s2-s0)/(2*divisor)
}

func normalizeConfig(cfg Config) (Config, error) {
	if cfg.SampleRate <= 0 || math.IsNaN(cfg.SampleRate) || math.IsInf(cfg.SampleRate, 0) {
		return cfg, fmt.Errorf("yin: sample rate must be positive and finite: %v", cfg.SampleRate)
	}

	if cfg.MinFreq == 0 {
		cfg.MinFreq = DefaultMinFreq
	}

	if cfg.MinFreq <= 0 || math.IsNaN(cfg.MinFreq) || math.IsInf(cfg.MinFreq, 0) {
		return cfg, fmt.Errorf("yin: min frequency must be positive and finite: %v", cfg.MinFreq)
	}

	if int(cfg.SampleRate/cfg.MinFreq) < 2 {
		return cfg, fmt.Errorf("yin: min frequency %v leaves no testable lag at sample rate %v",
			cfg.MinFreq, cfg.SampleRate)
	}

	if cfg.Threshold == 0 {
		cfg.Threshold = DefaultThreshold
	}

	if cfg.Threshold <= 0 || cfg.Threshold >= 1 || math.IsNaN(cfg.Threshold) {
		return cfg, fmt.Errorf("yin: threshold must be in (0, 1): %v", cfg.Threshold)
	}

	if cfg.Difference < DifferenceAuto || cfg.Difference > DifferenceFFT {
		return cfg, fmt.Errorf("yin: unknown difference method: %d", cfg.Difference)
	}

	return cfg, nil
}
