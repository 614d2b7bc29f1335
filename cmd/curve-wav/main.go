// Command curve-wav renders easing envelopes and Perlin noise to WAV files,
// or applies an eased fade to an existing WAV file.
//
// Usage:
//
//	curve-wav -mode tone -ease sin-in-out -attack 0.5 -release 1 out.wav
//	curve-wav -mode noise -freq 40 -duration 5 noise.wav
//	curve-wav -mode fade -ease expo-out -attack 0.2 -release 2 in.wav out.wav
//
// Channels are rendered concurrently by default; -parallel=false renders
// them one after another.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/tphakala/go-fmath"
)

const (
	// Frames rendered per chunk
	bufferSize = 65536

	// Channel count constants for fast paths
	monoChannels   = 1
	stereoChannels = 2

	// Sample format constants
	bitsPerSample16 = 16
	bitsPerSample24 = 24
	bitsPerSample32 = 32

	// Conversion constants
	maxInt16         = 32767.0
	maxInt24         = 8388607.0
	maxInt32         = 2147483647.0
	progressInterval = 10 // Print progress every N%
	percentScale     = 100

	// CLI defaults
	defaultRate      = 48000
	defaultBitDepth  = 16
	defaultChannels  = 2
	defaultDuration  = 3.0   // Seconds
	defaultFreq      = 440.0 // Tone frequency in Hz, noise lattice rate for -mode noise
	defaultAttack    = 0.25  // Seconds
	defaultRelease   = 1.0   // Seconds
	defaultAmplitude = 0.8
	defaultSpread    = 90.0 // Degrees of phase between tone channels

	// PCM audio format tag for the WAV encoder
	wavFormatPCM = 1

	// Lattice offset between noise channels so they decorrelate
	noiseChannelOffset = 31.7
)

// Render modes
const (
	modeTone  = "tone"
	modeNoise = "noise"
	modeFade  = "fade"
)

var errUsage = errors.New("insufficient arguments")

// renderConfig collects the options that shape a render.
type renderConfig struct {
	mode      string
	spec      fmath.EaseSpec
	rate      int
	bitDepth  int
	channels  int
	duration  float64
	freq      float64
	attack    float64
	release   float64
	amplitude float64
	spread    float64
	parallel  bool
	verbose   bool
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	// Parse command line flags
	mode := flag.String("mode", modeTone, "Render mode: tone, noise or fade")
	easeName := flag.String("ease", "sin-in-out", "Envelope curve for attack and release")
	exponent := flag.Float64("exponent", fmath.DefaultEaseExponent, "Exponent for ease-in/ease-out/ease-in-out")
	steps := flag.Int("steps", fmath.DefaultEaseSteps, "Levels for the step curve")
	rate := flag.Int("rate", defaultRate, "Output sample rate in Hz (tone and noise)")
	bitDepth := flag.Int("bits", defaultBitDepth, "Output bit depth: 16, 24 or 32 (tone and noise)")
	channels := flag.Int("channels", defaultChannels, "Output channel count (tone and noise)")
	duration := flag.Float64("duration", defaultDuration, "Length in seconds (tone and noise)")
	freq := flag.Float64("freq", defaultFreq, "Tone frequency or noise lattice points per second")
	attack := flag.Float64("attack", defaultAttack, "Attack time in seconds")
	release := flag.Float64("release", defaultRelease, "Release time in seconds")
	amplitude := flag.Float64("amplitude", defaultAmplitude, "Peak amplitude in (0, 1]")
	spread := flag.Float64("spread", defaultSpread, "Phase offset between tone channels in degrees")
	fast := flag.Bool("fast", false, "Use float32 precision for rendering")
	parallel := flag.Bool("parallel", true, "Render channels concurrently")
	verbose := flag.Bool("v", false, "Verbose output")
	flag.Parse()

	ease, err := fmath.ParseEase(*easeName)
	if err != nil {
		return fmt.Errorf("invalid -ease: %w", err)
	}

	cfg := &renderConfig{
		mode: strings.ToLower(*mode),
		spec: fmath.EaseSpec{
			Ease:     ease,
			Exponent: *exponent,
			Steps:    int32(*steps),
		},
		rate:      *rate,
		bitDepth:  *bitDepth,
		channels:  *channels,
		duration:  *duration,
		freq:      *freq,
		attack:    *attack,
		release:   *release,
		amplitude: *amplitude,
		spread:    *spread,
		parallel:  *parallel,
		verbose:   *verbose,
	}
	if err := cfg.validate(); err != nil {
		return err
	}

	args := flag.Args()
	required := 1
	if cfg.mode == modeFade {
		required = 2
	}
	if len(args) < required {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] output.wav\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "       %s -mode fade [options] input.wav output.wav\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		return errUsage
	}

	if cfg.verbose {
		log.Printf("Mode: %s", cfg.mode)
		log.Printf("Envelope: %s (attack %.3fs, release %.3fs)", ease, cfg.attack, cfg.release)
		if *fast {
			log.Printf("Precision: float32 (fast mode)")
		} else {
			log.Printf("Precision: float64")
		}
	}

	start := time.Now()
	var stats *renderStats
	switch {
	case cfg.mode == modeFade && *fast:
		stats, err = fadeWAV[float32](args[0], args[1], cfg)
	case cfg.mode == modeFade:
		stats, err = fadeWAV[float64](args[0], args[1], cfg)
	case *fast:
		stats, err = renderWAV[float32](args[0], cfg)
	default:
		stats, err = renderWAV[float64](args[0], cfg)
	}
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	// Print summary
	fmt.Printf("Wrote %s\n", filepath.Base(stats.outputPath))
	fmt.Printf("  %d Hz, %d channels, %d-bit, %d frames\n",
		stats.rate, stats.channels, stats.bitDepth, stats.frames)
	fmt.Printf("  Peak: %.4f, Duration: %.2fs, Speed: %.1fx realtime\n",
		stats.peak, elapsed.Seconds(),
		float64(stats.frames)/float64(stats.rate)/elapsed.Seconds())

	return nil
}

type renderStats struct {
	outputPath string
	rate       int
	channels   int
	bitDepth   int
	frames     int64
	peak       float64
}

// validate checks flag combinations before any file is touched.
func (c *renderConfig) validate() error {
	switch c.mode {
	case modeTone, modeNoise, modeFade:
	default:
		return fmt.Errorf("unknown mode %q", c.mode)
	}
	if err := c.spec.Validate(); err != nil {
		return fmt.Errorf("invalid envelope: %w", err)
	}
	if c.attack < 0 || c.release < 0 {
		return fmt.Errorf("attack and release must not be negative")
	}
	if c.amplitude <= 0 || c.amplitude > 1 {
		return fmt.Errorf("amplitude %g outside (0, 1]", c.amplitude)
	}
	if c.mode == modeFade {
		return nil
	}
	if c.rate <= 0 || c.channels <= 0 || c.duration <= 0 {
		return fmt.Errorf("rate, channels and duration must be positive")
	}
	switch c.bitDepth {
	case bitsPerSample16, bitsPerSample24, bitsPerSample32:
	default:
		return fmt.Errorf("unsupported bit depth %d", c.bitDepth)
	}
	return nil
}

// renderWAV synthesizes a tone or noise signal shaped by the envelope.
func renderWAV[F Float](outputPath string, cfg *renderConfig) (stats *renderStats, err error) {
	totalFrames := int64(cfg.duration * float64(cfg.rate))
	env := newEnvelope(fmath.Default(), cfg.spec, cfg.rate, cfg.attack, cfg.release, totalFrames)

	var src channelSource[F]
	if cfg.mode == modeNoise {
		src = newNoiseSource[F](cfg.freq, cfg.rate, cfg.amplitude)
	} else {
		src = newToneSource[F](cfg.freq, cfg.rate, cfg.amplitude, cfg.spread)
	}

	output, err := createWAVOutput(outputPath, cfg.rate, cfg.bitDepth, cfg.channels)
	if err != nil {
		return nil, err
	}
	// Close output, capturing close errors on success path (the encoder writes the header sizes on close)
	defer func() {
		if closeErr := output.Close(); err == nil {
			err = closeErr
		}
	}()

	buffers := newRenderBuffers[F](cfg.channels, cfg.bitDepth)
	stats = &renderStats{
		outputPath: outputPath,
		rate:       cfg.rate,
		channels:   cfg.channels,
		bitDepth:   cfg.bitDepth,
	}
	progress := newProgressTracker(totalFrames, cfg.verbose)

	for start := int64(0); start < totalFrames; start += bufferSize {
		n := int(min(bufferSize, totalFrames-start))

		renderChannels(buffers.channelBufs, n, cfg.parallel, func(ch int, dst []F) {
			src.fill(ch, start, dst)
			applyEnvelope(env, start, dst)
		})

		outputLen := interleaveInto(channelViews(buffers.channelBufs, n), buffers.outputIntBuf, buffers.maxVal)
		stats.peak = max(stats.peak, peakOf(buffers.channelBufs, n))
		stats.frames += int64(n)

		if err := output.WriteSamples(buffers.outputIntBuf[:outputLen]); err != nil {
			return nil, fmt.Errorf("failed to write audio data: %w", err)
		}
		progress.reportIfNeeded(stats.frames)
	}

	return stats, nil
}

// fadeWAV applies the envelope to every channel of an existing WAV file.
func fadeWAV[F Float](inputPath, outputPath string, cfg *renderConfig) (stats *renderStats, err error) {
	input, err := openWAVInput(inputPath, cfg.verbose)
	if err != nil {
		return nil, err
	}
	defer func() { _ = input.Close() }()

	if input.totalFrames == 0 {
		return nil, fmt.Errorf("input %s has unknown or zero length", inputPath)
	}
	env := newEnvelope(fmath.Default(), cfg.spec, input.rate, cfg.attack, cfg.release, input.totalFrames)

	output, err := createWAVOutput(outputPath, input.rate, input.bitDepth, input.channels)
	if err != nil {
		return nil, err
	}
	defer func() {
		if closeErr := output.Close(); err == nil {
			err = closeErr
		}
	}()

	buffers := newRenderBuffers[F](input.channels, input.bitDepth)
	intBuffer := newIntBuffer(input.format, input.channels)
	stats = &renderStats{
		outputPath: outputPath,
		rate:       input.rate,
		channels:   input.channels,
		bitDepth:   input.bitDepth,
	}
	progress := newProgressTracker(input.totalFrames, cfg.verbose)

	for {
		n, err := input.decoder.PCMBuffer(intBuffer)
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to read audio data: %w", err)
		}
		if n == 0 {
			break
		}
		frames := n / input.channels

		deinterleaveInto(intBuffer.Data[:frames*input.channels], buffers.channelBufs,
			input.channels, frames, buffers.invMaxVal)

		start := stats.frames
		renderChannels(buffers.channelBufs, frames, cfg.parallel, func(_ int, dst []F) {
			applyEnvelope(env, start, dst)
		})

		outputLen := interleaveInto(channelViews(buffers.channelBufs, frames), buffers.outputIntBuf, buffers.maxVal)
		stats.peak = max(stats.peak, peakOf(buffers.channelBufs, frames))
		stats.frames += int64(frames)

		if err := output.WriteSamples(buffers.outputIntBuf[:outputLen]); err != nil {
			return nil, fmt.Errorf("failed to write audio data: %w", err)
		}
		progress.reportIfNeeded(stats.frames)

		intBuffer.Data = intBuffer.Data[:cap(intBuffer.Data)]
	}

	return stats, nil
}

// Float is the sample precision used while rendering.
type Float interface {
	float32 | float64
}
