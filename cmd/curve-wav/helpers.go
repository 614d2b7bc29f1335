package main

import (
	"fmt"
	"log"
	"math"
	"os"
	"sync"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/tphakala/go-fmath"
)

// wavInputInfo holds validated input file information.
type wavInputInfo struct {
	file        *os.File
	decoder     *wav.Decoder
	rate        int
	channels    int
	bitDepth    int
	totalFrames int64
	format      *audio.Format
}

// openWAVInput opens and validates a WAV file, returning format information.
func openWAVInput(path string, verbose bool) (*wavInputInfo, error) {
	inputFile, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}

	decoder := wav.NewDecoder(inputFile)
	if !decoder.IsValidFile() {
		_ = inputFile.Close()
		return nil, fmt.Errorf("invalid WAV file: %s", path)
	}

	format := decoder.Format()
	inputRate := format.SampleRate
	channels := format.NumChannels
	bitDepth := int(decoder.BitDepth)

	if verbose {
		log.Printf("Input format: %d Hz, %d channels, %d-bit", inputRate, channels, bitDepth)
	}

	// The fade envelope needs the total length up front. Duration() counts
	// the header bytes as audio, so the length comes from the data chunk.
	if err := decoder.FwdToPCM(); err != nil {
		_ = inputFile.Close()
		return nil, fmt.Errorf("failed to locate PCM data: %w", err)
	}
	var totalFrames int64
	if frameBytes := int64(channels * bitDepth / 8); frameBytes > 0 {
		totalFrames = decoder.PCMLen() / frameBytes
	}

	return &wavInputInfo{
		file:        inputFile,
		decoder:     decoder,
		rate:        inputRate,
		channels:    channels,
		bitDepth:    bitDepth,
		totalFrames: totalFrames,
		format:      format,
	}, nil
}

// Close closes the input file.
func (w *wavInputInfo) Close() error {
	return w.file.Close()
}

// newIntBuffer allocates a read buffer of bufferSize frames.
func newIntBuffer(format *audio.Format, channels int) *audio.IntBuffer {
	return &audio.IntBuffer{
		Data:   make([]int, bufferSize*channels),
		Format: format,
	}
}

// wavOutputWriter wraps the output file and its encoder.
type wavOutputWriter struct {
	file    *os.File
	encoder *wav.Encoder
	buf     *audio.IntBuffer
}

// createWAVOutput creates the output file and a PCM encoder for it.
func createWAVOutput(
	path string,
	sampleRate, bitDepth, channels int,
) (*wavOutputWriter, error) {
	outputFile, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}

	return &wavOutputWriter{
		file:    outputFile,
		encoder: wav.NewEncoder(outputFile, sampleRate, bitDepth, channels, wavFormatPCM),
		buf: &audio.IntBuffer{
			Format:         &audio.Format{SampleRate: sampleRate, NumChannels: channels},
			SourceBitDepth: bitDepth,
		},
	}, nil
}

// WriteSamples writes interleaved samples to the output file.
func (w *wavOutputWriter) WriteSamples(samples []int) error {
	w.buf.Data = samples
	return w.encoder.Write(w.buf)
}

// Close finalizes the WAV header and closes the file.
func (w *wavOutputWriter) Close() error {
	if err := w.encoder.Close(); err != nil {
		_ = w.file.Close()
		return err
	}
	return w.file.Close()
}

// renderBuffers holds the preallocated per-chunk buffers.
type renderBuffers[F Float] struct {
	channelBufs  [][]F
	outputIntBuf []int
	invMaxVal    float64
	maxVal       float64
}

// newRenderBuffers creates and preallocates all processing buffers.
func newRenderBuffers[F Float](channels, bitDepth int) *renderBuffers[F] {
	channelBufs := make([][]F, channels)
	for ch := range channels {
		channelBufs[ch] = make([]F, bufferSize)
	}

	maxVal := getMaxValue(bitDepth)
	return &renderBuffers[F]{
		channelBufs:  channelBufs,
		outputIntBuf: make([]int, bufferSize*channels),
		invMaxVal:    1.0 / maxVal,
		maxVal:       maxVal,
	}
}

// channelViews returns the first n frames of every channel buffer.
func channelViews[F Float](bufs [][]F, n int) [][]F {
	views := make([][]F, len(bufs))
	for ch, buf := range bufs {
		views[ch] = buf[:n]
	}
	return views
}

// peakOf returns the largest absolute sample in the first n frames.
func peakOf[F Float](bufs [][]F, n int) float64 {
	var peak float64
	for _, buf := range bufs {
		for _, v := range buf[:n] {
			peak = max(peak, math.Abs(float64(v)))
		}
	}
	return peak
}

// progressTracker handles progress reporting.
type progressTracker struct {
	totalFrames  int64
	lastProgress int
	verbose      bool
}

// newProgressTracker creates a new progress tracker.
func newProgressTracker(totalFrames int64, verbose bool) *progressTracker {
	return &progressTracker{
		totalFrames: totalFrames,
		verbose:     verbose,
	}
}

// reportIfNeeded reports progress if threshold crossed.
func (p *progressTracker) reportIfNeeded(currentFrames int64) {
	if !p.verbose || p.totalFrames == 0 {
		return
	}

	progress := int(float64(currentFrames) / float64(p.totalFrames) * percentScale)
	if progress >= p.lastProgress+progressInterval {
		log.Printf("Progress: %d%%", progress)
		p.lastProgress = progress
	}
}

// renderChannels calls render for the first n frames of every channel,
// concurrently when parallel is set and there is more than one channel.
func renderChannels[F Float](bufs [][]F, n int, parallel bool, render func(ch int, dst []F)) {
	if !parallel || len(bufs) == monoChannels {
		for ch, buf := range bufs {
			render(ch, buf[:n])
		}
		return
	}

	var wg sync.WaitGroup
	for ch, buf := range bufs {
		wg.Add(1)
		go func(channel int, dst []F) {
			defer wg.Done()
			render(channel, dst)
		}(ch, buf[:n])
	}
	wg.Wait()
}

// envelope shapes a fixed-length signal with an eased attack and release.
// It is read-only after construction and safe to share across channels.
type envelope struct {
	m           *fmath.Math
	spec        fmath.EaseSpec
	attack      int64
	releaseFrom int64
	total       int64
}

func newEnvelope(m *fmath.Math, spec fmath.EaseSpec, rate int, attackSec, releaseSec float64, totalFrames int64) *envelope {
	attack := min(int64(attackSec*float64(rate)), totalFrames)
	release := min(int64(releaseSec*float64(rate)), totalFrames-attack)
	return &envelope{
		m:           m,
		spec:        spec,
		attack:      attack,
		releaseFrom: totalFrames - release,
		total:       totalFrames,
	}
}

// gain returns the envelope level at frame.
func (e *envelope) gain(frame int64) float64 {
	switch {
	case frame < e.attack:
		alpha := fmath.GetRangePct(0, float64(e.attack), float64(frame))
		return e.m.Evaluate(e.spec, 0, 1, alpha)
	case frame >= e.releaseFrom:
		alpha := fmath.GetRangePct(float64(e.releaseFrom), float64(e.total), float64(frame))
		return e.m.Evaluate(e.spec, 1, 0, fmath.Clamp(alpha, 0, 1))
	default:
		return 1
	}
}

// applyEnvelope scales dst, which starts at frame start, by the envelope.
func applyEnvelope[F Float](e *envelope, start int64, dst []F) {
	for i := range dst {
		dst[i] *= F(e.gain(start + int64(i)))
	}
}

// channelSource fills one channel of a chunk starting at frame start.
type channelSource[F Float] interface {
	fill(ch int, start int64, dst []F)
}

// toneSource is a sine carrier evaluated with the fast polynomial sine.
type toneSource[F Float] struct {
	omega     float64 // Radians per frame
	amplitude F
	spread    float64 // Radians of phase per channel
}

func newToneSource[F Float](freq float64, rate int, amplitude, spreadDeg float64) *toneSource[F] {
	return &toneSource[F]{
		omega:     2 * fmath.Pi * freq / float64(rate),
		amplitude: F(amplitude),
		spread:    fmath.DegreesToRadians(spreadDeg),
	}
}

func (s *toneSource[F]) fill(ch int, start int64, dst []F) {
	offset := s.spread * float64(ch)
	for i := range dst {
		phase := fmath.UnwindRadians(s.omega*float64(start+int64(i)) + offset)
		sin, _ := fmath.SinCos64(phase)
		dst[i] = s.amplitude * F(sin)
	}
}

// noiseSource samples 1D Perlin noise, normalized to [-1, 1].
type noiseSource[F Float] struct {
	step      float64 // Lattice units per frame
	amplitude F
}

func newNoiseSource[F Float](latticeRate float64, rate int, amplitude float64) *noiseSource[F] {
	return &noiseSource[F]{
		step:      latticeRate / float64(rate),
		amplitude: F(amplitude),
	}
}

// noiseNormalize maps PerlinNoise1D's [-2, 2] range to [-1, 1].
const noiseNormalize = 0.5

func (s *noiseSource[F]) fill(ch int, start int64, dst []F) {
	offset := noiseChannelOffset * float64(ch)
	for i := range dst {
		x := s.step*float64(start+int64(i)) + offset
		dst[i] = s.amplitude * F(fmath.PerlinNoise1D(x)*noiseNormalize)
	}
}

// getMaxValue returns the maximum sample value for the given bit depth.
func getMaxValue(bitDepth int) float64 {
	switch bitDepth {
	case bitsPerSample16:
		return maxInt16
	case bitsPerSample24:
		return maxInt24
	case bitsPerSample32:
		return maxInt32
	default:
		return maxInt16
	}
}

// deinterleaveInto converts interleaved int samples into preallocated per-channel buffers.
func deinterleaveInto[F Float](data []int, channelBufs [][]F, numChannels, samplesPerChannel int, invMaxVal float64) {
	// Fast path for mono
	if numChannels == monoChannels {
		buf := channelBufs[0]
		for i := range samplesPerChannel {
			buf[i] = F(float64(data[i]) * invMaxVal)
		}
		return
	}

	// Fast path for stereo
	if numChannels == stereoChannels {
		buf0, buf1 := channelBufs[0], channelBufs[1]
		for i := range samplesPerChannel {
			idx := i * stereoChannels
			buf0[i] = F(float64(data[idx]) * invMaxVal)
			buf1[i] = F(float64(data[idx+1]) * invMaxVal)
		}
		return
	}

	for i := range samplesPerChannel {
		base := i * numChannels
		for ch := range numChannels {
			channelBufs[ch][i] = F(float64(data[base+ch]) * invMaxVal)
		}
	}
}

// interleaveInto clamps per-channel samples to [-1, 1] and writes them as
// interleaved integers into dst. Returns the number of elements written,
// or 0 if dst is too small.
func interleaveInto[F Float](channels [][]F, dst []int, maxVal float64) int {
	if len(channels) == 0 || len(channels[0]) == 0 {
		return 0
	}

	numChannels := len(channels)
	samplesPerChannel := len(channels[0])
	totalLen := samplesPerChannel * numChannels
	if len(dst) < totalLen {
		return 0
	}

	for i := range samplesPerChannel {
		base := i * numChannels
		for ch := range numChannels {
			sample := fmath.Clamp(float64(channels[ch][i]), -1, 1)
			dst[base+ch] = int(sample * maxVal)
		}
	}
	return totalLen
}
