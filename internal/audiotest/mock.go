// SPDX-License-Identifier: EPL-2.0

// Package audiotest builds sample fixtures for tests. It works on go-audio
// buffers so the audio package can use it without an import cycle.
package audiotest

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// Waveform returns the amplitude for a frame and channel.
type Waveform func(frame, channel int) int

// NewBuffer creates a buffer of frames interleaved frames filled by w.
func NewBuffer(sampleRate, channels, frames int, w Waveform) *goaudio.IntBuffer {
	data := make([]int, frames*channels)
	for f := range frames {
		for c := range channels {
			data[f*channels+c] = w(f, c)
		}
	}
	return &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: channels,
			SampleRate:  sampleRate,
		},
		Data: data,
	}
}

// NewSilentBuffer creates a buffer holding only silence.
func NewSilentBuffer(sampleRate, channels, frames int) *goaudio.IntBuffer {
	return NewBuffer(sampleRate, channels, frames, func(int, int) int { return 0 })
}

// NewConstantBuffer creates a buffer where every sample equals value.
func NewConstantBuffer(sampleRate, channels, frames, value int) *goaudio.IntBuffer {
	return NewBuffer(sampleRate, channels, frames, func(int, int) int { return value })
}

// NewSineBuffer creates a sine tone with the given peak amplitude.
func NewSineBuffer(sampleRate, channels, frames int, frequency float64, peak int) *goaudio.IntBuffer {
	return NewBuffer(sampleRate, channels, frames, func(f, _ int) int {
		t := float64(f) / float64(sampleRate)
		return int(float64(peak) * math.Sin(2*math.Pi*frequency*t))
	})
}

// NewRampBuffer creates a buffer where each sample is distinct: channel c of
// frame f holds f*channels+c, wrapped into [-limit, limit].
func NewRampBuffer(sampleRate, channels, frames, limit int) *goaudio.IntBuffer {
	return NewBuffer(sampleRate, channels, frames, func(f, c int) int {
		v := f*channels + c
		return v%(2*limit+1) - limit
	})
}

// WriteWAV encodes buf as a PCM WAVE file in a temporary directory and
// returns its path.
func WriteWAV(tb testing.TB, buf *goaudio.IntBuffer, bitDepth int) string {
	tb.Helper()

	path := filepath.Join(tb.TempDir(), "fixture.wav")
	f, err := os.Create(path)
	if err != nil {
		tb.Fatalf("create fixture: %v", err)
	}
	defer f.Close()

	enc := wav.NewEncoder(f, buf.Format.SampleRate, bitDepth, buf.Format.NumChannels, 1)
	if err := enc.Write(buf); err != nil {
		tb.Fatalf("encode fixture: %v", err)
	}
	if err := enc.Close(); err != nil {
		tb.Fatalf("close encoder: %v", err)
	}

	return path
}

// ReadWAV decodes a WAVE file with go-audio and returns its samples.
func ReadWAV(tb testing.TB, path string) *goaudio.IntBuffer {
	tb.Helper()

	f, err := os.Open(path)
	if err != nil {
		tb.Fatalf("open fixture: %v", err)
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		tb.Fatalf("%s is not a valid WAVE file", path)
	}
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		tb.Fatalf("decode fixture: %v", err)
	}

	return buf
}

// CS229Text renders buf as a CS229 document with a Samples line.
func CS229Text(buf *goaudio.IntBuffer, bitDepth int) string {
	var sb strings.Builder
	channels := buf.Format.NumChannels

	fmt.Fprintf(&sb, "CS229\n")
	fmt.Fprintf(&sb, "Samples %d\n", len(buf.Data)/channels)
	fmt.Fprintf(&sb, "Channels %d\n", channels)
	fmt.Fprintf(&sb, "BitRes %d\n", bitDepth)
	fmt.Fprintf(&sb, "SampleRate %d\n", buf.Format.SampleRate)
	sb.WriteString("StartData\n")

	for i, v := range buf.Data {
		fmt.Fprintf(&sb, "%d", v)
		if (i+1)%channels == 0 {
			sb.WriteString("\n")
		} else {
			sb.WriteString(" ")
		}
	}

	return sb.String()
}
