// SPDX-License-Identifier: EPL-2.0

package sndkit

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/ik5/sndkit/audio"
	"github.com/ik5/sndkit/internal/audiotest"
	"github.com/ik5/sndkit/internal/bytesource"
)

func TestDetect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    audio.Container
		wantErr error
	}{
		{"wave", "RIFF\x24\x00\x00\x00WAVE", audio.WAVE, nil},
		{"bare RIFF tag", "RIFF", audio.WAVE, nil},
		{"cs229", "CS229\n", audio.CS229, nil},
		{"cs229 lower case", "cs229\nStartData\n", audio.CS229, nil},
		{"cs229 mixed case", "Cs229", audio.CS229, nil},
		{"riff lower case", "riff\x00\x00\x00\x00", 0, audio.ErrUnknownFileType},
		{"unknown", "hello world", 0, audio.ErrUnknownFileType},
		{"too short", "CS22", 0, audio.ErrEOF},
		{"empty", "", 0, audio.ErrEOF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			br := bytesource.New(strings.NewReader(tt.input))
			got, err := Detect(br)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Detect() error = %v, want %v", err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("Detect() = %v, want %v", got, tt.want)
			}

			rest, _ := io.ReadAll(br)
			if string(rest) != tt.input {
				t.Errorf("Detect() consumed input, %q left", rest)
			}
		})
	}
}

func TestDefaultRegistry(t *testing.T) {
	t.Parallel()

	if DefaultRegistry() != DefaultRegistry() {
		t.Error("DefaultRegistry() returned different registries")
	}
	for _, c := range []audio.Container{audio.CS229, audio.WAVE} {
		if _, ok := DefaultRegistry().Get(c); !ok {
			t.Errorf("DefaultRegistry() has no codec for %v", c)
		}
	}
}

func TestLoadSound_CS229(t *testing.T) {
	t.Parallel()

	buf := audiotest.NewRampBuffer(8000, 3, 50, 100)
	s, err := LoadSound(strings.NewReader(audiotest.CS229Text(buf, 16)), "ramp.cs229")
	if err != nil {
		t.Fatalf("LoadSound() error = %v", err)
	}

	if s.Name != "ramp.cs229" || s.Container != audio.CS229 {
		t.Errorf("Name, Container = %q, %v", s.Name, s.Container)
	}
	if s.Channels != 3 || s.BitDepth != 16 || s.NumSamples() != 50 {
		t.Errorf("header = %d ch, %d bits, %d samples", s.Channels, s.BitDepth, s.NumSamples())
	}

	got, err := s.IntBuffer()
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(got.Data, buf.Data) {
		t.Error("samples differ from the document")
	}
}

func TestLoadSound_GoAudioWAVE(t *testing.T) {
	t.Parallel()

	buf := audiotest.NewSineBuffer(22050, 2, 1000, 440, 12000)
	path := audiotest.WriteWAV(t, buf, 16)

	s, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}

	if s.Name != path || s.Container != audio.WAVE || s.BitDepth != 16 {
		t.Errorf("Name, Container, BitDepth = %q, %v, %d", s.Name, s.Container, s.BitDepth)
	}
	if s.SampleRate != 22050 || s.Channels != 2 {
		t.Errorf("format = %d Hz, %d ch", s.SampleRate, s.Channels)
	}

	got, err := s.IntBuffer()
	if err != nil {
		t.Fatal(err)
	}
	want := audiotest.ReadWAV(t, path)
	if !slices.Equal(got.Data, want.Data) {
		t.Error("samples differ from go-audio's decoding")
	}
}

func TestLoadSound_Failures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"unknown", "ID3\x04 an mp3", audio.ErrUnknownFileType},
		{"empty", "", audio.ErrEOF},
		{"not really aiff", "FORM\x00\x00\x00\x04junk", audio.ErrUnknownFileType},
		{"truncated wave", "RIFF\x24\x00\x00\x00WAVEfmt ", audio.ErrEOF},
		{"bad cs229", "CS229\nChannels 1\nBitRes 12\nStartData\n", audio.ErrUnsupportedBitDepth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s, err := LoadSound(strings.NewReader(tt.input), "input")
			if !errors.Is(err, tt.want) {
				t.Fatalf("LoadSound() error = %v, want %v", err, tt.want)
			}
			if s == nil {
				t.Fatal("LoadSound() returned a nil sound")
			}
			if s.Name != "input" || !errors.Is(s.Err, tt.want) {
				t.Errorf("Name, Err = %q, %v", s.Name, s.Err)
			}
		})
	}
}

func TestLoadFile_Missing(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "missing.wav")
	s, err := LoadFile(path)
	if !errors.Is(err, audio.ErrRead) || !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("LoadFile() error = %v, want ErrRead wrapping ErrNotExist", err)
	}
	if s.Name != path {
		t.Errorf("Name = %q, want %q", s.Name, path)
	}
}

func TestWriteSound_RoundTrip(t *testing.T) {
	t.Parallel()

	buf := audiotest.NewRampBuffer(8000, 2, 64, 127)
	s, err := LoadSound(strings.NewReader(audiotest.CS229Text(buf, 8)), "ramp")
	if err != nil {
		t.Fatal(err)
	}
	original := slices.Clone(s.Data)

	var wave bytes.Buffer
	if err := WriteSound(s, &wave, audio.WAVE); err != nil {
		t.Fatalf("WriteSound(WAVE) error = %v", err)
	}
	if s.Container != audio.CS229 || !bytes.Equal(s.Data, original) {
		t.Fatal("WriteSound() modified the sound")
	}

	fromWave, err := LoadSound(&wave, "ramp.wav")
	if err != nil {
		t.Fatalf("LoadSound(WAVE) error = %v", err)
	}

	var text bytes.Buffer
	if err := WriteSound(fromWave, &text, audio.CS229); err != nil {
		t.Fatalf("WriteSound(CS229) error = %v", err)
	}
	if text.String() != audiotest.CS229Text(buf, 8) {
		t.Errorf("CS229 -> WAVE -> CS229 changed the document:\n%s", text.String())
	}
}

func TestWriteSound_Errors(t *testing.T) {
	t.Parallel()

	s := &audio.Sound{SampleRate: 8000, BitDepth: 16, Channels: 1}
	if err := WriteSound(s, io.Discard, audio.Container(7)); !errors.Is(err, audio.ErrUnknownFileType) {
		t.Errorf("WriteSound(unknown container) error = %v, want ErrUnknownFileType", err)
	}

	failed, loadErr := LoadSound(strings.NewReader("nope!"), "bad")
	if err := WriteSound(failed, io.Discard, audio.WAVE); err != loadErr {
		t.Errorf("WriteSound(failed sound) error = %v, want %v", err, loadErr)
	}
}

func TestUnloadSound(t *testing.T) {
	t.Parallel()

	s, err := LoadSound(strings.NewReader("CS229\nChannels 1\nBitRes 8\nStartData\n1\n2\n"), "x")
	if err != nil {
		t.Fatal(err)
	}

	UnloadSound(s)
	UnloadSound(s)
	UnloadSound(nil)

	if s.Data != nil || s.Name != "" {
		t.Errorf("after UnloadSound() Data = %v, Name = %q", s.Data, s.Name)
	}
}

func BenchmarkLoadSound_CS229(b *testing.B) {
	doc := audiotest.CS229Text(audiotest.NewSineBuffer(8000, 2, 8000, 440, 20000), 16)

	b.ReportAllocs()

	for b.Loop() {
		s, _ := LoadSound(strings.NewReader(doc), "bench")
		UnloadSound(s)
	}
}
