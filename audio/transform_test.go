// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"bytes"
	"errors"
	"slices"
	"testing"

	"github.com/ik5/sndkit/internal/audiotest"
)

func TestScaleBitDepth_Widening(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		c      Container
		from   int
		to     int
		limit  int
		factor int
	}{
		{"cs229 8->16", CS229, 8, 16, 127, 256},
		{"wave 8->16", WAVE, 8, 16, 127, 256},
		{"cs229 8->32", CS229, 8, 32, 127, 1 << 24},
		{"wave 16->32", WAVE, 16, 32, 32767, 65536},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			buf := audiotest.NewRampBuffer(8000, 2, 50, tt.limit)
			s, err := FromIntBuffer(buf, tt.from, tt.c)
			if err != nil {
				t.Fatalf("FromIntBuffer() error = %v", err)
			}
			before := amplitudes(t, s)

			if err := s.ScaleBitDepth(tt.to); err != nil {
				t.Fatalf("ScaleBitDepth() error = %v", err)
			}
			if s.BitDepth != tt.to {
				t.Errorf("BitDepth = %d, want %d", s.BitDepth, tt.to)
			}

			after := amplitudes(t, s)
			for i := range before {
				if after[i] != before[i]*tt.factor {
					t.Fatalf("sample %d = %d, want %d", i, after[i], before[i]*tt.factor)
				}
			}
		})
	}
}

func TestScaleBitDepth_Wave8Raw(t *testing.T) {
	t.Parallel()

	s := &Sound{Container: WAVE, BitDepth: 8, Channels: 1, Data: []byte{255, 128, 0}}
	if err := s.ScaleBitDepth(16); err != nil {
		t.Fatalf("ScaleBitDepth() error = %v", err)
	}

	if got := amplitudes(t, s); !slices.Equal(got, []int{32512, 0, -32768}) {
		t.Errorf("amplitudes = %v, want [32512 0 -32768]", got)
	}
}

func TestScaleBitDepth_NeverNarrows(t *testing.T) {
	t.Parallel()

	s := newTestSound(t, CS229, 16, 1, 1000, -1000)
	before := slices.Clone(s.Data)

	if err := s.ScaleBitDepth(8); err != nil {
		t.Fatalf("ScaleBitDepth(8) error = %v", err)
	}
	if s.BitDepth != 16 || !bytes.Equal(s.Data, before) {
		t.Error("ScaleBitDepth(8) modified a 16-bit sound")
	}
}

func TestScaleBitDepth_Unsupported(t *testing.T) {
	t.Parallel()

	s := newTestSound(t, CS229, 8, 1, 1)
	if err := s.ScaleBitDepth(24); !errors.Is(err, ErrUnsupportedBitDepth) {
		t.Errorf("ScaleBitDepth(24) error = %v, want ErrUnsupportedBitDepth", err)
	}
}

func TestAddChannels(t *testing.T) {
	t.Parallel()

	s := newTestSound(t, CS229, 16, 1, 1, 2)
	if err := s.AddChannels(1); err != nil {
		t.Fatalf("AddChannels() error = %v", err)
	}
	if s.Channels != 2 {
		t.Errorf("Channels = %d, want 2", s.Channels)
	}
	if got := amplitudes(t, s); !slices.Equal(got, []int{1, 0, 2, 0}) {
		t.Errorf("amplitudes = %v, want [1 0 2 0]", got)
	}
}

func TestAddChannels_Wave8Silence(t *testing.T) {
	t.Parallel()

	s := newTestSound(t, WAVE, 8, 1, 10)
	if err := s.AddChannels(2); err != nil {
		t.Fatalf("AddChannels() error = %v", err)
	}
	if want := []byte{138, 128, 128}; !bytes.Equal(s.Data, want) {
		t.Errorf("Data = %v, want %v", s.Data, want)
	}
}

func TestAddFrames(t *testing.T) {
	t.Parallel()

	s := newTestSound(t, WAVE, 8, 2, 1, 2)
	if err := s.AddFrames(1); err != nil {
		t.Fatalf("AddFrames() error = %v", err)
	}
	if s.NumSamples() != 2 {
		t.Errorf("NumSamples() = %d, want 2", s.NumSamples())
	}
	if want := []byte{129, 130, 128, 128}; !bytes.Equal(s.Data, want) {
		t.Errorf("Data = %v, want %v", s.Data, want)
	}

	empty := &Sound{BitDepth: 8}
	if err := empty.AddFrames(3); !errors.Is(err, ErrZeroChannels) {
		t.Errorf("AddFrames() on zero channels error = %v, want ErrZeroChannels", err)
	}
}

func TestEnsure_Symmetric(t *testing.T) {
	t.Parallel()

	a := newTestSound(t, CS229, 8, 1, 1, 2, 3)
	b := newTestSound(t, CS229, 16, 3, 4, 5, 6)

	if err := EnsureBitDepth(a, b); err != nil {
		t.Fatalf("EnsureBitDepth() error = %v", err)
	}
	if err := EnsureNumChannels(b, a); err != nil {
		t.Fatalf("EnsureNumChannels() error = %v", err)
	}
	if err := EnsureNumSamples(a, b); err != nil {
		t.Fatalf("EnsureNumSamples() error = %v", err)
	}

	if a.BitDepth != 16 || b.BitDepth != 16 {
		t.Errorf("bit depths = %d, %d, want 16", a.BitDepth, b.BitDepth)
	}
	if a.Channels != 3 || b.Channels != 3 {
		t.Errorf("channels = %d, %d, want 3", a.Channels, b.Channels)
	}
	if a.NumSamples() != 3 || b.NumSamples() != 3 {
		t.Errorf("frames = %d, %d, want 3", a.NumSamples(), b.NumSamples())
	}
	if got := amplitudes(t, a); !slices.Equal(got, []int{256, 0, 0, 512, 0, 0, 768, 0, 0}) {
		t.Errorf("a = %v", got)
	}
	if got := amplitudes(t, b); !slices.Equal(got, []int{4, 5, 6, 0, 0, 0, 0, 0, 0}) {
		t.Errorf("b = %v", got)
	}
}

func TestIsolateChannel(t *testing.T) {
	t.Parallel()

	s := newTestSound(t, CS229, 16, 3, 1, 2, 3, 4, 5, 6)
	if err := s.IsolateChannel(1); err != nil {
		t.Fatalf("IsolateChannel() error = %v", err)
	}
	if s.Channels != 1 {
		t.Errorf("Channels = %d, want 1", s.Channels)
	}
	if got := amplitudes(t, s); !slices.Equal(got, []int{2, 5}) {
		t.Errorf("amplitudes = %v, want [2 5]", got)
	}
}

func TestIsolateChannel_Errors(t *testing.T) {
	t.Parallel()

	s := newTestSound(t, CS229, 8, 2, 1, 2)
	for _, ch := range []int{-1, 2} {
		if err := s.IsolateChannel(ch); !errors.Is(err, ErrChannelRange) {
			t.Errorf("IsolateChannel(%d) error = %v, want ErrChannelRange", ch, err)
		}
	}

	empty := &Sound{BitDepth: 8, Container: CS229}
	if err := empty.IsolateChannel(0); !errors.Is(err, ErrZeroChannels) {
		t.Errorf("IsolateChannel() on zero channels error = %v, want ErrZeroChannels", err)
	}
}

func TestScale(t *testing.T) {
	t.Parallel()

	s := newTestSound(t, CS229, 16, 1, 100, -100, 3)
	if err := s.Scale(0.5); err != nil {
		t.Fatalf("Scale() error = %v", err)
	}
	if got := amplitudes(t, s); !slices.Equal(got, []int{50, -50, 1}) {
		t.Errorf("amplitudes = %v, want [50 -50 1]", got)
	}
}

func TestScale_Wraps(t *testing.T) {
	t.Parallel()

	s := newTestSound(t, CS229, 16, 1, 20000)
	if err := s.Scale(2); err != nil {
		t.Fatalf("Scale() error = %v", err)
	}
	if got := amplitudes(t, s); got[0] != -25536 {
		t.Errorf("16-bit 20000*2 = %d, want -25536", got[0])
	}

	w := newTestSound(t, WAVE, 8, 1, 72)
	if err := w.Scale(2); err != nil {
		t.Fatalf("Scale() error = %v", err)
	}
	if w.Data[0] != 16 {
		t.Errorf("8-bit WAVE raw after wrap = %d, want 16", w.Data[0])
	}
}

func TestMixToMono(t *testing.T) {
	t.Parallel()

	s := newTestSound(t, CS229, 16, 2, 10, 20, -5, -6)
	if err := s.MixToMono(); err != nil {
		t.Fatalf("MixToMono() error = %v", err)
	}
	if got := amplitudes(t, s); !slices.Equal(got, []int{15, -5}) {
		t.Errorf("amplitudes = %v, want [15 -5]", got)
	}

	three := newTestSound(t, WAVE, 8, 3, 1, 2, 4)
	if err := three.MixToMono(); err != nil {
		t.Fatalf("MixToMono() error = %v", err)
	}
	if got := amplitudes(t, three); !slices.Equal(got, []int{2}) {
		t.Errorf("amplitudes = %v, want [2]", got)
	}
}

func BenchmarkScaleBitDepth(b *testing.B) {
	buf := audiotest.NewSineBuffer(44100, 2, 44100, 440, 100)
	src, err := FromIntBuffer(buf, 8, CS229)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()

	for b.Loop() {
		s := src.Clone()
		_ = s.ScaleBitDepth(16)
	}
}
