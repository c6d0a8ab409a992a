// SPDX-License-Identifier: EPL-2.0

package sndkit

import (
	"fmt"
	"io"

	"github.com/ik5/sndkit/audio"
)

// Describe writes a short report of the sound's format and length to w.
func Describe(w io.Writer, s *audio.Sound) error {
	_, err := fmt.Fprintf(w,
		"File name: %s\n"+
			"File type: %s\n"+
			"Sample rate: %d\n"+
			"Bit depth: %d\n"+
			"Number of channels: %d\n"+
			"Number of samples: %d\n"+
			"Sound length (seconds): %.3f\n",
		s.Name, s.Container, s.SampleRate, s.BitDepth, s.Channels, s.NumSamples(), s.Seconds())
	return err
}
