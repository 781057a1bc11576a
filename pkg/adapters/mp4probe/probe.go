// Package mp4probe reads back a finished MP4 file and summarizes it.
// It is a convenience for the CLI and for smoke tests; the encoding
// session itself never inspects its output.
package mp4probe

import (
	"bytes"
	"fmt"

	"github.com/Eyevinn/mp4ff/mp4"

	"github.com/user/framepipe/pkg/ports"
)

// Summary describes the video track of an MP4 file.
type Summary struct {
	DurationMs int
	Width      int
	Height     int
	Samples    int
	FileSize   int64
}

// String formats the summary for console output.
func (s Summary) String() string {
	return fmt.Sprintf("%dx%d, %d samples, %d ms, %d bytes",
		s.Width, s.Height, s.Samples, s.DurationMs, s.FileSize)
}

// Probe parses the MP4 at path and returns a summary of its first video
// track.
func Probe(path string, fs ports.FileSystem) (Summary, error) {
	data, err := fs.ReadFile(path)
	if err != nil {
		return Summary{}, fmt.Errorf("mp4probe: read %s: %w", path, err)
	}
	sum, err := probeData(data)
	if err != nil {
		return Summary{}, fmt.Errorf("mp4probe: %s: %w", path, err)
	}
	sum.FileSize = int64(len(data))
	return sum, nil
}

func probeData(data []byte) (Summary, error) {
	f, err := mp4.DecodeFile(bytes.NewReader(data))
	if err != nil {
		return Summary{}, err
	}
	if f.Moov == nil || len(f.Moov.Traks) == 0 {
		return Summary{}, fmt.Errorf("no movie box found")
	}

	for _, trak := range f.Moov.Traks {
		if trak.Mdia == nil || trak.Mdia.Hdlr == nil || trak.Mdia.Hdlr.HandlerType != "vide" {
			continue
		}

		sum := Summary{}
		if trak.Tkhd != nil {
			// Tkhd dimensions are 16.16 fixed point.
			sum.Width = int(uint32(trak.Tkhd.Width) >> 16)
			sum.Height = int(uint32(trak.Tkhd.Height) >> 16)
		}
		if mdhd := trak.Mdia.Mdhd; mdhd != nil && mdhd.Timescale > 0 {
			sum.DurationMs = int(mdhd.Duration * 1000 / uint64(mdhd.Timescale))
		}
		if trak.Mdia.Minf != nil && trak.Mdia.Minf.Stbl != nil && trak.Mdia.Minf.Stbl.Stsz != nil {
			sum.Samples = int(trak.Mdia.Minf.Stbl.Stsz.SampleNumber)
		}
		return sum, nil
	}

	return Summary{}, fmt.Errorf("no video track found")
}
