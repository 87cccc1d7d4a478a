// Package facade demonstrates the Facade pattern with a video-conversion
// domain.
//
// Converting a video involves several fiddly subsystem steps: picking a codec,
// extracting audio, mixing it back, and fixing the bitrate. The VideoConverter
// facade exposes one Convert method that sequences those stateless helpers in
// the right order, so callers never touch the subsystem directly.
package facade

import "fmt"

// Supported target formats. Anything else is rejected by Convert.
const (
	FormatMP4 = "mp4"
	FormatOGG = "ogg"
)

// codecFactory chooses a codec for a target format. It is a stateless
// subsystem helper; the facade owns the knowledge of when to call it.
type codecFactory struct{}

func (codecFactory) extract(format string) (string, error) {
	switch format {
	case FormatMP4:
		return "h264", nil
	case FormatOGG:
		return "theora", nil
	default:
		return "", fmt.Errorf("no codec for format %q (supported: mp4, ogg)", format)
	}
}

// audioMixer handles the audio half of a conversion.
type audioMixer struct{}

func (audioMixer) extractAudio(file string) string { return file + ".audio" }

func (audioMixer) mix(video, audio string) string { return video + "+" + audio }

// bitrateReader normalizes the output bitrate.
type bitrateReader struct{}

func (bitrateReader) fix(file, codec string) string {
	return fmt.Sprintf("%s[%s]", file, codec)
}

// Step describes one subsystem operation performed during a conversion.
// The facade records steps so client code can show what happened without
// knowing the subsystem.
type Step struct {
	Name   string
	Detail string
}

// Result is the outcome of a conversion: the produced file name and the
// ordered subsystem steps that led to it.
type Result struct {
	File  string
	Steps []Step
}

// VideoConverter is the facade. It holds the subsystem helpers and sequences
// them; it carries no state between conversions.
type VideoConverter struct {
	codecs  codecFactory
	audio   audioMixer
	bitrate bitrateReader
}

// NewVideoConverter constructs the facade with its subsystem helpers.
func NewVideoConverter() *VideoConverter {
	return &VideoConverter{}
}

// Convert transcodes file into the target format, returning the produced file
// name and the ordered steps taken. An unsupported format fails before any
// subsystem work happens.
func (c *VideoConverter) Convert(file, format string) (Result, error) {
	codec, err := c.codecs.extract(format)
	if err != nil {
		return Result{}, fmt.Errorf("convert %s: %w", file, err)
	}

	res := Result{}
	res.Steps = append(res.Steps, Step{Name: "codec", Detail: codec})

	audio := c.audio.extractAudio(file)
	res.Steps = append(res.Steps, Step{Name: "extract-audio", Detail: audio})

	mixed := c.audio.mix(file, audio)
	res.Steps = append(res.Steps, Step{Name: "mix", Detail: mixed})

	res.File = c.bitrate.fix(mixed, codec) + "." + format
	res.Steps = append(res.Steps, Step{Name: "bitrate", Detail: res.File})

	return res, nil
}
