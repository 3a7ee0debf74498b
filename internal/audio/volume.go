package audio

import "math"

// VolumeError is the sentinel returned when the recording bytes do not parse
// as a WAV container. It is distinct from 0, which means a valid but silent
// (or empty) recording.
const VolumeError = -1

// Loudness thresholds for classifying a recording's RMS value.
const (
	SilentThreshold = 5  // below this, analysis is blocked
	QuietThreshold  = 15 // below this, analysis is allowed with a warning
)

// Level classifies a recording's loudness for the analysis gate.
type Level string

const (
	LevelSilent Level = "silent" // block analysis
	LevelQuiet  Level = "quiet"  // warn but allow
	LevelOK     Level = "ok"
)

// Volume computes the root-mean-square amplitude of the 16-bit samples in a
// WAV recording. Malformed input returns VolumeError; a valid container with
// no samples returns exactly 0. Pure function, no side effects.
func Volume(data []byte) float64 {
	_, samples, err := ParseWAV(data)
	if err != nil {
		return VolumeError
	}
	if len(samples) == 0 {
		return 0
	}

	var sum float64
	for _, s := range samples {
		v := float64(s)
		sum += v * v
	}
	return math.Sqrt(sum / float64(len(samples)))
}

// Classify maps an RMS value to the gate level. Decode failures (VolumeError)
// are treated as quiet: the user gets a warning but analysis is not blocked.
func Classify(rms float64) Level {
	switch {
	case rms == VolumeError:
		return LevelQuiet
	case rms < SilentThreshold:
		return LevelSilent
	case rms < QuietThreshold:
		return LevelQuiet
	default:
		return LevelOK
	}
}
