package audio

import (
	"encoding/binary"
	"fmt"
)

// Format describes the PCM layout of a parsed WAV container.
type Format struct {
	SampleRate    uint32
	Channels      uint16
	BitsPerSample uint16
}

const minHeaderSize = 12 // "RIFF" + size + "WAVE"

// ParseWAV decodes a RIFF/WAVE container into its 16-bit signed samples.
// Chunks other than "fmt " and "data" (LIST, fact, ...) are skipped, so files
// produced by browsers and ffmpeg both parse. Multi-channel data is returned
// interleaved; only 16-bit PCM is supported.
func ParseWAV(data []byte) (*Format, []int16, error) {
	if len(data) < minHeaderSize {
		return nil, nil, fmt.Errorf("wav data too short: %d bytes", len(data))
	}
	if string(data[0:4]) != "RIFF" {
		return nil, nil, fmt.Errorf("invalid wav file: missing RIFF header")
	}
	if string(data[8:12]) != "WAVE" {
		return nil, nil, fmt.Errorf("invalid wav file: missing WAVE format")
	}

	var (
		format   *Format
		pcm      []byte
		haveData bool
	)

	// Walk the chunk list after the RIFF header.
	off := minHeaderSize
	for off+8 <= len(data) {
		id := string(data[off : off+4])
		size := int(binary.LittleEndian.Uint32(data[off+4 : off+8]))
		body := off + 8
		if size < 0 || body+size > len(data) {
			// Browsers sometimes emit a streaming WAV with a 0xFFFFFFFF or
			// stale data size; clamp to what is actually present.
			size = len(data) - body
		}

		switch id {
		case "fmt ":
			if size < 16 {
				return nil, nil, fmt.Errorf("invalid wav file: fmt chunk too short")
			}
			f := &Format{
				Channels:      binary.LittleEndian.Uint16(data[body+2 : body+4]),
				SampleRate:    binary.LittleEndian.Uint32(data[body+4 : body+8]),
				BitsPerSample: binary.LittleEndian.Uint16(data[body+14 : body+16]),
			}
			if audioFormat := binary.LittleEndian.Uint16(data[body : body+2]); audioFormat != 1 {
				return nil, nil, fmt.Errorf("unsupported audio format: %d (only PCM is supported)", audioFormat)
			}
			if f.BitsPerSample != 16 {
				return nil, nil, fmt.Errorf("unsupported bit depth: %d (only 16-bit is supported)", f.BitsPerSample)
			}
			if f.Channels == 0 {
				return nil, nil, fmt.Errorf("invalid wav file: zero channels")
			}
			format = f
		case "data":
			pcm = data[body : body+size]
			haveData = true
		}

		// Chunks are word-aligned.
		off = body + size
		if size%2 == 1 {
			off++
		}
	}

	if format == nil {
		return nil, nil, fmt.Errorf("invalid wav file: missing fmt chunk")
	}
	if !haveData {
		return nil, nil, fmt.Errorf("invalid wav file: missing data chunk")
	}

	samples := make([]int16, len(pcm)/2)
	for i := range samples {
		samples[i] = int16(binary.LittleEndian.Uint16(pcm[i*2 : i*2+2]))
	}
	return format, samples, nil
}

// EncodeWAV encodes mono PCM-16 samples into a WAV container. Used by tests
// and the mic recorder fallback path.
func EncodeWAV(samples []int16, sampleRate int) ([]byte, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("sample rate must be positive, got %d", sampleRate)
	}

	dataSize := uint32(len(samples) * 2)
	buf := make([]byte, 0, 44+len(samples)*2)

	le := binary.LittleEndian
	buf = append(buf, "RIFF"...)
	buf = le.AppendUint32(buf, 36+dataSize)
	buf = append(buf, "WAVE"...)
	buf = append(buf, "fmt "...)
	buf = le.AppendUint32(buf, 16)
	buf = le.AppendUint16(buf, 1) // PCM
	buf = le.AppendUint16(buf, 1) // mono
	buf = le.AppendUint32(buf, uint32(sampleRate))
	buf = le.AppendUint32(buf, uint32(sampleRate)*2)
	buf = le.AppendUint16(buf, 2)
	buf = le.AppendUint16(buf, 16)
	buf = append(buf, "data"...)
	buf = le.AppendUint32(buf, dataSize)
	for _, s := range samples {
		buf = le.AppendUint16(buf, uint16(s))
	}
	return buf, nil
}
