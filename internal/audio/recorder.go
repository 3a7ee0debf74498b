package audio

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
)

// Recorder manages ffmpeg-based mic recording for the CLI flow. The web flow
// records in the browser instead and never touches this.
type Recorder struct{}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) CheckFFmpeg() error {
	if _, err := exec.LookPath("ffmpeg"); err != nil {
		return fmt.Errorf("ffmpeg not found. Install with: brew install ffmpeg (macOS) or apt install ffmpeg (Linux)")
	}
	return nil
}

// RecordMic records mono 16kHz WAV from the default input device to
// outputPath. Blocks until the process exits (e.g. SIGINT).
func (r *Recorder) RecordMic(outputPath string) error {
	inputFormat, inputDevice := defaultInput()

	cmd := exec.Command("ffmpeg",
		"-f", inputFormat,
		"-i", inputDevice,
		"-ac", "1",
		"-ar", "16000",
		"-y",
		outputPath,
	)

	// Log stderr for diagnostics
	logPath := outputPath + ".ffmpeg.log"
	if logFile, err := os.Create(logPath); err == nil {
		cmd.Stderr = logFile
		defer logFile.Close()
	}

	return cmd.Run()
}

func defaultInput() (format, device string) {
	switch runtime.GOOS {
	case "darwin":
		return "avfoundation", ":default"
	default:
		return "alsa", "default"
	}
}
