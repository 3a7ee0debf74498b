package output

import (
	"fmt"
	"io"

	"github.com/eunah0807-bit/csm17-meeting-assistant/internal/audio"
	"github.com/eunah0807-bit/csm17-meeting-assistant/internal/domain/meeting"
)

type Formatter struct {
	w io.Writer
}

func NewFormatter(w io.Writer) *Formatter {
	return &Formatter{w: w}
}

func (f *Formatter) VolumeChecked(rms float64, level audio.Level) {
	switch level {
	case audio.LevelSilent:
		fmt.Fprintf(f.w, "⚠️  무음 감지 (음량: %.2f)\n", rms)
	case audio.LevelQuiet:
		if rms == audio.VolumeError {
			fmt.Fprintf(f.w, "⚠️  음량을 확인할 수 없습니다 (파일 형식 오류)\n")
		} else {
			fmt.Fprintf(f.w, "⚠️  소리가 매우 작습니다 (음량: %.2f)\n", rms)
		}
	default:
		fmt.Fprintf(f.w, "✅ 녹음 완료! (음량: %.0f)\n", rms)
	}
}

func (f *Formatter) Analyzing() {
	fmt.Fprintf(f.w, "🤖 AI 분석 중... 잠시만 기다려 주세요.\n")
}

func (f *Formatter) RecordingSaved(path string) {
	fmt.Fprintf(f.w, "💾 오디오 파일이 저장되었습니다: %s\n", path)
}

func (f *Formatter) AnalysisResult(result meeting.AnalysisResult) {
	if result.ThreeLine != "" {
		fmt.Fprintf(f.w, "\n✨ 3줄 요약\n%s\n", result.ThreeLine)
	}
	if result.Todo != "" {
		fmt.Fprintf(f.w, "\n⚡ 할 일 (To-Do)\n%s\n", result.Todo)
	}
	if result.Detailed != "" {
		fmt.Fprintf(f.w, "\n📌 상세 요약\n%s\n", result.Detailed)
	}
	if result.Empty() {
		fmt.Fprintf(f.w, "\n⚠️  응답에서 섹션을 찾지 못했습니다.\n")
	}
}

func (f *Formatter) SlackSent(channel string) {
	fmt.Fprintf(f.w, "✅ %s 채널로 회의록이 성공적으로 전송되었습니다!\n", channel)
}

func (f *Formatter) SlackFailed(apiError, hint string) {
	fmt.Fprintf(f.w, "❌ 슬랙 전송 실패: %s\n", apiError)
	if hint != "" {
		fmt.Fprintf(f.w, "💡 %s\n", hint)
	}
}

func (f *Formatter) RecordingListHeader() {
	fmt.Fprintf(f.w, "📁 Recordings:\n\n")
}

func (f *Formatter) RecordingListItem(name string) {
	fmt.Fprintf(f.w, "  %s\n", name)
}

func (f *Formatter) Error(msg string) {
	fmt.Fprintf(f.w, "❌ %s\n", msg)
}

func (f *Formatter) Info(msg string) {
	fmt.Fprintf(f.w, "ℹ️  %s\n", msg)
}

func (f *Formatter) Success(msg string) {
	fmt.Fprintf(f.w, "✅ %s\n", msg)
}

func (f *Formatter) Warning(msg string) {
	fmt.Fprintf(f.w, "⚠️  %s\n", msg)
}

func (f *Formatter) SetupCheck(name string, ok bool, detail string) {
	if ok {
		fmt.Fprintf(f.w, "  ✅ %s: %s\n", name, detail)
	} else {
		fmt.Fprintf(f.w, "  ❌ %s: %s\n", name, detail)
	}
}
