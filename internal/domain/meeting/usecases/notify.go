package usecases

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/eunah0807-bit/csm17-meeting-assistant/internal/domain/meeting"
	"github.com/eunah0807-bit/csm17-meeting-assistant/internal/metrics"
	"github.com/eunah0807-bit/csm17-meeting-assistant/internal/slack"
)

// Notifier is the single call the use case needs from the Slack backend.
type Notifier interface {
	PostMessage(ctx context.Context, channel, text string) (*slack.PostResult, error)
}

// NotifyOutcome is what the caller shows the user: the delivery flag, the raw
// API error if any, and an optional remediation hint.
type NotifyOutcome struct {
	OK      bool   `json:"ok"`
	Channel string `json:"channel"`
	Error   string `json:"error,omitempty"`
	Hint    string `json:"hint,omitempty"`
}

// Notify assembles and sends one meeting-notes message. Exactly one outbound
// call, no retries; a failed send needs a new user action.
type Notify struct {
	Slack   Notifier
	Logger  zerolog.Logger
	Metrics *metrics.Metrics
	Now     func() time.Time // defaults to time.Now
}

func (n *Notify) Execute(ctx context.Context, channel, attendees, meetingContext string, result meeting.AnalysisResult) (*NotifyOutcome, error) {
	now := time.Now
	if n.Now != nil {
		now = n.Now
	}

	normalized := slack.NormalizeChannel(channel)
	text := slack.BuildMessage(result, attendees, meetingContext, now())

	if n.Metrics != nil {
		n.Metrics.SlackPosts.Inc()
	}

	res, err := n.Slack.PostMessage(ctx, normalized, text)
	if err != nil {
		// Transport failure: surfaced to the caller, never retried here.
		return nil, err
	}

	outcome := &NotifyOutcome{OK: res.OK, Channel: normalized, Error: res.Error}
	if !res.OK {
		if n.Metrics != nil {
			n.Metrics.SlackFailures.WithLabelValues(res.Error).Inc()
		}
		outcome.Hint = hintFor(res.Error)
		n.Logger.Warn().Str("channel", normalized).Str("error", res.Error).Msg("slack notification failed")
	} else {
		n.Logger.Info().Str("channel", normalized).Msg("meeting notes sent to slack")
	}
	return outcome, nil
}

func hintFor(apiError string) string {
	switch apiError {
	case slack.ErrChannelNotFound:
		return "봇이 해당 채널에 초대되어 있는지 확인하세요."
	case slack.ErrInvalidAuth:
		return "SLACK_BOT_TOKEN 값을 확인하세요."
	default:
		return ""
	}
}
