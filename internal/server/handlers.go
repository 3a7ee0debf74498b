package server

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/eunah0807-bit/csm17-meeting-assistant/internal/audio"
	"github.com/eunah0807-bit/csm17-meeting-assistant/internal/version"
)

// maxRecordingBytes bounds uploads: two hours of 16kHz mono 16-bit PCM is
// well under this.
const maxRecordingBytes = 512 << 20

type volumeResponse struct {
	RMS   float64     `json:"rms"`
	Level audio.Level `json:"level"`
}

type analyzeResponse struct {
	SavedPath string             `json:"saved_path"`
	RMS       float64            `json:"rms"`
	Sections  analyzeSectionsDTO `json:"sections"`
}

type analyzeSectionsDTO struct {
	ThreeLine string `json:"three_line"`
	Todo      string `json:"todo"`
	Detailed  string `json:"detailed"`
}

type notifyRequest struct {
	Channel   string `json:"channel"`
	Attendees string `json:"attendees"`
	Context   string `json:"context"`
}

type errorResponse struct {
	Error string  `json:"error"`
	RMS   float64 `json:"rms,omitempty"`
}

func (s *Server) handleVolume(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(io.LimitReader(r.Body, maxRecordingBytes))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "reading recording: " + err.Error()})
		return
	}

	rms := audio.Volume(data)
	s.app.Metrics.RecordingLoudness.Observe(max(rms, 0))
	writeJSON(w, http.StatusOK, volumeResponse{RMS: rms, Level: audio.Classify(rms)})
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(io.LimitReader(r.Body, maxRecordingBytes))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "reading recording: " + err.Error()})
		return
	}

	// Volume gate: a silent recording never reaches the model.
	rms := audio.Volume(data)
	s.app.Metrics.RecordingLoudness.Observe(max(rms, 0))
	if audio.Classify(rms) == audio.LevelSilent {
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{
			Error: "무음 상태라 분석이 불가능합니다.",
			RMS:   rms,
		})
		return
	}

	savedPath, err := audio.SaveRecording(s.cfg.RecordingsDir, data, time.Now())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}
	s.app.Session.SetRecording(savedPath, rms)

	start := time.Now()
	_, result, err := s.app.Analyze.Execute(r.Context(), data)
	s.app.Metrics.AnalysisDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		// The error already carries the last candidate's failure verbatim.
		writeJSON(w, http.StatusBadGateway, errorResponse{Error: err.Error()})
		return
	}
	s.app.Session.SetResult(result)

	writeJSON(w, http.StatusOK, analyzeResponse{
		SavedPath: savedPath,
		RMS:       rms,
		Sections: analyzeSectionsDTO{
			ThreeLine: result.ThreeLine,
			Todo:      result.Todo,
			Detailed:  result.Detailed,
		},
	})
}

func (s *Server) handleNotify(w http.ResponseWriter, r *http.Request) {
	var req notifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body: " + err.Error()})
		return
	}
	if req.Channel == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "channel is required"})
		return
	}

	result, ok := s.app.Session.Result()
	if !ok {
		writeJSON(w, http.StatusConflict, errorResponse{Error: "분석 결과가 없습니다. 먼저 회의록을 생성하세요."})
		return
	}

	outcome, err := s.app.Notify.Execute(r.Context(), req.Channel, req.Attendees, req.Context, result)
	if err != nil {
		writeJSON(w, http.StatusBadGateway, errorResponse{Error: err.Error()})
		return
	}

	// API-level failure (bad auth, unknown channel) is still a 200: the
	// outcome is data for the UI to render, with a hint where we have one.
	writeJSON(w, http.StatusOK, outcome)
}

func (s *Server) handleSession(w http.ResponseWriter, r *http.Request) {
	sess := s.app.Session
	resp := map[string]any{
		"id":         sess.ID(),
		"started_at": sess.StartedAt().Format(time.RFC3339),
		"saved_path": sess.SavedPath(),
		"rms":        sess.RMS(),
		"channels":   s.cfg.Channels,
	}
	if result, ok := sess.Result(); ok {
		resp["sections"] = analyzeSectionsDTO{
			ThreeLine: result.ThreeLine,
			Todo:      result.Todo,
			Detailed:  result.Detailed,
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":         "ok",
		"version":        version.Version,
		"uptime_seconds": int(time.Since(s.startTime).Seconds()),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
