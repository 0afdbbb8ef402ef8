// Package observability provides the structured event logger and the
// terminal banner. Events go to stderr as JSON; LLM exchanges are also
// appended to logs/llm.jsonl for offline inspection.
package observability

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger wraps zap with the event vocabulary of the tool: plan, step and
// llm events.
type Logger struct {
	zl         *zap.Logger
	llmLogPath string
	maxSize    int64
}

// NewLogger builds a JSON logger on stderr. verbose lowers the level to
// debug.
func NewLogger(verbose bool) *Logger {
	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "ts"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encCfg),
		zapcore.Lock(os.Stderr),
		level,
	)

	return &Logger{
		zl:         zap.New(core),
		llmLogPath: filepath.Join("logs", "llm.jsonl"),
		maxSize:    10 * 1024 * 1024, // 10MB
	}
}

// NewNop returns a logger that discards everything. For tests.
func NewNop() *Logger {
	return &Logger{zl: zap.NewNop(), llmLogPath: ""}
}

// Sync flushes buffered log entries.
func (l *Logger) Sync() {
	_ = l.zl.Sync()
}

func (l *Logger) PlanRequested(request, intent string) {
	l.zl.Info("plan_requested",
		zap.String("request", request),
		zap.String("intent", intent),
	)
}

func (l *Logger) PlanGenerated(summary string, steps int, complexity string) {
	l.zl.Info("plan_generated",
		zap.String("summary", summary),
		zap.Int("steps", steps),
		zap.String("complexity", complexity),
	)
}

// PlanRejected records a model response no plan could be recovered from.
func (l *Logger) PlanRejected(rawChars int) {
	l.zl.Warn("plan_rejected", zap.Int("raw_chars", rawChars))
}

func (l *Logger) StepSucceeded(step int, action, detail string) {
	l.zl.Info("step_succeeded",
		zap.Int("step", step),
		zap.String("action", action),
		zap.String("detail", detail),
	)
}

func (l *Logger) StepFailed(step int, action string, err error) {
	l.zl.Warn("step_failed",
		zap.Int("step", step),
		zap.String("action", action),
		zap.Error(err),
	)
}

func (l *Logger) FileWritten(path string, created bool, bytes int) {
	l.zl.Debug("file_written",
		zap.String("path", path),
		zap.Bool("created", created),
		zap.Int("bytes", bytes),
	)
}

// LLMExchange records one round trip to the upstream, and mirrors it to the
// jsonl file.
func (l *Logger) LLMExchange(purpose, model string, promptChars, responseChars int, elapsed time.Duration, err error) {
	fields := []zap.Field{
		zap.String("purpose", purpose),
		zap.String("model", model),
		zap.Int("prompt_chars", promptChars),
		zap.Int("response_chars", responseChars),
		zap.Duration("elapsed", elapsed),
	}
	if err != nil {
		l.zl.Warn("llm_exchange", append(fields, zap.Error(err))...)
	} else {
		l.zl.Info("llm_exchange", fields...)
	}

	l.appendLLMRecord(purpose, model, promptChars, responseChars, elapsed, err)
}

type llmRecord struct {
	Timestamp     time.Time `json:"timestamp"`
	Purpose       string    `json:"purpose"`
	Model         string    `json:"model"`
	PromptChars   int       `json:"prompt_chars"`
	ResponseChars int       `json:"response_chars"`
	ElapsedMs     int64     `json:"elapsed_ms"`
	Error         string    `json:"error,omitempty"`
}

func (l *Logger) appendLLMRecord(purpose, model string, promptChars, responseChars int, elapsed time.Duration, callErr error) {
	if l.llmLogPath == "" {
		return
	}

	rec := llmRecord{
		Timestamp:     time.Now(),
		Purpose:       purpose,
		Model:         model,
		PromptChars:   promptChars,
		ResponseChars: responseChars,
		ElapsedMs:     elapsed.Milliseconds(),
	}
	if callErr != nil {
		rec.Error = callErr.Error()
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return
	}

	if err := os.MkdirAll(filepath.Dir(l.llmLogPath), 0755); err != nil {
		return
	}

	// Simple rotation: keep one .old file.
	if info, err := os.Stat(l.llmLogPath); err == nil && info.Size() > l.maxSize {
		oldPath := l.llmLogPath + ".old"
		_ = os.Remove(oldPath)
		_ = os.Rename(l.llmLogPath, oldPath)
	}

	f, err := os.OpenFile(l.llmLogPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return
	}
	defer f.Close()

	_, _ = f.Write(append(data, '\n'))
}
