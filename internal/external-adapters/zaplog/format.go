package zaplog

import (
	"fmt"

	"go.uber.org/zap/buffer"
	"go.uber.org/zap/zapcore"
)

const (
	// logFormat lays out a line as level, date and message
	logFormat  = "[%s] %s; %s"
	dateFormat = "2006-01-02"
)

// LogFormat returns the fixed line layout: level, date and message
func LogFormat() string {
	return logFormat
}

// DateFormat returns the time layout used for the date in each line
func DateFormat() string {
	return dateFormat
}

// lineEncoder renders entries as "[LEVEL] date; message fields".
// The wrapped console encoder has no time or level keys and only
// renders the message and structured fields.
type lineEncoder struct {
	zapcore.Encoder
}

func newLineEncoder() zapcore.Encoder {
	cfg := zapcore.EncoderConfig{
		MessageKey:       "msg",
		LineEnding:       zapcore.DefaultLineEnding,
		EncodeDuration:   zapcore.StringDurationEncoder,
		ConsoleSeparator: " ",
	}
	return lineEncoder{Encoder: zapcore.NewConsoleEncoder(cfg)}
}

func (e lineEncoder) Clone() zapcore.Encoder {
	return lineEncoder{Encoder: e.Encoder.Clone()}
}

func (e lineEncoder) EncodeEntry(ent zapcore.Entry, fields []zapcore.Field) (*buffer.Buffer, error) {
	body, err := e.Encoder.EncodeEntry(ent, fields)
	if err != nil {
		return nil, err
	}
	line := fmt.Sprintf(logFormat, ent.Level.CapitalString(), ent.Time.Format(dateFormat), body.String())
	body.Reset()
	body.AppendString(line)
	return body, nil
}
