package nRFModel

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

// InvalidStatusMessage is what every renderer prints for an invalid status
const InvalidStatusMessage = "Invalid status. Something went wrong during communication with nrf24l01"

// Field is one decoded fact. Value is a bool or an uint8.
type Field struct {
	Key   string // short name for compact and log output
	Name  string // human readable name
	Value interface{}
}

// Report is the ordered field set of one decoded register.
// Renderers must not look at Fields when Valid is false.
type Report struct {
	Title  string
	Valid  bool
	Fields []Field
}

// Text renders the report the way a debug struct is printed:
// Status { Data ready: true, Data sent: false, ... }
func (r Report) Text() string {
	if !r.Valid {
		return InvalidStatusMessage
	}
	var b strings.Builder
	b.WriteString(r.Title)
	b.WriteString(" {")
	for i, f := range r.Fields {
		if 0 != i {
			b.WriteString(",")
		}
		fmt.Fprintf(&b, " %s: %v", f.Name, f.Value)
	}
	b.WriteString(" }")
	return b.String()
}

// AppendCompact appends "key=value" pairs to buf, booleans as 0 and 1.
// No fmt, no allocation as long as buf has room.
func (r Report) AppendCompact(buf []byte) []byte {
	if !r.Valid {
		return append(buf, InvalidStatusMessage...)
	}
	for i, f := range r.Fields {
		if 0 != i {
			buf = append(buf, ' ')
		}
		buf = append(buf, f.Key...)
		buf = append(buf, '=')
		switch v := f.Value.(type) {
		case bool:
			if v {
				buf = append(buf, '1')
			} else {
				buf = append(buf, '0')
			}
		case uint8:
			buf = strconv.AppendUint(buf, uint64(v), 10)
		default:
			buf = append(buf, '?')
		}
	}
	return buf
}

// LogFields returns the fields keyed for structured logging.
// An invalid report has only the diagnostic message under "error".
func (r Report) LogFields() logrus.Fields {
	if !r.Valid {
		return logrus.Fields{logrus.ErrorKey: InvalidStatusMessage}
	}
	ret := make(logrus.Fields, len(r.Fields))
	for _, f := range r.Fields {
		ret[f.Key] = f.Value
	}
	return ret
}

// LogReport writes the report as one entry: the diagnostic message at warn level
// for an invalid report, the fields at debug level otherwise
func LogReport(l logrus.FieldLogger, r Report) {
	if !r.Valid {
		l.Warn(InvalidStatusMessage)
		return
	}
	l.WithFields(r.LogFields()).Debug(r.Title)
}

// LogStatus logs a status read
func LogStatus(l logrus.FieldLogger, s Status) {
	LogReport(l, s.Report())
}

// Renderer selects one of the report encodings
type Renderer byte

const (
	RenderText Renderer = iota
	RenderCompact
	RenderLog
)

var ErrUnknownRenderer = errors.New("unknown renderer")

var rendererNames = map[string]Renderer{
	"text":    RenderText,
	"compact": RenderCompact,
	"log":     RenderLog,
}

// ParseRenderer accepts text, compact or log
func ParseRenderer(name string) (Renderer, error) {
	if r, ok := rendererNames[strings.ToLower(name)]; ok {
		return r, nil
	}
	return RenderText, fmt.Errorf("%w %q", ErrUnknownRenderer, name)
}

func (r Renderer) String() string {
	for name, v := range rendererNames {
		if v == r {
			return name
		}
	}
	return "unknown"
}

// Render encodes the report with the given renderer.
// The log encoding is a single JSON line without timestamp.
func (r Report) Render(with Renderer) string {
	switch with {
	case RenderCompact:
		return string(r.AppendCompact(make([]byte, 0, 64)))
	case RenderLog:
		var buf bytes.Buffer
		l := logrus.New()
		l.Out = &buf
		l.Formatter = &logrus.JSONFormatter{DisableTimestamp: true}
		l.Level = logrus.DebugLevel
		LogReport(l, r)
		return strings.TrimSuffix(buf.String(), "\n")
	default:
		return r.Text()
	}
}
