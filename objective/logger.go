package objective

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// Logger accumulates progress and warning messages during an Optimize run
// and writes them to Output either as each message arrives (Immediate) or
// buffered until Flush is called. Warnings from Warnf take the same path as
// every other message, so they are buffered only when Immediate is false.
type Logger struct {
	Output    io.Writer
	Immediate bool
	buff      strings.Builder
}

// NewLogger creates a Logger writing to w.
func NewLogger(w io.Writer) *Logger {
	return &Logger{Output: w}
}

// Logf formats and records a message. If Immediate, it is written to Output
// right away; otherwise it is buffered until Flush.
func (l *Logger) Logf(format string, a ...interface{}) {
	if l == nil || l.Output == nil {
		return
	}
	if l.Immediate {
		fmt.Fprintf(l.Output, format, a...)
		return
	}
	l.buff.WriteString(fmt.Sprintf(format, a...))
}

// Warnf records a NumericFallback-style warning, prefixed for grep-ability.
func (l *Logger) Warnf(format string, a ...interface{}) {
	l.Logf("warning: "+format+"\n", a...)
}

// Flush writes any buffered messages to Output and resets the buffer.
func (l *Logger) Flush() {
	if l == nil || l.Output == nil {
		return
	}
	io.WriteString(l.Output, l.buff.String())
	l.buff.Reset()
}

const verboseHeader = "       Step     Time       Energy       fmax"

// LogHeader writes the verbose-mode table header once.
func (l *Logger) LogHeader() {
	l.Logf("%s\n", verboseHeader)
}

// LogIteration writes one verbose-mode progress line: driver tag, iteration
// index, local time, energy (objective value) and fmax (‖g‖∞).
func (l *Logger) LogIteration(tag string, iter int, energy, fmax float64) {
	l.Logf("%-10s %5d  %s  %12.6g  %12.6g\n", tag, iter, time.Now().Format("15:04:05"), energy, fmax)
}
