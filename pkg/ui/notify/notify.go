package notify

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	fcolor "github.com/fatih/color"
)

// MessageType selects the symbol and colour of a line.
type MessageType int

const (
	// ErrorType is printed red with a ✗.
	ErrorType MessageType = iota
	// WarningType is printed yellow with a ⚠.
	WarningType
	// GenerateType marks a written file with a ✚.
	GenerateType
	// SuccessType is printed green with a ✔.
	SuccessType
	// InfoType is printed blue with an ℹ.
	InfoType
)

// Message is a single notification.
type Message struct {
	Type MessageType
	// Content is a format string when Args is non-empty.
	Content string
	Args    []any
	// Elapsed is printed as "⏲ <duration>" below SuccessType messages when non-zero.
	Elapsed time.Duration
	// Writer defaults to os.Stdout.
	Writer io.Writer
}

type style struct {
	symbol string
	color  *fcolor.Color
}

var styles = map[MessageType]style{
	ErrorType:    {symbol: "✗ ", color: fcolor.New(fcolor.FgRed)},
	WarningType:  {symbol: "⚠ ", color: fcolor.New(fcolor.FgYellow)},
	GenerateType: {symbol: "✚ ", color: fcolor.New(fcolor.Reset)},
	SuccessType:  {symbol: "✔ ", color: fcolor.New(fcolor.FgGreen)},
	InfoType:     {symbol: "ℹ ", color: fcolor.New(fcolor.FgBlue)},
}

// Errorf writes a ✗ line.
func Errorf(writer io.Writer, format string, args ...any) {
	WriteMessage(Message{Type: ErrorType, Content: format, Args: args, Writer: writer})
}

// Warningf writes a ⚠ line.
func Warningf(writer io.Writer, format string, args ...any) {
	WriteMessage(Message{Type: WarningType, Content: format, Args: args, Writer: writer})
}

// Generatef writes a ✚ line for a created or overwritten file.
func Generatef(writer io.Writer, format string, args ...any) {
	WriteMessage(Message{Type: GenerateType, Content: format, Args: args, Writer: writer})
}

// Infof writes an ℹ line.
func Infof(writer io.Writer, format string, args ...any) {
	WriteMessage(Message{Type: InfoType, Content: format, Args: args, Writer: writer})
}

// SuccessWithElapsedf writes a ✔ line, followed by the elapsed time if it is non-zero.
func SuccessWithElapsedf(writer io.Writer, elapsed time.Duration, format string, args ...any) {
	WriteMessage(Message{Type: SuccessType, Content: format, Args: args, Elapsed: elapsed, Writer: writer})
}

// WriteMessage formats msg and writes it with a single Write call, so lines
// sent to a shared writer from concurrent goroutines never interleave.
func WriteMessage(msg Message) {
	writer := msg.Writer
	if writer == nil {
		writer = os.Stdout
	}

	_, err := io.WriteString(writer, format(msg, styleOf(msg.Type)))
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "notify: failed to print message: %v\n", err)
	}
}

func styleOf(msgType MessageType) style {
	s, ok := styles[msgType]
	if !ok {
		return style{color: fcolor.New(fcolor.Reset)}
	}

	return s
}

func format(msg Message, s style) string {
	content := msg.Content
	if len(msg.Args) > 0 {
		content = fmt.Sprintf(msg.Content, msg.Args...)
	}

	var line strings.Builder

	line.WriteString(s.color.Sprint(s.symbol + indent(content, s.symbol)))
	line.WriteByte('\n')

	if msg.Type == SuccessType && msg.Elapsed > 0 {
		line.WriteString(s.color.Sprint("⏲ " + msg.Elapsed.Round(time.Millisecond).String()))
		line.WriteByte('\n')
	}

	return line.String()
}

// indent aligns continuation lines of content with the text after symbol.
func indent(content, symbol string) string {
	if symbol == "" || !strings.Contains(content, "\n") {
		return content
	}

	pad := strings.Repeat(" ", len([]rune(symbol)))
	lines := strings.Split(content, "\n")

	for i := 1; i < len(lines); i++ {
		if lines[i] != "" {
			lines[i] = pad + lines[i]
		}
	}

	return strings.Join(lines, "\n")
}
