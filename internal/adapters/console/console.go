package console

import (
	"fmt"
	"io"
	"strings"
	"sync"

	jsoniter "github.com/json-iterator/go"

	"github.com/renato0307/versioninfo/internal/domain"
	"github.com/renato0307/versioninfo/internal/ports"
	"github.com/renato0307/versioninfo/internal/theme"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// LogPrefix heads every informational line, as the host CLI prints it
const LogPrefix = "Serverless:"

// Console is the host log sink printing to a terminal
type Console struct {
	mu  sync.Mutex
	out io.Writer
}

// Verify interface compliance at compile time
var _ ports.Logger = (*Console)(nil)

// NewConsole creates a Console writing to out
func NewConsole(out io.Writer) *Console {
	return &Console{out: out}
}

// Log prints an informational message
func (c *Console) Log(message string) {
	c.println(theme.PrefixStyle.Render(LogPrefix) + " " + message)
}

// Warn prints a warning
func (c *Console) Warn(message string) {
	c.println(theme.WarningStyle.Render(message))
}

// Error prints the label followed by the error detail as indented JSON
func (c *Console) Error(label string, err error) {
	detail, marshalErr := json.MarshalIndent(domain.ErrorDetail(err), "", "  ")
	if marshalErr != nil {
		detail = []byte(fmt.Sprintf("%q", err.Error()))
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintln(c.out, theme.ErrorLabelStyle.Render(label))
	// Styled line by line so lipgloss does not pad the block
	for _, line := range strings.Split(string(detail), "\n") {
		fmt.Fprintln(c.out, theme.ErrorDetailStyle.Render(line))
	}
}

func (c *Console) println(line string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintln(c.out, line)
}
