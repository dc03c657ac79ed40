package actions

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
)

// Output is one named step output.
type Output struct {
	Name  string
	Value string
}

// OutputWriter sets step outputs. A call publishes all of outputs or none of them.
type OutputWriter interface {
	SetOutputs(outputs ...Output) error
}

// NewOutputWriter returns a writer appending to the file named by GITHUB_OUTPUT, or one printing
// name=value lines to stdout when the variable is unset.
func NewOutputWriter() OutputWriter {
	if path := os.Getenv("GITHUB_OUTPUT"); path != "" {
		return FileOutputs{Path: path}
	}
	return StreamOutputs{W: os.Stdout}
}

// FileOutputs appends outputs to a runner output file.
type FileOutputs struct {
	Path string
}

// SetOutputs formats every output first and appends them with a single write.
func (f FileOutputs) SetOutputs(outputs ...Output) error {
	if len(outputs) == 0 {
		return nil
	}
	payload := formatOutputs(outputs, formatOutput)

	file, err := os.OpenFile(f.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open output file: %w", err)
	}
	defer file.Close()

	if _, err := io.WriteString(file, payload); err != nil {
		return fmt.Errorf("write outputs: %w", err)
	}
	return nil
}

// StreamOutputs prints outputs as name=value lines.
type StreamOutputs struct {
	W io.Writer
}

// SetOutputs prints every output as one write.
func (s StreamOutputs) SetOutputs(outputs ...Output) error {
	if len(outputs) == 0 {
		return nil
	}
	_, err := io.WriteString(s.W, formatOutputs(outputs, func(name, value string) string {
		return name + "=" + value + "\n"
	}))
	return err
}

func formatOutputs(outputs []Output, format func(name, value string) string) string {
	var b strings.Builder
	for _, o := range outputs {
		b.WriteString(format(o.Name, o.Value))
	}
	return b.String()
}

// formatOutput uses the runner's heredoc form for values containing line breaks.
func formatOutput(name, value string) string {
	if !strings.ContainsAny(value, "\r\n") {
		return name + "=" + value + "\n"
	}
	delim := "ghadelimiter_" + uuid.NewString()
	return fmt.Sprintf("%s<<%s\n%s\n%s\n", name, delim, value, delim)
}
