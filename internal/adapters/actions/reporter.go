package actions

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/OliveiraNt/pubsub-topic-creator/internal/domain"
	"github.com/OliveiraNt/pubsub-topic-creator/internal/utils"
	"github.com/fatih/color"
)

// Output names set on success.
const (
	OutputTopicName = "topic-name"
	OutputCreated   = "created"
)

var (
	green  = color.New(color.FgGreen, color.Bold).SprintFunc()
	yellow = color.New(color.FgYellow, color.Bold).SprintFunc()
)

// Reporter turns a TopicResult into step outputs, a banner and, on failure, an error annotation.
type Reporter struct {
	outputs OutputWriter
	out     io.Writer
}

// NewReporter creates a reporter writing banners and annotations to out.
func NewReporter(outputs OutputWriter, out io.Writer) *Reporter {
	return &Reporter{outputs: outputs, out: out}
}

// Report publishes res. A failed result sets no outputs and is returned as an error carrying
// the result's message.
func (r *Reporter) Report(res domain.TopicResult) error {
	if !res.Success {
		msg := res.Message()
		if msg == "" {
			msg = "topic creation failed"
		}
		r.Fail(msg)
		if res.Err != nil {
			return res.Err
		}
		return errors.New(msg)
	}

	err := r.outputs.SetOutputs(
		Output{Name: OutputTopicName, Value: res.TopicName},
		Output{Name: OutputCreated, Value: strconv.FormatBool(res.Created)},
	)
	if err != nil {
		r.Fail(err.Error())
		return err
	}

	if res.Created {
		fmt.Fprintf(r.out, "%s %s\n", green("Topic created:"), res.TopicName)
	} else {
		fmt.Fprintf(r.out, "%s %s\n", yellow("Topic already existed:"), res.TopicName)
	}
	utils.Logger.Info("done", "topic", res.TopicName, "created", res.Created)
	return nil
}

// Fail emits an error annotation for message.
func (r *Reporter) Fail(message string) {
	fmt.Fprintf(r.out, "::error::%s\n", escapeData(message))
}

func escapeData(s string) string {
	s = strings.ReplaceAll(s, "%", "%25")
	s = strings.ReplaceAll(s, "\r", "%0D")
	return strings.ReplaceAll(s, "\n", "%0A")
}
