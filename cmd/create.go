// Package cmd provides the command implementation of pubsub-topic-creator.
// Run reads the step inputs, connects to Pub/Sub, creates the topic and reports the result
// back to the runner.
package cmd

import (
	"context"
	"flag"
	"io"
	"os"

	"github.com/OliveiraNt/pubsub-topic-creator/internal/adapters/actions"
	"github.com/OliveiraNt/pubsub-topic-creator/internal/application"
	"github.com/OliveiraNt/pubsub-topic-creator/internal/config"
	"github.com/OliveiraNt/pubsub-topic-creator/internal/domain"
	"github.com/OliveiraNt/pubsub-topic-creator/internal/infrastructure/pubsub"
	"github.com/OliveiraNt/pubsub-topic-creator/internal/utils"
)

// AdminClient is a TopicAdmin owning a connection.
type AdminClient interface {
	domain.TopicAdmin
	Close() error
}

// Deps holds the collaborators of a run. Nil fields get the production defaults.
type Deps struct {
	Inputs   config.InputSource
	NewAdmin func(ctx context.Context, cfg config.ClientConfig) (AdminClient, error)
	Outputs  actions.OutputWriter
	Stdout   io.Writer
}

func (d *Deps) setDefaults() {
	if d.Inputs == nil {
		d.Inputs = actions.EnvInputs{}
	}
	if d.NewAdmin == nil {
		d.NewAdmin = newPubsubAdmin
	}
	if d.Outputs == nil {
		d.Outputs = actions.NewOutputWriter()
	}
	if d.Stdout == nil {
		d.Stdout = os.Stdout
	}
}

func newPubsubAdmin(ctx context.Context, cfg config.ClientConfig) (AdminClient, error) {
	c, err := pubsub.NewClient(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Run executes one topic creation with production dependencies and returns the exit status.
func Run(ctx context.Context, args []string) int {
	return RunWith(ctx, args, Deps{})
}

// RunWith executes one topic creation and returns the exit status: 0 on success, 1 when the
// run failed, 2 on bad command-line usage.
func RunWith(ctx context.Context, args []string, deps Deps) int {
	deps.setDefaults()

	fs := flag.NewFlagSet("pubsub-topic-creator", flag.ContinueOnError)
	inputsFile := fs.String("inputs", os.Getenv("PUBSUB_TOPIC_INPUTS_FILE"),
		"YAML file of step inputs; INPUT_* environment variables take precedence")
	logLevel := fs.String("log-level", "", "override the log level (debug, info, warn, error)")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *logLevel != "" {
		utils.SetLogLevel(*logLevel)
	}

	reporter := actions.NewReporter(deps.Outputs, deps.Stdout)

	src := config.ChainSource{deps.Inputs}
	if *inputsFile != "" {
		fileInputs, err := config.ReadInputsFile(*inputsFile)
		if err != nil {
			utils.Logger.Error("failed to read inputs file", "path", *inputsFile, "err", err)
			reporter.Fail(err.Error())
			return 1
		}
		src = append(src, fileInputs)
	}

	cfg, err := config.LoadTopicConfig(src)
	if err != nil {
		return exitStatus(reporter.Report(domain.TopicResult{Err: err}))
	}
	utils.Logger.Info("inputs loaded", "project", cfg.ProjectID, "topic", cfg.TopicName, "skip_if_exists", cfg.SkipIfExists)

	clientCfg, err := config.LoadClientConfig(cfg.ProjectID)
	if err != nil {
		return exitStatus(reporter.Report(domain.TopicResult{Err: err}))
	}
	admin, err := deps.NewAdmin(ctx, clientCfg)
	if err != nil {
		utils.Logger.Error("failed to create Pub/Sub client", "err", err)
		return exitStatus(reporter.Report(domain.TopicResult{Err: err}))
	}
	defer func() {
		if err := admin.Close(); err != nil {
			utils.Logger.Warn("failed to close Pub/Sub client", "err", err)
		}
	}()

	res := application.NewTopicService(admin).CreateTopic(ctx, cfg)
	return exitStatus(reporter.Report(res))
}

func exitStatus(err error) int {
	if err != nil {
		return 1
	}
	return 0
}
