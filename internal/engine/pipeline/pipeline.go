// Package pipeline runs the external build steps and the post-build hooks that follow them.
package pipeline

import (
	"context"
	"errors"
	"fmt"

	"go.trai.ch/distpack/internal/core/domain"
	"go.trai.ch/distpack/internal/core/ports"
	"go.trai.ch/zerr"
)

// Pipeline executes build steps in order and then notifies hooks.
type Pipeline struct {
	executor  ports.Executor
	telemetry ports.Telemetry
	logger    ports.Logger
}

// New creates a new Pipeline.
func New(executor ports.Executor, telemetry ports.Telemetry, logger ports.Logger) *Pipeline {
	return &Pipeline{
		executor:  executor,
		telemetry: telemetry,
		logger:    logger,
	}
}

// Run executes steps sequentially from root. Once every step has succeeded,
// each hook is invoked exactly once in the order given.
// A failed step stops the run before any hook is called.
func (p *Pipeline) Run(ctx context.Context, root string, steps []domain.BuildStep, hooks ...ports.PostBuildHook) error {
	for i := range steps {
		step := &steps[i]
		if err := ctx.Err(); err != nil {
			return errors.Join(domain.ErrBuildStepFailed, zerr.With(zerr.Wrap(err, "build interrupted"), "step", step.Name))
		}
		if err := p.runStep(ctx, root, step); err != nil {
			return errors.Join(domain.ErrBuildStepFailed, err)
		}
	}

	for _, hook := range hooks {
		if err := hook.OnBuildComplete(ctx); err != nil {
			return errors.Join(domain.ErrPostBuildHookFailed, err)
		}
	}
	return nil
}

func (p *Pipeline) runStep(ctx context.Context, root string, step *domain.BuildStep) error {
	p.logger.Info(fmt.Sprintf("running build step %s", step.Name))

	ctx, vertex := p.telemetry.Record(ctx, "step "+step.Name)
	err := p.executor.Execute(ctx, root, step)
	vertex.Complete(err)
	return err
}
