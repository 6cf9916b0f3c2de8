package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/distpack/cmd/distpack/commands"
	"go.trai.ch/distpack/internal/app"
	"go.trai.ch/distpack/internal/build"
)

type mockApp struct {
	assembleFunc func(ctx context.Context, opts app.AssembleOptions) error
	buildFunc    func(ctx context.Context, opts app.BuildOptions) error
	verifyFunc   func(ctx context.Context, opts app.VerifyOptions) error
	reportFunc   func(ctx context.Context, opts app.ReportOptions) error
}

func (m *mockApp) Assemble(ctx context.Context, opts app.AssembleOptions) error {
	if m.assembleFunc != nil {
		return m.assembleFunc(ctx, opts)
	}
	return nil
}

func (m *mockApp) Build(ctx context.Context, opts app.BuildOptions) error {
	if m.buildFunc != nil {
		return m.buildFunc(ctx, opts)
	}
	return nil
}

func (m *mockApp) Verify(ctx context.Context, opts app.VerifyOptions) error {
	if m.verifyFunc != nil {
		return m.verifyFunc(ctx, opts)
	}
	return nil
}

func (m *mockApp) Report(ctx context.Context, opts app.ReportOptions) error {
	if m.reportFunc != nil {
		return m.reportFunc(ctx, opts)
	}
	return nil
}

func TestCommands_Assemble(t *testing.T) {
	t.Run("passes config path", func(t *testing.T) {
		var captured app.AssembleOptions
		called := false

		mock := &mockApp{
			assembleFunc: func(_ context.Context, opts app.AssembleOptions) error {
				captured = opts
				called = true
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"--config", "build/distpack.yaml", "assemble"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.True(t, called)
		assert.Equal(t, "build/distpack.yaml", captured.ConfigPath)
	})

	t.Run("returns error on failure", func(t *testing.T) {
		mock := &mockApp{
			assembleFunc: func(_ context.Context, _ app.AssembleOptions) error {
				return errors.New("simulated error")
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"assemble"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})

	t.Run("rejects arguments", func(t *testing.T) {
		mock := &mockApp{
			assembleFunc: func(_ context.Context, _ app.AssembleOptions) error {
				panic("should not be called")
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"assemble", "extra"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		require.Error(t, cli.Execute(context.Background()))
	})
}

func TestCommands_Build(t *testing.T) {
	var captured app.BuildOptions
	mock := &mockApp{
		buildFunc: func(_ context.Context, opts app.BuildOptions) error {
			captured = opts
			return nil
		},
	}

	cli := commands.New(mock)
	cli.SetArgs([]string{"build", "-c", "custom.yaml"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t, "custom.yaml", captured.ConfigPath)
}

func TestCommands_Verify(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		layout bool
	}{
		{name: "integrity only", args: []string{"verify"}, layout: false},
		{name: "with layout", args: []string{"verify", "--layout"}, layout: true},
		{name: "with layout shorthand", args: []string{"verify", "-l"}, layout: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var captured app.VerifyOptions
			mock := &mockApp{
				verifyFunc: func(_ context.Context, opts app.VerifyOptions) error {
					captured = opts
					return nil
				},
			}

			cli := commands.New(mock)
			cli.SetArgs(tt.args)

			require.NoError(t, cli.Execute(context.Background()))
			assert.Equal(t, tt.layout, captured.Layout)
		})
	}
}

func TestCommands_Report(t *testing.T) {
	var captured app.ReportOptions
	called := false
	mock := &mockApp{
		reportFunc: func(_ context.Context, opts app.ReportOptions) error {
			captured = opts
			called = true
			return nil
		},
	}

	cli := commands.New(mock)
	cli.SetArgs([]string{"report", "--config", "distpack.yaml"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.True(t, called)
	assert.Equal(t, "distpack.yaml", captured.ConfigPath)
}

func TestCommands_Version(t *testing.T) {
	mock := &mockApp{}
	cli := commands.New(mock)

	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"version"})

	err := cli.Execute(context.Background())
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "distpack version "+build.Version)
}

func TestCommands_VersionFlag(t *testing.T) {
	cli := commands.New(&mockApp{})

	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"--version"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Contains(t, buf.String(), build.Commit)
}
