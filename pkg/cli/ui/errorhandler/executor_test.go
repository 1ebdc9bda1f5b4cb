package errorhandler_test

import (
	"errors"
	"testing"

	"github.com/devantler-tech/fagen/pkg/cli/ui/errorhandler"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	errTestBoom        = errors.New("boom")
	errOriginalFailure = errors.New("original failure")
)

func TestExecutorExecuteSuccess(t *testing.T) {
	t.Parallel()

	cmd := &cobra.Command{
		Use:  "fagen",
		RunE: func(_ *cobra.Command, _ []string) error { return nil },
	}

	require.NoError(t, errorhandler.NewExecutor().Execute(cmd))
}

func TestExecutorExecuteNilCommand(t *testing.T) {
	t.Parallel()

	require.NoError(t, errorhandler.NewExecutor().Execute(nil))
}

func TestExecutorExecuteInvalidSubcommand(t *testing.T) {
	t.Parallel()

	root := &cobra.Command{Use: "fagen"}
	root.AddCommand(&cobra.Command{Use: "init"})
	root.SetArgs([]string{"invalid"})

	err := errorhandler.NewExecutor().Execute(root)

	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown command "invalid" for "fagen"`)
	assert.NotContains(t, err.Error(), "Error: ")
	assert.Contains(t, err.Error(), "Run 'fagen --help' for usage.")
}

func TestExecutorExecuteUnknownFlag(t *testing.T) {
	t.Parallel()

	root := &cobra.Command{
		Use:          "fagen",
		SilenceUsage: true,
		RunE:         func(_ *cobra.Command, _ []string) error { return nil },
	}
	root.SetArgs([]string{"--nope"})

	err := errorhandler.NewExecutor().Execute(root)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown flag: --nope")
}

func TestExecutorRestoresErrWriter(t *testing.T) {
	t.Parallel()

	var stderr writerFunc = func(p []byte) (int, error) { return len(p), nil }

	cmd := &cobra.Command{
		Use:  "fagen",
		RunE: func(_ *cobra.Command, _ []string) error { return errTestBoom },
	}
	cmd.SetErr(stderr)

	_ = errorhandler.NewExecutor().Execute(cmd)

	assert.NotNil(t, cmd.ErrOrStderr())
	_, isFunc := cmd.ErrOrStderr().(writerFunc)
	assert.True(t, isFunc, "expected the original error writer to be restored")
}

func TestCommandErrorMessages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		setup func(cmd *cobra.Command)
		run   func(cmd *cobra.Command, args []string) error
		want  string
	}{
		{
			name: "cause only when cobra is silenced",
			setup: func(cmd *cobra.Command) {
				cmd.SilenceErrors = true
				cmd.SilenceUsage = true
			},
			run:  func(_ *cobra.Command, _ []string) error { return errTestBoom },
			want: "boom",
		},
		{
			name:  "message containing the cause is not repeated",
			setup: func(cmd *cobra.Command) { cmd.SilenceUsage = true },
			run:   func(_ *cobra.Command, _ []string) error { return errTestBoom },
			want:  "boom",
		},
		{
			name: "distinct message and cause are joined",
			setup: func(cmd *cobra.Command) {
				cmd.SilenceErrors = true
				cmd.SilenceUsage = true
			},
			run: func(cmd *cobra.Command, _ []string) error {
				cmd.PrintErrln("normalized")

				return errOriginalFailure
			},
			want: "normalized: original failure",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			cmd := &cobra.Command{Use: "fagen", RunE: testCase.run}
			testCase.setup(cmd)

			err := errorhandler.NewExecutor().Execute(cmd)

			var commandErr *errorhandler.CommandError
			require.ErrorAs(t, err, &commandErr)
			assert.Equal(t, testCase.want, commandErr.Error())
		})
	}
}

func TestCommandErrorUnwrap(t *testing.T) {
	t.Parallel()

	cmd := &cobra.Command{
		Use:           "fagen",
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE:          func(_ *cobra.Command, _ []string) error { return errTestBoom },
	}

	err := errorhandler.NewExecutor().Execute(cmd)

	require.ErrorIs(t, err, errTestBoom)
}

func TestCommandErrorNilAndEmpty(t *testing.T) {
	t.Parallel()

	var nilErr *errorhandler.CommandError

	assert.Empty(t, nilErr.Error())
	assert.NoError(t, nilErr.Unwrap())
	assert.Empty(t, (&errorhandler.CommandError{}).Error())
}

func TestDefaultNormalizer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "empty", raw: "", want: ""},
		{name: "whitespace", raw: " \n\t", want: ""},
		{name: "error prefix", raw: "Error: boom\n", want: "boom"},
		{
			name: "usage hint kept",
			raw:  "Error: unknown flag: --nope\nRun 'fagen --help' for usage.\n",
			want: "unknown flag: --nope\nRun 'fagen --help' for usage.",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.want, errorhandler.DefaultNormalizer{}.Normalize(testCase.raw))
		})
	}
}

type writerFunc func(p []byte) (int, error)

func (f writerFunc) Write(p []byte) (int, error) { return f(p) }
