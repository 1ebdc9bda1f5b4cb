package cmd_test

import (
	"bytes"
	"os"
	"testing"

	"github.com/devantler-tech/fagen/pkg/apis/icon/v1alpha1"
	"github.com/devantler-tech/fagen/pkg/cli/cmd"
	"github.com/devantler-tech/fagen/pkg/fsutil/configmanager"
	"github.com/devantler-tech/fagen/pkg/fsutil/configmanager/icons"
	"github.com/devantler-tech/fagen/pkg/fsutil/generator/component"
	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	templatePath = "templates/icon_template.tsx"

	githubConfig = `{
  "icons": [
    { "name": "faGithub", "component_name": "Github", "style": "brands", "icon_type": "free" }
  ],
  "output": "out/"
}`
)

func TestMain(m *testing.M) {
	exitCode := m.Run()

	_, err := snaps.Clean(m, snaps.CleanOpts{Sort: true})
	if err != nil {
		_, _ = os.Stderr.WriteString("failed to clean snapshots: " + err.Error() + "\n")

		os.Exit(1)
	}

	os.Exit(exitCode)
}

// newProjectFs returns a filesystem holding the default template and the given config files.
func newProjectFs(t *testing.T, files map[string]string) afero.Fs {
	t.Helper()

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, templatePath, []byte(component.DefaultTemplate), 0o644))

	for name, content := range files {
		require.NoError(t, afero.WriteFile(fs, name, []byte(content), 0o644))
	}

	return fs
}

// execute runs the root command on fs and returns its stdout.
func execute(t *testing.T, fs afero.Fs, args ...string) (string, error) {
	t.Helper()

	var out, errOut bytes.Buffer

	root := cmd.NewRootCmdWithFs(fs, "1.2.3", "abc123", "2025-08-17")
	root.SetOut(&out)
	root.SetErr(&errOut)
	// A nil slice makes cobra fall back to os.Args.
	if args == nil {
		args = []string{}
	}

	root.SetArgs(args)

	err := cmd.Execute(root)

	return out.String(), err
}

func TestNewRootCmdVersionFormatting(t *testing.T) {
	t.Parallel()

	root := cmd.NewRootCmd("1.2.3", "abc123", "2025-08-17")

	assert.Equal(t, "1.2.3 (Built on 2025-08-17 from Git SHA abc123)", root.Version)
}

func TestExecuteShowsVersion(t *testing.T) {
	t.Parallel()

	out, err := execute(t, afero.NewMemMapFs(), "--version")

	require.NoError(t, err)
	snaps.MatchSnapshot(t, out)
}

func TestExecuteShowsHelp(t *testing.T) {
	t.Parallel()

	out, err := execute(t, afero.NewMemMapFs(), "--help")

	require.NoError(t, err)
	assert.Contains(t, out, "fagen [flags]")
	assert.Contains(t, out, "-c, --config string")
	assert.Contains(t, out, `-t, --template string`)
	assert.Contains(t, out, `(default "templates/icon_template.tsx")`)
	assert.Contains(t, out, `-e, --extension string`)
	assert.Contains(t, out, `(default "tsx")`)
	assert.Contains(t, out, "--concurrency int ")
	assert.NotContains(t, out, "int64")
	assert.Contains(t, out, "--schema Schema")
	assert.Contains(t, out, "init")
}

func TestExecuteGeneratesComponents(t *testing.T) {
	t.Parallel()

	fs := newProjectFs(t, map[string]string{"fagen.json": githubConfig})

	out, err := execute(t, fs, "--config", "fagen.json")

	require.NoError(t, err)
	assert.Equal(t, ""+
		"✚ Generated component: GithubIcon.tsx\n"+
		"✔ generated 1 components in out/\n", out)

	renderer, err := component.Load("icon_template.tsx", component.DefaultTemplate)
	require.NoError(t, err)

	want, err := renderer.Render(v1alpha1.RenderContext{
		IconName:      "faGithub",
		IconPath:      "@fortawesome/free-brands-svg-icons",
		ComponentName: "Github",
	})
	require.NoError(t, err)

	got, err := afero.ReadFile(fs, "out/GithubIcon.tsx")
	require.NoError(t, err)
	assert.Equal(t, want, string(got))
}

func TestExecuteExplicitYAMLConfig(t *testing.T) {
	t.Parallel()

	fs := newProjectFs(t, map[string]string{
		"icons.yaml": "" +
			"output: src/icons\n" +
			"icons:\n" +
			"  - name: faHouse\n" +
			"    component_name: House\n" +
			"    path: '@fortawesome/pro-solid-svg-icons'\n" +
			"  - name: faUser\n" +
			"    component_name: User\n" +
			"    path: '@fortawesome/pro-light-svg-icons'\n",
	})

	out, err := execute(t, fs, "-c", "icons.yaml", "--concurrency", "1", "-e", ".jsx")

	require.NoError(t, err)
	assert.Contains(t, out, "✔ generated 2 components in src/icons\n")

	content, err := afero.ReadFile(fs, "src/icons/UserIcon.jsx")
	require.NoError(t, err)
	assert.Contains(t, string(content), "'@fortawesome/pro-light-svg-icons'")

	exists, err := afero.Exists(fs, "src/icons/HouseIcon.jsx")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestExecuteEmptyIcons(t *testing.T) {
	t.Parallel()

	fs := newProjectFs(t, map[string]string{"fagen.json": `{"icons": [], "output": "out"}`})

	out, err := execute(t, fs, "--config", "fagen.json")

	require.NoError(t, err)
	assert.Equal(t, "✔ generated 0 components in out\n", out)

	exists, err := afero.DirExists(fs, "out")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestExecuteIsIdempotent(t *testing.T) {
	t.Parallel()

	fs := newProjectFs(t, map[string]string{"fagen.json": githubConfig})

	first, err := execute(t, fs, "--config", "fagen.json")
	require.NoError(t, err)

	content, err := afero.ReadFile(fs, "out/GithubIcon.tsx")
	require.NoError(t, err)

	second, err := execute(t, fs, "--config", "fagen.json")
	require.NoError(t, err)

	again, err := afero.ReadFile(fs, "out/GithubIcon.tsx")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, content, again)
}

func TestExecuteWithoutConfig(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()

	for _, args := range [][]string{{}, {"--config", ""}, {"-c", "  "}} {
		out, err := execute(t, fs, args...)

		require.ErrorIs(t, err, cmd.ErrNoConfigFile)
		assert.EqualError(t, err, "no config file specified, please provide one with the --config flag")
		assert.Empty(t, out)
	}

	entries, err := afero.ReadDir(fs, "/")
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestExecuteMissingConfigFile(t *testing.T) {
	t.Parallel()

	_, err := execute(t, newProjectFs(t, nil), "--config", "missing.json")

	require.ErrorIs(t, err, configmanager.ErrConfigRead)
	assert.ErrorContains(t, err, "missing.json")
}

func TestExecuteMalformedConfig(t *testing.T) {
	t.Parallel()

	fs := newProjectFs(t, map[string]string{
		"fagen.json": `{"icons": [{"name": "faGithub", "style": "brands", "icon_type": "free"}], "output": "out"}`,
	})

	_, err := execute(t, fs, "--config", "fagen.json")

	require.ErrorIs(t, err, configmanager.ErrConfigParse)
	assert.ErrorContains(t, err, "icons[0].component_name")

	exists, err := afero.Exists(fs, "out")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestExecuteRequiredSchema(t *testing.T) {
	t.Parallel()

	fs := newProjectFs(t, map[string]string{"fagen.json": githubConfig})

	_, err := execute(t, fs, "--config", "fagen.json", "--schema", "explicit")

	require.ErrorIs(t, err, icons.ErrUnexpectedSchema)

	_, err = execute(t, fs, "--config", "fagen.json", "--schema", "implicit")

	require.Error(t, err)
	assert.ErrorContains(t, err, "invalid icon schema")
}

func TestExecuteMissingTemplate(t *testing.T) {
	t.Parallel()

	fs := newProjectFs(t, map[string]string{"fagen.json": githubConfig})

	_, err := execute(t, fs, "--config", "fagen.json", "--template", "templates/missing.tsx")

	require.ErrorIs(t, err, component.ErrTemplateLoad)

	exists, err := afero.Exists(fs, "out")
	require.NoError(t, err)
	assert.False(t, exists, "output directory should not be created before the template loads")
}

func TestExecuteRenderFailure(t *testing.T) {
	t.Parallel()

	fs := newProjectFs(t, map[string]string{
		"fagen.json":  githubConfig,
		"broken.tsx": "{{.component_name}} {{.icon_style}}",
	})

	out, err := execute(t, fs, "--config", "fagen.json", "--template", "broken.tsx")

	require.ErrorIs(t, err, component.ErrTemplateRender)
	assert.ErrorContains(t, err, "icon faGithub")
	assert.NotContains(t, out, "✔")

	exists, err := afero.Exists(fs, "out/GithubIcon.tsx")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestExecuteInvalidLogLevel(t *testing.T) {
	t.Parallel()

	fs := newProjectFs(t, map[string]string{"fagen.json": githubConfig})

	_, err := execute(t, fs, "--config", "fagen.json", "--log-level", "loud")

	require.Error(t, err)
	assert.ErrorContains(t, err, "invalid --log-level")
}

func TestExecuteTimingFlag(t *testing.T) {
	t.Parallel()

	fs := newProjectFs(t, map[string]string{"fagen.json": githubConfig})

	out, err := execute(t, fs, "--config", "fagen.json", "--timing")

	require.NoError(t, err)
	assert.Contains(t, out, "✔ generated 1 components in out/\n⏲ ")

	out, err = execute(t, fs, "--config", "fagen.json")

	require.NoError(t, err)
	assert.NotContains(t, out, "⏲")
}

func TestExecuteRejectsArguments(t *testing.T) {
	t.Parallel()

	_, err := execute(t, newProjectFs(t, nil), "fagen.json")

	require.Error(t, err)
	assert.ErrorContains(t, err, `unknown command "fagen.json" for "fagen"`)
}
