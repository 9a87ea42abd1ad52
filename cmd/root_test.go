package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oakwood-commons/ccx/internal/cache"
	"github.com/oakwood-commons/ccx/internal/formatter"
	"github.com/oakwood-commons/ccx/internal/ui"
	"github.com/oakwood-commons/ccx/pkg/settings"
)

const testCache = `# This is the CMakeCache file.

//Choose the type of build.
CMAKE_BUILD_TYPE:STRING=Debug
//Build the testing tree.
BUILD_TESTING:BOOL=ON
//Install path prefix, prepended onto install directories.
CMAKE_INSTALL_PREFIX:PATH=/usr/local
//If this value is on, makefiles will be generated without the
// .SILENT directive.
CMAKE_VERBOSE_MAKEFILE:BOOL=FALSE

########################
# INTERNAL cache entries
########################

CMAKE_BUILD_TYPE-STRINGS:INTERNAL=Debug;Release;RelWithDebInfo;MinSizeRel
CMAKE_VERBOSE_MAKEFILE-ADVANCED:INTERNAL=1
`

// isolate keeps the user's own config out of the test.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
}

func writeBuildDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, cache.DefaultFileName), []byte(testCache), 0o600))
	return dir
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func snapshotArgs(extra ...string) []string {
	return append([]string{"--snapshot", "--no-color", "--width", "100", "--height", "20"}, extra...)
}

func TestSnapshotRendersEntries(t *testing.T) {
	isolate(t)
	dir := writeBuildDir(t)

	out, err := execute(t, snapshotArgs(dir)...)
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSuffix(out, "\n"), "\n"), 20)
	assert.Contains(t, out, "CMAKE_BUILD_TYPE")
	assert.Contains(t, out, "BUILD_TESTING")
	assert.NotContains(t, out, "CMAKE_VERBOSE_MAKEFILE", "advanced entries start hidden")
	assert.True(t, strings.HasPrefix(out, " ccx"), out)
}

func TestSnapshotWithStartupKeys(t *testing.T) {
	isolate(t)
	dir := writeBuildDir(t)

	out, err := execute(t, snapshotArgs("-p", dir, "--press", "j", "--press", "<Space>")...)
	require.NoError(t, err)
	assert.Contains(t, out, "CMAKE_BUILD_TYPE = Release")
	assert.Contains(t, out, "* CMAKE_BUILD_TYPE")
	assert.Contains(t, out, "1 modified")
}

func TestSnapshotShowAdvanced(t *testing.T) {
	isolate(t)
	dir := writeBuildDir(t)

	out, err := execute(t, snapshotArgs("--show-advanced", dir)...)
	require.NoError(t, err)
	assert.Contains(t, out, "CMAKE_VERBOSE_MAKEFILE")
	assert.Contains(t, out, "advanced shown")
}

func TestSnapshotEmacsKeymap(t *testing.T) {
	isolate(t)
	dir := writeBuildDir(t)

	out, err := execute(t, snapshotArgs("--keymap", "emacs", "--press", "<C-n><Space>", dir)...)
	require.NoError(t, err)
	assert.Contains(t, out, "CMAKE_BUILD_TYPE = Release")
	assert.Contains(t, out, "ctrl+q quit")
}

func TestMissingCacheIsFatalWhenStrict(t *testing.T) {
	isolate(t)

	_, err := execute(t, snapshotArgs(t.TempDir())...)
	require.Error(t, err)
	var ioErr *cache.IOError
	require.True(t, errors.As(err, &ioErr))
	assert.Equal(t, 1, ExitCode(err))
}

func TestMissingCacheLenient(t *testing.T) {
	isolate(t)

	out, err := execute(t, snapshotArgs("--strict=false", t.TempDir())...)
	require.NoError(t, err)
	assert.Contains(t, out, "no entries")
}

func TestStrictnessFromConfig(t *testing.T) {
	isolate(t)
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("cache:\n  strict: false\n"), 0o600))

	_, err := execute(t, snapshotArgs("--config-file", cfgPath, t.TempDir())...)
	require.NoError(t, err)

	_, err = execute(t, snapshotArgs("--config-file", cfgPath, "--strict", t.TempDir())...)
	require.Error(t, err, "an explicit flag beats the config")
}

func TestUsageErrorsExitWithTwo(t *testing.T) {
	isolate(t)
	dir := writeBuildDir(t)

	cases := map[string][]string{
		"unknown flag":   snapshotArgs("--bogus", dir),
		"two dirs":       snapshotArgs("-p", t.TempDir(), dir),
		"too many args":  snapshotArgs(dir, dir),
		"bad keymap":     snapshotArgs("--keymap", "nano", dir),
		"unknown theme":  snapshotArgs("--theme", "neon", dir),
		"bad list out":   {"list", "-o", "xml", dir},
		"bad filter":     {"list", "-e", "e.name ==", dir},
		"version args":   {"version", "extra"},
		"non-int width":  {"--snapshot", "--width", "wide", dir},
		"list too many":  {"list", dir, dir},
		"config has arg": {"config", "x"},
	}
	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := execute(t, args...)
			require.Error(t, err)
			assert.Equal(t, 2, ExitCode(err), "error: %v", err)
		})
	}
}

func TestListTable(t *testing.T) {
	isolate(t)
	dir := writeBuildDir(t)

	out, err := execute(t, "list", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "CMAKE_INSTALL_PREFIX")
	assert.NotContains(t, out, "CMAKE_VERBOSE_MAKEFILE")
}

func TestListFilterAndFormats(t *testing.T) {
	isolate(t)
	dir := writeBuildDir(t)

	out, err := execute(t, "list", dir, "--advanced", "-o", "json", "-e", `e.type == "BOOL"`)
	require.NoError(t, err)
	var recs []formatter.Record
	require.NoError(t, json.Unmarshal([]byte(out), &recs))
	require.Len(t, recs, 2)
	assert.Equal(t, "BUILD_TESTING", recs[0].Name)
	assert.Equal(t, "CMAKE_VERBOSE_MAKEFILE", recs[1].Name)
	assert.True(t, recs[1].Advanced)

	out, err = execute(t, "list", dir, "-o", "yaml", "-e", `"Release" in e.allowed`)
	require.NoError(t, err)
	assert.Contains(t, out, "name: CMAKE_BUILD_TYPE")
	assert.Contains(t, out, "type: ENUM")

	out, err = execute(t, "list", "-p", dir, "-o", "toml")
	require.NoError(t, err)
	assert.Contains(t, out, "[[entry]]")

	out, err = execute(t, "list", dir, "-o", "list", "-e", `e.name == "BUILD_TESTING"`)
	require.NoError(t, err)
	assert.Equal(t, "//Build the testing tree.\nBUILD_TESTING:BOOL=ON\n", out)
}

func TestListOutputFromConfig(t *testing.T) {
	isolate(t)
	dir := writeBuildDir(t)
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("list:\n  output: json\n"), 0o600))

	out, err := execute(t, "list", dir, "--config-file", cfgPath)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "["), out)
}

func TestVersionCommand(t *testing.T) {
	isolate(t)
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "ccx "), out)

	flagOut, err := execute(t, "--version")
	require.NoError(t, err)
	assert.Equal(t, out, flagOut)
}

func TestConfigCommands(t *testing.T) {
	isolate(t)
	out, err := execute(t, "config")
	require.NoError(t, err)
	assert.Contains(t, out, "themes:")
	assert.Contains(t, out, "keymap: vim")

	out, err = execute(t, "config", "themes")
	require.NoError(t, err)
	assert.Equal(t, "* dark\n  light\n  mono\n", out)
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 0, ExitCode(nil))
	assert.Equal(t, 1, ExitCode(errors.New("boom")))
	assert.Equal(t, 2, ExitCode(usageErrorf("bad %s", "flag")))
}

func TestFilterFlagCompletion(t *testing.T) {
	isolate(t)
	out, err := execute(t, "__complete", "list", "-e", "e.na")
	require.NoError(t, err)
	assert.Contains(t, out, "e.name\n")
	assert.Contains(t, out, ":2\n")
}

func TestListWindow(t *testing.T) {
	isolate(t)
	dir := writeBuildDir(t)

	out, err := execute(t, "list", dir, "-o", "list", "--offset", "1", "--limit", "1")
	require.NoError(t, err)
	assert.Equal(t, "//Choose the type of build.\nCMAKE_BUILD_TYPE:ENUM=Debug\n", out)

	out, err = execute(t, "list", dir, "-o", "json", "--tail", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "CMAKE_INSTALL_PREFIX")
	assert.NotContains(t, out, "BUILD_TESTING")

	_, err = execute(t, "list", dir, "--limit", "1", "--tail", "1")
	assert.Equal(t, 2, ExitCode(err))
}

func TestUIOptionsReadRunSettingsFromContext(t *testing.T) {
	isolate(t)
	cfg, err := loadMergedConfig("")
	require.NoError(t, err)
	root := newRootCmd()

	o := &options{ctx: context.Background()}
	_, err = o.uiOptions(root, cfg)
	require.Error(t, err)

	o.ctx = settings.IntoContext(o.ctx, &settings.Run{BuildDir: "build", CacheFileName: "Other.txt", NoColor: true})
	opts, err := o.uiOptions(root, cfg)
	require.NoError(t, err)
	assert.True(t, opts.NoColor)
	assert.Equal(t, cache.Path("build", "Other.txt"), opts.Source)
	assert.Equal(t, ui.KeyModeVim, opts.KeyMode)
}
