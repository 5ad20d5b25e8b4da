package config

import (
	"os"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"
)

func writeFile(t *testing.T, fsys afero.Fs, path, content string) {
	t.Helper()
	require.NoError(t, afero.WriteFile(fsys, path, []byte(content), 0o644))
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(Options{FS: afero.NewMemMapFs(), WorkDir: "/work", HomeDir: "/home/u"})
	require.NoError(t, err)

	want := Defaults()
	assert.Equal(t, want, cfg)
	assert.Empty(t, cfg.File)
}

func TestLoadSearchOrder(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeFile(t, fsys, UserFile("/home/u"), "language: js\n")

	cfg, err := Load(Options{FS: fsys, WorkDir: "/work", HomeDir: "/home/u"})
	require.NoError(t, err)
	assert.Equal(t, "js", cfg.Language)
	assert.Equal(t, UserFile("/home/u"), cfg.File)

	writeFile(t, fsys, "/work/.featgen.yaml", "language: auto\ncomponent_file_case: param\n")
	cfg, err = Load(Options{FS: fsys, WorkDir: "/work", HomeDir: "/home/u"})
	require.NoError(t, err)
	assert.Equal(t, "auto", cfg.Language)
	assert.Equal(t, "param", cfg.ComponentFileCase)
	assert.Equal(t, "/work/.featgen.yaml", cfg.File)

	writeFile(t, fsys, "/etc/featgen.yaml", "copy_path: true\n")
	cfg, err = Load(Options{FS: fsys, File: "/etc/featgen.yaml", WorkDir: "/work", HomeDir: "/home/u"})
	require.NoError(t, err)
	assert.True(t, cfg.CopyPath)
	assert.Equal(t, "ts", cfg.Language)
}

func TestLoadExplicitFileMustExist(t *testing.T) {
	_, err := Load(Options{FS: afero.NewMemMapFs(), File: "/missing.yaml"})
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadRejectsSchemaViolations(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeFile(t, fsys, "/work/.featgen.yaml", "language: coffee\n")

	_, err := Load(Options{FS: fsys, WorkDir: "/work", HomeDir: "/home/u"})
	require.ErrorIs(t, err, ErrInvalid)
	assert.Contains(t, err.Error(), "/language")
}

func TestLoadEnvironmentOverridesFile(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeFile(t, fsys, "/work/.featgen.yaml", "language: ts\n")
	t.Setenv("FEATGEN_LANGUAGE", "js")

	cfg, err := Load(Options{FS: fsys, WorkDir: "/work", HomeDir: "/home/u"})
	require.NoError(t, err)
	assert.Equal(t, "js", cfg.Language)
}

func TestLoadRejectsBadEnvironment(t *testing.T) {
	t.Setenv("FEATGEN_COMPONENT_FILE_CASE", "snake")

	_, err := Load(Options{FS: afero.NewMemMapFs(), HomeDir: "/home/u"})
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestInit(t *testing.T) {
	fsys := afero.NewMemMapFs()
	path := UserFile("/home/u")

	require.NoError(t, Init(fsys, path, false))
	data, err := afero.ReadFile(fsys, path)
	require.NoError(t, err)

	var got Config
	require.NoError(t, yaml.Unmarshal(data, &got))
	assert.Equal(t, Defaults(), got)

	res, err := Validate(data)
	require.NoError(t, err)
	assert.True(t, res.Valid, res.String())

	assert.ErrorIs(t, Init(fsys, path, false), os.ErrExist)
	assert.NoError(t, Init(fsys, path, true))
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name  string
		yaml  string
		valid bool
		path  string
	}{
		{name: "empty", yaml: "", valid: true},
		{name: "full", yaml: "language: js\ncomponent_file_case: param\ncopy_path: true\nmin_version: v1.2.0\n", valid: true},
		{name: "bad language", yaml: "language: coffee\n", path: "/language"},
		{name: "bad case", yaml: "component_file_case: camel\n", path: "/component_file_case"},
		{name: "bad bool", yaml: "copy_path: yes please\n", path: "/copy_path"},
		{name: "bad version", yaml: "min_version: latest\n", path: "/min_version"},
		{name: "unknown key", yaml: "colour: blue\n"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := Validate([]byte(tc.yaml))
			require.NoError(t, err)
			assert.Equal(t, tc.valid, res.Valid, res.String())
			if tc.path != "" {
				require.NotEmpty(t, res.Issues)
				assert.Equal(t, tc.path, res.Issues[0].Path)
			}
		})
	}
}

func TestValidateUnparsable(t *testing.T) {
	_, err := Validate([]byte("language: [unclosed"))
	assert.Error(t, err)
}

func TestCheckMinVersion(t *testing.T) {
	testCases := []struct {
		min, current string
		wantErr      error
	}{
		{min: "", current: "v0.1.0"},
		{min: "v1.0.0", current: "v1.0.0"},
		{min: "1.0.0", current: "v1.2.3"},
		{min: "v1.3.0", current: "v1.2.3", wantErr: ErrVersionTooOld},
		{min: "v9.0.0", current: "dev"},
		{min: "nope", current: "v1.0.0", wantErr: ErrInvalid},
	}
	for _, tc := range testCases {
		err := CheckMinVersion(tc.min, tc.current)
		if tc.wantErr == nil {
			assert.NoError(t, err, "%s vs %s", tc.min, tc.current)
			continue
		}
		assert.ErrorIs(t, err, tc.wantErr, "%s vs %s", tc.min, tc.current)
	}
}
