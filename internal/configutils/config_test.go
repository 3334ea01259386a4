package configutils

import (
	"ghrest/internal/pkg/fs"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockConfigMerger struct {
	err   error
	types []string
}

func (m *mockConfigMerger) MergeConfig(in io.Reader) error {
	return m.err
}

func (m *mockConfigMerger) SetConfigType(t string) {
	m.types = append(m.types, t)
}

func writeFile(t *testing.T, dir, name, content string) string {
	f := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(f, []byte(content), 0600))
	return f
}

func withGlobalConfigDir(t *testing.T, dir string) {
	old := getGlobalConfigDir
	getGlobalConfigDir = func() (string, error) { return dir, nil }
	t.Cleanup(func() { getGlobalConfigDir = old })
}

func Test_mergeConfig(t *testing.T) {
	t.Run("returns nil when merge succeeds", func(t *testing.T) {
		err := mergeConfig(nil, &mockConfigMerger{})
		assert.Equal(t, nil, err)
	})

	t.Run("returns error when merge fails", func(t *testing.T) {
		vErr := errors.New("mergeFailed")
		err := mergeConfig(nil, &mockConfigMerger{err: vErr})
		assert.EqualError(t, err, vErr.Error())
	})
}

func Test_fileExists(t *testing.T) {
	t.Run("returns nil if file exists", func(t *testing.T) {
		err := fileExists("", fs.MockFS{Info: fs.MockFileInfo{IsDirValue: false}})
		assert.Equal(t, nil, err)
	})

	t.Run("returns error if file does not exists", func(t *testing.T) {
		vErr := errors.New("file does not exist")
		err := fileExists("", fs.MockFS{Err: vErr})
		assert.EqualError(t, err, vErr.Error())
	})

	t.Run("returns error if file is a directory", func(t *testing.T) {
		err := fileExists("", fs.MockFS{Info: fs.MockFileInfo{IsDirValue: true}})
		assert.Equal(t, ErrConfigFileIsDir, err)
	})
}

func Test_loadFile(t *testing.T) {
	oldFileExists := fileExists
	defer func() { fileExists = oldFileExists }()

	t.Run("fails if file does not exist", func(t *testing.T) {
		vErr := errors.New("file err")
		fileExists = func(string, fs.Filesystem) error { return vErr }
		_, err := loadFile("", nil)
		assert.EqualError(t, err, vErr.Error())
	})

	t.Run("fails if file cannot be opened", func(t *testing.T) {
		vErr := errors.New("file err")
		fileExists = func(string, fs.Filesystem) error { return nil }
		_, err := loadFile("", fs.MockFS{Err: vErr})
		assert.EqualError(t, err, vErr.Error())
	})

	t.Run("succeeds if file exists and can be opened", func(t *testing.T) {
		fileExists = func(string, fs.Filesystem) error { return nil }
		_, err := loadFile("", fs.MockFS{})
		assert.Equal(t, nil, err)
	})
}

func Test_loadAnyType(t *testing.T) {
	oldLoadFile := loadFile
	defer func() { loadFile = oldLoadFile }()
	loadFile = func(string, fs.Filesystem) (io.Reader, error) { return nil, nil }

	t.Run("tries the file extension first", func(t *testing.T) {
		m := &mockConfigMerger{}
		err := loadAnyType("/tmp/config.toml", m)
		assert.NoError(t, err)
		assert.Equal(t, []string{"toml"}, m.types)
	})

	t.Run("tries every type when none matches", func(t *testing.T) {
		vErr := errors.New("parse err")
		m := &mockConfigMerger{err: vErr}
		err := loadAnyType("/tmp/.ghrestcfg", m)
		assert.Equal(t, vErr, err)
		assert.Equal(t, []string{"yaml", "json", "toml"}, m.types)
	})
}

func TestConfigure(t *testing.T) {
	t.Run("sets defaults", func(t *testing.T) {
		withGlobalConfigDir(t, t.TempDir())
		t.Setenv("GITHUB_TOKEN", "")
		t.Setenv("GHREST_GITHUB_TOKEN", "")

		v, err := loadConfigForPath("", "")
		require.NoError(t, err)
		assert.Equal(t, "https://api.github.com", v.GetString(KeyBaseURL))
		assert.Equal(t, "ghrest", v.GetString(KeyUserAgent))
		assert.Equal(t, "30s", v.GetDuration(KeyTimeout).String())
		assert.Equal(t, "", v.GetString(KeyToken))
	})

	t.Run("reads the first global config that loads", func(t *testing.T) {
		dir := t.TempDir()
		withGlobalConfigDir(t, dir)
		writeFile(t, dir, "config.json", `{"default": {"owner": "octocat"}}`)

		v, err := loadConfigForPath("", "")
		require.NoError(t, err)
		assert.Equal(t, "octocat", v.GetString(KeyDefaultOwner))
	})

	t.Run("reads an explicit config path", func(t *testing.T) {
		withGlobalConfigDir(t, t.TempDir())
		f := writeFile(t, t.TempDir(), "custom.toml", "[github]\nbase_url = \"https://ghe.example.com/api/v3\"\n")

		v, err := loadConfigForPath(f, "")
		require.NoError(t, err)
		assert.Equal(t, "https://ghe.example.com/api/v3", v.GetString(KeyBaseURL))
	})

	t.Run("fails when an explicit config path is missing", func(t *testing.T) {
		withGlobalConfigDir(t, t.TempDir())
		_, err := loadConfigForPath(filepath.Join(t.TempDir(), "missing.yaml"), "")
		assert.Error(t, err)
	})

	t.Run("merges the local config on top", func(t *testing.T) {
		global := t.TempDir()
		withGlobalConfigDir(t, global)
		writeFile(t, global, "config.yaml", "default:\n  owner: octocat\n  repo: Hello-World\n")
		local := t.TempDir()
		writeFile(t, local, LocalConfigName, "default:\n  repo: Spoon-Knife\n")

		v, err := loadConfigForPath("", local)
		require.NoError(t, err)
		assert.Equal(t, "octocat", v.GetString(KeyDefaultOwner))
		assert.Equal(t, "Spoon-Knife", v.GetString(KeyDefaultRepo))
	})

	t.Run("reads the environment", func(t *testing.T) {
		withGlobalConfigDir(t, t.TempDir())
		t.Setenv("GHREST_GITHUB_TOKEN", "")
		t.Setenv("GITHUB_TOKEN", "from-github-env")
		t.Setenv("GHREST_DEFAULT_OWNER", "from-env")

		v, err := loadConfigForPath("", "")
		require.NoError(t, err)
		assert.Equal(t, "from-github-env", v.GetString(KeyToken))
		assert.Equal(t, "from-env", v.GetString(KeyDefaultOwner))
	})

	t.Run("prefers the prefixed token", func(t *testing.T) {
		withGlobalConfigDir(t, t.TempDir())
		t.Setenv("GHREST_GITHUB_TOKEN", "prefixed")
		t.Setenv("GITHUB_TOKEN", "plain")

		v, err := loadConfigForPath("", "")
		require.NoError(t, err)
		assert.Equal(t, "prefixed", v.GetString(KeyToken))
	})
}

func TestLoadGlobal(t *testing.T) {
	defer viper.Reset()
	withGlobalConfigDir(t, t.TempDir())

	local := t.TempDir()
	writeFile(t, local, LocalConfigName, `{"default": {"owner": "from-local"}}`)

	old := filesystem
	defer func() { filesystem = old }()
	filesystem = workDirFS{OS: fs.OS{}, dir: local}

	require.NoError(t, LoadGlobal(""))
	assert.Equal(t, "from-local", viper.GetString(KeyDefaultOwner))
	assert.Equal(t, "ghrest", viper.GetString(KeyUserAgent))
}

type workDirFS struct {
	fs.OS
	dir string
}

func (w workDirFS) Getwd() (string, error) { return w.dir, nil }
