package configutils

import (
	"fmt"
	"ghrest/internal/pkg/fs"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

const (
	LocalConfigName = ".ghrestcfg"
	EnvPrefix       = "GHREST"
)

const (
	KeyToken        = "github.token"
	KeyBaseURL      = "github.base_url"
	KeyAccept       = "github.accept"
	KeyUserAgent    = "github.user_agent"
	KeyTimeout      = "github.timeout"
	KeyDefaultOwner = "default.owner"
	KeyDefaultRepo  = "default.repo"
	KeyLogLevel     = "log.level"
)

var defaults = map[string]interface{}{
	KeyBaseURL:   "https://api.github.com",
	KeyAccept:    "application/vnd.github.v3+json",
	KeyUserAgent: "ghrest",
	KeyTimeout:   "30s",
	KeyLogLevel:  "warn",
}

var filetypes = []string{"yaml", "json", "toml"}

type configMerger interface {
	MergeConfig(io.Reader) error
	SetConfigType(string)
}

var (
	ErrHomeDirNotFound = errors.New("unable to determine the home directory")
	ErrConfigFileIsDir = errors.New("configuration file is a directory")
)

var filesystem fs.Filesystem = fs.OS{}

var mergeConfig = func(in io.Reader, cm configMerger) error {
	err := cm.MergeConfig(in)
	if err != nil {
		return err
	}

	return nil
}

var fileExists = func(filename string, fs fs.Filesystem) error {
	info, err := fs.Stat(filename)
	if err != nil {
		return err
	}

	if info.IsDir() {
		return ErrConfigFileIsDir
	}

	return nil
}

var loadFile = func(filename string, fs fs.Filesystem) (io.Reader, error) {
	err := fileExists(filename, fs)
	if err != nil {
		return nil, err
	}

	f, err := fs.Open(filename)
	if err != nil {
		return nil, err
	}

	return f, nil
}

var loadConfig = func(filename string, cm configMerger) error {
	f, err := loadFile(filename, filesystem)
	if err != nil {
		return err
	}
	if c, ok := f.(io.Closer); ok {
		defer c.Close()
	}

	return mergeConfig(f, cm)
}

var getGlobalConfigDir = func() (string, error) {
	return homedir.Expand("~/.config/ghrest")
}

// loadAnyType merges filename trying each supported format in turn. A
// matching file extension is tried first.
func loadAnyType(filename string, cm configMerger) error {
	types := filetypes
	if ext := strings.TrimPrefix(filepath.Ext(filename), "."); ext != "" {
		for _, ft := range filetypes {
			if ft == ext {
				types = append([]string{ext}, filetypes...)
				break
			}
		}
	}

	var err error
	for _, ft := range types {
		cm.SetConfigType(ft)
		err = loadConfig(filename, cm)
		if err == nil {
			return nil
		}
		log.Debug().
			Msgf("config loading failed for type %s, skipping to next filetype", ft)
	}

	return err
}

func SetDefaults(v *viper.Viper) {
	for k, d := range defaults {
		v.SetDefault(k, d)
	}
}

// BindEnv reads every key from GHREST_<KEY> with dots replaced by
// underscores. GITHUB_TOKEN is used when GHREST_GITHUB_TOKEN is not set.
func BindEnv(v *viper.Viper) error {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v.BindEnv(KeyToken, EnvPrefix+"_GITHUB_TOKEN", "GITHUB_TOKEN")
}

// MergeGlobalConfig merges the file at path, or the first of
// ~/.config/ghrest/config.{yaml,json,toml} that loads when path is empty.
// Only an explicit path has to exist.
func MergeGlobalConfig(v *viper.Viper, path string) error {
	if path != "" {
		expanded, err := homedir.Expand(path)
		if err != nil {
			return ErrHomeDirNotFound
		}
		err = loadAnyType(expanded, v)
		if err != nil {
			return errors.Wrapf(err, "could not load config %s", path)
		}
		return nil
	}

	cfgDir, err := getGlobalConfigDir()
	if err != nil {
		return ErrHomeDirNotFound
	}

	for _, ft := range filetypes {
		f := filepath.Join(cfgDir, fmt.Sprintf("config.%s", ft))
		v.SetConfigType(ft)
		err = loadConfig(f, v)
		if err == nil {
			return nil
		}
		log.Debug().
			Msgf("config loading failed for type %s, skipping to next filetype", ft)
	}

	return nil
}

func MergeLocalConfig(v *viper.Viper, dir string) error {
	f := filepath.Join(dir, LocalConfigName)
	if _, err := filesystem.Stat(f); errors.Is(err, os.ErrNotExist) {
		return nil
	}

	err := loadAnyType(f, v)
	if err != nil {
		return errors.Wrapf(err, "could not load %s", f)
	}

	return nil
}

// Configure layers defaults, the global config, the local config found in
// dir and the environment onto v.
func Configure(v *viper.Viper, globalPath, dir string) error {
	SetDefaults(v)
	err := BindEnv(v)
	if err != nil {
		return err
	}

	err = MergeGlobalConfig(v, globalPath)
	if err != nil {
		return err
	}

	if dir == "" {
		return nil
	}

	return MergeLocalConfig(v, dir)
}

func loadConfigForPath(globalPath, dir string) (*viper.Viper, error) {
	v := viper.New()
	err := Configure(v, globalPath, dir)
	if err != nil {
		return nil, err
	}

	return v, nil
}

// LoadGlobal configures the global viper instance for the working
// directory.
func LoadGlobal(path string) error {
	wd, err := filesystem.Getwd()
	if err != nil {
		log.Debug().Err(err).Msg("working directory unavailable, skipping local config")
		wd = ""
	}

	return Configure(viper.GetViper(), path, wd)
}
