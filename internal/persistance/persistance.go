package persistance

import (
	"encoding/json"
	"ghrest/internal/pkg/fs"
	"ghrest/pkg/endpoint"
	"os"
	"path/filepath"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
)

const maxRecent = 20

type RecentEndpoint struct {
	Name     string    `json:"name"`
	Method   string    `json:"method"`
	Path     string    `json:"path"`
	Params   []string  `json:"params,omitempty"`
	LastUsed time.Time `json:"lastUsed"`
}

// Endpoint binds the stored params to the route again. It fails when the
// route no longer exists.
func (r *RecentEndpoint) Endpoint() (endpoint.Endpoint, error) {
	route, ok := endpoint.Lookup(r.Name)
	if !ok {
		return endpoint.Endpoint{}, errors.Errorf("unknown endpoint %s", r.Name)
	}

	return route.Bind(r.Params...)
}

type state struct {
	Recent []*RecentEndpoint `json:"recent,omitempty"`
}

type PersistanceRepo interface {
	AddRecent(e endpoint.Endpoint) error
	GetRecent() ([]*RecentEndpoint, error)
}

type XDGPersistanceRepo struct {
	s   *state
	fs  fs.Filesystem
	dir string
}

var now = time.Now

func NewXDGPersistanceRepo(fs fs.Filesystem, dir string) *XDGPersistanceRepo {
	return &XDGPersistanceRepo{
		s:   &state{},
		fs:  fs,
		dir: dir,
	}
}

func (repo *XDGPersistanceRepo) stateFile() string {
	return filepath.Join(repo.dir, "state")
}

func (repo *XDGPersistanceRepo) createConfigDirIfNotExist() error {
	_, err := repo.fs.Stat(repo.dir)
	if os.IsNotExist(err) {
		return repo.fs.MkdirAll(repo.dir, 0700)
	}

	return nil
}

func (repo *XDGPersistanceRepo) load() error {
	data, err := repo.fs.ReadFile(repo.stateFile())
	if errors.Is(err, os.ErrNotExist) {
		repo.s = &state{}
		return nil
	}
	if err != nil {
		return err
	}

	s := &state{}
	err = json.Unmarshal(data, s)
	if err != nil {
		return errors.Wrap(err, "cannot load state file")
	}
	repo.s = s

	return nil
}

func (repo *XDGPersistanceRepo) save() error {
	err := repo.createConfigDirIfNotExist()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(repo.s, "", "  ")
	if err != nil {
		return err
	}

	return repo.fs.WriteFile(repo.stateFile(), data, 0644)
}

// GetRecent returns the recently used endpoints, most recent first.
func (repo *XDGPersistanceRepo) GetRecent() ([]*RecentEndpoint, error) {
	err := repo.load()
	if err != nil {
		return nil, err
	}

	return repo.s.Recent, nil
}

// AddRecent moves e to the front of the recent list. Using the same route
// again replaces its entry.
func (repo *XDGPersistanceRepo) AddRecent(e endpoint.Endpoint) error {
	err := repo.load()
	if err != nil {
		return err
	}

	index := slices.IndexFunc(
		repo.s.Recent,
		func(r *RecentEndpoint) bool {
			return r.Name == e.Name()
		},
	)
	if index != -1 {
		repo.s.Recent = slices.Delete(repo.s.Recent, index, index+1)
	}

	repo.s.Recent = slices.Insert(repo.s.Recent, 0, &RecentEndpoint{
		Name:     e.Name(),
		Method:   string(e.Method()),
		Path:     e.Path(),
		Params:   e.Params(),
		LastUsed: now(),
	})
	if len(repo.s.Recent) > maxRecent {
		repo.s.Recent = repo.s.Recent[:maxRecent]
	}

	return repo.save()
}

var persistanceRepo PersistanceRepo

func GetRepo() PersistanceRepo {
	if persistanceRepo != nil {
		return persistanceRepo
	}

	dir, err := homedir.Expand("~/.config/ghrest")
	if err != nil {
		log.Debug().Err(err).Msg("home directory unavailable, keeping state in the working directory")
		dir = ".ghrest"
	}
	persistanceRepo = NewXDGPersistanceRepo(fs.OS{}, dir)

	return persistanceRepo
}
