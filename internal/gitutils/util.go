package gitutils

import (
	"ghrest/internal/pkg/fs"
	"regexp"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

var (
	ErrCannotGetLocalRepository         = errors.New("cannot get local repository")
	ErrUnableToParseRemoteRepositoryURI = errors.New("unable to parse remote repository URI")
	ErrNoRemoteFound                    = errors.New("no remote points to a repository")
)

const DefaultRemote = "origin"

type Remote struct {
	Host  string
	Owner string
	Repo  string
}

func (r *Remote) FullName() string {
	return r.Owner + "/" + r.Repo
}

var (
	scpLikeURI = regexp.MustCompile(`^(?:[^@/]+@)?([^:/]+):/?([^/]+)/([^/]+?)(?:\.git)?/?$`)
	urlURI     = regexp.MustCompile(`^(?:https?|ssh|git)://(?:[^@/]+@)?([^/:]+)(?::\d+)?/([^/]+)/([^/]+?)(?:\.git)?/?$`)
)

// ParseRemoteURI reads the host, owner and repository name from a remote
// URL in either the scp-like form (git@github.com:owner/repo.git) or the
// URL form (https://github.com/owner/repo).
func ParseRemoteURI(uri string) (*Remote, error) {
	uri = strings.TrimSpace(uri)
	m := urlURI.FindStringSubmatch(uri)
	if m == nil && !strings.Contains(uri, "://") {
		m = scpLikeURI.FindStringSubmatch(uri)
	}
	if len(m) != 4 {
		return nil, errors.Wrap(ErrUnableToParseRemoteRepositoryURI, uri)
	}

	return &Remote{Host: m[1], Owner: m[2], Repo: m[3]}, nil
}

var getWorkingDir = func(fs fs.Filesystem) (string, error) {
	return fs.Getwd()
}

var openLocalRepo = func(path string) (gitRepository, error) {
	r, err := openRepo(path)
	if err != nil {
		return nil, errors.Wrap(err, ErrCannotGetLocalRepository.Error())
	}

	return &repository{r: r}, nil
}

// GetRemote finds the repository the git checkout containing path points to.
// The origin remote is preferred; otherwise the first remote by name that
// parses is used.
func GetRemote(path string) (*Remote, error) {
	r, err := openLocalRepo(path)
	if err != nil {
		return nil, err
	}

	urls, err := r.GetRemoteURLs()
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(urls))
	for name := range urls {
		if name != DefaultRemote {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	if _, ok := urls[DefaultRemote]; ok {
		names = append([]string{DefaultRemote}, names...)
	}

	for _, name := range names {
		for _, u := range urls[name] {
			remote, err := ParseRemoteURI(u)
			if err == nil {
				return remote, nil
			}
			log.Debug().Err(err).Str("remote", name).Msg("skipping remote")
		}
	}

	return nil, ErrNoRemoteFound
}

func GetWorkingDirectoryRemote() (*Remote, error) {
	wd, err := getWorkingDir(fs.OS{})
	if err != nil {
		return nil, errors.Wrap(err, ErrCannotGetLocalRepository.Error())
	}

	return GetRemote(wd)
}
