package gitutils

import (
	"github.com/go-git/go-git/v5"
)

type goGitRepository interface {
	Remotes() ([]*git.Remote, error)
}

type gitRepository interface {
	GetRemoteURLs() (map[string][]string, error)
}

type repository struct {
	r goGitRepository
}

var openRepo = func(path string) (goGitRepository, error) {
	return git.PlainOpenWithOptions(path, &git.PlainOpenOptions{
		DetectDotGit: true,
	})
}

// GetRemoteURLs returns the URLs of every remote by remote name.
func (r *repository) GetRemoteURLs() (map[string][]string, error) {
	remotes, err := r.r.Remotes()
	if err != nil {
		return nil, err
	}

	urls := make(map[string][]string, len(remotes))
	for _, re := range remotes {
		c := re.Config()
		urls[c.Name] = append(urls[c.Name], c.URLs...)
	}

	return urls, nil
}
