package fixtures

import (
	"fmt"
	"strings"
)

// pathFields addresses the operation groups whose Args strings hold
// slash-delimited paths. Only these six groups are normalized; convert
// groups and all non-Args fields pass through untouched.
var pathFields = []string{
	"retrieve.manifest",
	"retrieve.metadata",
	"retrieve.sourcepath",
	"deploy.manifest",
	"deploy.metadata",
	"deploy.sourcepath",
}

// Catalog is the normalized, read-only fixture collection. It is safe for
// concurrent readers after Load returns.
type Catalog struct {
	repos []RepoConfig
	byURL map[string]RepoConfig
}

// Load builds the catalog: it takes a fresh copy of the fixture data,
// rewrites the path-argument groups to the native separator, and indexes
// the entries by git URL. A duplicate git URL is a construction error.
func Load() (*Catalog, error) {
	return newCatalog(repoConfigs())
}

// MustLoad is Load for callers that treat a malformed catalog as fatal.
func MustLoad() *Catalog {
	c, err := Load()
	if err != nil {
		panic(err)
	}
	return c
}

func newCatalog(repos []RepoConfig) (*Catalog, error) {
	normalizeRepos(repos)

	byURL := make(map[string]RepoConfig, len(repos))
	for _, r := range repos {
		if _, dup := byURL[r.GitURL]; dup {
			return nil, fmt.Errorf("duplicate git URL in fixture catalog: %s", r.GitURL)
		}
		byURL[r.GitURL] = r
	}

	return &Catalog{repos: repos, byURL: byURL}, nil
}

// Repos returns the entries in declaration order. Callers must not modify
// the returned slice or anything reachable from it.
func (c *Catalog) Repos() []RepoConfig {
	return c.repos
}

// Get looks up an entry by its git URL.
func (c *Catalog) Get(gitURL string) (RepoConfig, bool) {
	r, ok := c.byURL[gitURL]
	return r, ok
}

// Len returns the number of catalog entries.
func (c *Catalog) Len() int {
	return len(c.repos)
}

// normalizeRepos rewrites the Args string of every test case addressed by
// pathFields, in place. The field-path list is static and must match the
// data shape exactly: an absent group or mode is a programming error and
// panics rather than being skipped.
func normalizeRepos(repos []RepoConfig) {
	for i := range repos {
		for _, field := range pathFields {
			group, mode, ok := strings.Cut(field, ".")
			if !ok {
				panic(fmt.Sprintf("malformed path field %q", field))
			}

			var cases []TestCase
			var present bool
			switch group {
			case OpDeploy:
				cases, present = repos[i].Deploy[mode]
			case OpRetrieve:
				cases, present = repos[i].Retrieve[mode]
			default:
				panic(fmt.Sprintf("path field %q addresses unknown group %q", field, group))
			}
			if !present {
				panic(fmt.Sprintf("fixture %s is missing group %s", repos[i].GitURL, field))
			}

			for j := range cases {
				cases[j].Args = NormalizeArgs(cases[j].Args)
			}
		}
	}
}
