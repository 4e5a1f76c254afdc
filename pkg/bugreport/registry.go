// Copyright 2025 SirSeer, LLC
//
// Licensed under the Business Source License 1.1 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://mariadb.com/bsl11
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package bugreport

import (
	"context"
	"fmt"
	"maps"
	"sort"
	"sync"
)

// Registry holds one Reporter per repository name. The most recently
// registered reporter is the default.
type Registry struct {
	mu          sync.RWMutex
	reporters   map[string]*Reporter
	defaultName string
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{reporters: make(map[string]*Reporter)}
}

// Register creates a Reporter for cfg and stores it under cfg.Repository,
// replacing any earlier reporter for that repository.
func (g *Registry) Register(cfg Config, opts ...Option) (*Reporter, error) {
	r, err := New(cfg, opts...)
	if err != nil {
		return nil, err
	}
	g.Add(r)
	return r, nil
}

// Add stores r under its repository name and makes it the default.
func (g *Registry) Add(r *Reporter) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.reporters[r.cfg.Repository] = r
	g.defaultName = r.cfg.Repository
}

// Lookup returns the reporter for repository, or the default reporter when
// repository is empty.
func (g *Registry) Lookup(repository string) (*Reporter, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if repository == "" {
		repository = g.defaultName
	}
	if r, ok := g.reporters[repository]; ok {
		return r, nil
	}
	if repository == "" {
		return nil, fmt.Errorf("no repository registered: %w", ErrNotConfigured)
	}
	return nil, fmt.Errorf("repository %q: %w", repository, ErrNotConfigured)
}

// Repositories lists the registered repository names in sorted order.
func (g *Registry) Repositories() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	names := make([]string, 0, len(g.reporters))
	for name := range g.reporters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Decorate returns a Decorator that reports to repository, or to the
// default reporter when repository is empty. The reporter is looked up
// when a failure occurs, so decorators may be created before Register.
func (g *Registry) Decorate(repository string, extraInfo bool, extra map[string]any) *Decorator {
	return &Decorator{
		resolve:   func() (*Reporter, error) { return g.Lookup(repository) },
		extraInfo: extraInfo,
		extra:     maps.Clone(extra),
	}
}

// Report files a manual report against repository. It fails with
// ErrNotConfigured, without any network call, when repository has no
// reporter.
func (g *Registry) Report(ctx context.Context, repository, title, body string) (Result, error) {
	r, err := g.Lookup(repository)
	if err != nil {
		return Result{}, err
	}
	return r.Report(ctx, title, body)
}

var defaultRegistry = NewRegistry()

// Default returns the process-wide Registry used by the package-level
// functions.
func Default() *Registry {
	return defaultRegistry
}

// Setup registers a reporter for repository in the default registry.
func Setup(token, repository, organization string, testMode bool) (*Reporter, error) {
	return defaultRegistry.Register(Config{
		Token:        token,
		Repository:   repository,
		Organization: organization,
		TestMode:     testMode,
	})
}

// Register adds a reporter for cfg to the default registry.
func Register(cfg Config, opts ...Option) (*Reporter, error) {
	return defaultRegistry.Register(cfg, opts...)
}

// Lookup finds a reporter in the default registry.
func Lookup(repository string) (*Reporter, error) {
	return defaultRegistry.Lookup(repository)
}

// Decorate returns a Decorator bound to the default registry.
func Decorate(repository string, extraInfo bool, extra map[string]any) *Decorator {
	return defaultRegistry.Decorate(repository, extraInfo, extra)
}

// Report files a manual report through the default registry.
func Report(ctx context.Context, repository, title, body string) (Result, error) {
	return defaultRegistry.Report(ctx, repository, title, body)
}
