package aur

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"runtime"
	"slices"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.trai.ch/porter/internal/core/domain"
	"go.trai.ch/porter/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

const (
	// maxArgs caps the names per RPC request; larger batches are split and
	// the chunks fetched in parallel.
	maxArgs = 150

	defaultTimeout       = 30 * time.Second
	defaultRetryInterval = 500 * time.Millisecond
	defaultCacheTTL      = 5 * time.Minute
	maxRetries           = 4
)

// Repo implements ports.Repository over the AUR RPC v5 info endpoint.
// Transport failures and malformed payloads are provider failures; names
// absent from a successful reply are simply unresolved.
type Repo struct {
	base          string
	hc            *http.Client
	cache         *diskCache
	retryInterval time.Duration
	sf            singleflight.Group
}

// New creates the AUR provider configured by the settings snapshot.
func New(s *domain.Settings) *Repo {
	r := &Repo{
		base:          s.AURURL,
		hc:            &http.Client{Timeout: defaultTimeout},
		retryInterval: defaultRetryInterval,
	}
	if s.CacheDir != "" {
		r.cache = newDiskCache(s.CacheDir+"/aur", defaultCacheTTL)
	}
	return r
}

// Lookup queries the RPC for the whole name set, chunked and fetched in
// parallel, one round trip per chunk.
func (r *Repo) Lookup(ctx context.Context, _ *domain.Settings, names domain.NameSet) (*ports.LookupResult, error) {
	sorted := nameStrings(names.Sorted())

	var mu sync.Mutex
	var infos []pkgInfo

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for chunk := range slices.Chunk(sorted, maxArgs) {
		g.Go(func() error {
			results, err := r.fetch(gctx, chunk)
			if err != nil {
				return err
			}
			mu.Lock()
			infos = append(infos, results...)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	byName := make(map[string]pkgInfo, len(infos))
	for _, info := range infos {
		byName[info.Name] = info
	}

	res := &ports.LookupResult{Unresolved: make(domain.NameSet)}
	for n := range names {
		info, ok := byName[n.String()]
		if !ok {
			res.Unresolved.Add(n)
			continue
		}
		res.Resolved = append(res.Resolved, r.toBuildable(info))
	}
	return res, nil
}

// fetch retrieves one chunk, collapsing identical in-flight requests and
// consulting the disk cache first.
func (r *Repo) fetch(ctx context.Context, chunk []string) ([]pkgInfo, error) {
	key := cacheKey(chunk)
	v, err, _ := r.sf.Do(key, func() (any, error) {
		if cached, ok := r.cache.get(key); ok {
			return cached, nil
		}
		results, err := r.request(ctx, chunk)
		if err != nil {
			return nil, err
		}
		r.cache.put(key, results)
		return results, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]pkgInfo), nil
}

// request performs the RPC round trip, retrying transient failures with
// exponential backoff. Retrying here is a provider concern; the core above
// never retries.
func (r *Repo) request(ctx context.Context, chunk []string) ([]pkgInfo, error) {
	query := url.Values{}
	for _, name := range chunk {
		query.Add("arg[]", name)
	}
	endpoint := r.base + "/rpc/v5/info?" + query.Encode()

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = r.retryInterval

	var results []pkgInfo
	op := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return backoff.Permanent(err)
		}
		resp, err := r.hc.Do(req)
		if err != nil {
			return err
		}
		defer func() { _ = resp.Body.Close() }()

		switch {
		case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
			return fmt.Errorf("transient status %d", resp.StatusCode)
		case resp.StatusCode != http.StatusOK:
			return backoff.Permanent(fmt.Errorf("unexpected status %d", resp.StatusCode))
		}

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return err
		}

		var rpc rpcResponse
		if err := json.Unmarshal(body, &rpc); err != nil {
			return backoff.Permanent(zerr.Wrap(err, "malformed RPC payload"))
		}
		if rpc.Type == "error" {
			return backoff.Permanent(zerr.With(zerr.New("RPC error reply"), "detail", rpc.Error))
		}

		results = rpc.Results
		return nil
	}

	err := backoff.Retry(op, backoff.WithContext(backoff.WithMaxRetries(policy, maxRetries), ctx))
	if err != nil {
		failure := zerr.Wrap(err, domain.ErrProviderFailure.Error())
		return nil, zerr.With(failure, "endpoint", r.base)
	}
	return results, nil
}

// toBuildable maps an RPC payload entry to recipe metadata.
func (r *Repo) toBuildable(info pkgInfo) domain.Buildable {
	base := info.PackageBase
	if base == "" {
		base = info.Name
	}
	return domain.Buildable{
		Name:        domain.NewPkgName(info.Name),
		Base:        domain.NewPkgName(base),
		Version:     info.Version,
		CloneURL:    r.base + "/" + base + ".git",
		Depends:     parseDeps(info.Depends),
		MakeDepends: parseDeps(info.MakeDepends),
		OutOfDate:   info.OutOfDate != nil,
		Votes:       info.NumVotes,
	}
}

func parseDeps(tokens []string) []domain.Dep {
	if len(tokens) == 0 {
		return nil
	}
	deps := make([]domain.Dep, len(tokens))
	for i, t := range tokens {
		deps[i] = domain.ParseDep(t)
	}
	return deps
}

func nameStrings(names []domain.PkgName) []string {
	res := make([]string, len(names))
	for i, n := range names {
		res[i] = n.String()
	}
	return res
}
