package core

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/gitwrap/gitwrap/internal/contract"
	"github.com/gitwrap/gitwrap/schema"
	"golang.org/x/sync/errgroup"
)

// manifestPath is the fixed manifest location scanned in every repository.
const manifestPath = "package.json"

// maxDependencyEntries caps how many entries the profiler exports.
const maxDependencyEntries = 20

// profileDependencies scans the manifests of up to ManifestRepoLimit
// repositories in parallel and accumulates how many distinct repositories
// declare each package. A name appearing in both the dependencies and
// devDependencies sections of one manifest counts once for that repository.
//
// Failures are isolated per repository: a missing, malformed, or
// undecodable manifest silently drops that repository from the scan.
func profileDependencies(ctx context.Context, client contract.GitHubClient, repos []schema.Repository) (string, []schema.DependencyCount, float64) {
	if len(repos) > contract.ManifestRepoLimit {
		repos = repos[:contract.ManifestRepoLimit]
	}

	// Launch all fetches, collect all results. Slots are indexed by repo
	// position so the merge below runs in list order and tie-breaking
	// stays deterministic.
	nameSets := make([][]string, len(repos))
	var g errgroup.Group
	for i, repo := range repos {
		g.Go(func() error {
			content, err := client.FileContent(ctx, repo.FullName, manifestPath)
			if err != nil {
				return nil // no manifest, skip this repository
			}
			names, err := manifestDependencyNames(content)
			if err != nil {
				return nil // malformed manifest, treated the same
			}
			nameSets[i] = names
			return nil
		})
	}
	_ = g.Wait() // workers never return errors; failures are per-unit skips

	// Frequency table with first-encounter ordering for stable ties.
	counts := make(map[string]int)
	var order []string
	for _, names := range nameSets {
		for _, name := range names {
			if counts[name] == 0 {
				order = append(order, name)
			}
			counts[name]++
		}
	}

	sorted := make([]schema.DependencyCount, 0, len(order))
	for _, name := range order {
		sorted = append(sorted, schema.DependencyCount{Name: name, Count: counts[name]})
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Count > sorted[j].Count
	})

	top := schema.DefaultTopDependency
	if len(sorted) > 0 {
		top = sorted[0].Name
	}
	variance := dependencyVariance(sorted)
	if len(sorted) > maxDependencyEntries {
		sorted = sorted[:maxDependencyEntries]
	}
	return top, sorted, variance
}

// dependencyVariance is the population variance of the frequency
// distribution. An empty distribution defaults to exactly 1 so that no data
// never reads as maximal concentration.
func dependencyVariance(deps []schema.DependencyCount) float64 {
	if len(deps) == 0 {
		return 1
	}
	sum := 0.0
	for _, dep := range deps {
		sum += float64(dep.Count)
	}
	mean := sum / float64(len(deps))

	sumSq := 0.0
	for _, dep := range deps {
		delta := float64(dep.Count) - mean
		sumSq += delta * delta
	}
	return sumSq / float64(len(deps))
}

// packageManifest captures the two dependency sections of a manifest with
// their key order preserved.
type packageManifest struct {
	Dependencies    orderedKeys `json:"dependencies"`
	DevDependencies orderedKeys `json:"devDependencies"`
}

// manifestDependencyNames parses a manifest and returns the union of its
// dependencies and devDependencies names in file-encounter order, with
// duplicates across the two sections removed.
func manifestDependencyNames(content string) ([]string, error) {
	var manifest packageManifest
	if err := json.Unmarshal([]byte(content), &manifest); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}

	seen := make(map[string]struct{})
	var names []string
	for _, section := range [][]string{manifest.Dependencies, manifest.DevDependencies} {
		for _, name := range section {
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			names = append(names, name)
		}
	}
	return names, nil
}

// orderedKeys collects the keys of a JSON object in their file order. A
// plain map would randomize iteration and break the stable tie ordering.
type orderedKeys []string

// UnmarshalJSON implements json.Unmarshaler.
func (o *orderedKeys) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		return nil // JSON null, section absent
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("dependency section is not an object")
	}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("dependency key is not a string")
		}
		*o = append(*o, key)

		var skip json.RawMessage
		if err := dec.Decode(&skip); err != nil {
			return err
		}
	}
	return nil
}
