package detector

import (
	"context"
	"sync"
)

// Matcher searches a framework rule forest for the chains whose predicates
// hold against one project. The name and adjacency indexes are built once at
// construction and immutable afterwards; every Match call produces fresh
// chains owned by the caller.
type Matcher struct {
	runtime  string
	fsys     FileSystem
	byName   map[string]Framework
	children map[string][]string
	deps     map[string]string
}

// NewMatcher indexes rules into a forest rooted at the runtime name and
// validates every parent link. A framework whose parent is neither the runtime
// nor another rule's name fails construction with InvalidRuleSetError.
// The dependency map (name to declared version) is read-only to the matcher.
func NewMatcher(runtime string, fsys FileSystem, rules []Framework, deps map[string]string) (*Matcher, error) {
	byName := make(map[string]Framework, len(rules))
	for _, fw := range rules {
		byName[fw.Name] = fw
	}

	children := make(map[string][]string, len(rules))
	for _, fw := range rules {
		if fw.Parent != runtime {
			if _, ok := byName[fw.Parent]; !ok {
				return nil, &InvalidRuleSetError{Framework: fw.Name, Parent: fw.Parent}
			}
		}
		children[fw.Parent] = append(children[fw.Parent], fw.Name)
	}

	return &Matcher{
		runtime:  runtime,
		fsys:     fsys,
		byName:   byName,
		children: children,
		deps:     deps,
	}, nil
}

// Match searches the forest and returns the single detected chain, nil when no
// framework matched (a valid runtime-only outcome), or AmbiguousFrameworkError
// when more than one chain survives embeds resolution.
func (m *Matcher) Match(ctx context.Context) (Chain, error) {
	chains := m.matchChildren(ctx, m.runtime)
	chains = resolveEmbeds(chains)

	switch len(chains) {
	case 0:
		return nil, nil
	case 1:
		return chains[0], nil
	}

	leaves := make([]string, len(chains))
	for i, c := range chains {
		leaves[i] = c[0].Name
	}
	return nil, &AmbiguousFrameworkError{Frameworks: leaves}
}

// matchChildren evaluates every child of node concurrently and flattens their
// chain lists in rule order.
func (m *Matcher) matchChildren(ctx context.Context, node string) []Chain {
	names := m.children[node]
	if len(names) == 0 {
		return nil
	}

	results := make([][]Chain, len(names))
	var wg sync.WaitGroup
	for i, name := range names {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = m.matchNode(ctx, name)
		}()
	}
	wg.Wait()

	var flat []Chain
	for _, chains := range results {
		flat = append(flat, chains...)
	}
	return flat
}

// matchNode is the post-order search below one framework. A failed local
// predicate prunes the whole subtree. With no matching child the framework is
// a chain of its own; otherwise it extends every child chain one step toward
// the runtime, one output chain per child chain.
func (m *Matcher) matchNode(ctx context.Context, name string) []Chain {
	fw := m.byName[name]
	if !m.matches(ctx, fw) {
		return nil
	}

	childChains := m.matchChildren(ctx, name)
	if len(childChains) == 0 {
		return []Chain{{fw}}
	}

	out := make([]Chain, 0, len(childChains))
	for _, c := range childChains {
		extended := make(Chain, 0, len(c)+1)
		extended = append(extended, c...)
		extended = append(extended, fw)
		out = append(out, extended)
	}
	return out
}

// matches evaluates the local predicate: every declared dependency name must
// be present in the dependency map, and every required-file entry must hold.
// Existence checks across entries are issued concurrently.
func (m *Matcher) matches(ctx context.Context, fw Framework) bool {
	for _, dep := range fw.Dependencies {
		if _, ok := m.deps[dep.Name]; !ok {
			return false
		}
	}

	if len(fw.RequiredFiles) == 0 {
		return true
	}

	entryOK := make([]bool, len(fw.RequiredFiles))
	var wg sync.WaitGroup
	for i, entry := range fw.RequiredFiles {
		wg.Add(1)
		go func() {
			defer wg.Done()
			entryOK[i] = m.anyExists(ctx, entry.Paths)
		}()
	}
	wg.Wait()

	for _, ok := range entryOK {
		if !ok {
			return false
		}
	}
	return true
}

// anyExists checks the alternative paths of one entry concurrently; a single
// hit satisfies the entry.
func (m *Matcher) anyExists(ctx context.Context, paths []string) bool {
	if len(paths) == 1 {
		return m.fsys.Exists(ctx, paths[0])
	}

	found := make([]bool, len(paths))
	var wg sync.WaitGroup
	for i, p := range paths {
		wg.Add(1)
		go func() {
			defer wg.Done()
			found[i] = m.fsys.Exists(ctx, p)
		}()
	}
	wg.Wait()

	for _, ok := range found {
		if ok {
			return true
		}
	}
	return false
}

// resolveEmbeds discards chains superseded through declared embeds. Chain A
// supersedes chain B when any framework in A lists any framework of B in its
// CanEmbed. One sweep over ordered pairs, tracking removals in an index set
// instead of splicing the slice mid-iteration. Supersession is not transitive:
// a rule that should displace an indirectly embedded framework must list it
// explicitly.
func resolveEmbeds(chains []Chain) []Chain {
	removed := make(map[int]bool)
	for i := range chains {
		if removed[i] {
			continue
		}
		for j := range chains {
			if i == j || removed[j] {
				continue
			}
			if supersedes(chains[i], chains[j]) {
				removed[j] = true
			}
		}
	}

	if len(removed) == 0 {
		return chains
	}
	kept := make([]Chain, 0, len(chains)-len(removed))
	for i, c := range chains {
		if !removed[i] {
			kept = append(kept, c)
		}
	}
	return kept
}

func supersedes(a, b Chain) bool {
	inB := make(map[string]bool, len(b))
	for _, fw := range b {
		inB[fw.Name] = true
	}
	for _, fw := range a {
		for _, name := range fw.CanEmbed {
			if inB[name] {
				return true
			}
		}
	}
	return false
}
