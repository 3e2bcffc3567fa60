package detector_test

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"testing/fstest"

	"shipscout/pkg/detector"
)

func testFS(files map[string]string) detector.FileSystem {
	m := fstest.MapFS{}
	for path, content := range files {
		m[path] = &fstest.MapFile{Data: []byte(content)}
	}
	return detector.NewFS(m)
}

func TestNewMatcherValidation(t *testing.T) {
	tests := []struct {
		name    string
		rules   []detector.Framework
		wantErr bool
	}{
		{
			name: "parents resolve to the runtime",
			rules: []detector.Framework{
				{Name: "A", Parent: "node"},
				{Name: "B", Parent: "A"},
				{Name: "C", Parent: "B"},
			},
		},
		{
			name: "dangling parent reference",
			rules: []detector.Framework{
				{Name: "A", Parent: "node"},
				{Name: "B", Parent: "missing"},
			},
			wantErr: true,
		},
		{
			name:  "empty rule set",
			rules: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := detector.NewMatcher("node", testFS(nil), tt.rules, nil)
			if tt.wantErr {
				var ruleErr *detector.InvalidRuleSetError
				if !errors.As(err, &ruleErr) {
					t.Fatalf("expected InvalidRuleSetError, got %v", err)
				}
				if ruleErr.Framework != "B" || ruleErr.Parent != "missing" {
					t.Errorf("unexpected error detail: %+v", ruleErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestChainOrdering(t *testing.T) {
	rules := []detector.Framework{
		{Name: "P", Parent: "node", Dependencies: []detector.Dependency{{Name: "p"}}},
		{Name: "C", Parent: "P", Dependencies: []detector.Dependency{{Name: "c"}}},
	}
	deps := map[string]string{"p": "1.0.0", "c": "2.0.0"}

	m, err := detector.NewMatcher("node", testFS(nil), rules, deps)
	if err != nil {
		t.Fatalf("NewMatcher: %v", err)
	}
	chain, err := m.Match(context.Background())
	if err != nil {
		t.Fatalf("Match: %v", err)
	}
	if got, want := chain.Names(), []string{"C", "P"}; !reflect.DeepEqual(got, want) {
		t.Errorf("chain = %v, want %v", got, want)
	}
}

func TestSingletonChain(t *testing.T) {
	tests := []struct {
		name string
		deps map[string]string
	}{
		{name: "no children declared", deps: map[string]string{"p": "1"}},
		{name: "child predicate fails", deps: map[string]string{"p": "1"}},
	}

	rules := []detector.Framework{
		{Name: "P", Parent: "node", Dependencies: []detector.Dependency{{Name: "p"}}},
		{Name: "C", Parent: "P", Dependencies: []detector.Dependency{{Name: "c"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := detector.NewMatcher("node", testFS(nil), rules, tt.deps)
			if err != nil {
				t.Fatalf("NewMatcher: %v", err)
			}
			chain, err := m.Match(context.Background())
			if err != nil {
				t.Fatalf("Match: %v", err)
			}
			if got, want := chain.Names(), []string{"P"}; !reflect.DeepEqual(got, want) {
				t.Errorf("chain = %v, want %v", got, want)
			}
		})
	}
}

func TestPruningCutsWholeSubtree(t *testing.T) {
	// P's dependency is missing; C would match on its own but must never
	// appear because its parent is pruned.
	rules := []detector.Framework{
		{Name: "P", Parent: "node", Dependencies: []detector.Dependency{{Name: "p"}}},
		{Name: "C", Parent: "P", Dependencies: []detector.Dependency{{Name: "c"}}},
	}
	deps := map[string]string{"c": "2.0.0"}

	m, err := detector.NewMatcher("node", testFS(nil), rules, deps)
	if err != nil {
		t.Fatalf("NewMatcher: %v", err)
	}
	chain, err := m.Match(context.Background())
	if err != nil {
		t.Fatalf("Match: %v", err)
	}
	if chain != nil {
		t.Errorf("expected runtime-only outcome, got %v", chain.Names())
	}
}

func TestFilePredicate(t *testing.T) {
	tests := []struct {
		name      string
		required  []detector.RequiredFile
		files     map[string]string
		wantMatch bool
	}{
		{
			name:      "single path present",
			required:  []detector.RequiredFile{detector.Path("app.config.js")},
			files:     map[string]string{"app.config.js": ""},
			wantMatch: true,
		},
		{
			name:      "single path missing",
			required:  []detector.RequiredFile{detector.Path("app.config.js")},
			files:     map[string]string{"other.js": ""},
			wantMatch: false,
		},
		{
			name:      "one alternative satisfies the entry",
			required:  []detector.RequiredFile{detector.AnyPath("a.js", "a.ts")},
			files:     map[string]string{"a.ts": ""},
			wantMatch: true,
		},
		{
			name: "entries are ANDed",
			required: []detector.RequiredFile{
				detector.Path("manage.py"),
				detector.AnyPath("settings.py", "config/settings.py"),
			},
			files:     map[string]string{"manage.py": ""},
			wantMatch: false,
		},
		{
			name:      "absent list is vacuously true",
			required:  nil,
			files:     nil,
			wantMatch: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rules := []detector.Framework{
				{Name: "F", Parent: "node", RequiredFiles: tt.required},
			}
			m, err := detector.NewMatcher("node", testFS(tt.files), rules, nil)
			if err != nil {
				t.Fatalf("NewMatcher: %v", err)
			}
			chain, err := m.Match(context.Background())
			if err != nil {
				t.Fatalf("Match: %v", err)
			}
			if tt.wantMatch && len(chain) != 1 {
				t.Errorf("expected a match, got %v", chain.Names())
			}
			if !tt.wantMatch && chain != nil {
				t.Errorf("expected no match, got %v", chain.Names())
			}
		})
	}
}

func TestEmbedsSupersede(t *testing.T) {
	rules := []detector.Framework{
		{Name: "A", Parent: "node", Dependencies: []detector.Dependency{{Name: "a"}}, CanEmbed: []string{"B"}},
		{Name: "B", Parent: "node", Dependencies: []detector.Dependency{{Name: "b"}}},
	}
	deps := map[string]string{"a": "1", "b": "1"}

	m, err := detector.NewMatcher("node", testFS(nil), rules, deps)
	if err != nil {
		t.Fatalf("NewMatcher: %v", err)
	}
	chain, err := m.Match(context.Background())
	if err != nil {
		t.Fatalf("Match: %v", err)
	}
	if got, want := chain.Names(), []string{"A"}; !reflect.DeepEqual(got, want) {
		t.Errorf("chain = %v, want %v", got, want)
	}
}

func TestAmbiguousFrameworks(t *testing.T) {
	rules := []detector.Framework{
		{Name: "X", Parent: "node", Dependencies: []detector.Dependency{{Name: "x"}}},
		{Name: "Y", Parent: "node", Dependencies: []detector.Dependency{{Name: "y"}}},
	}
	deps := map[string]string{"x": "1", "y": "1"}

	m, err := detector.NewMatcher("node", testFS(nil), rules, deps)
	if err != nil {
		t.Fatalf("NewMatcher: %v", err)
	}
	_, err = m.Match(context.Background())

	var ambErr *detector.AmbiguousFrameworkError
	if !errors.As(err, &ambErr) {
		t.Fatalf("expected AmbiguousFrameworkError, got %v", err)
	}
	if got, want := ambErr.Frameworks, []string{"X", "Y"}; !reflect.DeepEqual(got, want) {
		t.Errorf("error names %v, want %v", got, want)
	}
}

func TestSiblingLeavesUnderOneParent(t *testing.T) {
	// Two matching children of one matched parent produce two chains, and the
	// error names the leaves, not the shared parent.
	rules := []detector.Framework{
		{Name: "P", Parent: "node", Dependencies: []detector.Dependency{{Name: "p"}}},
		{Name: "C1", Parent: "P", Dependencies: []detector.Dependency{{Name: "c1"}}},
		{Name: "C2", Parent: "P", Dependencies: []detector.Dependency{{Name: "c2"}}},
	}
	deps := map[string]string{"p": "1", "c1": "1", "c2": "1"}

	m, err := detector.NewMatcher("node", testFS(nil), rules, deps)
	if err != nil {
		t.Fatalf("NewMatcher: %v", err)
	}
	_, err = m.Match(context.Background())

	var ambErr *detector.AmbiguousFrameworkError
	if !errors.As(err, &ambErr) {
		t.Fatalf("expected AmbiguousFrameworkError, got %v", err)
	}
	if got, want := ambErr.Frameworks, []string{"C1", "C2"}; !reflect.DeepEqual(got, want) {
		t.Errorf("error names %v, want %v", got, want)
	}
}

func TestNoMatchIsNotAnError(t *testing.T) {
	rules := []detector.Framework{
		{Name: "A", Parent: "node", Dependencies: []detector.Dependency{{Name: "a"}}},
		{Name: "B", Parent: "node", RequiredFiles: []detector.RequiredFile{detector.Path("b.config.js")}},
	}

	m, err := detector.NewMatcher("node", testFS(nil), rules, nil)
	if err != nil {
		t.Fatalf("NewMatcher: %v", err)
	}
	chain, err := m.Match(context.Background())
	if err != nil {
		t.Fatalf("Match: %v", err)
	}
	if chain != nil {
		t.Errorf("expected runtime-only outcome, got %v", chain.Names())
	}
}

func TestVersionConstraintNotEvaluated(t *testing.T) {
	rules := []detector.Framework{
		{Name: "A", Parent: "node", Dependencies: []detector.Dependency{{Name: "a", Version: ">=99.0.0"}}},
	}
	deps := map[string]string{"a": "0.0.1"}

	m, err := detector.NewMatcher("node", testFS(nil), rules, deps)
	if err != nil {
		t.Fatalf("NewMatcher: %v", err)
	}
	chain, err := m.Match(context.Background())
	if err != nil {
		t.Fatalf("Match: %v", err)
	}
	if got, want := chain.Names(), []string{"A"}; !reflect.DeepEqual(got, want) {
		t.Errorf("chain = %v, want %v (presence check only)", got, want)
	}
}
