// Package compiletest type-checks throwaway packages so tests can assert that
// a call sequence is rejected by the compiler.
//
// Cases live under a testdata directory next to the test, one package per
// directory, so `go build ./...` never sees them:
//
//	person/testdata/misuse/name_twice/main.go
//
// Loading shells out to `go list` through golang.org/x/tools/go/packages;
// the helpers skip under -short.
package compiletest

import (
	"fmt"
	"strings"
	"testing"

	"golang.org/x/tools/go/packages"
)

// loadMode asks for syntax and types of the root package so type errors are
// reported against it.
const loadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedImports |
	packages.NeedTypes |
	packages.NeedSyntax |
	packages.NeedTypesInfo

// Errors loads the package matching pattern, resolved relative to dir (the
// current directory when empty), and returns every error reported for it or
// its imports. A nil slice means the package type-checks.
func Errors(dir, pattern string) ([]packages.Error, error) {
	cfg := &packages.Config{Mode: loadMode, Dir: dir}
	pkgs, err := packages.Load(cfg, pattern)
	if err != nil {
		return nil, fmt.Errorf("compiletest: load %s: %w", pattern, err)
	}
	if len(pkgs) == 0 {
		return nil, fmt.Errorf("compiletest: load %s: no packages", pattern)
	}

	var errs []packages.Error
	packages.Visit(pkgs, nil, func(p *packages.Package) {
		errs = append(errs, p.Errors...)
	})

	return errs, nil
}

// AssertRejected fails t unless the package at pattern has at least one
// error whose message contains every fragment.
func AssertRejected(t testing.TB, pattern string, fragments ...string) {
	t.Helper()
	if testing.Short() {
		t.Skip("compiletest: skipped in -short mode")
	}

	errs, err := Errors("", pattern)
	if err != nil {
		t.Fatalf("%v", err)
	}
	if len(errs) == 0 {
		t.Fatalf("%s: compiled, want a type error", pattern)
	}
	for _, e := range errs {
		if containsAll(e.Msg, fragments) {
			return
		}
	}
	t.Fatalf("%s: no error mentions %q; got:\n%s", pattern, fragments, render(errs))
}

// AssertAccepted fails t if the package at pattern has any error. It is the
// positive control for a directory of rejection cases.
func AssertAccepted(t testing.TB, pattern string) {
	t.Helper()
	if testing.Short() {
		t.Skip("compiletest: skipped in -short mode")
	}

	errs, err := Errors("", pattern)
	if err != nil {
		t.Fatalf("%v", err)
	}
	if len(errs) > 0 {
		t.Fatalf("%s: want no errors, got:\n%s", pattern, render(errs))
	}
}

func containsAll(msg string, fragments []string) bool {
	for _, f := range fragments {
		if !strings.Contains(msg, f) {
			return false
		}
	}

	return true
}

func render(errs []packages.Error) string {
	var sb strings.Builder
	for _, e := range errs {
		sb.WriteString("\t")
		sb.WriteString(e.Error())
		sb.WriteString("\n")
	}

	return sb.String()
}
