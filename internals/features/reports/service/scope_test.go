// file: internals/features/reports/service/scope_test.go
package service

import (
	"errors"
	"testing"
)

func TestParseScope(t *testing.T) {
	valid := []string{"overview", "teaching", "research", "service", "professional", "career", "portfolio"}
	for _, raw := range valid {
		sc, err := ParseScope(raw)
		if err != nil {
			t.Fatalf("ParseScope(%q): unexpected error: %v", raw, err)
		}
		if string(sc) != raw {
			t.Fatalf("ParseScope(%q) = %q", raw, sc)
		}
	}

	// normalization
	sc, err := ParseScope("  Teaching ")
	if err != nil {
		t.Fatalf("ParseScope with padding: %v", err)
	}
	if sc != ScopeTeaching {
		t.Fatalf("expected teaching, got %q", sc)
	}

	for _, raw := range []string{"", "all", "teach", "portfolio2"} {
		if _, err := ParseScope(raw); !errors.Is(err, ErrInvalidScope) {
			t.Fatalf("ParseScope(%q): expected ErrInvalidScope, got %v", raw, err)
		}
	}
}

func TestScopeCoverage(t *testing.T) {
	cases := []struct {
		scope    Scope
		teaching bool
		research bool
		service  bool
		prof     bool
		career   bool
	}{
		{ScopeTeaching, true, false, false, false, false},
		{ScopeResearch, false, true, false, false, false},
		{ScopeService, false, false, true, false, false},
		{ScopeProfessional, false, false, false, true, false},
		{ScopeCareer, false, false, false, false, true},
		{ScopeOverview, true, true, true, true, true},
		{ScopePortfolio, true, true, true, true, true},
	}
	for _, tc := range cases {
		if got := tc.scope.includesTeaching(); got != tc.teaching {
			t.Errorf("%s includesTeaching = %v", tc.scope, got)
		}
		if got := tc.scope.includesResearch(); got != tc.research {
			t.Errorf("%s includesResearch = %v", tc.scope, got)
		}
		if got := tc.scope.includesService(); got != tc.service {
			t.Errorf("%s includesService = %v", tc.scope, got)
		}
		if got := tc.scope.includesProfessional(); got != tc.prof {
			t.Errorf("%s includesProfessional = %v", tc.scope, got)
		}
		if got := tc.scope.includesCareer(); got != tc.career {
			t.Errorf("%s includesCareer = %v", tc.scope, got)
		}
	}
}
