// file: internals/features/reports/service/scope.go
package service

import (
	"fmt"
	"strings"
)

// Scope selects which entity collections and statistics a report covers.
type Scope string

const (
	ScopeOverview     Scope = "overview"
	ScopeTeaching     Scope = "teaching"
	ScopeResearch     Scope = "research"
	ScopeService      Scope = "service"
	ScopeProfessional Scope = "professional"
	ScopeCareer       Scope = "career"
	ScopePortfolio    Scope = "portfolio"
)

func ParseScope(s string) (Scope, error) {
	sc := Scope(strings.ToLower(strings.TrimSpace(s)))
	switch sc {
	case ScopeOverview, ScopeTeaching, ScopeResearch, ScopeService,
		ScopeProfessional, ScopeCareer, ScopePortfolio:
		return sc, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidScope, s)
}

// includesTeaching etc. decide which collections the aggregator fetches.
// overview and portfolio take the union of everything.
func (s Scope) includesTeaching() bool {
	return s == ScopeTeaching || s == ScopeOverview || s == ScopePortfolio
}

func (s Scope) includesResearch() bool {
	return s == ScopeResearch || s == ScopeOverview || s == ScopePortfolio
}

func (s Scope) includesService() bool {
	return s == ScopeService || s == ScopeOverview || s == ScopePortfolio
}

func (s Scope) includesProfessional() bool {
	return s == ScopeProfessional || s == ScopeOverview || s == ScopePortfolio
}

func (s Scope) includesCareer() bool {
	return s == ScopeCareer || s == ScopeOverview || s == ScopePortfolio
}
