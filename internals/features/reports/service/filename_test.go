// file: internals/features/reports/service/filename_test.go
package service

import (
	"regexp"
	"strings"
	"testing"
	"time"
)

func TestExportFilename(t *testing.T) {
	at := time.Date(2026, 5, 10, 14, 30, 45, 0, time.UTC)

	name := ExportFilename("María José O'Brien", ScopePortfolio, at, "pdf")
	if !strings.HasSuffix(name, ".pdf") {
		t.Fatalf("missing extension: %q", name)
	}
	pattern := regexp.MustCompile(`^[a-z0-9-]+_portfolio_20260510-143045_[0-9a-f]{8}\.pdf$`)
	if !pattern.MatchString(name) {
		t.Fatalf("unexpected filename shape: %q", name)
	}

	// same teacher, same second: the random suffix keeps names apart
	other := ExportFilename("María José O'Brien", ScopePortfolio, at, "pdf")
	if name == other {
		t.Fatalf("two exports in the same second collided: %q", name)
	}
}

func TestExportFilenameEmptyName(t *testing.T) {
	name := ExportFilename("<<<>>>", ScopeOverview, time.Now(), "zip")
	if !strings.HasPrefix(name, "item_overview_") {
		t.Fatalf("empty slug fallback missing: %q", name)
	}
	if !strings.HasSuffix(name, ".zip") {
		t.Fatalf("missing extension: %q", name)
	}
}
