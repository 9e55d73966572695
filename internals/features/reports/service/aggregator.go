// file: internals/features/reports/service/aggregator.go
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Aggregator builds a ReportBundle for one teacher and scope. Reads are
// independent of each other, so they run concurrently; statistics are
// computed only after every fetch has finished. Nothing retries here —
// the whole operation is read-only and safe for the caller to rerun.
type Aggregator struct {
	Source Source
}

func NewAggregator(src Source) *Aggregator { return &Aggregator{Source: src} }

func wrapSource(what string, err error) error {
	if errors.Is(err, ErrTeacherNotFound) {
		return err
	}
	// keep the driver's message for diagnostics, tagged with the kind
	return fmt.Errorf("%w: %s: %v", ErrDataSource, what, err)
}

func (a *Aggregator) Build(ctx context.Context, teacherID uuid.UUID, scope Scope, window DateWindow) (*ReportBundle, error) {
	// teacher resolution happens before any collection fetch so a bad id
	// fails fast without touching the rest of the pipeline
	teacher, err := a.Source.Teacher(ctx, teacherID)
	if err != nil {
		if errors.Is(err, ErrTeacherNotFound) {
			return nil, ErrTeacherNotFound
		}
		return nil, wrapSource("teacher", err)
	}

	b := &ReportBundle{
		Scope:       scope,
		Window:      window,
		GeneratedAt: time.Now().UTC(),
		Teacher:     teacher,
	}

	g, gctx := errgroup.WithContext(ctx)

	if scope.includesTeaching() {
		g.Go(func() error {
			rows, err := a.Source.Courses(gctx, teacherID, window)
			if err != nil {
				return wrapSource("courses", err)
			}
			b.Courses = rows
			return nil
		})
		g.Go(func() error {
			rows, err := a.Source.Evaluations(gctx, teacherID, window)
			if err != nil {
				return wrapSource("evaluations", err)
			}
			b.Evaluations = rows
			return nil
		})
	}
	if scope.includesResearch() {
		g.Go(func() error {
			rows, err := a.Source.Research(gctx, teacherID, window)
			if err != nil {
				return wrapSource("research", err)
			}
			b.Research = rows
			return nil
		})
	}
	if scope.includesService() {
		g.Go(func() error {
			rows, err := a.Source.Service(gctx, teacherID, window)
			if err != nil {
				return wrapSource("service", err)
			}
			b.Service = rows
			return nil
		})
	}
	if scope.includesProfessional() {
		g.Go(func() error {
			rows, err := a.Source.Professional(gctx, teacherID, window)
			if err != nil {
				return wrapSource("professional", err)
			}
			b.Professional = rows
			return nil
		})
	}
	if scope.includesCareer() {
		g.Go(func() error {
			rows, err := a.Source.Career(gctx, teacherID, window)
			if err != nil {
				return wrapSource("career", err)
			}
			b.Career = rows
			return nil
		})
	}

	// barrier: stats are only computed over a fully fetched bundle
	if err := g.Wait(); err != nil {
		return nil, err
	}

	b.Stats = computeStats(b)
	return b, nil
}
