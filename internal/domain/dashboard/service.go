package dashboard

import (
	"context"
	"fmt"

	"devdash/internal/domain/archive"
	"devdash/internal/domain/listing"
	"devdash/internal/domain/project"

	"golang.org/x/exp/slog"
)

// Stats - сводка для главной страницы панели
type Stats struct {
	TotalProjects int `json:"total_projects"`
	Completed     int `json:"completed"`
	InProgress    int `json:"in_progress"`
	Cancelled     int `json:"cancelled"`
	Archived      int `json:"archived"`
}

type lister[T any] interface {
	List(ctx context.Context, state listing.FilterState) ([]T, error)
}

type Servicer interface {
	Stats(ctx context.Context) (Stats, error)
}

type Service struct {
	projects lister[project.Project]
	archives lister[archive.Archive]
	log      *slog.Logger
}

func NewService(projects lister[project.Project], archives lister[archive.Archive], log *slog.Logger) *Service {
	return &Service{
		projects: projects,
		archives: archives,
		log:      log.With("component", "dashboard_service"),
	}
}

// Stats считает показатели тем же предикатом фильтрации, что и списки
func (s *Service) Stats(ctx context.Context) (Stats, error) {
	all, err := s.projects.List(ctx, listing.FilterState{})
	if err != nil {
		return Stats{}, fmt.Errorf("stats projects: %w", err)
	}

	byStatus := func(st project.Status) int {
		state := listing.FilterState{Categories: map[string]string{"status": string(st)}}
		return len(listing.Apply(project.Kind, all, state))
	}

	archived, err := s.archives.List(ctx, listing.FilterState{
		Categories: map[string]string{"status": string(archive.StatusArchived)},
	})
	if err != nil {
		return Stats{}, fmt.Errorf("stats archives: %w", err)
	}

	stats := Stats{
		TotalProjects: len(all),
		Completed:     byStatus(project.StatusCompleted),
		InProgress:    byStatus(project.StatusOngoing),
		Cancelled:     byStatus(project.StatusCancelled),
		Archived:      len(archived),
	}
	s.log.Debug("stats computed", "total", stats.TotalProjects)

	return stats, nil
}
