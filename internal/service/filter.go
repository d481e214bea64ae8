package service

import (
	"strings"

	"vcg-backend/internal/domain"
)

// FilterApplications applies the dashboard's search controls to an in-memory
// collection: case-insensitive substring match on applicant name and position
// title, intersected with equality filters on type and status. Empty filter
// fields match everything.
func FilterApplications(apps []domain.Application, f ApplicationFilter) []domain.Application {
	query := strings.ToLower(strings.TrimSpace(f.Query))
	out := make([]domain.Application, 0, len(apps))
	for _, a := range apps {
		if query != "" &&
			!strings.Contains(strings.ToLower(a.FullName), query) &&
			!strings.Contains(strings.ToLower(a.Position), query) {
			continue
		}
		if f.Type != "" && a.Type != f.Type {
			continue
		}
		if f.Status != "" && a.Status != f.Status {
			continue
		}
		out = append(out, a)
	}
	return out
}

// FilterPositions applies the same search pattern to listings: substring on
// title, equality on type.
func FilterPositions(positions []domain.Position, query string, positionType domain.PositionType) []domain.Position {
	query = strings.ToLower(strings.TrimSpace(query))
	out := make([]domain.Position, 0, len(positions))
	for _, p := range positions {
		if query != "" && !strings.Contains(strings.ToLower(p.Title), query) {
			continue
		}
		if positionType != "" && p.Type != positionType {
			continue
		}
		out = append(out, p)
	}
	return out
}
