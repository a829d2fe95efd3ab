package teams

import "github.com/preston-bernstein/depth-chart-service/internal/domain/teams"

// Catalog defines the read-only source of team reference data.
type Catalog interface {
	Teams() []teams.Team
	Team(id string) (teams.Team, bool)
}

// Service exposes team reference data to the transport layers.
type Service struct {
	catalog Catalog
}

// NewService constructs a Service with the provided Catalog.
func NewService(catalog Catalog) *Service {
	return &Service{catalog: catalog}
}

// Teams returns every known team ordered by ID.
func (s *Service) Teams() []teams.Team {
	if s.catalog == nil {
		return []teams.Team{}
	}
	return s.catalog.Teams()
}

// TeamByID returns a single team if present.
func (s *Service) TeamByID(id string) (teams.Team, bool) {
	if s.catalog == nil {
		return teams.Team{}, false
	}
	return s.catalog.Team(id)
}
