package patient

import "context"

// Service expone los datos de referencia tal cual vienen del repositorio:
// son estáticos, sin reglas de negocio encima.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Profile(ctx context.Context) (Profile, error) {
	return s.repo.Profile(ctx)
}

func (s *Service) Conditions(ctx context.Context) ([]Condition, error) {
	return s.repo.Conditions(ctx)
}

func (s *Service) Medications(ctx context.Context) ([]Medication, error) {
	return s.repo.Medications(ctx)
}
