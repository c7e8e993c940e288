package patient

import "context"

type Repository interface {
	Profile(ctx context.Context) (Profile, error)
	Conditions(ctx context.Context) ([]Condition, error)
	Medications(ctx context.Context) ([]Medication, error)
}
