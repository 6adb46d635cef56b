package project

import "context"

type Repository interface {
	List(ctx context.Context, filter Filter) ([]Project, error)
	Get(ctx context.Context, id int) (*Project, error)
	Create(ctx context.Context, p *Project) (int, error)
	Update(ctx context.Context, p *Project) error
}
