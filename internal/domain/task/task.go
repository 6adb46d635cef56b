package task

import "context"

// Task is the capability both variants expose, independent of schema.
// M is the variant's model, R its write-request shape.
type Task[M any, R any] interface {
	Find(ctx context.Context, id int) (*M, error)
	Create(ctx context.Context, req R) (*M, error)
	Update(ctx context.Context, id int, req R) (*M, error)
	Delete(ctx context.Context, id int) error

	// ToggleStatus flips the completion status (done ⇄ not done) with a
	// single-column update and returns the reloaded record. Applying it
	// twice restores the original status.
	ToggleStatus(ctx context.Context, id int) (*M, error)
}

var (
	_ Task[Tache, TacheRequest]     = (*TacheService)(nil)
	_ Task[Capture, CaptureRequest] = (*CaptureService)(nil)
)
