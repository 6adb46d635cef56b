//GET  /api/dashboard              # Aggregated overview
//GET  /api/contacts               # List contacts (filterable)
//POST /api/contacts               # Create contact
//GET  /api/contacts/{id}          # Get contact
//PUT  /api/contacts/{id}          # Update contact
//GET  /api/decisions              # List decisions
//POST /api/decisions              # Create decision
//GET  /api/decisions/{id}         # Get decision
//PUT  /api/decisions/{id}         # Update decision
//DELETE /api/decisions/{id}       # Delete decision
//GET/POST/PUT/DELETE /api/taches  # Task board, plus POST /api/taches/{id}/toggle
//GET/POST/PUT/DELETE /api/captures # Quick-capture inbox, plus toggle
//GET/POST/PUT/DELETE /api/notes   # Notes, plus POST /api/notes/{id}/favorite
//GET/POST/PUT /api/finances       # Transactions
//GET/POST/PUT /api/projects       # Projects
//GET/PUT /api/journal/{date}      # Daily journal (PUT upserts)
//GET  /api/punchline              # Quote of the day
//POST /api/punchline/next         # Advance to the next quote

package handler

import (
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"

	"commandcenter/internal/domain/affirmation"
	"commandcenter/internal/domain/contact"
	"commandcenter/internal/domain/dashboard"
	"commandcenter/internal/domain/decision"
	"commandcenter/internal/domain/finance"
	"commandcenter/internal/domain/journal"
	"commandcenter/internal/domain/note"
	"commandcenter/internal/domain/project"
	"commandcenter/internal/domain/task"
	"commandcenter/internal/handler/middleware/logger"
)

type Handler struct {
	Dashboard   *dashboard.Handler
	Contact     *contact.Handler
	Decision    *decision.Handler
	Task        *task.Handler
	Note        *note.Handler
	Finance     *finance.Handler
	Journal     *journal.Handler
	Project     *project.Handler
	Affirmation *affirmation.Handler
}

type Middleware struct {
	Logger *logger.Logger
}

// NewAPI builds a *chi.Mux with every operation registered through
// huma.Register.
func NewAPI(
	handler Handler,
	middleware Middleware,
) *chi.Mux {
	mux := chi.NewMux()

	config := huma.DefaultConfig("Command Center API", "1.0.0")

	api := humachi.New(mux, config)
	api.UseMiddleware(middleware.Logger.Middleware())

	handler.Dashboard.SetupRoutes(api)
	handler.Contact.SetupRoutes(api)
	handler.Decision.SetupRoutes(api)
	handler.Task.SetupRoutes(api)
	handler.Note.SetupRoutes(api)
	handler.Finance.SetupRoutes(api)
	handler.Journal.SetupRoutes(api)
	handler.Project.SetupRoutes(api)
	handler.Affirmation.SetupRoutes(api)

	return mux
}
