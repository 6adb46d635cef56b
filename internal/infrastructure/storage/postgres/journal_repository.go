package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"

	"commandcenter/internal/domain/journal"
)

type JournalRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewJournalRepository(pool *pgxpool.Pool, log *slog.Logger) *JournalRepository {
	return &JournalRepository{
		pool: pool,
		log:  log.With("component", "journal_repository"),
	}
}

const journalColumns = `id, date,
	overall_score, energy_score, work_score, nutrition_score, sleep_score,
	mindset_score, relationship_score, peace_score, love_score, joy_score,
	notes, focus, gratitude, intentions,
	hours_sleep, sleep_quality,
	meditation, meditation_minutes, breathwork, cold_shower, sunshine_30min,
	water_2l, vegetables, fruits, no_bread, no_pasta,
	workout, quick_run, walk,
	deep_work_hours, client_calls, prieres, visualisation,
	no_porn, no_alcool, no_smoke, created_at`

func (r *JournalRepository) GetByDate(ctx context.Context, date time.Time) (*journal.Entry, error) {
	const query = `SELECT ` + journalColumns + ` FROM journal_entries WHERE date = $1`

	e, err := r.scanEntry(r.pool.QueryRow(ctx, query, date))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, journal.ErrNotFound
		}
		r.log.Error("failed to get journal entry", "date", date, "error", err)
		return nil, fmt.Errorf("get journal entry: %w", err)
	}

	return e, nil
}

func (r *JournalRepository) Create(ctx context.Context, e *journal.Entry) (int, error) {
	const query = `
		INSERT INTO journal_entries (date,
			overall_score, energy_score, work_score, nutrition_score, sleep_score,
			mindset_score, relationship_score, peace_score, love_score, joy_score,
			notes, focus, gratitude, intentions,
			hours_sleep, sleep_quality,
			meditation, meditation_minutes, breathwork, cold_shower, sunshine_30min,
			water_2l, vegetables, fruits, no_bread, no_pasta,
			workout, quick_run, walk,
			deep_work_hours, client_calls, prieres, visualisation,
			no_porn, no_alcool, no_smoke)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15,
			$16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28, $29,
			$30, $31, $32, $33, $34, $35, $36, $37)
		RETURNING id, created_at`

	err := r.pool.QueryRow(ctx, query,
		e.Date,
		e.OverallScore, e.EnergyScore, e.WorkScore, e.NutritionScore, e.SleepScore,
		e.MindsetScore, e.RelationshipScore, e.PeaceScore, e.LoveScore, e.JoyScore,
		e.Notes, e.Focus, e.Gratitude, e.Intentions,
		e.HoursSleep, e.SleepQuality,
		e.Meditation, e.MeditationMinutes, e.Breathwork, e.ColdShower, e.Sunshine30Min,
		e.Water2L, e.Vegetables, e.Fruits, e.NoBread, e.NoPasta,
		e.Workout, e.QuickRun, e.Walk,
		e.DeepWorkHours, e.ClientCalls, e.Prieres, e.Visualisation,
		e.NoPorn, e.NoAlcool, e.NoSmoke,
	).Scan(&e.ID, &e.CreatedAt)

	if err != nil {
		r.log.Error("failed to create journal entry", "date", e.Date, "error", err)
		return 0, fmt.Errorf("create journal entry: %w", err)
	}

	return e.ID, nil
}

func (r *JournalRepository) Update(ctx context.Context, e *journal.Entry) error {
	const query = `
		UPDATE journal_entries
		SET overall_score = $1, energy_score = $2, work_score = $3,
			nutrition_score = $4, sleep_score = $5, mindset_score = $6,
			relationship_score = $7, peace_score = $8, love_score = $9,
			joy_score = $10,
			notes = $11, focus = $12, gratitude = $13, intentions = $14,
			hours_sleep = $15, sleep_quality = $16,
			meditation = $17, meditation_minutes = $18, breathwork = $19,
			cold_shower = $20, sunshine_30min = $21,
			water_2l = $22, vegetables = $23, fruits = $24, no_bread = $25,
			no_pasta = $26,
			workout = $27, quick_run = $28, walk = $29,
			deep_work_hours = $30, client_calls = $31, prieres = $32,
			visualisation = $33,
			no_porn = $34, no_alcool = $35, no_smoke = $36
		WHERE id = $37`

	result, err := r.pool.Exec(ctx, query,
		e.OverallScore, e.EnergyScore, e.WorkScore, e.NutritionScore, e.SleepScore,
		e.MindsetScore, e.RelationshipScore, e.PeaceScore, e.LoveScore, e.JoyScore,
		e.Notes, e.Focus, e.Gratitude, e.Intentions,
		e.HoursSleep, e.SleepQuality,
		e.Meditation, e.MeditationMinutes, e.Breathwork, e.ColdShower, e.Sunshine30Min,
		e.Water2L, e.Vegetables, e.Fruits, e.NoBread, e.NoPasta,
		e.Workout, e.QuickRun, e.Walk,
		e.DeepWorkHours, e.ClientCalls, e.Prieres, e.Visualisation,
		e.NoPorn, e.NoAlcool, e.NoSmoke,
		e.ID,
	)
	if err != nil {
		r.log.Error("failed to update journal entry", "entry_id", e.ID, "error", err)
		return fmt.Errorf("update journal entry: %w", err)
	}

	if result.RowsAffected() == 0 {
		return journal.ErrNotFound
	}

	return nil
}

func (r *JournalRepository) ScoresSince(ctx context.Context, from time.Time) ([]journal.ScorePoint, error) {
	const query = `
		SELECT date, overall_score, energy_score, work_score
		FROM journal_entries
		WHERE date >= $1
		ORDER BY date ASC`

	rows, err := r.pool.Query(ctx, query, from)
	if err != nil {
		r.log.Error("failed to list journal scores", "from", from, "error", err)
		return nil, fmt.Errorf("journal scores: %w", err)
	}
	defer rows.Close()

	var points []journal.ScorePoint
	for rows.Next() {
		var p journal.ScorePoint
		if err := rows.Scan(&p.Date, &p.OverallScore, &p.EnergyScore, &p.WorkScore); err != nil {
			return nil, fmt.Errorf("scan score point: %w", err)
		}
		points = append(points, p)
	}

	return points, rows.Err()
}

func (r *JournalRepository) scanEntry(row interface {
	Scan(dest ...interface{}) error
}) (*journal.Entry, error) {
	var e journal.Entry

	err := row.Scan(
		&e.ID, &e.Date,
		&e.OverallScore, &e.EnergyScore, &e.WorkScore, &e.NutritionScore, &e.SleepScore,
		&e.MindsetScore, &e.RelationshipScore, &e.PeaceScore, &e.LoveScore, &e.JoyScore,
		&e.Notes, &e.Focus, &e.Gratitude, &e.Intentions,
		&e.HoursSleep, &e.SleepQuality,
		&e.Meditation, &e.MeditationMinutes, &e.Breathwork, &e.ColdShower, &e.Sunshine30Min,
		&e.Water2L, &e.Vegetables, &e.Fruits, &e.NoBread, &e.NoPasta,
		&e.Workout, &e.QuickRun, &e.Walk,
		&e.DeepWorkHours, &e.ClientCalls, &e.Prieres, &e.Visualisation,
		&e.NoPorn, &e.NoAlcool, &e.NoSmoke, &e.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &e, nil
}
