package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/david/scholarship-hunter/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound is returned when a report or lead does not exist.
var ErrNotFound = errors.New("not found")

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Store struct {
	pool *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// NewReport is what a finished hunt stores.
type NewReport struct {
	Input           models.Profile
	TotalValueFound models.TotalValue
	Scholarships    []models.ScholarshipRecord
}

// ReportSummary is one row of the operator listing.
type ReportSummary struct {
	ID           uuid.UUID
	Scholarships int
	Unlocked     bool
	CreatedAt    time.Time
}

// Counts are the table totals printed by verify_db.
type Counts struct {
	Reports         int
	UnlockedReports int
	Leads           int
}

const reportCols = "id, input, total_value_found, scholarships, lead_id, created_at"

func insertReportQuery(r NewReport) (string, []interface{}, error) {
	input, err := json.Marshal(r.Input)
	if err != nil {
		return "", nil, fmt.Errorf("failed to encode input: %w", err)
	}
	total, err := json.Marshal(r.TotalValueFound)
	if err != nil {
		return "", nil, fmt.Errorf("failed to encode total: %w", err)
	}
	scholarships := r.Scholarships
	if scholarships == nil {
		scholarships = []models.ScholarshipRecord{}
	}
	list, err := json.Marshal(scholarships)
	if err != nil {
		return "", nil, fmt.Errorf("failed to encode scholarships: %w", err)
	}

	return psql.Insert("reports").
		Columns("input", "total_value_found", "scholarships").
		Values(input, total, list).
		Suffix("RETURNING id").
		ToSql()
}

func (s *Store) CreateReport(ctx context.Context, r NewReport) (uuid.UUID, error) {
	sql, args, err := insertReportQuery(r)
	if err != nil {
		return uuid.Nil, err
	}
	var id uuid.UUID
	if err := s.pool.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return uuid.Nil, fmt.Errorf("insert report failed: %w", err)
	}
	return id, nil
}

func selectReportQuery(id uuid.UUID) (string, []interface{}, error) {
	return psql.Select(reportCols).From("reports").Where(sq.Eq{"id": id}).ToSql()
}

func (s *Store) GetReport(ctx context.Context, id uuid.UUID) (*models.ReportRecord, error) {
	sql, args, err := selectReportQuery(id)
	if err != nil {
		return nil, err
	}

	var rec models.ReportRecord
	var inputRaw, totalRaw, listRaw []byte
	err = s.pool.QueryRow(ctx, sql, args...).Scan(&rec.ID, &inputRaw, &totalRaw, &listRaw, &rec.LeadID, &rec.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select report failed: %w", err)
	}

	decodeReportColumns(&rec, inputRaw, totalRaw, listRaw)
	return &rec, nil
}

// decodeReportColumns never fails: stored rows predate the current shapes, so a
// column that does not decode is left empty.
func decodeReportColumns(rec *models.ReportRecord, inputRaw, totalRaw, listRaw []byte) {
	if len(inputRaw) > 0 {
		var p models.Profile
		if err := json.Unmarshal(inputRaw, &p); err == nil {
			rec.Input = &p
		}
	}
	if len(totalRaw) > 0 {
		_ = json.Unmarshal(totalRaw, &rec.TotalValueFound)
	}
	rec.Scholarships = []models.ScholarshipRecord{}
	if len(listRaw) > 0 {
		var list []models.ScholarshipRecord
		if err := json.Unmarshal(listRaw, &list); err == nil && list != nil {
			rec.Scholarships = list
		}
	}
}

func insertLeadQuery(l models.Lead) (string, []interface{}, error) {
	return psql.Insert("leads").
		Columns("report_id", "name", "email", "whatsapp").
		Values(l.ReportID, l.Name, l.Email, l.WhatsApp).
		Suffix("RETURNING id, created_at").
		ToSql()
}

func (s *Store) CreateLead(ctx context.Context, l models.Lead) (models.Lead, error) {
	sql, args, err := insertLeadQuery(l)
	if err != nil {
		return l, err
	}
	if err := s.pool.QueryRow(ctx, sql, args...).Scan(&l.ID, &l.CreatedAt); err != nil {
		return l, fmt.Errorf("insert lead failed: %w", err)
	}
	return l, nil
}

func attachLeadQuery(reportID, leadID uuid.UUID) (string, []interface{}, error) {
	return psql.Update("reports").Set("lead_id", leadID).Where(sq.Eq{"id": reportID}).ToSql()
}

func (s *Store) AttachLead(ctx context.Context, reportID, leadID uuid.UUID) error {
	sql, args, err := attachLeadQuery(reportID, leadID)
	if err != nil {
		return err
	}
	tag, err := s.pool.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("attach lead failed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func listReportsQuery(limit int) (string, []interface{}, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return psql.Select("id", "jsonb_array_length(COALESCE(scholarships, '[]'::jsonb))", "lead_id IS NOT NULL", "created_at").
		From("reports").
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		ToSql()
}

func (s *Store) ListReports(ctx context.Context, limit int) ([]ReportSummary, error) {
	sql, args, err := listReportsQuery(limit)
	if err != nil {
		return nil, err
	}
	rows, err := s.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list reports failed: %w", err)
	}
	defer rows.Close()

	var out []ReportSummary
	for rows.Next() {
		var r ReportSummary
		if err := rows.Scan(&r.ID, &r.Scholarships, &r.Unlocked, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan report summary: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func countsQuery() (string, []interface{}, error) {
	return psql.Select(
		"(SELECT COUNT(*) FROM reports)",
		"(SELECT COUNT(*) FROM reports WHERE lead_id IS NOT NULL)",
		"(SELECT COUNT(*) FROM leads)",
	).ToSql()
}

func (s *Store) Counts(ctx context.Context) (Counts, error) {
	var c Counts
	sql, args, err := countsQuery()
	if err != nil {
		return c, err
	}
	if err := s.pool.QueryRow(ctx, sql, args...).Scan(&c.Reports, &c.UnlockedReports, &c.Leads); err != nil {
		return c, fmt.Errorf("count query failed: %w", err)
	}
	return c, nil
}
