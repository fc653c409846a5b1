package lead

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/resortdesk/quote-service/internal/domain"
	"github.com/resortdesk/quote-service/pkg/psqlbuilder"
	"github.com/resortdesk/quote-service/pkg/txmanager"
)

const table = "leads"

var columns = []string{
	"id",
	"name",
	"mobile",
	"check_in_date",
	"check_out_date",
	"status",
	"quote_variations",
	"reminder_at",
	"notes",
	"created_at",
	"updated_at",
}

// Repository репозиторий лидов в PostgreSQL.
// Варианты предложений хранятся в колонке JSONB quote_variations.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория лидов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает лида и заполняет ID и временные метки
func (r *Repository) Create(ctx context.Context, lead *domain.Lead) (*domain.Lead, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	quotes, err := encodeQuotes(lead.QuoteVariations)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - %v", ErrEncodeQuotes, err)
	}

	query, args, err := psqlbuilder.Insert(table).
		Columns(
			"name",
			"mobile",
			"check_in_date",
			"check_out_date",
			"status",
			"quote_variations",
			"reminder_at",
			"notes",
		).
		Values(
			lead.Name,
			lead.Mobile,
			nullDate(lead.CheckInDate),
			nullDate(lead.CheckOutDate),
			lead.Status,
			quotes,
			lead.ReminderAt,
			lead.Notes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&lead.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	lead.CreatedAt = createdAt.Time
	lead.UpdatedAt = updatedAt.Time

	return lead, nil
}

// GetByID получает лида по ID.
// Внутри транзакции строка блокируется (FOR UPDATE) до конца транзакции.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Lead, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id})

	if txmanager.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	lead, err := scanLead(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrLeadNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan lead: %v", ErrScanRow, err)
	}

	return lead, nil
}

// GetByMobileAndCheckIn ищет последнего лида с тем же мобильным и датой заезда.
// Используется для добавления варианта предложения к существующему лиду.
func (r *Repository) GetByMobileAndCheckIn(ctx context.Context, mobile string, checkIn time.Time) (*domain.Lead, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"mobile": mobile, "check_in_date": nullDate(checkIn)}).
		OrderBy("id DESC").
		Limit(1)

	if txmanager.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByMobileAndCheckIn - build select query: %v", ErrBuildQuery, err)
	}

	lead, err := scanLead(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrLeadNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByMobileAndCheckIn - scan lead: %v", ErrScanRow, err)
	}

	return lead, nil
}

// GetAll получает всех лидов, новые первыми
func (r *Repository) GetAll(ctx context.Context) ([]*domain.Lead, error) {
	selectBuilder := psqlbuilder.Select(columns...).
		From(table).
		OrderBy("created_at DESC, id DESC")

	return r.list(ctx, "GetAll", selectBuilder)
}

// GetByStatus получает лидов с указанным статусом
func (r *Repository) GetByStatus(ctx context.Context, status domain.LeadStatus) ([]*domain.Lead, error) {
	selectBuilder := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"status": status}).
		OrderBy("created_at DESC, id DESC")

	return r.list(ctx, "GetByStatus", selectBuilder)
}

// GetDueReminders получает незакрытых лидов, у которых напоминание наступило к now
func (r *Repository) GetDueReminders(ctx context.Context, now time.Time) ([]*domain.Lead, error) {
	terminal := make([]string, 0, len(domain.LeadStatuses))
	for _, s := range domain.LeadStatuses {
		if s.IsTerminal() {
			terminal = append(terminal, string(s))
		}
	}

	selectBuilder := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.NotEq{"reminder_at": nil}).
		Where(squirrel.LtOrEq{"reminder_at": now}).
		Where(squirrel.NotEq{"status": terminal}).
		OrderBy("reminder_at ASC")

	return r.list(ctx, "GetDueReminders", selectBuilder)
}

// Update сохраняет изменяемые поля лида и обновляет updated_at
func (r *Repository) Update(ctx context.Context, lead *domain.Lead) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	quotes, err := encodeQuotes(lead.QuoteVariations)
	if err != nil {
		return fmt.Errorf("%w: Update - %v", ErrEncodeQuotes, err)
	}

	query, args, err := psqlbuilder.Update(table).
		Set("name", lead.Name).
		Set("mobile", lead.Mobile).
		Set("check_in_date", nullDate(lead.CheckInDate)).
		Set("check_out_date", nullDate(lead.CheckOutDate)).
		Set("status", lead.Status).
		Set("quote_variations", quotes).
		Set("reminder_at", lead.ReminderAt).
		Set("notes", lead.Notes).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": lead.ID}).
		Suffix("RETURNING updated_at").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrLeadNotFound
	}
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	lead.UpdatedAt = updatedAt.Time

	return nil
}

// Delete удаляет лида
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrLeadNotFound
	}

	return nil
}

func (r *Repository) list(ctx context.Context, op string, selectBuilder squirrel.SelectBuilder) ([]*domain.Lead, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	leads := make([]*domain.Lead, 0)
	for rows.Next() {
		lead, err := scanLead(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %v", ErrScanRow, op, err)
		}
		leads = append(leads, lead)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, op, err)
	}

	return leads, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanLead(row rowScanner) (*domain.Lead, error) {
	var lead domain.Lead
	var checkIn, checkOut, reminderAt, createdAt, updatedAt sql.NullTime
	var quotes []byte

	err := row.Scan(
		&lead.ID,
		&lead.Name,
		&lead.Mobile,
		&checkIn,
		&checkOut,
		&lead.Status,
		&quotes,
		&reminderAt,
		&lead.Notes,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	lead.CheckInDate = checkIn.Time
	lead.CheckOutDate = checkOut.Time
	lead.CreatedAt = createdAt.Time
	lead.UpdatedAt = updatedAt.Time
	if reminderAt.Valid {
		t := reminderAt.Time
		lead.ReminderAt = &t
	}

	lead.QuoteVariations = []domain.Quote{}
	if len(quotes) > 0 {
		if err := json.Unmarshal(quotes, &lead.QuoteVariations); err != nil {
			return nil, fmt.Errorf("decode quote_variations: %v", err)
		}
	}

	return &lead, nil
}

func encodeQuotes(quotes []domain.Quote) ([]byte, error) {
	if quotes == nil {
		quotes = []domain.Quote{}
	}
	return json.Marshal(quotes)
}

// nullDate пишет нулевую дату как NULL
func nullDate(t time.Time) interface{} {
	if t.IsZero() {
		return nil
	}
	return domain.DateOnly(t)
}
