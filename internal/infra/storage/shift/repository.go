package shift

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/ORS-BookingService/internal/domain"
	"github.com/m04kA/ORS-BookingService/pkg/dbmetrics"
	"github.com/m04kA/ORS-BookingService/pkg/psqlbuilder"
)

// Repository репозиторий для работы со сменами и заявками на них
// Смена хранится в двух таблицах: shifts (дата + версия) и shift_entries
// (участники и лист ожидания, порядок задается колонкой position)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория смен
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListAll возвращает все смены с участниками и листами ожидания,
// отсортированные по дате
// Внутри транзакции строки shifts блокируются через FOR UPDATE:
// снапшот, прочитанный движком переходов, не может измениться до коммита
func (r *Repository) ListAll(ctx context.Context) ([]*domain.Shift, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"shift_date",
		"version",
		"created_at",
		"updated_at",
	).
		From("shifts").
		OrderBy("shift_date ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListAll - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	shifts, err := r.scanShifts(rows)
	if err != nil {
		return nil, err
	}

	if len(shifts) == 0 {
		return shifts, nil
	}

	if err := r.loadEntries(ctx, executor, shifts); err != nil {
		return nil, err
	}

	return shifts, nil
}

// UpdateEntries перезаписывает заявки смены с оптимистичной проверкой версии
// Версия инкрементируется; если с момента чтения она изменилась,
// возвращается ErrVersionConflict и вся транзакция откатывается
func (r *Repository) UpdateEntries(ctx context.Context, s *domain.Shift) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("shifts").
		Set("version", squirrel.Expr("version + 1")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": s.ID, "version": s.Version}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateEntries - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateEntries - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateEntries - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrVersionConflict
	}

	// Полная перезапись заявок смены: порядок строк восстанавливается
	// из позиций в доменной модели
	deleteQuery, deleteArgs, err := psqlbuilder.Delete("shift_entries").
		Where(squirrel.Eq{"shift_id": s.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateEntries - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return fmt.Errorf("%w: UpdateEntries - execute delete: %v", ErrExecQuery, err)
	}

	if len(s.Participants) == 0 && len(s.Waitlist) == 0 {
		return nil
	}

	insertBuilder := psqlbuilder.Insert("shift_entries").
		Columns("shift_id", "user_id", "display_name", "notify_email", "role", "position")

	for i, p := range s.Participants {
		insertBuilder = insertBuilder.Values(s.ID, p.UserID, p.DisplayName, p.NotifyEmail, domain.EntryRoleParticipant, i)
	}
	for i, w := range s.Waitlist {
		insertBuilder = insertBuilder.Values(s.ID, w.UserID, w.DisplayName, w.NotifyEmail, domain.EntryRoleWaitlist, i)
	}

	insertQuery, insertArgs, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateEntries - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
		return fmt.Errorf("%w: UpdateEntries - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// loadEntries загружает заявки для набора смен одним запросом
func (r *Repository) loadEntries(ctx context.Context, executor DBExecutor, shifts []*domain.Shift) error {
	ids := make([]int64, len(shifts))
	byID := make(map[int64]*domain.Shift, len(shifts))
	for i, s := range shifts {
		ids[i] = s.ID
		byID[s.ID] = s
	}

	query, args, err := psqlbuilder.Select(
		"shift_id",
		"user_id",
		"display_name",
		"notify_email",
		"role",
	).
		From("shift_entries").
		Where(squirrel.Eq{"shift_id": ids}).
		OrderBy("shift_id ASC", "role ASC", "position ASC").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: loadEntries - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: loadEntries - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var shiftID int64
		var role string
		var entry domain.ShiftEntry

		if err := rows.Scan(&shiftID, &entry.UserID, &entry.DisplayName, &entry.NotifyEmail, &role); err != nil {
			return fmt.Errorf("%w: loadEntries - scan row: %v", ErrScanRow, err)
		}

		s, ok := byID[shiftID]
		if !ok {
			continue
		}

		switch role {
		case domain.EntryRoleParticipant:
			s.Participants = append(s.Participants, entry)
		case domain.EntryRoleWaitlist:
			s.Waitlist = append(s.Waitlist, entry)
		}
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: loadEntries - rows error: %v", ErrScanRow, err)
	}

	return nil
}

// scanShifts сканирует результаты запроса в слайс смен
func (r *Repository) scanShifts(rows *sql.Rows) ([]*domain.Shift, error) {
	shifts := make([]*domain.Shift, 0)

	for rows.Next() {
		var s domain.Shift
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&s.ID,
			&s.Date,
			&s.Version,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanShifts - scan row: %v", ErrScanRow, err)
		}

		s.CreatedAt = createdAt.Time
		s.UpdatedAt = updatedAt.Time
		s.Participants = make([]domain.ShiftEntry, 0)
		s.Waitlist = make([]domain.ShiftEntry, 0)

		shifts = append(shifts, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanShifts - rows error: %v", ErrScanRow, err)
	}

	return shifts, nil
}
