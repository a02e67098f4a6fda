package reservation

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/Elmamis69/jmares-reservas/internal/domain"
	"github.com/Elmamis69/jmares-reservas/pkg/dbmetrics"
	"github.com/Elmamis69/jmares-reservas/pkg/psqlbuilder"
)

// PostgreSQL SQLSTATE codes mapped to repository sentinel errors.
const (
	pgForeignKeyViolation = "23503"
	pgExclusionViolation  = "23P01"
)

var reservationColumns = []string{
	"id",
	"client_id",
	"package_id",
	"event_date",
	"start_time",
	"end_time",
	"status",
	"attendees",
	"total",
	"deposit",
	"notes",
	"created_at",
	"updated_at",
}

// Repository persists reservations with their service lines and payments.
type Repository struct {
	db DBExecutor
}

// NewRepository creates a reservation repository on the given executor.
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a reservation together with its nested service lines and
// payments on the executor found in the context. Callers are expected to
// run it inside a transaction when the insert follows an availability
// check, so both share one atomic unit.
//
// The row-level exclusion constraint on active intervals acts as the
// store-side backstop: if a concurrent committer slipped past the check,
// the second insert fails with ErrIntervalTaken instead of double-booking.
func (r *Repository) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if res.ID == uuid.Nil {
		res.ID = uuid.New()
	}

	query, args, err := psqlbuilder.Insert("reservations").
		Columns(
			"id",
			"client_id",
			"package_id",
			"event_date",
			"start_time",
			"end_time",
			"status",
			"attendees",
			"total",
			"deposit",
			"notes",
		).
		Values(
			res.ID,
			res.ClientID,
			res.PackageID,
			res.EventDate,
			res.Interval.Start,
			res.Interval.End,
			res.Status,
			res.Attendees,
			res.Total,
			res.Deposit,
			res.Notes,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil {
		if mapped := mapConstraintError(err); mapped != nil {
			return nil, mapped
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	res.CreatedAt = createdAt.Time
	res.UpdatedAt = updatedAt.Time

	for i := range res.ServiceLines {
		line := &res.ServiceLines[i]
		line.ReservationID = res.ID
		if err := r.insertServiceLine(ctx, executor, line); err != nil {
			return nil, err
		}
	}

	for i := range res.Payments {
		payment := &res.Payments[i]
		payment.ReservationID = res.ID
		if err := r.insertPayment(ctx, executor, payment); err != nil {
			return nil, err
		}
	}

	return res, nil
}

// GetByID fetches a reservation including its service lines and payments.
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{"id": id})

	// Inside a transaction the row is locked so a concurrent update
	// cannot change the interval between read and re-validation.
	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	res, err := r.scanReservationRow(executor.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrReservationNotFound
		}
		return nil, fmt.Errorf("%w: GetByID - scan reservation: %v", ErrScanRow, err)
	}

	if res.ServiceLines, err = r.getServiceLines(ctx, executor, id); err != nil {
		return nil, err
	}
	if res.Payments, err = r.getPayments(ctx, executor, id); err != nil {
		return nil, err
	}

	return res, nil
}

// ListActiveOverlapping returns the active reservations (held or
// confirmed) whose interval intersects the candidate, excluding the given
// reservation id when set. This is the working set the overlap check runs
// against; inside a transaction the rows are locked with FOR UPDATE so a
// concurrent writer serializes behind us.
func (r *Repository) ListActiveOverlapping(ctx context.Context, candidate domain.Interval, excludeID *uuid.UUID) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	activeStatusStrings := make([]string, len(domain.ActiveStatuses))
	for i, s := range domain.ActiveStatuses {
		activeStatusStrings[i] = string(s)
	}

	selectBuilder := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{"status": activeStatusStrings}).
		Where(squirrel.Lt{"start_time": candidate.End}).
		Where(squirrel.Gt{"end_time": candidate.Start}).
		OrderBy("start_time ASC")

	if excludeID != nil {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"id": *excludeID})
	}

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveOverlapping - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveOverlapping - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanReservations(rows)
}

// List returns reservations ordered by start ascending, creation order
// breaking ties. With a range filter, intersection semantics apply: a
// reservation is included when its interval shares any instant with the
// range, so events straddling a boundary are not dropped.
func (r *Repository) List(ctx context.Context, filter domain.ListFilter) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		OrderBy("start_time ASC", "created_at ASC", "id ASC")

	if filter.Range != nil {
		selectBuilder = selectBuilder.
			Where(squirrel.Lt{"start_time": filter.Range.End}).
			Where(squirrel.Gt{"end_time": filter.Range.Start})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanReservations(rows)
}

// Update persists the merged state of an existing reservation. The caller
// merges partial input into the stored record first, so this is a full-row
// write of everything mutable.
func (r *Repository) Update(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservations").
		Set("client_id", res.ClientID).
		Set("package_id", res.PackageID).
		Set("event_date", res.EventDate).
		Set("start_time", res.Interval.Start).
		Set("end_time", res.Interval.End).
		Set("status", res.Status).
		Set("attendees", res.Attendees).
		Set("total", res.Total).
		Set("deposit", res.Deposit).
		Set("notes", res.Notes).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": res.ID}).
		Suffix("RETURNING updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrReservationNotFound
		}
		if mapped := mapConstraintError(err); mapped != nil {
			return nil, mapped
		}
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	res.UpdatedAt = updatedAt.Time
	return res, nil
}

// Delete hard-removes a reservation. Service lines and payments go with
// it through ON DELETE CASCADE, so the whole removal is one atomic
// statement.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("reservations").
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
		return ErrReservationNotFound
	}

	return nil
}

func (r *Repository) insertServiceLine(ctx context.Context, executor DBExecutor, line *domain.ServiceLine) error {
	if line.ID == uuid.Nil {
		line.ID = uuid.New()
	}

	query, args, err := psqlbuilder.Insert("reservation_services").
		Columns("id", "reservation_id", "service_id", "quantity").
		Values(line.ID, line.ReservationID, line.ServiceID, line.Quantity).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: insertServiceLine - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		if mapped := mapConstraintError(err); mapped != nil {
			return mapped
		}
		return fmt.Errorf("%w: insertServiceLine - execute insert: %v", ErrExecQuery, err)
	}
	return nil
}

func (r *Repository) insertPayment(ctx context.Context, executor DBExecutor, payment *domain.Payment) error {
	if payment.ID == uuid.Nil {
		payment.ID = uuid.New()
	}

	query, args, err := psqlbuilder.Insert("payments").
		Columns("id", "reservation_id", "amount", "method", "reference").
		Values(payment.ID, payment.ReservationID, payment.Amount, payment.Method, payment.Reference).
		Suffix("RETURNING created_at").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: insertPayment - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&createdAt); err != nil {
		if mapped := mapConstraintError(err); mapped != nil {
			return mapped
		}
		return fmt.Errorf("%w: insertPayment - execute insert: %v", ErrExecQuery, err)
	}

	payment.CreatedAt = createdAt.Time
	return nil
}

func (r *Repository) getServiceLines(ctx context.Context, executor DBExecutor, reservationID uuid.UUID) ([]domain.ServiceLine, error) {
	query, args, err := psqlbuilder.Select("id", "reservation_id", "service_id", "quantity").
		From("reservation_services").
		Where(squirrel.Eq{"reservation_id": reservationID}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: getServiceLines - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: getServiceLines - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	lines := make([]domain.ServiceLine, 0)
	for rows.Next() {
		var line domain.ServiceLine
		if err := rows.Scan(&line.ID, &line.ReservationID, &line.ServiceID, &line.Quantity); err != nil {
			return nil, fmt.Errorf("%w: getServiceLines - scan row: %v", ErrScanRow, err)
		}
		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: getServiceLines - rows error: %v", ErrScanRow, err)
	}

	return lines, nil
}

func (r *Repository) getPayments(ctx context.Context, executor DBExecutor, reservationID uuid.UUID) ([]domain.Payment, error) {
	query, args, err := psqlbuilder.Select("id", "reservation_id", "amount", "method", "reference", "created_at").
		From("payments").
		Where(squirrel.Eq{"reservation_id": reservationID}).
		OrderBy("created_at ASC", "id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: getPayments - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: getPayments - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	payments := make([]domain.Payment, 0)
	for rows.Next() {
		var payment domain.Payment
		var createdAt sql.NullTime
		if err := rows.Scan(&payment.ID, &payment.ReservationID, &payment.Amount, &payment.Method, &payment.Reference, &createdAt); err != nil {
			return nil, fmt.Errorf("%w: getPayments - scan row: %v", ErrScanRow, err)
		}
		payment.CreatedAt = createdAt.Time
		payments = append(payments, payment)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: getPayments - rows error: %v", ErrScanRow, err)
	}

	return payments, nil
}

// rowScanner abstracts *sql.Row and *sql.Rows for shared scanning.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) scanReservationRow(row rowScanner) (*domain.Reservation, error) {
	var res domain.Reservation
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&res.ID,
		&res.ClientID,
		&res.PackageID,
		&res.EventDate,
		&res.Interval.Start,
		&res.Interval.End,
		&res.Status,
		&res.Attendees,
		&res.Total,
		&res.Deposit,
		&res.Notes,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	res.CreatedAt = createdAt.Time
	res.UpdatedAt = updatedAt.Time
	return &res, nil
}

func (r *Repository) scanReservations(rows *sql.Rows) ([]*domain.Reservation, error) {
	reservations := make([]*domain.Reservation, 0)

	for rows.Next() {
		res, err := r.scanReservationRow(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanReservations - scan row: %v", ErrScanRow, err)
		}
		reservations = append(reservations, res)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanReservations - rows error: %v", ErrScanRow, err)
	}

	return reservations, nil
}

// mapConstraintError translates PostgreSQL constraint violations into
// repository sentinel errors; returns nil for anything else.
func mapConstraintError(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return nil
	}
	switch string(pqErr.Code) {
	case pgForeignKeyViolation:
		return fmt.Errorf("%w: constraint %s", ErrReferenceNotFound, pqErr.Constraint)
	case pgExclusionViolation:
		return ErrIntervalTaken
	default:
		return nil
	}
}
