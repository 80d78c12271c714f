// Package sqlstore implements storage.Store on top of database/sql.
// The SQLite and PostgreSQL backends open their driver, apply migrations and
// hand the connection to New together with their Dialect.
package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/housesplit/internal/models"
	"github.com/mmynk/housesplit/internal/storage"
)

// Ensure Store implements storage.Store
var _ storage.Store = (*Store)(nil)

// Dialect captures the few differences between supported databases.
type Dialect struct {
	// Name is used in log lines and errors.
	Name string

	// NumberedParams rewrites "?" placeholders to "$1", "$2", ...
	NumberedParams bool

	// SnapshotIsolation is the isolation level used by Snapshot.
	SnapshotIsolation sql.IsolationLevel
}

var (
	// SQLite uses "?" placeholders and gets snapshot reads from WAL mode.
	SQLite = Dialect{Name: "sqlite"}

	// Postgres needs numbered placeholders and an explicit snapshot level.
	Postgres = Dialect{Name: "postgres", NumberedParams: true, SnapshotIsolation: sql.LevelRepeatableRead}
)

// Store implements storage.Store using a database/sql handle.
type Store struct {
	db      *sql.DB
	dialect Dialect
}

// New wraps an open, migrated database.
func New(db *sql.DB, dialect Dialect) *Store {
	return &Store{db: db, dialect: dialect}
}

// DB exposes the underlying handle for tests and tooling.
func (s *Store) DB() *sql.DB { return s.db }

// Dialect returns the dialect the store was created with.
func (s *Store) Dialect() Dialect { return s.dialect }

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// q rewrites a query written with "?" placeholders for the active dialect.
func (s *Store) q(query string) string {
	if !s.dialect.NumberedParams {
		return query
	}
	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// withTx runs fn in a transaction, committing on success.
func (s *Store) withTx(ctx context.Context, op string, opts *sql.TxOptions, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, opts)
	if err != nil {
		return storage.Wrap("begin transaction", err)
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return storage.Wrap(op, err)
	}
	if err := tx.Commit(); err != nil {
		return storage.Wrap("commit transaction", err)
	}
	return nil
}

// CreateRoommate persists a new roommate to the database.
func (s *Store) CreateRoommate(ctx context.Context, roommate *models.Roommate) error {
	if err := storage.NormalizeRoommate(roommate); err != nil {
		return err
	}
	if roommate.ID == "" {
		roommate.ID = uuid.New().String()
	}
	if roommate.CreatedAt == 0 {
		roommate.CreatedAt = time.Now().Unix()
	}
	roommate.IsActive = true

	return s.withTx(ctx, "insert roommate", nil, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx,
			s.q("INSERT INTO roommates (id, name, is_active, created_at) VALUES (?, ?, ?, ?)"),
			roommate.ID, roommate.Name, true, roommate.CreatedAt,
		)
		return err
	})
}

// GetRoommate retrieves a roommate by ID.
func (s *Store) GetRoommate(ctx context.Context, roommateID string) (*models.Roommate, error) {
	r := &models.Roommate{}
	err := s.db.QueryRowContext(ctx,
		s.q("SELECT id, name, is_active, created_at FROM roommates WHERE id = ?"),
		roommateID,
	).Scan(&r.ID, &r.Name, &r.IsActive, &r.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &storage.NotFoundError{Entity: "roommate", ID: roommateID}
	}
	if err != nil {
		return nil, storage.Wrap("get roommate", err)
	}
	return r, nil
}

// DeactivateRoommate flips the active flag and drops the roommate's links.
func (s *Store) DeactivateRoommate(ctx context.Context, roommateID string) error {
	return s.withTx(ctx, "deactivate roommate", nil, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx,
			s.q("UPDATE roommates SET is_active = ? WHERE id = ?"),
			false, roommateID,
		); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx,
			s.q("DELETE FROM bill_assignments WHERE roommate_id = ?"),
			roommateID,
		)
		return err
	})
}

// ListActiveRoommates retrieves all active roommates.
func (s *Store) ListActiveRoommates(ctx context.Context) ([]*models.Roommate, error) {
	rows, err := s.db.QueryContext(ctx,
		s.q("SELECT id, name, is_active, created_at FROM roommates WHERE is_active = ? ORDER BY name, created_at, id"),
		true,
	)
	if err != nil {
		return nil, storage.Wrap("list roommates", err)
	}
	defer rows.Close()
	return scanRoommates(rows)
}

func scanRoommates(rows *sql.Rows) ([]*models.Roommate, error) {
	roommates := []*models.Roommate{}
	for rows.Next() {
		r := &models.Roommate{}
		if err := rows.Scan(&r.ID, &r.Name, &r.IsActive, &r.CreatedAt); err != nil {
			return nil, storage.Wrap("scan roommate", err)
		}
		roommates = append(roommates, r)
	}
	if err := rows.Err(); err != nil {
		return nil, storage.Wrap("iterate roommates", err)
	}
	return roommates, nil
}

// CreateBill persists a new bill to the database.
func (s *Store) CreateBill(ctx context.Context, bill *models.Bill) error {
	if err := storage.NormalizeBill(bill); err != nil {
		return err
	}
	if bill.ID == "" {
		bill.ID = uuid.New().String()
	}
	if bill.CreatedAt == 0 {
		bill.CreatedAt = time.Now().Unix()
	}
	bill.IsActive = true

	return s.withTx(ctx, "insert bill", nil, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx,
			s.q("INSERT INTO bills (id, name, amount, due_date, is_active, created_at) VALUES (?, ?, ?, ?, ?, ?)"),
			bill.ID, bill.Name, bill.Amount, dueDateArg(bill), true, bill.CreatedAt,
		)
		return err
	})
}

// GetBill retrieves a bill by ID.
func (s *Store) GetBill(ctx context.Context, billID string) (*models.Bill, error) {
	row := s.db.QueryRowContext(ctx,
		s.q("SELECT id, name, amount, due_date, is_active, created_at FROM bills WHERE id = ?"),
		billID,
	)
	bill, err := scanBill(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &storage.NotFoundError{Entity: "bill", ID: billID}
	}
	if err != nil {
		return nil, storage.Wrap("get bill", err)
	}
	return bill, nil
}

// UpdateBill overwrites the editable fields of an active bill.
func (s *Store) UpdateBill(ctx context.Context, bill *models.Bill) error {
	if err := storage.NormalizeBill(bill); err != nil {
		return err
	}

	return s.withTx(ctx, "update bill", nil, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx,
			s.q("UPDATE bills SET name = ?, amount = ?, due_date = ? WHERE id = ? AND is_active = ?"),
			bill.Name, bill.Amount, dueDateArg(bill), bill.ID, true,
		)
		if err != nil {
			return err
		}
		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if n == 0 {
			return &storage.NotFoundError{Entity: "bill", ID: bill.ID}
		}
		bill.IsActive = true

		return tx.QueryRowContext(ctx,
			s.q("SELECT created_at FROM bills WHERE id = ?"),
			bill.ID,
		).Scan(&bill.CreatedAt)
	})
}

// DeactivateBill flips the active flag and drops the bill's links.
func (s *Store) DeactivateBill(ctx context.Context, billID string) error {
	return s.withTx(ctx, "deactivate bill", nil, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx,
			s.q("UPDATE bills SET is_active = ? WHERE id = ?"),
			false, billID,
		); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx,
			s.q("DELETE FROM bill_assignments WHERE bill_id = ?"),
			billID,
		)
		return err
	})
}

// ListActiveBills retrieves all active bills.
func (s *Store) ListActiveBills(ctx context.Context) ([]*models.Bill, error) {
	rows, err := s.db.QueryContext(ctx,
		s.q(`SELECT id, name, amount, due_date, is_active, created_at FROM bills
		 WHERE is_active = ? ORDER BY due_date IS NULL, due_date, name, id`),
		true,
	)
	if err != nil {
		return nil, storage.Wrap("list bills", err)
	}
	defer rows.Close()
	return scanBills(rows)
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanBill(row rowScanner) (*models.Bill, error) {
	b := &models.Bill{}
	var due sql.NullString
	if err := row.Scan(&b.ID, &b.Name, &b.Amount, &due, &b.IsActive, &b.CreatedAt); err != nil {
		return nil, err
	}
	if due.Valid && due.String != "" {
		t, err := models.ParseDueDate(due.String)
		if err != nil {
			return nil, err
		}
		b.DueDate = t
	}
	return b, nil
}

func scanBills(rows *sql.Rows) ([]*models.Bill, error) {
	bills := []*models.Bill{}
	for rows.Next() {
		b, err := scanBill(rows)
		if err != nil {
			return nil, storage.Wrap("scan bill", err)
		}
		bills = append(bills, b)
	}
	if err := rows.Err(); err != nil {
		return nil, storage.Wrap("iterate bills", err)
	}
	return bills, nil
}

func dueDateArg(b *models.Bill) any {
	if b.DueDate == nil {
		return nil
	}
	return b.DueDateString()
}

// Assign links a roommate to a bill; both must be active.
func (s *Store) Assign(ctx context.Context, billID, roommateID string) error {
	return s.withTx(ctx, "insert assignment", nil, func(tx *sql.Tx) error {
		if err := s.requireActive(ctx, tx, "bills", "bill", billID); err != nil {
			return err
		}
		if err := s.requireActive(ctx, tx, "roommates", "roommate", roommateID); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx,
			s.q(`INSERT INTO bill_assignments (bill_id, roommate_id, created_at) VALUES (?, ?, ?)
			 ON CONFLICT (bill_id, roommate_id) DO NOTHING`),
			billID, roommateID, time.Now().Unix(),
		)
		return err
	})
}

// requireActive returns a NotFoundError unless the row exists and is active.
// table is always a package constant, never caller input.
func (s *Store) requireActive(ctx context.Context, tx *sql.Tx, table, entity, id string) error {
	var active bool
	err := tx.QueryRowContext(ctx,
		s.q("SELECT is_active FROM "+table+" WHERE id = ?"),
		id,
	).Scan(&active)
	if errors.Is(err, sql.ErrNoRows) || (err == nil && !active) {
		return &storage.NotFoundError{Entity: entity, ID: id}
	}
	return err
}

// Unassign removes a link if present.
func (s *Store) Unassign(ctx context.Context, billID, roommateID string) error {
	return s.withTx(ctx, "delete assignment", nil, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx,
			s.q("DELETE FROM bill_assignments WHERE bill_id = ? AND roommate_id = ?"),
			billID, roommateID,
		)
		return err
	})
}

// ListAssignments retrieves the active roommates linked to a bill.
func (s *Store) ListAssignments(ctx context.Context, billID string) ([]*models.Assignee, error) {
	rows, err := s.db.QueryContext(ctx,
		s.q(`SELECT ba.roommate_id, r.name, ba.created_at
		 FROM bill_assignments ba
		 JOIN roommates r ON ba.roommate_id = r.id
		 WHERE ba.bill_id = ? AND r.is_active = ?
		 ORDER BY r.name, ba.roommate_id`),
		billID, true,
	)
	if err != nil {
		return nil, storage.Wrap("list assignments", err)
	}
	defer rows.Close()

	assignees := []*models.Assignee{}
	for rows.Next() {
		a := &models.Assignee{}
		if err := rows.Scan(&a.RoommateID, &a.RoommateName, &a.AssignedAt); err != nil {
			return nil, storage.Wrap("scan assignment", err)
		}
		assignees = append(assignees, a)
	}
	if err := rows.Err(); err != nil {
		return nil, storage.Wrap("iterate assignments", err)
	}
	return assignees, nil
}

// Snapshot reads everything allocation needs inside one transaction.
func (s *Store) Snapshot(ctx context.Context) (*models.Snapshot, error) {
	snap := &models.Snapshot{}
	opts := &sql.TxOptions{Isolation: s.dialect.SnapshotIsolation}

	err := s.withTx(ctx, "read snapshot", opts, func(tx *sql.Tx) error {
		rows, err := tx.QueryContext(ctx,
			s.q("SELECT id, name, is_active, created_at FROM roommates WHERE is_active = ? ORDER BY name, created_at, id"),
			true,
		)
		if err != nil {
			return err
		}
		snap.Roommates, err = scanRoommates(rows)
		rows.Close()
		if err != nil {
			return err
		}

		rows, err = tx.QueryContext(ctx,
			s.q(`SELECT id, name, amount, due_date, is_active, created_at FROM bills
			 WHERE is_active = ? ORDER BY due_date IS NULL, due_date, name, id`),
			true,
		)
		if err != nil {
			return err
		}
		snap.Bills, err = scanBills(rows)
		rows.Close()
		if err != nil {
			return err
		}

		rows, err = tx.QueryContext(ctx,
			s.q(`SELECT ba.bill_id, ba.roommate_id, ba.created_at
			 FROM bill_assignments ba
			 JOIN roommates r ON ba.roommate_id = r.id
			 JOIN bills b ON ba.bill_id = b.id
			 WHERE r.is_active = ? AND b.is_active = ?`),
			true, true,
		)
		if err != nil {
			return err
		}
		defer rows.Close()

		snap.Assignments = []*models.Assignment{}
		for rows.Next() {
			a := &models.Assignment{}
			if err := rows.Scan(&a.BillID, &a.RoommateID, &a.CreatedAt); err != nil {
				return err
			}
			snap.Assignments = append(snap.Assignments, a)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return snap, nil
}
