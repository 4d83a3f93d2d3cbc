package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/youssef1892004/To-Do-List-App/internal/models"
)

// PostgresTodoRepository implements todo persistence against a PostgreSQL database.
type PostgresTodoRepository struct {
	// DB is the database handle for executing queries.
	DB *sql.DB
}

// NewPostgresTodoRepository creates a new PostgresTodoRepository using the
// provided *sql.DB. db must be a valid connection to a PostgreSQL instance.
func NewPostgresTodoRepository(db *sql.DB) *PostgresTodoRepository {
	return &PostgresTodoRepository{DB: db}
}

// ListByOwner fetches all todos belonging to the given owner, newest created
// first. Ties on created_at are broken by id ascending so the order is
// deterministic for a fixed data set.
//
//	ctx:     context for cancellation and deadlines
//	ownerID: identifier of the owning user
//
// Returns a slice of models.Todo or an error if the query or scanning fails.
func (r *PostgresTodoRepository) ListByOwner(ctx context.Context, ownerID string) ([]models.Todo, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, owner_id, title, description, completed, priority, due_date, created_at, updated_at
		FROM todos WHERE owner_id = $1
		ORDER BY created_at DESC, id ASC
	`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("ListByOwner: %w", err)
	}
	defer rows.Close()

	var todos []models.Todo
	for rows.Next() {
		var t models.Todo
		if err := rows.Scan(&t.ID, &t.OwnerID, &t.Title, &t.Description, &t.Completed, &t.Priority, &t.DueDate, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		todos = append(todos, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return todos, nil
}

// GetByID retrieves a single todo by id regardless of owner. The caller is
// responsible for the ownership check. Returns sql.ErrNoRows when absent.
func (r *PostgresTodoRepository) GetByID(ctx context.Context, id string) (*models.Todo, error) {
	var t models.Todo
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, owner_id, title, description, completed, priority, due_date, created_at, updated_at
		FROM todos WHERE id = $1
	`, id).Scan(&t.ID, &t.OwnerID, &t.Title, &t.Description, &t.Completed, &t.Priority, &t.DueDate, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Insert persists a new todo record. The caller assigns a unique id.
func (r *PostgresTodoRepository) Insert(ctx context.Context, todo *models.Todo) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO todos (id, owner_id, title, description, completed, priority, due_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, todo.ID, todo.OwnerID, todo.Title, todo.Description, todo.Completed, todo.Priority, todo.DueDate, todo.CreatedAt, todo.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert todo: %w", err)
	}
	return nil
}

// Update rewrites the mutable columns of the todo with the given id. The
// owner column is never written. Returns sql.ErrNoRows when no record was
// affected.
func (r *PostgresTodoRepository) Update(ctx context.Context, todo *models.Todo) error {
	res, err := r.DB.ExecContext(ctx, `
		UPDATE todos
		SET title = $2, description = $3, completed = $4, priority = $5, due_date = $6, updated_at = $7
		WHERE id = $1
	`, todo.ID, todo.Title, todo.Description, todo.Completed, todo.Priority, todo.DueDate, todo.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update todo: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update todo rows: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Delete removes the todo with the given id. Returns sql.ErrNoRows when no
// record was affected.
func (r *PostgresTodoRepository) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM todos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete todo: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete todo rows: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
