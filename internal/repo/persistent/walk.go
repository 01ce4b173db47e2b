package persistent

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/littleroamers/roamers/internal/entity"
	"github.com/littleroamers/roamers/pkg/postgres"
	"github.com/littleroamers/roamers/pkg/types/errs"
)

const (
	walksTable     = "walks"
	walkDateColumn = "walk_date"
)

var walkColumns = []string{
	idColumn,
	titleColumn,
	notesColumn,
	durationMinutesColumn,
	walkDateColumn,
	createdAtColumn,
	updatedAtColumn,
}

type WalkRepo struct {
	*postgres.Postgres
}

func NewWalkRepo(pg *postgres.Postgres) *WalkRepo {
	return &WalkRepo{pg}
}

func (r *WalkRepo) List(ctx context.Context) ([]entity.Walk, error) {
	sql, args, err := r.Builder.
		Select(walkColumns...).
		From(walksTable).
		OrderBy(walkDateColumn + " DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("WalkRepo - List - r.Builder.ToSql: %w", err)
	}

	executor := r.GetExecutor(ctx)

	rows, err := executor.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("WalkRepo - List - executor.Query: %w", err)
	}
	defer rows.Close()

	walks := make([]entity.Walk, 0)
	for rows.Next() {
		walk, err := scanWalk(rows)
		if err != nil {
			return nil, fmt.Errorf("WalkRepo - List - scanWalk: %w", err)
		}
		walks = append(walks, *walk)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("WalkRepo - List - rows.Err: %w", err)
	}

	return walks, nil
}

func (r *WalkRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Walk, error) {
	sql, args, err := r.Builder.
		Select(walkColumns...).
		From(walksTable).
		Where(squirrel.Eq{idColumn: id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("WalkRepo - GetByID - r.Builder.ToSql: %w", err)
	}

	executor := r.GetExecutor(ctx)

	walk, err := scanWalk(executor.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("WalkRepo - GetByID: %w", errs.ErrRecordNotFound)
		}
		return nil, fmt.Errorf("WalkRepo - GetByID - executor.QueryRow: %w", err)
	}

	return walk, nil
}

func (r *WalkRepo) Create(ctx context.Context, walk *entity.Walk) error {
	sql, args, err := r.Builder.
		Insert(walksTable).
		Columns(walkColumns...).
		Values(
			walk.ID,
			walk.Title,
			walk.Notes,
			walk.DurationMinutes,
			walk.WalkDate,
			walk.CreatedAt,
			walk.UpdatedAt,
		).ToSql()
	if err != nil {
		return fmt.Errorf("WalkRepo - Create - r.Builder.ToSql: %w", err)
	}

	executor := r.GetExecutor(ctx)

	_, err = executor.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("WalkRepo - Create - executor.Exec: %w", err)
	}

	return nil
}

func (r *WalkRepo) Update(ctx context.Context, walk *entity.Walk) error {
	sql, args, err := r.Builder.
		Update(walksTable).
		Set(titleColumn, walk.Title).
		Set(notesColumn, walk.Notes).
		Set(durationMinutesColumn, walk.DurationMinutes).
		Set(walkDateColumn, walk.WalkDate).
		Set(updatedAtColumn, walk.UpdatedAt).
		Where(squirrel.Eq{idColumn: walk.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("WalkRepo - Update - r.Builder.ToSql: %w", err)
	}

	executor := r.GetExecutor(ctx)

	tag, err := executor.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("WalkRepo - Update - executor.Exec: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("WalkRepo - Update: %w", errs.ErrRecordNotFound)
	}

	return nil
}

func (r *WalkRepo) Delete(ctx context.Context, id uuid.UUID) error {
	sql, args, err := r.Builder.
		Delete(walksTable).
		Where(squirrel.Eq{idColumn: id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("WalkRepo - Delete - r.Builder.ToSql: %w", err)
	}

	executor := r.GetExecutor(ctx)

	tag, err := executor.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("WalkRepo - Delete - executor.Exec: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("WalkRepo - Delete: %w", errs.ErrRecordNotFound)
	}

	return nil
}

func scanWalk(row pgx.Row) (*entity.Walk, error) {
	var walk entity.Walk

	err := row.Scan(
		&walk.ID,
		&walk.Title,
		&walk.Notes,
		&walk.DurationMinutes,
		&walk.WalkDate,
		&walk.CreatedAt,
		&walk.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &walk, nil
}
