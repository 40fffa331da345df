package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/turkishstudent/backend/internal/models"
	"go.uber.org/zap"
)

const grammarTable = "grammar_points"

var grammarColumns = []string{
	"id", "title", "explanation", "description", "grammar_type", "difficulty_level",
	"examples", "rules", "exceptions", "related_points", "lesson_id", "created_at", "updated_at",
}

type grammarRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewGrammarRepository creates a new grammar point repository
func NewGrammarRepository(db *sql.DB, logger *zap.Logger) *grammarRepository {
	return &grammarRepository{
		db:     db,
		logger: logger,
	}
}

func applyGrammarFilter(qb squirrel.SelectBuilder, filter models.GrammarFilter) squirrel.SelectBuilder {
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		qb = qb.Where(squirrel.Or{
			squirrel.Like{"title": like},
			squirrel.Like{"explanation": like},
			squirrel.Like{"description": like},
		})
	}
	if filter.DifficultyLevel != nil {
		qb = qb.Where(squirrel.Eq{"difficulty_level": *filter.DifficultyLevel})
	}
	if filter.GrammarType != "" {
		qb = qb.Where(squirrel.Eq{"grammar_type": filter.GrammarType})
	}
	return qb
}

// List returns one page of grammar points matching the filter and the total number of matches
func (r *grammarRepository) List(ctx context.Context, filter models.GrammarFilter) ([]models.GrammarListItem, int, error) {
	countQuery, countArgs, err := applyGrammarFilter(builder.Select("COUNT(*)").From(grammarTable), filter).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count query: %w", err)
	}

	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		r.logger.Error("failed to count grammar points", zap.Error(err))
		return nil, 0, fmt.Errorf("failed to count grammar points: %w", err)
	}

	query, args, err := applyGrammarFilter(
		builder.Select("id", "title", "grammar_type", "difficulty_level").From(grammarTable),
		filter,
	).
		OrderBy("title", "id").
		Limit(uint64(filter.Limit)).
		Offset(uint64(filter.Offset())).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Error("failed to query grammar points", zap.Error(err))
		return nil, 0, fmt.Errorf("failed to query grammar points: %w", err)
	}
	defer rows.Close()

	var items []models.GrammarListItem
	for rows.Next() {
		var item models.GrammarListItem
		var grammarType sql.NullString
		var difficulty sql.NullInt64
		if err := rows.Scan(&item.ID, &item.Title, &grammarType, &difficulty); err != nil {
			r.logger.Error("failed to scan grammar point", zap.Error(err))
			return nil, 0, fmt.Errorf("failed to scan grammar point: %w", err)
		}
		item.GrammarType = grammarType.String
		item.DifficultyLevel = nullInt(difficulty)
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error("error iterating rows", zap.Error(err))
		return nil, 0, fmt.Errorf("error iterating rows: %w", err)
	}

	return items, total, nil
}

// GetByID retrieves a grammar point by its ID
func (r *grammarRepository) GetByID(ctx context.Context, id string) (*models.GrammarPoint, error) {
	query, args, err := builder.Select(grammarColumns...).
		From(grammarTable).
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	var g models.GrammarPoint
	var description, grammarType, lessonID sql.NullString
	var examples, rules, exceptions, related []byte
	var difficulty sql.NullInt64
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&g.ID,
		&g.Title,
		&g.Explanation,
		&description,
		&grammarType,
		&difficulty,
		&examples,
		&rules,
		&exceptions,
		&related,
		&lessonID,
		&g.CreatedAt,
		&g.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrGrammarPointNotFound
		}
		r.logger.Error("failed to query grammar point by id", zap.Error(err), zap.String("id", id))
		return nil, fmt.Errorf("failed to query grammar point: %w", err)
	}

	g.Description = description.String
	g.GrammarType = grammarType.String
	g.DifficultyLevel = nullInt(difficulty)
	g.LessonID = lessonID.String
	if len(examples) > 0 {
		g.Examples = json.RawMessage(examples)
	}
	for _, col := range []struct {
		name string
		raw  []byte
		dest *[]string
	}{
		{"rules", rules, &g.Rules},
		{"exceptions", exceptions, &g.Exceptions},
		{"related_points", related, &g.RelatedPoints},
	} {
		if len(col.raw) == 0 {
			continue
		}
		if err := json.Unmarshal(col.raw, col.dest); err != nil {
			r.logger.Error("failed to decode grammar column", zap.Error(err), zap.String("column", col.name))
			return nil, fmt.Errorf("failed to decode %s: %w", col.name, err)
		}
	}

	return &g, nil
}

// Create inserts a new grammar point. ID and timestamps are assigned here.
func (r *grammarRepository) Create(ctx context.Context, g *models.GrammarPoint) error {
	rules, err := encodeList(g.Rules)
	if err != nil {
		return err
	}
	exceptions, err := encodeList(g.Exceptions)
	if err != nil {
		return err
	}
	related, err := encodeList(g.RelatedPoints)
	if err != nil {
		return err
	}

	now := time.Now().UTC().Truncate(time.Second)
	id := uuid.New().String()

	query, args, err := builder.Insert(grammarTable).
		Columns(grammarColumns...).
		Values(
			id,
			g.Title,
			g.Explanation,
			nullString(g.Description),
			nullString(g.GrammarType),
			g.DifficultyLevel,
			nullJSON(g.Examples),
			rules,
			exceptions,
			related,
			nullString(g.LessonID),
			now,
			now,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build insert: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		r.logger.Error("failed to create grammar point", zap.Error(err))
		return fmt.Errorf("failed to create grammar point: %w", err)
	}

	g.ID = id
	g.CreatedAt = now
	g.UpdatedAt = now
	return nil
}

// Update applies a partial update. Only non-nil request fields are written.
func (r *grammarRepository) Update(ctx context.Context, id string, req *models.UpdateGrammarRequest) error {
	qb := builder.Update(grammarTable)
	fields := 0
	set := func(column string, value any) {
		qb = qb.Set(column, value)
		fields++
	}

	if req.Title != nil {
		set("title", *req.Title)
	}
	if req.Explanation != nil {
		set("explanation", *req.Explanation)
	}
	if req.Description != nil {
		set("description", *req.Description)
	}
	if req.GrammarType != nil {
		set("grammar_type", *req.GrammarType)
	}
	if req.DifficultyLevel != nil {
		set("difficulty_level", *req.DifficultyLevel)
	}
	if req.Examples != nil {
		set("examples", nullJSON(*req.Examples))
	}
	for _, list := range []struct {
		column string
		value  *[]string
	}{
		{"rules", req.Rules},
		{"exceptions", req.Exceptions},
		{"related_points", req.RelatedPoints},
	} {
		if list.value == nil {
			continue
		}
		encoded, err := encodeList(*list.value)
		if err != nil {
			return err
		}
		set(list.column, encoded)
	}
	if req.LessonID != nil {
		set("lesson_id", *req.LessonID)
	}

	if fields == 0 {
		return models.ErrNoFieldsToUpdate
	}

	query, args, err := qb.
		Set("updated_at", time.Now().UTC().Truncate(time.Second)).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		r.logger.Error("failed to update grammar point", zap.Error(err), zap.String("id", id))
		return fmt.Errorf("failed to update grammar point: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		var exists bool
		if err := r.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM grammar_points WHERE id = ?)`, id).Scan(&exists); err != nil {
			return fmt.Errorf("failed to check grammar point existence: %w", err)
		}
		if !exists {
			return models.ErrGrammarPointNotFound
		}
	}

	return nil
}

// Delete deletes a grammar point by ID
func (r *grammarRepository) Delete(ctx context.Context, id string) error {
	query, args, err := builder.Delete(grammarTable).Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		r.logger.Error("failed to delete grammar point", zap.Error(err), zap.String("id", id))
		return fmt.Errorf("failed to delete grammar point: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return models.ErrGrammarPointNotFound
	}

	return nil
}

// encodeList stores a string list as a JSON array. A nil list is stored as NULL.
func encodeList(list []string) (any, error) {
	if list == nil {
		return nil, nil
	}
	raw, err := json.Marshal(list)
	if err != nil {
		return nil, fmt.Errorf("failed to encode list: %w", err)
	}
	return string(raw), nil
}

// nullJSON maps an empty or null document to SQL NULL
func nullJSON(raw json.RawMessage) any {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	return string(raw)
}
