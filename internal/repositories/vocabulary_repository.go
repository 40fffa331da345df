package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/turkishstudent/backend/internal/models"
	"go.uber.org/zap"
)

const vocabularyTable = "vocabulary"

var vocabularyColumns = []string{
	"id", "turkish_word", "english_translation", "pronunciation", "part_of_speech", "usage_context",
	"example_sentence_tr", "example_sentence_en", "difficulty_level", "frequency_rank",
	"audio_url", "image_url", "lesson_id", "category_id", "created_at", "updated_at",
}

// builder generates MySQL statements with ? placeholders
var builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)

type vocabularyRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewVocabularyRepository creates a new vocabulary repository
func NewVocabularyRepository(db *sql.DB, logger *zap.Logger) *vocabularyRepository {
	return &vocabularyRepository{
		db:     db,
		logger: logger,
	}
}

func applyVocabularyFilter(qb squirrel.SelectBuilder, filter models.VocabularyFilter) squirrel.SelectBuilder {
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		qb = qb.Where(squirrel.Or{
			squirrel.Like{"turkish_word": like},
			squirrel.Like{"english_translation": like},
			squirrel.Like{"pronunciation": like},
		})
	}
	if filter.DifficultyLevel != nil {
		qb = qb.Where(squirrel.Eq{"difficulty_level": *filter.DifficultyLevel})
	}
	if filter.PartOfSpeech != "" {
		qb = qb.Where(squirrel.Eq{"part_of_speech": filter.PartOfSpeech})
	}
	if filter.CategoryID != "" {
		qb = qb.Where(squirrel.Eq{"category_id": filter.CategoryID})
	}
	return qb
}

// List returns one page of vocabulary entries matching the filter and the total number of matches
func (r *vocabularyRepository) List(ctx context.Context, filter models.VocabularyFilter) ([]models.VocabularyListItem, int, error) {
	countQuery, countArgs, err := applyVocabularyFilter(builder.Select("COUNT(*)").From(vocabularyTable), filter).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count query: %w", err)
	}

	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		r.logger.Error("failed to count vocabulary", zap.Error(err))
		return nil, 0, fmt.Errorf("failed to count vocabulary: %w", err)
	}

	query, args, err := applyVocabularyFilter(
		builder.Select("id", "turkish_word", "english_translation", "part_of_speech", "difficulty_level").From(vocabularyTable),
		filter,
	).
		OrderBy("turkish_word", "id").
		Limit(uint64(filter.Limit)).
		Offset(uint64(filter.Offset())).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Error("failed to query vocabulary", zap.Error(err))
		return nil, 0, fmt.Errorf("failed to query vocabulary: %w", err)
	}
	defer rows.Close()

	var items []models.VocabularyListItem
	for rows.Next() {
		var item models.VocabularyListItem
		var partOfSpeech sql.NullString
		var difficulty sql.NullInt64
		if err := rows.Scan(&item.ID, &item.TurkishWord, &item.EnglishTranslation, &partOfSpeech, &difficulty); err != nil {
			r.logger.Error("failed to scan vocabulary", zap.Error(err))
			return nil, 0, fmt.Errorf("failed to scan vocabulary: %w", err)
		}
		item.PartOfSpeech = partOfSpeech.String
		item.DifficultyLevel = nullInt(difficulty)
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error("error iterating rows", zap.Error(err))
		return nil, 0, fmt.Errorf("error iterating rows: %w", err)
	}

	return items, total, nil
}

// GetByID retrieves a vocabulary entry by its ID
func (r *vocabularyRepository) GetByID(ctx context.Context, id string) (*models.Vocabulary, error) {
	query, args, err := builder.Select(vocabularyColumns...).
		From(vocabularyTable).
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	var v models.Vocabulary
	var pronunciation, partOfSpeech, usageContext, exampleTr, exampleEn sql.NullString
	var audioURL, imageURL, lessonID, categoryID sql.NullString
	var difficulty sql.NullInt64
	var frequency sql.NullFloat64
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&v.ID,
		&v.TurkishWord,
		&v.EnglishTranslation,
		&pronunciation,
		&partOfSpeech,
		&usageContext,
		&exampleTr,
		&exampleEn,
		&difficulty,
		&frequency,
		&audioURL,
		&imageURL,
		&lessonID,
		&categoryID,
		&v.CreatedAt,
		&v.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrVocabularyNotFound
		}
		r.logger.Error("failed to query vocabulary by id", zap.Error(err), zap.String("id", id))
		return nil, fmt.Errorf("failed to query vocabulary: %w", err)
	}

	v.Pronunciation = pronunciation.String
	v.PartOfSpeech = partOfSpeech.String
	v.UsageContext = usageContext.String
	v.ExampleSentenceTr = exampleTr.String
	v.ExampleSentenceEn = exampleEn.String
	v.DifficultyLevel = nullInt(difficulty)
	if frequency.Valid {
		v.FrequencyRank = &frequency.Float64
	}
	v.AudioURL = audioURL.String
	v.ImageURL = imageURL.String
	v.LessonID = lessonID.String
	v.CategoryID = categoryID.String

	return &v, nil
}

// ExistsByWord checks if an entry with the given Turkish word exists
func (r *vocabularyRepository) ExistsByWord(ctx context.Context, word string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM vocabulary WHERE turkish_word = ?)`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, word).Scan(&exists); err != nil {
		r.logger.Error("failed to check vocabulary existence", zap.Error(err))
		return false, fmt.Errorf("failed to check vocabulary existence: %w", err)
	}

	return exists, nil
}

// Create inserts a new entry. ID and timestamps are assigned here.
func (r *vocabularyRepository) Create(ctx context.Context, v *models.Vocabulary) error {
	now := time.Now().UTC().Truncate(time.Second)
	id := uuid.New().String()

	query, args, err := builder.Insert(vocabularyTable).
		Columns(vocabularyColumns...).
		Values(
			id,
			v.TurkishWord,
			v.EnglishTranslation,
			nullString(v.Pronunciation),
			nullString(v.PartOfSpeech),
			nullString(v.UsageContext),
			nullString(v.ExampleSentenceTr),
			nullString(v.ExampleSentenceEn),
			v.DifficultyLevel,
			v.FrequencyRank,
			nullString(v.AudioURL),
			nullString(v.ImageURL),
			nullString(v.LessonID),
			nullString(v.CategoryID),
			now,
			now,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build insert: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		r.logger.Error("failed to create vocabulary", zap.Error(err))
		return fmt.Errorf("failed to create vocabulary: %w", err)
	}

	v.ID = id
	v.CreatedAt = now
	v.UpdatedAt = now
	return nil
}

// Update applies a partial update. Only non-nil request fields are written.
func (r *vocabularyRepository) Update(ctx context.Context, id string, req *models.UpdateVocabularyRequest) error {
	qb := builder.Update(vocabularyTable)
	fields := 0
	set := func(column string, value any) {
		qb = qb.Set(column, value)
		fields++
	}

	if req.TurkishWord != nil {
		set("turkish_word", *req.TurkishWord)
	}
	if req.EnglishTranslation != nil {
		set("english_translation", *req.EnglishTranslation)
	}
	if req.Pronunciation != nil {
		set("pronunciation", *req.Pronunciation)
	}
	if req.PartOfSpeech != nil {
		set("part_of_speech", *req.PartOfSpeech)
	}
	if req.UsageContext != nil {
		set("usage_context", *req.UsageContext)
	}
	if req.ExampleSentenceTr != nil {
		set("example_sentence_tr", *req.ExampleSentenceTr)
	}
	if req.ExampleSentenceEn != nil {
		set("example_sentence_en", *req.ExampleSentenceEn)
	}
	if req.DifficultyLevel != nil {
		set("difficulty_level", *req.DifficultyLevel)
	}
	if req.FrequencyRank != nil {
		set("frequency_rank", *req.FrequencyRank)
	}
	if req.AudioURL != nil {
		set("audio_url", *req.AudioURL)
	}
	if req.ImageURL != nil {
		set("image_url", *req.ImageURL)
	}
	if req.LessonID != nil {
		set("lesson_id", *req.LessonID)
	}
	if req.CategoryID != nil {
		set("category_id", *req.CategoryID)
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
		r.logger.Error("failed to update vocabulary", zap.Error(err), zap.String("id", id))
		return fmt.Errorf("failed to update vocabulary: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		// MySQL reports unchanged rows as unaffected
		exists, err := r.existsByID(ctx, id)
		if err != nil {
			return err
		}
		if !exists {
			return models.ErrVocabularyNotFound
		}
	}

	return nil
}

// Delete deletes a vocabulary entry by ID
func (r *vocabularyRepository) Delete(ctx context.Context, id string) error {
	query, args, err := builder.Delete(vocabularyTable).Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		r.logger.Error("failed to delete vocabulary", zap.Error(err), zap.String("id", id))
		return fmt.Errorf("failed to delete vocabulary: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return models.ErrVocabularyNotFound
	}

	return nil
}

func (r *vocabularyRepository) existsByID(ctx context.Context, id string) (bool, error) {
	var exists bool
	if err := r.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM vocabulary WHERE id = ?)`, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check vocabulary existence: %w", err)
	}
	return exists, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullInt(n sql.NullInt64) *int {
	if !n.Valid {
		return nil
	}
	v := int(n.Int64)
	return &v
}
