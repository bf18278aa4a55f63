package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/lifecubes/internal/models"
	"github.com/mmynk/lifecubes/internal/storage"
)

const eventColumns = "e.id, e.user_id, e.week_index, e.day_of_week, e.title, e.description, e.icon, e.color, e.created_at, e.updated_at"

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// orderColumns maps the accepted orderings to SQL columns.
var orderColumns = map[string]string{
	"week_index":  "e.week_index",
	"day_of_week": "e.day_of_week",
	"created_at":  "e.created_at",
}

// CreateEvent persists a new event with its tags.
func (s *SQLiteStore) CreateEvent(ctx context.Context, event *models.Event) error {
	if event.ID == "" {
		event.ID = uuid.New().String()
	}
	if event.CreatedAt == 0 {
		event.CreatedAt = time.Now().Unix()
	}
	if event.UpdatedAt == 0 {
		event.UpdatedAt = event.CreatedAt
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO events (id, user_id, week_index, day_of_week, title, description, icon, color, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		event.ID,
		event.UserID,
		event.WeekIndex,
		event.DayOfWeek,
		event.Title,
		event.Description,
		event.Icon,
		event.Color,
		event.CreatedAt,
		event.UpdatedAt,
	)
	if isUniqueViolation(err) {
		return fmt.Errorf("event %s: %w", event.ID, storage.ErrAlreadyExists)
	}
	if err != nil {
		return fmt.Errorf("failed to insert event: %w", err)
	}

	if err := setTags(ctx, tx, event.ID, event.Tags); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// GetEvent retrieves one of the user's events, including its tags.
func (s *SQLiteStore) GetEvent(ctx context.Context, userID, eventID string) (*models.Event, error) {
	event := &models.Event{}
	err := s.db.QueryRowContext(ctx,
		"SELECT "+eventColumns+" FROM events e WHERE e.id = ? AND e.user_id = ?",
		eventID, userID,
	).Scan(eventFields(event)...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("event %s: %w", eventID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	tags, err := loadTags(ctx, s.db, []string{event.ID})
	if err != nil {
		return nil, err
	}
	event.Tags = tags[event.ID]
	return event, nil
}

// UpdateEvent replaces the stored fields and tags of an event.
func (s *SQLiteStore) UpdateEvent(ctx context.Context, event *models.Event) error {
	event.UpdatedAt = time.Now().Unix()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		UPDATE events
		SET week_index = ?, day_of_week = ?, title = ?, description = ?, icon = ?, color = ?, updated_at = ?
		WHERE id = ? AND user_id = ?
	`,
		event.WeekIndex,
		event.DayOfWeek,
		event.Title,
		event.Description,
		event.Icon,
		event.Color,
		event.UpdatedAt,
		event.ID,
		event.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to update event: %w", err)
	}
	if err := checkAffected(res, "event "+event.ID); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM event_tags WHERE event_id = ?", event.ID); err != nil {
		return fmt.Errorf("failed to clear event tags: %w", err)
	}
	if err := setTags(ctx, tx, event.ID, event.Tags); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// DeleteEvent removes one of the user's events.
func (s *SQLiteStore) DeleteEvent(ctx context.Context, userID, eventID string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM events WHERE id = ? AND user_id = ?", eventID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	return checkAffected(res, "event "+eventID)
}

// ListEvents returns the user's events matching q.
func (s *SQLiteStore) ListEvents(ctx context.Context, userID string, q storage.EventQuery) ([]models.Event, error) {
	where := []string{"e.user_id = ?"}
	args := []any{userID}

	if q.WeekIndex != nil {
		where = append(where, "e.week_index = ?")
		args = append(args, *q.WeekIndex)
	}
	if q.DayOfWeek != nil {
		where = append(where, "e.day_of_week = ?")
		args = append(args, *q.DayOfWeek)
	}
	if q.FromWeek != nil {
		where = append(where, "e.week_index >= ?")
		args = append(args, *q.FromWeek)
	}
	if q.ToWeek != nil {
		where = append(where, "e.week_index <= ?")
		args = append(args, *q.ToWeek)
	}
	if q.Category != "" && q.Category != "all" {
		where = append(where, "e.icon = ?")
		args = append(args, q.Category)
	}
	if q.Tag != "" {
		where = append(where, `EXISTS (
			SELECT 1 FROM event_tags et JOIN tags t ON t.id = et.tag_id
			WHERE et.event_id = e.id AND t.name = ?)`)
		args = append(args, q.Tag)
	}
	if q.Text != "" {
		pattern := likePattern(q.Text)
		where = append(where, `(e.title LIKE ? ESCAPE '\' OR e.description LIKE ? ESCAPE '\' OR EXISTS (
			SELECT 1 FROM event_tags et JOIN tags t ON t.id = et.tag_id
			WHERE et.event_id = e.id AND t.name LIKE ? ESCAPE '\'))`)
		args = append(args, pattern, pattern, pattern)
	}

	orderBy, err := orderClause(q.Ordering)
	if err != nil {
		return nil, err
	}

	query := "SELECT " + eventColumns + " FROM events e WHERE " + strings.Join(where, " AND ") + " ORDER BY " + orderBy
	if q.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, q.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	defer rows.Close()

	var events []models.Event
	for rows.Next() {
		var event models.Event
		if err := rows.Scan(eventFields(&event)...); err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate events: %w", err)
	}
	if len(events) == 0 {
		return events, nil
	}

	ids := make([]string, len(events))
	for i, event := range events {
		ids[i] = event.ID
	}
	tags, err := loadTags(ctx, s.db, ids)
	if err != nil {
		return nil, err
	}
	for i := range events {
		events[i].Tags = tags[events[i].ID]
	}
	return events, nil
}

func orderClause(ordering string) (string, error) {
	if ordering == "" {
		return "e.week_index, e.day_of_week, e.id", nil
	}
	field, desc := strings.CutPrefix(ordering, "-")
	column, ok := orderColumns[field]
	if !ok {
		return "", fmt.Errorf("%w: unknown ordering %q", models.ErrInvalid, ordering)
	}
	if desc {
		return column + " DESC, e.id", nil
	}
	return column + ", e.id", nil
}

// CountEvents returns how many events the user has.
func (s *SQLiteStore) CountEvents(ctx context.Context, userID string) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM events WHERE user_id = ?", userID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count events: %w", err)
	}
	return n, nil
}

// ListTags returns the distinct tags attached to the user's events.
func (s *SQLiteStore) ListTags(ctx context.Context, userID, search string) ([]models.Tag, error) {
	query := `
		SELECT DISTINCT t.id, t.name, t.created_at
		FROM tags t
		JOIN event_tags et ON et.tag_id = t.id
		JOIN events e ON e.id = et.event_id
		WHERE e.user_id = ?`
	args := []any{userID}
	if search != "" {
		query += ` AND t.name LIKE ? ESCAPE '\'`
		args = append(args, likePattern(search))
	}
	query += " ORDER BY t.name"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}
	defer rows.Close()

	var tags []models.Tag
	for rows.Next() {
		var tag models.Tag
		if err := rows.Scan(&tag.ID, &tag.Name, &tag.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan tag: %w", err)
		}
		tags = append(tags, tag)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate tags: %w", err)
	}
	return tags, nil
}

func eventFields(e *models.Event) []any {
	return []any{
		&e.ID,
		&e.UserID,
		&e.WeekIndex,
		&e.DayOfWeek,
		&e.Title,
		&e.Description,
		&e.Icon,
		&e.Color,
		&e.CreatedAt,
		&e.UpdatedAt,
	}
}

// setTags links names to the event in order, creating missing tags.
func setTags(ctx context.Context, q querier, eventID string, names []string) error {
	now := time.Now().Unix()
	for i, name := range names {
		_, err := q.ExecContext(ctx,
			"INSERT INTO tags (id, name, created_at) VALUES (?, ?, ?) ON CONFLICT(name) DO NOTHING",
			uuid.New().String(), name, now,
		)
		if err != nil {
			return fmt.Errorf("failed to insert tag %q: %w", name, err)
		}

		var tagID string
		if err := q.QueryRowContext(ctx, "SELECT id FROM tags WHERE name = ?", name).Scan(&tagID); err != nil {
			return fmt.Errorf("failed to look up tag %q: %w", name, err)
		}

		_, err = q.ExecContext(ctx,
			"INSERT INTO event_tags (event_id, tag_id, position) VALUES (?, ?, ?) ON CONFLICT DO NOTHING",
			eventID, tagID, i,
		)
		if err != nil {
			return fmt.Errorf("failed to link tag %q: %w", name, err)
		}
	}
	return nil
}

// loadTags returns the tag names of each event, in stored order.
func loadTags(ctx context.Context, q querier, eventIDs []string) (map[string][]string, error) {
	args := make([]any, len(eventIDs))
	for i, id := range eventIDs {
		args[i] = id
	}

	rows, err := q.QueryContext(ctx, `
		SELECT et.event_id, t.name
		FROM event_tags et
		JOIN tags t ON t.id = et.tag_id
		WHERE et.event_id IN (`+placeholders(len(eventIDs))+`)
		ORDER BY et.event_id, et.position`,
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get event tags: %w", err)
	}
	defer rows.Close()

	tags := make(map[string][]string)
	for rows.Next() {
		var eventID, name string
		if err := rows.Scan(&eventID, &name); err != nil {
			return nil, fmt.Errorf("failed to scan event tag: %w", err)
		}
		tags[eventID] = append(tags[eventID], name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate event tags: %w", err)
	}
	return tags, nil
}
