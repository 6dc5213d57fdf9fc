package repository

import (
	"context"
	"fmt"

	"github.com/raayanhq/raayan/internal/domain"
)

func (r *Repository) SaveSearch(ctx context.Context, s *domain.SavedSearch) (int64, error) {
	var id int64
	err := r.pool.QueryRow(ctx,
		`INSERT INTO searches (user_id, category, query, results, recommendation)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		s.UserID, s.Category, s.Query, s.Results, s.Recommendation,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert search for user %s: %w", s.UserID, err)
	}
	return id, nil
}

// ListSearches returns a user's most recent saved searches, newest first.
func (r *Repository) ListSearches(ctx context.Context, userID string, limit int) ([]domain.SavedSearch, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, user_id, category, query, results, recommendation, created_at
		 FROM searches
		 WHERE user_id = $1
		 ORDER BY created_at DESC
		 LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query searches for user %s: %w", userID, err)
	}
	defer rows.Close()

	var items []domain.SavedSearch
	for rows.Next() {
		var s domain.SavedSearch
		err := rows.Scan(&s.ID, &s.UserID, &s.Category, &s.Query, &s.Results, &s.Recommendation, &s.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan search: %w", err)
		}
		items = append(items, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate over searches: %w", err)
	}
	return items, nil
}

// DeleteSearch removes a search only if it belongs to the user.
func (r *Repository) DeleteSearch(ctx context.Context, userID string, id int64) error {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM searches WHERE id = $1 AND user_id = $2`, id, userID,
	)
	if err != nil {
		return fmt.Errorf("delete search %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrSearchNotFound
	}
	return nil
}
