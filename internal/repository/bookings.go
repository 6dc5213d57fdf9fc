package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/raayanhq/raayan/internal/domain"
)

func (r *Repository) InsertBooking(ctx context.Context, b *domain.Booking) (int64, error) {
	var id int64
	err := r.pool.QueryRow(ctx,
		`INSERT INTO bookings (reference, user_id, category, platform, restaurant, operator,
		                       final_price, booking_data, redirect_url, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 RETURNING id`,
		b.Reference, b.UserID, b.Category, b.Platform, b.Restaurant, b.Operator,
		b.FinalPrice, b.BookingData, b.RedirectURL, b.Status,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert booking for user %s: %w", b.UserID, err)
	}
	return id, nil
}

func (r *Repository) GetBooking(ctx context.Context, userID string, id int64) (*domain.Booking, error) {
	b := &domain.Booking{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, reference, user_id, category, platform,
		        COALESCE(restaurant, ''), COALESCE(operator, ''),
		        final_price, booking_data, redirect_url, status, created_at
		 FROM bookings WHERE id = $1 AND user_id = $2`,
		id, userID,
	).Scan(&b.ID, &b.Reference, &b.UserID, &b.Category, &b.Platform,
		&b.Restaurant, &b.Operator, &b.FinalPrice, &b.BookingData,
		&b.RedirectURL, &b.Status, &b.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("query booking id=%d: %w", id, err)
	}
	return b, nil
}

func (r *Repository) UpdateBookingStatus(ctx context.Context, userID string, id int64, status domain.BookingStatus) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE bookings SET status = $1 WHERE id = $2 AND user_id = $3`,
		status, id, userID,
	)
	if err != nil {
		return fmt.Errorf("update booking %d status: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrBookingNotFound
	}
	return nil
}

func (r *Repository) ListBookings(ctx context.Context, userID string, limit int) ([]domain.Booking, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, reference, user_id, category, platform,
		        COALESCE(restaurant, ''), COALESCE(operator, ''),
		        final_price, booking_data, redirect_url, status, created_at
		 FROM bookings
		 WHERE user_id = $1
		 ORDER BY created_at DESC
		 LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query bookings for user %s: %w", userID, err)
	}
	defer rows.Close()
	return scanBookings(rows)
}

// ListCompletedBookings feeds the spend analytics. The window bounds are
// optional; nil means unbounded.
func (r *Repository) ListCompletedBookings(ctx context.Context, userID string, start, end *time.Time) ([]domain.Booking, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, reference, user_id, category, platform,
		        COALESCE(restaurant, ''), COALESCE(operator, ''),
		        final_price, booking_data, redirect_url, status, created_at
		 FROM bookings
		 WHERE user_id = $1
		   AND status = 'completed'
		   AND ($2::timestamptz IS NULL OR created_at >= $2)
		   AND ($3::timestamptz IS NULL OR created_at <= $3)
		 ORDER BY created_at`,
		userID, start, end,
	)
	if err != nil {
		return nil, fmt.Errorf("query completed bookings for user %s: %w", userID, err)
	}
	defer rows.Close()
	return scanBookings(rows)
}

func scanBookings(rows pgx.Rows) ([]domain.Booking, error) {
	var items []domain.Booking
	for rows.Next() {
		var b domain.Booking
		err := rows.Scan(&b.ID, &b.Reference, &b.UserID, &b.Category, &b.Platform,
			&b.Restaurant, &b.Operator, &b.FinalPrice, &b.BookingData,
			&b.RedirectURL, &b.Status, &b.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		items = append(items, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate over bookings: %w", err)
	}
	return items, nil
}
