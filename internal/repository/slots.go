package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmtkv/CourtBooker/internal/domain"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/retry"
)

const uniqueViolation = "23505"

func defaultStrategy() retry.Strategy {
	return retry.Strategy{
		Attempts: 3,
		Delay:    500 * time.Millisecond,
		Backoff:  2,
	}
}

// hasOverlap drains rows of (start_time, end_time) pairs and reports whether
// any of them overlaps the half-open interval [start, end). Always closes rows.
func hasOverlap(rows *sql.Rows, start, end string) (bool, error) {
	defer rows.Close()
	for rows.Next() {
		var s, e string
		if err := rows.Scan(&s, &e); err != nil {
			return false, fmt.Errorf("scan slot: %w", err)
		}
		if domain.Overlaps(start, end, s, e) {
			return true, nil
		}
	}
	return false, rows.Err()
}

func isUniqueViolation(err error) bool {
	var pgErr *pq.Error
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
