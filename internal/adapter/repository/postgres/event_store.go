// Package postgres persists wallet event logs in PostgreSQL. Events are
// append-only rows; a unique (wallet_id, sequence) index is the optimistic
// concurrency guard.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/oklog/ulid/v2"

	"github.com/iho/gowallet/internal/domain"
)

const pgErrUniqueViolation = "23505"

// EventStore implements usecase.EventStore backed by the wallet_events table.
type EventStore struct {
	pool    *pgxpool.Pool
	retrier *Retrier
}

// NewEventStore creates a new EventStore.
func NewEventStore(pool *pgxpool.Pool, retrier *Retrier) *EventStore {
	return &EventStore{
		pool:    pool,
		retrier: retrier,
	}
}

// Append writes events in one transaction at sequences expectedVersion,
// expectedVersion+1 and so on. A duplicate (wallet_id, sequence) means
// another writer appended first and is reported as
// domain.ErrConcurrentUpdate.
func (s *EventStore) Append(ctx context.Context, walletID domain.WalletID, events []domain.WalletEvent, expectedVersion int) error {
	if len(events) == 0 {
		return nil
	}

	// Conflicts are not retryable here; resolving them means reloading the
	// log, which is the caller's job.
	return s.retrier.Retry(ctx, func() error {
		return s.appendTx(ctx, walletID, events, expectedVersion)
	})
}

func (s *EventStore) appendTx(ctx context.Context, walletID domain.WalletID, events []domain.WalletEvent, expectedVersion int) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin append tx: %w", err)
	}
	defer tx.Rollback(ctx)

	const insert = `
		INSERT INTO wallet_events (event_id, wallet_id, sequence, kind, payload)
		VALUES ($1, $2, $3, $4, $5)`

	for i, event := range events {
		payload, err := marshalEvent(event)
		if err != nil {
			return err
		}

		_, err = tx.Exec(ctx, insert,
			ulid.Make().String(),
			walletID.String(),
			expectedVersion+i,
			event.Kind(),
			payload,
		)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == pgErrUniqueViolation {
				return domain.ErrConcurrentUpdate
			}
			return fmt.Errorf("insert wallet event: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgErrUniqueViolation {
			return domain.ErrConcurrentUpdate
		}
		return fmt.Errorf("commit append tx: %w", err)
	}

	return nil
}

// Load returns the full event log for a wallet ordered by sequence.
func (s *EventStore) Load(ctx context.Context, walletID domain.WalletID) ([]domain.WalletEvent, error) {
	const query = `
		SELECT kind, payload
		FROM wallet_events
		WHERE wallet_id = $1
		ORDER BY sequence`

	var events []domain.WalletEvent

	err := s.retrier.Retry(ctx, func() error {
		rows, err := s.pool.Query(ctx, query, walletID.String())
		if err != nil {
			return fmt.Errorf("query wallet events: %w", err)
		}
		defer rows.Close()

		events = events[:0]

		for rows.Next() {
			var (
				kind    string
				payload []byte
			)

			if err := rows.Scan(&kind, &payload); err != nil {
				return fmt.Errorf("scan wallet event: %w", err)
			}

			event, err := unmarshalEvent(kind, payload)
			if err != nil {
				return err
			}

			events = append(events, event)
		}

		return rows.Err()
	})
	if err != nil {
		return nil, err
	}

	if len(events) == 0 {
		return nil, domain.ErrWalletNotFound
	}

	return events, nil
}
