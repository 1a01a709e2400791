package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-sweet-shop/internal/logger"
)

type sessionSlotRepository struct {
	*DB
	logger *logger.Logger
}

// NewSessionSlotRepository returns the sqlite implementation of
// [SessionSlotRepository].
func NewSessionSlotRepository(db *DB, logger *logger.Logger) SessionSlotRepository {
	return &sessionSlotRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *sessionSlotRepository) LoadSlots(ctx context.Context, slots ...string) (map[string]string, error) {
	log := logger.FromContext(ctx)
	result := make(map[string]string, len(slots))
	if len(slots) == 0 {
		return result, nil
	}

	query, args, err := buildLoadSlotsQuery(slots)
	if err != nil {
		log.Err(err).Str("func", "sessionSlotRepository.LoadSlots").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "sessionSlotRepository.LoadSlots").Strs("slots", slots).Msg("failed to query session slots")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var slot, value string
		if err = rows.Scan(&slot, &value); err != nil {
			log.Err(err).Str("func", "sessionSlotRepository.LoadSlots").Msg("failed to scan session slot")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		result[slot] = value
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "sessionSlotRepository.LoadSlots").Msg("error iterating session slots")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return result, nil
}

func (r *sessionSlotRepository) SaveSlots(ctx context.Context, values map[string]string) error {
	log := logger.FromContext(ctx)
	if len(values) == 0 {
		return nil
	}

	query, args, err := buildSaveSlotsQuery(values)
	if err != nil {
		log.Err(err).Str("func", "sessionSlotRepository.SaveSlots").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "sessionSlotRepository.SaveSlots").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "sessionSlotRepository.SaveSlots").Int("count", len(values)).Msg("failed to upsert session slots")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "sessionSlotRepository.SaveSlots").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func (r *sessionSlotRepository) DeleteSlots(ctx context.Context, slots ...string) error {
	log := logger.FromContext(ctx)
	if len(slots) == 0 {
		return nil
	}

	query, args, err := buildDeleteSlotsQuery(slots)
	if err != nil {
		log.Err(err).Str("func", "sessionSlotRepository.DeleteSlots").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "sessionSlotRepository.DeleteSlots").Strs("slots", slots).Msg("failed to delete session slots")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
