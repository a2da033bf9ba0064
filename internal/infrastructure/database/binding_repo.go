package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"translatorbot/internal/domain/entities"
	"translatorbot/internal/ports/output"
)

var _ output.BindingRepository = (*BindingRepository)(nil)

type BindingRepository struct {
	pool *pgxpool.Pool
}

func NewBindingRepository(pool *pgxpool.Pool) *BindingRepository {
	return &BindingRepository{pool: pool}
}

func (r *BindingRepository) Upsert(ctx context.Context, binding entities.ChannelBinding) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO bindings (channel_id, language)
		 VALUES ($1, $2)
		 ON CONFLICT (channel_id) DO UPDATE SET language = EXCLUDED.language`,
		binding.ChannelID, binding.Language,
	)
	if err != nil {
		return fmt.Errorf("upsert binding: %w", err)
	}
	return nil
}

func (r *BindingRepository) Delete(ctx context.Context, channelID string) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM bindings WHERE channel_id = $1`, channelID); err != nil {
		return fmt.Errorf("delete binding: %w", err)
	}
	return nil
}

func (r *BindingRepository) List(ctx context.Context) ([]entities.ChannelBinding, error) {
	rows, err := r.pool.Query(ctx, `SELECT channel_id, language FROM bindings`)
	if err != nil {
		return nil, fmt.Errorf("list bindings: %w", err)
	}
	defer rows.Close()

	var out []entities.ChannelBinding
	for rows.Next() {
		var b entities.ChannelBinding
		if err := rows.Scan(&b.ChannelID, &b.Language); err != nil {
			return nil, fmt.Errorf("scan binding: %w", err)
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list bindings: %w", err)
	}
	return out, nil
}
