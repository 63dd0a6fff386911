package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mossvale/WildkeeperBot_Go/internal/domain"
)

// CharacterRepository implements the character repository for PostgreSQL
type CharacterRepository struct {
	db *pgxpool.Pool
}

// NewCharacterRepository creates a new CharacterRepository
func NewCharacterRepository(db *pgxpool.Pool) *CharacterRepository {
	return &CharacterRepository{db: db}
}

// GetSnapshot reads a character and its active buff, if any.
func (r *CharacterRepository) GetSnapshot(ctx context.Context, characterID string) (*domain.CharacterSnapshot, error) {
	query := `
		SELECT character_id, name, attack, defense, speed, stealth,
		       hearts, max_hearts, is_blighted, blight_stage,
		       failed_flee_attempts, village_level, job_tag
		FROM characters
		WHERE character_id = $1
	`

	snap := &domain.CharacterSnapshot{}
	err := r.db.QueryRow(ctx, query, characterID).Scan(
		&snap.ID, &snap.Name, &snap.Attack, &snap.Defense, &snap.Speed, &snap.Stealth,
		&snap.Hearts, &snap.MaxHearts, &snap.IsBlighted, &snap.BlightStage,
		&snap.FailedFleeAttempts, &snap.VillageLevel, &snap.JobTag,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", domain.ErrCharacterNotFound, characterID)
		}
		return nil, fmt.Errorf("failed to get character: %w", err)
	}

	buff, err := r.getActiveBuff(ctx, characterID)
	if err != nil {
		return nil, err
	}
	snap.ActiveBuff = buff

	return snap, nil
}

func (r *CharacterRepository) getActiveBuff(ctx context.Context, characterID string) (*domain.ActiveBuff, error) {
	query := `
		SELECT kind, trigger_context, attack_boost, defense_boost,
		       speed_boost, stealth_boost, stamina_boost, stamina_recovery,
		       extra_hearts, flee_boost, blight_resistance, cold_resistance,
		       electric_resistance, fire_resistance, is_active
		FROM active_buffs
		WHERE character_id = $1
	`

	b := &domain.ActiveBuff{}
	err := r.db.QueryRow(ctx, query, characterID).Scan(
		&b.Kind, &b.TriggerContext, &b.AttackBoost, &b.DefenseBoost,
		&b.SpeedBoost, &b.StealthBoost, &b.StaminaBoost, &b.StaminaRecovery,
		&b.ExtraHearts, &b.FleeBoost, &b.BlightResistance, &b.ColdResistance,
		&b.ElectricResistance, &b.FireResistance, &b.IsActive,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get active buff: %w", err)
	}
	return b, nil
}

// ApplyResolution persists the mutations a resolution produced. The update is
// transactional: the flee counter, hearts, and buff consumption land together
// or not at all.
func (r *CharacterRepository) ApplyResolution(ctx context.Context, characterID string, update domain.CharacterUpdate) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		UPDATE characters
		SET failed_flee_attempts = $1, hearts = $2, is_knocked_out = $3, updated_at = NOW()
		WHERE character_id = $4
	`
	tag, err := tx.Exec(ctx, query, update.FailedFleeAttempts, update.Hearts, update.KnockedOut, characterID)
	if err != nil {
		return fmt.Errorf("failed to update character: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", domain.ErrCharacterNotFound, characterID)
	}

	if update.BuffConsumed {
		buffQuery := `
			UPDATE active_buffs
			SET is_active = FALSE, consumed_at = NOW()
			WHERE character_id = $1 AND is_active = TRUE
		`
		if _, err := tx.Exec(ctx, buffQuery, characterID); err != nil {
			return fmt.Errorf("failed to consume buff: %w", err)
		}
	}

	return tx.Commit(ctx)
}
