package mysql

import (
	"context"
	"errors"

	sectionDomain "foundry-trials-backend/internal/domain/section"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SectionRepository struct{ db *gorm.DB }

func NewSectionRepository(db *gorm.DB) *SectionRepository { return &SectionRepository{db: db} }

// Upsert replaces any previous submission for (type, trial). The unique index
// on trial_id makes this a true last-write-wins write.
func (r *SectionRepository) Upsert(ctx context.Context, p sectionDomain.Payload) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "trial_id"}},
		UpdateAll: true,
	}).Create(p).Error
}

func (r *SectionRepository) GetForTrial(ctx context.Context, t sectionDomain.Type, trialID uint64) (sectionDomain.Payload, error) {
	p, err := sectionDomain.New(t)
	if err != nil {
		return nil, err
	}
	res := r.db.WithContext(ctx).Where("trial_id = ?", trialID).First(p)
	if res.Error != nil {
		return nil, res.Error
	}
	return p, nil
}

func (r *SectionRepository) ListForTrial(ctx context.Context, trialID uint64) ([]sectionDomain.Payload, error) {
	var out []sectionDomain.Payload
	for _, t := range sectionDomain.Types() {
		p, err := r.GetForTrial(ctx, t, trialID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func (r *SectionRepository) HardDeleteByTrial(ctx context.Context, trialID uint64) error {
	for _, m := range sectionDomain.Models() {
		if err := r.db.WithContext(ctx).Unscoped().
			Where("trial_id = ?", trialID).
			Delete(m).Error; err != nil {
			return err
		}
	}
	return nil
}
