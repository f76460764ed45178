package mysql

import (
	"context"
	"errors"
	"testing"

	sectionDomain "foundry-trials-backend/internal/domain/section"

	"gorm.io/gorm"
)

func TestSection_UpsertLastWriteWins(t *testing.T) {
	db := openTestDB(t)
	repo := NewSectionRepository(db)
	ctx := context.Background()

	tr := mustCreateTrial(t, db, "Bracket-1", "Bracket")

	first := &sectionDomain.SandProperties{MoisturePct: 3.1}
	first.BindTrial(tr.ID)
	first.SetSubmitter("lab.tech")
	if err := repo.Upsert(ctx, first); err != nil {
		t.Fatalf("first Upsert: %v", err)
	}

	second := &sectionDomain.SandProperties{MoisturePct: 3.4, Permeability: 120}
	second.BindTrial(tr.ID)
	second.SetSubmitter("lab.tech2")
	if err := repo.Upsert(ctx, second); err != nil {
		t.Fatalf("second Upsert: %v", err)
	}

	got, err := repo.GetForTrial(ctx, sectionDomain.TypeSandProperties, tr.ID)
	if err != nil {
		t.Fatalf("GetForTrial: %v", err)
	}
	sp := got.(*sectionDomain.SandProperties)
	if sp.MoisturePct != 3.4 || sp.Permeability != 120 || sp.SubmittedBy != "lab.tech2" {
		t.Errorf("last write did not win: %+v", sp)
	}

	var count int64
	if err := db.Model(&sectionDomain.SandProperties{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("rows = %d, want a single row per (type, trial)", count)
	}
}

func TestSection_ListForTrialSkipsMissing(t *testing.T) {
	db := openTestDB(t)
	repo := NewSectionRepository(db)
	ctx := context.Background()

	tr := mustCreateTrial(t, db, "Bracket-1", "Bracket")

	sand := &sectionDomain.SandProperties{MoisturePct: 3.4}
	sand.BindTrial(tr.ID)
	visual := &sectionDomain.VisualInspection{QtyChecked: 10, QtyOK: 9}
	visual.BindTrial(tr.ID)
	for _, p := range []sectionDomain.Payload{sand, visual} {
		if err := repo.Upsert(ctx, p); err != nil {
			t.Fatalf("Upsert %s: %v", p.SectionType(), err)
		}
	}

	got, err := repo.ListForTrial(ctx, tr.ID)
	if err != nil {
		t.Fatalf("ListForTrial: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("payloads = %d, want only the two submitted", len(got))
	}
	// Workflow order is preserved.
	if got[0].SectionType() != sectionDomain.TypeSandProperties ||
		got[1].SectionType() != sectionDomain.TypeVisual {
		t.Errorf("order = %v, %v", got[0].SectionType(), got[1].SectionType())
	}
}

func TestSection_GetForTrialUnknownType(t *testing.T) {
	db := openTestDB(t)
	repo := NewSectionRepository(db)

	if _, err := repo.GetForTrial(context.Background(), "melting", 1); !errors.Is(err, sectionDomain.ErrUnknownType) {
		t.Fatalf("expected ErrUnknownType, got %v", err)
	}
}

func TestSection_HardDeleteByTrial(t *testing.T) {
	db := openTestDB(t)
	repo := NewSectionRepository(db)
	ctx := context.Background()

	tr := mustCreateTrial(t, db, "Bracket-1", "Bracket")
	keep := mustCreateTrial(t, db, "Housing-1", "Housing")

	for _, trialID := range []uint64{tr.ID, keep.ID} {
		p := &sectionDomain.PouringDetails{PouringTempC: 1395}
		p.BindTrial(trialID)
		if err := repo.Upsert(ctx, p); err != nil {
			t.Fatalf("Upsert: %v", err)
		}
	}

	if err := repo.HardDeleteByTrial(ctx, tr.ID); err != nil {
		t.Fatalf("HardDeleteByTrial: %v", err)
	}
	if _, err := repo.GetForTrial(ctx, sectionDomain.TypePouring, tr.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("section survived the cascade: %v", err)
	}
	if _, err := repo.GetForTrial(ctx, sectionDomain.TypePouring, keep.ID); err != nil {
		t.Fatalf("cascade crossed trial boundaries: %v", err)
	}
}
