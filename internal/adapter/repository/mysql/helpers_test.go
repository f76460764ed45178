package mysql

import (
	"context"
	"testing"
	"time"

	auditDomain "foundry-trials-backend/internal/domain/audit"
	deptDomain "foundry-trials-backend/internal/domain/department"
	progressDomain "foundry-trials-backend/internal/domain/progress"
	sectionDomain "foundry-trials-backend/internal/domain/section"
	trialDomain "foundry-trials-backend/internal/domain/trial"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// openTestDB opens an in-memory sqlite DB and migrates the full schema. The
// domain models avoid engine-specific column types on purpose so the same
// structs migrate on both mysql and sqlite.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	models := []any{
		&deptDomain.Department{},
		&trialDomain.Trial{},
		&trialDomain.PartCounter{},
		&progressDomain.Record{},
		&auditDomain.Entry{},
	}
	models = append(models, sectionDomain.Models()...)
	if err := db.AutoMigrate(models...); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}

func seedDepartments(t *testing.T, db *gorm.DB) {
	t.Helper()
	if err := NewDepartmentRepository(db).Seed(context.Background()); err != nil {
		t.Fatalf("seed departments: %v", err)
	}
}

func makeTrial(trialID, partName string) *trialDomain.Trial {
	first := uint(1)
	return &trialDomain.Trial{
		TrialID:             trialID,
		PartName:            partName,
		PatternCode:         "P-104",
		MaterialGrade:       "SG500/7",
		Initiator:           "methods.rao",
		SamplingDate:        time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		MouldsPlanned:       5,
		MouldsActual:        5,
		SamplingReason:      "new pattern",
		TraceabilityCode:    "TRC-9001",
		Machine:             "DISA-2013",
		CurrentDepartmentID: &first,
		Status:              trialDomain.StatusActive,
		StatusUpdatedAt:     time.Now().UTC(),
	}
}

func mustCreateTrial(t *testing.T, db *gorm.DB, trialID, partName string) *trialDomain.Trial {
	t.Helper()
	tr := makeTrial(trialID, partName)
	if err := NewTrialRepository(db).Create(context.Background(), tr); err != nil {
		t.Fatalf("create trial: %v", err)
	}
	return tr
}
