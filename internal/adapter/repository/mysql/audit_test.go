package mysql

import (
	"context"
	"testing"

	auditDomain "foundry-trials-backend/internal/domain/audit"
	"foundry-trials-backend/pkg/id"
)

func appendEntry(t *testing.T, repo *AuditRepository, trialID *uint64, deptID *uint, user, action string) {
	t.Helper()
	err := repo.Append(context.Background(), &auditDomain.Entry{
		EntryID:      id.NewID32(),
		TrialID:      trialID,
		DepartmentID: deptID,
		UserID:       user,
		Action:       action,
	})
	if err != nil {
		t.Fatalf("Append(%s): %v", action, err)
	}
}

func TestAudit_QueryFilters(t *testing.T) {
	db := openTestDB(t)
	repo := NewAuditRepository(db)
	ctx := context.Background()

	tr := mustCreateTrial(t, db, "Bracket-1", "Bracket")
	other := mustCreateTrial(t, db, "Housing-1", "Housing")
	dept := uint(1)

	appendEntry(t, repo, &tr.ID, nil, "methods.rao", auditDomain.ActionTrialCreated)
	appendEntry(t, repo, &tr.ID, &dept, "lab.tech", auditDomain.ActionSectionSubmitted)
	appendEntry(t, repo, &tr.ID, &dept, "qc.head", auditDomain.ActionProgressApproved)
	appendEntry(t, repo, &other.ID, nil, "methods.rao", auditDomain.ActionTrialCreated)

	byTrial, err := repo.Query(ctx, auditDomain.Filter{TrialID: tr.ID})
	if err != nil {
		t.Fatalf("Query by trial: %v", err)
	}
	if len(byTrial) != 3 {
		t.Fatalf("entries for trial = %d, want 3", len(byTrial))
	}

	byAction, err := repo.Query(ctx, auditDomain.Filter{Action: auditDomain.ActionTrialCreated})
	if err != nil {
		t.Fatalf("Query by action: %v", err)
	}
	if len(byAction) != 2 {
		t.Fatalf("creation entries = %d, want 2", len(byAction))
	}

	both, err := repo.Query(ctx, auditDomain.Filter{TrialID: tr.ID, Action: auditDomain.ActionProgressApproved})
	if err != nil {
		t.Fatalf("Query combined: %v", err)
	}
	if len(both) != 1 || both[0].UserID != "qc.head" {
		t.Fatalf("combined filter = %+v", both)
	}
}

func TestAudit_ListCompletedByDepartment(t *testing.T) {
	db := openTestDB(t)
	repo := NewAuditRepository(db)
	ctx := context.Background()

	tr := mustCreateTrial(t, db, "Bracket-1", "Bracket")
	deleted := mustCreateTrial(t, db, "Housing-1", "Housing")
	dept := uint(1)
	otherDept := uint(2)

	appendEntry(t, repo, &tr.ID, &dept, "qc.head", auditDomain.ActionProgressApproved)
	appendEntry(t, repo, &tr.ID, &otherDept, "qc.head", auditDomain.ActionProgressApproved)
	appendEntry(t, repo, &tr.ID, &dept, "qc.head", auditDomain.ActionProgressRejected)
	appendEntry(t, repo, &deleted.ID, &dept, "qc.head", auditDomain.ActionProgressApproved)

	if err := NewTrialRepository(db).SoftDelete(ctx, deleted, "admin.k"); err != nil {
		t.Fatalf("soft delete: %v", err)
	}

	items, err := repo.ListCompletedByDepartment(ctx, dept)
	if err != nil {
		t.Fatalf("ListCompletedByDepartment: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("completed items = %+v", items)
	}
	if items[0].TrialID != "Bracket-1" || items[0].ApprovedBy != "qc.head" {
		t.Errorf("unexpected item: %+v", items[0])
	}
}

func TestAudit_HardDeleteByTrial(t *testing.T) {
	db := openTestDB(t)
	repo := NewAuditRepository(db)
	ctx := context.Background()

	tr := mustCreateTrial(t, db, "Bracket-1", "Bracket")
	appendEntry(t, repo, &tr.ID, nil, "methods.rao", auditDomain.ActionTrialCreated)
	// A purge entry has no trial reference and must survive the cascade.
	appendEntry(t, repo, nil, nil, "admin.k", auditDomain.ActionTrialPurged)

	if err := repo.HardDeleteByTrial(ctx, tr.ID); err != nil {
		t.Fatalf("HardDeleteByTrial: %v", err)
	}

	left, err := repo.Query(ctx, auditDomain.Filter{})
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if len(left) != 1 || left[0].Action != auditDomain.ActionTrialPurged {
		t.Fatalf("surviving entries = %+v", left)
	}
}
