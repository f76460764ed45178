package mysql

import (
	"context"

	deptDomain "foundry-trials-backend/internal/domain/department"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DepartmentRepository struct{ db *gorm.DB }

func NewDepartmentRepository(db *gorm.DB) *DepartmentRepository {
	return &DepartmentRepository{db: db}
}

func (r *DepartmentRepository) GetByID(ctx context.Context, id uint) (*deptDomain.Department, error) {
	var out deptDomain.Department
	res := r.db.WithContext(ctx).First(&out, id)
	return &out, res.Error
}

func (r *DepartmentRepository) GetByCode(ctx context.Context, code string) (*deptDomain.Department, error) {
	var out deptDomain.Department
	res := r.db.WithContext(ctx).Where("code = ?", code).First(&out)
	return &out, res.Error
}

func (r *DepartmentRepository) List(ctx context.Context) ([]deptDomain.Department, error) {
	var out []deptDomain.Department
	res := r.db.WithContext(ctx).Order("position ASC").Find(&out)
	return out, res.Error
}

func (r *DepartmentRepository) NextAfter(ctx context.Context, position int) (*deptDomain.Department, error) {
	var out deptDomain.Department
	res := r.db.WithContext(ctx).
		Where("position > ?", position).
		Order("position ASC").
		First(&out)
	return &out, res.Error
}

func (r *DepartmentRepository) Seed(ctx context.Context) error {
	rows := deptDomain.Defaults()
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "code"}},
		DoNothing: true,
	}).Create(&rows).Error
}
