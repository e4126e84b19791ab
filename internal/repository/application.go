package repository

import (
	"github.com/google/uuid"
	"github.com/visaquest/visaquest-go/internal/domain/form"
	"gorm.io/gorm"
)

//go:generate mockgen -source=application.go -destination=mock/application.go -package=mock

type ApplicationRepo interface {
	Create(app *form.Application) error
	FindAll() ([]form.Application, error)
	FindByID(id uuid.UUID) (form.Application, error)
	Update(app *form.Application) error
	Delete(id uuid.UUID) error
	WithTx(tx *gorm.DB) ApplicationRepo
}

type DBApplicationRepo struct {
	db *gorm.DB
}

func NewApplicationRepo(db *gorm.DB) *DBApplicationRepo {
	return &DBApplicationRepo{db: db}
}

func (r *DBApplicationRepo) Create(app *form.Application) error {
	return r.db.Create(app).Error
}

func (r *DBApplicationRepo) FindAll() ([]form.Application, error) {
	var apps []form.Application
	err := r.db.Order("created_at desc").Find(&apps).Error
	return apps, err
}

func (r *DBApplicationRepo) FindByID(id uuid.UUID) (form.Application, error) {
	var app form.Application
	err := r.db.First(&app, "id = ?", id).Error
	return app, err
}

func (r *DBApplicationRepo) Update(app *form.Application) error {
	return r.db.Save(app).Error
}

func (r *DBApplicationRepo) Delete(id uuid.UUID) error {
	res := r.db.Delete(&form.Application{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *DBApplicationRepo) WithTx(tx *gorm.DB) ApplicationRepo {
	return &DBApplicationRepo{db: tx}
}
