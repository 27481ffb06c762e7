package implementation

import (
	"context"
	"errors"

	"notes-api-be/internal/entity"
	"notes-api-be/internal/model"
	"notes-api-be/internal/pkg/apperror"
	"notes-api-be/internal/repository/contract"
	"notes-api-be/internal/repository/specification"

	"gorm.io/gorm"
)

type UserRepositoryImpl struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) contract.UserRepository {
	return &UserRepositoryImpl{db: db}
}

func (r *UserRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *UserRepositoryImpl) Create(ctx context.Context, user *entity.User) error {
	m := &model.User{Id: user.Id, Login: user.Login}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return apperror.NewStorageFailure(err)
	}
	user.Id = m.Id
	return nil
}

func (r *UserRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	var m model.User
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.User{}), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperror.NewStorageFailure(err)
	}
	return &entity.User{Id: m.Id, Login: m.Login}, nil
}

func (r *UserRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.User{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, apperror.NewStorageFailure(err)
	}
	return count, nil
}
