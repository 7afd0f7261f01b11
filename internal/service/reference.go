package service

import (
	"github.com/umalmyha/customer-templates/internal/model"
)

// ReferenceService provides read-only reference data
type ReferenceService interface {
	Users() []model.User
	Categories() []model.CategoryInfo
}

type referenceService struct {
	users []model.User
}

// NewReferenceService builds reference service over static users list
func NewReferenceService(users []model.User) ReferenceService {
	return &referenceService{users: users}
}

func (s *referenceService) Users() []model.User {
	users := make([]model.User, len(s.users))
	copy(users, s.users)
	return users
}

func (s *referenceService) Categories() []model.CategoryInfo {
	categories := model.Categories()
	infos := make([]model.CategoryInfo, len(categories))
	for i, c := range categories {
		infos[i] = c.Info()
	}
	return infos
}
