package services

import (
	"errors"

	"hostal-backend/models"

	"gorm.io/gorm"
)

type UserService struct {
	DB   *gorm.DB
	Auth *AuthService
}

func NewUserService(db *gorm.DB, auth *AuthService) *UserService {
	return &UserService{DB: db, Auth: auth}
}

// Create registers a user with a hashed password. Role defaults to
// recepcionista and must be one of the typed roles.
func (s *UserService) Create(username, email, password string, role models.UserRole) (*models.User, error) {
	if role == "" {
		role = models.RoleReceptionist
	}
	if !models.ValidUserRole(role) {
		return nil, validationf("Rol inválido: %q.", role)
	}

	var count int64
	if err := s.DB.Model(&models.User{}).Where("username = ?", username).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, &ValidationError{Reason: "Ya existe un usuario con ese username."}
	}

	hash, err := s.Auth.HashPassword(password)
	if err != nil {
		return nil, err
	}
	user := models.User{
		Username: username,
		Email:    email,
		Password: hash,
		Role:     role,
		IsActive: true,
	}
	if err := s.DB.Create(&user).Error; err != nil {
		if isDuplicateErr(err) {
			return nil, &ValidationError{Reason: "Ya existe un usuario con ese username."}
		}
		return nil, err
	}
	return &user, nil
}

func (s *UserService) GetByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.DB.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *UserService) List() ([]models.User, error) {
	users := []models.User{}
	if err := s.DB.Order("username").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// Update changes email, role and active flag. Password changes go through a
// fresh hash only when a new password is supplied.
func (s *UserService) Update(id uint, email, password string, role models.UserRole, isActive *bool) (*models.User, error) {
	user, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	updates := map[string]interface{}{}
	if email != "" {
		updates["email"] = email
	}
	if role != "" {
		if !models.ValidUserRole(role) {
			return nil, validationf("Rol inválido: %q.", role)
		}
		updates["role"] = role
	}
	if password != "" {
		hash, err := s.Auth.HashPassword(password)
		if err != nil {
			return nil, err
		}
		updates["password"] = hash
	}
	if isActive != nil {
		updates["is_active"] = *isActive
	}
	if len(updates) > 0 {
		if err := s.DB.Model(user).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return user, nil
}

func (s *UserService) Delete(id uint) error {
	user, err := s.GetByID(id)
	if err != nil {
		return err
	}
	return s.DB.Delete(user).Error
}
