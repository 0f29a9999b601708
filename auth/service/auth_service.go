package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	authpkg "github.com/atmaprakash0998/rental-app-backend/auth"
	"github.com/atmaprakash0998/rental-app-backend/entity"
	"github.com/atmaprakash0998/rental-app-backend/permission"
)

type authService struct {
	repo   authpkg.Repository
	secret string
}

// NewAuthService constructs an auth Service signing tokens with the given
// secret.
func NewAuthService(repo authpkg.Repository, secret string) authpkg.Service {
	return &authService{repo: repo, secret: secret}
}

func (s *authService) Register(ctx context.Context, req authpkg.RegisterRequest) error {
	existing, err := s.repo.GetUserByEmail(ctx, req.Email, string(req.Type))
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	if existing != nil {
		return authpkg.ErrEmailTaken
	}

	hashed, err := authpkg.HashPassword(req.Password)
	if err != nil {
		return err
	}
	u := &entity.User{
		Type:     string(req.Type),
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: hashed,
		Status:   entity.UserActive,
	}
	if _, err := s.repo.CreateUser(ctx, u); err != nil {
		logrus.WithError(err).WithField("email", req.Email).Error("user registration failed")
		return err
	}
	return nil
}

func (s *authService) Login(ctx context.Context, email, password string, role permission.Role) (*authpkg.LoginResult, error) {
	user, err := s.repo.GetUserByEmail(ctx, email, string(role))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, authpkg.ErrInvalidCredentials
		}
		return nil, err
	}
	if !authpkg.CheckPassword(password, user.Password) {
		return nil, authpkg.ErrInvalidCredentials
	}
	if user.Status != entity.UserActive {
		return nil, authpkg.ErrAccountNotActive
	}

	token, err := authpkg.SignToken(s.secret, user.ID.String(), user.Type, authpkg.TokenTTL)
	if err != nil {
		return nil, err
	}

	res := &authpkg.LoginResult{AccessToken: token, User: user}
	// Base users get no permission list in the response; owners and admins
	// do, so frontends can gate their UI without another round trip.
	if permission.Role(user.Type) != permission.RoleUser {
		res.Permissions = permission.ForRole(user.Type)
	}
	return res, nil
}

func (s *authService) GetProfile(ctx context.Context, userID uuid.UUID, role string) (*entity.User, error) {
	user, err := s.repo.GetActiveUserByID(ctx, userID, role)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, authpkg.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *authService) UpdateProfile(ctx context.Context, userID uuid.UUID, role string, upd authpkg.ProfileUpdate) (*entity.User, error) {
	user, err := s.GetProfile(ctx, userID, role)
	if err != nil {
		return nil, err
	}
	if upd.Name != nil {
		user.Name = *upd.Name
	}
	if upd.Phone != nil {
		user.Phone = *upd.Phone
	}
	if upd.SubType != nil {
		user.SubType = upd.SubType
	}
	if upd.AdditionalData != nil {
		user.AdditionalData = upd.AdditionalData
	}
	now := time.Now()
	by := userID.String()
	user.ModifiedDate = &now
	user.ModifiedBy = &by
	return s.repo.UpdateUser(ctx, user)
}

func (s *authService) ChangePassword(ctx context.Context, userID uuid.UUID, role string, current, newPassword string) error {
	user, err := s.GetProfile(ctx, userID, role)
	if err != nil {
		return err
	}
	if !authpkg.CheckPassword(current, user.Password) {
		return authpkg.ErrWrongPassword
	}
	hashed, err := authpkg.HashPassword(newPassword)
	if err != nil {
		return err
	}
	now := time.Now()
	by := userID.String()
	user.Password = hashed
	user.ModifiedDate = &now
	user.ModifiedBy = &by
	_, err = s.repo.UpdateUser(ctx, user)
	return err
}
