package auth

import (
	"context"
	"errors"
	"strings"

	"contactcenter/internal/common"

	"gorm.io/gorm"
)

// ErrInvalidCredentials 登录凭证无效
var ErrInvalidCredentials = common.NewBusinessError(common.CodeInvalidCredentials, "用户名或密码错误")

// Service 认证服务
type Service struct {
	*common.BaseService
	jwt *JWTService
}

// NewService 创建认证服务
func NewService(db *gorm.DB, jwtService *JWTService) *Service {
	return &Service{
		BaseService: common.NewBaseService(db),
		jwt:         jwtService,
	}
}

// LoginInput 登录入参
type LoginInput struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

// Login 凭证登录，成功后返回令牌对和用户信息
func (s *Service) Login(ctx context.Context, input LoginInput) (*TokenPair, *User, error) {
	if err := validateLoginInput(input); err != nil {
		return nil, nil, err
	}

	var user User
	err := s.GetDBWithContext(ctx).
		Where("email = ? AND is_active = ?", strings.ToLower(strings.TrimSpace(input.Email)), true).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrInvalidCredentials
		}
		return nil, nil, err
	}

	if !user.CheckPassword(input.Password) {
		return nil, nil, ErrInvalidCredentials
	}

	pair, err := s.jwt.GenerateTokenPair(user.ID, user.Name)
	if err != nil {
		return nil, nil, err
	}
	return pair, &user, nil
}

// Logout 注销当前令牌
func (s *Service) Logout(ctx context.Context, token string) error {
	return s.jwt.InvalidateToken(ctx, token)
}

// Refresh 用刷新令牌换取新的令牌对
func (s *Service) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	pair, err := s.jwt.RefreshAccessToken(ctx, refreshToken)
	if err != nil {
		return nil, common.NewBusinessError(common.CodeTokenExpired, "刷新令牌无效或已过期")
	}
	return pair, nil
}

// GetUser 查询用户信息
func (s *Service) GetUser(ctx context.Context, id uint64) (*User, error) {
	var user User
	if err := s.FindByID(ctx, &user, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// validateLoginInput 校验登录入参
func validateLoginInput(input LoginInput) error {
	ve := common.NewValidationError()

	if strings.TrimSpace(input.Email) == "" {
		ve.Add("email", "邮箱不能为空")
	}
	if input.Password == "" {
		ve.Add("password", "密码不能为空")
	}

	if ve.HasErrors() {
		return ve
	}
	return nil
}
