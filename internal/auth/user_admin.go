package auth

import (
	"context"
	"strings"

	"contactcenter/internal/common"
)

// DefaultUserPageSize 用户列表默认每页数量
const DefaultUserPageSize = 15

// UserInput 用户管理入参
// 更新时密码留空表示保持原密码
type UserInput struct {
	Name     string `json:"name" form:"name"`
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

// ListUsers 分页查询用户，可按姓名或邮箱模糊搜索
func (s *Service) ListUsers(ctx context.Context, search string, page, pageSize int) ([]*User, int64, error) {
	if page < 1 || pageSize < 1 {
		return nil, 0, common.ErrInvalidPagination
	}

	query := s.GetDBWithContext(ctx).Model(&User{})
	query = s.ApplyKeywordSearch(query, search, []string{"name", "email"})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	users := make([]*User, 0)
	err := s.ApplyPagination(query.Order("name ASC"), page, pageSize).Find(&users).Error
	if err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

// CreateUser 创建用户，邮箱全局唯一
func (s *Service) CreateUser(ctx context.Context, input UserInput) (*User, error) {
	if err := s.validateUserInput(ctx, input, 0, true); err != nil {
		return nil, err
	}

	user := &User{
		Name:     strings.TrimSpace(input.Name),
		Email:    normalizeEmail(input.Email),
		IsActive: true,
	}
	if err := user.SetPassword(input.Password); err != nil {
		return nil, err
	}
	if err := s.BaseService.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateUser 更新用户资料，密码留空则不变
func (s *Service) UpdateUser(ctx context.Context, id uint64, input UserInput) (*User, error) {
	user, err := s.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.validateUserInput(ctx, input, id, false); err != nil {
		return nil, err
	}

	user.Name = strings.TrimSpace(input.Name)
	user.Email = normalizeEmail(input.Email)
	if input.Password != "" {
		if err := user.SetPassword(input.Password); err != nil {
			return nil, err
		}
	}
	if err := s.BaseService.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// ToggleUser 切换用户启用状态
// 用户被处理记录引用，不做物理删除；停用后无法登录
func (s *Service) ToggleUser(ctx context.Context, id uint64) (*User, error) {
	user, err := s.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	user.IsActive = !user.IsActive
	if err := s.BaseService.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// validateUserInput 校验用户入参
// requirePassword 为 true 时密码必填（创建场景）
func (s *Service) validateUserInput(ctx context.Context, input UserInput, selfID uint64, requirePassword bool) error {
	ve := common.NewValidationError()

	if strings.TrimSpace(input.Name) == "" {
		ve.Add("name", "姓名不能为空")
	}

	email := normalizeEmail(input.Email)
	if email == "" {
		ve.Add("email", "邮箱不能为空")
	} else {
		taken, err := s.Exists(ctx, &User{}, "email = ? AND id <> ?", email, selfID)
		if err != nil {
			return err
		}
		if taken {
			ve.Add("email", "邮箱已被使用")
		}
	}

	if requirePassword && input.Password == "" {
		ve.Add("password", "密码不能为空")
	}

	if ve.HasErrors() {
		return ve
	}
	return nil
}

// normalizeEmail 邮箱统一小写去空白
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
