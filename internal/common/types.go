package common

// ============================================================================
// 通用请求类型
// ============================================================================

// PaginationRequest 分页请求参数
type PaginationRequest struct {
	Page     int `json:"page" form:"page" binding:"omitempty,min=1"`         // 页码，从1开始
	PageSize int `json:"per_page" form:"per_page" binding:"omitempty,min=1"` // 每页数量
}

// Normalize 填充默认值
// defaultSize: 未指定每页数量时的默认值
func (p *PaginationRequest) Normalize(defaultSize int) {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = defaultSize
	}
	if p.PageSize > 100 {
		p.PageSize = 100
	}
}

// GetOffset 计算数据库查询的偏移量
func (p PaginationRequest) GetOffset() int {
	if p.Page < 1 {
		return 0
	}
	return (p.Page - 1) * p.PageSize
}

// ============================================================================
// 通用响应类型
// ============================================================================

// MessageResponse 单对象响应格式
type MessageResponse struct {
	Message string `json:"message"`        // 提示信息
	Data    any    `json:"data,omitempty"` // 响应数据
}

// ListResponse 分页列表响应格式
type ListResponse struct {
	Message    string `json:"message"`    // 提示信息
	Data       any    `json:"data"`       // 数据列表
	Pagination any    `json:"pagination"` // 分页信息（各资源可携带扩展统计字段）
}

// PaginationMeta 分页元信息
type PaginationMeta struct {
	CurrentPage int   `json:"current_page"` // 当前页码
	LastPage    int   `json:"last_page"`    // 总页数
	PerPage     int   `json:"per_page"`     // 每页数量
	Total       int64 `json:"total"`        // 总记录数
}

// NewPaginationMeta 创建分页元信息
func NewPaginationMeta(page, pageSize int, total int64) PaginationMeta {
	lastPage := 1
	if pageSize > 0 {
		lastPage = int((total + int64(pageSize) - 1) / int64(pageSize))
	}
	if lastPage < 1 {
		lastPage = 1
	}
	return PaginationMeta{
		CurrentPage: page,
		LastPage:    lastPage,
		PerPage:     pageSize,
		Total:       total,
	}
}

// ResourceMeta 资源列表分页元信息
type ResourceMeta struct {
	CurrentPage int   `json:"current_page"` // 当前页码
	TotalPages  int   `json:"total_pages"`  // 总页数
	PerPage     int   `json:"per_page"`     // 每页数量
	Total       int64 `json:"total"`        // 总记录数
}

// NewResourceMeta 创建资源列表分页元信息
func NewResourceMeta(page, pageSize int, total int64) ResourceMeta {
	totalPages := 1
	if pageSize > 0 {
		totalPages = int((total + int64(pageSize) - 1) / int64(pageSize))
	}
	if totalPages < 1 {
		totalPages = 1
	}
	return ResourceMeta{
		CurrentPage: page,
		TotalPages:  totalPages,
		PerPage:     pageSize,
		Total:       total,
	}
}

// ValidationErrorResponse 验证失败响应格式（422）
type ValidationErrorResponse struct {
	Message string              `json:"message"` // 提示信息
	Errors  map[string][]string `json:"errors"`  // 字段 -> 错误消息列表
}

// ============================================================================
// 业务状态码定义
// ============================================================================

const (
	// 成功状态码
	CodeSuccess = 0

	// 通用错误码 (1000-1999)
	CodeInvalidRequest     = 1000 // 请求参数错误
	CodeUnauthorized       = 1001 // 未授权
	CodeForbidden          = 1002 // 禁止访问
	CodeNotFound           = 1003 // 资源不存在
	CodeValidationFailed   = 1004 // 数据验证失败
	CodeInternalError      = 1005 // 内部错误
	CodeServiceUnavailable = 1006 // 服务不可用

	// 认证相关错误码 (2000-2099)
	CodeUserNotFound       = 2000 // 用户不存在
	CodeUserDisabled       = 2001 // 用户已禁用
	CodeInvalidCredentials = 2002 // 凭证无效
	CodeTokenExpired       = 2003 // 令牌已过期
	CodeTokenRevoked       = 2004 // 令牌已吊销
)

// ErrorMessages 错误码对应的默认消息
var ErrorMessages = map[int]string{
	CodeSuccess:            "操作成功",
	CodeInvalidRequest:     "请求参数错误",
	CodeUnauthorized:       "未授权，请先登录",
	CodeForbidden:          "无权限访问",
	CodeNotFound:           "资源不存在",
	CodeValidationFailed:   "数据验证失败",
	CodeInternalError:      "系统内部错误",
	CodeServiceUnavailable: "服务暂不可用",

	CodeUserNotFound:       "用户不存在",
	CodeUserDisabled:       "用户已禁用",
	CodeInvalidCredentials: "用户名或密码错误",
	CodeTokenExpired:       "令牌已过期",
	CodeTokenRevoked:       "令牌已吊销",
}

// GetErrorMessage 获取错误码对应的消息
func GetErrorMessage(code int) string {
	if msg, ok := ErrorMessages[code]; ok {
		return msg
	}
	return "未知错误"
}

// ============================================================================
// 通用业务错误类型
// ============================================================================

// BusinessError 业务错误
type BusinessError struct {
	Code    int    // 错误码
	Message string // 错误信息
}

// Error 实现error接口
func (e *BusinessError) Error() string {
	return e.Message
}

// NewBusinessError 创建业务错误
func NewBusinessError(code int, message string) *BusinessError {
	if message == "" {
		message = GetErrorMessage(code)
	}
	return &BusinessError{
		Code:    code,
		Message: message,
	}
}

// 常用业务错误哨兵值
var (
	// ErrNotFound 资源不存在
	ErrNotFound = NewBusinessError(CodeNotFound, "资源不存在")
	// ErrInvalidPagination 分页参数无效（page 或 page_size 小于 1）
	ErrInvalidPagination = NewBusinessError(CodeInvalidRequest, "分页参数无效")
	// ErrStorageUnavailable 存储暂不可用
	ErrStorageUnavailable = NewBusinessError(CodeServiceUnavailable, "存储暂不可用")
)

// ValidationError 数据验证错误，按字段聚合多条消息
type ValidationError struct {
	Fields map[string][]string
}

// Error 实现error接口
func (e *ValidationError) Error() string {
	return "数据验证失败"
}

// NewValidationError 创建验证错误
func NewValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string][]string)}
}

// Add 追加一条字段错误
func (e *ValidationError) Add(field, message string) {
	e.Fields[field] = append(e.Fields[field], message)
}

// HasErrors 是否存在字段错误
func (e *ValidationError) HasErrors() bool {
	return len(e.Fields) > 0
}
