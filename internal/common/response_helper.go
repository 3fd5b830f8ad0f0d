package common

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// RespondData 返回成功响应（200）
func RespondData(c *gin.Context, message string, data any) {
	c.JSON(http.StatusOK, MessageResponse{
		Message: message,
		Data:    data,
	})
}

// RespondCreated 返回创建成功响应（201）
func RespondCreated(c *gin.Context, message string, data any) {
	c.JSON(http.StatusCreated, MessageResponse{
		Message: message,
		Data:    data,
	})
}

// RespondList 返回分页列表响应
// pagination 允许各资源携带扩展统计字段，所以是 any
func RespondList(c *gin.Context, message string, items any, pagination any) {
	c.JSON(http.StatusOK, ListResponse{
		Message:    message,
		Data:       items,
		Pagination: pagination,
	})
}

// RespondValidationError 返回验证失败响应（422）
func RespondValidationError(c *gin.Context, ve *ValidationError) {
	c.JSON(http.StatusUnprocessableEntity, ValidationErrorResponse{
		Message: "数据验证失败",
		Errors:  ve.Fields,
	})
}

// RespondNotFound 返回资源不存在响应（404）
func RespondNotFound(c *gin.Context, message string) {
	if message == "" {
		message = "资源不存在"
	}
	c.JSON(http.StatusNotFound, MessageResponse{Message: message})
}

// RespondBadRequest 返回参数错误响应（400）
func RespondBadRequest(c *gin.Context, message string) {
	if message == "" {
		message = "请求参数错误"
	}
	c.JSON(http.StatusBadRequest, MessageResponse{Message: message})
}

// RespondUnauthorized 返回未认证响应（401）
func RespondUnauthorized(c *gin.Context, message string) {
	if message == "" {
		message = "未认证，请先登录"
	}
	c.JSON(http.StatusUnauthorized, MessageResponse{Message: message})
}

// RespondServerError 返回服务器错误响应（500）
func RespondServerError(c *gin.Context, message string) {
	if message == "" {
		message = "服务器内部错误"
	}
	c.JSON(http.StatusInternalServerError, MessageResponse{Message: message})
}

// HandleServiceError 将业务错误映射到 HTTP 响应
func HandleServiceError(c *gin.Context, err error) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		RespondValidationError(c, ve)
		return
	}

	var be *BusinessError
	if errors.As(err, &be) {
		switch be.Code {
		case CodeNotFound, CodeUserNotFound:
			RespondNotFound(c, be.Message)
		case CodeInvalidRequest:
			RespondBadRequest(c, be.Message)
		case CodeUnauthorized, CodeInvalidCredentials, CodeTokenExpired, CodeTokenRevoked:
			RespondUnauthorized(c, be.Message)
		case CodeForbidden:
			c.JSON(http.StatusForbidden, MessageResponse{Message: be.Message})
		case CodeServiceUnavailable:
			c.JSON(http.StatusServiceUnavailable, MessageResponse{Message: be.Message})
		default:
			RespondServerError(c, be.Message)
		}
		return
	}

	RespondServerError(c, "")
}

// AbortWithUnauthorized 中断并返回未认证响应
func AbortWithUnauthorized(c *gin.Context, message string) {
	RespondUnauthorized(c, message)
	c.Abort()
}
