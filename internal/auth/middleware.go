package auth

import (
	"github.com/gin-gonic/gin"

	"contactcenter/internal/common"
)

// ContextKey 上下文键类型
type ContextKey string

// UserContextKey 用户上下文键
const UserContextKey ContextKey = "user"

// UserContext 已认证用户上下文
type UserContext struct {
	UserID uint64
	Name   string
	Token  string
}

// Middleware JWT 认证中间件
func Middleware(jwtService *JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			common.AbortWithUnauthorized(c, "缺少认证令牌")
			return
		}

		token := ExtractTokenFromBearer(authHeader)
		if token == "" {
			common.AbortWithUnauthorized(c, "无效的令牌格式")
			return
		}

		claims, err := jwtService.ValidateToken(c.Request.Context(), token)
		if err != nil {
			common.AbortWithUnauthorized(c, "令牌验证失败")
			return
		}

		if claims.TokenType != "access" {
			common.AbortWithUnauthorized(c, "令牌类型错误")
			return
		}

		c.Set(string(UserContextKey), &UserContext{
			UserID: claims.UserID,
			Name:   claims.Name,
			Token:  token,
		})

		c.Next()
	}
}

// GetUserContext 从 Gin Context 获取用户上下文
func GetUserContext(c *gin.Context) (*UserContext, bool) {
	userCtx, exists := c.Get(string(UserContextKey))
	if !exists {
		return nil, false
	}

	ctx, ok := userCtx.(*UserContext)
	return ctx, ok
}
