package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AnonymousActor 未携带有效身份时的审计主体
const AnonymousActor = "anonymous"

const actorKey = "actor"

// Identity 身份边界中间件
// 设计说明：
// 1. 认证提供方在服务范围之外；网关只在边界解析Bearer Token的
//    subject作为审计主体（createdBy/modifiedBy）
// 2. Token缺失或校验失败一律降级为anonymous，不拒绝请求——
//    鉴权决策属于外部协作方，本服务不做
type Identity struct {
	secret []byte
}

// NewIdentity 创建身份中间件
func NewIdentity(jwtSecret string) *Identity {
	return &Identity{secret: []byte(jwtSecret)}
}

// Resolve 解析调用者身份并注入Context
func (m *Identity) Resolve() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(actorKey, m.actorFrom(c))
		c.Next()
	}
}

func (m *Identity) actorFrom(c *gin.Context) string {
	auth := c.GetHeader("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		return AnonymousActor
	}
	raw := strings.TrimPrefix(auth, "Bearer ")

	token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return AnonymousActor
	}

	sub, err := token.Claims.GetSubject()
	if err != nil || sub == "" {
		return AnonymousActor
	}
	return sub
}

// GetActor 从Context取当前调用者身份
func GetActor(c *gin.Context) string {
	if actor, ok := c.Get(actorKey); ok {
		if s, ok := actor.(string); ok && s != "" {
			return s
		}
	}
	return AnonymousActor
}
