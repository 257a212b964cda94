package middleware

import (
	"net/http"
	"time"

	userRepo "carebook/database/repository/user"
	"carebook/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// JWTAuthUserMiddleware authenticates booking clients. The token hash is
// checked against the auth cache first, then against the stored hash on a
// miss, so a fresh sign-in elsewhere revokes older tokens.
func JWTAuthUserMiddleware(users userRepo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		userID, role, err := utils.ExtractIdentityFromToken(tokenString)
		if err != nil || userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		if role != "user" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "User access required"})
			return
		}

		ctx := c.Request.Context()
		computedHash := utils.HashToken(tokenString)
		cacheKey := utils.AuthCachePrefix + "user:" + userID

		if cache := utils.AuthCacheClient; cache != nil {
			cachedHash, err := cache.Get(ctx, cacheKey).Result()
			if err == nil {
				if cachedHash != computedHash {
					c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token mismatch"})
					return
				}
				_ = cache.Expire(ctx, cacheKey, time.Hour).Err()
				c.Set("userID", userID)
				c.Next()
				return
			}
			if err != redis.Nil {
				utils.GetLogger().Warn("auth cache lookup failed, falling back to DB", zap.Error(err))
			}
		}

		usr, err := users.GetByID(ctx, userID)
		if err != nil || usr == nil || usr.TokenHash == "" || usr.TokenHash != computedHash {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication error"})
			return
		}

		if cache := utils.AuthCacheClient; cache != nil {
			_ = cache.Set(ctx, cacheKey, computedHash, time.Hour).Err()
		}

		c.Set("userID", userID)
		c.Next()
	}
}
