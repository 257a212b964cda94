package middleware

import (
	"net/http"
	"time"

	providerRepo "carebook/database/repository/provider"
	"carebook/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// JWTAuthProviderMiddleware authenticates providers for calendar and profile
// management routes. Same cache-then-DB hash check as the user middleware.
func JWTAuthProviderMiddleware(providers providerRepo.ProviderRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		providerID, role, err := utils.ExtractIdentityFromToken(tokenString)
		if err != nil || providerID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		if role != "provider" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Provider access required"})
			return
		}

		ctx := c.Request.Context()
		computedHash := utils.HashToken(tokenString)
		cacheKey := utils.AuthCachePrefix + "provider:" + providerID

		if cache := utils.AuthCacheClient; cache != nil {
			cachedHash, err := cache.Get(ctx, cacheKey).Result()
			if err == nil {
				if cachedHash != computedHash {
					c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token mismatch"})
					return
				}
				_ = cache.Expire(ctx, cacheKey, time.Hour).Err()
				c.Set("providerID", providerID)
				c.Next()
				return
			}
			if err != redis.Nil {
				utils.GetLogger().Warn("auth cache lookup failed, falling back to DB", zap.Error(err))
			}
		}

		prov, err := providers.GetByID(ctx, providerID)
		if err != nil || prov == nil || prov.TokenHash == "" || prov.TokenHash != computedHash {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication error"})
			return
		}

		if cache := utils.AuthCacheClient; cache != nil {
			_ = cache.Set(ctx, cacheKey, computedHash, time.Hour).Err()
		}

		c.Set("providerID", providerID)
		c.Next()
	}
}
