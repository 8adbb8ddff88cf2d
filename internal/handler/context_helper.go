package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/teacher-eval-api/internal/middleware"
	"github.com/noah-isme/teacher-eval-api/pkg/middleware/language"
)

// requestDone reports whether the client has gone away. Handlers return
// without writing in that case.
func requestDone(c *gin.Context) bool {
	return c.Request.Context().Err() != nil
}

func requestLanguage(c *gin.Context) string {
	return language.Value(c)
}

func cachedMeta(c *gin.Context, start time.Time, cacheHit bool) map[string]interface{} {
	middleware.SetCacheHit(c, cacheHit)
	meta := middleware.ExtractMeta(c)
	if meta == nil {
		meta = map[string]interface{}{}
	}
	meta["processing_time_ms"] = time.Since(start).Milliseconds()
	return meta
}
