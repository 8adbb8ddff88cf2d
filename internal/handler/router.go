package handler

import "github.com/gin-gonic/gin"

// Handlers bundles every HTTP handler mounted under the API prefix.
type Handlers struct {
	Directory   *DirectoryHandler
	Teachers    *TeacherHandler
	Votes       *VoteHandler
	Ratings     *RatingHandler
	Admin       *AdminHandler
	Preferences *PreferenceHandler
	Metrics     *MetricsHandler
}

// Register mounts the API routes on group.
func Register(group *gin.RouterGroup, h Handlers) {
	group.GET("/classes", h.Directory.Classes)
	group.GET("/classes/:className/teachers", h.Directory.ClassTeachers)
	group.GET("/teachers", h.Directory.Teachers)
	group.GET("/teachers/:id/ratings", h.Teachers.Ratings)
	group.GET("/teachers/:id/summary", h.Teachers.Summary)

	group.GET("/vote", h.Votes.Form)
	group.GET("/vote/:classCode", h.Votes.Form)
	group.POST("/vote", h.Votes.Submit)
	group.POST("/ratings", h.Ratings.SubmitBatch)

	admin := group.Group("/admin")
	admin.GET("/classes/:className/ratings", h.Admin.ClassLeaderboard)
	admin.GET("/totals", h.Admin.Totals)
	admin.GET("/totals/export", h.Admin.Export)
	if h.Metrics != nil {
		admin.GET("/metrics", h.Metrics.Snapshot)
	}

	group.GET("/preferences/language", h.Preferences.Language)
	group.PUT("/preferences/language", h.Preferences.SetLanguage)
	group.GET("/i18n/:lang", h.Preferences.Catalog)
}
