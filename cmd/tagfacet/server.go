package main

import (
	"net/http"
	"tagfacet/internal/search"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type photosResponse struct {
	Photos    []search.ResultItem       `json:"photos"`
	Total     int                       `json:"total"`
	Exhausted bool                      `json:"exhausted"`
	Criteria  []search.DisplayCriterion `json:"criteria"`
}

// newRouter exposes the watched session read-only alongside Prometheus
// metrics.
func newRouter(s *search.Session, reg *prometheus.Registry) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "session": s.ID()})
	})

	router.GET("/photos", func(c *gin.Context) {
		c.JSON(http.StatusOK, photosResponse{
			Photos:    s.Photos(),
			Total:     s.Total(),
			Exhausted: s.AllPhotosDisplayed(),
			Criteria:  s.CriteriaForDisplay(),
		})
	})

	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})))
	return router
}
