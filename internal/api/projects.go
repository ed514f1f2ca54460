package api

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"pinflow/internal/api/metrics"
	"pinflow/internal/domain"
	"pinflow/internal/service"
)

func (s *Server) createProject(c *gin.Context) {
	var input service.CreateProjectInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	project, err := s.projects.Create(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, project)
}

func (s *Server) listProjects(c *gin.Context) {
	projects, err := s.projects.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"projects": projects})
}

func (s *Server) getProject(c *gin.Context) {
	project, err := s.projects.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

func (s *Server) updateProject(c *gin.Context) {
	var upd domain.ProjectUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	project, err := s.projects.Update(c.Request.Context(), c.Param("id"), upd)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

func (s *Server) deleteProject(c *gin.Context) {
	if err := s.projects.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) scrapeProject(c *gin.Context) {
	result, err := s.articles.Scrape(c.Request.Context(), c.Param("id"))
	if err != nil {
		metrics.ScrapesTotal.WithLabelValues("error").Inc()
		respondError(c, err)
		return
	}
	metrics.ScrapesTotal.WithLabelValues("ok").Inc()
	c.JSON(http.StatusOK, result)
}

func (s *Server) pinterestConnectURL(c *gin.Context) {
	authURL, err := s.projects.PinterestAuthURL(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"auth_url": authURL})
}

// pinterestCallback finishes the OAuth dance and sends the browser back
// to the frontend with a query flag describing the outcome.
func (s *Server) pinterestCallback(c *gin.Context) {
	state := c.Query("state")
	code := c.Query("code")
	username := c.Query("username")

	redirect, err := url.Parse(s.opts.FrontendURL)
	if err != nil {
		respondError(c, err)
		return
	}
	q := redirect.Query()

	if errMsg := c.Query("error"); errMsg != "" || code == "" {
		if errMsg == "" {
			errMsg = "missing code"
		}
		q.Set("pinterest_error", errMsg)
		redirect.RawQuery = q.Encode()
		c.Redirect(http.StatusFound, redirect.String())
		return
	}

	if err := s.projects.ConnectPinterest(c.Request.Context(), state, code, username); err != nil {
		s.logger.Warn("pinterest connect failed", "error", err)
		q.Set("pinterest_error", "connection failed")
	} else {
		q.Set("pinterest_connected", "true")
	}
	redirect.RawQuery = q.Encode()
	c.Redirect(http.StatusFound, redirect.String())
}
