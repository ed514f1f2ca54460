package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pinflow/internal/domain"
)

func (s *Server) listArticles(c *gin.Context) {
	archived := c.Query("view") == "archived"
	sortBy := domain.ArticleSortField(c.Query("sort"))
	descending := c.DefaultQuery("order", "asc") == "desc"

	articles, err := s.articles.List(c.Request.Context(), c.Param("id"), archived, sortBy, descending)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"articles": articles})
}

func (s *Server) addArticle(c *gin.Context) {
	var body struct {
		URL string `json:"url"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	article, err := s.articles.AddManual(c.Request.Context(), c.Param("id"), body.URL)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, article)
}

func (s *Server) updateArticle(c *gin.Context) {
	var upd domain.ArticleUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	article, err := s.articles.Update(c.Request.Context(), c.Param("id"), upd)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, article)
}

func (s *Server) archiveArticle(c *gin.Context) {
	if err := s.articles.Archive(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) restoreArticle(c *gin.Context) {
	if err := s.articles.Restore(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
