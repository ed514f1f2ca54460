package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pinflow/internal/api/metrics"
	"pinflow/internal/domain"
	"pinflow/internal/service"
)

func (s *Server) createPins(c *gin.Context) {
	var input service.CreatePinsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	pins, err := s.pins.Create(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"pins": pins})
}

func (s *Server) listPins(c *gin.Context) {
	tab := domain.StatusTab(c.DefaultQuery("tab", string(domain.TabAll)))

	list, err := s.pins.List(c.Request.Context(), c.Param("id"), tab)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (s *Server) getPin(c *gin.Context) {
	pin, err := s.pins.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pin)
}

func (s *Server) updatePin(c *gin.Context) {
	var upd domain.PinUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	pin, err := s.pins.Update(c.Request.Context(), c.Param("id"), upd)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pin)
}

func (s *Server) setPinStatus(c *gin.Context) {
	var body struct {
		Status domain.PinStatus `json:"status"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	pin, err := s.pins.SetStatus(c.Request.Context(), c.Param("id"), body.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pin)
}

func (s *Server) generateMetadata(c *gin.Context) {
	var body struct {
		Feedback string `json:"feedback"`
	}
	// The body is optional; generation without feedback is the common
	// case.
	_ = c.ShouldBindJSON(&body)

	pin, err := s.pins.GenerateMetadata(c.Request.Context(), c.Param("id"), body.Feedback)
	if err != nil {
		metrics.MetadataGenerationsTotal.WithLabelValues("error").Inc()
		respondError(c, err)
		return
	}
	metrics.MetadataGenerationsTotal.WithLabelValues("ok").Inc()
	c.JSON(http.StatusOK, pin)
}

func (s *Server) listGenerations(c *gin.Context) {
	generations, err := s.pins.Generations(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"generations": generations})
}

func (s *Server) restoreGeneration(c *gin.Context) {
	pin, err := s.pins.RestoreGeneration(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pin)
}

func (s *Server) publishPin(c *gin.Context) {
	pin, err := s.pins.Publish(c.Request.Context(), c.Param("id"))
	if err != nil {
		metrics.PinsPublishedTotal.WithLabelValues("error").Inc()
		respondError(c, err)
		return
	}
	metrics.PinsPublishedTotal.WithLabelValues("ok").Inc()
	c.JSON(http.StatusOK, pin)
}

func (s *Server) bulkSchedule(c *gin.Context) {
	var input service.BulkScheduleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	n, err := s.pins.BulkSchedule(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"scheduled": n})
}

func (s *Server) bulkSetStatus(c *gin.Context) {
	var body struct {
		PinIDs []string         `json:"pin_ids"`
		Status domain.PinStatus `json:"status"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	n, err := s.pins.BulkSetStatus(c.Request.Context(), body.PinIDs, body.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": n})
}

func (s *Server) bulkDelete(c *gin.Context) {
	var body struct {
		PinIDs []string `json:"pin_ids"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	n, err := s.pins.BulkDelete(c.Request.Context(), body.PinIDs)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": n})
}
