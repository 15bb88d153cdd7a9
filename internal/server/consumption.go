package server

import (
	"net/http"
	"strings"

	consumptiondomain "github.com/aquamitra/aquamitra/internal/consumption/domain"
	"github.com/aquamitra/aquamitra/pkg/db/pagination"
	"github.com/gin-gonic/gin"
)

func (s *Server) IngestConsumption(c *gin.Context) {
	var req consumptiondomain.IngestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	if accountID := strings.TrimSpace(req.AccountID); accountID != "" {
		c.Set("account_id", accountID)
	}

	event, err := s.consumptionSvc.Ingest(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	s.obsMetrics.ObserveIngest()
	c.JSON(http.StatusOK, event)
}

func (s *Server) ListConsumption(c *gin.Context) {
	accountID := c.Param("accountId")
	c.Set("account_id", accountID)

	var page pagination.Pagination
	if err := c.ShouldBindQuery(&page); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.consumptionSvc.ListByAccount(c.Request.Context(), consumptiondomain.ListRequest{
		AccountID:  accountID,
		Pagination: page,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
