package server

import (
	"net/http"
	"strconv"
	"strings"

	complaintdomain "github.com/aquamitra/aquamitra/internal/complaint/domain"
	"github.com/gin-gonic/gin"
)

func (s *Server) CreateComplaint(c *gin.Context) {
	var req complaintdomain.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	if accountID := strings.TrimSpace(req.AccountID); accountID != "" {
		c.Set("account_id", accountID)
	}

	complaint, err := s.complaintSvc.Create(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, complaint)
}

func (s *Server) ListComplaints(c *gin.Context) {
	accountID := c.Param("accountId")
	c.Set("account_id", accountID)

	complaints, err := s.complaintSvc.ListByAccount(c.Request.Context(), accountID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"complaints": complaints})
}

func (s *Server) UpdateComplaintStatus(c *gin.Context) {
	complaintID, err := strconv.ParseInt(c.Param("complaintId"), 10, 64)
	if err != nil {
		AbortWithError(c, newValidationError("complaint_id", "invalid_complaint_id", "invalid value"))
		return
	}

	var body struct {
		Status complaintdomain.Status `json:"status"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	complaint, err := s.complaintSvc.UpdateStatus(c.Request.Context(), complaintdomain.UpdateStatusRequest{
		ComplaintID: complaintID,
		Status:      body.Status,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, complaint)
}
