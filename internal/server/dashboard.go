package server

import (
	"net/http"

	dashboarddomain "github.com/aquamitra/aquamitra/internal/dashboard/domain"
	"github.com/gin-gonic/gin"
)

func (s *Server) GetHouseholdDashboard(c *gin.Context) {
	accountID := c.Param("accountId")
	c.Set("account_id", accountID)

	view, err := s.dashboardSvc.BuildHouseholdView(c.Request.Context(), dashboarddomain.HouseholdRequest{
		AccountID: accountID,
		Timezone:  c.GetHeader("Timezone"),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

func (s *Server) GetJurisdictionDashboard(c *gin.Context) {
	view, err := s.dashboardSvc.BuildJurisdictionView(c.Request.Context(), dashboarddomain.JurisdictionRequest{
		EmployeeID:  c.Param("employeeId"),
		City:        c.Query("city"),
		Granularity: c.Query("granularity"),
		Timezone:    c.GetHeader("Timezone"),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}
