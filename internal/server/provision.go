package server

import (
	"net/http"
	"strings"

	accountdomain "github.com/aquamitra/aquamitra/internal/account/domain"
	employeedomain "github.com/aquamitra/aquamitra/internal/employee/domain"
	"github.com/gin-gonic/gin"
)

// Provisioning endpoints create the unclaimed records residents and officers
// later sign up against.

func (s *Server) ProvisionAccount(c *gin.Context) {
	var req accountdomain.ProvisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	c.Set("account_id", strings.TrimSpace(req.AccountID))

	account, err := s.accountSvc.Provision(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, account)
}

func (s *Server) ProvisionEmployee(c *gin.Context) {
	var req employeedomain.ProvisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	employee, err := s.employeeSvc.Provision(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, employee)
}
