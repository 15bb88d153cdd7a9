package server

import (
	"net/http"
	"strings"

	accountdomain "github.com/aquamitra/aquamitra/internal/account/domain"
	employeedomain "github.com/aquamitra/aquamitra/internal/employee/domain"
	"github.com/gin-gonic/gin"
)

func (s *Server) SignupUser(c *gin.Context) {
	var req accountdomain.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	c.Set("account_id", strings.TrimSpace(req.AccountID))

	if err := s.accountSvc.Register(c.Request.Context(), req); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "registered"})
}

func (s *Server) LoginUser(c *gin.Context) {
	var req accountdomain.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	c.Set("account_id", strings.TrimSpace(req.AccountID))

	account, err := s.accountSvc.Login(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, account)
}

func (s *Server) SignupEmployee(c *gin.Context) {
	var req employeedomain.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	if err := s.employeeSvc.Register(c.Request.Context(), req); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "registered"})
}

func (s *Server) LoginEmployee(c *gin.Context) {
	var req employeedomain.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	employee, err := s.employeeSvc.Login(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, employee)
}
