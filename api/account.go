package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campusconnect-inc/campus-api/schema"
	"github.com/campusconnect-inc/campus-api/store"
)

// accountRegister is the API for registering a new account
func (s *Server) accountRegister(c *gin.Context) {
	logger := log.WithField("api", "accountRegister")

	var params struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
		Avatar   string `json:"avatar"`
		Year     string `json:"year"`
		Major    string `json:"major"`
	}

	if err := c.BindJSON(&params); err != nil {
		logger.WithError(err).Error(errorInvalidParameters.Message)
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	if params.Name == "" || params.Email == "" || len(params.Password) < 6 {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	a, err := s.store.CreateAccount(params.Name, params.Email, params.Password, map[string]string{
		"avatar": params.Avatar,
		"year":   params.Year,
		"major":  params.Major,
	})
	if err != nil {
		if err == store.ErrAccountTaken {
			abortWithEncoding(c, http.StatusForbidden, errorAccountTaken)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"result": a,
	})
}

// accountDetail is the API to query the current account
func (s *Server) accountDetail(c *gin.Context) {
	a := c.MustGet("account")
	account, ok := a.(*schema.Account)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result": account,
	})
}

// currentAccount pulls the recognized account out of gin's context
func currentAccount(c *gin.Context) *schema.Account {
	if a, ok := c.MustGet("account").(*schema.Account); ok {
		return a
	}
	return nil
}
