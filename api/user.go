package api

import (
	"net/http"
	"time"

	db "github.com/banachtech/vasicek/db/sqlc"
	"github.com/banachtech/vasicek/util"
	"github.com/gin-gonic/gin"
)

type createUserRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type createUserResponse struct {
	Email     string    `json:"email"`
	APIKey    string    `json:"api_key"`
	ExpiredAt time.Time `json:"expired_at"`
}

// createUser issues a new api key. Only its bcrypt hash is stored.
func (server *Server) createUser(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	prefix, secret, err := util.GenerateToken()
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, errorResponse(err))
		return
	}
	apiKey := prefix + "." + secret
	hashed, err := util.HashAPIKey(apiKey, 0)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	months := server.config.Server.KeyValidityMonths
	if months <= 0 {
		months = 6
	}
	user, err := server.store.CreateUser(c, db.CreateUserParams{
		Prefix:       prefix,
		EmailAddress: req.Email,
		Token:        hashed,
		ExpiredAt:    time.Now().AddDate(0, months, 0),
	})
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, createUserResponse{
		Email:     user.EmailAddress,
		APIKey:    apiKey,
		ExpiredAt: user.ExpiredAt,
	})
}
