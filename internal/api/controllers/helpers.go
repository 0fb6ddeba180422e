package controllers

import (
	"github.com/gin-gonic/gin"

	"solotrip/pkg/middleware"
)

func currentUser(c *gin.Context) (userID, userName string) {
	return c.GetString(middleware.ContextUserID), c.GetString(middleware.ContextUserName)
}
