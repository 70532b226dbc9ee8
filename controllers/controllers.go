package controllers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const storeTimeout = 10 * time.Second

// requestContext bounds every store call to the request lifetime plus a
// hard ceiling, matching the store timeout used at connect.
func requestContext(c *gin.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), storeTimeout)
}

// serverError logs the real failure and hides it behind a generic code.
func serverError(c *gin.Context, op string, err error) {
	log.Printf("%s: %v", op, err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "server_error"})
}
