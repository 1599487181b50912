package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/harsheel55/Auth-System/internals/verification"

	"github.com/gin-gonic/gin"
)

// domainErrors are surfaced to the caller as client errors with their own
// message. Everything else is an unexpected or dependency failure and is
// reported generically.
var domainErrors = []error{
	verification.ErrValidation,
	verification.ErrConflict,
	verification.ErrNotFound,
	verification.ErrInvalidCode,
	verification.ErrInvalidCredentials,
	verification.ErrNotVerified,
}

func respondError(c *gin.Context, err error) {
	for _, domain := range domainErrors {
		if errors.Is(err, domain) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	log.Printf("%s %s: %v", c.Request.Method, c.FullPath(), err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
}
