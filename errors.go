package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// apiError is the domain error taxonomy. Every error that reaches the
// transport boundary is serialized as {"errorType": ..., "message": ...};
// anything that is not an apiError defaults to Internal/500.
type apiError struct {
	Type    string
	Message string
	Status  int
}

func (e *apiError) Error() string { return e.Message }

func validationError(msg string) *apiError {
	return &apiError{Type: "Validation", Message: msg, Status: http.StatusBadRequest}
}

func authenticationError(msg string) *apiError {
	return &apiError{Type: "Authentication", Message: msg, Status: http.StatusUnauthorized}
}

func authorizationError(msg string) *apiError {
	return &apiError{Type: "Authorization", Message: msg, Status: http.StatusForbidden}
}

func notFoundError(msg string) *apiError {
	return &apiError{Type: "Not Found", Message: msg, Status: http.StatusNotFound}
}

func conflictError(msg string) *apiError {
	return &apiError{Type: "Conflict", Message: msg, Status: http.StatusConflict}
}

func internalError(msg string) *apiError {
	return &apiError{Type: "Internal Server Error", Message: msg, Status: http.StatusInternalServerError}
}

// abortWithError terminates the request with the error's status, or 500 for
// unclassified errors.
func abortWithError(c *gin.Context, err error) {
	var ae *apiError
	if !errors.As(err, &ae) {
		ae = internalError("Something Went Wrong")
	}
	c.AbortWithStatusJSON(ae.Status, gin.H{"errorType": ae.Type, "message": ae.Message})
}
