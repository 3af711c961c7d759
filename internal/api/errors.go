package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/smartdiet-sl/smartdiet/backend/internal/service"
)

const (
	llmUnavailableHint     = "Set OPENAI_API_KEY (diet plans) or GROQ_API_KEY (chatbot) and restart the server."
	storageUnavailableHint = "Set S3_BUCKET_NAME and AWS credentials to enable image uploads."
)

// respondError writes the status and body for err. Error details are only
// exposed while gin runs in debug mode, i.e. in development.
func respondError(c *gin.Context, err error) {
	status, body := errorResponse(err)
	if status >= http.StatusInternalServerError {
		logrus.WithFields(logrus.Fields{
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
			"status": status,
		}).WithError(err).Error("request failed")
	}
	if gin.IsDebugging() {
		body["details"] = err.Error()
	}
	c.AbortWithStatusJSON(status, body)
}

func errorResponse(err error) (int, gin.H) {
	var validationErr *service.ValidationError
	var upstreamErr *service.UpstreamError

	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest, gin.H{"error": validationErr.Error(), "field": validationErr.Field}
	case errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized, gin.H{"error": "Invalid email or password"}
	case errors.Is(err, service.ErrUnauthorized):
		return http.StatusUnauthorized, gin.H{"error": "Not authorized"}
	case errors.Is(err, service.ErrForbidden):
		return http.StatusForbidden, gin.H{"error": "Not authorized to access this resource"}
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound, gin.H{"error": "Resource not found"}
	case errors.Is(err, service.ErrConflict):
		return http.StatusConflict, gin.H{"error": "Resource already exists"}
	case errors.Is(err, service.ErrLLMUnavailable):
		return http.StatusServiceUnavailable, gin.H{"error": "AI service is not configured", "hint": llmUnavailableHint}
	case errors.Is(err, service.ErrStorageUnavailable):
		return http.StatusBadRequest, gin.H{"error": "Image upload is not configured", "hint": storageUnavailableHint}
	case errors.As(err, &upstreamErr):
		switch upstreamErr.StatusCode {
		case http.StatusUnauthorized:
			return http.StatusUnauthorized, gin.H{"error": "AI provider rejected the configured API key"}
		case http.StatusTooManyRequests:
			return http.StatusTooManyRequests, gin.H{"error": "AI provider rate limit exceeded, please try again later"}
		}
		return http.StatusBadGateway, gin.H{"error": "AI provider request failed"}
	case errors.Is(err, service.ErrEmptyCompletion):
		return http.StatusBadGateway, gin.H{"error": "AI provider returned an empty response"}
	}
	return http.StatusInternalServerError, gin.H{"error": "Internal Server Error"}
}

// bindError answers a failed ShouldBind call with 400.
func bindError(c *gin.Context, err error) {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error": fe.Field() + " is invalid (" + fe.Tag() + ")",
			"field": fe.Field(),
		})
		return
	}
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
}
