package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/knobase/site-api/internal/log"
)

func GetLogger(ctx *RequestContext) *log.Logger {
	if logger := ctx.Request.Context().Value(log.LoggerKeyForContext); logger != nil {
		if l, ok := logger.(*log.Logger); ok {
			return l
		}
	}

	baseLogger := log.NewLoggerWithJSONOutput()
	return baseLogger.WithCorrelationID(ctx.Request.Context())
}

// OKResult writes the handler's body as-is with a 200.
func OKResult(body any) *ServiceResult {
	return &ServiceResult{
		StatusCode: http.StatusOK,
		Body:       body,
	}
}

func CreatedResult(body any) *ServiceResult {
	return &ServiceResult{
		StatusCode: http.StatusCreated,
		Body:       body,
	}
}

// ErrorResult produces the site API's error shape: {"error": message}.
func ErrorResult(statusCode int, message string) *ServiceResult {
	return &ServiceResult{
		StatusCode: statusCode,
		Body:       gin.H{"error": message},
	}
}

// BadRequestResult attaches optional field-level details alongside the
// error message, for binding failures where the caller benefits from
// knowing which field broke.
func BadRequestResult(message string, details any) *ServiceResult {
	body := gin.H{"error": message}
	if details != nil {
		body["details"] = details
	}
	return &ServiceResult{
		StatusCode: http.StatusBadRequest,
		Body:       body,
	}
}

func NotFoundResult(message string) *ServiceResult {
	return ErrorResult(http.StatusNotFound, message)
}

func InternalServerErrorResult(message string) *ServiceResult {
	return ErrorResult(http.StatusInternalServerError, message)
}

func TooManyRequestsResult(info RateLimitResponse) *ServiceResult {
	info.Error = "Too many requests"
	return &ServiceResult{
		StatusCode: http.StatusTooManyRequests,
		Body:       info,
	}
}
