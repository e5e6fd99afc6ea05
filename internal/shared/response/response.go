package response

import (
	"net/http"

	"github.com/WhitworthLegacy/carnetmariage-sub001/internal/shared/apperror"
	"github.com/WhitworthLegacy/carnetmariage-sub001/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// JSONOk writes {ok:true,data}. Status defaults to 200.
func JSONOk(c *gin.Context, data any, status ...int) {
	c.JSON(statusOr(status, http.StatusOK), Success(data))
}

// JSONCreated is JSONOk with 201.
func JSONCreated(c *gin.Context, data any) {
	JSONOk(c, data, http.StatusCreated)
}

// JSONError writes {ok:false,error}. Status defaults to 400; callers pass the
// status matching the kind, or use FromError to look it up.
func JSONError(c *gin.Context, err *apperror.AppError, status ...int) {
	c.JSON(statusOr(status, http.StatusBadRequest), Failure[any](err))
}

// FromError reduces err to an AppError correlated with the request id and
// writes it with the kind's conventional status.
func FromError(c *gin.Context, err error) {
	appErr := apperror.From(err)
	if appErr == nil {
		appErr = apperror.ErrInternal
	}

	ctx := c.Request.Context()
	if appErr.RequestID() == "" {
		if rid := requestID(c); rid != "" {
			appErr = appErr.WithRequestID(rid)
		}
	}

	status := appErr.HTTPStatus()
	logger := contextutil.GetLogger(ctx, zap.L())
	fields := []zap.Field{
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", status),
		zap.String("code", appErr.Kind().String()),
		zap.String("message", appErr.Message()),
	}
	if cause := appErr.Unwrap(); cause != nil {
		fields = append(fields, zap.Error(cause))
	}
	if status >= http.StatusInternalServerError {
		logger.Error("request failed", fields...)
	} else {
		logger.Warn("request failed", fields...)
	}

	JSONError(c, appErr, status)
}

// Abort writes the error like FromError and stops the handler chain.
func Abort(c *gin.Context, err error) {
	FromError(c, err)
	c.Abort()
}

// AbortWithStatus writes err with an explicit status and stops the chain.
func AbortWithStatus(c *gin.Context, err *apperror.AppError, status int) {
	if rid := requestID(c); rid != "" && err.RequestID() == "" {
		err = err.WithRequestID(rid)
	}
	JSONError(c, err, status)
	c.Abort()
}

func requestID(c *gin.Context) string {
	if rid := contextutil.GetRequestID(c.Request.Context()); rid != "" {
		return rid
	}
	return c.GetString("request_id")
}

func statusOr(status []int, fallback int) int {
	if len(status) > 0 && status[0] > 0 {
		return status[0]
	}
	return fallback
}
