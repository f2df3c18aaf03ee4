package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/alumni/internal/app/models/dto"
	"github.com/yigit/alumni/internal/middleware"
	"github.com/yigit/alumni/internal/pkg/helpers"
	"github.com/yigit/alumni/internal/pkg/validation"
)

// Options are the request handling policies shared by all controllers
type Options struct {
	// StrictPayloads rejects payload fields a schema does not declare
	StrictPayloads bool
	// PageSize is the fixed size of list pages
	PageSize int
}

func (o Options) pageSize() int {
	return helpers.NormalizePageSize(o.PageSize)
}

// readObject decodes the request body into a JSON object. On failure the
// error response is already written and ok is false.
func readObject(ctx *gin.Context) (validation.Object, bool) {
	raw, err := ctx.GetRawData()
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return nil, false
	}
	body, err := validation.DecodeObject(raw)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return nil, false
	}
	return body, true
}

func respond(ctx *gin.Context, status int, data interface{}) {
	ctx.JSON(status, dto.NewSuccessResponse(data))
}

func respondOK(ctx *gin.Context, data interface{}) {
	respond(ctx, http.StatusOK, data)
}
