package router

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/renewed-app/backend/pkg/errorx"
	"github.com/renewed-app/backend/pkg/xcontext"
)

func wrapHandler[Request, Response any](
	router *Router,
	method string,
	handler HandlerFunc[Request, Response],
) gin.HandlerFunc {
	return func(gctx *gin.Context) {
		ctx := gctx.Request.Context()
		ctx = xcontext.WithDB(ctx, router.db)
		ctx = xcontext.WithLogger(ctx, router.logger)
		ctx = xcontext.WithConfigs(ctx, router.cfg)
		ctx = xcontext.WithHTTPRequest(ctx, gctx.Request)
		ctx = xcontext.WithRequestState(ctx)

		defer func() {
			for _, closer := range router.closers {
				closer(ctx)
			}
		}()

		for _, middleware := range router.befores {
			newCtx, err := middleware(ctx)
			if err != nil {
				xcontext.SetError(ctx, err)
				gctx.JSON(http.StatusOK, newErrorResponse(err))
				return
			}

			ctx = newCtx
		}

		var req Request
		var err error
		switch method {
		case http.MethodGet:
			err = gctx.ShouldBindQuery(&req)
		default:
			err = gctx.ShouldBindJSON(&req)
		}

		// An empty body is a valid request for operations without
		// parameters.
		if err != nil && !errors.Is(err, io.EOF) {
			bindErr := errorx.New(errorx.BadRequest, "Cannot bind the request")
			xcontext.SetError(ctx, bindErr)
			gctx.JSON(http.StatusOK, newErrorResponse(bindErr))
			return
		}

		resp, err := handler(ctx, &req)
		if err != nil {
			xcontext.SetError(ctx, err)
			gctx.JSON(http.StatusOK, newErrorResponse(err))
			return
		}

		xcontext.SetResponse(ctx, resp)
		gctx.JSON(http.StatusOK, newResponse(resp))
	}
}
