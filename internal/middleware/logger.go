package middleware

import (
	"context"
	"errors"
	"fmt"

	"github.com/renewed-app/backend/pkg/errorx"
	"github.com/renewed-app/backend/pkg/router"
	"github.com/renewed-app/backend/pkg/xcontext"
)

func Logger() router.CloserFunc {
	return func(ctx context.Context) {
		r := xcontext.HTTPRequest(ctx)
		if r == nil {
			return
		}

		info := fmt.Sprintf("%s | %s", r.Method, r.URL.Path)
		if err := xcontext.GetError(ctx); err != nil {
			var errx errorx.Error
			if errors.As(err, &errx) {
				xcontext.Logger(ctx).Warnf("%s | %d", info, errx.Code)
			} else {
				xcontext.Logger(ctx).Errorf("%s | %d", info, -1)
			}
		} else {
			xcontext.Logger(ctx).Infof(info)
		}
	}
}
