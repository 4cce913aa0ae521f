package resp

import (
	"net/http"

	"iris_manager/be/biz/model/dto"
	"iris_manager/be/biz/model/errs"

	"github.com/cloudwego/hertz/pkg/app"
)

func errResp(bizErr errs.Error) *dto.CommonResp {
	return &dto.CommonResp{
		Success: false,
		Code:    int(bizErr.Code()),
		Message: bizErr.Msg(),
		Details: bizErr.Detail(),
	}
}

func respWithErr(c *app.RequestContext, data any, err error) {
	if err == nil {
		c.JSON(http.StatusOK, &dto.CommonResp{
			Success: true,
			Code:    int(errs.Success.Code()),
			Message: errs.Success.Msg(),
			Data:    data,
		})
		return
	}

	if bizErr, ok := err.(errs.Error); ok {
		c.JSON(bizErr.Kind().HTTPStatus(), errResp(bizErr))
		return
	}

	c.JSON(http.StatusInternalServerError, errResp(errs.ServerError.SetErr(err)))
}

func SuccessResp(c *app.RequestContext, data any) {
	respWithErr(c, data, nil)
}

// BodyResp writes a handler-shaped body as is.
func BodyResp(c *app.RequestContext, httpCode int, body any) {
	c.JSON(httpCode, body)
}

func FailResp(c *app.RequestContext, bizErr errs.Error) {
	respWithErr(c, nil, bizErr)
}

func AbortWithErr(c *app.RequestContext, bizErr errs.Error, httpCode int) {
	c.AbortWithStatusJSON(httpCode, errResp(bizErr))
}
