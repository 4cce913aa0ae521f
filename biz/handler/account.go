package handler

import (
	"context"
	"net/http"

	"iris_manager/be/biz/model/convert"
	"iris_manager/be/biz/model/dto"
	"iris_manager/be/biz/model/errs"
	"iris_manager/be/biz/service/account"
	"iris_manager/be/biz/util/resp"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

// Index liveness text
//
//	@Tags		system
//	@Summary	liveness text
//	@Produce	plain
//	@Success	200	{string}	string	"API is running successfully!"
//	@Router		/ [GET]
func Index(ctx context.Context, c *app.RequestContext) {
	c.String(http.StatusOK, "API is running successfully!")
}

// CreateAccount registers an account
//
//	@Tags			account
//	@Summary		create account
//	@Description	employeeId is optional; without it the next free employee id is allocated
//	@Accept			json
//	@Produce		json
//	@Param			req	body		dto.CreateAccountReq	true	"create account request body"
//	@Success		201	{object}	dto.CreateAccountResp
//	@Failure		400	{object}	dto.CommonResp
//	@Failure		500	{object}	dto.CommonResp
//	@Router			/create-account [POST]
func CreateAccount(ctx context.Context, c *app.RequestContext) {
	var req dto.CreateAccountReq
	if err := c.BindAndValidate(&req); err != nil {
		hlog.CtxNoticef(ctx, "BindAndValidate err: %v", err)
		resp.AbortWithErr(c, errs.InvalidBody.SetErr(err), http.StatusBadRequest)
		return
	}

	u, bizErr := account.NewDefault().CreateAccount(ctx, convert.NewAccountFromReq(&req))
	if bizErr != nil {
		resp.FailResp(c, bizErr)
		return
	}

	resp.BodyResp(c, http.StatusCreated, dto.CreateAccountResp{
		CommonResp: dto.OK("Account created successfully"),
		EmpID:      u.EmpID,
		InsertID:   u.RecordID,
	})
}

// Login checks employee id, code and password
//
//	@Tags			account
//	@Summary		login
//	@Description	matches on employeeId (or recordId, per account.login_lookup) plus code
//	@Accept			json
//	@Produce		json
//	@Param			req	body		dto.LoginReq	true	"login request body"
//	@Success		200	{object}	dto.LoginResp
//	@Failure		400	{object}	dto.CommonResp
//	@Failure		401	{object}	dto.CommonResp
//	@Failure		403	{object}	dto.CommonResp
//	@Router			/login [POST]
func Login(ctx context.Context, c *app.RequestContext) {
	var req dto.LoginReq
	if err := c.BindAndValidate(&req); err != nil {
		hlog.CtxNoticef(ctx, "BindAndValidate err: %v", err)
		resp.AbortWithErr(c, errs.InvalidBody.SetErr(err), http.StatusBadRequest)
		return
	}

	u, bizErr := account.NewDefault().Login(ctx, convert.CredentialsFromReq(&req))
	if bizErr != nil {
		resp.FailResp(c, bizErr)
		return
	}

	resp.BodyResp(c, http.StatusOK, dto.LoginResp{
		CommonResp: dto.OK("Login successful"),
		User:       convert.UserDomainToInfo(u),
	})
}

// ListUsers lists every user without credentials
//
//	@Tags		account
//	@Summary	list users
//	@Produce	json
//	@Success	200	{array}		dto.UserInfo
//	@Failure	500	{object}	dto.CommonResp
//	@Router		/users [GET]
func ListUsers(ctx context.Context, c *app.RequestContext) {
	users, bizErr := account.NewDefault().ListUsers(ctx)
	if bizErr != nil {
		resp.FailResp(c, bizErr)
		return
	}

	resp.BodyResp(c, http.StatusOK, convert.UsersDomainToInfo(users))
}
