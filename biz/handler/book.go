package handler

import (
	"context"
	"net/http"

	"iris_manager/be/biz/model/convert"
	"iris_manager/be/biz/model/dto"
	"iris_manager/be/biz/model/errs"
	"iris_manager/be/biz/service/book"
	"iris_manager/be/biz/util/resp"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

// AddBook adds a book record
//
//	@Tags		book
//	@Summary	add book
//	@Accept		json
//	@Produce	json
//	@Param		req	body		dto.AddBookReq	true	"add book request body"
//	@Success	201	{object}	dto.AddBookResp
//	@Failure	400	{object}	dto.CommonResp
//	@Router		/add-book [POST]
func AddBook(ctx context.Context, c *app.RequestContext) {
	var req dto.AddBookReq
	if err := c.BindAndValidate(&req); err != nil {
		hlog.CtxNoticef(ctx, "BindAndValidate err: %v", err)
		resp.AbortWithErr(c, errs.InvalidBody.SetErr(err), http.StatusBadRequest)
		return
	}

	b, bizErr := book.NewDefault().AddBook(ctx, convert.BookFromReq(&req))
	if bizErr != nil {
		resp.FailResp(c, bizErr)
		return
	}

	resp.BodyResp(c, http.StatusCreated, dto.AddBookResp{
		CommonResp: dto.OK("Book added successfully"),
		InsertID:   b.BookID,
	})
}

// ListBooks lists books, newest first
//
//	@Tags		book
//	@Summary	list books
//	@Produce	json
//	@Success	200	{object}	dto.CommonResp{data=[]dto.BookInfo}
//	@Router		/books [GET]
func ListBooks(ctx context.Context, c *app.RequestContext) {
	books, bizErr := book.NewDefault().ListBooks(ctx)
	if bizErr != nil {
		resp.FailResp(c, bizErr)
		return
	}

	resp.SuccessResp(c, convert.BooksDomainToInfo(books))
}
