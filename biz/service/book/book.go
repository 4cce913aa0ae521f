package book

import (
	"context"

	"iris_manager/be/biz/dal/repo"
	"iris_manager/be/biz/db/mysql"
	"iris_manager/be/biz/model/domain"
	"iris_manager/be/biz/model/errs"
	"iris_manager/be/biz/util/validate"

	"github.com/cloudwego/hertz/pkg/common/hlog"
)

type BookRepository interface {
	Create(ctx context.Context, b *domain.Book) (*domain.Book, error)
	List(ctx context.Context) ([]*domain.Book, error)
}

type Service struct {
	books BookRepository
}

func New(books BookRepository) *Service {
	return &Service{books: books}
}

func NewDefault() *Service {
	return New(repo.NewBookRepository(mysql.GetDbConn()))
}

func (s *Service) AddBook(ctx context.Context, b *domain.Book) (*domain.Book, errs.Error) {
	if bizErr := validate.Struct(b, errs.MissingRequiredFields); bizErr != nil {
		return nil, bizErr
	}

	created, err := s.books.Create(ctx, b)
	if err != nil {
		hlog.CtxErrorf(ctx, "create book err: %v", err)
		return nil, errs.ServerError.SetErr(err)
	}
	hlog.CtxInfof(ctx, "book added: book_id=%d", created.BookID)
	return created, nil
}

func (s *Service) ListBooks(ctx context.Context) ([]*domain.Book, errs.Error) {
	books, err := s.books.List(ctx)
	if err != nil {
		hlog.CtxErrorf(ctx, "list books err: %v", err)
		return nil, errs.ServerError.SetErr(err)
	}
	return books, nil
}
