package repo

import (
	"context"

	"iris_manager/be/biz/model/convert"
	"iris_manager/be/biz/model/domain"
	"iris_manager/be/biz/model/storage"

	"gorm.io/gorm"
)

type BookRepository struct {
	db *gorm.DB
}

func NewBookRepository(db *gorm.DB) *BookRepository {
	return &BookRepository{db: db}
}

func (r *BookRepository) Create(ctx context.Context, b *domain.Book) (*domain.Book, error) {
	m := convert.BookDomainToRecord(b)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return nil, err
	}
	return convert.BookRecordToDomain(m), nil
}

// List returns every book, newest insert first.
func (r *BookRepository) List(ctx context.Context) ([]*domain.Book, error) {
	var ms []*storage.BookRecord
	if err := r.db.WithContext(ctx).Order("book_id DESC").Find(&ms).Error; err != nil {
		return nil, err
	}
	books := make([]*domain.Book, 0, len(ms))
	for _, m := range ms {
		books = append(books, convert.BookRecordToDomain(m))
	}
	return books, nil
}
