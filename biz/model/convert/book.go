package convert

import (
	"iris_manager/be/biz/model/domain"
	"iris_manager/be/biz/model/storage"
)

func BookDomainToRecord(b *domain.Book) *storage.BookRecord {
	if b == nil {
		return nil
	}
	return &storage.BookRecord{
		BookID:    b.BookID,
		Title:     b.Title,
		Author:    b.Author,
		Publisher: b.Publisher,
		ISBN:      b.ISBN,
		CoverURL:  b.CoverURL,
	}
}

func BookRecordToDomain(m *storage.BookRecord) *domain.Book {
	if m == nil {
		return nil
	}
	return &domain.Book{
		BookID:    m.BookID,
		Title:     m.Title,
		Author:    m.Author,
		Publisher: m.Publisher,
		ISBN:      m.ISBN,
		CoverURL:  m.CoverURL,
		CreatedAt: m.CreatedAt,
	}
}
