package storage

type BookRecord struct {
	GormModel
	BookID    uint64 `gorm:"column:book_id;primarykey"`
	Title     string `gorm:"column:title;size:255;not null"`
	Author    string `gorm:"column:author;size:255"`
	Publisher string `gorm:"column:publisher;size:255"`
	ISBN      string `gorm:"column:isbn;size:32;not null"`
	CoverURL  string `gorm:"column:cover_url;size:512"`
}

func (BookRecord) TableName() string {
	return "tbl_book"
}
