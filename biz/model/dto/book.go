package dto

type AddBookReq struct {
	Title     string `json:"title"`
	Author    string `json:"author"`
	Publisher string `json:"publisher"`
	ISBN      string `json:"isbn"`
	CoverURL  string `json:"coverUrl"`
}

type AddBookResp struct {
	CommonResp
	InsertID uint64 `json:"insertId"`
}

type BookInfo struct {
	BookID    uint64 `json:"bookId"`
	Title     string `json:"title"`
	Author    string `json:"author"`
	Publisher string `json:"publisher"`
	ISBN      string `json:"isbn"`
	CoverURL  string `json:"coverUrl"`
	CreatedAt int64  `json:"createdAt"`
}
