package convert

import (
	"iris_manager/be/biz/model/domain"
	"iris_manager/be/biz/model/dto"
)

// UserDomainToInfo is the only way a user leaves the API. The hash is dropped here.
func UserDomainToInfo(u *domain.User) *dto.UserInfo {
	if u == nil {
		return nil
	}
	return &dto.UserInfo{
		EmpID:      u.EmpID,
		RecordID:   u.RecordID,
		FirstName:  u.FirstName,
		MiddleName: u.MiddleName,
		LastName:   u.LastName,
		Suffix:     u.Suffix,
		Email:      u.Email,
		Code:       u.Code,
	}
}

func UsersDomainToInfo(users []*domain.User) []*dto.UserInfo {
	out := make([]*dto.UserInfo, 0, len(users))
	for _, u := range users {
		out = append(out, UserDomainToInfo(u))
	}
	return out
}

func BookDomainToInfo(b *domain.Book) *dto.BookInfo {
	if b == nil {
		return nil
	}
	return &dto.BookInfo{
		BookID:    b.BookID,
		Title:     b.Title,
		Author:    b.Author,
		Publisher: b.Publisher,
		ISBN:      b.ISBN,
		CoverURL:  b.CoverURL,
		CreatedAt: b.CreatedAt.Unix(),
	}
}

func BooksDomainToInfo(books []*domain.Book) []*dto.BookInfo {
	out := make([]*dto.BookInfo, 0, len(books))
	for _, b := range books {
		out = append(out, BookDomainToInfo(b))
	}
	return out
}

func NewAccountFromReq(req *dto.CreateAccountReq) *domain.NewAccount {
	return &domain.NewAccount{
		EmpID:           req.ResolvedEmpID(),
		FirstName:       req.FirstName,
		MiddleName:      req.ResolvedMiddleName(),
		LastName:        req.LastName,
		Suffix:          req.Suffix,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		Code:            req.Code,
	}
}

func CredentialsFromReq(req *dto.LoginReq) domain.Credentials {
	return domain.Credentials{
		EmpID:    req.ResolvedEmpID(),
		RecordID: uint64(req.RecordID),
		Code:     req.Code,
		Password: req.Password,
	}
}

func BookFromReq(req *dto.AddBookReq) *domain.Book {
	return &domain.Book{
		Title:     req.Title,
		Author:    req.Author,
		Publisher: req.Publisher,
		ISBN:      req.ISBN,
		CoverURL:  req.CoverURL,
	}
}
