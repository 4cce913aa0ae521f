package convert

import (
	"iris_manager/be/biz/model/domain"
	"iris_manager/be/biz/model/storage"
)

func UserDomainToRecord(u *domain.User) *storage.UserRecord {
	if u == nil {
		return nil
	}
	return &storage.UserRecord{
		GormModel: storage.GormModel{
			CreatedAt: u.CreatedAt,
			UpdatedAt: u.UpdatedAt,
		},
		UserID:        u.RecordID,
		EmpID:         u.EmpID,
		FirstName:     u.FirstName,
		MiddleInitial: nullable(u.MiddleName),
		Suffix:        nullable(u.Suffix),
		LastName:      u.LastName,
		Email:         u.Email,
		PasswordHash:  u.PasswordHash,
		Code:          u.Code,
	}
}

func UserRecordToDomain(m *storage.UserRecord) *domain.User {
	if m == nil {
		return nil
	}
	return &domain.User{
		RecordID:     m.UserID,
		EmpID:        m.EmpID,
		FirstName:    m.FirstName,
		MiddleName:   deref(m.MiddleInitial),
		LastName:     m.LastName,
		Suffix:       deref(m.Suffix),
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Code:         m.Code,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// optional columns are stored as NULL, never as ''
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
