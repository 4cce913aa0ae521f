package storage

import (
	"time"

	"gorm.io/plugin/soft_delete"
)

type GormModel struct {
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt soft_delete.DeletedAt
}

type UserRecord struct {
	GormModel
	UserID        uint64  `gorm:"column:user_id;primarykey"`
	EmpID         int64   `gorm:"column:emp_id;not null;uniqueIndex:idx_user_emp_id"` // 员工编号, 分配时 >= 1000
	FirstName     string  `gorm:"column:first_name;size:64;not null"`
	MiddleInitial *string `gorm:"column:middle_initial;size:64"`
	Suffix        *string `gorm:"column:suffix;size:16"`
	LastName      string  `gorm:"column:last_name;size:64;not null"`
	Email         string  `gorm:"column:email;size:128;not null;uniqueIndex:idx_user_email"`
	PasswordHash  string  `gorm:"column:password_hash;size:128;not null"`
	Code          string  `gorm:"column:code;size:32;not null;uniqueIndex:idx_user_code"`
}

func (UserRecord) TableName() string {
	return "tbl_user"
}
