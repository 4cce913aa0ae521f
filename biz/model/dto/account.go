package dto

type CreateAccountReq struct {
	EmployeeID      FlexID `json:"employeeId"`
	EmpID           FlexID `json:"empId"`
	FirstName       string `json:"firstName"`
	MiddleName      string `json:"middleName"`
	MiddleInitial   string `json:"middleInitial"`
	LastName        string `json:"lastName"`
	Suffix          string `json:"suffix"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	Code            string `json:"code"`
}

// ResolvedEmpID prefers employeeId and falls back to the empId alias.
func (r *CreateAccountReq) ResolvedEmpID() int64 {
	if r.EmployeeID != 0 {
		return int64(r.EmployeeID)
	}
	return int64(r.EmpID)
}

func (r *CreateAccountReq) ResolvedMiddleName() string {
	if r.MiddleName != "" {
		return r.MiddleName
	}
	return r.MiddleInitial
}

type CreateAccountResp struct {
	CommonResp
	EmpID    int64  `json:"empId"`
	InsertID uint64 `json:"insertId"`
}

type LoginReq struct {
	EmployeeID FlexID `json:"employeeId"`
	EmpID      FlexID `json:"empId"`
	RecordID   FlexID `json:"recordId"`
	Code       string `json:"code"`
	Password   string `json:"password"`
}

func (r *LoginReq) ResolvedEmpID() int64 {
	if r.EmployeeID != 0 {
		return int64(r.EmployeeID)
	}
	return int64(r.EmpID)
}

type LoginResp struct {
	CommonResp
	User *UserInfo `json:"user,omitempty"`
}

// UserInfo is the only user shape that leaves the service. It has no password field.
type UserInfo struct {
	EmpID      int64  `json:"empId"`
	RecordID   uint64 `json:"recordId"`
	FirstName  string `json:"firstName"`
	MiddleName string `json:"middleName,omitempty"`
	LastName   string `json:"lastName"`
	Suffix     string `json:"suffix,omitempty"`
	Email      string `json:"email"`
	Code       string `json:"code"`
}
