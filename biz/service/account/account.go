package account

import (
	"context"
	"fmt"

	"iris_manager/be/biz/config"
	"iris_manager/be/biz/dal/repo"
	"iris_manager/be/biz/db/mysql"
	"iris_manager/be/biz/model/domain"
	"iris_manager/be/biz/model/errs"
	"iris_manager/be/biz/service/allocator"
	"iris_manager/be/biz/util/encode"
	"iris_manager/be/biz/util/metrics"
	"iris_manager/be/biz/util/validate"

	"github.com/cloudwego/hertz/pkg/common/hlog"
)

// LookupStrategy selects which id a login is matched on, together with code.
type LookupStrategy string

const (
	LookupByEmployeeID LookupStrategy = "employee_id"
	LookupByRecordID   LookupStrategy = "record_id"
)

// ParseLookup maps the config value to a strategy, defaulting to employee id.
func ParseLookup(s string) LookupStrategy {
	switch LookupStrategy(s) {
	case LookupByRecordID:
		return LookupByRecordID
	case LookupByEmployeeID, "":
		return LookupByEmployeeID
	}
	hlog.Warnf("unknown login lookup %q, using %s", s, LookupByEmployeeID)
	return LookupByEmployeeID
}

type UserRepository interface {
	allocator.Store
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
	ExistsByEmailOrCode(ctx context.Context, email, code string) (bool, error)
	FindByEmpIDAndCode(ctx context.Context, empID int64, code string) (*domain.User, error)
	FindByRecordIDAndCode(ctx context.Context, recordID uint64, code string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}

type Service struct {
	users  UserRepository
	alloc  *allocator.Allocator
	lookup LookupStrategy
	cost   int
}

type Option func(*Service)

func WithLookup(lookup LookupStrategy) Option {
	return func(s *Service) { s.lookup = lookup }
}

func WithBcryptCost(cost int) Option {
	return func(s *Service) {
		if cost > 0 {
			s.cost = cost
		}
	}
}

func New(users UserRepository, alloc *allocator.Allocator, opts ...Option) *Service {
	s := &Service{
		users:  users,
		alloc:  alloc,
		lookup: LookupByEmployeeID,
		cost:   encode.DefaultCost,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func NewDefault() *Service {
	users := repo.NewUserRepository(mysql.GetDbConn())
	conf := config.GetAccountConf()
	return New(users, allocator.NewDefault(users),
		WithLookup(ParseLookup(conf.LoginLookup)),
		WithBcryptCost(conf.BcryptCost),
	)
}

// CreateAccount validates in, stores a hashed credential and returns the new
// user without its hash. in.EmpID 0 lets the allocator pick the id.
func (s *Service) CreateAccount(ctx context.Context, in *domain.NewAccount) (*domain.User, errs.Error) {
	if bizErr := validate.Struct(in, errs.MissingRequiredFields); bizErr != nil {
		hlog.CtxNoticef(ctx, "create account rejected: %s", bizErr.Msg())
		return nil, bizErr
	}
	if len(in.Password) > encode.MaxPasswordBytes {
		return nil, errs.ParamError.SetMsg("password is too long")
	}
	if in.EmpID != 0 && !s.alloc.InRange(in.EmpID) {
		hlog.CtxNoticef(ctx, "create account rejected: emp_id %d out of range", in.EmpID)
		return nil, errs.ParamError.SetMsg(fmt.Sprintf("employee id must be between 1 and %d", s.alloc.Ceiling()))
	}
	if in.Password != in.ConfirmPassword {
		return nil, errs.PasswordMismatch
	}

	conflict, bizErr := s.accountConflict(ctx, in.Email, in.Code)
	if bizErr != nil {
		return nil, bizErr
	}
	if conflict {
		hlog.CtxNoticef(ctx, "create account conflict: email or code exists")
		return nil, errs.AccountDuplicated
	}

	hash, err := encode.EncodePassword(in.Password, s.cost)
	if err != nil {
		hlog.CtxErrorf(ctx, "EncodePassword err: %v", err)
		return nil, errs.ServerError.SetErr(err)
	}

	u := &domain.User{
		EmpID:        in.EmpID,
		FirstName:    in.FirstName,
		MiddleName:   in.MiddleName,
		LastName:     in.LastName,
		Suffix:       in.Suffix,
		Email:        in.Email,
		PasswordHash: hash,
		Code:         in.Code,
	}

	var created *domain.User
	source := metrics.EmpIDAllocated
	if in.EmpID > 0 {
		source = metrics.EmpIDSupplied
		created, bizErr = s.createWithEmpID(ctx, u)
	} else {
		created, bizErr = s.createWithAllocatedID(ctx, u)
	}
	if bizErr != nil {
		return nil, bizErr
	}
	metrics.AccountsCreatedTotal.WithLabelValues(source).Inc()

	hlog.CtxInfof(ctx, "account created: emp_id=%d record_id=%d", created.EmpID, created.RecordID)
	return sanitize(created), nil
}

func (s *Service) createWithEmpID(ctx context.Context, u *domain.User) (*domain.User, errs.Error) {
	created, err := s.users.Create(ctx, u)
	if err == nil {
		return created, nil
	}
	if !errs.IsDuplicatedErr(err) {
		hlog.CtxErrorf(ctx, "create user err: %v", err)
		return nil, errs.ServerError.SetErr(err)
	}

	conflict, bizErr := s.accountConflict(ctx, u.Email, u.Code)
	if bizErr != nil {
		return nil, bizErr
	}
	if conflict {
		return nil, errs.AccountDuplicated
	}
	hlog.CtxNoticef(ctx, "supplied emp_id %d already exists", u.EmpID)
	return nil, errs.EmpIDDuplicated
}

func (s *Service) createWithAllocatedID(ctx context.Context, u *domain.User) (*domain.User, errs.Error) {
	var created *domain.User
	_, bizErr := s.alloc.Reserve(ctx, func(ctx context.Context, empID int64) error {
		u.EmpID = empID
		res, err := s.users.Create(ctx, u)
		if err == nil {
			created = res
			return nil
		}
		if !errs.IsDuplicatedErr(err) {
			hlog.CtxErrorf(ctx, "create user err: %v", err)
			return err
		}

		conflict, bizErr := s.accountConflict(ctx, u.Email, u.Code)
		if bizErr != nil {
			return bizErr
		}
		if conflict {
			return errs.AccountDuplicated
		}
		return allocator.ErrEmpIDTaken
	})
	if bizErr != nil {
		return nil, bizErr
	}
	return created, nil
}

// accountConflict reports whether a row already uses email or code.
func (s *Service) accountConflict(ctx context.Context, email, code string) (bool, errs.Error) {
	exists, err := s.users.ExistsByEmailOrCode(ctx, email, code)
	if err != nil {
		hlog.CtxErrorf(ctx, "ExistsByEmailOrCode err: %v", err)
		return false, errs.ServerError.SetErr(err)
	}
	return exists, nil
}

// Login matches the credential on the configured id plus code, then checks
// the password. Unknown id/code pairs and wrong passwords use distinct codes
// but neither says which field was wrong.
func (s *Service) Login(ctx context.Context, cred domain.Credentials) (*domain.User, errs.Error) {
	if cred.Code == "" || cred.Password == "" || !s.hasLookupID(cred) {
		return nil, errs.MissingCredentials
	}

	var (
		u   *domain.User
		err error
	)
	switch s.lookup {
	case LookupByRecordID:
		u, err = s.users.FindByRecordIDAndCode(ctx, cred.RecordID, cred.Code)
	default:
		u, err = s.users.FindByEmpIDAndCode(ctx, cred.EmpID, cred.Code)
	}
	if err != nil {
		hlog.CtxErrorf(ctx, "find user for login err: %v", err)
		return nil, errs.ServerError.SetErr(err)
	}
	if u == nil {
		metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
		return nil, errs.InvalidCredentials
	}
	if !encode.ComparePassword(u.PasswordHash, cred.Password) {
		metrics.LoginsTotal.WithLabelValues("invalid_password").Inc()
		return nil, errs.InvalidPassword
	}
	metrics.LoginsTotal.WithLabelValues("success").Inc()

	hlog.CtxInfof(ctx, "login success: emp_id=%d", u.EmpID)
	return sanitize(u), nil
}

func (s *Service) hasLookupID(cred domain.Credentials) bool {
	if s.lookup == LookupByRecordID {
		return cred.RecordID > 0
	}
	return cred.EmpID > 0
}

// ListUsers returns every user ordered by record id, without password hashes.
func (s *Service) ListUsers(ctx context.Context) ([]*domain.User, errs.Error) {
	users, err := s.users.List(ctx)
	if err != nil {
		hlog.CtxErrorf(ctx, "list users err: %v", err)
		return nil, errs.ServerError.SetErr(err)
	}
	for i, u := range users {
		users[i] = sanitize(u)
	}
	return users, nil
}

func sanitize(u *domain.User) *domain.User {
	out := *u
	out.PasswordHash = ""
	return &out
}
