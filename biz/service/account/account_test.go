package account

import (
	"context"
	"errors"
	"math"
	"strings"
	"sync"
	"testing"

	"iris_manager/be/biz/model/domain"
	"iris_manager/be/biz/model/errs"
	"iris_manager/be/biz/service/allocator"
	"iris_manager/be/biz/util/encode"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// fakeUserRepo keeps rows in memory and enforces the three unique indexes.
type fakeUserRepo struct {
	mu     sync.Mutex
	rows   []*domain.User
	nextID uint64

	existsErr error
	createErr error
	findErr   error
	listErr   error
	// beforeCreate runs once before the next insert, to model a concurrent writer.
	beforeCreate func(r *fakeUserRepo, u *domain.User)

	createCalls int
}

func (r *fakeUserRepo) add(u *domain.User) *domain.User {
	r.nextID++
	row := *u
	row.RecordID = r.nextID
	r.rows = append(r.rows, &row)
	return &row
}

func (r *fakeUserRepo) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.createCalls++
	if hook := r.beforeCreate; hook != nil {
		r.beforeCreate = nil
		hook(r, u)
	}
	if r.createErr != nil {
		return nil, r.createErr
	}
	for _, row := range r.rows {
		if row.EmpID == u.EmpID || row.Email == u.Email || row.Code == u.Code {
			return nil, gorm.ErrDuplicatedKey
		}
	}
	row := r.add(u)
	out := *row
	return &out, nil
}

func (r *fakeUserRepo) MaxEmpID(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var maxID int64
	for _, row := range r.rows {
		if row.EmpID > maxID {
			maxID = row.EmpID
		}
	}
	return maxID, nil
}

func (r *fakeUserRepo) ExistsEmpID(_ context.Context, empID int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, row := range r.rows {
		if row.EmpID == empID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUserRepo) ExistsByEmailOrCode(_ context.Context, email, code string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.existsErr != nil {
		return false, r.existsErr
	}
	for _, row := range r.rows {
		if row.Email == email || row.Code == code {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUserRepo) FindByEmpIDAndCode(_ context.Context, empID int64, code string) (*domain.User, error) {
	return r.find(func(u *domain.User) bool { return u.EmpID == empID && u.Code == code })
}

func (r *fakeUserRepo) FindByRecordIDAndCode(_ context.Context, recordID uint64, code string) (*domain.User, error) {
	return r.find(func(u *domain.User) bool { return u.RecordID == recordID && u.Code == code })
}

func (r *fakeUserRepo) find(match func(*domain.User) bool) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.findErr != nil {
		return nil, r.findErr
	}
	for _, row := range r.rows {
		if match(row) {
			out := *row
			return &out, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) List(_ context.Context) ([]*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.listErr != nil {
		return nil, r.listErr
	}
	out := make([]*domain.User, 0, len(r.rows))
	for _, row := range r.rows {
		u := *row
		out = append(out, &u)
	}
	return out, nil
}

func newService(r *fakeUserRepo, opts ...Option) *Service {
	opts = append([]Option{WithBcryptCost(bcrypt.MinCost)}, opts...)
	return New(r, allocator.New(r, allocator.NewLocalLocker()), opts...)
}

func anaCruz() *domain.NewAccount {
	return &domain.NewAccount{
		FirstName:       "Ana",
		LastName:        "Cruz",
		Email:           "ana@x.io",
		Password:        "p@ss",
		ConfirmPassword: "p@ss",
		Code:            "A1",
	}
}

func TestService_CreateAccount(t *testing.T) {
	ctx := context.Background()

	t.Run("missing required fields", func(t *testing.T) {
		r := &fakeUserRepo{}
		in := anaCruz()
		in.Code = ""
		_, bizErr := newService(r).CreateAccount(ctx, in)
		assert.True(t, errs.ErrorEqual(errs.MissingRequiredFields, bizErr))
		assert.Equal(t, 0, r.createCalls)
	})

	t.Run("field too long", func(t *testing.T) {
		r := &fakeUserRepo{}
		in := anaCruz()
		in.Suffix = "abcdefghijklmnopqrstuvwxyz"
		_, bizErr := newService(r).CreateAccount(ctx, in)
		assert.True(t, errs.ErrorEqual(errs.ParamError, bizErr))
		assert.Equal(t, "suffix is too long", bizErr.Msg())
		assert.Equal(t, 0, r.createCalls)
	})

	t.Run("password mismatch performs no insert", func(t *testing.T) {
		r := &fakeUserRepo{}
		in := anaCruz()
		in.ConfirmPassword = "other"
		_, bizErr := newService(r).CreateAccount(ctx, in)
		assert.True(t, errs.ErrorEqual(errs.PasswordMismatch, bizErr))
		assert.Equal(t, 0, r.createCalls)
	})

	t.Run("multibyte password over the bcrypt byte limit", func(t *testing.T) {
		r := &fakeUserRepo{}
		in := anaCruz()
		in.Password = strings.Repeat("é", 40)
		in.ConfirmPassword = in.Password
		_, bizErr := newService(r).CreateAccount(ctx, in)
		assert.True(t, errs.ErrorEqual(errs.ParamError, bizErr))
		assert.Equal(t, "password is too long", bizErr.Msg())
		assert.Equal(t, errs.KindValidation, bizErr.Kind())
		assert.Equal(t, 0, r.createCalls)
	})

	t.Run("multibyte password within the byte limit", func(t *testing.T) {
		r := &fakeUserRepo{}
		in := anaCruz()
		in.Password = strings.Repeat("é", 36)
		in.ConfirmPassword = in.Password
		_, bizErr := newService(r).CreateAccount(ctx, in)
		assert.Nil(t, bizErr)
		assert.True(t, encode.ComparePassword(r.rows[0].PasswordHash, in.Password))
	})

	t.Run("supplied emp id above the ceiling is rejected", func(t *testing.T) {
		r := &fakeUserRepo{}
		svc := newService(r)
		in := anaCruz()
		in.EmpID = math.MaxInt64
		_, bizErr := svc.CreateAccount(ctx, in)
		assert.True(t, errs.ErrorEqual(errs.ParamError, bizErr))
		assert.Equal(t, errs.KindValidation, bizErr.Kind())
		assert.Equal(t, 0, r.createCalls)

		// allocation is unaffected
		created, bizErr := svc.CreateAccount(ctx, anaCruz())
		assert.Nil(t, bizErr)
		assert.Equal(t, int64(1000), created.EmpID)

		in = anaCruz()
		in.Email, in.Code, in.EmpID = "top@x.io", "T1", allocator.DefaultMaxEmpID
		created, bizErr = svc.CreateAccount(ctx, in)
		assert.Nil(t, bizErr)
		assert.Equal(t, allocator.DefaultMaxEmpID, created.EmpID)
	})

	t.Run("email or code conflict performs no insert", func(t *testing.T) {
		r := &fakeUserRepo{}
		r.add(&domain.User{EmpID: 1000, Email: "ana@x.io", Code: "Z9"})

		_, bizErr := newService(r).CreateAccount(ctx, anaCruz())
		assert.True(t, errs.ErrorEqual(errs.AccountDuplicated, bizErr))
		assert.Equal(t, 0, r.createCalls)
		assert.Len(t, r.rows, 1)
	})

	t.Run("pre-check store error", func(t *testing.T) {
		r := &fakeUserRepo{existsErr: errors.New("db error")}
		_, bizErr := newService(r).CreateAccount(ctx, anaCruz())
		assert.True(t, errs.ErrorEqual(errs.ServerError, bizErr))
		assert.Equal(t, "db error", bizErr.Detail())
	})

	t.Run("insert store error", func(t *testing.T) {
		r := &fakeUserRepo{createErr: errors.New("insert error")}
		_, bizErr := newService(r).CreateAccount(ctx, anaCruz())
		assert.True(t, errs.ErrorEqual(errs.ServerError, bizErr))
	})

	t.Run("allocates ids and hashes the password", func(t *testing.T) {
		r := &fakeUserRepo{}
		svc := newService(r)

		u, bizErr := svc.CreateAccount(ctx, anaCruz())
		assert.Nil(t, bizErr)
		assert.Equal(t, int64(1000), u.EmpID)
		assert.Equal(t, uint64(1), u.RecordID)
		assert.Empty(t, u.PasswordHash, "hash must not leave the service")

		stored := r.rows[0]
		assert.NotEqual(t, "p@ss", stored.PasswordHash)
		assert.True(t, encode.ComparePassword(stored.PasswordHash, "p@ss"))

		in := anaCruz()
		in.Email, in.Code = "ben@x.io", "B2"
		u2, bizErr := svc.CreateAccount(ctx, in)
		assert.Nil(t, bizErr)
		assert.Equal(t, int64(1001), u2.EmpID)
	})

	t.Run("supplied emp id is used verbatim", func(t *testing.T) {
		r := &fakeUserRepo{}
		in := anaCruz()
		in.EmpID = 4242

		u, bizErr := newService(r).CreateAccount(ctx, in)
		assert.Nil(t, bizErr)
		assert.Equal(t, int64(4242), u.EmpID)
	})

	t.Run("supplied emp id collision", func(t *testing.T) {
		r := &fakeUserRepo{}
		r.add(&domain.User{EmpID: 4242, Email: "old@x.io", Code: "OLD"})
		in := anaCruz()
		in.EmpID = 4242

		_, bizErr := newService(r).CreateAccount(ctx, in)
		assert.True(t, errs.ErrorEqual(errs.EmpIDDuplicated, bizErr))
		assert.Len(t, r.rows, 1)
	})

	t.Run("allocated id taken by a concurrent writer is retried", func(t *testing.T) {
		r := &fakeUserRepo{}
		r.beforeCreate = func(r *fakeUserRepo, u *domain.User) {
			r.add(&domain.User{EmpID: u.EmpID, Email: "other@x.io", Code: "OTHER"})
		}

		u, bizErr := newService(r).CreateAccount(ctx, anaCruz())
		assert.Nil(t, bizErr)
		assert.Equal(t, int64(1001), u.EmpID)
		assert.Equal(t, 2, r.createCalls)
	})

	t.Run("email taken by a concurrent writer is a conflict", func(t *testing.T) {
		r := &fakeUserRepo{}
		r.beforeCreate = func(r *fakeUserRepo, u *domain.User) {
			r.add(&domain.User{EmpID: 9999, Email: u.Email, Code: "OTHER"})
		}

		_, bizErr := newService(r).CreateAccount(ctx, anaCruz())
		assert.True(t, errs.ErrorEqual(errs.AccountDuplicated, bizErr))
		assert.Equal(t, 1, r.createCalls)
	})
}

func TestService_Login(t *testing.T) {
	ctx := context.Background()

	seed := func(t *testing.T, opts ...Option) (*fakeUserRepo, *Service) {
		r := &fakeUserRepo{}
		svc := newService(r, opts...)
		_, bizErr := svc.CreateAccount(ctx, anaCruz())
		assert.Nil(t, bizErr)
		return r, svc
	}

	t.Run("missing credentials", func(t *testing.T) {
		_, svc := seed(t)
		for _, cred := range []domain.Credentials{
			{Code: "A1", Password: "p@ss"},
			{EmpID: 1000, Password: "p@ss"},
			{EmpID: 1000, Code: "A1"},
		} {
			_, bizErr := svc.Login(ctx, cred)
			assert.True(t, errs.ErrorEqual(errs.MissingCredentials, bizErr))
		}
	})

	t.Run("unknown id and code", func(t *testing.T) {
		_, svc := seed(t)
		_, bizErr := svc.Login(ctx, domain.Credentials{EmpID: 1000, Code: "WRONG", Password: "p@ss"})
		assert.True(t, errs.ErrorEqual(errs.InvalidCredentials, bizErr))
		assert.Equal(t, "invalid credentials", bizErr.Msg())
	})

	t.Run("wrong password", func(t *testing.T) {
		_, svc := seed(t)
		_, bizErr := svc.Login(ctx, domain.Credentials{EmpID: 1000, Code: "A1", Password: "nope"})
		assert.True(t, errs.ErrorEqual(errs.InvalidPassword, bizErr))
	})

	t.Run("success returns profile without hash", func(t *testing.T) {
		_, svc := seed(t)
		u, bizErr := svc.Login(ctx, domain.Credentials{EmpID: 1000, Code: "A1", Password: "p@ss"})
		assert.Nil(t, bizErr)
		assert.Equal(t, int64(1000), u.EmpID)
		assert.Equal(t, "Ana", u.FirstName)
		assert.Equal(t, "ana@x.io", u.Email)
		assert.Empty(t, u.PasswordHash)
	})

	t.Run("record id strategy", func(t *testing.T) {
		_, svc := seed(t, WithLookup(LookupByRecordID))

		_, bizErr := svc.Login(ctx, domain.Credentials{EmpID: 1000, Code: "A1", Password: "p@ss"})
		assert.True(t, errs.ErrorEqual(errs.MissingCredentials, bizErr))

		u, bizErr := svc.Login(ctx, domain.Credentials{RecordID: 1, Code: "A1", Password: "p@ss"})
		assert.Nil(t, bizErr)
		assert.Equal(t, int64(1000), u.EmpID)
	})

	t.Run("store error", func(t *testing.T) {
		r, svc := seed(t)
		r.findErr = errors.New("db error")
		_, bizErr := svc.Login(ctx, domain.Credentials{EmpID: 1000, Code: "A1", Password: "p@ss"})
		assert.True(t, errs.ErrorEqual(errs.ServerError, bizErr))
	})
}

func TestService_ListUsers(t *testing.T) {
	ctx := context.Background()
	r := &fakeUserRepo{}
	svc := newService(r)
	_, bizErr := svc.CreateAccount(ctx, anaCruz())
	assert.Nil(t, bizErr)

	users, bizErr := svc.ListUsers(ctx)
	assert.Nil(t, bizErr)
	if assert.Len(t, users, 1) {
		assert.Empty(t, users[0].PasswordHash)
		assert.Equal(t, "A1", users[0].Code)
	}
	assert.NotEmpty(t, r.rows[0].PasswordHash, "stored row keeps its hash")

	r.listErr = errors.New("db error")
	_, bizErr = svc.ListUsers(ctx)
	assert.True(t, errs.ErrorEqual(errs.ServerError, bizErr))
}

func TestParseLookup(t *testing.T) {
	assert.Equal(t, LookupByEmployeeID, ParseLookup(""))
	assert.Equal(t, LookupByEmployeeID, ParseLookup("employee_id"))
	assert.Equal(t, LookupByRecordID, ParseLookup("record_id"))
	assert.Equal(t, LookupByEmployeeID, ParseLookup("email"))
}
