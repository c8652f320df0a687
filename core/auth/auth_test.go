package auth

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/colegio/core"
	"github.com/trezcool/colegio/core/school"
	"github.com/trezcool/colegio/tests"
)

type failingFinder struct{}

func (failingFinder) GetUserByEmail(string) (school.User, error) {
	return school.User{}, errors.New("boom")
}

func setup(t *testing.T, users ...UserFinder) *Service {
	var finder UserFinder
	if len(users) > 0 {
		finder = users[0]
	} else {
		finder = testutil.PrepareRepo(t)
	}
	translator := core.NewTranslator()
	return NewService(finder, core.NewValidate(translator), translator)
}

func TestService_Authenticate(t *testing.T) {
	svc := setup(t)

	tests := []struct {
		name       string
		req        LoginRequest
		wantID     string
		wantErr    error
		wantField  string
		wantErrStr string
	}{
		{
			name:      "missing email",
			req:       LoginRequest{Password: "Mateo Silva", Role: "STUDENT"},
			wantErr:   ErrMissingCredentials,
			wantField: "email",
		},
		{
			name:      "missing password",
			req:       LoginRequest{Email: "alumno.init_3@colegio.edu", Role: "STUDENT"},
			wantErr:   ErrMissingCredentials,
			wantField: "password",
		},
		{
			name:      "blank email",
			req:       LoginRequest{Email: "   ", Password: "Mateo Silva", Role: "STUDENT"},
			wantErr:   ErrMissingCredentials,
			wantField: "email",
		},
		{
			name:      "invalid role",
			req:       LoginRequest{Email: "alumno.init_3@colegio.edu", Password: "Mateo Silva", Role: "PARENT"},
			wantErr:   ErrInvalidRole,
			wantField: "role",
		},
		{
			name:      "invalid role and missing password",
			req:       LoginRequest{Email: "alumno.init_3@colegio.edu", Role: "PARENT"},
			wantErr:   ErrMissingCredentials,
			wantField: "password",
		},
		{
			name:      "unknown email",
			req:       LoginRequest{Email: "nadie@colegio.edu", Password: "Nadie", Role: "STUDENT"},
			wantErr:   ErrUserNotFound,
			wantField: "email",
		},
		{
			name:       "role mismatch",
			req:        LoginRequest{Email: "profesor1@colegio.edu", Password: "Prof. García (Matemáticas)", Role: "STUDENT"},
			wantErrStr: "Este correo pertenece a un TEACHER, por favor cambie la pestaña de rol.",
			wantField:  "role",
		},
		{
			name:      "wrong password",
			req:       LoginRequest{Email: "alumno.init_3@colegio.edu", Password: "mateo", Role: "STUDENT"},
			wantErr:   ErrWrongPassword,
			wantField: "password",
		},
		{
			name:   "student",
			req:    LoginRequest{Email: "alumno.init_3@colegio.edu", Password: "Mateo Silva", Role: "STUDENT"},
			wantID: "stud_init_3",
		},
		{
			name:   "case and spaces ignored",
			req:    LoginRequest{Email: " ALUMNO.sec_3@Colegio.edu ", Password: "  isabella VASQUEZ ", Role: "student"},
			wantID: "stud_sec_3",
		},
		{
			name:   "admin",
			req:    LoginRequest{Email: "director@colegio.edu", Password: "director general", Role: "ADMIN"},
			wantID: "admin1",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			usr, err := svc.Authenticate(tt.req)
			if tt.wantID != "" {
				require.NoError(t, err)
				assert.Equal(t, tt.wantID, usr.ID)
				return
			}

			require.Error(t, err)
			require.True(t, core.IsValidationError(err), "error %v is not a validation error", err)
			verr := errors.Cause(err).(*core.ValidationError)
			if tt.wantErr != nil {
				assert.Equal(t, tt.wantErr, verr.Err)
			}
			if tt.wantErrStr != "" {
				assert.Equal(t, tt.wantErrStr, err.Error())
			}
			var fields []string
			for _, fe := range verr.Fields {
				fields = append(fields, fe.Field)
			}
			assert.Contains(t, fields, tt.wantField)
		})
	}
}

func TestService_Authenticate_roleMismatch(t *testing.T) {
	svc := setup(t)

	_, err := svc.Authenticate(LoginRequest{Email: "director@colegio.edu", Password: "Director General", Role: "TEACHER"})
	var mismatch RoleMismatchError
	require.True(t, errors.As(err, &mismatch))
	assert.Equal(t, school.RoleAdmin, mismatch.Role)
}

func TestService_Authenticate_finderError(t *testing.T) {
	svc := setup(t, failingFinder{})

	_, err := svc.Authenticate(LoginRequest{Email: "a@b.c", Password: "x", Role: "ADMIN"})
	require.Error(t, err)
	assert.False(t, core.IsValidationError(err))
}

func Test_mustRegisterValidation(t *testing.T) {
	validate := core.NewValidate(core.NewTranslator())
	assert.Panics(t, func() { mustRegisterValidation(validate, "", roleValidation) })
	assert.NotPanics(t, func() { mustRegisterValidation(validate, roleTag, roleValidation) })
}

func TestCheckPassword(t *testing.T) {
	usr := school.User{Name: "Mateo Silva"}
	assert.True(t, CheckPassword(usr, "Mateo Silva"))
	assert.True(t, CheckPassword(usr, " mateo silva\t"))
	assert.False(t, CheckPassword(usr, "Mateo  Silva"))
	assert.False(t, CheckPassword(usr, ""))
}
