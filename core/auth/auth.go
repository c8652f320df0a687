// Package auth checks dashboard logins: the email picks the user, the role tab
// must match the user's role and the password is the user's full name.
// There are no tokens nor sessions.
package auth

import (
	"fmt"
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/trezcool/colegio/core"
	"github.com/trezcool/colegio/core/school"
)

var (
	// errors
	ErrMissingCredentials = errors.New("Por favor ingrese correo y contraseña.")
	ErrInvalidRole        = errors.New("Rol no válido. Seleccione ADMIN, TEACHER o STUDENT.")
	ErrUserNotFound       = errors.New("Usuario no encontrado en la base de datos.")
	ErrWrongPassword      = errors.New("Contraseña incorrecta. Su contraseña es su nombre completo (Ej: Mateo Silva).")

	requiredTag = "required"
	roleTag     = "role"
	roleText    = "{0} debe ser uno de ADMIN, TEACHER o STUDENT"
)

// RoleMismatchError is returned when the email belongs to a user of another role.
type RoleMismatchError struct {
	Role school.Role
}

func (err RoleMismatchError) Error() string {
	return fmt.Sprintf("Este correo pertenece a un %s, por favor cambie la pestaña de rol.", err.Role)
}

type (
	LoginRequest struct {
		Email    string `json:"email" validate:"required"`
		Password string `json:"password" validate:"required"`
		Role     string `json:"role" validate:"required,role"`
	}

	// UserFinder looks users up by email, case-insensitively.
	UserFinder interface {
		GetUserByEmail(email string) (school.User, error)
	}

	Service struct {
		users      UserFinder
		validate   *validator.Validate
		translator ut.Translator
	}
)

func NewService(users UserFinder, validate *validator.Validate, translator ut.Translator) *Service {
	mustRegisterValidation(validate, roleTag, roleValidation)
	core.RegisterCustomTranslation(validate, translator, roleTag, roleText)
	return &Service{users: users, validate: validate, translator: translator}
}

// mustRegisterValidation panics if the validation cannot be registered: tags are static.
func mustRegisterValidation(validate *validator.Validate, tag string, fn validator.Func) {
	if err := validate.RegisterValidation(tag, fn); err != nil {
		panic(errors.Wrapf(err, "registering %q validation", tag))
	}
}

func roleValidation(fl validator.FieldLevel) bool {
	_, ok := school.ParseRole(fl.Field().String())
	return ok
}

// Authenticate returns the user matching req. Every rejection is a
// *core.ValidationError whose Err is one of the package errors or a
// RoleMismatchError; other errors come from the UserFinder.
// A missing field wins over an invalid role.
func (svc *Service) Authenticate(req LoginRequest) (school.User, error) {
	req.Email = core.CleanString(req.Email)
	req.Role = core.CleanString(req.Role)
	if err := svc.validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return school.User{}, core.NewValidationError(requestError(verrs), core.FieldErrors(verrs, svc.translator)...)
		}
		return school.User{}, errors.Wrap(err, "validating login request")
	}
	role, _ := school.ParseRole(req.Role)

	usr, err := svc.users.GetUserByEmail(req.Email)
	if err != nil {
		if errors.Cause(err) == school.ErrNotFound {
			return school.User{}, core.NewValidationError(ErrUserNotFound, core.FieldError{Field: "email", Error: ErrUserNotFound.Error()})
		}
		return school.User{}, errors.Wrap(err, "finding user by email")
	}

	if usr.Role != role {
		mismatch := RoleMismatchError{Role: usr.Role}
		return school.User{}, core.NewValidationError(mismatch, core.FieldError{Field: "role", Error: mismatch.Error()})
	}

	if !CheckPassword(usr, req.Password) {
		return school.User{}, core.NewValidationError(ErrWrongPassword, core.FieldError{Field: "password", Error: ErrWrongPassword.Error()})
	}
	return usr, nil
}

func requestError(verrs validator.ValidationErrors) error {
	for _, fe := range verrs {
		if fe.Tag() == requiredTag {
			return ErrMissingCredentials
		}
	}
	return ErrInvalidRole
}

// CheckPassword reports whether pwd is the user's name, ignoring case and
// surrounding whitespace.
func CheckPassword(usr school.User, pwd string) bool {
	return strings.ToLower(strings.TrimSpace(pwd)) == strings.ToLower(usr.Name)
}
