package account

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/happypaws-scheduler/internal/audit"
	"github.com/BruksfildServices01/happypaws-scheduler/internal/auth"
	"github.com/BruksfildServices01/happypaws-scheduler/internal/httperr"
	"github.com/BruksfildServices01/happypaws-scheduler/internal/models"
	"github.com/BruksfildServices01/happypaws-scheduler/internal/timezone"
)

// ======================================================
// INPUT / OUTPUT
// ======================================================

type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Phone     string
	Address   string
}

type Session struct {
	User  *models.User
	Token string
}

// ======================================================
// REGISTER
// ======================================================

type Register struct {
	repo   Repository
	tokens *auth.TokenIssuer
	audit  audit.Sink
	clock  timezone.Clock
}

func NewRegister(
	repo Repository,
	tokens *auth.TokenIssuer,
	audit audit.Sink,
	clock timezone.Clock,
) *Register {
	return &Register{
		repo:   repo,
		tokens: tokens,
		audit:  audit,
		clock:  clock,
	}
}

// Execute creates a regular user. Admin accounts are provisioned out of band.
func (uc *Register) Execute(ctx context.Context, in RegisterInput) (*Session, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		FirstName:    strings.TrimSpace(in.FirstName),
		LastName:     strings.TrimSpace(in.LastName),
		Email:        normalizeEmail(in.Email),
		PasswordHash: string(hashed),
		Phone:        in.Phone,
		Address:      in.Address,
		Role:         string(auth.RoleUser),
		JoinedAt:     timezone.Today(uc.clock),
	}

	if err := uc.repo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	token, err := uc.tokens.Issue(user.ID, auth.RoleUser)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  user.ID,
		Action:   "user_registered",
		Entity:   "user",
		EntityID: user.ID,
	})

	return &Session{User: user, Token: token}, nil
}

// ======================================================
// LOGIN
// ======================================================

type Login struct {
	repo   Repository
	tokens *auth.TokenIssuer
}

func NewLogin(repo Repository, tokens *auth.TokenIssuer) *Login {
	return &Login{repo: repo, tokens: tokens}
}

func (uc *Login) Execute(ctx context.Context, email, password string) (*Session, error) {
	user, err := uc.repo.GetUserByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if httperr.IsKind(err, httperr.KindNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	role := auth.Role(user.Role)
	if !role.Valid() {
		role = auth.RoleUser
	}

	token, err := uc.tokens.Issue(user.ID, role)
	if err != nil {
		return nil, err
	}

	return &Session{User: user, Token: token}, nil
}

// ErrInvalidCredentials covers both an unknown email and a wrong password.
var ErrInvalidCredentials = httperr.ErrUnauthorized("invalid_credentials")

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
