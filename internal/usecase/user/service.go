package user

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"backoffice-cms/internal/common/pagination"
	"backoffice-cms/internal/domain/entity"
	"backoffice-cms/internal/repository"
	"backoffice-cms/internal/service/authz"
)

// Clock supplies the current time so tests can freeze it.
type Clock func() time.Time

// RegisterInput carries the fields for public self-registration.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// CreateInput carries the fields for admin-driven account creation.
type CreateInput struct {
	Name     string
	Email    string
	Password string
	Role     entity.Role
}

// UpdateProfileInput is a partial profile update. Nil fields stay untouched.
type UpdateProfileInput struct {
	ID    int64
	Name  *string
	Email *string
}

// PaginatedResult is a page of users plus pagination metadata.
type PaginatedResult struct {
	Data       []*entity.User      `json:"data"`
	Pagination pagination.Metadata `json:"pagination"`
}

// Service implements account management and credential checks.
type Service struct {
	Repo repository.UserRepository
	Now  Clock

	// BcryptCost overrides the hashing cost. Zero means bcrypt.DefaultCost.
	BcryptCost int

	// MinPasswordLength overrides the password length floor. Zero means
	// entity.PasswordMinLength.
	MinPasswordLength int

	// WeakPasswords is a deny list checked case-insensitively on top of
	// the minimum length rule.
	WeakPasswords []string
}

func (s *Service) clock() Clock {
	if s.Now != nil {
		return s.Now
	}
	return time.Now
}

func (s *Service) cost() int {
	if s.BcryptCost > 0 {
		return s.BcryptCost
	}
	return bcrypt.DefaultCost
}

func (s *Service) minPasswordLength() int {
	if s.MinPasswordLength > 0 {
		return s.MinPasswordLength
	}
	return entity.PasswordMinLength
}

func (s *Service) checkPassword(pw string) error {
	if minLen := s.minPasswordLength(); len(pw) < minLen {
		return &entity.ValidationError{
			Field:   "password",
			Message: fmt.Sprintf("password must be at least %d characters", minLen),
		}
	}
	for _, weak := range s.WeakPasswords {
		if strings.EqualFold(pw, weak) {
			return ErrWeakPassword
		}
	}
	return nil
}

// Register creates a self-service account. New accounts always start as
// active authors; role escalation is a separate admin operation.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*entity.User, error) {
	if verr := entity.ValidateUserName(in.Name); verr != nil {
		return nil, verr
	}
	if verr := entity.ValidateEmail(in.Email); verr != nil {
		return nil, verr
	}
	if err := s.checkPassword(in.Password); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.cost())
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u := &entity.User{
		Name:         strings.TrimSpace(in.Name),
		Email:        strings.ToLower(strings.TrimSpace(in.Email)),
		PasswordHash: string(hash),
		Role:         entity.RoleAuthor,
		IsActive:     true,
	}
	if err := s.Repo.Create(ctx, u); err != nil {
		if entity.IsConflict(err, "") {
			return nil, err
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return u, nil
}

// Authenticate verifies credentials and records the login time. The error
// for a bad email and a bad password is identical on purpose.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*entity.User, error) {
	u, err := s.Repo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	if u == nil {
		// Burn a comparison anyway to keep timing consistent.
		_ = bcrypt.CompareHashAndPassword([]byte("$2a$10$000000000000000000000u"), []byte(password))
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	if !u.IsActive {
		return nil, ErrAccountDisabled
	}

	now := s.clock()()
	if err := s.Repo.TouchLastLogin(ctx, u.ID, now); err != nil {
		return nil, fmt.Errorf("record login time: %w", err)
	}
	u.LastLoginAt = &now
	return u, nil
}

// List returns a page of accounts. Actors whose user read scope is limited
// to themselves are refused; they should use Get with their own ID.
func (s *Service) List(ctx context.Context, actor authz.Actor, params pagination.Params) (*PaginatedResult, error) {
	decision := authz.Authorize(actor, authz.ActionRead, authz.ResourceUser, nil)
	if err := decision.Err(authz.ActionRead, authz.ResourceUser); err != nil {
		return nil, err
	}
	if actor.Role != entity.RoleAdmin && authz.ScopeFor(actor.Role, authz.ResourceUser, authz.ActionRead) != authz.ScopeAny {
		return nil, authz.Deny(authz.ReasonAccessDenied).Err(authz.ActionRead, authz.ResourceUser)
	}

	total, err := s.Repo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}

	offset := pagination.CalculateOffset(params.Page, params.Limit)
	users, err := s.Repo.List(ctx, offset, params.Limit)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	return &PaginatedResult{
		Data: users,
		Pagination: pagination.Metadata{
			Total:      total,
			Page:       params.Page,
			Limit:      params.Limit,
			TotalPages: pagination.CalculateTotalPages(total, params.Limit),
		},
	}, nil
}

func (s *Service) Get(ctx context.Context, actor authz.Actor, id int64) (*entity.User, error) {
	if id <= 0 {
		return nil, ErrInvalidUserID
	}
	decision := authz.Authorize(actor, authz.ActionRead, authz.ResourceUser,
		&authz.Resource{Kind: authz.ResourceUser, OwnerID: id})
	if err := decision.Err(authz.ActionRead, authz.ResourceUser); err != nil {
		return nil, err
	}

	u, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}

// Create provisions an account with an explicit role. Admin only through
// the policy table.
func (s *Service) Create(ctx context.Context, actor authz.Actor, in CreateInput) (*entity.User, error) {
	decision := authz.Authorize(actor, authz.ActionCreate, authz.ResourceUser, nil)
	if err := decision.Err(authz.ActionCreate, authz.ResourceUser); err != nil {
		return nil, err
	}

	if verr := entity.ValidateUserName(in.Name); verr != nil {
		return nil, verr
	}
	if verr := entity.ValidateEmail(in.Email); verr != nil {
		return nil, verr
	}
	role := in.Role
	if role == "" {
		role = entity.RoleAuthor
	}
	if verr := entity.ValidateRole(role); verr != nil {
		return nil, verr
	}
	if err := s.checkPassword(in.Password); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.cost())
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u := &entity.User{
		Name:         strings.TrimSpace(in.Name),
		Email:        strings.ToLower(strings.TrimSpace(in.Email)),
		PasswordHash: string(hash),
		Role:         role,
		IsActive:     true,
	}
	if err := s.Repo.Create(ctx, u); err != nil {
		if entity.IsConflict(err, "") {
			return nil, err
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return u, nil
}

// UpdateProfile changes name and email. Non-admins may only touch their own
// profile, and only the fields on the allow list.
func (s *Service) UpdateProfile(ctx context.Context, actor authz.Actor, in UpdateProfileInput) (*entity.User, error) {
	if in.ID <= 0 {
		return nil, ErrInvalidUserID
	}
	decision := authz.Authorize(actor, authz.ActionUpdate, authz.ResourceUser,
		&authz.Resource{Kind: authz.ResourceUser, OwnerID: in.ID})
	if err := decision.Err(authz.ActionUpdate, authz.ResourceUser); err != nil {
		return nil, err
	}

	u, err := s.Repo.Get(ctx, in.ID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if u == nil {
		return nil, ErrUserNotFound
	}

	if in.Name != nil {
		if verr := entity.ValidateUserName(*in.Name); verr != nil {
			return nil, verr
		}
		u.Name = strings.TrimSpace(*in.Name)
	}
	if in.Email != nil {
		if verr := entity.ValidateEmail(*in.Email); verr != nil {
			return nil, verr
		}
		email := strings.ToLower(strings.TrimSpace(*in.Email))
		if email != u.Email {
			u.Email = email
			u.EmailVerified = false
		}
	}

	if err := s.Repo.Update(ctx, u); err != nil {
		if entity.IsConflict(err, "") {
			return nil, err
		}
		return nil, fmt.Errorf("update user: %w", err)
	}
	return u, nil
}

// ChangeRole sets a user's role. Admins cannot demote themselves so the
// system always keeps at least the acting admin.
func (s *Service) ChangeRole(ctx context.Context, actor authz.Actor, id int64, role entity.Role) (*entity.User, error) {
	if id <= 0 {
		return nil, ErrInvalidUserID
	}
	decision := authz.Authorize(actor, authz.ActionChangeRole, authz.ResourceUser,
		&authz.Resource{Kind: authz.ResourceUser, OwnerID: id})
	if err := decision.Err(authz.ActionChangeRole, authz.ResourceUser); err != nil {
		return nil, err
	}
	if id == actor.ID {
		return nil, ErrSelfDemotion
	}
	if verr := entity.ValidateRole(role); verr != nil {
		return nil, verr
	}

	u, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if u == nil {
		return nil, ErrUserNotFound
	}

	u.Role = role
	if err := s.Repo.Update(ctx, u); err != nil {
		return nil, fmt.Errorf("update user role: %w", err)
	}
	return u, nil
}

// SetActive enables or disables an account. Disabled accounts cannot log in
// and every authorization check refuses them.
func (s *Service) SetActive(ctx context.Context, actor authz.Actor, id int64, active bool) (*entity.User, error) {
	if id <= 0 {
		return nil, ErrInvalidUserID
	}
	decision := authz.Authorize(actor, authz.ActionChangeStatus, authz.ResourceUser,
		&authz.Resource{Kind: authz.ResourceUser, OwnerID: id})
	if err := decision.Err(authz.ActionChangeStatus, authz.ResourceUser); err != nil {
		return nil, err
	}
	if id == actor.ID {
		return nil, ErrSelfDemotion
	}

	u, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if u == nil {
		return nil, ErrUserNotFound
	}

	u.IsActive = active
	if err := s.Repo.Update(ctx, u); err != nil {
		return nil, fmt.Errorf("update user status: %w", err)
	}
	return u, nil
}

// Delete removes an account. Admin only; self-deletion is refused.
func (s *Service) Delete(ctx context.Context, actor authz.Actor, id int64) error {
	if id <= 0 {
		return ErrInvalidUserID
	}
	decision := authz.Authorize(actor, authz.ActionDelete, authz.ResourceUser,
		&authz.Resource{Kind: authz.ResourceUser, OwnerID: id})
	if err := decision.Err(authz.ActionDelete, authz.ResourceUser); err != nil {
		return err
	}
	if id == actor.ID {
		return ErrSelfDemotion
	}

	u, err := s.Repo.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("get user: %w", err)
	}
	if u == nil {
		return ErrUserNotFound
	}

	if err := s.Repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}
