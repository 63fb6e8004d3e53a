//go:generate mockery --name UserService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"cohort_lms/internal/middleware"
	"cohort_lms/internal/model"
	"cohort_lms/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserService interface {
	// ResolveIdentity はIdPのクレームからユーザーを特定する。見つからなければ作成する
	ResolveIdentity(ctx context.Context, claims model.IdentityClaims) (*model.User, error)
	SyncSession(ctx context.Context, principal model.Principal) (*model.UserDetailResponse, error)
	GetProfile(ctx context.Context, principal model.Principal) (*model.UserDetailResponse, error)
	UpdateProfile(ctx context.Context, principal model.Principal, req *model.UpdateProfileRequest) (*model.UserDetailResponse, error)
	ListUsers(ctx context.Context, role *model.Role) ([]model.UserResponse, error)
	GetUser(ctx context.Context, userID uuid.UUID) (*model.UserDetailResponse, error)
	UpdateUser(ctx context.Context, userID uuid.UUID, req *model.UpdateUserRequest) (*model.UserResponse, error)
	SetRole(ctx context.Context, email string, role model.Role) (*model.User, error)
}

type userService struct {
	db         *gorm.DB
	userRepo   repository.UserRepository
	cohortRepo repository.CohortRepository
	identity   IdentityClient
	clock      Clock
	enroller   *enroller
}

func NewUserService(
	db *gorm.DB,
	userRepo repository.UserRepository,
	cohortRepo repository.CohortRepository,
	enrollmentRepo repository.EnrollmentRepository,
	assignmentRepo repository.ModuleAssignmentRepository,
	moduleRepo repository.ModuleRepository,
	identity IdentityClient,
	clock Clock,
) UserService {
	return &userService{
		db:         db,
		userRepo:   userRepo,
		cohortRepo: cohortRepo,
		identity:   identity,
		clock:      clock,
		enroller: &enroller{
			enrollmentRepo: enrollmentRepo,
			assignmentRepo: assignmentRepo,
			moduleRepo:     moduleRepo,
		},
	}
}

var errUnresolvableIdentity = model.NewAppError("UNAUTHORIZED", "Unable to authenticate user", "", model.ErrUnauthorized)

func (s *userService) ResolveIdentity(ctx context.Context, claims model.IdentityClaims) (*model.User, error) {
	logger := middleware.GetLogger(ctx)

	if claims.Subject == "" {
		return nil, errUnresolvableIdentity
	}

	// JWTにメールアドレスが無ければIdPのAPIで補完する。失敗しても続行
	if claims.Email == "" && s.identity != nil {
		profile, err := s.identity.FetchProfile(ctx, claims.Subject)
		if err != nil {
			logger.Warn("Identity profile lookup failed, continuing without email", "error", err, "subject", claims.Subject)
		} else {
			claims.Email = profile.Email
			if claims.FirstName == "" {
				claims.FirstName = profile.FirstName
			}
			if claims.LastName == "" {
				claims.LastName = profile.LastName
			}
		}
	}
	claims.Email = strings.TrimSpace(claims.Email)

	signedInAt := s.clock.Now()
	var resolved *model.User

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. 既存ユーザー (external_id)
		user, err := s.userRepo.FindByExternalID(ctx, tx, claims.Subject)
		if err == nil {
			if claims.Email != "" {
				user.Email = claims.Email
			}
			if claims.FirstName != "" {
				user.FirstName = claims.FirstName
			}
			if claims.LastName != "" {
				user.LastName = claims.LastName
			}
			user.LastSignInAt = &signedInAt
			resolved = user
			return s.userRepo.Update(ctx, tx, user)
		}
		if !errors.Is(err, model.ErrNotFound) {
			return err
		}

		// 2. 招待済みユーザー (email) に external_id を紐付ける
		if claims.Email != "" {
			user, err := s.userRepo.FindByEmail(ctx, tx, claims.Email)
			if err == nil {
				user.ExternalID = claims.Subject
				user.FirstName = claims.FirstName
				user.LastName = claims.LastName
				user.LastSignInAt = &signedInAt
				resolved = user
				logger.Info("Linked identity to invited user", "user_id", user.ID.String())
				return s.userRepo.Update(ctx, tx, user)
			}
			if !errors.Is(err, model.ErrNotFound) {
				return err
			}
		}

		// 3. 最初のユーザーは管理者
		count, err := s.userRepo.Count(ctx, tx)
		if err != nil {
			return err
		}
		if count == 0 {
			email := claims.Email
			if email == "" {
				email = claims.Subject + "@placeholder.local"
			}
			user := s.newUser(claims, email, model.RoleAdmin, signedInAt)
			if err := s.userRepo.Create(ctx, tx, user); err != nil {
				return err
			}
			logger.Info("Created first user as admin", "user_id", user.ID.String())
			resolved = user
			return nil
		}

		// 4. それ以外は受講者として作成し、進行中のブートキャンプに登録する
		if claims.Email == "" {
			return errUnresolvableIdentity
		}
		user = s.newUser(claims, claims.Email, model.RoleStudent, signedInAt)
		if err := s.userRepo.Create(ctx, tx, user); err != nil {
			return err
		}
		cohort, err := s.cohortRepo.FindFirstActiveBootcamp(ctx, tx)
		switch {
		case err == nil:
			if _, err := s.enroller.enroll(ctx, tx, user.ID, cohort); err != nil {
				return err
			}
			logger.Info("Auto-enrolled new student", "user_id", user.ID.String(), "cohort_id", cohort.ID.String())
		case errors.Is(err, model.ErrNotFound):
			logger.Info("No active bootcamp cohort for auto-enrollment", "user_id", user.ID.String())
		default:
			return err
		}
		resolved = user
		return nil
	})
	if err != nil {
		return nil, repoError(err, "User")
	}
	return resolved, nil
}

func (s *userService) newUser(claims model.IdentityClaims, email string, role model.Role, signedInAt time.Time) *model.User {
	return &model.User{
		ID:           uuid.New(),
		ExternalID:   claims.Subject,
		Email:        email,
		FirstName:    claims.FirstName,
		LastName:     claims.LastName,
		Role:         role,
		LastSignInAt: &signedInAt,
	}
}

func (s *userService) detail(ctx context.Context, userID uuid.UUID) (*model.UserDetailResponse, error) {
	user, err := s.userRepo.FindWithEnrollments(ctx, s.db, userID)
	if err != nil {
		return nil, repoError(err, "User")
	}
	resp := model.NewUserDetailResponse(user)
	return &resp, nil
}

// SyncSession はサインイン直後にフロントエンドが呼ぶ。ユーザーの同期は認証ミドルウェアで済んでいる
func (s *userService) SyncSession(ctx context.Context, principal model.Principal) (*model.UserDetailResponse, error) {
	return s.detail(ctx, principal.UserID)
}

func (s *userService) GetProfile(ctx context.Context, principal model.Principal) (*model.UserDetailResponse, error) {
	return s.detail(ctx, principal.UserID)
}

func (s *userService) UpdateProfile(ctx context.Context, principal model.Principal, req *model.UpdateProfileRequest) (*model.UserDetailResponse, error) {
	user, err := s.userRepo.FindByID(ctx, s.db, principal.UserID)
	if err != nil {
		return nil, repoError(err, "User")
	}
	if req.GithubUsername != nil {
		user.GithubUsername = strings.TrimSpace(*req.GithubUsername)
	}
	if req.AvatarURL != nil {
		user.AvatarURL = *req.AvatarURL
	}
	if err := s.userRepo.Update(ctx, s.db, user); err != nil {
		return nil, repoError(err, "User")
	}
	return s.detail(ctx, principal.UserID)
}

func (s *userService) ListUsers(ctx context.Context, role *model.Role) ([]model.UserResponse, error) {
	users, err := s.userRepo.List(ctx, s.db, role)
	if err != nil {
		return nil, internalError(err)
	}
	resp := make([]model.UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, model.NewUserResponse(u))
	}
	return resp, nil
}

func (s *userService) GetUser(ctx context.Context, userID uuid.UUID) (*model.UserDetailResponse, error) {
	return s.detail(ctx, userID)
}

func (s *userService) UpdateUser(ctx context.Context, userID uuid.UUID, req *model.UpdateUserRequest) (*model.UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, s.db, userID)
	if err != nil {
		return nil, repoError(err, "User")
	}
	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.Role != nil {
		role, err := model.ParseRole(*req.Role)
		if err != nil {
			return nil, validationError(err.Error(), "role")
		}
		user.Role = role
	}
	if req.GithubUsername != nil {
		user.GithubUsername = *req.GithubUsername
	}
	if req.AvatarURL != nil {
		user.AvatarURL = *req.AvatarURL
	}
	if err := s.userRepo.Update(ctx, s.db, user); err != nil {
		return nil, repoError(err, "User")
	}
	resp := model.NewUserResponse(user)
	return &resp, nil
}

// SetRole は管理CLIから使う
func (s *userService) SetRole(ctx context.Context, email string, role model.Role) (*model.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, s.db, email)
	if err != nil {
		return nil, repoError(err, "User")
	}
	user.Role = role
	if err := s.userRepo.Update(ctx, s.db, user); err != nil {
		return nil, repoError(err, "User")
	}
	return user, nil
}
