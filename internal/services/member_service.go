package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/libraryservice/backend/internal/models"
	"go.uber.org/zap"
)

// MemberRepository is the interface that wraps methods for user data access needed by member management
type MemberRepository interface {
	AccountRepository
	// Method ListByRole retrieves all users of a role, soft-deleted users included.
	ListByRole(ctx context.Context, role models.Role) ([]models.User, error)
	// Method GetActiveByID retrieves a user that is not soft-deleted.
	//
	// If no such user exists, a models.ErrNotFound error is returned.
	GetActiveByID(ctx context.Context, id string) (*models.User, error)
	// Method UpdateProfile sets username, address and email of an active user.
	//
	// If the new username is held by another active user, a models.ErrConflict error is returned.
	UpdateProfile(ctx context.Context, user *models.User) error
	// Method SoftDelete flags an active user as deleted.
	SoftDelete(ctx context.Context, id string) error
}

// BorrowedBookRepository is the interface that wraps the borrower lookup of books
type BorrowedBookRepository interface {
	// Method ListByBorrower retrieves all books whose last borrower is "userID", soft-deleted books included.
	ListByBorrower(ctx context.Context, userID string) ([]models.Book, error)
}

// BookLogReader is the interface that wraps reads of the borrow log
type BookLogReader interface {
	// Method ListByUser retrieves the log entries of a user, newest first.
	ListByUser(ctx context.Context, userID string) ([]models.BookLog, error)
}

// memberService implements member management for librarians
type memberService struct {
	userRepo MemberRepository
	bookRepo BorrowedBookRepository
	logRepo  BookLogReader
	hasher   PasswordHasher
	logger   *zap.Logger
}

// NewMemberService creates a new member service
func NewMemberService(
	userRepo MemberRepository,
	bookRepo BorrowedBookRepository,
	logRepo BookLogReader,
	hasher PasswordHasher,
	logger *zap.Logger,
) *memberService {
	return &memberService{
		userRepo: userRepo,
		bookRepo: bookRepo,
		logRepo:  logRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

// ListMembers returns every member account with its Active/Deleted status
func (s *memberService) ListMembers(ctx context.Context) ([]models.MemberListItem, error) {
	users, err := s.userRepo.ListByRole(ctx, models.RoleMember)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}

	items := make([]models.MemberListItem, 0, len(users))
	for i := range users {
		items = append(items, users[i].ListItem())
	}
	return items, nil
}

// CreateMember creates a new account on behalf of a librarian.
// The account is a member unless the request names another user_type.
func (s *memberService) CreateMember(ctx context.Context, req *models.SignupRequest) (*models.User, error) {
	user, err := createAccount(ctx, s.userRepo, s.hasher, req, models.RoleMember)
	if err != nil {
		return nil, err
	}

	s.logger.Info("member created", zap.String("userId", user.ID), zap.String("role", user.Role.String()))
	return user, nil
}

// GetMember returns the details of an active member
func (s *memberService) GetMember(ctx context.Context, id string) (*models.MemberDetails, error) {
	member, err := s.activeMember(ctx, id)
	if err != nil {
		return nil, err
	}

	details := member.Details()
	return &details, nil
}

// UpdateMember changes username, address and email of an active member.
// Empty address or email keep the stored value. The role never changes.
func (s *memberService) UpdateMember(ctx context.Context, id string, req *models.UpdateMemberRequest) error {
	member, err := s.activeMember(ctx, id)
	if err != nil {
		return err
	}

	username, err := validateUsername(req.Username)
	if err != nil {
		return err
	}
	if username != member.Username {
		exists, err := s.userRepo.ExistsByUsername(ctx, username)
		if err != nil {
			return fmt.Errorf("failed to check username: %w", err)
		}
		if exists {
			return models.NewError(models.ErrConflict, "username already exist")
		}
		member.Username = username
	}
	if strings.TrimSpace(req.Email) != "" {
		email, err := validateEmail(req.Email)
		if err != nil {
			return err
		}
		member.Email = email
	}
	if address := strings.TrimSpace(req.Address); address != "" {
		member.Address = address
	}

	if err := s.userRepo.UpdateProfile(ctx, member); err != nil {
		return fmt.Errorf("failed to update member: %w", err)
	}
	return nil
}

// DeleteMember soft-deletes an active member
func (s *memberService) DeleteMember(ctx context.Context, id string) error {
	if _, err := s.activeMember(ctx, id); err != nil {
		return err
	}

	if err := s.userRepo.SoftDelete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete member: %w", err)
	}

	s.logger.Info("member deleted", zap.String("userId", id))
	return nil
}

// History returns the books last borrowed by an active member together with the member's borrow log
func (s *memberService) History(ctx context.Context, id string) (*models.MemberHistory, error) {
	if _, err := s.activeMember(ctx, id); err != nil {
		return nil, err
	}

	books, err := s.bookRepo.ListByBorrower(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list borrowed books: %w", err)
	}
	logs, err := s.logRepo.ListByUser(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list borrow log: %w", err)
	}
	if logs == nil {
		logs = []models.BookLog{}
	}

	return &models.MemberHistory{
		Books: toBookListItems(books),
		Logs:  logs,
	}, nil
}

// activeMember loads an active user with the member role.
// Librarian accounts are not reachable through member management.
func (s *memberService) activeMember(ctx context.Context, id string) (*models.User, error) {
	user, err := s.userRepo.GetActiveByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get member: %w", err)
	}

	switch user.Role {
	case models.RoleMember:
		return user, nil
	case models.RoleLibrarian:
		return nil, models.NewError(models.ErrNotFound, "Member not found")
	default:
		return nil, fmt.Errorf("member %s has unknown role %q", user.ID, user.Role)
	}
}
