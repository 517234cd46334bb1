package identity

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rekberinx/rekber-bot/internal/domain"
)

// Usecase is the identity gate: it resolves chat participants to persisted
// user records and answers the ban/admin/membership questions every inbound
// event is gated on.
type Usecase struct {
	Users      domain.UserRepository
	Audit      domain.AuditLogRepository
	Membership domain.MembershipChecker
	OperatorID int64
}

func NewUsecase(users domain.UserRepository, audit domain.AuditLogRepository, membership domain.MembershipChecker, operatorID int64) *Usecase {
	return &Usecase{
		Users:      users,
		Audit:      audit,
		Membership: membership,
		OperatorID: operatorID,
	}
}

// Resolve inserts the user on first contact (admin flag iff the id is the
// configured operator) and refreshes last_active otherwise. Persistence
// errors are logged, never surfaced: the caller always gets a usable record.
func (uc *Usecase) Resolve(ctx context.Context, id int64, handle, fullName string) *domain.User {
	handle = strings.TrimPrefix(handle, "@")

	user, err := uc.Users.GetUserByID(ctx, id)
	if err == nil {
		if err := uc.Users.TouchUser(ctx, id, handle, fullName); err != nil {
			slog.Error("failed to refresh user", "user_id", id, "error", err.Error())
		}
		return user
	}

	user = &domain.User{
		ID:         id,
		Handle:     handle,
		FullName:   fullName,
		IsBanned:   false,
		IsAdmin:    id == uc.OperatorID,
		LastActive: time.Now().UTC(),
		CreatedAt:  time.Now().UTC(),
	}
	if err := uc.Users.CreateUser(ctx, user); err != nil {
		slog.Error("failed to create user", "user_id", id, "error", err.Error())
	}
	return user
}

func (uc *Usecase) IsBanned(ctx context.Context, id int64) bool {
	user, err := uc.Users.GetUserByID(ctx, id)
	if err != nil {
		return false
	}
	return user.IsBanned
}

func (uc *Usecase) IsAdmin(ctx context.Context, id int64) bool {
	user, err := uc.Users.GetUserByID(ctx, id)
	if err != nil {
		return false
	}
	return user.IsAdmin
}

// HasChannelMembership fails closed: any transport error counts as
// "not a member".
func (uc *Usecase) HasChannelMembership(ctx context.Context, id int64) bool {
	member, err := uc.Membership.IsMember(ctx, id)
	if err != nil {
		return false
	}
	return member
}

// Ban blocks a user referenced by numeric id or @handle.
func (uc *Usecase) Ban(ctx context.Context, actorID int64, ref string) (*domain.User, error) {
	return uc.setBanned(ctx, actorID, ref, true)
}

func (uc *Usecase) Unban(ctx context.Context, actorID int64, ref string) (*domain.User, error) {
	return uc.setBanned(ctx, actorID, ref, false)
}

func (uc *Usecase) setBanned(ctx context.Context, actorID int64, ref string, banned bool) (*domain.User, error) {
	user, err := uc.lookup(ctx, ref)
	if err != nil {
		return nil, err
	}

	if err := uc.Users.SetBanned(ctx, user.ID, banned); err != nil {
		return nil, err
	}

	action := domain.AuditUserBanned
	if !banned {
		action = domain.AuditUserUnbanned
	}
	uc.appendAudit(ctx, user.ID, action, actorID)

	user.IsBanned = banned
	return user, nil
}

func (uc *Usecase) lookup(ctx context.Context, ref string) (*domain.User, error) {
	ref = strings.TrimSpace(ref)
	if id, err := strconv.ParseInt(ref, 10, 64); err == nil {
		return uc.Users.GetUserByID(ctx, id)
	}
	return uc.Users.GetUserByHandle(ctx, strings.TrimPrefix(ref, "@"))
}

func (uc *Usecase) appendAudit(ctx context.Context, targetID int64, action domain.AuditAction, actorID int64) {
	entry := &domain.AuditLogEntry{
		ID:        uuid.New().String(),
		Action:    action,
		ActorID:   actorID,
		Notes:     "target user " + strconv.FormatInt(targetID, 10),
		CreatedAt: time.Now().UTC(),
	}
	if err := uc.Audit.AppendAuditLog(ctx, entry); err != nil {
		slog.Error("failed to append audit log", "action", string(action), "error", err.Error())
	}
}

// EnsureOperator guarantees the configured operator exists with the admin
// flag set; called once at startup.
func (uc *Usecase) EnsureOperator(ctx context.Context) {
	if _, err := uc.Users.GetUserByID(ctx, uc.OperatorID); err != nil {
		uc.Resolve(ctx, uc.OperatorID, "", "")
	}
	if err := uc.Users.SetAdmin(ctx, uc.OperatorID, true); err != nil {
		slog.Error("failed to set operator admin flag", "error", err.Error())
	}
}

// CountUsers feeds the admin statistics screen.
func (uc *Usecase) CountUsers(ctx context.Context) int64 {
	total, err := uc.Users.CountUsers(ctx)
	if err != nil {
		return 0
	}
	return total
}
