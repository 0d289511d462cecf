package services

import (
	"errors"
	"time"

	"github.com/hmorita/group-task-api/internal/apperrors"
	"github.com/hmorita/group-task-api/internal/dto"
	"github.com/hmorita/group-task-api/internal/guard"
	"github.com/hmorita/group-task-api/internal/models"
	"github.com/hmorita/group-task-api/internal/repository"
	"github.com/hmorita/group-task-api/internal/utils"
	"gorm.io/gorm"
)

// InviteService handles the group invite aggregate and its status machine:
// pending -> accepted | rejected, terminal states not re-enterable.
type InviteService struct {
	db *gorm.DB
}

// NewInviteService creates a new InviteService.
func NewInviteService(db *gorm.DB) *InviteService {
	return &InviteService{db: db}
}

// CreateInviteInput represents parameters to invite a user to a group.
type CreateInviteInput struct {
	InviterID string
	InviteeID string
	GroupID   string
	Password  string
}

// Create issues a pending invite. At most one pending invite may exist per
// (invitee, group).
func (s *InviteService) Create(input CreateInviteInput) (string, error) {
	var inviteID string
	err := s.db.Transaction(func(tx *gorm.DB) error {
		ok, err := guard.UserExists(tx, input.InviterID)
		if err != nil {
			return err
		}
		if !ok {
			return apperrors.ErrUserNotFound
		}
		ok, err = guard.PasswordMatches(tx, input.InviterID, input.Password)
		if err != nil {
			return err
		}
		if !ok {
			return apperrors.ErrWrongPassword
		}
		ok, err = guard.UserExists(tx, input.InviteeID)
		if err != nil {
			return err
		}
		if !ok {
			return apperrors.ErrUserNotFound
		}
		ok, err = guard.GroupExists(tx, input.GroupID)
		if err != nil {
			return err
		}
		if !ok {
			return apperrors.ErrGroupNotFound
		}
		member, err := guard.UserInGroup(tx, input.InviterID, input.GroupID)
		if err != nil {
			return err
		}
		if !member {
			return apperrors.ErrNotGroupMember
		}
		member, err = guard.UserInGroup(tx, input.InviteeID, input.GroupID)
		if err != nil {
			return err
		}
		if member {
			return apperrors.ErrAlreadyInGroup
		}
		_, pending, err := guard.PendingInvite(tx, input.InviteeID, input.GroupID)
		if err != nil {
			return err
		}
		if pending {
			return apperrors.ErrDuplicateInvite
		}

		id, err := utils.NewID(tx, "invite")
		if err != nil {
			return err
		}
		inviteID = id
		return repository.NewInviteRepository(tx).Create(&models.GroupInvite{
			InviteID:  id,
			GroupID:   input.GroupID,
			InviteeID: input.InviteeID,
			InviterID: input.InviterID,
			Status:    models.InviteStatusPending,
			CreatedAt: time.Now().UTC(),
		})
	})
	if err != nil {
		return "", err
	}
	return inviteID, nil
}

// RespondInviteInput represents an invitee's answer to an invite. InviteID is
// optional; when empty the pending invite for (UserID, GroupID) is used.
type RespondInviteInput struct {
	UserID   string
	GroupID  string
	InviteID string
	Password string
	Accept   bool
}

// Respond moves a pending invite to accepted or rejected. Only the addressed
// invitee may respond; accepting adds the membership (idempotent when the
// invitee somehow already joined).
func (s *InviteService) Respond(input RespondInviteInput) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		ok, err := guard.UserExists(tx, input.UserID)
		if err != nil {
			return err
		}
		if !ok {
			return apperrors.ErrUserNotFound
		}
		ok, err = guard.PasswordMatches(tx, input.UserID, input.Password)
		if err != nil {
			return err
		}
		if !ok {
			return apperrors.ErrWrongPassword
		}
		ok, err = guard.GroupExists(tx, input.GroupID)
		if err != nil {
			return err
		}
		if !ok {
			return apperrors.ErrGroupNotFound
		}

		invite, err := s.resolveInvite(tx, input)
		if err != nil {
			return err
		}
		if invite.InviteeID != input.UserID {
			return apperrors.ErrNotInvitee
		}
		if invite.Status != models.InviteStatusPending {
			return apperrors.ErrInviteResolved
		}

		inviteRepo := repository.NewInviteRepository(tx)
		if input.Accept {
			member, err := guard.UserInGroup(tx, input.UserID, invite.GroupID)
			if err != nil {
				return err
			}
			if !member {
				role := "member"
				err = repository.NewGroupRepository(tx).AddMember(&models.GroupMember{
					GroupID:  invite.GroupID,
					UserID:   input.UserID,
					Role:     &role,
					JoinedAt: time.Now(),
				})
				if err != nil {
					return err
				}
			}
			invite.Status = models.InviteStatusAccepted
		} else {
			invite.Status = models.InviteStatusRejected
		}
		return inviteRepo.Update(invite)
	})
}

func (s *InviteService) resolveInvite(tx *gorm.DB, input RespondInviteInput) (*models.GroupInvite, error) {
	repo := repository.NewInviteRepository(tx)
	if input.InviteID != "" {
		invite, err := repo.FindByID(input.InviteID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrInviteNotFound
			}
			return nil, err
		}
		return invite, nil
	}
	invite, err := repo.FindByPair(input.UserID, input.GroupID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInviteNotFound
		}
		return nil, err
	}
	return invite, nil
}

// ListPending returns the pending invites addressed to a user, keyed by
// invite id, with group and inviter names joined in.
func (s *InviteService) ListPending(userID, password string) (map[string]dto.PendingInviteDTO, error) {
	ok, err := guard.UserExists(s.db, userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	ok, err = guard.PasswordMatches(s.db, userID, password)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperrors.ErrWrongPassword
	}

	invites, err := repository.NewInviteRepository(s.db).ListForInvitee(userID)
	if err != nil {
		return nil, err
	}
	result := make(map[string]dto.PendingInviteDTO)
	for _, invite := range invites {
		if invite.Status != models.InviteStatusPending {
			continue
		}
		result[invite.InviteID] = dto.ToPendingInviteDTO(invite)
	}
	return result, nil
}

// ListSent returns the invites a group has issued, keyed by invite id. The
// caller must belong to the group.
func (s *InviteService) ListSent(userID, groupID, password string) (map[string]dto.SentInviteDTO, error) {
	ok, err := guard.UserExists(s.db, userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	ok, err = guard.PasswordMatches(s.db, userID, password)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperrors.ErrWrongPassword
	}
	ok, err = guard.GroupExists(s.db, groupID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperrors.ErrGroupNotFound
	}
	member, err := guard.UserInGroup(s.db, userID, groupID)
	if err != nil {
		return nil, err
	}
	if !member {
		return nil, apperrors.ErrNotGroupMember
	}

	invites, err := repository.NewInviteRepository(s.db).ListForGroup(groupID)
	if err != nil {
		return nil, err
	}
	result := make(map[string]dto.SentInviteDTO, len(invites))
	for _, invite := range invites {
		result[invite.InviteID] = dto.ToSentInviteDTO(invite)
	}
	return result, nil
}

// DeleteInviteInput represents a group-side removal of an invite.
type DeleteInviteInput struct {
	ActorID   string
	InviteeID string
	GroupID   string
	Password  string
}

// Delete removes the invite for (invitee, group) outright, independent of its
// status. Any member of the group may do this.
func (s *InviteService) Delete(input DeleteInviteInput) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		ok, err := guard.UserExists(tx, input.ActorID)
		if err != nil {
			return err
		}
		if !ok {
			return apperrors.ErrUserNotFound
		}
		ok, err = guard.PasswordMatches(tx, input.ActorID, input.Password)
		if err != nil {
			return err
		}
		if !ok {
			return apperrors.ErrWrongPassword
		}
		ok, err = guard.UserExists(tx, input.InviteeID)
		if err != nil {
			return err
		}
		if !ok {
			return apperrors.ErrUserNotFound
		}
		ok, err = guard.GroupExists(tx, input.GroupID)
		if err != nil {
			return err
		}
		if !ok {
			return apperrors.ErrGroupNotFound
		}
		member, err := guard.UserInGroup(tx, input.ActorID, input.GroupID)
		if err != nil {
			return err
		}
		if !member {
			return apperrors.ErrNotGroupMember
		}

		repo := repository.NewInviteRepository(tx)
		invite, err := repo.FindByPair(input.InviteeID, input.GroupID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrInviteNotFound
			}
			return err
		}
		return repo.Delete(invite.InviteID)
	})
}
