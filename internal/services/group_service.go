package services

import (
	"time"

	"github.com/hmorita/group-task-api/internal/apperrors"
	"github.com/hmorita/group-task-api/internal/dto"
	"github.com/hmorita/group-task-api/internal/guard"
	"github.com/hmorita/group-task-api/internal/models"
	"github.com/hmorita/group-task-api/internal/repository"
	"github.com/hmorita/group-task-api/internal/utils"
	"gorm.io/gorm"
)

// GroupService handles the group aggregate and its memberships.
type GroupService struct {
	db *gorm.DB
}

// NewGroupService creates a new GroupService.
func NewGroupService(db *gorm.DB) *GroupService {
	return &GroupService{db: db}
}

// CreateGroupInput represents parameters to create a new group.
type CreateGroupInput struct {
	OwnerID     string
	Name        string
	Description string
	Password    string
}

// Create inserts the group and the owner's membership. The owner joins with
// no distinguished role.
func (s *GroupService) Create(input CreateGroupInput) (string, error) {
	var groupID string
	err := s.db.Transaction(func(tx *gorm.DB) error {
		ok, err := guard.UserExists(tx, input.OwnerID)
		if err != nil {
			return err
		}
		if !ok {
			return apperrors.ErrUserNotFound
		}
		ok, err = guard.PasswordMatches(tx, input.OwnerID, input.Password)
		if err != nil {
			return err
		}
		if !ok {
			return apperrors.ErrWrongPassword
		}

		id, err := utils.NewID(tx, "group")
		if err != nil {
			return err
		}
		groupID = id
		return repository.NewGroupRepository(tx).Create(
			&models.Group{
				ID:          id,
				Name:        input.Name,
				Description: input.Description,
				OwnerID:     input.OwnerID,
			},
			&models.GroupMember{
				UserID:   input.OwnerID,
				JoinedAt: time.Now(),
			},
		)
	})
	if err != nil {
		return "", err
	}
	return groupID, nil
}

// Join adds a user to an existing group.
func (s *GroupService) Join(userID, groupID, password string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		ok, err := guard.UserExists(tx, userID)
		if err != nil {
			return err
		}
		if !ok {
			return apperrors.ErrUserNotFound
		}
		ok, err = guard.PasswordMatches(tx, userID, password)
		if err != nil {
			return err
		}
		if !ok {
			return apperrors.ErrWrongPassword
		}
		ok, err = guard.GroupExists(tx, groupID)
		if err != nil {
			return err
		}
		if !ok {
			return apperrors.ErrGroupNotFound
		}
		member, err := guard.UserInGroup(tx, userID, groupID)
		if err != nil {
			return err
		}
		if member {
			return apperrors.ErrAlreadyInGroup
		}

		return repository.NewGroupRepository(tx).AddMember(&models.GroupMember{
			GroupID:  groupID,
			UserID:   userID,
			JoinedAt: time.Now(),
		})
	})
}

// Leave removes the user's membership. When the group is left with zero
// members it dissolves: the group row and its invites are deleted too. The
// membership delete and the member count run in the same transaction, and
// dissolution only fires when this call actually removed the row, so two
// racing leaves cannot cascade twice.
func (s *GroupService) Leave(userID, groupID, password string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		ok, err := guard.UserExists(tx, userID)
		if err != nil {
			return err
		}
		if !ok {
			return apperrors.ErrUserNotFound
		}
		ok, err = guard.PasswordMatches(tx, userID, password)
		if err != nil {
			return err
		}
		if !ok {
			return apperrors.ErrWrongPassword
		}
		ok, err = guard.GroupExists(tx, groupID)
		if err != nil {
			return err
		}
		if !ok {
			return apperrors.ErrGroupNotFound
		}
		member, err := guard.UserInGroup(tx, userID, groupID)
		if err != nil {
			return err
		}
		if !member {
			return apperrors.ErrNotInGroup
		}

		repo := repository.NewGroupRepository(tx)
		removed, err := repo.RemoveMember(groupID, userID)
		if err != nil {
			return err
		}
		if removed == 0 {
			// A concurrent leave already took the row; its transaction owns
			// any dissolution.
			return nil
		}
		count, err := repo.CountMembers(groupID)
		if err != nil {
			return err
		}
		if count == 0 {
			return repo.DeleteCascade(groupID)
		}
		return nil
	})
}

// Delete removes a group outright. Only the stored owner may do this.
func (s *GroupService) Delete(userID, groupID, password string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		ok, err := guard.GroupExists(tx, groupID)
		if err != nil {
			return err
		}
		if !ok {
			return apperrors.ErrGroupNotFound
		}
		ok, err = guard.UserExists(tx, userID)
		if err != nil {
			return err
		}
		if !ok {
			return apperrors.ErrUserNotFound
		}
		ok, err = guard.PasswordMatches(tx, userID, password)
		if err != nil {
			return err
		}
		if !ok {
			return apperrors.ErrWrongPassword
		}
		member, err := guard.UserInGroup(tx, userID, groupID)
		if err != nil {
			return err
		}
		if !member {
			return apperrors.ErrNotInGroup
		}

		repo := repository.NewGroupRepository(tx)
		group, err := repo.FindByID(groupID)
		if err != nil {
			return err
		}
		if group.OwnerID != userID {
			return apperrors.ErrNotGroupOwner
		}
		return repo.DeleteCascade(groupID)
	})
}

// ListForUser returns every group the user belongs to, keyed by group id,
// each with its full member list.
func (s *GroupService) ListForUser(userID, password string) (map[string]dto.GroupView, error) {
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

	repo := repository.NewGroupRepository(s.db)
	memberships, err := repo.ListMembershipsByUser(userID)
	if err != nil {
		return nil, err
	}

	groups := make(map[string]dto.GroupView, len(memberships))
	for _, membership := range memberships {
		members, err := repo.ListMembers(membership.GroupID)
		if err != nil {
			return nil, err
		}
		groups[membership.GroupID] = dto.ToGroupView(membership.Group, members)
	}
	return groups, nil
}

// ListMembers returns a group's member list. The caller must belong to the
// group.
func (s *GroupService) ListMembers(userID, groupID, password string) ([]dto.MemberDTO, error) {
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

	members, err := repository.NewGroupRepository(s.db).ListMembers(groupID)
	if err != nil {
		return nil, err
	}
	result := make([]dto.MemberDTO, len(members))
	for i, m := range members {
		result[i] = dto.ToMemberDTO(m)
	}
	return result, nil
}
