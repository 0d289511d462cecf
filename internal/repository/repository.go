package repository

import (
	"github.com/hmorita/group-task-api/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create inserts a new user row
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id string) (*models.User, error)

	// FindByEmail finds a user by email
	FindByEmail(email string) (*models.User, error)

	// Update saves changed user fields
	Update(user *models.User) error

	// DeleteCascade removes the user row together with every membership,
	// every task the user assigned or was assigned, and every invite the
	// user sent or received. Groups the user owns are left in place.
	DeleteCascade(userID string) error
}

// GroupRepository defines the interface for group and membership data access
type GroupRepository interface {
	// Create inserts the group row and the owner's membership row
	Create(group *models.Group, owner *models.GroupMember) error

	// FindByID finds a group by ID
	FindByID(id string) (*models.Group, error)

	// AddMember inserts a membership row
	AddMember(member *models.GroupMember) error

	// RemoveMember deletes a membership row and reports how many rows the
	// delete actually removed, so callers can detect a lost race.
	RemoveMember(groupID, userID string) (int64, error)

	// CountMembers counts the remaining members of a group
	CountMembers(groupID string) (int64, error)

	// DeleteCascade removes the group, its memberships, and its invites
	DeleteCascade(groupID string) error

	// ListMembershipsByUser lists memberships of a user with groups preloaded
	ListMembershipsByUser(userID string) ([]models.GroupMember, error)

	// ListMembers lists the members of a group with users preloaded
	ListMembers(groupID string) ([]models.GroupMember, error)
}

// InviteRepository defines the interface for group invite data access
type InviteRepository interface {
	// Create inserts an invite row
	Create(invite *models.GroupInvite) error

	// Update saves changed invite fields
	Update(invite *models.GroupInvite) error

	// Delete removes an invite row by primary key
	Delete(inviteID string) error

	// FindByID finds an invite by primary key
	FindByID(inviteID string) (*models.GroupInvite, error)

	// FindByPair finds the most recent invite for (invitee, group),
	// regardless of status
	FindByPair(inviteeID, groupID string) (*models.GroupInvite, error)

	// ListForInvitee lists invites addressed to a user, group and inviter
	// preloaded
	ListForInvitee(userID string) ([]models.GroupInvite, error)

	// ListForGroup lists invites a group has sent, both parties preloaded
	ListForGroup(groupID string) ([]models.GroupInvite, error)
}

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// Create inserts a task row
	Create(task *models.Task) error

	// FindByID finds a task by ID
	FindByID(id string) (*models.Task, error)

	// Update saves changed task fields
	Update(task *models.Task) error

	// Delete removes a task row
	Delete(id string) error

	// ListByAssignee lists tasks assigned to a user, assigner preloaded
	ListByAssignee(userID string) ([]models.Task, error)

	// ListByGroup lists tasks belonging to a group, assigner preloaded
	ListByGroup(groupID string) ([]models.Task, error)

	// ListCompleted lists completed tasks visible to a user in a group scope
	ListCompleted(userID, groupID string) ([]models.Task, error)

	// SetCompleted flips the completed flag on a task
	SetCompleted(taskID string, completed bool) error
}
