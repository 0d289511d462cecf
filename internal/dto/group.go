package dto

import "github.com/hmorita/group-task-api/internal/models"

// MemberDTO represents a group member in API responses
type MemberDTO struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
}

// GroupView represents a group together with its full member list
type GroupView struct {
	GroupID     string      `json:"group_id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	OwnerID     string      `json:"owner_id"`
	Members     []MemberDTO `json:"members"`
}

// ToMemberDTO converts a membership row (user preloaded) to MemberDTO
func ToMemberDTO(member models.GroupMember) MemberDTO {
	return MemberDTO{
		UserID:   member.UserID,
		Username: member.User.Username,
	}
}

// ToGroupView converts a group and its members to a GroupView
func ToGroupView(group models.Group, members []models.GroupMember) GroupView {
	memberDTOs := make([]MemberDTO, len(members))
	for i, member := range members {
		memberDTOs[i] = ToMemberDTO(member)
	}
	return GroupView{
		GroupID:     group.ID,
		Name:        group.Name,
		Description: group.Description,
		OwnerID:     group.OwnerID,
		Members:     memberDTOs,
	}
}
