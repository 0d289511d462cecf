package services

import (
	"testing"

	"github.com/hmorita/group-task-api/internal/apperrors"
	"github.com/hmorita/group-task-api/internal/guard"
	"github.com/hmorita/group-task-api/internal/models"
	"github.com/stretchr/testify/require"
)

type inviteFixture struct {
	svc       *InviteService
	ownerID   string
	inviteeID string
	groupID   string
}

func setupInviteFixture(t *testing.T) *inviteFixture {
	t.Helper()
	db := setupTestDB(t)
	ownerID := mustCreateUser(t, db, "owner")
	inviteeID := mustCreateUser(t, db, "invitee")
	groupID := mustCreateGroup(t, db, ownerID, "project")
	return &inviteFixture{
		svc:       NewInviteService(db),
		ownerID:   ownerID,
		inviteeID: inviteeID,
		groupID:   groupID,
	}
}

func (f *inviteFixture) invite(t *testing.T) string {
	t.Helper()
	inviteID, err := f.svc.Create(CreateInviteInput{
		InviterID: f.ownerID,
		InviteeID: f.inviteeID,
		GroupID:   f.groupID,
		Password:  testPassword,
	})
	require.NoError(t, err)
	return inviteID
}

func TestInviteService_SinglePendingPerPair(t *testing.T) {
	f := setupInviteFixture(t)
	f.invite(t)

	_, err := f.svc.Create(CreateInviteInput{
		InviterID: f.ownerID,
		InviteeID: f.inviteeID,
		GroupID:   f.groupID,
		Password:  testPassword,
	})
	require.ErrorIs(t, err, apperrors.ErrDuplicateInvite)
}

func TestInviteService_CreateRequiresInviterMembership(t *testing.T) {
	f := setupInviteFixture(t)
	db := f.svc.db
	outsiderID := mustCreateUser(t, db, "outsider")

	_, err := f.svc.Create(CreateInviteInput{
		InviterID: outsiderID,
		InviteeID: f.inviteeID,
		GroupID:   f.groupID,
		Password:  testPassword,
	})
	require.ErrorIs(t, err, apperrors.ErrNotGroupMember)
}

func TestInviteService_CreateRejectsExistingMember(t *testing.T) {
	f := setupInviteFixture(t)
	require.NoError(t, NewGroupService(f.svc.db).Join(f.inviteeID, f.groupID, testPassword))

	_, err := f.svc.Create(CreateInviteInput{
		InviterID: f.ownerID,
		InviteeID: f.inviteeID,
		GroupID:   f.groupID,
		Password:  testPassword,
	})
	require.ErrorIs(t, err, apperrors.ErrAlreadyInGroup)
}

func TestInviteService_AcceptAddsMembership(t *testing.T) {
	f := setupInviteFixture(t)
	inviteID := f.invite(t)

	err := f.svc.Respond(RespondInviteInput{
		UserID:   f.inviteeID,
		GroupID:  f.groupID,
		InviteID: inviteID,
		Password: testPassword,
		Accept:   true,
	})
	require.NoError(t, err)

	member, err := guard.UserInGroup(f.svc.db, f.inviteeID, f.groupID)
	require.NoError(t, err)
	require.True(t, member)

	pending, err := f.svc.ListPending(f.inviteeID, testPassword)
	require.NoError(t, err)
	require.Empty(t, pending)

	// Terminal state is not re-enterable.
	err = f.svc.Respond(RespondInviteInput{
		UserID:   f.inviteeID,
		GroupID:  f.groupID,
		InviteID: inviteID,
		Password: testPassword,
		Accept:   false,
	})
	require.ErrorIs(t, err, apperrors.ErrInviteResolved)
}

func TestInviteService_RejectLeavesMembershipAlone(t *testing.T) {
	f := setupInviteFixture(t)
	inviteID := f.invite(t)

	err := f.svc.Respond(RespondInviteInput{
		UserID:   f.inviteeID,
		GroupID:  f.groupID,
		InviteID: inviteID,
		Password: testPassword,
		Accept:   false,
	})
	require.NoError(t, err)

	member, err := guard.UserInGroup(f.svc.db, f.inviteeID, f.groupID)
	require.NoError(t, err)
	require.False(t, member)

	var invite models.GroupInvite
	require.NoError(t, f.svc.db.Where("invite_id = ?", inviteID).First(&invite).Error)
	require.Equal(t, models.InviteStatusRejected, invite.Status)

	// A resolved invite no longer blocks a fresh one.
	f.invite(t)
}

func TestInviteService_RespondOnlyByInvitee(t *testing.T) {
	f := setupInviteFixture(t)
	inviteID := f.invite(t)
	otherID := mustCreateUser(t, f.svc.db, "bystander")

	err := f.svc.Respond(RespondInviteInput{
		UserID:   otherID,
		GroupID:  f.groupID,
		InviteID: inviteID,
		Password: testPassword,
		Accept:   true,
	})
	require.ErrorIs(t, err, apperrors.ErrNotInvitee)
}

func TestInviteService_AcceptIdempotentForMembers(t *testing.T) {
	f := setupInviteFixture(t)
	inviteID := f.invite(t)

	// The invitee joined through the open-join path while the invite was
	// still pending.
	require.NoError(t, NewGroupService(f.svc.db).Join(f.inviteeID, f.groupID, testPassword))

	err := f.svc.Respond(RespondInviteInput{
		UserID:   f.inviteeID,
		GroupID:  f.groupID,
		InviteID: inviteID,
		Password: testPassword,
		Accept:   true,
	})
	require.NoError(t, err)

	var count int64
	err = f.svc.db.Model(&models.GroupMember{}).
		Where("group_id = ? AND user_id = ?", f.groupID, f.inviteeID).
		Count(&count).Error
	require.NoError(t, err)
	require.EqualValues(t, 1, count)
}

func TestInviteService_RespondByPairWithoutID(t *testing.T) {
	f := setupInviteFixture(t)
	f.invite(t)

	err := f.svc.Respond(RespondInviteInput{
		UserID:   f.inviteeID,
		GroupID:  f.groupID,
		Password: testPassword,
		Accept:   true,
	})
	require.NoError(t, err)

	member, err := guard.UserInGroup(f.svc.db, f.inviteeID, f.groupID)
	require.NoError(t, err)
	require.True(t, member)
}

func TestInviteService_DeleteRemovesAnyStatus(t *testing.T) {
	f := setupInviteFixture(t)
	inviteID := f.invite(t)

	require.NoError(t, f.svc.Respond(RespondInviteInput{
		UserID:   f.inviteeID,
		GroupID:  f.groupID,
		InviteID: inviteID,
		Password: testPassword,
		Accept:   false,
	}))

	outsiderID := mustCreateUser(t, f.svc.db, "outsider")
	err := f.svc.Delete(DeleteInviteInput{
		ActorID:   outsiderID,
		InviteeID: f.inviteeID,
		GroupID:   f.groupID,
		Password:  testPassword,
	})
	require.ErrorIs(t, err, apperrors.ErrNotGroupMember)

	require.NoError(t, f.svc.Delete(DeleteInviteInput{
		ActorID:   f.ownerID,
		InviteeID: f.inviteeID,
		GroupID:   f.groupID,
		Password:  testPassword,
	}))

	var count int64
	require.NoError(t, f.svc.db.Model(&models.GroupInvite{}).
		Where("invite_id = ?", inviteID).Count(&count).Error)
	require.Zero(t, count)
}

func TestInviteService_ListSentRequiresMembership(t *testing.T) {
	f := setupInviteFixture(t)
	inviteID := f.invite(t)

	_, err := f.svc.ListSent(f.inviteeID, f.groupID, testPassword)
	require.ErrorIs(t, err, apperrors.ErrNotGroupMember)

	sent, err := f.svc.ListSent(f.ownerID, f.groupID, testPassword)
	require.NoError(t, err)
	require.Contains(t, sent, inviteID)
	require.Equal(t, "invitee", sent[inviteID].InviteeName)
	require.Equal(t, models.InviteStatusPending, sent[inviteID].Status)
}
