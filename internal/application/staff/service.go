// Package staff keeps the staff directory and the leadership profiles.
package staff

import (
	"context"

	"campus/internal/application/common"
	"campus/internal/application/common/crud"
	"campus/internal/domain/staff"
	"campus/internal/shared/db"
	"campus/internal/shared/errors"
	"campus/internal/shared/logger"
)

type (
	MemberService     = crud.Service[*staff.StaffMember, staff.MemberDetails, staff.MemberFilter]
	LeadershipService = crud.Service[*staff.Leadership, staff.LeaderDetails, staff.LeaderFilter]
)

type Service struct {
	Members    *MemberService
	Leadership *LeadershipService

	leaders staff.LeadershipRepository
	logger  logger.Interface
}

func NewService(members staff.StaffMemberRepository, leaders staff.LeadershipRepository, tx db.Transactor, log logger.Interface) *Service {
	log = log.Named("staff")
	return &Service{
		Members: crud.NewService[*staff.StaffMember, staff.MemberDetails, staff.MemberFilter](
			"staff member", members,
			func(d staff.MemberDetails, _ uint) (*staff.StaffMember, error) { return staff.NewStaffMember(d) },
			tx, log),
		Leadership: crud.NewService[*staff.Leadership, staff.LeaderDetails, staff.LeaderFilter](
			"leadership profile", leaders,
			func(d staff.LeaderDetails, _ uint) (*staff.Leadership, error) { return staff.NewLeadership(d) },
			tx, log),
		leaders: leaders,
		logger:  log,
	}
}

// MyProfile returns the leadership profile linked to userID.
func (s *Service) MyProfile(ctx context.Context, userID uint) (*staff.Leadership, error) {
	l, err := s.leaders.GetByUserID(ctx, userID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewNotFoundError("no leadership profile is linked to your account")
		}
		return nil, common.PersistenceError(err, "failed to get leadership profile")
	}
	return l, nil
}

// UpdateMyProfile applies the self-service edits a leader may make.
func (s *Service) UpdateMyProfile(ctx context.Context, userID uint, changes staff.ProfileChanges) (*staff.Leadership, error) {
	l, err := s.MyProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := l.EditOwnProfile(changes); err != nil {
		return nil, common.DomainError(err)
	}
	if err := s.leaders.Update(ctx, l); err != nil {
		return nil, common.PersistenceError(err, "failed to update leadership profile")
	}
	s.logger.Infow("leadership profile updated by owner", "id", l.ID(), "user_id", userID)
	return l, nil
}
