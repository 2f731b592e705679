package services

import (
	"github.com/asher5712/LittleLemonAPI/entity"
	"github.com/asher5712/LittleLemonAPI/repository"
)

// GroupService manages the manager and delivery-crew memberships.
type GroupService struct {
	userRepo *repository.UserRepository
}

func NewGroupService(repo *repository.UserRepository) *GroupService {
	return &GroupService{userRepo: repo}
}

func (s *GroupService) Members(role entity.Role) ([]entity.User, error) {
	return s.userRepo.ListByRole(role)
}

// Add grants role to the user named by username. The second return reports
// the "already a member" outcome, which is a success, not an error.
func (s *GroupService) Add(role entity.Role, username string) (*entity.User, bool, error) {
	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		return nil, false, notFoundOr(err, "user")
	}

	if user.HasRole(role) {
		return user, true, nil
	}
	if err := s.userRepo.AddRole(user.ID, role); err != nil {
		return nil, false, err
	}
	return user, false, nil
}

// Remove revokes role from the user with the given id. Removing a membership
// the user does not hold still succeeds.
func (s *GroupService) Remove(role entity.Role, userID uint) error {
	if _, err := s.userRepo.FindByID(userID); err != nil {
		return notFoundOr(err, "user")
	}
	return s.userRepo.RemoveRole(userID, role)
}
