package services

import (
	"fmt"
	"strings"

	"simplecrm/internal/authz"
	"simplecrm/internal/middleware"
	"simplecrm/internal/models"
	"simplecrm/internal/repositories"
)

type UserService interface {
	// RegisterOrganizer создаёт организатора вместе с его организацией.
	// Организация заводится явно здесь, а не хук-слушателем.
	RegisterOrganizer(req *models.SignupRequest) (*models.User, error)
	Login(email, password string) (token string, user *models.User, err error)
}

type userService struct {
	userRepo    repositories.UserRepository
	orgRepo     repositories.OrganizationRepository
	agentRepo   repositories.AgentRepository
	authService AuthService
}

func NewUserService(
	userRepo repositories.UserRepository,
	orgRepo repositories.OrganizationRepository,
	agentRepo repositories.AgentRepository,
	authService AuthService,
) UserService {
	return &userService{
		userRepo:    userRepo,
		orgRepo:     orgRepo,
		agentRepo:   agentRepo,
		authService: authService,
	}
}

func (s *userService) RegisterOrganizer(req *models.SignupRequest) (*models.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	existing, err := s.userRepo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := s.authService.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:        email,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		PasswordHash: hash,
		IsOrganizer:  true,
	}
	if _, err := s.userRepo.CreateOrganizer(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) Login(email, password string) (string, *models.User, error) {
	user, err := s.userRepo.GetByEmail(strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return "", nil, err
	}
	if user == nil || !s.authService.CheckPassword(user.PasswordHash, password) {
		return "", nil, ErrInvalidCredentials
	}

	claims := &middleware.Claims{
		UserID:      user.ID,
		IsOrganizer: user.IsOrganizer,
	}
	if user.IsOrganizer {
		org, err := s.orgRepo.GetByOwner(user.ID)
		if err != nil {
			return "", nil, err
		}
		if org == nil {
			return "", nil, fmt.Errorf("organizer %d has no organization", user.ID)
		}
		claims.OrgID = org.ID
	} else {
		agent, err := s.agentRepo.GetByUserID(user.ID)
		if err != nil {
			return "", nil, err
		}
		if agent == nil {
			// жёсткое предусловие: агент обязан иметь профиль
			return "", nil, authz.ErrMissingAgentProfile
		}
		claims.OrgID = agent.OrganizationID
		claims.AgentID = agent.ID
	}

	token, err := s.authService.GenerateToken(claims)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}
