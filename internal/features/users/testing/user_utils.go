package users_testing

import (
	"fmt"
	"time"

	users_dto "taskhive/internal/features/users/dto"
	users_models "taskhive/internal/features/users/models"
	users_repositories "taskhive/internal/features/users/repositories"
	users_services "taskhive/internal/features/users/services"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const TestUserPassword = "test-password-123"

func CreateTestUser() *users_dto.SignInResponseDTO {
	userID := uuid.New()
	email := fmt.Sprintf("user-%s@test.com", userID.String()[:8])

	return CreateTestUserWithEmail(email)
}

func CreateTestUserWithEmail(email string) *users_dto.SignInResponseDTO {
	userID := uuid.New()

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(TestUserPassword), bcrypt.MinCost)
	if err != nil {
		panic(err)
	}

	user := &users_models.User{
		ID:                   userID,
		Email:                email,
		Name:                 "Test User " + userID.String()[:8],
		Timezone:             users_models.DefaultTimezone,
		HashedPassword:       string(hashedPassword),
		// Backdated so a password change within the same test run always
		// lands in a later second than the tokens minted here.
		PasswordCreationTime: time.Now().UTC().Add(-time.Hour),
		CreatedAt:            time.Now().UTC(),
		UpdatedAt:            time.Now().UTC(),
	}

	userRepository := &users_repositories.UserRepository{}
	if err := userRepository.CreateUser(user); err != nil {
		panic(err)
	}

	response, err := users_services.GetUserService().GenerateAccessToken(user)
	if err != nil {
		panic(err)
	}

	return response
}
