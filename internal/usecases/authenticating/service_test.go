package authenticating

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	repomocks "github.com/pdrosa/steam-sales-api/infrastructure/repository/mocks"
	"github.com/pdrosa/steam-sales-api/internal/config"
	"github.com/pdrosa/steam-sales-api/internal/domain"
)

const testPassword = "correct-horse"

func newService(t *testing.T) (Authenticator, *repomocks.MockUserRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	userRepo := repomocks.NewMockUserRepository(ctrl)

	cfg := &config.Config{}
	cfg.Auth.Secret = "test-secret"
	cfg.Auth.TokenTTLHour = 1

	return NewService(userRepo, cfg), userRepo
}

func activeUser(t *testing.T) *domain.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)

	return &domain.User{
		ID:           1,
		Name:         "Ana",
		Email:        "ana@example.com",
		PasswordHash: string(hash),
		RoleID:       domain.RoleAdmin,
		Active:       true,
	}
}

func TestLoginIssuesValidToken(t *testing.T) {
	service, userRepo := newService(t)
	user := activeUser(t)

	userRepo.EXPECT().GetByEmail("ana@example.com").Return(user, nil)

	token, err := service.Login(" Ana@Example.com ", testPassword)

	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, user.Email, claims.UserEmail)
	assert.Equal(t, domain.RoleAdmin, claims.UserRoleID)
}

func TestLoginWrongPassword(t *testing.T) {
	service, userRepo := newService(t)

	userRepo.EXPECT().GetByEmail("ana@example.com").Return(activeUser(t), nil)

	token, err := service.Login("ana@example.com", "wrong")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Empty(t, token)
}

func TestLoginUnknownUser(t *testing.T) {
	service, userRepo := newService(t)

	userRepo.EXPECT().GetByEmail("ghost@example.com").Return(nil, nil)

	_, err := service.Login("ghost@example.com", testPassword)

	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestLoginDisabledUser(t *testing.T) {
	service, userRepo := newService(t)

	user := activeUser(t)
	user.Active = false
	userRepo.EXPECT().GetByEmail("ana@example.com").Return(user, nil)

	_, err := service.Login("ana@example.com", testPassword)

	assert.ErrorIs(t, err, ErrUserDisabled)
}

func TestLoginMissingData(t *testing.T) {
	service, _ := newService(t)

	_, err := service.Login("", "")

	assert.ErrorIs(t, err, ErrMissingRequiredData)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	service, _ := newService(t)

	claims, err := service.ValidateToken("not-a-jwt")

	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.Nil(t, claims)
}

func TestValidateTokenRejectsForeignSignature(t *testing.T) {
	service, userRepo := newService(t)

	userRepo.EXPECT().GetByEmail("ana@example.com").Return(activeUser(t), nil)
	token, err := service.Login("ana@example.com", testPassword)
	require.NoError(t, err)

	otherCfg := &config.Config{}
	otherCfg.Auth.Secret = "different-secret"

	ctrl := gomock.NewController(t)
	otherService := NewService(repomocks.NewMockUserRepository(ctrl), otherCfg)

	claims, err := otherService.ValidateToken(token)

	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.Nil(t, claims)
}

func TestCreateUserGeneratesPasswordAndDefaults(t *testing.T) {
	service, userRepo := newService(t)

	userRepo.EXPECT().GetByEmail("new@example.com").Return(nil, nil)
	userRepo.EXPECT().Create(gomock.Any()).
		DoAndReturn(func(user *domain.User) (int, error) {
			assert.Equal(t, domain.RoleViewer, user.RoleID)
			assert.True(t, user.Active)
			assert.NotEmpty(t, user.PasswordHash)
			return 7, nil
		})

	created, password, err := service.CreateUser(&domain.User{Name: "New", Email: "New@Example.com"})

	require.NoError(t, err)
	assert.Equal(t, 7, created.ID)
	assert.Equal(t, "new@example.com", created.Email)
	assert.NotEmpty(t, password)
	assert.Empty(t, created.PasswordHash)
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	service, userRepo := newService(t)

	userRepo.EXPECT().GetByEmail("ana@example.com").Return(activeUser(t), nil)

	_, _, err := service.CreateUser(&domain.User{Name: "Ana", Email: "ana@example.com"})

	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestChangePassword(t *testing.T) {
	service, userRepo := newService(t)
	user := activeUser(t)

	userRepo.EXPECT().GetByID(user.ID).Return(user, nil)
	userRepo.EXPECT().UpdatePassword(user.ID, gomock.Any()).
		DoAndReturn(func(_ int, hash string) error {
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("brand-new-pass")))
			return nil
		})

	require.NoError(t, service.ChangePassword(user.ID, testPassword, "brand-new-pass"))
}

func TestChangePasswordRejectsSameAndShort(t *testing.T) {
	service, _ := newService(t)

	assert.ErrorIs(t, service.ChangePassword(1, "abc12345", "abc12345"), ErrSamePassword)
	assert.ErrorIs(t, service.ChangePassword(1, "abc12345", "short"), ErrMissingRequiredData)
}

func TestGetUserStripsPasswordHash(t *testing.T) {
	service, userRepo := newService(t)

	userRepo.EXPECT().GetByID(1).Return(activeUser(t), nil)

	user, err := service.GetUser(1)

	require.NoError(t, err)
	assert.Empty(t, user.PasswordHash)
}
