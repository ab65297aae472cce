package authenticating

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/dfcastro/commission-tracker-api/infrastructure/repository/mocks"
	"github.com/dfcastro/commission-tracker-api/internal/config"
	"github.com/dfcastro/commission-tracker-api/internal/domain"
	"github.com/dfcastro/commission-tracker-api/pkg/apiErrors"
)

func newTestService(ctrl *gomock.Controller) (Authenticator, *mocks.MockUserRepository) {
	userRepo := mocks.NewMockUserRepository(ctrl)
	cfg := &config.Config{SecretKey: "chave-de-teste"}
	return NewService(userRepo, cfg), userRepo
}

func activeUser(password string) *domain.User {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return &domain.User{
		ID:           7,
		Name:         "Ana",
		Lastname:     "Souza",
		Email:        "ana@example.com",
		PasswordHash: string(hash),
		Active:       true,
		RoleID:       domain.RoleSeller,
		ContractType: domain.ContractTypePJ,
	}
}

func TestService_LoginUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, userRepo := newTestService(ctrl)

	user := activeUser("Senha@123")
	userRepo.EXPECT().GetUserByEmail("ana@example.com").Return(user, nil)

	token, err := service.LoginUser("ana@example.com", "Senha@123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	// O token emitido deve carregar os dados do usuário
	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, 7, claims.UserID)
	assert.Equal(t, domain.RoleSeller, claims.UserRoleID)
	assert.Equal(t, domain.ContractTypePJ, claims.UserContractType)
}

func TestService_LoginUser_wrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, userRepo := newTestService(ctrl)

	user := activeUser("Senha@123")
	userRepo.EXPECT().GetUserByEmail("ana@example.com").Return(user, nil)

	_, err := service.LoginUser("ana@example.com", "senha-errada")
	require.Error(t, err)

	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, apiErrors.ErrInvalidCredentials, authErr.Code)
	assert.Equal(t, 7, authErr.UserID)
}

func TestService_LoginUser_disabledUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, userRepo := newTestService(ctrl)

	user := activeUser("Senha@123")
	user.Active = false
	userRepo.EXPECT().GetUserByEmail("ana@example.com").Return(user, nil)

	_, err := service.LoginUser("ana@example.com", "Senha@123")

	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, apiErrors.ErrUserDisabled, authErr.Code)
}

func TestService_LoginUser_unknownUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, userRepo := newTestService(ctrl)

	userRepo.EXPECT().GetUserByEmail("ninguem@example.com").Return(nil, nil)

	_, err := service.LoginUser("ninguem@example.com", "Senha@123")

	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, apiErrors.ErrUserNotFound, authErr.Code)
}

func TestService_ValidatePasswordStrength(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _ := newTestService(ctrl)

	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{"senha forte", "Senha@123", false},
		{"muito curta", "S@1a", true},
		{"sem maiúscula", "senha@123", true},
		{"sem minúscula", "SENHA@123", true},
		{"sem número", "Senha@abc", true},
		{"sem caractere especial", "Senha1234", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := service.ValidatePasswordStrength(tt.password)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestService_ChangePassword_wrongCurrentPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, userRepo := newTestService(ctrl)

	user := activeUser("Senha@123")
	userRepo.EXPECT().GetUserByID(7).Return(user, nil)

	err := service.ChangePassword(7, "senha-errada", "NovaSenha@123")
	require.Error(t, err)
	assert.Equal(t, "senha atual incorreta", err.Error())
}

func TestService_ChangePassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, userRepo := newTestService(ctrl)

	user := activeUser("Senha@123")
	userRepo.EXPECT().GetUserByID(7).Return(user, nil)
	userRepo.EXPECT().UpdateUser(gomock.Any()).DoAndReturn(func(updated *domain.User) error {
		// A senha persistida deve ser o hash da nova senha
		return bcrypt.CompareHashAndPassword([]byte(updated.PasswordHash), []byte("NovaSenha@123"))
	})

	err := service.ChangePassword(7, "Senha@123", "NovaSenha@123")
	require.NoError(t, err)
}

func TestService_GenerateStrongPassword_requiresAdmin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, userRepo := newTestService(ctrl)

	requester := activeUser("Senha@123")
	userRepo.EXPECT().GetUserByID(7).Return(requester, nil)

	_, err := service.GenerateStrongPassword(7, 8)
	require.ErrorIs(t, err, ErrNoAdminPrivileges)
}

func TestService_GenerateStrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, userRepo := newTestService(ctrl)

	admin := activeUser("Senha@123")
	admin.ID = 1
	admin.RoleID = domain.RoleAdmin

	target := activeUser("Senha@123")

	userRepo.EXPECT().GetUserByID(1).Return(admin, nil)
	userRepo.EXPECT().GetUserByID(7).Return(target, nil)
	userRepo.EXPECT().UpdateUser(gomock.Any()).Return(nil)

	password, err := service.GenerateStrongPassword(1, 7)
	require.NoError(t, err)

	// A senha gerada deve passar na própria validação de força
	assert.NoError(t, service.ValidatePasswordStrength(password))
}
