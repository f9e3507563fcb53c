package user

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"campus/internal/application/user/usecases"
	"campus/internal/infrastructure/auth"
	"campus/internal/infrastructure/persistence/models"
	"campus/internal/infrastructure/repository"
	"campus/internal/shared/config"
	"campus/internal/shared/logger"
)

func newCreateUseCase(t *testing.T) *usecases.CreateUserUseCase {
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, gdb.AutoMigrate(models.All()...))

	log := logger.NewNopLogger()
	return usecases.NewCreateUserUseCase(repository.NewUserRepository(gdb, log), auth.NewBcryptPasswordHasher(config.PasswordConfig{BcryptCost: 4}), log)
}

func TestCreateSuperuser(t *testing.T) {
	uc := newCreateUseCase(t)

	created, err := CreateSuperuser(context.Background(), uc, " dean@campus.edu ", "The Dean", "s3cret-pass")
	require.NoError(t, err)
	assert.Equal(t, "dean@campus.edu", created.Email)
	assert.Equal(t, "admin", created.Role)

	_, err = CreateSuperuser(context.Background(), uc, "dean@campus.edu", "", "s3cret-pass")
	assert.Error(t, err)
}

func TestCreateSuperuser_ShortPassword(t *testing.T) {
	_, err := CreateSuperuser(context.Background(), newCreateUseCase(t), "dean@campus.edu", "", "short")
	assert.EqualError(t, err, "password must be at least 8 characters long")
}

func TestReadPassword_FromPipe(t *testing.T) {
	var prompt strings.Builder
	got, err := readPassword(strings.NewReader("hunter22\n"), &prompt)
	require.NoError(t, err)
	assert.Equal(t, "hunter22", got)
	assert.Equal(t, "Password: ", prompt.String())
}
