package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/restaurantes-api/internal/application/dto"
	"github.com/jhoicas/restaurantes-api/internal/application/usecase"
	"github.com/jhoicas/restaurantes-api/internal/domain"
)

func TestUserRegister_HasheaElPassword(t *testing.T) {
	repo := newFakeUserRepo()
	uc := usecase.NewUserUseCase(repo)

	out, err := uc.Register(dto.RegisterRequest{Name: "João Silva", Email: "joao@teste.com", Password: "123456"})
	require.NoError(t, err)
	require.NotEmpty(t, out.ID)

	stored := repo.users[out.ID]
	require.NotNil(t, stored)
	assert.NotEqual(t, "123456", stored.PasswordHash, "el password nunca se guarda en claro")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("123456")))
}

func TestUserRegister_EmailDuplicado_ConflictoSinEscribir(t *testing.T) {
	repo := newFakeUserRepo()
	uc := usecase.NewUserUseCase(repo)

	_, err := uc.Register(dto.RegisterRequest{Name: "João", Email: "joao@teste.com", Password: "123456"})
	require.NoError(t, err)

	_, err = uc.Register(dto.RegisterRequest{Name: "Otro", Email: "joao@teste.com", Password: "abcdef"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
	assert.Len(t, repo.users, 1, "el intento en conflicto no debe dejar escritura")
}

// El email se compara tal cual se guardó: una variante en mayúsculas es otro email.
func TestUserRegister_EmailSensibleAMayusculas(t *testing.T) {
	repo := newFakeUserRepo()
	uc := usecase.NewUserUseCase(repo)

	_, err := uc.Register(dto.RegisterRequest{Name: "João", Email: "joao@teste.com", Password: "123456"})
	require.NoError(t, err)

	_, err = uc.Register(dto.RegisterRequest{Name: "João", Email: "Joao@teste.com", Password: "123456"})
	assert.NoError(t, err)
	assert.Len(t, repo.users, 2)
}

func TestUserGetByID_NoExistente(t *testing.T) {
	uc := usecase.NewUserUseCase(newFakeUserRepo())

	_, err := uc.GetByID("id-inexistente")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUserList_DevuelveTodos(t *testing.T) {
	repo := newFakeUserRepo()
	uc := usecase.NewUserUseCase(repo)

	_, err := uc.Register(dto.RegisterRequest{Name: "A", Email: "a@teste.com", Password: "123456"})
	require.NoError(t, err)
	_, err = uc.Register(dto.RegisterRequest{Name: "B", Email: "b@teste.com", Password: "123456"})
	require.NoError(t, err)

	out, err := uc.List(20, 0)
	require.NoError(t, err)
	assert.Len(t, out, 2)
}
