package database

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adfence/backend/internal/domain/entities"
	"github.com/adfence/backend/internal/infrastructure/clients/postgres"
	apperrors "github.com/adfence/backend/pkg/errors"
)

func setupMockClient(t *testing.T) (*postgres.Client, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to create mock database: %v", err)
	}
	t.Cleanup(func() { mockDB.Close() })
	return postgres.NewClientWithDB(mockDB), mock
}

func TestUserAdapter_Create(t *testing.T) {
	client, mock := setupMockClient(t)
	adapter := NewUserAdapter(client)

	user := &entities.User{
		ID:           "u1",
		Username:     "Downtown Coffee",
		Email:        "biz@example.com",
		PasswordHash: "hash",
		Role:         entities.RoleBusiness,
	}

	mock.ExpectExec("INSERT INTO users").
		WithArgs("u1", "Downtown Coffee", "biz@example.com", "hash", entities.RoleBusiness, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := adapter.Create(context.Background(), user)

	require.NoError(t, err)
	assert.False(t, user.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserAdapter_Create_DuplicateEmail(t *testing.T) {
	client, mock := setupMockClient(t)
	adapter := NewUserAdapter(client)

	mock.ExpectExec("INSERT INTO users").
		WillReturnError(&pq.Error{Code: "23505"})

	err := adapter.Create(context.Background(), &entities.User{
		ID:    "u1",
		Email: "taken@example.com",
		Role:  entities.RolePersonal,
	})

	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeConflict))
}

func TestUserAdapter_GetByID(t *testing.T) {
	client, mock := setupMockClient(t)
	adapter := NewUserAdapter(client)

	created := time.Now()
	rows := sqlmock.NewRows([]string{"id", "username", "email", "password_hash", "role", "created_at"}).
		AddRow("u1", "Downtown Coffee", "biz@example.com", "hash", "business", created)

	mock.ExpectQuery("SELECT id, username, email, password_hash, role, created_at").
		WithArgs("u1").
		WillReturnRows(rows)

	user, err := adapter.GetByID(context.Background(), "u1")

	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
	assert.Equal(t, entities.RoleBusiness, user.Role)
}

func TestUserAdapter_GetByID_NotFound(t *testing.T) {
	client, mock := setupMockClient(t)
	adapter := NewUserAdapter(client)

	mock.ExpectQuery("SELECT id, username, email, password_hash, role, created_at").
		WithArgs("u404").
		WillReturnError(sql.ErrNoRows)

	_, err := adapter.GetByID(context.Background(), "u404")

	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeNotFound))
}

func TestUserAdapter_EmailExists(t *testing.T) {
	client, mock := setupMockClient(t)
	adapter := NewUserAdapter(client)

	mock.ExpectQuery("SELECT COUNT").
		WithArgs("biz@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	exists, err := adapter.EmailExists(context.Background(), "biz@example.com")

	require.NoError(t, err)
	assert.True(t, exists)

	mock.ExpectQuery("SELECT COUNT").
		WithArgs("new@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	exists, err = adapter.EmailExists(context.Background(), "new@example.com")

	require.NoError(t, err)
	assert.False(t, exists)
}
