package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-entity-vc/internal/logger"
)

func newTestAttributesRepo(t *testing.T) (*attributesRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &attributesRepository{
		DB:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func TestAttributesGetAll_GroupsByScope(t *testing.T) {
	repo, mock, db := newTestAttributesRepo(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"scope", "attributes"}).
		AddRow("SERVER_SCOPE", []byte(`{"latitude":55.75}`)).
		AddRow("SHARED_SCOPE", []byte(`{"threshold":10}`))

	mock.ExpectQuery("SELECT scope, attributes").
		WithArgs("tenant-1", "dev-1").
		WillReturnRows(rows)

	scopes, err := repo.GetAll(context.Background(), "tenant-1", "dev-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(scopes) != 2 {
		t.Fatalf("expected 2 scopes, got %d", len(scopes))
	}
	if scopes["SERVER_SCOPE"]["latitude"] != 55.75 {
		t.Errorf("expected decoded server scope attributes, got %v", scopes["SERVER_SCOPE"])
	}
}

func TestAttributesGetAll_NoAttributes(t *testing.T) {
	repo, mock, db := newTestAttributesRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT scope, attributes").
		WithArgs("tenant-1", "dev-1").
		WillReturnRows(sqlmock.NewRows([]string{"scope", "attributes"}))

	scopes, err := repo.GetAll(context.Background(), "tenant-1", "dev-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(scopes) != 0 {
		t.Errorf("expected empty map, got %v", scopes)
	}
}

func TestAttributesSaveScope_Success(t *testing.T) {
	repo, mock, db := newTestAttributesRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO entity_attributes").
		WithArgs("tenant-1", "dev-1", "SERVER_SCOPE", []byte(`{"latitude":55.75}`)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.SaveScope(context.Background(), "tenant-1", "dev-1", "SERVER_SCOPE", map[string]any{"latitude": 55.75})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestAttributesSaveScope_QueryError(t *testing.T) {
	repo, mock, db := newTestAttributesRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO entity_attributes").
		WillReturnError(errors.New("db failure"))

	err := repo.SaveScope(context.Background(), "tenant-1", "dev-1", "SERVER_SCOPE", nil)
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected wrapped ErrExecutingQuery, got %v", err)
	}
}

func TestCredentialsGet_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	l := logger.Nop()
	repo := &credentialsRepository{DB: &DB{DB: db, logger: l}, logger: l}

	mock.ExpectQuery("SELECT credentials").
		WithArgs("tenant-1", "dev-1").
		WillReturnError(sql.ErrNoRows)

	_, err = repo.Get(context.Background(), "tenant-1", "dev-1")
	if !errors.Is(err, ErrCredentialsNotFound) {
		t.Fatalf("expected ErrCredentialsNotFound, got %v", err)
	}
}

func TestCredentialsSave_Success(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	l := logger.Nop()
	repo := &credentialsRepository{DB: &DB{DB: db, logger: l}, logger: l}

	mock.ExpectExec("INSERT INTO device_credentials").
		WithArgs("tenant-1", "dev-1", []byte(`{"type":"ACCESS_TOKEN"}`)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Save(context.Background(), "tenant-1", "dev-1", []byte(`{"type":"ACCESS_TOKEN"}`)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
