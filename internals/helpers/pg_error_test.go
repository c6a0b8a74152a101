package helper_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	helper "earsip_backend/internals/helpers"
)

func TestIsUniqueViolationPqError(t *testing.T) {
	err := &pq.Error{Code: "23505", Message: "duplicate key value violates unique constraint"}
	assert.True(t, helper.IsUniqueViolation(err))
	assert.True(t, helper.IsUniqueViolation(fmt.Errorf("insert: %w", err)))
}

// Driver produksi (gorm.io/driver/postgres) pakai pgx, errornya *pgconn.PgError.
func TestIsUniqueViolationPgconnError(t *testing.T) {
	err := &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"}
	assert.True(t, helper.IsUniqueViolation(err))
	assert.True(t, helper.IsUniqueViolation(fmt.Errorf("insert: %w", err)))
	assert.False(t, helper.IsForeignKeyViolation(err))
}

func TestIsForeignKeyViolationPgconnError(t *testing.T) {
	err := &pgconn.PgError{Code: "23503", Message: "violates foreign key constraint"}
	assert.True(t, helper.IsForeignKeyViolation(err))
	assert.True(t, helper.IsForeignKeyViolation(fmt.Errorf("delete: %w", err)))
	assert.False(t, helper.IsUniqueViolation(err))
}

func TestIsUniqueViolationStringFallback(t *testing.T) {
	// bentuk pesan sqlite saat test
	assert.True(t, helper.IsUniqueViolation(errors.New("UNIQUE constraint failed: surat_masuk.nomor_agenda")))
	assert.False(t, helper.IsUniqueViolation(errors.New("connection refused")))
	assert.False(t, helper.IsUniqueViolation(nil))
}

func TestIsForeignKeyViolation(t *testing.T) {
	pqErr := &pq.Error{Code: "23503", Message: "violates foreign key constraint"}
	assert.True(t, helper.IsForeignKeyViolation(pqErr))
	assert.True(t, helper.IsForeignKeyViolation(errors.New("FOREIGN KEY constraint failed")))
	assert.False(t, helper.IsForeignKeyViolation(errors.New("something else")))
	assert.False(t, helper.IsForeignKeyViolation(nil))

	// unique bukan FK dan sebaliknya
	assert.False(t, helper.IsUniqueViolation(pqErr))
}
