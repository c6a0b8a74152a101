package helper

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

// Kode error Postgres yang ditranslasi jadi pesan domain.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// pgErrorCode mengambil SQLSTATE dari error driver Postgres: pgconn untuk
// driver gorm (pgx), pq untuk koneksi lib/pq. Kosong kalau bukan keduanya.
func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code)
	}
	return ""
}

// IsUniqueViolation mendeteksi pelanggaran unique constraint (kode "23505").
// Fallback pencocokan string dipakai untuk driver lain (mis. sqlite saat test).
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if code := pgErrorCode(err); code != "" {
		return code == pgUniqueViolation
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "duplicate key") ||
		strings.Contains(s, "unique constraint") ||
		strings.Contains(s, pgUniqueViolation)
}

// IsForeignKeyViolation mendeteksi pelanggaran foreign key (kode "23503"),
// mis. menghapus jenis surat yang masih dipakai.
func IsForeignKeyViolation(err error) bool {
	if err == nil {
		return false
	}
	if code := pgErrorCode(err); code != "" {
		return code == pgForeignKeyViolation
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "foreign key constraint") ||
		strings.Contains(s, pgForeignKeyViolation)
}
