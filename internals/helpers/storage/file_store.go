package storage

import (
	"errors"
	"fmt"
	"log"
	"math/rand"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"earsip_backend/internals/configs"
)

// MaxUploadSize batas ukuran file surat (10 MB).
const MaxUploadSize = 10 * 1024 * 1024

const mimePDF = "application/pdf"

var ErrNotPDF = errors.New("hanya file PDF yang diizinkan")
var ErrTooLarge = errors.New("ukuran file melebihi 10MB")

// EnsureUploadDir memastikan folder uploads ada.
func EnsureUploadDir() (string, error) {
	dir := configs.UploadDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return dir, nil
}

// ValidateUpload menolak file selain PDF dan file yang terlalu besar.
func ValidateUpload(fh *multipart.FileHeader) error {
	if fh.Size > MaxUploadSize {
		return ErrTooLarge
	}
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	mime := fh.Header.Get(fiber.HeaderContentType)
	if ext != ".pdf" && mime != mimePDF {
		return ErrNotPDF
	}
	return nil
}

// SaveUpload menyimpan file multipart ke folder uploads dengan nama unik
// (pola multer: field-<timestamp>-<acak><ext>) dan mengembalikan path relatif
// untuk disimpan di database, mis. "/uploads/file-1700000000000-123456789.pdf".
func SaveUpload(c *fiber.Ctx, fh *multipart.FileHeader) (string, error) {
	dir, err := EnsureUploadDir()
	if err != nil {
		return "", err
	}
	name := fmt.Sprintf("file-%d-%d%s",
		time.Now().UnixMilli(), rand.Intn(1_000_000_000), strings.ToLower(filepath.Ext(fh.Filename)))
	if err := c.SaveFile(fh, filepath.Join(dir, name)); err != nil {
		return "", err
	}
	return "/uploads/" + name, nil
}

// ResolvePath memetakan path relatif "/uploads/x.pdf" ke path di disk.
func ResolvePath(fileURL string) string {
	return filepath.Join(configs.UploadDir(), filepath.Base(fileURL))
}

// DeleteFile menghapus file fisik secara best-effort: kegagalan hanya
// dicatat di log, tidak pernah menggagalkan request karena record database
// sudah ter-commit lebih dulu.
func DeleteFile(fileURL string) {
	if fileURL == "" {
		return
	}
	path := ResolvePath(fileURL)
	if _, err := os.Stat(path); err != nil {
		log.Printf("[WARN] File tidak ditemukan, tidak jadi dihapus: %s", path)
		return
	}
	if err := os.Remove(path); err != nil {
		log.Printf("[ERROR] Gagal menghapus file %s: %v", path, err)
		return
	}
	log.Printf("[INFO] File berhasil dihapus: %s", path)
}
