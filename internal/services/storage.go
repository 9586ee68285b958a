package services

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/unicode/norm"
)

var (
	unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9_.-]`)
	safeExtension       = regexp.MustCompile(`^\.[A-Za-z0-9]{1,10}$`)
)

// Stored names are "<uuid>_<base><ext>"; the base is capped so the whole
// name stays well under the 255 byte limit of common filesystems.
const maxFilenameBase = 100

type StorageService interface {
	EnsureUploadDir() error
	SaveUpload(file *multipart.FileHeader) (string, error)
	Delete(filePath string) error
}

type storageService struct {
	uploadPath string
}

func NewStorageService(uploadPath string) StorageService {
	return &storageService{
		uploadPath: uploadPath,
	}
}

func (s *storageService) EnsureUploadDir() error {
	if err := os.MkdirAll(s.uploadPath, 0755); err != nil {
		return fmt.Errorf("failed to create upload directory: %w", err)
	}

	return nil
}

// SaveUpload copies an uploaded file to a per-request unique path inside
// the upload directory and returns that path.
func (s *storageService) SaveUpload(file *multipart.FileHeader) (string, error) {
	filePath, err := s.uploadFilePath(file.Filename)
	if err != nil {
		return "", err
	}

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	dst, err := os.OpenFile(filePath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0600)
	if err != nil {
		return "", fmt.Errorf("failed to create destination file: %w", err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(filePath)
		return "", fmt.Errorf("failed to save file: %w", err)
	}

	if err := dst.Close(); err != nil {
		os.Remove(filePath)
		return "", fmt.Errorf("failed to save file: %w", err)
	}

	return filePath, nil
}

// Delete removes a stored upload. A file that is already gone is not an error.
func (s *storageService) Delete(filePath string) error {
	if err := os.Remove(filePath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

func (s *storageService) uploadFilePath(originalName string) (string, error) {
	uniqueFilename := fmt.Sprintf("%s_%s", uuid.New().String(), SanitizeFilename(originalName))
	filePath := filepath.Join(s.uploadPath, uniqueFilename)

	base, err := filepath.Abs(s.uploadPath)
	if err != nil {
		return "", fmt.Errorf("failed to resolve upload directory: %w", err)
	}
	target, err := filepath.Abs(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to resolve upload path: %w", err)
	}
	if filepath.Dir(target) != base {
		return "", fmt.Errorf("upload path escapes upload directory: %s", originalName)
	}

	return filePath, nil
}

// SanitizeFilename reduces a client supplied filename to a safe ASCII name
// with no directory components. Letters are folded to ASCII, separators
// become underscores and leading or trailing dots are dropped, so
// "../../etc/passwd" becomes "etc_passwd". A plain extension such as ".pdf"
// always survives, the base is cut to maxFilenameBase bytes and an empty
// base becomes "upload", so "резюме.pdf" becomes "upload.pdf".
func SanitizeFilename(name string) string {
	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	if base == "" || !safeExtension.MatchString(ext) {
		base, ext = name, ""
	}

	cleaned := sanitizeBase(base)
	if len(cleaned) > maxFilenameBase {
		cleaned = strings.TrimRight(cleaned[:maxFilenameBase], "._")
	}
	if cleaned == "" {
		cleaned = "upload"
	}
	return cleaned + ext
}

func sanitizeBase(name string) string {
	var ascii strings.Builder
	for _, r := range norm.NFKD.String(name) {
		if r < 0x80 {
			ascii.WriteRune(r)
		}
	}

	cleaned := strings.NewReplacer("/", " ", "\\", " ").Replace(ascii.String())
	cleaned = strings.Join(strings.Fields(cleaned), "_")
	cleaned = unsafeFilenameChars.ReplaceAllString(cleaned, "")
	return strings.Trim(cleaned, "._")
}
