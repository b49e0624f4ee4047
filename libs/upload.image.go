package libs

import (
	"context"
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"
)

var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

func ValidateImage(header *multipart.FileHeader, maxSize int64) error {
	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedImageExts[ext] {
		return fmt.Errorf("unsupported image format. Only .png, .jpg, .jpeg, .gif, .webp")
	}
	if maxSize > 0 && header.Size > maxSize {
		return fmt.Errorf("file too large (max %dMB)", maxSize/(1024*1024))
	}
	return nil
}

// LocalUploader saves images under dir and serves them from urlPrefix.
// Used when Cloudinary is not configured.
type LocalUploader struct {
	dir       string
	urlPrefix string
	maxSize   int64
}

func NewLocalUploader(dir, urlPrefix string, maxSize int64) *LocalUploader {
	return &LocalUploader{dir: dir, urlPrefix: strings.TrimSuffix(urlPrefix, "/"), maxSize: maxSize}
}

func (u *LocalUploader) Upload(_ context.Context, header *multipart.FileHeader) (string, error) {
	if err := ValidateImage(header, u.maxSize); err != nil {
		return "", err
	}

	folder := filepath.Join(u.dir, productImageFolder)
	if err := os.MkdirAll(folder, os.ModePerm); err != nil {
		return "", fmt.Errorf("failed to create folder: %w", err)
	}

	filename := fmt.Sprintf("%d%s", time.Now().UnixNano(), strings.ToLower(filepath.Ext(header.Filename)))
	if err := saveFile(header, filepath.Join(folder, filename)); err != nil {
		return "", fmt.Errorf("failed to save file: %w", err)
	}

	return u.urlPrefix + "/" + productImageFolder + "/" + filename, nil
}

func saveFile(header *multipart.FileHeader, dst string) error {
	src, err := header.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := out.ReadFrom(src); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
