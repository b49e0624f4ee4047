package libs

import (
	"context"
	"errors"
	"fmt"
	"log"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"hardware-store/config"
)

const productImageFolder = "products"

// ImageUploader stores a product image and returns its public URL.
type ImageUploader interface {
	Upload(ctx context.Context, header *multipart.FileHeader) (string, error)
}

// ImageRemover is implemented by uploaders that can delete what they stored.
type ImageRemover interface {
	Delete(ctx context.Context, publicID string) error
}

type CloudinaryUploader struct {
	cld     *cloudinary.Cloudinary
	maxSize int64
}

// NewCloudinaryUploader prefers the separate credentials and falls back to
// CLOUDINARY_URL.
func NewCloudinaryUploader(cfg *config.Config) (*CloudinaryUploader, error) {
	var (
		cld *cloudinary.Cloudinary
		err error
	)

	switch {
	case cfg.CloudName != "" && cfg.CloudAPIKey != "" && cfg.CloudAPISecret != "":
		cld, err = cloudinary.NewFromParams(cfg.CloudName, cfg.CloudAPIKey, cfg.CloudAPISecret)
	case cfg.CloudinaryURL != "":
		log.Printf("[Cloudinary] Using CLOUDINARY_URL: %s", maskURL(cfg.CloudinaryURL))
		cld, err = cloudinary.NewFromURL(cfg.CloudinaryURL)
	default:
		return nil, errors.New("cloudinary credentials not configured")
	}
	if err != nil {
		return nil, fmt.Errorf("cloudinary init fail: %w", err)
	}

	return &CloudinaryUploader{cld: cld, maxSize: cfg.MaxUploadSize}, nil
}

func (u *CloudinaryUploader) Upload(ctx context.Context, header *multipart.FileHeader) (string, error) {
	if err := ValidateImage(header, u.maxSize); err != nil {
		return "", err
	}

	file, err := header.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	name := strings.TrimSuffix(strings.ReplaceAll(header.Filename, " ", "_"), filepath.Ext(header.Filename))
	publicID := fmt.Sprintf("%d_%s", time.Now().Unix(), name)

	log.Printf("[Cloudinary] Uploading %s", header.Filename)
	resp, err := u.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		PublicID:       publicID,
		Folder:         productImageFolder,
		ResourceType:   "image",
		Transformation: "q_auto,f_auto",
	})
	if err != nil {
		log.Printf("[Cloudinary] Upload error: %v", err)
		return "", fmt.Errorf("failed to upload to cloudinary: %w", err)
	}
	if resp == nil {
		return "", errors.New("cloudinary response is nil")
	}

	if resp.SecureURL == "" {
		if resp.URL != "" {
			return resp.URL, nil
		}
		return "", errors.New("both SecureURL and URL are empty")
	}
	return resp.SecureURL, nil
}

func (u *CloudinaryUploader) Delete(ctx context.Context, publicID string) error {
	if publicID == "" {
		return nil
	}

	result, err := u.cld.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID:     publicID,
		ResourceType: "image",
	})
	if err != nil {
		return fmt.Errorf("failed to delete from cloudinary: %w", err)
	}
	if result.Result != "ok" {
		return fmt.Errorf("cloudinary deletion failed: %s", result.Result)
	}

	log.Printf("[Cloudinary] Deleted %s", publicID)
	return nil
}

// PublicIDFromURL recovers "<folder>/<name>" from a delivery URL such as
// https://res.cloudinary.com/demo/image/upload/v123/products/abc.jpg.
func PublicIDFromURL(url string) string {
	idx := strings.Index(url, "/upload/")
	if idx < 0 {
		return ""
	}
	rest := url[idx+len("/upload/"):]
	if slash := strings.Index(rest, "/"); slash > 0 && rest[0] == 'v' {
		rest = rest[slash+1:]
	}
	return strings.TrimSuffix(rest, filepath.Ext(rest))
}

func maskURL(url string) string {
	if len(url) < 20 {
		return "***"
	}
	return url[:10] + "..." + url[len(url)-10:]
}
