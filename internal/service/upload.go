package service

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "golang.org/x/image/webp"
)

// MaxUploadBytes 限制单张作品图片的大小。
const MaxUploadBytes = 8 << 20

var (
	// ErrUploadNotImage 表示上传内容无法解码为受支持的图片。
	ErrUploadNotImage = errors.New("upload is not a supported image")
	// ErrUploadTooLarge 表示上传内容超过大小限制。
	ErrUploadTooLarge = errors.New("upload exceeds size limit")
)

// UploadedImage 描述保存后的图片。
type UploadedImage struct {
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Format string `json:"format"`
}

// ImageUploader 将后台上传的作品图片保存到本地目录，并返回可公开访问的地址。
type ImageUploader struct {
	dir     string
	urlPath string
	now     func() time.Time
}

// NewImageUploader 构造 ImageUploader。
func NewImageUploader(dir, urlPath string) *ImageUploader {
	urlPath = "/" + strings.Trim(strings.TrimSpace(urlPath), "/")
	return &ImageUploader{dir: dir, urlPath: urlPath, now: time.Now}
}

// Save 校验图片格式后写入磁盘，文件名为日期加 UUID。
func (u *ImageUploader) Save(src io.ReadSeeker, size int64) (*UploadedImage, error) {
	if size > MaxUploadBytes {
		return nil, ErrUploadTooLarge
	}

	cfg, format, err := image.DecodeConfig(src)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUploadNotImage, err)
	}
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("rewind upload: %w", err)
	}

	if err := os.MkdirAll(u.dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}

	name := fmt.Sprintf("%s-%s.%s", u.now().Format("20060102"), uuid.NewString(), extensionFor(format))
	dst, err := os.Create(filepath.Join(u.dir, name))
	if err != nil {
		return nil, fmt.Errorf("create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, io.LimitReader(src, MaxUploadBytes)); err != nil {
		dst.Close()
		os.Remove(dst.Name())
		return nil, fmt.Errorf("write upload file: %w", err)
	}

	return &UploadedImage{
		URL:    path.Join(u.urlPath, name),
		Width:  cfg.Width,
		Height: cfg.Height,
		Format: format,
	}, nil
}

func extensionFor(format string) string {
	switch format {
	case "jpeg":
		return "jpg"
	default:
		return format
	}
}
