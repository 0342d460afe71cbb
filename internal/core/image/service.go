package image

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/jpeg"
	"io"
	"net/http"
	"strings"
	"time"

	_ "image/gif" // GIF 対応
	_ "image/png" // PNG 対応

	_ "golang.org/x/image/webp" // WebP 対応
)

// Service 画像処理サービス
// URL・data URI のどちらも受け付け、検証のうえ JPEG の data URI に正規化する
type Service struct {
	maxSizeBytes int64
	httpClient   *http.Client
}

// NewService 画像処理サービスを生成する
func NewService(maxSizeBytes int64) *Service {
	return &Service{
		maxSizeBytes: maxSizeBytes,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// ProcessImage 画像を検証して JPEG の data URI に変換する
func (s *Service) ProcessImage(imageData string) (string, error) {
	raw, err := s.loadBytes(imageData)
	if err != nil {
		return "", err
	}

	img, err := s.decode(raw)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 85}); err != nil {
		return "", fmt.Errorf("failed to encode image as JPEG: %w", err)
	}

	encoded := base64.StdEncoding.EncodeToString(buf.Bytes())
	return fmt.Sprintf("data:image/jpeg;base64,%s", encoded), nil
}

// ValidateImage デコード可能な画像かどうかだけを確認する
func (s *Service) ValidateImage(imageData string) error {
	raw, err := s.loadBytes(imageData)
	if err != nil {
		return err
	}

	_, err = s.decode(raw)
	return err
}

// loadBytes URL ダウンロードまたは data URI のデコードでバイト列を得る
func (s *Service) loadBytes(imageData string) ([]byte, error) {
	if strings.HasPrefix(imageData, "http://") || strings.HasPrefix(imageData, "https://") {
		resp, err := s.httpClient.Get(imageData)
		if err != nil {
			return nil, fmt.Errorf("failed to download image: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("failed to download image: status code %d", resp.StatusCode)
		}

		raw, err := io.ReadAll(io.LimitReader(resp.Body, s.maxSizeBytes+1))
		if err != nil {
			return nil, fmt.Errorf("failed to read image data: %w", err)
		}
		if int64(len(raw)) > s.maxSizeBytes {
			return nil, fmt.Errorf("image size exceeds maximum limit of %d bytes", s.maxSizeBytes)
		}
		return raw, nil
	}

	if !strings.HasPrefix(imageData, "data:image/") {
		return nil, fmt.Errorf("invalid image data format")
	}

	parts := strings.SplitN(imageData, ",", 2)
	if len(parts) != 2 {
		return nil, fmt.Errorf("invalid base64 data format")
	}

	raw, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		return nil, fmt.Errorf("failed to decode base64 data: %w", err)
	}
	if int64(len(raw)) > s.maxSizeBytes {
		return nil, fmt.Errorf("image size exceeds maximum limit of %d bytes", s.maxSizeBytes)
	}
	return raw, nil
}

// decode 画像をデコードして対応形式かを確認する
func (s *Service) decode(raw []byte) (image.Image, error) {
	img, format, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	if !isSupportedFormat(format) {
		return nil, fmt.Errorf("unsupported image format: %s", format)
	}
	return img, nil
}

func isSupportedFormat(format string) bool {
	switch format {
	case "jpeg", "jpg", "png", "gif", "webp":
		return true
	}
	return false
}
