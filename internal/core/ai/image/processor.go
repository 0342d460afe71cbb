package image

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

// Processor アップロード画像の軽量な事前検証器
// 本格的なデコードと JPEG 変換は core/image.Service が担当する
type Processor struct {
	maxSize int64
}

// NewProcessor 画像プロセッサを生成する
func NewProcessor(maxSize int64) *Processor {
	return &Processor{
		maxSize: maxSize,
	}
}

// FormatImageData data URI 形式に正規化する
// 裸の base64 は JPEG の data URI として包む
func (p *Processor) FormatImageData(imageData string) (string, error) {
	if imageData == "" {
		return "", errors.New("image data is empty")
	}
	if strings.HasPrefix(imageData, "data:image/") {
		return imageData, nil
	}
	return fmt.Sprintf("data:image/jpeg;base64,%s", imageData), nil
}

// Validate data URI の構造と base64 とサイズを検証する
func (p *Processor) Validate(imageData string) error {
	if imageData == "" {
		return errors.New("image data is empty")
	}

	if !strings.HasPrefix(imageData, "data:image/") {
		return errors.New("invalid image data format")
	}

	parts := strings.SplitN(imageData, ",", 2)
	if len(parts) != 2 {
		return errors.New("invalid data URI format")
	}

	decoded, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		return fmt.Errorf("failed to decode base64 data: %w", err)
	}

	if int64(len(decoded)) > p.maxSize {
		return fmt.Errorf("image size exceeds maximum limit of %d bytes", p.maxSize)
	}

	return nil
}
