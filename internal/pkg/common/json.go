package common

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"regexp"
	"strings"
)

// ParseJSON JSON 文字列を構造体にパースする
func ParseJSON(data string, v interface{}) error {
	return decodeJSON(strings.NewReader(data), v, false)
}

// ParseJSONStrict JSON 文字列を構造体にパースする（未知フィールド禁止）
func ParseJSONStrict(data string, v interface{}) error {
	return decodeJSON(strings.NewReader(data), v, true)
}

// ParseJSONBytes JSON バイト列を構造体にパースする
func ParseJSONBytes(data []byte, v interface{}) error {
	return decodeJSON(bytes.NewReader(data), v, false)
}

// ParseJSONBytesStrict JSON バイト列を構造体にパースする（未知フィールド禁止）
func ParseJSONBytesStrict(data []byte, v interface{}) error {
	return decodeJSON(bytes.NewReader(data), v, true)
}

// DecodeJSON 共通設定で JSON をデコードする
func DecodeJSON(r io.Reader, v interface{}) error {
	return decodeJSON(r, v, false)
}

// DecodeJSONStrict 共通設定で JSON をデコードする（未知フィールド禁止）
func DecodeJSONStrict(r io.Reader, v interface{}) error {
	return decodeJSON(r, v, true)
}

func decodeJSON(r io.Reader, v interface{}, disallowUnknown bool) error {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	if disallowUnknown {
		dec.DisallowUnknownFields()
	}

	if err := dec.Decode(v); err != nil {
		return err
	}

	// 末尾に余分なデータがないことを確認する
	for {
		t, err := dec.Token()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if t != nil {
			return fmt.Errorf("unexpected extra JSON data")
		}
	}
}

var unquotedKeyPattern = regexp.MustCompile(`([{\[,]\s*)([A-Za-z_][A-Za-z0-9_]*)\s*:`)

// QuoteJSONKeys ダブルクォートされていないキーにクォートを補う
func QuoteJSONKeys(raw string) string {
	return unquotedKeyPattern.ReplaceAllString(raw, `$1"$2":`)
}

// ExtractJSONBlock AI 応答から JSON 部分のみを切り出す
// Markdown のコードブロックや前後の文章が混ざっていても、最初の開き括弧から
// 最後の閉じ括弧までを取り出す
func ExtractJSONBlock(raw string) string {
	cleaned := strings.ReplaceAll(raw, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")
	cleaned = strings.TrimSpace(cleaned)

	objStart := strings.Index(cleaned, "{")
	arrStart := strings.Index(cleaned, "[")

	start, endCh := objStart, "}"
	if objStart == -1 || (arrStart != -1 && arrStart < objStart) {
		start, endCh = arrStart, "]"
	}
	if start == -1 {
		return cleaned
	}
	end := strings.LastIndex(cleaned, endCh)
	if end <= start {
		return cleaned
	}
	return cleaned[start : end+1]
}

// ToJSON 構造体を JSON 文字列に変換する
func ToJSON(v interface{}) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// StringSliceToString 文字列スライスを読点区切りの文字列にする
func StringSliceToString(slice []string) string {
	if len(slice) == 0 {
		return ""
	}
	return strings.Join(slice, "、")
}

// AIRequest AI リクエスト構造
type AIRequest struct {
	Prompt    string `json:"prompt"`
	ImageData string `json:"image_data,omitempty"`
	Model     string `json:"model"`
}

// AIResponse AI レスポンス構造
type AIResponse struct {
	Choices []struct {
		Message struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Message メッセージ構造
type Message struct {
	Role    string    `json:"role"`
	Content []Content `json:"content"`
}

// Content コンテンツ構造
type Content struct {
	Type     string    `json:"type"`
	Text     string    `json:"text,omitempty"`
	ImageURL *ImageURL `json:"image_url,omitempty"`
}

// ImageURL 画像 URL 構造
type ImageURL struct {
	URL string `json:"url"`
}
