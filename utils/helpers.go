package utils

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	nonAlphanumericRegex = regexp.MustCompile(`[^a-z0-9-]`)
)

// GenerateSlug Tạo ra slug từ chuỗi string. Ví dụ: Công nghệ
//
// Param:
//   - input (string): là đầu vào muốn chuyển thành slug
//
// Return:
//
//   - quotient: kết quả sau khi chuyển. Ví dụ: cong-nghe
func GenerateSlug(input string) string {
	//Loại bỏ dấu
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

	// Áp dụng transformer
	normalized, _, _ := transform.String(t, input)

	lowercased := strings.ToLower(normalized)

	//Thay thế khoảng trắng bằng gạch ngang
	withHyphens := strings.ReplaceAll(lowercased, " ", "-")

	//Loại bỏ tất cả các ký tự không phải chữ, số, hoặc gạch ngang
	finalSlug := nonAlphanumericRegex.ReplaceAllString(withHyphens, "")

	//Xóa gạch ngang ở đầu hoặc cuối chuỗi
	finalSlug = strings.Trim(finalSlug, "-")

	return finalSlug
}

// BuildAssetName sinh public id cho ảnh upload: slug của title + hậu tố uuid
// để tránh đè file khi trùng tên
func BuildAssetName(title string) string {
	suffix := strings.ReplaceAll(uuid.New().String()[:8], "-", "")
	slug := GenerateSlug(title)
	if slug == "" {
		slug = "blog"
	}
	return fmt.Sprintf("%s_%s", slug, suffix)
}
