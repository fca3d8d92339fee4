package services

import (
	"QuickBlog/dto"
	"regexp"
	"strings"
)

var descriptionLabelRegex = regexp.MustCompile(`(?i)^description:\s*`)

// ParseSeoResponse tách text thô từ model thành SeoData theo 3 nhãn
// Title / Description / Keywords.
//
// Model trả text tự do nên parser phải best-effort: thiếu section nào thì
// field đó rỗng, không bao giờ trả lỗi. Mỗi nhãn được quét độc lập trên toàn
// bộ danh sách dòng, vì vậy thứ tự các section trong reply không quan trọng.
//
// Lưu ý payload của Title và Keywords lấy đoạn nằm giữa dấu ':' thứ nhất và
// thứ hai (giữ nguyên hành vi split(':')[1] của backend cũ): nếu title chứa
// thêm dấu ':' thì phần sau bị cắt bỏ.
func ParseSeoResponse(raw string) dto.SeoData {
	// Bỏ hẳn dòng rỗng, kể cả dòng trống nằm giữa các đoạn của description
	lines := make([]string, 0)
	for _, line := range strings.Split(raw, "\n") {
		if line != "" {
			lines = append(lines, line)
		}
	}

	seo := dto.SeoData{Tags: []string{}}

	for _, line := range lines {
		if strings.HasPrefix(strings.ToLower(line), "title:") {
			parts := strings.Split(line, ":")
			if len(parts) > 1 {
				seo.SeoTitle = strings.TrimSpace(parts[1])
			}
			break
		}
	}

	keywordsIndex := -1
	for i, line := range lines {
		if strings.HasPrefix(strings.ToLower(line), "keywords:") {
			keywordsIndex = i
			parts := strings.Split(line, ":")
			if len(parts) > 1 {
				for _, tag := range strings.Split(parts[1], ",") {
					seo.Tags = append(seo.Tags, strings.TrimSpace(tag))
				}
			}
			break
		}
	}

	descriptionIndex := -1
	for i, line := range lines {
		if strings.HasPrefix(strings.ToLower(line), "description:") {
			descriptionIndex = i
			break
		}
	}

	if descriptionIndex != -1 {
		// Dòng keywords chỉ chặn description khi nó nằm SAU description,
		// nằm trước thì description chạy đến hết input
		end := len(lines)
		if keywordsIndex > descriptionIndex {
			end = keywordsIndex
		}
		descriptionLines := lines[descriptionIndex:end]
		joined := strings.Join(descriptionLines, "\n")
		joined = descriptionLabelRegex.ReplaceAllString(joined, "")
		seo.MetaDescription = strings.TrimSpace(joined)
	}

	return seo
}
