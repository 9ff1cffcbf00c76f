package service

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var plainTextPolicy = bluemonday.StrictPolicy()

// maxCleanPasses 限制反转义与再清洗的轮数，多重编码的输入超出后按转义形式保存。
const maxCleanPasses = 8

// cleanText 去掉首尾空白与全部 HTML 标签，保留普通文本中的 & 等字符。
// 反转义后会再次清洗直到结果稳定，实体编码的标签同样会被去掉。
func cleanText(raw string) string {
	text := strings.TrimSpace(raw)
	for i := 0; i < maxCleanPasses; i++ {
		next := strings.TrimSpace(html.UnescapeString(plainTextPolicy.Sanitize(text)))
		if next == text {
			return text
		}
		text = next
	}
	return strings.TrimSpace(plainTextPolicy.Sanitize(text))
}

// cleanList 逐项清理并去重，保持首次出现的顺序，空白项被丢弃。
func cleanList(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	items := make([]string, 0, len(values))
	for _, value := range values {
		cleaned := cleanText(value)
		if cleaned == "" {
			continue
		}
		if _, dup := seen[cleaned]; dup {
			continue
		}
		seen[cleaned] = struct{}{}
		items = append(items, cleaned)
	}
	return items
}

// optionalURL 将空字符串视为未填写。
func optionalURL(raw string) *string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// Stars renders a rating as filled and empty stars, e.g. 4 -> "★★★★☆".
func Stars(rating int) string {
	if rating < 0 {
		rating = 0
	}
	if rating > MaxRating {
		rating = MaxRating
	}
	return strings.Repeat("★", rating) + strings.Repeat("☆", MaxRating-rating)
}
