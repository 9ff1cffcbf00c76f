package service

import (
	"net/url"
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultAvatarBaseURL 是占位头像服务的默认地址。
const DefaultAvatarBaseURL = "https://api.dicebear.com/7.x"

// AvatarService 根据种子字符串生成确定性的占位图地址。
type AvatarService struct {
	baseURL string
}

// NewAvatarService 构造 AvatarService，baseURL 为空时使用默认服务。
func NewAvatarService(baseURL string) *AvatarService {
	base := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if base == "" {
		base = DefaultAvatarBaseURL
	}
	return &AvatarService{baseURL: base}
}

// ReviewImage 以姓名首字母（小写）为种子生成头像。
func (s *AvatarService) ReviewImage(name string) string {
	return s.build("initials", InitialSeed(name))
}

// ClientLogo 以去除空白后的小写公司名为种子生成 Logo。
func (s *AvatarService) ClientLogo(name string) string {
	return s.build("shapes", CompactSeed(name))
}

func (s *AvatarService) build(style, seed string) string {
	return s.baseURL + "/" + style + "/svg?seed=" + url.QueryEscape(seed)
}

// InitialSeed returns the lower-cased first character of name.
func InitialSeed(name string) string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return ""
	}
	r, _ := utf8.DecodeRuneInString(trimmed)
	return string(unicode.ToLower(r))
}

// CompactSeed returns name lower-cased with every whitespace run removed.
func CompactSeed(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), ""))
}
