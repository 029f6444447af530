package tracing

import (
	"strings"
)

const (
	// DefaultMaxLength 默认最大属性长度
	DefaultMaxLength = 200

	// MaxDocumentLength 简历/JD内容在span属性中的最大长度
	MaxDocumentLength = 150

	// MaxHeaderLength HTTP头最大长度
	MaxHeaderLength = 100
)

// maskPIILookup 需要掩码处理的关键字。简历文本里全是个人信息，
// 任何命中这些关键字的属性值都不允许明文进入trace
var maskPIILookup = map[string]bool{
	"email":    true,
	"phone":    true,
	"name":     true,
	"address":  true,
	"password": true,
	"secret":   true,
	"token":    true,
	"api_key":  true,
}

// SafeAttributeValue 确保属性值安全：
// 1. 敏感关键字对应的值返回掩码
// 2. 超过maxLength的值截断并添加省略号
func SafeAttributeValue(name string, value string, maxLength int) string {
	lowerName := strings.ToLower(name)
	for keyword := range maskPIILookup {
		if strings.Contains(lowerName, keyword) {
			return maskValue(value)
		}
	}

	if maxLength <= 0 {
		maxLength = DefaultMaxLength
	}
	return TruncateString(value, maxLength)
}

// TruncateString 截断字符串到最大长度，附加省略号
func TruncateString(value string, maxLength int) string {
	runes := []rune(value)
	if len(runes) <= maxLength {
		return value
	}
	return string(runes[:maxLength]) + "..."
}

// maskValue 保留首尾各一个字符，中间掩码
func maskValue(value string) string {
	runes := []rune(value)
	if len(runes) <= 2 {
		return "***"
	}
	return string(runes[0]) + "***" + string(runes[len(runes)-1])
}
