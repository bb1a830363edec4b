package symbol

import (
	"go/token"
	"unicode"
)

// ToGoName 按可见性转换名称
func ToGoName(name string, public bool) string {
	if public {
		return capitalize(name)
	}
	return uncapitalize(name)
}

// IsExported 判断名称是否导出
func IsExported(name string) bool {
	return token.IsExported(name)
}

// SetterName 返回字段的 setter 名：导出字段为 SetX，否则为 setX
func SetterName(field string) string {
	if IsExported(field) {
		return "Set" + capitalize(field)
	}
	return "set" + capitalize(field)
}

// Capitalize 首字母大写
func Capitalize(s string) string {
	return capitalize(s)
}

// capitalize 首字母大写
func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// uncapitalize 首字母小写
func uncapitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToLower(runes[0])
	return string(runes)
}
