package model

import "strings"

type Category string

const (
	CategoryMen    Category = "men"
	CategoryWomen  Category = "women"
	CategoryUnisex Category = "unisex"
)

// CategoryAll は絞り込みなしのセンチネル値
const CategoryAll = "all"

// ParseCategory は入力文字列を正規化して検証する。
// DBの表示用表記（"Men"）もAPIの小文字表記（"men"）もここで吸収する。
func ParseCategory(s string) (Category, bool) {
	switch Category(strings.ToLower(strings.TrimSpace(s))) {
	case CategoryMen:
		return CategoryMen, true
	case CategoryWomen:
		return CategoryWomen, true
	case CategoryUnisex:
		return CategoryUnisex, true
	default:
		return "", false
	}
}

// Storage はDB保存用の表記（先頭大文字）を返す。
// 表記変換はここ1箇所だけに置く。
func (c Category) Storage() string {
	if c == "" {
		return ""
	}
	s := string(c)
	return strings.ToUpper(s[:1]) + s[1:]
}

// CategoryFromStorage はDBの表記をAPI表記（小文字）へ戻す。
// 不正値はそのまま小文字化して返す（後方互換のため弾かない）。
func CategoryFromStorage(s string) Category {
	return Category(strings.ToLower(strings.TrimSpace(s)))
}
