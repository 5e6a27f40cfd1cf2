package util

import (
	"strconv"
)

// ParseUintParam 将路径参数转换为无符号整数，非法或为 0 时返回 false
func ParseUintParam(s string) (uint, bool) {
	id, err := strconv.ParseUint(s, 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// IntPtr 返回 v 的指针
func IntPtr(v int) *int {
	return &v
}

// StringPtr 返回 s 的指针
func StringPtr(s string) *string {
	return &s
}
