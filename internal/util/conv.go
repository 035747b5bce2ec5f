package util

import (
	"strconv"
	"strings"
)

// ParsePositiveInt 解析路径中的数字标识，非数字或非正数返回 ok=false
func ParsePositiveInt(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}
