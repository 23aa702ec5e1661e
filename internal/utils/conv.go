package utils

import (
	"strconv"
)

// StringToInt mengubah string menjadi int, mengembalikan 0 jika gagal.
// Dipakai untuk query param paginasi; 0 jatuh ke nilai default caller.
func StringToInt(s string) int {
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return i
}
