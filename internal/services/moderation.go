package services

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// minCommentLength: komentar lebih pendek dari ini dianggap spam.
const minCommentLength = 5

// alnumRunRe mendeteksi deretan alfanumerik ≥30 karakter tanpa jeda,
// pola khas string acak dari bot.
var alnumRunRe = regexp.MustCompile(`[a-zA-Z0-9]{30,}`)

// defaultDenylist adalah daftar kata terlarang bawaan. Bisa diganti per
// deployment lewat NewModerationPolicy.
var defaultDenylist = []string{
	"anjing",
	"babi",
	"bangsat",
	"bajingan",
	"brengsek",
	"goblok",
	"tolol",
	"kampret",
	"kontol",
	"memek",
	"asu",
}

// ModerationPolicy memutuskan nilai awal is_approved sebuah komentar.
// Murni heuristik: false positive/negative diterima, koreksi dilakukan
// moderator lewat approve/delete. Keputusan tidak pernah dievaluasi
// ulang setelah komentar dibuat.
type ModerationPolicy struct {
	denylist []string
}

// NewModerationPolicy membuat policy dengan denylist sendiri.
// Token dicocokkan case-insensitive sebagai substring.
func NewModerationPolicy(denylist []string) *ModerationPolicy {
	lowered := make([]string, len(denylist))
	for i, token := range denylist {
		lowered[i] = strings.ToLower(token)
	}
	return &ModerationPolicy{denylist: lowered}
}

// DefaultModerationPolicy mengembalikan policy dengan denylist bawaan.
func DefaultModerationPolicy() *ModerationPolicy {
	return NewModerationPolicy(defaultDenylist)
}

// Evaluate mengembalikan true jika komentar langsung disetujui.
// Caller sudah memastikan content tidak kosong dan ≤1000 karakter.
func (p *ModerationPolicy) Evaluate(content string) bool {
	lowered := strings.ToLower(content)

	for _, token := range p.denylist {
		if strings.Contains(lowered, token) {
			return false
		}
	}

	if strings.Contains(lowered, "http://") || strings.Contains(lowered, "https://") {
		return false
	}
	if utf8.RuneCountInString(content) < minCommentLength {
		return false
	}
	if alnumRunRe.MatchString(content) {
		return false
	}

	return true
}
