package domain

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ReferencePrefix префикс номера брони
const ReferencePrefix = "BK"

// ReferencePattern формат номера брони: BK + дата YYYYMMDD + 6 символов [0-9A-Z]
var ReferencePattern = regexp.MustCompile(`^BK\d{8}[0-9A-Z]{6}$`)

// NewReference генерирует номер брони: BK + текущая дата + случайный суффикс.
// Суффикс — 6 hex-символов uuid4 в верхнем регистре; уникальность
// гарантирует ограничение в БД, при коллизии вызывающий генерирует заново.
func NewReference(now time.Time) string {
	u := uuid.New()
	suffix := strings.ToUpper(fmt.Sprintf("%x", u[:3]))
	return ReferencePrefix + now.Format("20060102") + suffix
}

// IsValidReference проверяет, что строка соответствует формату номера брони
func IsValidReference(s string) bool {
	return ReferencePattern.MatchString(s)
}
