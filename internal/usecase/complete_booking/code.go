package complete_booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/smart-taythanh/STT-CitizenService/internal/domain"
	"github.com/smart-taythanh/STT-CitizenService/pkg/types"
)

// generateCode строит код записи формата TT-{DD}{MM}-{HHMM}-{N},
// где N - случайное число в [1, 100].
// Код презентационный: уникальность не гарантируется и не требуется.
func generateCode(date time.Time, start types.TimeString, rnd RandSource) string {
	timePart := strings.ReplaceAll(start.String(), ":", "")
	suffix := rnd.Intn(domain.CodeRandMax) + 1

	return fmt.Sprintf("%s-%02d%02d-%s-%d",
		domain.CodePrefix, date.Day(), int(date.Month()), timePart, suffix)
}
