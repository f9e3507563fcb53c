package services

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"campus/internal/shared/biztime"
)

// ReferenceGenerator produces PREFIX-YYYYMMDD-XXXXXX references, where the
// date is the campus-local day and XXXXXX the first six hex digits of a
// random UUID, upper-cased. Uniqueness is enforced by the column index.
type ReferenceGenerator struct {
	newID func() uuid.UUID
}

func NewReferenceGenerator() *ReferenceGenerator {
	return &ReferenceGenerator{newID: uuid.New}
}

func (g *ReferenceGenerator) Next(prefix string) string {
	date := biztime.NowUTC().In(biztime.Location()).Format("20060102")
	suffix := strings.ToUpper(strings.ReplaceAll(g.newID().String(), "-", "")[:6])
	return fmt.Sprintf("%s-%s-%s", prefix, date, suffix)
}
