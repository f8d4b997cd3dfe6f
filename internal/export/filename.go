// Package export holds what the PDF and Word exporters share.
package export

import (
	"regexp"
	"strings"

	"resume-builder/internal/domain"
	"resume-builder/internal/model"
)

var whitespace = regexp.MustCompile(`\s+`)

// FileName derives "{full_name}.{ext}" with whitespace replaced by
// underscores, or "resume.{ext}" when there is no name.
func FileName(r *model.Resume, f domain.Format) string {
	name := strings.TrimSpace(r.Personal().FullName)
	if name == "" {
		name = "resume"
	}
	return whitespace.ReplaceAllString(name, "_") + f.Ext()
}
