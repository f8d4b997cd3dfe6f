package docx

import (
	"bytes"

	"resume-builder/internal/model"
)

// Export builds and serializes the resume. It never looks at a rendered
// template.
func Export(r *model.Resume) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, Build(r)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
