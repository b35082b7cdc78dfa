package elementwalker

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/foomo/elementwalker/vo"
)

// EncodeResultSet writes the result set as json indented by two spaces, markup
// and non ascii characters are not escaped and the document does not end with
// a newline
func EncodeResultSet(w io.Writer, rs *vo.ResultSet) error {
	buf := &bytes.Buffer{}
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if errEncode := enc.Encode(rs); errEncode != nil {
		return errEncode
	}
	_, errWrite := w.Write(bytes.TrimSuffix(buf.Bytes(), []byte("\n")))
	return errWrite
}

// WriteResultSet replaces filename with the encoded result set
func WriteResultSet(filename string, rs *vo.ResultSet) error {
	buf := &bytes.Buffer{}
	if errEncode := EncodeResultSet(buf, rs); errEncode != nil {
		return fmt.Errorf("could not encode results: %w", errEncode)
	}
	if errMkdir := os.MkdirAll(filepath.Dir(filename), 0o755); errMkdir != nil {
		return fmt.Errorf("could not create output dir: %w", errMkdir)
	}
	if errWrite := os.WriteFile(filename, buf.Bytes(), 0o644); errWrite != nil {
		return fmt.Errorf("could not write results: %w", errWrite)
	}
	return nil
}
