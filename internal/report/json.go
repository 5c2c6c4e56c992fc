package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/idilsaglam/todolist/internal/derive"
	"github.com/idilsaglam/todolist/internal/model"
)

// JSON writes v as a single JSON document followed by a newline.
func JSON(w io.Writer, v derive.View, pretty bool) error {
	if v.Items == nil {
		v.Items = []model.Item{}
	}
	var (
		b   []byte
		err error
	)
	if pretty {
		b, err = json.MarshalIndent(v, "", "  ")
	} else {
		b, err = json.Marshal(v)
	}
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	b = append(b, '\n')
	if _, err := w.Write(b); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}
