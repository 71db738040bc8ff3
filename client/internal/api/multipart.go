package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"

	"github.com/mzansi-thrift/storefront/client/internal/types"
)

// MediaField is the form field every uploaded file is appended under.
const MediaField = "media"

// FormField is a plain text part of a multipart body.
type FormField struct {
	Name  string
	Value string
}

// Multipart is a multipart/form-data body: text fields first, then files
// under MediaField.
type Multipart struct {
	Fields []FormField
	Files  []types.MediaFile
}

func (m *Multipart) validate() error {
	for i, f := range m.Files {
		if f.Content == nil {
			return fmt.Errorf("media file %d (%q) has no content", i, f.Name)
		}
		if name := filepath.Base(f.Name); name == "." || name == string(filepath.Separator) {
			return errors.New("media file name is required")
		}
	}
	return nil
}

// stream writes the payload into a pipe from its own goroutine, so reading
// the files happens while the request runs and under ctx. The writer's
// result is sent on the channel before the pipe is closed.
func (m *Multipart) stream(ctx context.Context) (io.ReadCloser, string, <-chan error) {
	pr, pw := io.Pipe()
	w := multipart.NewWriter(pw)
	done := make(chan error, 1)
	go func() {
		err := m.write(ctx, w)
		done <- err
		_ = pw.CloseWithError(err)
	}()
	return pr, w.FormDataContentType(), done
}

func (m *Multipart) write(ctx context.Context, w *multipart.Writer) error {
	for _, f := range m.Fields {
		if err := w.WriteField(f.Name, f.Value); err != nil {
			return err
		}
	}
	for _, f := range m.Files {
		part, err := w.CreateFormFile(MediaField, filepath.Base(f.Name))
		if err != nil {
			return err
		}
		if _, err := io.Copy(part, ctxReader{ctx: ctx, r: f.Content}); err != nil {
			return fmt.Errorf("read media file %q: %w", f.Name, err)
		}
	}
	return w.Close()
}

// ctxReader stops reading once ctx is done. A Read already blocked in the
// underlying reader is not interrupted.
type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

func (c ctxReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}
