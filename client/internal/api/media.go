package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	sferrors "github.com/mzansi-thrift/storefront/client/internal/errors"
	"github.com/mzansi-thrift/storefront/client/internal/types"
)

// UploadMedia stores files and returns their public paths
// ({"images": [...], "videos": [...]}). The upload shares the dispatcher's
// timeout and error handling with every other call.
func UploadMedia(ctx context.Context, d *Dispatcher, files []types.MediaFile) (json.RawMessage, error) {
	if len(files) == 0 {
		return nil, sferrors.NewInvalidInputError(errors.New("no files provided"))
	}
	return d.Do(ctx, Request{
		Op:        "upload_media",
		Method:    http.MethodPost,
		Path:      "/upload-media",
		Multipart: &Multipart{Files: files},
	})
}
