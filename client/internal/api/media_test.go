package api

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	sferrors "github.com/mzansi-thrift/storefront/client/internal/errors"
	"github.com/mzansi-thrift/storefront/client/internal/types"
)

func TestUploadMedia_Multipart(t *testing.T) {
	t.Parallel()
	d := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/upload-media" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if !strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data; boundary=") {
			t.Errorf("unexpected content type %q", r.Header.Get("Content-Type"))
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("parse multipart: %v", err)
			return
		}
		files := r.MultipartForm.File[MediaField]
		if len(files) != 2 || files[0].Filename != "front.jpg" || files[1].Filename != "clip.mp4" {
			t.Errorf("unexpected files: %+v", files)
		}
		f, _ := files[0].Open()
		b, _ := io.ReadAll(f)
		if string(b) != "jpeg-bytes" {
			t.Errorf("unexpected content %q", b)
		}
		writeJSON(w, http.StatusOK, map[string][]string{
			"images": {"/static/uploads/images/x_front.jpg"},
			"videos": {"/static/uploads/videos/x_clip.mp4"},
		})
	})

	raw, err := UploadMedia(context.Background(), d, []types.MediaFile{
		{Name: "/tmp/front.jpg", Content: strings.NewReader("jpeg-bytes")},
		{Name: "clip.mp4", Content: strings.NewReader("mp4-bytes")},
	})
	if err != nil {
		t.Fatalf("UploadMedia error: %v", err)
	}
	if !strings.Contains(string(raw), "x_front.jpg") {
		t.Fatalf("unexpected body: %s", raw)
	}
}

func TestUploadMedia_Errors(t *testing.T) {
	t.Parallel()
	d := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid file type: exe"})
	})
	_, err := UploadMedia(context.Background(), d, nil)
	wantKind(t, err, sferrors.KindInvalidInput)

	_, err = UploadMedia(context.Background(), d, []types.MediaFile{{Name: "a.exe", Content: strings.NewReader("x")}})
	e := wantKind(t, err, sferrors.KindAPI)
	if e.Message != "Invalid file type: exe" {
		t.Fatalf("unexpected message %q", e.Message)
	}

	_, err = UploadMedia(context.Background(), d, []types.MediaFile{{Name: "a.jpg"}})
	wantKind(t, err, sferrors.KindInvalidInput)
}

func TestUploadMedia_SharesTimeout(t *testing.T) {
	t.Parallel()
	rt := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		<-r.Context().Done()
		return nil, r.Context().Err()
	})
	d := &Dispatcher{BaseURL: "http://example.com/api", HTTP: &http.Client{Transport: rt}, Timeout: 20 * time.Millisecond}
	_, err := UploadMedia(context.Background(), d, []types.MediaFile{{Name: "a.jpg", Content: strings.NewReader("x")}})
	wantKind(t, err, sferrors.KindTimeout)
}

func TestUploadMedia_StalledSourceTimesOut(t *testing.T) {
	d := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.Copy(io.Discard, r.Body)
		writeJSON(w, http.StatusOK, map[string]any{"images": []string{}})
	})
	d.Timeout = 50 * time.Millisecond

	// a reader that never produces data nor EOF
	src, feed := io.Pipe()
	result := make(chan error, 1)
	go func() {
		_, err := UploadMedia(context.Background(), d, []types.MediaFile{{Name: "slow.jpg", Content: src}})
		result <- err
	}()

	select {
	case err := <-result:
		wantKind(t, err, sferrors.KindTimeout)
	case <-time.After(2 * time.Second):
		t.Fatal("upload still blocked long after its timeout")
	}

	// release the blocked read so the writer goroutine can exit
	_ = feed.Close()
}

func TestUploadMedia_SourceReadError(t *testing.T) {
	t.Parallel()
	d := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.Copy(io.Discard, r.Body)
		writeJSON(w, http.StatusOK, map[string]any{"images": []string{}})
	})
	src, feed := io.Pipe()
	_ = feed.CloseWithError(errors.New("disk went away"))

	_, err := UploadMedia(context.Background(), d, []types.MediaFile{{Name: "a.jpg", Content: src}})
	e := wantKind(t, err, sferrors.KindInvalidInput)
	if !strings.Contains(e.Message, "disk went away") {
		t.Fatalf("unexpected message %q", e.Message)
	}
}

func TestCreateProductWithMedia(t *testing.T) {
	t.Parallel()
	d := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/products-with-media" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("parse multipart: %v", err)
			return
		}
		if r.FormValue("name") != "Denim jacket" || r.FormValue("price") != "350" {
			t.Errorf("unexpected fields: %v", r.MultipartForm.Value)
		}
		if len(r.MultipartForm.File[MediaField]) != 1 {
			t.Errorf("expected one file")
		}
		writeJSON(w, http.StatusCreated, map[string]any{"product_id": 11})
	})
	_, err := CreateProductWithMedia(context.Background(), d,
		[]FormField{{Name: "name", Value: "Denim jacket"}, {Name: "price", Value: "350"}},
		[]types.MediaFile{{Name: "jacket.png", Content: strings.NewReader("png")}})
	if err != nil {
		t.Fatalf("CreateProductWithMedia error: %v", err)
	}
}

func TestAddProductMedia(t *testing.T) {
	t.Parallel()
	d := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/products/5/media" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		writeJSON(w, http.StatusCreated, map[string]any{"message": "Media uploaded successfully"})
	})
	if _, err := AddProductMedia(context.Background(), d, 5, []types.MediaFile{{Name: "a.jpg", Content: strings.NewReader("x")}}); err != nil {
		t.Fatalf("AddProductMedia error: %v", err)
	}
}
