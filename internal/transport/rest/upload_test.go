package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/saveschool/catalog-backend/internal/domain"
	"github.com/saveschool/catalog-backend/pkg/ctxutil"
)

type actorStoreMock struct {
	actor *domain.Actor
	err   error
}

func (m *actorStoreMock) GetActor(_ context.Context, _ uuid.UUID) (*domain.Actor, error) {
	return m.actor, m.err
}

type assetStoreMock struct {
	gotPath string
	gotData []byte
	url     string
	err     error
}

func (m *assetStoreMock) Store(_ context.Context, data []byte, path string) (string, error) {
	m.gotData = data
	m.gotPath = path
	return m.url, m.err
}

func posterActor() *domain.Actor {
	return &domain.Actor{
		ID:       uuid.New(),
		Username: "poster",
		Role:     domain.RolePoster,
		IsActive: true,
	}
}

func multipartUpload(t *testing.T, filename, dir string, content []byte) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if dir != "" {
		if err := mw.WriteField("dir", dir); err != nil {
			t.Fatalf("write dir field: %v", err)
		}
	}
	fw, err := mw.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := fw.Write(content); err != nil {
		t.Fatalf("write file content: %v", err)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestUpload_Success(t *testing.T) {
	t.Parallel()

	store := &assetStoreMock{url: "http://media.local/thumbs/cover.png"}
	h := NewUploadHandler(&actorStoreMock{actor: posterActor()}, store, testLogger())

	req := multipartUpload(t, "cover.png", "thumbs", []byte("png-bytes"))
	req = req.WithContext(ctxutil.WithUserID(req.Context(), uuid.New()))
	rec := httptest.NewRecorder()

	h.Upload(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d, body %s", rec.Code, http.StatusOK, rec.Body.String())
	}
	if store.gotPath != "thumbs/cover.png" {
		t.Errorf("stored path: got %q", store.gotPath)
	}
	if string(store.gotData) != "png-bytes" {
		t.Errorf("stored data: got %q", store.gotData)
	}

	var resp uploadResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.URL != store.url {
		t.Errorf("url: got %q, want %q", resp.URL, store.url)
	}
}

func TestUpload_StripsClientPath(t *testing.T) {
	t.Parallel()

	store := &assetStoreMock{url: "http://media.local/passwd"}
	h := NewUploadHandler(&actorStoreMock{actor: posterActor()}, store, testLogger())

	req := multipartUpload(t, "../../etc/passwd", "", []byte("x"))
	req = req.WithContext(ctxutil.WithUserID(req.Context(), uuid.New()))
	rec := httptest.NewRecorder()

	h.Upload(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, body %s", rec.Code, rec.Body.String())
	}
	if store.gotPath != "passwd" {
		t.Errorf("stored path: got %q, want %q", store.gotPath, "passwd")
	}
}

func TestUpload_Unauthenticated(t *testing.T) {
	t.Parallel()

	h := NewUploadHandler(&actorStoreMock{actor: posterActor()}, &assetStoreMock{}, testLogger())

	req := multipartUpload(t, "cover.png", "", []byte("x"))
	rec := httptest.NewRecorder()

	h.Upload(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestUpload_UnknownUser(t *testing.T) {
	t.Parallel()

	h := NewUploadHandler(&actorStoreMock{err: domain.ErrNotFound}, &assetStoreMock{}, testLogger())

	req := multipartUpload(t, "cover.png", "", []byte("x"))
	req = req.WithContext(ctxutil.WithUserID(req.Context(), uuid.New()))
	rec := httptest.NewRecorder()

	h.Upload(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestUpload_ForbiddenForMember(t *testing.T) {
	t.Parallel()

	member := posterActor()
	member.Role = domain.RoleMember
	h := NewUploadHandler(&actorStoreMock{actor: member}, &assetStoreMock{}, testLogger())

	req := multipartUpload(t, "cover.png", "", []byte("x"))
	req = req.WithContext(ctxutil.WithUserID(req.Context(), uuid.New()))
	rec := httptest.NewRecorder()

	h.Upload(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusForbidden)
	}
}

func TestUpload_MissingFileField(t *testing.T) {
	t.Parallel()

	h := NewUploadHandler(&actorStoreMock{actor: posterActor()}, &assetStoreMock{}, testLogger())

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if err := mw.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req = req.WithContext(ctxutil.WithUserID(req.Context(), uuid.New()))
	rec := httptest.NewRecorder()

	h.Upload(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestUpload_MethodNotAllowed(t *testing.T) {
	t.Parallel()

	h := NewUploadHandler(&actorStoreMock{}, &assetStoreMock{}, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/upload", nil)
	rec := httptest.NewRecorder()

	h.Upload(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusMethodNotAllowed)
	}
}
