package rest

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"path"

	"github.com/google/uuid"

	"github.com/saveschool/catalog-backend/internal/domain"
	"github.com/saveschool/catalog-backend/internal/domain/policy"
	"github.com/saveschool/catalog-backend/pkg/ctxutil"
)

// maxUploadBytes bounds a single multipart upload.
const maxUploadBytes = 32 << 20

// assetStore persists an uploaded asset and returns its public URL.
type assetStore interface {
	Store(ctx context.Context, data []byte, path string) (string, error)
}

// actorStore resolves the authenticated user id to an actor.
type actorStore interface {
	GetActor(ctx context.Context, userID uuid.UUID) (*domain.Actor, error)
}

// UploadHandler serves the media upload endpoint.
type UploadHandler struct {
	users actorStore
	store assetStore
	log   *slog.Logger
}

// NewUploadHandler creates an UploadHandler.
func NewUploadHandler(users actorStore, store assetStore, logger *slog.Logger) *UploadHandler {
	return &UploadHandler{users: users, store: store, log: logger.With("handler", "upload")}
}

type uploadResponse struct {
	URL string `json:"url"`
}

// Upload handles POST /upload. The caller must be allowed to upload files;
// the asset is taken from the "file" multipart field and stored under an
// optional "dir" prefix.
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	userID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	actor, err := h.users.GetActor(r.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusUnauthorized, "authentication required")
			return
		}
		h.log.ErrorContext(r.Context(), "actor lookup failed", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	if !policy.Authorize(policy.ActionUploadFile, actor, policy.Context{}) {
		writeError(w, http.StatusForbidden, "forbidden")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "file field required")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusBadRequest, "read upload: "+err.Error())
		return
	}

	name := path.Base(header.Filename)
	if dir := r.FormValue("dir"); dir != "" {
		name = path.Join(dir, name)
	}

	url, err := h.store.Store(r.Context(), data, name)
	if err != nil {
		h.log.ErrorContext(r.Context(), "store upload failed", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	h.log.InfoContext(r.Context(), "file uploaded",
		slog.String("path", name),
		slog.String("user", actor.Username),
		slog.Int("size", len(data)),
	)
	writeJSON(w, http.StatusOK, uploadResponse{URL: url})
}
