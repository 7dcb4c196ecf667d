package handler

import (
	"net/http"

	"github.com/ella-quan/meowhome/internal/model"
	"github.com/ella-quan/meowhome/internal/service"
)

// maxUploadBytes bounds photo uploads.
const maxUploadBytes = 16 << 20

// PhotoHandler serves the gallery endpoints.
type PhotoHandler struct {
	photos *service.PhotoService
}

// NewPhotoHandler creates a new photo handler.
func NewPhotoHandler(photos *service.PhotoService) *PhotoHandler {
	return &PhotoHandler{photos: photos}
}

// List handles GET /v1/photos
func (h *PhotoHandler) List(w http.ResponseWriter, r *http.Request) {
	WriteData(w, http.StatusOK, h.photos.ListPhotos())
}

// Create handles POST /v1/photos for photos whose binary is hosted
// elsewhere.
func (h *PhotoHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreatePhotoRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	p, err := h.photos.AddPhoto(r.Context(), req)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteData(w, http.StatusCreated, p)
}

// Upload handles POST /v1/photos/upload with a multipart body: a "file"
// part plus optional "caption" and "uploaded_by" fields.
func (h *PhotoHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		WriteError(w, model.NewBadRequestError("invalid multipart body"))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		WriteError(w, model.NewBadRequestError("file part is required"))
		return
	}
	defer file.Close()

	p, err := h.photos.UploadPhoto(r.Context(), header.Filename, file,
		r.FormValue("caption"), r.FormValue("uploaded_by"))
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteData(w, http.StatusCreated, p)
}

// Delete handles DELETE /v1/photos/{id}
func (h *PhotoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	h.photos.DeletePhoto(r.Context(), r.PathValue("id"))
	WriteNoContent(w)
}
