package product

import (
	"errors"
	"io"
	"mime"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ksr/files/internal/logger"
	"github.com/ksr/files/internal/media"
	"github.com/ksr/files/internal/response"
)

// formOverhead is allowed on top of the kind's file budget for part headers
// and non-file fields.
const formOverhead = 1 << 20

var errMalformedForm = errors.New("malformed multipart body")

// Handler holds HTTP handlers for product media endpoints.
type Handler struct {
	svc *Service
}

// NewHandler creates a new product Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// Routes mounts the product media endpoints. Callers add authentication.
func (h *Handler) Routes(r chi.Router) {
	r.Post("/{productId}/image", h.UploadImages)
	r.Post("/{productId}/video", h.UploadVideo)
	r.Delete("/image/{fileName}", h.DeleteImage)
	r.Delete("/video/{fileName}", h.DeleteVideo)
}

// UploadImages godoc
//
//	@Summary		Upload product image(s)
//	@Description	Accepts up to 5 jpeg, png or webp images (5 MiB each) in the "files" or "file" fields.
//	@Tags			product-images
//	@Accept			multipart/form-data
//	@Produce		json
//	@Security		BearerAuth
//	@Param			productId	path		string	true	"Product id"
//	@Param			files		formData	file	true	"Image file(s)"
//	@Success		201			{object}	UploadImageResponse
//	@Failure		400			{object}	response.ErrorBody
//	@Failure		401			{object}	response.ErrorBody
//	@Failure		413			{object}	response.ErrorBody
//	@Failure		500			{object}	response.ErrorBody
//	@Router			/v1/products/{productId}/image [post]
func (h *Handler) UploadImages(w http.ResponseWriter, r *http.Request) {
	files, ok := h.accept(w, r, media.Image)
	if !ok {
		return
	}

	saved, err := h.svc.SaveImages(r.Context(), chi.URLParam(r, "productId"), files)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	response.Created(w, newUploadImageResponse(saved))
}

// UploadVideo godoc
//
//	@Summary		Upload product video
//	@Description	Accepts one mp4, webm, ogg or quicktime video (50 MiB) in the "video" field.
//	@Tags			product-videos
//	@Accept			multipart/form-data
//	@Produce		json
//	@Security		BearerAuth
//	@Param			productId	path		string	true	"Product id"
//	@Param			video		formData	file	true	"Video file"
//	@Success		201			{object}	UploadVideoResponse
//	@Failure		400			{object}	response.ErrorBody
//	@Failure		401			{object}	response.ErrorBody
//	@Failure		413			{object}	response.ErrorBody
//	@Failure		500			{object}	response.ErrorBody
//	@Router			/v1/products/{productId}/video [post]
func (h *Handler) UploadVideo(w http.ResponseWriter, r *http.Request) {
	files, ok := h.accept(w, r, media.Video)
	if !ok {
		return
	}

	saved, err := h.svc.SaveVideo(r.Context(), chi.URLParam(r, "productId"), files[0])
	if err != nil {
		h.fail(w, r, err)
		return
	}

	response.Created(w, UploadVideoResponse{URL: saved.URL, FileName: saved.FileName})
}

// DeleteImage godoc
//
//	@Summary		Delete product image
//	@Description	Removes a stored image by file name. Succeeds when the file does not exist.
//	@Tags			product-images
//	@Produce		json
//	@Security		BearerAuth
//	@Param			fileName	path		string	true	"Stored image file name"
//	@Success		200			{object}	response.Success
//	@Failure		400			{object}	response.ErrorBody
//	@Failure		401			{object}	response.ErrorBody
//	@Failure		500			{object}	response.ErrorBody
//	@Router			/v1/products/image/{fileName} [delete]
func (h *Handler) DeleteImage(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteImage(r.Context(), chi.URLParam(r, "fileName")); err != nil {
		h.fail(w, r, err)
		return
	}
	response.OK(w, response.Success{Success: true})
}

// DeleteVideo godoc
//
//	@Summary		Delete product video
//	@Description	Removes a stored video by file name. Succeeds when the file does not exist.
//	@Tags			product-videos
//	@Produce		json
//	@Security		BearerAuth
//	@Param			fileName	path		string	true	"Stored video file name"
//	@Success		200			{object}	response.Success
//	@Failure		400			{object}	response.ErrorBody
//	@Failure		401			{object}	response.ErrorBody
//	@Failure		500			{object}	response.ErrorBody
//	@Router			/v1/products/video/{fileName} [delete]
func (h *Handler) DeleteVideo(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteVideo(r.Context(), chi.URLParam(r, "fileName")); err != nil {
		h.fail(w, r, err)
		return
	}
	response.OK(w, response.Success{Success: true})
}

// accept reads the multipart body and runs the kind's upload rules. On
// failure the error response has already been written.
func (h *Handler) accept(w http.ResponseWriter, r *http.Request, kind media.Kind) ([]media.Candidate, bool) {
	parts, err := readParts(w, r, kind)
	if err != nil {
		h.fail(w, r, err)
		return nil, false
	}
	files, err := media.Validate(parts, kind)
	if err != nil {
		h.fail(w, r, err)
		return nil, false
	}
	return files, true
}

// readParts streams the file parts of a multipart body in the order they were
// sent. Each part is read up to one byte past the kind's size limit so that
// Validate can reject it without buffering the rest.
func readParts(w http.ResponseWriter, r *http.Request, kind media.Kind) ([]media.Candidate, error) {
	p := kind.Policy()
	r.Body = http.MaxBytesReader(w, r.Body, p.MaxBytes*int64(p.MaxCount)+formOverhead)

	mr, err := r.MultipartReader()
	if errors.Is(err, http.ErrNotMultipart) {
		return nil, nil
	}
	if err != nil {
		return nil, errMalformedForm
	}

	var parts []media.Candidate
	for {
		part, err := mr.NextPart()
		if errors.Is(err, io.EOF) {
			return parts, nil
		}
		if err != nil {
			return nil, bodyError(err)
		}
		if part.FileName() == "" {
			part.Close()
			continue
		}

		data, err := io.ReadAll(io.LimitReader(part, p.MaxBytes+1))
		part.Close()
		if err != nil {
			return nil, bodyError(err)
		}

		parts = append(parts, media.Candidate{
			Data:         data,
			MediaType:    partMediaType(part.Header.Get("Content-Type")),
			OriginalName: part.FileName(),
			FieldName:    part.FormName(),
		})
	}
}

func partMediaType(header string) string {
	if header == "" {
		return "application/octet-stream"
	}
	mt, _, err := mime.ParseMediaType(header)
	if err != nil {
		return header
	}
	return mt
}

func bodyError(err error) error {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return err
	}
	return errMalformedForm
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	var tooLarge *http.MaxBytesError
	var mediaErr *media.Error

	switch {
	case errors.As(err, &tooLarge):
		response.TooLarge(w, r, "request body too large")
	case errors.Is(err, errMalformedForm):
		response.BadRequest(w, r, err.Error())
	case media.IsClientError(err) && errors.As(err, &mediaErr):
		response.BadRequest(w, r, mediaErr.Message)
	default:
		logger.FromContext(r.Context()).Error("product media request failed",
			"path", r.URL.Path,
			"error", err,
		)
		response.InternalError(w, r)
	}
}
