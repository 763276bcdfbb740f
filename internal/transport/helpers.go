package transport

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"catalog-admin/internal/middleware"
	"catalog-admin/internal/store"
)

// maxUploadBytes bounds multipart form parsing for image uploads.
const maxUploadBytes = 10 << 20

// respondStoreError maps store errors onto HTTP responses: validation
// failures become 400 with per-field details, missing records become 404.
func respondStoreError(w http.ResponseWriter, err error) {
	var ve *store.ValidationError
	if errors.As(err, &ve) {
		fields := make([]middleware.ValidationError, len(ve.Fields))
		for i, f := range ve.Fields {
			fields[i] = middleware.ValidationError{Field: f.Field, Message: f.Message}
		}
		middleware.RespondWithValidationErrors(w, fields)
		return
	}
	if store.IsNotFound(err) {
		middleware.RespondWithError(w, http.StatusNotFound, err.Error())
		return
	}
	middleware.RespondWithError(w, http.StatusInternalServerError, "internal server error")
}

// fileBytes reads an optional multipart file field. A missing field is not
// an error; it simply means no upload was supplied.
func fileBytes(r *http.Request, field string) ([]byte, error) {
	file, _, err := r.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}
		return nil, err
	}
	defer file.Close()
	return io.ReadAll(file)
}

// formValue returns a pointer to a multipart form value, or nil when the
// field was not submitted at all. The distinction carries the store's
// partial-update semantics through the form encoding.
func formValue(r *http.Request, name string) *string {
	if r.MultipartForm == nil {
		return nil
	}
	if vals, ok := r.MultipartForm.Value[name]; ok && len(vals) > 0 {
		return &vals[0]
	}
	return nil
}

func parseFloatField(raw string, name string) (float64, error) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, errors.New("invalid number for field " + name)
	}
	return v, nil
}

func parseIntField(raw string, name string) (int, error) {
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.New("invalid number for field " + name)
	}
	return v, nil
}
