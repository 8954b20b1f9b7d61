package controllers

import (
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/anasbeautylab/beautylab-backend/api/responses"
	"github.com/anasbeautylab/beautylab-backend/api/validators"
	gallerysvc "github.com/anasbeautylab/beautylab-backend/internal/gallery"
	"github.com/anasbeautylab/beautylab-backend/pkg/config"
	"github.com/anasbeautylab/beautylab-backend/pkg/db/models"
	"github.com/anasbeautylab/beautylab-backend/pkg/enums"
	pkgerrors "github.com/anasbeautylab/beautylab-backend/pkg/errors"
	"github.com/anasbeautylab/beautylab-backend/pkg/logger"
)

const galleryFilesField = "images"

// AdminGalleryList serves the dashboard gallery listing with category and
// tri-state status filters.
func AdminGalleryList(svc gallerysvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		input, err := galleryListInput(r, nil)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.List(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteList(w, result.Meta, result.Items)
	}
}

// AdminGalleryCreate accepts a multipart form: text fields plus up to two
// image files that run through the transform-and-store pipeline.
func AdminGalleryCreate(svc gallerysvc.Service, pipeline *gallerysvc.ImagePipeline, mediaCfg config.MediaConfig, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		form, err := parseGalleryForm(r, mediaCfg)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input, err := form.toCreateInput()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if len(form.uploads) > 0 {
			set, err := pipeline.BuildImageSet(r.Context(), input.Type, form.uploads)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, err)
				return
			}
			input.Images = set
		}

		item, err := svc.Create(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, item)
	}
}

// AdminGalleryGet serves a single item without touching the view counter.
func AdminGalleryGet(svc gallerysvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParsePathUUID(chi.URLParam(r, "itemId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		item, err := svc.Get(r.Context(), id, false)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, item)
	}
}

// AdminGalleryUpdate applies a partial update. New image files replace the
// whole stored set; the superseded blobs are left in place.
func AdminGalleryUpdate(svc gallerysvc.Service, pipeline *gallerysvc.ImagePipeline, mediaCfg config.MediaConfig, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParsePathUUID(chi.URLParam(r, "itemId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		form, err := parseGalleryForm(r, mediaCfg)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input, err := form.toUpdateInput()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if len(form.uploads) > 0 {
			itemType, err := resolveUpdateType(r, svc, id, input.Type)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, err)
				return
			}
			set, err := pipeline.BuildImageSet(r.Context(), itemType, form.uploads)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, err)
				return
			}
			input.Images = &set
		}

		item, err := svc.Update(r.Context(), id, input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, item)
	}
}

func AdminGalleryDelete(svc gallerysvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParsePathUUID(chi.URLParam(r, "itemId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"message": "gallery item deleted"})
	}
}

type reorderRequest struct {
	Items []gallerysvc.ReorderEntry `json:"items" validate:"required,min=1,dive"`
}

func AdminGalleryReorder(svc gallerysvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body reorderRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.Reorder(r.Context(), body.Items); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"message": "gallery order updated"})
	}
}

// galleryForm holds the decoded multipart fields and raw file payloads.
type galleryForm struct {
	title       *string
	description *string
	category    *string
	itemType    *string
	metadata    *string
	isActive    *bool
	featured    *bool
	uploads     []gallerysvc.Upload
}

func parseGalleryForm(r *http.Request, mediaCfg config.MediaConfig) (*galleryForm, error) {
	maxFile := mediaCfg.MaxUploadBytes()
	// The whole request is capped at the file limit plus slack for text
	// fields and a second file.
	r.Body = http.MaxBytesReader(nil, r.Body, 2*maxFile+1<<20)
	if err := r.ParseMultipartForm(maxFile); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid multipart form")
	}

	form := &galleryForm{
		title:       formString(r, "title"),
		description: formString(r, "description"),
		category:    formString(r, "category"),
		itemType:    formString(r, "type"),
		metadata:    formString(r, "metadata"),
	}

	var err error
	if form.isActive, err = formBool(r, "isActive"); err != nil {
		return nil, err
	}
	if form.featured, err = formBool(r, "featured"); err != nil {
		return nil, err
	}

	if r.MultipartForm != nil {
		files := r.MultipartForm.File[galleryFilesField]
		if len(files) > 2 {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "at most 2 image files are accepted")
		}
		for _, header := range files {
			upload, err := readUpload(header, maxFile)
			if err != nil {
				return nil, err
			}
			form.uploads = append(form.uploads, upload)
		}
	}

	return form, nil
}

func readUpload(header *multipart.FileHeader, maxFile int64) (gallerysvc.Upload, error) {
	if header.Size > maxFile {
		return gallerysvc.Upload{}, errFileTooLarge(maxFile)
	}
	file, err := header.Open()
	if err != nil {
		return gallerysvc.Upload{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "read uploaded file")
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxFile+1))
	if err != nil {
		return gallerysvc.Upload{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "read uploaded file")
	}
	if int64(len(data)) > maxFile {
		return gallerysvc.Upload{}, errFileTooLarge(maxFile)
	}

	name := strings.TrimSuffix(filepath.Base(header.Filename), filepath.Ext(header.Filename))
	return gallerysvc.Upload{Filename: validators.SanitizeString(name, 80), Data: data}, nil
}

func errFileTooLarge(maxFile int64) error {
	return pkgerrors.New(pkgerrors.CodeValidation,
		fmt.Sprintf("file too large; maximum size is %dMB", maxFile/(1<<20)))
}

func (f *galleryForm) toCreateInput() (gallerysvc.CreateInput, error) {
	var input gallerysvc.CreateInput

	if f.title == nil || *f.title == "" {
		return input, pkgerrors.New(pkgerrors.CodeValidation, "validation failed").
			WithDetails(map[string]string{"title": "is required"})
	}
	input.Title = *f.title
	input.Description = f.description

	if f.category == nil {
		return input, pkgerrors.New(pkgerrors.CodeValidation, "validation failed").
			WithDetails(map[string]string{"category": "is required"})
	}
	category, err := enums.ParseGalleryCategory(*f.category)
	if err != nil {
		return input, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid category").
			WithDetails(map[string]string{"category": "is invalid"})
	}
	input.Category = category

	if f.itemType != nil {
		itemType, err := enums.ParseGalleryType(*f.itemType)
		if err != nil {
			return input, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid type").
				WithDetails(map[string]string{"type": "is invalid"})
		}
		input.Type = itemType
	} else {
		input.Type = enums.GalleryTypeStudio
	}

	if f.metadata != nil {
		metadata, err := decodeGalleryMetadata(*f.metadata)
		if err != nil {
			return input, err
		}
		input.Metadata = metadata
	}

	input.IsActive = f.isActive
	if f.featured != nil {
		input.Featured = *f.featured
	}
	return input, nil
}

func (f *galleryForm) toUpdateInput() (gallerysvc.UpdateInput, error) {
	var input gallerysvc.UpdateInput

	input.Title = f.title
	input.Description = f.description

	if f.category != nil {
		category, err := enums.ParseGalleryCategory(*f.category)
		if err != nil {
			return input, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid category").
				WithDetails(map[string]string{"category": "is invalid"})
		}
		input.Category = &category
	}
	if f.itemType != nil {
		itemType, err := enums.ParseGalleryType(*f.itemType)
		if err != nil {
			return input, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid type").
				WithDetails(map[string]string{"type": "is invalid"})
		}
		input.Type = &itemType
	}
	if f.metadata != nil {
		metadata, err := decodeGalleryMetadata(*f.metadata)
		if err != nil {
			return input, err
		}
		input.Metadata = &metadata
	}
	input.IsActive = f.isActive
	input.Featured = f.featured
	return input, nil
}

// resolveUpdateType decides which type governs replacement uploads: the
// incoming type when the update changes it, otherwise the stored one.
func resolveUpdateType(r *http.Request, svc gallerysvc.Service, id uuid.UUID, override *enums.GalleryType) (enums.GalleryType, error) {
	if override != nil {
		return *override, nil
	}
	existing, err := svc.Get(r.Context(), id, false)
	if err != nil {
		return "", err
	}
	return existing.Type, nil
}

func decodeGalleryMetadata(raw string) (models.GalleryMetadata, error) {
	var metadata models.GalleryMetadata
	decoder := json.NewDecoder(strings.NewReader(raw))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&metadata); err != nil {
		return metadata, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid metadata").
			WithDetails(map[string]string{"metadata": "must be a valid json object"})
	}
	return metadata, nil
}

func formString(r *http.Request, key string) *string {
	if r.MultipartForm == nil {
		return nil
	}
	values, ok := r.MultipartForm.Value[key]
	if !ok || len(values) == 0 {
		return nil
	}
	value := strings.TrimSpace(values[0])
	return &value
}

func formBool(r *http.Request, key string) (*bool, error) {
	raw := formString(r, key)
	if raw == nil || *raw == "" {
		return nil, nil
	}
	value, err := strconv.ParseBool(*raw)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid boolean field").
			WithDetails(map[string]string{key: "must be true or false"})
	}
	return &value, nil
}

func galleryListInput(r *http.Request, forceActive *bool) (gallerysvc.ListInput, error) {
	var input gallerysvc.ListInput

	params, err := validators.ParsePagination(r)
	if err != nil {
		return input, err
	}
	input.Pagination = params

	if raw := validators.ParseQueryString(r, "category"); raw != nil {
		category, err := enums.ParseGalleryCategory(*raw)
		if err != nil {
			return input, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid category filter")
		}
		input.Filters.Category = &category
	}
	if raw := validators.ParseQueryString(r, "type"); raw != nil {
		itemType, err := enums.ParseGalleryType(*raw)
		if err != nil {
			return input, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid type filter")
		}
		input.Filters.Type = &itemType
	}

	if forceActive != nil {
		input.Filters.IsActive = forceActive
	} else {
		status, err := validators.ParseQueryBoolStatus(r, "status")
		if err != nil {
			return input, err
		}
		input.Filters.IsActive = status
	}

	if raw := validators.ParseQueryString(r, "featured"); raw != nil {
		featured, err := strconv.ParseBool(*raw)
		if err != nil {
			return input, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid featured filter")
		}
		input.Filters.Featured = &featured
	}

	return input, nil
}
