package controllers

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/anasbeautylab/beautylab-backend/pkg/config"
	pkgerrors "github.com/anasbeautylab/beautylab-backend/pkg/errors"
)

func TestParseGalleryFormRejectsOversizedFile(t *testing.T) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	if err := mw.WriteField("title", "Balayage"); err != nil {
		t.Fatalf("write field: %v", err)
	}
	fw, err := mw.CreateFormFile(galleryFilesField, "big.jpg")
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := fw.Write(bytes.Repeat([]byte{0xAB}, (1<<20)+(1<<19))); err != nil {
		t.Fatalf("write file: %v", err)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	r := httptest.NewRequest("POST", "/api/admin/gallery", &body)
	r.Header.Set("Content-Type", mw.FormDataContentType())

	_, err = parseGalleryForm(r, config.MediaConfig{MaxUploadMB: 1})
	if err == nil {
		t.Fatal("expected oversized file rejected")
	}
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
	// message carries the configured cap, not a hardcoded one
	if !strings.Contains(typed.Message(), "1MB") {
		t.Fatalf("expected configured cap in message, got %q", typed.Message())
	}
}

func TestParseGalleryFormCapsFileCount(t *testing.T) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for _, name := range []string{"a.jpg", "b.jpg", "c.jpg"} {
		fw, err := mw.CreateFormFile(galleryFilesField, name)
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		if _, err := fw.Write([]byte("tiny")); err != nil {
			t.Fatalf("write file: %v", err)
		}
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	r := httptest.NewRequest("POST", "/api/admin/gallery", &body)
	r.Header.Set("Content-Type", mw.FormDataContentType())

	_, err := parseGalleryForm(r, config.MediaConfig{MaxUploadMB: 10})
	if err == nil {
		t.Fatal("expected three files rejected")
	}
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}
