package service

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"vcg-backend/internal/logger"
	"vcg-backend/internal/storage"
	"vcg-backend/internal/utils"
)

const pdfContentType = "application/pdf"

var pdfMagic = []byte("%PDF-")

type documentService struct {
	store    storage.StorageInterface
	maxBytes int64
}

// NewDocumentService wires the upload pipeline to a storage backend with a
// single configured size ceiling.
func NewDocumentService(store storage.StorageInterface, maxBytes int64) DocumentService {
	return &documentService{
		store:    store,
		maxBytes: maxBytes,
	}
}

// Validate runs every precondition check without touching storage: declared
// type, size ceiling, and the PDF header. The content stays readable for a
// later Upload.
func (s *documentService) Validate(kind DocumentKind, doc *DocumentUpload) error {
	field := string(kind)
	if doc == nil || doc.Content == nil {
		return &ValidationError{Field: field, Message: "file is required"}
	}
	if doc.ContentType != pdfContentType {
		return &ValidationError{Field: field, Message: "only PDF files are accepted"}
	}
	if doc.Size > s.maxBytes {
		return &ValidationError{
			Field:   field,
			Message: fmt.Sprintf("file exceeds the %dMB limit", s.maxBytes/(1024*1024)),
		}
	}

	// Sniff the header as well; the declared type is client-controlled
	reader := bufio.NewReader(doc.Content)
	head, err := reader.Peek(len(pdfMagic))
	if err != nil || !bytes.Equal(head, pdfMagic) {
		return &ValidationError{Field: field, Message: "file does not look like a PDF"}
	}
	doc.Content = reader
	return nil
}

func (s *documentService) Upload(ctx context.Context, applicantEmail string, kind DocumentKind, doc *DocumentUpload) (*StoredDocument, error) {
	if err := s.Validate(kind, doc); err != nil {
		return nil, err
	}

	key := buildObjectKey(applicantEmail, kind, doc.Filename)
	if err := s.store.EnsureBucket(ctx); err != nil {
		return nil, fmt.Errorf("storage unavailable: %w", err)
	}
	if err := s.store.Put(ctx, key, pdfContentType, io.LimitReader(doc.Content, s.maxBytes), doc.Size); err != nil {
		return nil, fmt.Errorf("failed to store %s: %w", string(kind), err)
	}

	return &StoredDocument{
		Key: key,
		URL: s.store.PublicURL(key),
	}, nil
}

func (s *documentService) Remove(ctx context.Context, key string) error {
	if err := s.store.Delete(ctx, key); err != nil {
		logger.Warn("Failed to remove stored document", "key", key, "error", err)
		return err
	}
	return nil
}

// buildObjectKey produces applications/{sanitized_email}/{timestamp}_{kind}_{sanitized_filename}
func buildObjectKey(email string, kind DocumentKind, filename string) string {
	return fmt.Sprintf("applications/%s/%d_%s_%s",
		utils.SanitizeEmail(email),
		time.Now().UnixMilli(),
		kind,
		utils.SanitizeKeyPart(filename),
	)
}
