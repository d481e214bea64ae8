package storage_test

import (
	"context"
	"io"
	"strings"
	"testing"

	"vcg-backend/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorageService_PutOpenDelete(t *testing.T) {
	svc, err := storage.NewLocalStorageService("http://localhost:8080", t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()
	key := "applications/jane.doe_tue.nl/1000_CV_cv.pdf"

	require.NoError(t, svc.Put(ctx, key, "application/pdf", strings.NewReader("%PDF-1.4 body"), 13))

	rc, err := svc.Open(key)
	require.NoError(t, err)
	data, err := io.ReadAll(rc)
	rc.Close()
	assert.NoError(t, err)
	assert.Equal(t, "%PDF-1.4 body", string(data))

	assert.NoError(t, svc.Delete(ctx, key))
	_, err = svc.Open(key)
	assert.Error(t, err)

	// Deleting a missing object is not an error
	assert.NoError(t, svc.Delete(ctx, key))
}

func TestLocalStorageService_PublicURL(t *testing.T) {
	svc, err := storage.NewLocalStorageService("http://localhost:8080/", t.TempDir())
	require.NoError(t, err)

	url := svc.PublicURL("applications/jane/1000_CV_cv.pdf")
	assert.Equal(t, "http://localhost:8080/files/applications/jane/1000_CV_cv.pdf", url)
}

func TestLocalStorageService_RejectsPathTraversal(t *testing.T) {
	svc, err := storage.NewLocalStorageService("http://localhost:8080", t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()
	err = svc.Put(ctx, "../escape.pdf", "application/pdf", strings.NewReader("x"), 1)
	assert.Error(t, err)

	_, err = svc.Open("../../etc/passwd")
	assert.Error(t, err)
}
