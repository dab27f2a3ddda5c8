package usecase_test

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"app/internal/usecase"

	"github.com/stretchr/testify/assert"
)

func TestUploadUsecase_SaveImage_UnsupportedType(t *testing.T) {
	uc := usecase.NewUploadUsecase(t.TempDir())

	_, err := uc.SaveImage("malware.exe", 10, strings.NewReader("xx"))
	assertHTTPError(t, err, http.StatusBadRequest, "unsupported image type")

	_, err = uc.SaveImage("noext", 10, strings.NewReader("xx"))
	assertHTTPError(t, err, http.StatusBadRequest, "unsupported image type")
}

func TestUploadUsecase_SaveImage_SizeBounds(t *testing.T) {
	uc := usecase.NewUploadUsecase(t.TempDir())

	_, err := uc.SaveImage("a.png", 0, strings.NewReader(""))
	assertHTTPError(t, err, http.StatusBadRequest, "image too large")

	_, err = uc.SaveImage("a.png", 6<<20, strings.NewReader("xx"))
	assertHTTPError(t, err, http.StatusBadRequest, "image too large")
}

func TestUploadUsecase_SaveImage_Success(t *testing.T) {
	dir := t.TempDir()
	uc := usecase.NewUploadUsecase(dir)

	content := "fake image bytes"
	out, err := uc.SaveImage("photo.JPG", int64(len(content)), strings.NewReader(content))
	assert.NoError(t, err)

	//URLは /uploads/ 配下、拡張子は小文字
	assert.True(t, strings.HasPrefix(out.ImageURL, "/uploads/"))
	assert.True(t, strings.HasSuffix(out.ImageURL, ".jpg"))

	//実体が書かれている
	name := strings.TrimPrefix(out.ImageURL, "/uploads/")
	data, err := os.ReadFile(filepath.Join(dir, name))
	assert.NoError(t, err)
	assert.Equal(t, content, string(data))
}

// 同じファイル名でも保存名は毎回変わる
func TestUploadUsecase_SaveImage_UniqueNames(t *testing.T) {
	uc := usecase.NewUploadUsecase(t.TempDir())

	out1, err := uc.SaveImage("photo.png", 4, strings.NewReader("aaaa"))
	assert.NoError(t, err)
	out2, err := uc.SaveImage("photo.png", 4, strings.NewReader("bbbb"))
	assert.NoError(t, err)

	assert.NotEqual(t, out1.ImageURL, out2.ImageURL)
}
