package usecase

import (
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// 1ファイルの上限（5MB）
const maxImageSize = 5 << 20

// UploadUsecase は商品画像をローカルの公開ディレクトリに保存する。
// 保存名は衝突しないようuuidで振り直し、公開URLを返す。
type UploadUsecase struct {
	dir string
}

func NewUploadUsecase(dir string) *UploadUsecase {
	return &UploadUsecase{dir: dir}
}

type UploadOutput struct {
	ImageURL string `json:"image_url"`
}

// SaveImage は画像を保存して /uploads/ 配下のURLを返す。
// 拡張子は画像系のみ許可。sizeは事前に分かっている値（multipartのヘッダ）。
func (u *UploadUsecase) SaveImage(filename string, size int64, src io.Reader) (UploadOutput, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".webp":
	default:
		return UploadOutput{}, NewHTTPError(http.StatusBadRequest, "unsupported image type")
	}
	if size <= 0 || size > maxImageSize {
		return UploadOutput{}, NewHTTPError(http.StatusBadRequest, "image too large")
	}

	if err := os.MkdirAll(u.dir, 0o755); err != nil {
		return UploadOutput{}, NewHTTPError(http.StatusInternalServerError, "storage error")
	}

	name := uuid.NewString() + ext
	dst, err := os.Create(filepath.Join(u.dir, name))
	if err != nil {
		return UploadOutput{}, NewHTTPError(http.StatusInternalServerError, "storage error")
	}
	defer dst.Close()

	if _, err := io.Copy(dst, io.LimitReader(src, maxImageSize)); err != nil {
		return UploadOutput{}, NewHTTPError(http.StatusInternalServerError, "storage error")
	}

	return UploadOutput{ImageURL: "/uploads/" + name}, nil
}
