package dto

// UploadResultDTO reports one successful image upload: both derivative
// objects written, with the public URLs the caller persists on the article.
type UploadResultDTO struct {
	Success      bool   `json:"success"`
	CoverURL     string `json:"cover_url"`
	ThumbnailURL string `json:"thumbnail_url"`
	CoverKey     string `json:"cover_key"`
	ThumbKey     string `json:"thumb_key"`
}
