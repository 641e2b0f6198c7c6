package product

import "github.com/ksr/files/internal/media"

// UploadImageResponse is returned by the image upload endpoint. URL and
// FileName repeat the first stored image for older clients.
type UploadImageResponse struct {
	URL      string             `json:"url,omitempty"      example:"http://localhost:3003/public/products/prod-42-1700000000123-deadbeef01020304.jpg"`
	FileName string             `json:"fileName,omitempty" example:"prod-42-1700000000123-deadbeef01020304.jpg"`
	Images   []media.Descriptor `json:"images"`
}

// UploadVideoResponse is returned by the video upload endpoint.
type UploadVideoResponse struct {
	URL      string `json:"url"      example:"http://localhost:3003/public/videos/prod-42-1700000000123-deadbeef01020304.mp4"`
	FileName string `json:"fileName" example:"prod-42-1700000000123-deadbeef01020304.mp4"`
}

func newUploadImageResponse(saved []media.Descriptor) UploadImageResponse {
	resp := UploadImageResponse{Images: saved}
	if len(saved) > 0 {
		resp.URL = saved[0].URL
		resp.FileName = saved[0].FileName
	}
	return resp
}
