package dtos

type CreateCVRequest struct {
	Title    string `json:"title" binding:"required"`
	FileName string `json:"file_name" binding:"required"`
	FileURL  string `json:"file_url"`
	Size     string `json:"size"`
}
