package models

// TotalStats are platform totals since launch
type TotalStats struct {
	Photos             int64   `json:"photos"`
	Downloads          int64   `json:"downloads"`
	Views              int64   `json:"views"`
	Likes              int64   `json:"likes"`
	Photographers      int64   `json:"photographers"`
	Pixels             int64   `json:"pixels"`
	DownloadsPerSecond float64 `json:"downloads_per_second"`
	ViewsPerSecond     float64 `json:"views_per_second"`
	Developers         int64   `json:"developers"`
	Applications       int64   `json:"applications"`
	Requests           int64   `json:"requests"`
}

// MonthStats cover the past 30 days
type MonthStats struct {
	Downloads        int64 `json:"downloads"`
	Views            int64 `json:"views"`
	Likes            int64 `json:"likes"`
	NewPhotos        int64 `json:"new_photos"`
	NewPhotographers int64 `json:"new_photographers"`
	NewPixels        int64 `json:"new_pixels"`
	NewDevelopers    int64 `json:"new_developers"`
	NewApplications  int64 `json:"new_applications"`
	NewRequests      int64 `json:"new_requests"`
}
