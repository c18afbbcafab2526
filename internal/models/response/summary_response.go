package response

// RegistrySummaryResponse represents aggregate registry statistics
type RegistrySummaryResponse struct {
	TotalWarga int64     `json:"total_warga" example:"125"`
	TotalRT    int64     `json:"total_rt" example:"8"`
	TotalRW    int64     `json:"total_rw" example:"3"`
	PerRT      []RTCount `json:"per_rt"`
}

// RTCount is the number of registered residents in one RT
type RTCount struct {
	Rt          int   `json:"rt" example:"5"`
	JumlahWarga int64 `json:"jumlah_warga" example:"17"`
}
