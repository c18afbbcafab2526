package response

// WargaResponse represents a single warga record in API responses
type WargaResponse struct {
	ID          string `json:"id" example:"7a3cdd8e-41f2-44f1-9b52-1a8c7b3f2ad1"`
	Nik         string `json:"nik" example:"3175094109900001"`
	Nama        string `json:"nama" example:"Budi Santoso"`
	PhoneNumber string `json:"phoneNumber" example:"081234567890"`
	Alamat      string `json:"alamat" example:"Jl. Merdeka No. 17"`
	Rt          *int   `json:"rt" example:"5"`
	Rw          *int   `json:"rw" example:"7"`
}
