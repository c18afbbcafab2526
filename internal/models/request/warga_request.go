package request

import (
	"warga-registry-svc/internal/models"
	"warga-registry-svc/internal/models/pagination"
)

// WargaCreateRequest is the body for POST /warga
type WargaCreateRequest struct {
	Nik         string `json:"nik" binding:"required,len=16,numeric" example:"3175094109900001"`
	Nama        string `json:"nama" binding:"required" example:"Budi Santoso"`
	PhoneNumber string `json:"phoneNumber" binding:"required,min=10,max=15" example:"081234567890"`
	Alamat      string `json:"alamat" example:"Jl. Merdeka No. 17"`
	Rt          *int   `json:"rt" binding:"omitempty,min=1,max=999" example:"5"`
	Rw          *int   `json:"rw" binding:"omitempty,min=1,max=999" example:"7"`
}

// WargaUpdateRequest is the body for PUT /warga/{nik}; the NIK itself is immutable
type WargaUpdateRequest struct {
	Nama        string `json:"nama" binding:"required" example:"Budi Santoso"`
	PhoneNumber string `json:"phoneNumber" binding:"required,min=10,max=15" example:"081234567890"`
	Alamat      string `json:"alamat" example:"Jl. Merdeka No. 17"`
	Rt          *int   `json:"rt" binding:"omitempty,min=1,max=999" example:"5"`
	Rw          *int   `json:"rw" binding:"omitempty,min=1,max=999" example:"7"`
}

// ListWargaRequest bundles normalized paging with the optional warga filter
type ListWargaRequest struct {
	Paging pagination.BasePaging
	Filter models.WargaFilter
}
