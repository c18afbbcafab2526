package models

// WargaFilter narrows a paginated warga search by administrative unit.
// Zero means the filter is absent; only positive values are applied.
type WargaFilter struct {
	Rt int `json:"rt"`
	Rw int `json:"rw"`
}
