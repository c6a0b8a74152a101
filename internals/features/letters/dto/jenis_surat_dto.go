package dto

// JenisSuratRequest payload create/update jenis surat.
type JenisSuratRequest struct {
	Nama      string `json:"nama" validate:"required,max=100"`
	Deskripsi string `json:"deskripsi" validate:"max=1000"`
}
