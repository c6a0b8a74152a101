package dto

// TemplateRequest payload create/update template surat.
type TemplateRequest struct {
	Nama   string `json:"nama" validate:"required,max=100"`
	Subjek string `json:"subjek" validate:"max=255"`
	Isi    string `json:"isi" validate:"required"`
}

// RenderRequest nilai pengganti placeholder untuk endpoint render.
type RenderRequest struct {
	Values map[string]string `json:"values"`
}

// RenderResponse hasil substitusi template.
type RenderResponse struct {
	Subjek string `json:"subjek"`
	Isi    string `json:"isi"`
}
