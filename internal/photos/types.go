package photos

// Photo mirrors one element of the /photos listing.
type Photo struct {
	ID          string `json:"id" validate:"required"`
	Name        string `json:"name" validate:"required"`
	Type        string `json:"type"`
	Description string `json:"description"`
	ImgSrc      string `json:"img_src" validate:"required,url"`
}

// Title returns the display heading for the photo, "Name (Type)" when the type
// is known.
func (p Photo) Title() string {
	if p.Type == "" {
		return p.Name
	}
	return p.Name + " (" + p.Type + ")"
}
