package tui

import "github.com/MKhiriev/go-sweet-shop/models"

type confirmModel struct {
	sweet models.Sweet
}

func (m confirmModel) View() string {
	content := "Delete \"" + m.sweet.Name + "\"?\n\n"
	content += "y yes    n no"
	return overlayBoxStyle.Render(content)
}
