package tui

import (
	"strconv"
	"strings"

	"github.com/MKhiriev/go-sweet-shop/internal/validators"
	"github.com/MKhiriev/go-sweet-shop/models"
)

const (
	sweetFieldName = iota
	sweetFieldCategory
	sweetFieldPrice
	sweetFieldQuantity
)

const (
	opAdd     = "add"
	opEdit    = "edit"
	opRestock = "restock"
	opDelete  = "delete"
)

// sweetForm is the add/edit dialog of the inventory page. Editing has no
// quantity field: stock only changes through restock and purchase.
type sweetForm struct {
	op         string
	sweetID    int64
	inputs     inputGroup
	submitting bool
	errMsg     string
}

func newAddSweetForm() sweetForm {
	f := sweetForm{
		op: opAdd,
		inputs: newInputGroup(
			inputField{label: "Name", placeholder: "Chocolate Truffle", charLimit: 100},
			inputField{label: "Category", placeholder: "Enter category", charLimit: 50},
			inputField{label: "Price", placeholder: "0.00", charLimit: 12},
			inputField{label: "Quantity", placeholder: "0", charLimit: 9},
		),
	}
	f.inputs.setValue(sweetFieldCategory, models.Categories[0])
	return f
}

func newEditSweetForm(s models.Sweet) sweetForm {
	f := sweetForm{
		op:      opEdit,
		sweetID: s.ID,
		inputs: newInputGroup(
			inputField{label: "Name", charLimit: 100},
			inputField{label: "Category", charLimit: 50},
			inputField{label: "Price", charLimit: 12},
		),
	}
	f.inputs.setValue(sweetFieldName, s.Name)
	f.inputs.setValue(sweetFieldCategory, s.Category)
	f.inputs.setValue(sweetFieldPrice, strconv.FormatFloat(s.Price, 'f', 2, 64))
	return f
}

func (f *sweetForm) title() string {
	if f.op == opEdit {
		return "Edit sweet"
	}
	return "Add new sweet"
}

// createRequest reads the add form. Unparsable numbers become a validation
// error with the same text the validator uses.
func (f *sweetForm) createRequest() (models.CreateSweetRequest, error) {
	price, err := parsePrice(f.inputs.trimmed(sweetFieldPrice))
	if err != nil {
		return models.CreateSweetRequest{}, err
	}

	quantity := 0
	if raw := f.inputs.trimmed(sweetFieldQuantity); raw != "" {
		quantity, err = strconv.Atoi(raw)
		if err != nil {
			return models.CreateSweetRequest{}, fieldError("quantity", "Quantity must be 0 or more")
		}
	}

	return models.CreateSweetRequest{
		Name:     f.inputs.trimmed(sweetFieldName),
		Category: f.inputs.trimmed(sweetFieldCategory),
		Price:    price,
		Quantity: quantity,
	}, nil
}

func (f *sweetForm) updateRequest() (models.UpdateSweetRequest, error) {
	price, err := parsePrice(f.inputs.trimmed(sweetFieldPrice))
	if err != nil {
		return models.UpdateSweetRequest{}, err
	}

	name := f.inputs.trimmed(sweetFieldName)
	category := f.inputs.trimmed(sweetFieldCategory)
	return models.UpdateSweetRequest{
		Name:     &name,
		Category: &category,
		Price:    &price,
	}, nil
}

func (f *sweetForm) view() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(f.title()))
	b.WriteString("\n\n")
	b.WriteString(f.inputs.view())
	if f.submitting {
		b.WriteString("\n\n[Saving...]")
	}
	if f.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render(f.errMsg))
	}
	return overlayBoxStyle.Render(b.String())
}

// restockForm asks for the number of units to add to one sweet.
type restockForm struct {
	sweet      models.Sweet
	inputs     inputGroup
	submitting bool
	errMsg     string
}

func newRestockForm(s models.Sweet) restockForm {
	return restockForm{
		sweet:  s,
		inputs: newInputGroup(inputField{label: "Quantity", placeholder: "10", charLimit: 9}),
	}
}

func (f *restockForm) request() (models.RestockRequest, error) {
	quantity, err := strconv.Atoi(f.inputs.trimmed(0))
	if err != nil {
		return models.RestockRequest{}, fieldError("quantity", "Quantity must be a positive number")
	}
	return models.RestockRequest{SweetID: f.sweet.ID, Quantity: quantity}, nil
}

func (f *restockForm) view() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Restock " + f.sweet.Name))
	b.WriteString("\n")
	b.WriteString("Current stock: ")
	b.WriteString(strconv.Itoa(f.sweet.Quantity))
	b.WriteString("\n\n")
	b.WriteString(f.inputs.view())
	if f.submitting {
		b.WriteString("\n\n[Saving...]")
	}
	if f.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render(f.errMsg))
	}
	return overlayBoxStyle.Render(b.String())
}

func parsePrice(raw string) (float64, error) {
	price, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fieldError("price", "Price must be a positive number")
	}
	return price, nil
}

func fieldError(field, message string) error {
	return &validators.ValidationError{Issues: []validators.FieldIssue{{Field: field, Message: message}}}
}
