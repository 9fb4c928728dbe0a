package notify

import (
	"bytes"
	"fmt"
	"html/template"

	"branch-reservations/internal/pkg/errs"
)

var ErrUnknownKind = errs.New("unknown notification kind")

const (
	placeholderAddress = "Consultá la dirección en la sucursal"
	placeholderHours   = "Horario habitual de atención"
	placeholderPhone   = "-"
)

const layout = `{{define "layout"}}<!DOCTYPE html>
<html><body style="font-family:Arial,sans-serif;color:#222">
<h2>{{.Title}}</h2>
<p>Hola {{.P.CustomerName}},</p>
{{template "content" .}}
<table style="border-collapse:collapse;margin-top:12px">
<tr><td><b>Reserva</b></td><td>#{{.P.ReservationID}}</td></tr>
<tr><td><b>Producto</b></td><td>{{.P.ProductCode}} {{.P.ProductDescription}}</td></tr>
<tr><td><b>Cantidad</b></td><td>{{.P.Quantity}}</td></tr>
<tr><td><b>Total</b></td><td>$ {{.P.Total}}</td></tr>
<tr><td><b>Sucursal de retiro</b></td><td>{{.P.DestinationBranch}}</td></tr>
</table>
</body></html>{{end}}`

const confirmationContent = `{{define "content"}}<p>Registramos tu reserva. Te avisaremos cuando llegue a la sucursal.</p>{{end}}`

const pickupContent = `{{define "content"}}<p>Tu pedido ya está en la sucursal <b>{{.P.DestinationBranch}}</b> y podés pasar a retirarlo.</p>
<p>Dirección: {{.Branch.Address}}<br>Horario: {{.Branch.Hours}}<br>Teléfono: {{.Branch.Phone}}</p>{{end}}`

type BranchInfo struct {
	Address string
	Hours   string
	Phone   string
}

func placeholderBranch() BranchInfo {
	return BranchInfo{Address: placeholderAddress, Hours: placeholderHours, Phone: placeholderPhone}
}

type Message struct {
	To       string
	Subject  string
	HTMLBody string
}

type Renderer struct {
	templates map[Kind]*template.Template
}

func NewRenderer() *Renderer {
	base := template.Must(template.New("layout").Parse(layout))
	return &Renderer{
		templates: map[Kind]*template.Template{
			KindConfirmation: template.Must(template.Must(base.Clone()).Parse(confirmationContent)),
			KindPickupReady:  template.Must(template.Must(base.Clone()).Parse(pickupContent)),
		},
	}
}

func (r *Renderer) Render(kind Kind, p Payload, branch BranchInfo) (Message, error) {
	tmpl, ok := r.templates[kind]
	if !ok {
		return Message{}, ErrUnknownKind
	}

	data := struct {
		Title  string
		P      Payload
		Branch BranchInfo
	}{Title: subject(kind, p), P: p, Branch: branch}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		return Message{}, errs.Wrap(err, "render notification")
	}
	return Message{To: p.CustomerEmail, Subject: data.Title, HTMLBody: buf.String()}, nil
}

func subject(kind Kind, p Payload) string {
	if kind == KindPickupReady {
		return fmt.Sprintf("Tu reserva #%d está lista para retirar", p.ReservationID)
	}
	return fmt.Sprintf("Confirmación de reserva #%d", p.ReservationID)
}
