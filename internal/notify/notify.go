// Package notify sends a generated quittance to its locataire, by email
// (PDF attached) or SMS (short summary). When no transport is configured
// the send is simulated and logged, so the app stays usable without an
// SMTP account.
package notify

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"text/template"

	"github.com/diewo77/quittance-app/internal/lettres"
	"github.com/diewo77/quittance-app/internal/models"
)

// Message is one outgoing notification, transport-agnostic.
type Message struct {
	To             string
	Subject        string
	Body           string
	Attachment     []byte
	AttachmentName string
}

// Sender delivers a message. Implementations: SMTPSender, SimulatedSender.
type Sender interface {
	Send(ctx context.Context, m Message) error
}

// SimulatedSender logs instead of delivering. Used when the transport is
// not configured; callers can tell via Simulated().
type SimulatedSender struct {
	Canal string // "email" ou "sms"
}

func (s *SimulatedSender) Send(_ context.Context, m Message) error {
	log.Printf("[notify] envoi %s simulé vers %s: %s", s.Canal, m.To, m.Subject)
	return nil
}

var emailTmpl = template.Must(template.New("email").Parse(
	`Bonjour {{.Locataire}},

Veuillez trouver ci-joint votre quittance de loyer n° {{.Numero}} pour la période de {{.Periode}}.

Montant réglé : {{.Montant}}.

Cordialement,
{{.Bailleur}}
`))

var smsTmpl = template.Must(template.New("sms").Parse(
	`Votre quittance de loyer pour {{.Periode}} est disponible. Montant: {{.Montant}}. {{.Bailleur}}`))

type bodyData struct {
	Locataire string
	Bailleur  string
	Numero    int
	Periode   string
	Montant   string
}

func data(q models.Quittance, b models.Bailleur, l models.Locataire) bodyData {
	return bodyData{
		Locataire: l.Nom,
		Bailleur:  b.Nom,
		Numero:    q.Numero,
		Periode:   fmt.Sprintf("%s %d", lettres.NomMois(q.Mois), q.Annee),
		Montant:   lettres.FormatMontant(q.Total),
	}
}

// Subject is the email subject line for a quittance.
func Subject(q models.Quittance) string {
	return fmt.Sprintf("Quittance de loyer - %s %d", lettres.NomMois(q.Mois), q.Annee)
}

// EmailBody renders the plain-text email body.
func EmailBody(q models.Quittance, b models.Bailleur, l models.Locataire) (string, error) {
	var buf bytes.Buffer
	if err := emailTmpl.Execute(&buf, data(q, b, l)); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// SMSBody renders the short SMS text.
func SMSBody(q models.Quittance, b models.Bailleur, l models.Locataire) (string, error) {
	var buf bytes.Buffer
	if err := smsTmpl.Execute(&buf, data(q, b, l)); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// AttachmentName builds the download filename, same as the HTTP handler.
func AttachmentName(q models.Quittance) string {
	return fmt.Sprintf("quittance-%d-%02d-%d.pdf", q.Annee, q.Mois+1, q.Numero)
}
