// Package pdf renders a quittance de loyer as a one-page A4 document.
package pdf

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/diewo77/quittance-app/internal/lettres"
	"github.com/diewo77/quittance-app/internal/models"
)

// DocumentData is everything the renderer needs, already loaded; the
// package does no I/O.
type DocumentData struct {
	Quittance   models.Quittance
	Bailleur    models.Bailleur
	Locataire   models.Locataire
	Appartement models.Appartement
}

// libellés affichés pour les modes de paiement
var modeLabels = map[string]string{
	models.PaiementVirement:    "virement bancaire",
	models.PaiementCheque:      "chèque",
	models.PaiementEspeces:     "espèces",
	models.PaiementPrelevement: "prélèvement automatique",
	models.PaiementAutre:       "autre",
}

func modeLabel(mode string) string {
	if l, ok := modeLabels[mode]; ok {
		return l
	}
	return mode
}

// QuittancePDF renders the receipt and returns the raw PDF bytes.
func QuittancePDF(d DocumentData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithLeftMargin(15).
		WithRightMargin(15).
		WithTopMargin(15).
		Build()
	m := maroto.New(cfg)

	q := d.Quittance

	m.AddRow(12, text.NewCol(12, "QUITTANCE DE LOYER", props.Text{
		Size: 16, Style: fontstyle.Bold, Align: align.Center,
	}))
	m.AddRow(8, text.NewCol(12, fmt.Sprintf("Quittance n° %d — %s %d", q.Numero, lettres.NomMois(q.Mois), q.Annee), props.Text{
		Size: 11, Align: align.Center,
	}))
	m.AddRow(6, col.New(12))

	// Bailleur à gauche, locataire à droite.
	bailleurLines := fmt.Sprintf("Bailleur :\n%s\n%s", d.Bailleur.Nom, d.Bailleur.Adresse)
	if d.Bailleur.EstSociete() && d.Bailleur.SIRET != "" {
		bailleurLines += fmt.Sprintf("\nSIRET : %s", d.Bailleur.SIRET)
	}
	locataireLines := fmt.Sprintf("Locataire :\n%s\n%s", d.Locataire.Nom, d.Locataire.Adresse)
	m.AddRow(24,
		text.NewCol(6, bailleurLines, props.Text{Size: 10}),
		text.NewCol(6, locataireLines, props.Text{Size: 10, Align: align.Right}),
	)
	m.AddRow(4, col.New(12))
	m.AddRow(2, line.NewCol(12))
	m.AddRow(4, col.New(12))

	montantLettres, err := lettres.MontantEnLettres(q.Total)
	if err != nil {
		return nil, fmt.Errorf("montant en lettres: %w", err)
	}
	declaration := fmt.Sprintf(
		"Je soussigné(e) %s, propriétaire du logement situé %s, déclare avoir reçu de %s la somme de %s (%s), "+
			"au titre du loyer et des charges de la période du %s au %s, et lui en donne quittance, "+
			"sous réserve de tous mes droits.",
		d.Bailleur.Nom, d.Appartement.Adresse, d.Locataire.Nom,
		montantLettres, lettres.FormatMontant(q.Total),
		lettres.FormatDate(q.DateDebut), lettres.FormatDate(q.DateFin),
	)
	m.AddRow(30, text.NewCol(12, declaration, props.Text{Size: 10}))
	m.AddRow(4, col.New(12))

	m.AddRow(8, text.NewCol(12, "Détail du règlement", props.Text{Size: 11, Style: fontstyle.Bold}))
	addAmountRow(m, "Loyer", lettres.FormatMontant(q.Loyer), false)
	addAmountRow(m, "Charges", lettres.FormatMontant(q.Charges), false)
	addAmountRow(m, "Total", lettres.FormatMontant(q.Total), true)
	m.AddRow(4, col.New(12))

	m.AddRow(8, text.NewCol(12, fmt.Sprintf("Paiement reçu le %s par %s.",
		lettres.FormatDate(q.DatePaiement), modeLabel(q.ModePaiement)), props.Text{Size: 10}))
	m.AddRow(10, col.New(12))

	m.AddRow(8, text.NewCol(12, fmt.Sprintf("Fait à %s, le %s",
		q.LieuEmission, lettres.FormatDate(q.DateEmission)), props.Text{Size: 10, Align: align.Right}))
	m.AddRow(16, text.NewCol(12, d.Bailleur.Nom, props.Text{Size: 10, Align: align.Right}))

	m.AddRow(12, text.NewCol(12,
		"Cette quittance annule tous les reçus qui auraient pu être établis précédemment en cas de paiement partiel du montant du présent terme.",
		props.Text{Size: 8, Align: align.Center}))

	doc, err := m.Generate()
	if err != nil {
		return nil, err
	}
	return doc.GetBytes(), nil
}

func addAmountRow(m core.Maroto, label, montant string, bold bool) {
	style := fontstyle.Normal
	if bold {
		style = fontstyle.Bold
	}
	m.AddRow(7,
		text.NewCol(8, label, props.Text{Size: 10, Style: style}),
		text.NewCol(4, montant, props.Text{Size: 10, Style: style, Align: align.Right}),
	)
}
