package quittance

import "errors"

var (
	// ErrSelectionInvalide: appartement/locataire manquant, locataire non
	// rattaché à l'appartement, ou part de colocation non renseignée.
	// Le builder refuse d'émettre une quittance à zéro sans le signaler.
	ErrSelectionInvalide = errors.New("selection_invalide")

	// ErrPeriodeInvalide: mois hors 0..11 ou année non positive.
	ErrPeriodeInvalide = errors.New("periode_invalide")

	// ErrNumeroConflit: deux générations concurrentes ont tiré le même
	// numéro pour un appartement. Réessayable après relecture de l'état.
	ErrNumeroConflit = errors.New("numero_conflit")
)
