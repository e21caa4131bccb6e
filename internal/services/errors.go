package services

import "errors"

var (
	// ErrDernierBailleur: on ne supprime jamais le dernier bailleur du
	// compte, l'app deviendrait inutilisable.
	ErrDernierBailleur  = errors.New("dernier_bailleur")
	ErrBailleurUtilise  = errors.New("bailleur_utilise")
	ErrLocataireUtilise = errors.New("locataire_utilise")
)
