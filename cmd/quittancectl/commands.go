package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/diewo77/quittance-app/internal/db"
	"github.com/diewo77/quittance-app/internal/models"
	"github.com/diewo77/quittance-app/internal/pdf"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Applique le schéma (AutoMigrate, ou golang-migrate avec MIGRATIONS=1)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := db.ConnectAndMigrate(); err != nil {
				return err
			}
			fmt.Println("migrations ok")
			return nil
		},
	}
}

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Installe un compte de démonstration (idempotent)",
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, err := db.ConnectAndMigrate()
			if err != nil {
				return err
			}
			if err := db.Seed(conn); err != nil {
				return err
			}
			fmt.Println("seed ok (demo@quittances.local / demo1234)")
			return nil
		},
	}
}

func exportCmd() *cobra.Command {
	var outDir string
	var annee int
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Exporte les quittances en PDF dans un répertoire",
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, err := db.ConnectAndMigrate()
			if err != nil {
				return err
			}
			q := conn.Model(&models.Quittance{})
			if annee != 0 {
				q = q.Where("annee = ?", annee)
			}
			var quittances []models.Quittance
			if err := q.Order("annee, mois, numero").Find(&quittances).Error; err != nil {
				return err
			}
			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return err
			}
			for _, item := range quittances {
				var d pdf.DocumentData
				d.Quittance = item
				if err := conn.First(&d.Appartement, "id = ?", item.AppartementID).Error; err != nil {
					return err
				}
				if err := conn.First(&d.Bailleur, "id = ?", d.Appartement.BailleurID).Error; err != nil {
					return err
				}
				if err := conn.First(&d.Locataire, "id = ?", item.LocataireID).Error; err != nil {
					return err
				}
				data, err := pdf.QuittancePDF(d)
				if err != nil {
					return fmt.Errorf("quittance %s: %w", item.ID, err)
				}
				name := fmt.Sprintf("quittance-%d-%02d-%d-%s.pdf", item.Annee, item.Mois+1, item.Numero, item.LocataireID[:8])
				if err := os.WriteFile(filepath.Join(outDir, name), data, 0o644); err != nil {
					return err
				}
				fmt.Println(name)
			}
			fmt.Printf("%d quittance(s) exportée(s)\n", len(quittances))
			return nil
		},
	}
	cmd.Flags().StringVar(&outDir, "out", "export", "répertoire de sortie")
	cmd.Flags().IntVar(&annee, "annee", 0, "filtrer sur une année")
	return cmd
}
