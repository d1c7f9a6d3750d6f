package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/citemark/pkg/bib"
)

var (
	personEmail     string
	personInstitute string
	personURLs      []string
	personNotes     string
)

var personCmd = &cobra.Command{
	Use:   "person [name]",
	Short: "Store a person record",
	Long: `Normalize a "Surname, First" name and store a person record at its derived
path. An existing record is never overwritten; the first writer wins.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		person := bib.NormalizePerson(args[0])
		person.Email = personEmail
		person.Institute = personInstitute
		person.URL = append(person.URL, personURLs...)

		service, err := openStore()
		if err != nil {
			fatal("Failed to open reference tree", err)
		}

		ctx := context.Background()
		existed := service.People.Exists(ctx, person)
		if err := service.People.Save(ctx, person, personNotes); err != nil {
			fatal("Failed to save person", err)
		}

		if existed {
			fmt.Printf("%s already stored at %s.md\n", person.CleanName, bib.PersonPath(person.CleanName))
			return
		}
		fmt.Printf("Stored %s at %s.md\n", person.CleanName, bib.PersonPath(person.CleanName))
	},
}

func init() {
	rootCmd.AddCommand(personCmd)
	personCmd.Flags().StringVar(&personEmail, "email", "", "Email address")
	personCmd.Flags().StringVar(&personInstitute, "institute", "", "Affiliated institute")
	personCmd.Flags().StringArrayVar(&personURLs, "url", nil, "Associated URL (repeatable)")
	personCmd.Flags().StringVarP(&personNotes, "notes", "n", "", "Free-form notes stored as the record body")
}
