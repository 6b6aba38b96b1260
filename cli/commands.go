package cli

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/yaptide/materials/pkg/material"
	"github.com/yaptide/materials/pkg/optical"
)

func generateListCmd(app *application) *cobra.Command {
	var listNIST bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "list declared materials",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			if listNIST {
				for _, name := range app.catalog.Names() {
					fmt.Fprintln(cmd.OutOrStdout(), name)
				}
				return nil
			}
			b := app.manager.Builder()
			writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(writer, "NAME\tFORMULA\tDENSITY\tCOMPONENTS\tFLAGS")
			for _, name := range b.Names() {
				decl, _ := b.Declaration(name)
				flags := []string{}
				if decl.Isotopic {
					flags = append(flags, "isotopic")
				}
				if decl.Optical {
					flags = append(flags, "optical")
				}
				fmt.Fprintf(writer, "%s\t%s\t%g\t%d\t%s\n",
					decl.Name, decl.Formula, decl.Density, decl.Components, strings.Join(flags, ","))
			}
			return writer.Flush()
		},
	}
	cmd.Flags().BoolVar(&listNIST, "nist", false, "list NIST catalog instead")
	return cmd
}

func generateShowCmd(app *application) *cobra.Command {
	var fromNIST, asJSON bool
	cmd := &cobra.Command{
		Use:   "show NAME",
		Short: "compile material and print it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lookup := app.manager.StandardMaterial
			if fromNIST {
				lookup = app.manager.NISTMaterial
			}
			m, err := lookup(args[0])
			if err != nil {
				return err
			}
			if asJSON {
				encoder := json.NewEncoder(cmd.OutOrStdout())
				encoder.SetIndent("", "  ")
				return encoder.Encode(m)
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), material.Serialize(m))
			return err
		},
	}
	cmd.Flags().BoolVar(&fromNIST, "nist", false, "look up material in NIST catalog")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print as JSON")
	return cmd
}

func generateTableCmd(app *application) *cobra.Command {
	return &cobra.Command{
		Use:   "table NAME",
		Short: "print optical property table of material",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := app.manager.OpticalMaterial(args[0])
			if err != nil {
				return err
			}
			m.PropertyTable().Dump(cmd.OutOrStdout())
			return nil
		},
	}
}

func generateExportCmd(app *application) *cobra.Command {
	var numbered bool
	cmd := &cobra.Command{
		Use:   "export [NAME...]",
		Short: "print material cards, all materials if no name is given",
		RunE: func(cmd *cobra.Command, args []string) error {
			var materials []*material.Material
			if len(args) == 0 {
				all, err := app.manager.Builder().CompileAll(cmd.Context())
				if err != nil {
					return err
				}
				materials = all
			}
			for _, name := range args {
				m, err := app.manager.StandardMaterial(name)
				if err != nil {
					return err
				}
				materials = append(materials, m)
			}
			if !numbered {
				_, err := fmt.Fprint(cmd.OutOrStdout(), material.Serialize(materials...))
				return err
			}
			deck, _, err := material.NewDeck(materials...)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), deck.Serialize())
			return err
		},
	}
	cmd.Flags().BoolVar(&numbered, "numbered", false, "number media, optical materials last")
	return cmd
}

func generateVerifyCmd(app *application) *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "compile every declared material",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			materials, err := app.manager.Builder().CompileAll(cmd.Context())
			if err != nil {
				return err
			}
			withTable := 0
			for _, m := range materials {
				if m.PropertyTable() != nil {
					withTable++
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d materials compiled, %d with optical properties\n",
				len(materials), withTable)
			return nil
		},
	}
}

func generateDatasetsCmd(app *application) *cobra.Command {
	return &cobra.Command{
		Use:   "datasets",
		Short: "list built-in optical datasets",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(writer, "NAME\tYIELD/MeV\tRESPONSES")
			for _, name := range optical.Names() {
				dataset, err := optical.Lookup(name)
				if err != nil {
					return err
				}
				responses := []string{}
				for _, particle := range optical.Particles {
					if model, found := dataset.Responses[particle]; found {
						responses = append(responses, particle.String()+"="+model.String())
					}
				}
				fmt.Fprintf(writer, "%s\t%g\t%s\n", name, dataset.Yield, strings.Join(responses, ","))
			}
			return writer.Flush()
		},
	}
}
