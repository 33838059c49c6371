package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ecotech/contactform/modules/contact"
)

var (
	errInvalidSubmission = errors.New("submission is invalid")
	errUnknownOutput     = errors.New("unknown output format")
)

type checkOptions struct {
	fields  contact.Fields
	consent bool
	output  string
}

func newCheckCmd() *cobra.Command {
	opts := &checkOptions{}

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Sanitize and validate a submission without sending it",
		Example: `  contactd check --name Ana --email ana@x.io --subject Oi \
    --message "Gostaria de um orçamento." --consent --output yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			result := contact.Validate(opts.fields, opts.consent)
			if err := writeResult(cmd.OutOrStdout(), result, opts.output); err != nil {
				return err
			}
			if !result.Valid {
				return errInvalidSubmission
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.fields.Name, "name", "", "visitor name")
	f.StringVar(&opts.fields.Email, "email", "", "visitor email")
	f.StringVar(&opts.fields.Subject, "subject", "", "message subject")
	f.StringVar(&opts.fields.Message, "message", "", "message body")
	f.BoolVar(&opts.consent, "consent", false, "visitor agreed to be contacted")
	f.StringVarP(&opts.output, "output", "o", "json", "output format: json or yaml")
	return cmd
}

func writeResult(w io.Writer, result contact.Result, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(result)
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(result); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w %q: use json or yaml", errUnknownOutput, format)
	}
}
