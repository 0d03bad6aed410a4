package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/reoring/guard"
	"github.com/reoring/guard/i18n"
)

// KindInfo describes one violation kind.
type KindInfo struct {
	Code    string `json:"code"`
	Class   string `json:"class"`
	Parent  string `json:"parent,omitempty"`
	Message string `json:"message"`
}

// sampleData fills every placeholder the default templates use.
var sampleData = map[string]string{
	"name":     "subject",
	"value":    "<value>",
	"zero":     "<zero>",
	"type":     "<type>",
	"expected": "<expected>",
	"index":    "0",
}

// ListKinds returns the taxonomy in declaration order with default messages
// rendered in lang.
func ListKinds(lang string) []KindInfo {
	tr := i18n.For(lang)
	out := make([]KindInfo, 0, len(guard.Kinds()))
	for _, k := range guard.Kinds() {
		info := KindInfo{
			Code:    k.String(),
			Class:   k.Class().String(),
			Message: tr.Message(k.String(), sampleData),
		}
		if p, ok := k.Parent(); ok {
			info.Parent = p.String()
		}
		out = append(out, info)
	}
	return out
}

func newKindsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "kinds",
		Short: "List violation kinds",
		Long:  "List every violation kind with its class, parent kind and default message.",
		Args:  cobra.NoArgs,
		RunE:  runKinds,
	}
	cmd.Flags().String("lang", "en", "language of the default messages ("+strings.Join(i18n.Languages(), ", ")+")")
	cmd.Flags().Bool("json", false, "print JSON instead of a table")
	return cmd
}

func runKinds(cmd *cobra.Command, _ []string) error {
	lang, err := cmd.Flags().GetString("lang")
	if err != nil {
		return fmt.Errorf("%w: failed to get lang flag: %v", ErrUsage, err)
	}
	asJSON, err := cmd.Flags().GetBool("json")
	if err != nil {
		return fmt.Errorf("%w: failed to get json flag: %v", ErrUsage, err)
	}
	if !i18n.Supported(lang) {
		return fmt.Errorf("%w: unsupported language %q, use one of %s", ErrUsage, lang, strings.Join(i18n.Languages(), ", "))
	}

	kinds := ListKinds(lang)
	w := cmd.OutOrStdout()
	if asJSON {
		b, err := json.MarshalIndent(kinds, "", "  ")
		if err != nil {
			return fmt.Errorf("%w: failed to encode kinds as JSON: %v", ErrInternal, err)
		}
		_, err = fmt.Fprintln(w, string(b))
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CODE\tCLASS\tPARENT\tMESSAGE")
	for _, k := range kinds {
		parent := k.Parent
		if parent == "" {
			parent = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", k.Code, k.Class, parent, k.Message)
	}
	return tw.Flush()
}
